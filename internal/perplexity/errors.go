package perplexity

import "fmt"

// AuthenticationError reports a missing or rejected API credential.
// It aborts the whole run: no later row can succeed without a valid
// key.
type AuthenticationError struct {
	Reason string
}

func (err *AuthenticationError) Error() string {
	return "perplexity authentication failed: " + err.Reason
}

// RequestError reports one failed completion request, scoped to the
// row that issued it. Status is zero when the request never reached
// the API.
type RequestError struct {
	Status int
	Body   string
	Err    error
}

func (err *RequestError) Error() string {
	if err.Status != 0 {
		if err.Body == "" {
			return fmt.Sprintf("perplexity error: status %d", err.Status)
		}
		return fmt.Sprintf("perplexity error: status %d: %s", err.Status, err.Body)
	}
	return fmt.Sprintf("perplexity error: %v", err.Err)
}

func (err *RequestError) Unwrap() error { return err.Err }
