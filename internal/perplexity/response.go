package perplexity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Response carries one completion response: the raw body bytes plus
// the assistant content extracted from the first choice.
type Response struct {
	Raw     []byte
	Content string
}

// Markdown returns the trimmed assistant content, or "" when the
// response holds none.
func (r Response) Markdown() string {
	return strings.TrimSpace(r.Content)
}

// IndentedJSON re-indents the raw body without re-marshaling, so field
// order and values stay exactly as the API returned them.
func (r Response) IndentedJSON() ([]byte, error) {
	var buffer bytes.Buffer
	if err := json.Indent(&buffer, r.Raw, "", "  "); err != nil {
		return nil, fmt.Errorf("indent response: %w", err)
	}
	buffer.WriteByte('\n')
	return buffer.Bytes(), nil
}

type responseEnvelope struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func parseResponse(body []byte) (Response, error) {
	var envelope responseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Response{}, &RequestError{Err: fmt.Errorf("decode response: %w", err)}
	}
	response := Response{Raw: body}
	if len(envelope.Choices) > 0 {
		response.Content = envelope.Choices[0].Message.Content
	}
	return response, nil
}
