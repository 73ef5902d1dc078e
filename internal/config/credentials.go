package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/perplexity"
)

// credentialVars lists the accepted key variables in precedence order.
var credentialVars = []string{"PPLX_API_KEY", "PERPLEXITY_API_KEY"}

// Credentials is the API credential state resolved once at startup.
type Credentials struct {
	APIKey string
	Source string
}

// LoadCredentials resolves the Perplexity API key. A .env file in the
// working directory is consulted, but variables already present in
// the process environment always win.
func LoadCredentials() Credentials {
	_ = godotenv.Load()
	for _, name := range credentialVars {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			return Credentials{APIKey: value, Source: name}
		}
	}
	return Credentials{}
}

// Present reports whether a key was resolved.
func (c Credentials) Present() bool {
	return c.APIKey != ""
}

// Require returns the key, or the authentication failure that aborts
// a live run.
func (c Credentials) Require() (string, error) {
	if c.APIKey == "" {
		return "", &perplexity.AuthenticationError{
			Reason: "missing API key: set PPLX_API_KEY or PERPLEXITY_API_KEY",
		}
	}
	return c.APIKey, nil
}
