package prompt

import (
	"bytes"
	"encoding/json"
)

// Message is one chat message of a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Document is the chat-completions request body for one result row.
// Its encoded bytes are written verbatim to prompt.json and POSTed to
// the API.
type Document struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Encode renders the document as two-space indented JSON without HTML
// escaping, so source URLs survive round trips unchanged.
func (d Document) Encode() ([]byte, error) {
	return encodeJSON(d, "  ")
}

func encodeJSON(value any, indent string) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if indent != "" {
		encoder.SetIndent("", indent)
	}
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
