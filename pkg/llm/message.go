package llm

import (
	"encoding/json"
	"fmt"
)

// Message is one prompt turn handed to the model. The wire form is
// heterogeneous: either a bare string (an implicit user turn) or a
// role-tagged object. Normalization happens here, at the adapter boundary.
type Message struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content"`
}

// System builds a system turn.
func System(content string) Message {
	return Message{Role: "system", Content: content}
}

// User builds a user turn.
func User(content string) Message {
	return Message{Role: "user", Content: content}
}

// Assistant builds an assistant turn.
func Assistant(content string) Message {
	return Message{Role: "assistant", Content: content}
}

// UnmarshalJSON accepts either a JSON string or a {role, content} object.
func (m *Message) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		m.Role = "user"
		m.Content = plain
		return nil
	}

	type structured Message
	var s structured
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("prompt message must be a string or a {role, content} object: %w", err)
	}
	*m = Message(s)
	m.normalize()
	return nil
}

// normalize fills in the implicit user role.
func (m *Message) normalize() {
	if m.Role == "" {
		m.Role = "user"
	}
}
