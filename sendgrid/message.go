package sendgrid

import (
	"encoding/json"
	"fmt"
)

// Message is the outbound mail request in the shape the provider API
// expects. The attachments key is omitted entirely when the slice is
// nil; collaborators distinguish a missing key from an empty array.
type Message struct {
	To          string       `json:"to"`
	From        Address      `json:"from"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Address is a mail sender or recipient. On the wire it is a bare
// email string when no display name is set, and an {email, name}
// object otherwise.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// MarshalJSON emits a plain string for name-less addresses.
func (a Address) MarshalJSON() ([]byte, error) {
	if a.Name == "" {
		return json.Marshal(a.Email)
	}
	type wire Address
	return json.Marshal(wire(a))
}

// UnmarshalJSON accepts both the string and the object form.
func (a *Address) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		a.Name = ""
		return json.Unmarshal(data, &a.Email)
	}
	type wire Address
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("sendgrid: decode address: %w", err)
	}
	*a = Address(w)
	return nil
}

// Attachment is one inline file in the provider wire format. Content
// is the base64 encoding of the raw file bytes.
type Attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Disposition string `json:"disposition"`
}
