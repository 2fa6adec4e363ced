package sendgrid

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds the adapter's credentials and default sender. It is
// supplied once at construction and never changes afterwards.
type Config struct {
	// APIKey authenticates against the SendGrid v3 API.
	APIKey string `json:"api_key" validate:"required"`
	// FromEmail is the default sender address.
	FromEmail string `json:"from_email" validate:"required,email"`
	// FromName is an optional display name for the sender. When set,
	// outbound mail carries a structured {email, name} sender instead
	// of a bare address string.
	FromName string `json:"from_name"`
}

// Validate checks the required fields.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("sendgrid: invalid config: %w", err)
	}
	return nil
}
