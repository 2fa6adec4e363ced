package sendgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendNotInjected is returned by Send when no backend has
	// been injected into the adapter yet.
	ErrBackendNotInjected = errors.New("sendgrid: backend not injected")

	// ErrMissingID is returned by Send for notifications without an ID.
	ErrMissingID = errors.New("sendgrid: notification ID is required")
)

// NoRecipientError is returned when the backend lookup for an
// account-bound notification yields no email address.
type NoRecipientError struct {
	NotificationID string
}

func (e *NoRecipientError) Error() string {
	return fmt.Sprintf("sendgrid: no recipient email found for notification %s", e.NotificationID)
}
