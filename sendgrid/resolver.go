package sendgrid

import (
	"context"

	"github.com/gsarma/mailgate/notification"
)

// resolveRecipient determines the destination address for n.
//
// One-off notifications carry their own address and skip the backend
// entirely. The address is used as-is; an empty one-off address passes
// through unvalidated and validation stays the caller's concern.
// Account-bound notifications resolve through the injected backend and
// fail when no address is on record.
func (a *Adapter) resolveRecipient(ctx context.Context, n *notification.Notification) (string, error) {
	if n.OneOff() {
		return *n.EmailOrPhone, nil
	}

	email, err := a.backend.EmailForNotification(ctx, n.ID)
	if err != nil {
		return "", err
	}
	if email == "" {
		return "", &NoRecipientError{NotificationID: n.ID}
	}
	return email, nil
}
