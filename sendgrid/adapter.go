// Package sendgrid implements the email delivery adapter backed by
// the SendGrid v3 Mail Send API. It translates one notification
// record plus its rendered template into exactly one outbound API
// call: resolve the recipient, inline any stored attachments as
// base64, and hand the assembled message to the mail client.
//
// The adapter is a stateless translation shim. It performs no
// retries, no batching and no recovery; every collaborator or
// transport error propagates to the caller unchanged.
package sendgrid

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gsarma/mailgate/notification"
)

// Key is the registry identifier of this adapter.
const Key = "sendgrid"

// Adapter delivers email notifications through SendGrid. Construct it
// with New, register it, and let the framework inject the backend
// before the first Send. Configuration is read-only after
// construction, so concurrent Send calls on one instance are safe.
type Adapter struct {
	cfg      Config
	renderer notification.Renderer
	client   Client
	backend  notification.Backend
	log      zerolog.Logger
}

var _ notification.Adapter = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithClient substitutes the outbound mail client.
func WithClient(c Client) Option {
	return func(a *Adapter) { a.client = c }
}

// WithLogger enables diagnostic logging. Without it the adapter is
// silent.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Adapter) { a.log = log }
}

// New creates a SendGrid adapter. cfg must carry the API key and a
// valid default sender address; renderer produces the subject and
// HTML body for each notification.
func New(cfg Config, renderer notification.Renderer, opts ...Option) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Adapter{
		cfg:      cfg,
		renderer: renderer,
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(a)
	}
	if a.client == nil {
		a.client = NewAPIClient(cfg.APIKey)
	}
	return a, nil
}

// Key returns the registry identifier.
func (a *Adapter) Key() string { return Key }

// Type returns the delivery channel.
func (a *Adapter) Type() notification.Type { return notification.TypeEmail }

// SupportsAttachments reports that stored attachments are inlined
// into outbound mail.
func (a *Adapter) SupportsAttachments() bool { return true }

// InjectBackend late-binds the framework backend. Must be called once
// before the first Send.
func (a *Adapter) InjectBackend(b notification.Backend) { a.backend = b }

// Send delivers one notification as email. It renders the template,
// resolves the recipient, inlines attachments when present, and
// issues exactly one mail API call. Preconditions are checked before
// any I/O: a backend must have been injected (even for one-off
// notifications, which never query it) and the notification must
// carry an ID.
func (a *Adapter) Send(ctx context.Context, n *notification.Notification, data map[string]any) error {
	if a.backend == nil {
		return ErrBackendNotInjected
	}
	if n.ID == "" {
		return ErrMissingID
	}

	tmpl, err := a.renderer.Render(ctx, n, data)
	if err != nil {
		return err
	}

	to, err := a.resolveRecipient(ctx, n)
	if err != nil {
		return err
	}

	msg := &Message{
		To:      to,
		From:    Address{Email: a.cfg.FromEmail, Name: a.cfg.FromName},
		Subject: tmpl.Subject,
		HTML:    tmpl.HTML,
	}

	// A notification without attachments produces a message without
	// an attachments key, not an empty array.
	if len(n.Attachments) > 0 {
		msg.Attachments, err = a.translateAttachments(ctx, n.Attachments)
		if err != nil {
			return err
		}
	}

	a.log.Debug().
		Str("notification_id", n.ID).
		Str("to", to).
		Int("attachments", len(msg.Attachments)).
		Msg("sending email")

	return a.client.Send(ctx, msg)
}
