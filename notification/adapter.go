package notification

import "context"

// RenderedTemplate is the output of a template renderer, treated as
// opaque strings by adapters. HTML is not sanitized here.
type RenderedTemplate struct {
	Subject string
	HTML    string
}

// Renderer produces the subject and body for a notification. The
// framework owns the template engine; adapters only consume the
// rendered result.
type Renderer interface {
	Render(ctx context.Context, n *Notification, data map[string]any) (RenderedTemplate, error)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(ctx context.Context, n *Notification, data map[string]any) (RenderedTemplate, error)

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, n *Notification, data map[string]any) (RenderedTemplate, error) {
	return f(ctx, n, data)
}

// Backend is the persistence and identity collaborator the framework
// injects into every adapter. Delivery adapters use only
// EmailForNotification; the remaining operations belong to the
// framework's storage layer and exist here so one collaborator object
// satisfies both sides.
type Backend interface {
	// EmailForNotification returns the recipient email address for an
	// account-bound notification, or an empty string when no address
	// is on record.
	EmailForNotification(ctx context.Context, notificationID string) (string, error)

	Save(ctx context.Context, n *Notification) error
	Notification(ctx context.Context, id string) (*Notification, error)
	List(ctx context.Context, userID string) ([]*Notification, error)
	DeleteAttachment(ctx context.Context, notificationID, filename string) error
}

// Adapter is the capability contract a delivery adapter implements.
//
// The framework constructs adapters first and injects the backend
// afterwards; Send must fail cleanly if called before injection. Each
// Send call is independent: adapters hold no per-send state, so
// concurrent Send calls on one instance are safe.
type Adapter interface {
	// Key is the unique registry identifier, e.g. "sendgrid".
	Key() string
	// Type is the channel the adapter delivers on.
	Type() Type
	// SupportsAttachments reports whether Send honours
	// Notification.Attachments.
	SupportsAttachments() bool
	// InjectBackend late-binds the framework's backend. Call it once,
	// before any Send.
	InjectBackend(b Backend)
	// Send delivers one notification. data is the per-send template
	// context handed through to the renderer.
	Send(ctx context.Context, n *Notification, data map[string]any) error
}
