// Package notification defines the domain model shared between the
// notification framework and its delivery adapters: the notification
// record, stored attachments, and the collaborator interfaces an
// adapter is wired against (backend, template renderer, file handles).
package notification

import (
	"context"
	"io"
)

// Type identifies the delivery channel an adapter serves.
type Type string

const (
	TypeEmail Type = "email"
	TypeSMS   Type = "sms"
)

// String returns the channel name.
func (t Type) String() string { return string(t) }

// Notification is a persisted, already-scheduled notification record.
// It is an immutable input: adapters read it but never mutate or
// persist it.
//
// Two variants share this shape. An account-bound notification has
// UserID set and its recipient address is resolved through the
// backend. A one-off notification has EmailOrPhone set (non-nil) and
// is addressed directly, with no backend identity lookup.
type Notification struct {
	ID     string
	UserID string

	// EmailOrPhone is the direct destination of a one-off
	// notification. A nil pointer means the notification is
	// account-bound; a non-nil pointer (even to an empty string)
	// marks the one-off variant.
	EmailOrPhone *string

	FirstName string
	LastName  string

	// Context carries the parameters the template renderer consumes.
	Context map[string]any

	Attachments []StoredAttachment
}

// OneOff reports whether the notification is addressed directly
// rather than through a user account.
func (n *Notification) OneOff() bool { return n.EmailOrPhone != nil }

// StoredAttachment references file content previously written to the
// attachment store. Delivery adapters only call File.Read; the
// remaining metadata belongs to the storage layer.
type StoredAttachment struct {
	Filename    string
	ContentType string
	Checksum    string
	Size        int64
	Metadata    map[string]string
	File        File
}

// File is the handle an attachment store hands out for stored
// content. Adapters that inline attachments use Read; Stream, URL and
// Delete serve other parts of the framework.
type File interface {
	Read(ctx context.Context) ([]byte, error)
	Stream(ctx context.Context) (io.ReadCloser, error)
	URL(ctx context.Context) (string, error)
	Delete(ctx context.Context) error
}
