package notification

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryBackend is an in-memory Backend for tests and local sandbox
// runs. It is safe for concurrent use.
type MemoryBackend struct {
	mu            sync.RWMutex
	notifications map[string]*Notification
	emails        map[string]string // notification ID -> recipient address
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		notifications: make(map[string]*Notification),
		emails:        make(map[string]string),
	}
}

// SetEmail records the recipient address resolved for a notification ID.
func (m *MemoryBackend) SetEmail(notificationID, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails[notificationID] = email
}

// EmailForNotification returns the address recorded via SetEmail, or
// an empty string when none is on record.
func (m *MemoryBackend) EmailForNotification(_ context.Context, notificationID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.emails[notificationID], nil
}

// Save stores n, replacing any record with the same ID.
func (m *MemoryBackend) Save(_ context.Context, n *Notification) error {
	if n.ID == "" {
		return fmt.Errorf("cannot save notification without an ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications[n.ID] = n
	return nil
}

// Notification returns the stored record with the given ID.
func (m *MemoryBackend) Notification(_ context.Context, id string) (*Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.notifications[id]
	if !ok {
		return nil, fmt.Errorf("notification %q not found", id)
	}
	return n, nil
}

// List returns all stored notifications belonging to userID.
func (m *MemoryBackend) List(_ context.Context, userID string) ([]*Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// DeleteAttachment removes the named attachment from a stored
// notification.
func (m *MemoryBackend) DeleteAttachment(_ context.Context, notificationID, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notifications[notificationID]
	if !ok {
		return fmt.Errorf("notification %q not found", notificationID)
	}
	kept := n.Attachments[:0]
	for _, att := range n.Attachments {
		if att.Filename != filename {
			kept = append(kept, att)
		}
	}
	n.Attachments = kept
	return nil
}

// BytesFile is a File backed by a byte slice, for tests and inline
// sandbox attachments.
type BytesFile struct {
	data []byte
}

// NewBytesFile returns a File serving the given content.
func NewBytesFile(data []byte) *BytesFile {
	return &BytesFile{data: data}
}

// Read returns a copy of the content.
func (f *BytesFile) Read(_ context.Context) ([]byte, error) {
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out, nil
}

// Stream returns a reader over the content.
func (f *BytesFile) Stream(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

// URL is not supported for in-memory files.
func (f *BytesFile) URL(_ context.Context) (string, error) {
	return "", fmt.Errorf("in-memory files have no URL")
}

// Delete drops the content.
func (f *BytesFile) Delete(_ context.Context) error {
	f.data = nil
	return nil
}
