package notification

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the mount point the framework uses to look up delivery
// adapters by key. Registration normally happens during startup, but
// the registry is safe for concurrent use throughout.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
	backend  Backend
}

// NewRegistry returns an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter under its Key. If a backend has already
// been attached it is injected into the adapter immediately.
func (r *Registry) Register(a Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := a.Key()
	if key == "" {
		return fmt.Errorf("adapter of type %q has an empty key", a.Type())
	}
	if _, exists := r.adapters[key]; exists {
		return fmt.Errorf("adapter %q is already registered", key)
	}
	if r.backend != nil {
		a.InjectBackend(r.backend)
	}
	r.adapters[key] = a
	return nil
}

// AttachBackend injects b into every registered adapter and into all
// adapters registered later.
func (r *Registry) AttachBackend(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend = b
	for _, a := range r.adapters {
		a.InjectBackend(b)
	}
}

// Adapter returns the adapter registered under key.
func (r *Registry) Adapter(key string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[key]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for key %q", key)
	}
	return a, nil
}

// Keys returns the registered adapter keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.adapters))
	for k := range r.adapters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
