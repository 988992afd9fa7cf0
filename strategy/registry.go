package strategy

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownStrategy reports a name with no registration at render time
var ErrUnknownStrategy = errors.New("unknown strategy")

// Factory creates a Strategy instance
type Factory func() Strategy

// Registry is a thread-safe name to factory map
// Registration happens at startup; resolution is read-mostly
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a strategy factory by name, replacing any previous entry
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Resolve instantiates the strategy registered under name
func (r *Registry) Resolve(name string) (Strategy, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return f(), nil
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns all registered strategy names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultRegistry creates a registry with the built-in strategies
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(StaticTextName, func() Strategy { return &StaticText{} })
	r.Register(ScrollingTextName, func() Strategy { return &ScrollingText{} })
	return r
}
