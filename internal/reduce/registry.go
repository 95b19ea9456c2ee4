package reduce

import (
	"fmt"
	"sync"
)

// Registry maps reducer names to implementations. Names are listed in
// registration order, which is also the order reducers run and print in.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	reducers map[string]Reducer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{reducers: make(map[string]Reducer)}
}

// NewDefaultRegistry registers the sequential reducer followed by a parallel
// reducer with the given worker count.
func NewDefaultRegistry(workers int) *Registry {
	r := NewRegistry()
	r.Register(Sequential{})
	r.Register(NewParallel(workers))
	return r
}

// Register adds or replaces a reducer under its Name. Replacing keeps the
// original position.
func (r *Registry) Register(red Reducer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := red.Name()
	if _, exists := r.reducers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.reducers[name] = red
}

// Get returns the reducer registered under name.
func (r *Registry) Get(name string) (Reducer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if red, ok := r.reducers[name]; ok {
		return red, nil
	}
	return nil, fmt.Errorf("unknown reducer %q (available: %v)", name, r.order)
}

// List returns the registered names in run order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// All returns the registered reducers in run order.
func (r *Registry) All() []Reducer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Reducer, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.reducers[name])
	}
	return out
}
