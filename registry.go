package ggbench

import (
	"fmt"
	"strconv"
	"sync"
)

// Factory creates a bench bound to the shared configuration.
type Factory func(params *Params) Bench

// RegistryEntry represents a registered bench.
type RegistryEntry struct {
	// Name is the unique identifier of the bench.
	Name string

	// Factory creates bench instances.
	Factory Factory
}

// Registry maps bench names to factories in registration order. The
// order defines bench indices, which front ends cycle through.
//
// A Registry is built explicitly during start-up and passed to the View:
//
//	reg := ggbench.DefaultRegistry()
//	reg.Register("MyBench", newMyBench)
//	view, err := ggbench.NewView(host, reg)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
	order   []string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// DefaultRegistry returns a registry holding the built-in benches:
// ParticleBench first, then SolidRectBench.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(ParticleBenchName, func(p *Params) Bench { return NewParticleBench(p) })
	_ = r.Register(SolidRectBenchName, func(p *Params) Bench { return NewSolidRectBench(p) })
	return r
}

// Register adds a bench. Empty names, nil factories and names that are
// already registered are rejected.
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case name == "":
		return ErrEmptyName
	case factory == nil:
		return fmt.Errorf("%w: factory for %q", ErrNilResource, name)
	}
	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.entries[name] = &RegistryEntry{Name: name, Factory: factory}
	r.order = append(r.order, name)
	return nil
}

// Len returns the number of registered benches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Names returns all bench names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Get returns information about a specific bench.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// New creates the bench registered under name.
func (r *Registry) New(name string, params *Params) (Bench, error) {
	entry, ok := r.Get(name)
	if !ok {
		return nil, &BenchNotFoundError{Name: name}
	}
	return entry.Factory(params), nil
}

// NewAt creates the bench with the given registration index.
func (r *Registry) NewAt(index int, params *Params) (Bench, error) {
	r.mu.RLock()
	if index < 0 || index >= len(r.order) {
		r.mu.RUnlock()
		return nil, &BenchNotFoundError{Name: "#" + strconv.Itoa(index)}
	}
	name := r.order[index]
	r.mu.RUnlock()

	return r.New(name, params)
}

// IndexOf returns the registration index of name, or -1.
func (r *Registry) IndexOf(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, n := range r.order {
		if n == name {
			return i
		}
	}
	return -1
}
