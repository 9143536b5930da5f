// Package registry holds the language packs available to a session.
// Packs are registered once at startup by the words loader, allowing the
// platform to list and look them up without knowing where they came from.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Registry maps language IDs to loaded packs.
// It satisfies wordle.PackSource.
type Registry struct {
	mu    sync.RWMutex
	packs map[string]*wordle.LanguagePack
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		packs: make(map[string]*wordle.LanguagePack),
	}
}

// Register adds a pack to the registry.
// Returns an error if a pack with the same ID is already registered.
func (r *Registry) Register(p *wordle.LanguagePack) error {
	if p == nil {
		return fmt.Errorf("registry: nil language pack")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := p.ID()
	if _, exists := r.packs[id]; exists {
		return fmt.Errorf("registry: language %q already registered", id)
	}

	r.packs[id] = p
	r.order = append(r.order, id)
	return nil
}

// List returns information about all registered packs, sorted by ID.
func (r *Registry) List() []wordle.PackInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]wordle.PackInfo, 0, len(r.packs))
	for _, p := range r.packs {
		result = append(result, p.Info())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Ordered returns information about all registered packs in registration
// order, which is the order of the languages index.
func (r *Registry) Ordered() []wordle.PackInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]wordle.PackInfo, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.packs[id].Info())
	}
	return result
}

// Get returns the pack with the given ID.
// The error wraps wordle.ErrUnknownLanguage if the ID is not registered.
func (r *Registry) Get(id string) (*wordle.LanguagePack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packs[id]
	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", id, wordle.ErrUnknownLanguage)
	}

	return p, nil
}

// Exists checks if a pack with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.packs[id]
	return ok
}

// Len returns the number of registered packs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.packs)
}
