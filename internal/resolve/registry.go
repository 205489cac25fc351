package resolve

import (
	"fmt"
	"sync"

	"github.com/ppiankov/capsule/internal/model"
)

// Tier is a source at a rank. Tiers are listed in descending priority.
type Tier struct {
	Name   model.Tier
	Source Source
}

// CategorySpec binds a category to its policy and ordered tiers
type CategorySpec struct {
	Category model.Category
	Policy   Policy
	Tiers    []Tier
}

// Registry maps categories to their specs
type Registry struct {
	mu    sync.RWMutex
	specs map[model.Category]CategorySpec
	order []model.Category
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{specs: make(map[model.Category]CategorySpec)}
}

// Register adds or replaces the spec for a category
func (r *Registry) Register(spec CategorySpec) error {
	if _, ok := spec.Category.Info(); !ok {
		return fmt.Errorf("%w: unknown category %q", model.ErrInvalidInput, spec.Category)
	}
	if len(spec.Tiers) == 0 {
		return fmt.Errorf("category %s has no tiers", spec.Category)
	}
	for i, tier := range spec.Tiers {
		if tier.Source == nil {
			return fmt.Errorf("category %s tier %d (%s) has no source", spec.Category, i, tier.Name)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.specs[spec.Category]; !exists {
		r.order = append(r.order, spec.Category)
	}
	tiers := make([]Tier, len(spec.Tiers))
	copy(tiers, spec.Tiers)
	spec.Tiers = tiers
	r.specs[spec.Category] = spec
	return nil
}

// Lookup returns the spec registered for a category
func (r *Registry) Lookup(c model.Category) (CategorySpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[c]
	return spec, ok
}

// Categories returns registered categories in registration order
func (r *Registry) Categories() []model.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Category, len(r.order))
	copy(out, r.order)
	return out
}
