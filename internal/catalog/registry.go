package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/papapumpkin/sprout/internal/growth"
)

// FallbackVariety is the variety resolved for any unknown name.
const FallbackVariety = "russet"

// ErrEmptyVarietyName is returned when registering a variety without a name.
var ErrEmptyVarietyName = errors.New("variety name is empty")

// Variety is a named family of patterns across the growth stages.
type Variety struct {
	Name        string
	Description string
	Patterns    map[growth.Stage]growth.Pattern
}

// Pattern returns the variety's pattern for stage, or the placeholder.
func (v *Variety) Pattern(stage growth.Stage) growth.Pattern {
	if v == nil {
		return growth.Placeholder.Clone()
	}
	return lookup(v.Patterns, stage)
}

// Missing lists the declared stages this variety has no pattern for.
func (v *Variety) Missing() []growth.Stage {
	var out []growth.Stage
	for _, s := range growth.Stages() {
		if p, ok := v.Patterns[s]; !ok || p.Empty() {
			out = append(out, s)
		}
	}
	return out
}

// Registry maps lower-cased variety names to varieties. Lookups of unknown
// names resolve to the fallback variety rather than failing. A Registry is
// populated at startup and read-only afterwards.
type Registry struct {
	varieties map[string]*Variety
	order     []string
	fallback  string
}

// NewRegistry creates an empty registry that resolves unknown names to
// fallback.
func NewRegistry(fallback string) *Registry {
	return &Registry{
		varieties: make(map[string]*Variety),
		fallback:  strings.ToLower(fallback),
	}
}

// Default returns a registry holding the stock varieties with russet as the
// fallback.
func Default() *Registry {
	r := NewRegistry(FallbackVariety)
	for _, v := range stockVarieties() {
		// Stock varieties always carry a name.
		_ = r.Register(v)
	}
	return r
}

// Register adds v, replacing any variety with the same (case-insensitive)
// name. Replacement keeps the original registration position.
func (r *Registry) Register(v *Variety) error {
	if v == nil || strings.TrimSpace(v.Name) == "" {
		return ErrEmptyVarietyName
	}
	key := strings.ToLower(strings.TrimSpace(v.Name))

	if _, exists := r.varieties[key]; !exists {
		r.order = append(r.order, key)
	}
	r.varieties[key] = v
	return nil
}

// Merge registers every variety of pack.
func (r *Registry) Merge(pack *Pack) error {
	if pack == nil {
		return nil
	}
	for _, v := range pack.Varieties {
		if err := r.Register(v); err != nil {
			return fmt.Errorf("catalog: merge pack %s: %w", pack.Source, err)
		}
	}
	return nil
}

// Lookup resolves name case-insensitively. Unknown names resolve to the
// fallback variety; the result is nil only when the fallback itself is not
// registered.
func (r *Registry) Lookup(name string) *Variety {
	if v, ok := r.varieties[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v
	}
	return r.varieties[r.fallback]
}

// Has reports whether name is registered, without applying the fallback.
func (r *Registry) Has(name string) bool {
	_, ok := r.varieties[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Fallback returns the name unknown varieties resolve to.
func (r *Registry) Fallback() string {
	return r.fallback
}

// Names returns the registered variety names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Pattern implements Catalog.
func (r *Registry) Pattern(variety string, stage growth.Stage) growth.Pattern {
	return r.Lookup(variety).Pattern(stage)
}
