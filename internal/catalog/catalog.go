// Package catalog resolves the glyph pattern drawn for a (variety, stage)
// pair. Two sources are available: a single built-in pattern set and a
// registry of named varieties that can be extended with TOML variety packs.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/papapumpkin/sprout/internal/growth"
)

// Catalog sources selectable at startup.
const (
	SourceRegistry = "registry"
	SourceBuiltin  = "builtin"
)

// ErrUnknownSource is returned by New for a source name it does not know.
var ErrUnknownSource = errors.New("unknown catalog source")

// Catalog returns the pattern for a stage of a variety. Implementations never
// return an empty pattern; an unmapped stage yields growth.Placeholder.
type Catalog interface {
	Pattern(variety string, stage growth.Stage) growth.Pattern
}

// New builds the catalog named by source. For the registry source, a
// non-empty packPath is loaded and merged over the default varieties.
func New(source, packPath string) (Catalog, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case SourceBuiltin:
		return Builtin{}, nil
	case SourceRegistry, "":
		reg, err := LoadRegistry(packPath)
		if err != nil {
			return nil, err
		}
		return reg, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
}

// LoadRegistry returns the default registry with the pack at packPath merged
// over it. An empty packPath yields the stock varieties alone.
func LoadRegistry(packPath string) (*Registry, error) {
	reg := Default()
	if packPath == "" {
		return reg, nil
	}
	pack, err := LoadPack(packPath)
	if err != nil {
		return nil, err
	}
	if err := reg.Merge(pack); err != nil {
		return nil, err
	}
	return reg, nil
}

// lookup returns the pattern for stage, or the placeholder when it is
// missing or empty.
func lookup(patterns map[growth.Stage]growth.Pattern, stage growth.Stage) growth.Pattern {
	p, ok := patterns[stage]
	if !ok || p.Empty() {
		return growth.Placeholder.Clone()
	}
	return p.Clone()
}
