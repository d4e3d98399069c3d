package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/sprout/internal/growth"
)

// ErrNoVarieties is returned when a pack declares no [[variety]] tables.
var ErrNoVarieties = errors.New("pack declares no varieties")

// Pack is a set of varieties loaded from a TOML file.
//
//	[[variety]]
//	name = "purple_majesty"
//	description = "Deep purple skin"
//
//	[variety.stages]
//	seed = ["∘"]
//	maturity = [" ❀❀", " ││", "◍┴┴◍"]
type Pack struct {
	Source    string
	Varieties []*Variety
}

type packFile struct {
	Varieties []packVariety `toml:"variety"`
}

type packVariety struct {
	Name        string              `toml:"name"`
	Description string              `toml:"description"`
	Stages      map[string][]string `toml:"stages"`
}

// LoadPack reads and validates the variety pack at path.
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading pack %s: %w", path, err)
	}
	pack, err := ParsePack(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	pack.Source = path
	return pack, nil
}

// ParsePack decodes a TOML variety pack. Every variety needs a name and every
// stage key must name a declared growth stage.
func ParsePack(data []byte) (*Pack, error) {
	var file packFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing pack TOML: %w", err)
	}
	if len(file.Varieties) == 0 {
		return nil, ErrNoVarieties
	}

	pack := &Pack{}
	seen := make(map[string]bool, len(file.Varieties))
	for i, pv := range file.Varieties {
		name := strings.TrimSpace(pv.Name)
		if name == "" {
			return nil, fmt.Errorf("variety #%d: %w", i+1, ErrEmptyVarietyName)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("variety %q declared twice", name)
		}
		seen[key] = true

		v := &Variety{
			Name:        name,
			Description: pv.Description,
			Patterns:    make(map[growth.Stage]growth.Pattern, len(pv.Stages)),
		}
		for stageName, lines := range pv.Stages {
			stage, err := growth.ParseStage(stageName)
			if err != nil {
				return nil, fmt.Errorf("variety %q: %w", name, err)
			}
			v.Patterns[stage] = growth.Pattern(lines)
		}
		pack.Varieties = append(pack.Varieties, v)
	}
	return pack, nil
}

// Gap names a variety and the stages it leaves to the placeholder.
type Gap struct {
	Variety string
	Missing []growth.Stage
}

// Check reports the varieties that do not define every stage. Missing stages
// are not an error; they render as the placeholder.
func (p *Pack) Check() []Gap {
	var gaps []Gap
	for _, v := range p.Varieties {
		if missing := v.Missing(); len(missing) > 0 {
			gaps = append(gaps, Gap{Variety: v.Name, Missing: missing})
		}
	}
	return gaps
}
