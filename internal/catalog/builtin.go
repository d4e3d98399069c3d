package catalog

import "github.com/papapumpkin/sprout/internal/growth"

// Builtin is the minimal pattern set used when no variety registry is wanted.
// It draws the same plant regardless of the requested variety.
type Builtin struct{}

var builtinPatterns = map[growth.Stage]growth.Pattern{
	growth.Seed: {
		"●",
	},
	growth.Germination: {
		"╱",
		"●",
		"░",
	},
	growth.Sprouting: {
		" |",
		" |",
		"●",
		"░░",
	},
	growth.Vegetative: {
		"\\|/",
		" | ",
		" | ",
		"●●●",
		"░░░░",
	},
	growth.Flowering: {
		"❀ ❀ ❀",
		" \\|/ ",
		"  |  ",
		"  |  ",
		" ●●● ",
		"░╱░╲░",
		"░░░░░░",
	},
	growth.TuberFormation: {
		"❀ ❀ ❀",
		" \\|/ ",
		"  |  ",
		"  |  ",
		"●●●●●",
		"░╱○○╲░",
		"░░░░░░░",
	},
	growth.Maturity: {
		"  ❀   ❀   ❀  ",
		"   \\ | /   ",
		"    \\|/    ",
		"     |     ",
		"     |     ",
		"   ●●●●●   ",
		"  ░╱●●●╲░  ",
		"  ░○●●●○░  ",
		"  ░░░░░░░  ",
	},
}

// Pattern implements Catalog. The variety is ignored.
func (Builtin) Pattern(_ string, stage growth.Stage) growth.Pattern {
	return lookup(builtinPatterns, stage)
}
