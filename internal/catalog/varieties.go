package catalog

import "github.com/papapumpkin/sprout/internal/growth"

func stockVarieties() []*Variety {
	return []*Variety{
		{
			Name:        "russet",
			Description: "Classic russet potato",
			Patterns: map[growth.Stage]growth.Pattern{
				growth.Seed:           {"·"},
				growth.Germination:    {"·", "┴"},
				growth.Sprouting:      {" │", "·┴"},
				growth.Vegetative:     {" ┌┐", " ││", "·┴┴"},
				growth.Flowering:      {" ❀❀", " ┌┐", " ││", "·┴┴"},
				growth.TuberFormation: {" ❀❀", " ┌┐", " ││", "○┴┴○"},
				growth.Maturity:       {" ❀❀❀", " ┌─┐", " │ │", "●┴─┴●"},
			},
		},
		{
			Name:        "yukon_gold",
			Description: "Yukon Gold with yellow flesh",
			Patterns: map[growth.Stage]growth.Pattern{
				growth.Seed:           {"°"},
				growth.Germination:    {"°", "┬"},
				growth.Sprouting:      {" ║", "°┬"},
				growth.Vegetative:     {" ╔╗", " ║║", "°┬┬"},
				growth.Flowering:      {" ✿✿", " ╔╗", " ║║", "°┬┬"},
				growth.TuberFormation: {" ✿✿", " ╔╗", " ║║", "◐┬┬◑"},
				growth.Maturity:       {" ✿✿✿", " ╔═╗", " ║ ║", "◉┬═┬◉"},
			},
		},
		{
			Name:        "red",
			Description: "Red-skinned potato",
			Patterns: map[growth.Stage]growth.Pattern{
				growth.Seed:           {"•"},
				growth.Germination:    {"•", "┼"},
				growth.Sprouting:      {" ┃", "•┼"},
				growth.Vegetative:     {" ┏┓", " ┃┃", "•┼┼"},
				growth.Flowering:      {" ❋❋", " ┏┓", " ┃┃", "•┼┼"},
				growth.TuberFormation: {" ❋❋", " ┏┓", " ┃┃", "◈┼┼◈"},
				growth.Maturity:       {" ❋❋❋", " ┏━┓", " ┃ ┃", "◆┼━┼◆"},
			},
		},
		{
			Name:        "fingerling",
			Description: "Small elongated fingerling",
			Patterns: map[growth.Stage]growth.Pattern{
				growth.Seed:           {"⋅"},
				growth.Germination:    {"⋅", "╷"},
				growth.Sprouting:      {" │", "⋅╷"},
				growth.Vegetative:     {" ╭╮", " ││", "⋅╷╷"},
				growth.Flowering:      {" ✾✾", " ╭╮", " ││", "⋅╷╷"},
				growth.TuberFormation: {" ✾✾", " ╭╮", " ││", "○╷╷○"},
				growth.Maturity:       {" ✾✾✾", " ╭─╮", " │ │", "◇╷─╷◇"},
			},
		},
	}
}
