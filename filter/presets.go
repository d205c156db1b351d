package filter

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Preset is a named, pre-built filter configuration. Applying a preset
// replaces the active config wholesale.
type Preset struct {
	ID     string
	Name   string
	Config Config
}

var presets = map[string]Preset{
	"exclude-transfer-expenses": {
		ID:   "exclude-transfer-expenses",
		Name: "Exclude transfer expenses",
		Config: Config{
			Enabled:     true,
			CombineMode: ModeAND,
			Rules: []Rule{
				{
					ID:      "no-transfer-expenses",
					Name:    "Exclude transfer expenses (36)",
					Type:    MatchStartsWith,
					Pattern: "36",
					Enabled: true,
					Action:  ActionExclude,
				},
			},
		},
	},
	"exclude-internal-charges": {
		ID:   "exclude-internal-charges",
		Name: "Exclude internal charges and credits",
		Config: Config{
			Enabled:     true,
			CombineMode: ModeAND,
			Rules: []Rule{
				{
					ID:      "no-internal-charges",
					Name:    "Exclude internal charges (39)",
					Type:    MatchStartsWith,
					Pattern: "39",
					Enabled: true,
					Action:  ActionExclude,
				},
				{
					ID:      "no-internal-credits",
					Name:    "Exclude internal credits (49)",
					Type:    MatchStartsWith,
					Pattern: "49",
					Enabled: true,
					Action:  ActionExclude,
				},
			},
		},
	},
	"taxes-only": {
		ID:   "taxes-only",
		Name: "Tax revenues only",
		Config: Config{
			Enabled:     true,
			CombineMode: ModeOR,
			Rules: []Rule{
				{
					ID:      "only-taxes",
					Name:    "Include tax revenues (40)",
					Type:    MatchStartsWith,
					Pattern: "40",
					Enabled: true,
					Action:  ActionInclude,
				},
			},
		},
	},
}

// GetPreset returns the preset with the given id.
func GetPreset(id string) (Preset, bool) {
	p, ok := presets[id]
	return p, ok
}

// Presets returns all presets, sorted by id.
func Presets() []Preset {
	ids := maps.Keys(presets)
	slices.Sort(ids)
	out := make([]Preset, 0, len(ids))
	for _, id := range ids {
		out = append(out, presets[id])
	}
	return out
}
