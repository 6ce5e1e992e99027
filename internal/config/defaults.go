package config

import (
	_ "embed"
)

//go:embed defaults/cycles.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the hardcoded default configuration, used as
// the last-resort fallback if the embedded YAML fails to parse.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Grid: GridConfig{
			Width:  60,
			Height: 40,
		},
		Tick: TickConfig{
			IntervalMs: 80,
		},
		Walkers: WalkerConfig{
			Count:        5,
			CadenceTicks: 2,
		},
		AI: AIConfig{
			FloodDepth: 20,
		},
		Players: []PlayerConfig{
			{StartX: 10, StartY: 20, Dir: "right", Color: "cyan", Human: true},
			{StartX: 49, StartY: 20, Dir: "left", Color: "orange", Human: false},
		},
	}
}
