package config

// DifficultyPreset represents a named difficulty level. Presets only
// retune the walker pool and the CPU pilot's flood budget; the grid and
// tick pacing stay as configured.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset.
// An empty or unknown preset leaves the config untouched.
func ApplyPreset(cfg *MatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Walkers.Count = 3
		cfg.Walkers.CadenceTicks = 3
		cfg.AI.FloodDepth = 12
	case DifficultyNormal:
		cfg.Walkers.Count = 5
		cfg.Walkers.CadenceTicks = 2
		cfg.AI.FloodDepth = 20
	case DifficultyHard:
		cfg.Walkers.Count = 8
		cfg.Walkers.CadenceTicks = 1
		cfg.AI.FloodDepth = 30
	}
}
