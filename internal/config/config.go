// Package config provides YAML-based match configuration loading and
// difficulty presets for the light-cycle arena.
package config

import (
	"fmt"
	"time"

	"github.com/gridrun/lightcycles/internal/core"
	"github.com/gridrun/lightcycles/internal/game"
)

// MatchConfig contains all tunable parameters for a match. The values
// are presentation- and balance-tuning knobs, not invariants; the
// simulation works with any positive settings.
type MatchConfig struct {
	Grid    GridConfig     `yaml:"grid"`
	Tick    TickConfig     `yaml:"tick"`
	Walkers WalkerConfig   `yaml:"walkers"`
	AI      AIConfig       `yaml:"ai"`
	Players []PlayerConfig `yaml:"players"`
}

// GridConfig defines the arena bounds.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TickConfig defines simulation pacing.
type TickConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// WalkerConfig defines the roaming hazard pool.
type WalkerConfig struct {
	Count        int `yaml:"count"`
	CadenceTicks int `yaml:"cadence_ticks"` // walkers move every Nth tick
}

// AIConfig defines the CPU pilot's flood-fill budget.
type AIConfig struct {
	FloodDepth int `yaml:"flood_depth"` // visit cap is flood_depth * 5
}

// PlayerConfig defines one cycle's start state.
type PlayerConfig struct {
	StartX int    `yaml:"start_x"`
	StartY int    `yaml:"start_y"`
	Dir    string `yaml:"dir"`
	Color  string `yaml:"color"`
	Human  bool   `yaml:"human"`
}

// Options translates the loaded config into engine options. It validates
// the parts the YAML schema cannot: direction names, player count and
// start positions inside the grid.
func (c MatchConfig) Options() (game.Options, error) {
	arena := core.Arena{Width: c.Grid.Width, Height: c.Grid.Height}
	if arena.Width <= 0 || arena.Height <= 0 {
		return game.Options{}, fmt.Errorf("config: invalid grid %dx%d", arena.Width, arena.Height)
	}
	if len(c.Players) == 0 {
		return game.Options{}, fmt.Errorf("config: no players configured")
	}

	opts := game.Options{
		Arena:         arena,
		TickInterval:  time.Duration(c.Tick.IntervalMs) * time.Millisecond,
		WalkerCount:   c.Walkers.Count,
		WalkerCadence: c.Walkers.CadenceTicks,
		FloodDepth:    c.AI.FloodDepth,
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = game.DefaultTickInterval
	}

	for i, p := range c.Players {
		dir, err := core.ParseDir(p.Dir)
		if err != nil {
			return game.Options{}, fmt.Errorf("config: player %d: %w", i+1, err)
		}
		pos := core.C(p.StartX, p.StartY)
		if !arena.Contains(pos) {
			return game.Options{}, fmt.Errorf("config: player %d starts at %v, outside the %dx%d grid",
				i+1, pos, arena.Width, arena.Height)
		}
		opts.Starts = append(opts.Starts, game.StartSpot{
			ID:    core.PlayerID(i + 1),
			Pos:   pos,
			Dir:   dir,
			Color: core.ParseColor(p.Color),
			Human: p.Human,
		})
	}

	return opts, nil
}
