package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridrun/lightcycles/internal/config"
	"github.com/gridrun/lightcycles/internal/core"
	"github.com/gridrun/lightcycles/internal/game"
	"github.com/gridrun/lightcycles/internal/platform/tui"
	"github.com/gridrun/lightcycles/internal/storage"
)

var (
	flagMode       string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a light cycle match in the terminal.

Controls:
  A/D          - Steer player 1 (arrows also work in solo mode)
  Left/Right   - Steer player 2 (duel mode)
  Enter        - Start match
  R            - Rematch (after game over)
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Modes:
  solo   - You against the CPU pilot (default)
  duel   - Two players on one keyboard
  demo   - CPU against CPU, sit back and watch

Difficulty presets retune walker density and the CPU's lookahead:
  easy, normal, hard

Examples:
  cycles play
  cycles play --mode duel
  cycles play --difficulty hard
  cycles play --config ./my-arena.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "solo", "Match mode: solo, duel, demo")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	matchCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&matchCfg, config.DifficultyPreset(flagDifficulty))
	}

	opts, err := matchCfg.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid match config: %v\n", err)
		os.Exit(1)
	}

	keymap, err := applyMode(&opts, flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the initial screen buffer
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     flagFPS,
		Seed:    flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	engine := game.NewEngine(opts, rc.Seed)
	runErr := tui.Run(engine, store, keymap, rc, flagMode)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}

// applyMode overrides the human/CPU split from the config with the
// requested mode and picks the matching keyboard layout.
func applyMode(opts *game.Options, mode string) (tui.KeyMap, error) {
	switch mode {
	case "solo":
		for i := range opts.Starts {
			opts.Starts[i].Human = i == 0
		}
		return tui.SoloKeyMap(), nil
	case "duel":
		for i := range opts.Starts {
			opts.Starts[i].Human = true
		}
		return tui.DefaultKeyMap(), nil
	case "demo":
		for i := range opts.Starts {
			opts.Starts[i].Human = false
		}
		return tui.SoloKeyMap(), nil
	default:
		return tui.KeyMap{}, fmt.Errorf("unknown mode %q (want solo, duel, or demo)", mode)
	}
}
