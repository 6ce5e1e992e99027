// cycles is a terminal light cycle arena: two trail-laying cycles on a
// grid, walkers wandering between them, last rider alive wins.
//
// Usage:
//
//	cycles play              - Play a match (solo, duel, or demo)
//	cycles scores            - Show match history
//	cycles serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Render frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.cycles/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cycles",
	Short: "Light Cycles - grid duels in your terminal",
	Long: `Light Cycles is a terminal arena game. Each cycle leaves a solid
trail behind it; steering into a wall, a trail, or a walker is fatal.
Outlast the other rider to take the round.

Available commands:
  play     - Play a match against the CPU, a friend, or watch a demo
  scores   - View match history and per-mode tallies
  serve    - Start SSH server for remote play

Examples:
  cycles play
  cycles play --mode duel
  cycles play --difficulty hard --seed 42
  cycles scores --table
  cycles serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cycles/matches.db", "Path to match history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
