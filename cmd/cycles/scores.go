package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridrun/lightcycles/internal/platform/tui"
	"github.com/gridrun/lightcycles/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTable bool
	flagScoresClear string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show match history",
	Long: `Display recent matches and per-mode win tallies.

Examples:
  cycles scores
  cycles scores --limit 25
  cycles scores --table
  cycles scores --clear duel`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent matches to show")
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Open the interactive history table")
	scoresCmd.Flags().StringVar(&flagScoresClear, "clear", "", "Delete recorded matches for the given mode")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear != "" {
		if err := store.ClearMatches(flagScoresClear); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared recorded %s matches.\n", flagScoresClear)
		return
	}

	if flagScoresTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	tallies, err := store.AllTallies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving tallies: %v\n", err)
		os.Exit(1)
	}
	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cycles play' to record the first one!")
		return
	}

	for _, tally := range tallies {
		fmt.Printf("  %-6s  %d matches  (P1 %d / P2 %d / draws %d)\n",
			tally.Mode, tally.Matches, tally.Wins1, tally.Wins2, tally.Draws)
	}
	fmt.Println()

	fmt.Printf("  %-6s  %-14s  %-8s  %-7s  %s\n", "Mode", "Result", "Score", "Ticks", "Date")
	fmt.Printf("  %-6s  %-14s  %-8s  %-7s  %s\n", "----", "------", "-----", "-----", "----")

	for _, rec := range matches {
		result := "Draw"
		if !rec.Draw {
			result = fmt.Sprintf("Player %d wins", rec.Winner)
		}
		fmt.Printf("  %-6s  %-14s  %-8s  %-7d  %s\n",
			rec.Mode,
			result,
			fmt.Sprintf("%d:%d", rec.Score1, rec.Score2),
			rec.Ticks,
			rec.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
