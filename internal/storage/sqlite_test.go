package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gridrun/lightcycles/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	records := []MatchRecord{
		{Mode: "solo", Winner: core.Player1, Score1: 1, Ticks: 120},
		{Mode: "solo", Winner: core.Player2, Score2: 1, Ticks: 300},
		{Mode: "duel", Draw: true, Ticks: 45},
	}
	for _, rec := range records {
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d matches, expected 3", len(recent))
	}

	// Newest first.
	if recent[0].Mode != "duel" || !recent[0].Draw {
		t.Errorf("newest match = %+v, expected the duel draw", recent[0])
	}
	if recent[2].Winner != core.Player1 {
		t.Errorf("oldest match winner = %v, expected player 1", recent[2].Winner)
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		if _, err := store.SaveMatch(MatchRecord{Mode: "solo", Winner: core.Player1}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(5)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("got %d matches, expected 5", len(recent))
	}
}

func TestStoreModeTally(t *testing.T) {
	store := openTestStore(t)

	outcomes := []MatchRecord{
		{Mode: "solo", Winner: core.Player1},
		{Mode: "solo", Winner: core.Player1},
		{Mode: "solo", Winner: core.Player2},
		{Mode: "solo", Draw: true},
		{Mode: "duel", Winner: core.Player2},
	}
	for _, rec := range outcomes {
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	tally, err := store.ModeTally("solo")
	if err != nil {
		t.Fatalf("ModeTally() failed: %v", err)
	}
	if tally.Matches != 4 || tally.Wins1 != 2 || tally.Wins2 != 1 || tally.Draws != 1 {
		t.Errorf("solo tally = %+v, expected 4 matches, 2/1/1", tally)
	}

	all, err := store.AllTallies()
	if err != nil {
		t.Fatalf("AllTallies() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d tallies, expected 2 modes", len(all))
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchRecord{Mode: "solo", Winner: core.Player1}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveMatch(MatchRecord{Mode: "duel", Winner: core.Player1}); err != nil {
		t.Fatal(err)
	}

	if err := store.ClearMatches("solo"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	tally, err := store.ModeTally("solo")
	if err != nil {
		t.Fatal(err)
	}
	if tally.Matches != 0 {
		t.Errorf("solo still has %d matches after clear", tally.Matches)
	}

	duel, err := store.ModeTally("duel")
	if err != nil {
		t.Fatal(err)
	}
	if duel.Matches != 1 {
		t.Error("clear removed matches from another mode")
	}
}

func TestStoreEmptyTally(t *testing.T) {
	store := openTestStore(t)

	tally, err := store.ModeTally("solo")
	if err != nil {
		t.Fatalf("ModeTally() on empty store failed: %v", err)
	}
	if tally.Matches != 0 {
		t.Errorf("empty store tally = %+v", tally)
	}
}
