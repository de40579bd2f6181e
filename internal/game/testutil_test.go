package game

import (
	"testing"

	"github.com/AryavP/AntBridge/internal/catalog"
	"github.com/AryavP/AntBridge/internal/feed"
)

// newTestEngine builds a deterministic two-player game: fixed seed, no
// shuffling, memory logger. With NoShuffle the starter deck keeps its
// catalog order, so the opening hand is two Scout Ants and three Workers.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(Config{
		GameID: "test-game",
		Seats: []Seat{
			{ID: "p1", Name: "Alice"},
			{ID: "p2", Name: "Bob"},
		},
		Catalog:   catalog.Default(),
		Seed:      42,
		NoShuffle: true,
	})
	if err := e.SetupGame(); err != nil {
		t.Fatalf("SetupGame: %v", err)
	}
	return e
}

func newTestEngineThreePlayers(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(Config{
		GameID: "test-game-3p",
		Seats: []Seat{
			{ID: "p1", Name: "Alice"},
			{ID: "p2", Name: "Bob"},
			{ID: "p3", Name: "Carol"},
		},
		Catalog:   catalog.Default(),
		Seed:      42,
		NoShuffle: true,
	})
	if err := e.SetupGame(); err != nil {
		t.Fatalf("SetupGame: %v", err)
	}
	return e
}

func memLog(e *Engine) *feed.MemoryLogger {
	return e.Logger.(*feed.MemoryLogger)
}

func mustOK(t *testing.T, r Result) {
	t.Helper()
	if !r.OK {
		t.Fatalf("command failed: %s", r.Reason)
	}
}

func mustFail(t *testing.T, r Result) {
	t.Helper()
	if r.OK {
		t.Fatalf("command unexpectedly succeeded: %s", r.Summary)
	}
}

// setHand replaces a player's hand.
func setHand(p *Player, ids ...string) {
	p.Hand = append([]string(nil), ids...)
}

// setDeck replaces a player's deck. The last ID is the deck top.
func setDeck(p *Player, ids ...string) {
	p.Deck = append([]string(nil), ids...)
}

// cardMultiset counts every card the player holds across all piles and the
// construction zone.
func cardMultiset(p *Player) map[string]int {
	counts := make(map[string]int)
	for _, id := range p.Deck {
		counts[id]++
	}
	for _, id := range p.Hand {
		counts[id]++
	}
	for _, id := range p.Discard {
		counts[id]++
	}
	for _, ants := range p.ConstructionZone {
		for _, id := range ants {
			counts[id]++
		}
	}
	return counts
}

func sameMultiset(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
