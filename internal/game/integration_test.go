package game

import (
	"testing"

	"github.com/AryavP/AntBridge/internal/catalog"
	"github.com/AryavP/AntBridge/internal/feed"
)

// tinyCatalog builds a minimal set with a single one-ant objective, so a
// full game runs in a handful of turns.
func tinyCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cards := []*catalog.CardDef{
		{ID: "digger", Name: "Digger", Type: catalog.CardTypeWorker, Resources: 1},
		{
			ID: "hauler", Name: "Hauler", Type: catalog.CardTypeWorker,
			Cost: 2, Resources: 2, Copies: 8,
		},
	}
	objectives := []*catalog.ObjectiveDef{
		{
			ID: "sand_path", Name: "Sand Path", Tier: 1, AntsRequired: 1, VP: 2,
			Reward: catalog.Reward{Kind: catalog.RewardResources, Amount: 1},
		},
	}
	starter := []string{"digger", "digger", "digger", "digger", "digger"}
	c, err := catalog.New(cards, objectives, starter)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

// A complete game: Alice claims the only objective, it scores at the start
// of her next turn, the final tier is exhausted and she wins.
func TestFullGamePlaysToCompletion(t *testing.T) {
	e := NewEngine(Config{
		Seats: []Seat{
			{ID: "p1", Name: "Alice"},
			{ID: "p2", Name: "Bob"},
		},
		Catalog:   tinyCatalog(t),
		Seed:      1,
		NoShuffle: true,
	})
	if err := e.SetupGame(); err != nil {
		t.Fatalf("SetupGame: %v", err)
	}
	objID := e.State.ConstructionRow[0]

	// Turn 1 (Alice): claim the objective and pass.
	mustOK(t, e.PlaceAntOnConstruction("p1", "digger", objID))
	mustOK(t, e.EndTurn("p1"))

	// Turn 2 (Bob): the objective belongs to Alice; Bob can only pass.
	mustFail(t, e.PlaceAntOnConstruction("p2", "digger", objID))
	mustOK(t, e.EndTurn("p2"))

	// Alice's next turn never starts in earnest: the objective scores, the
	// only tier is exhausted and the game finalizes.
	if e.State.Status != StatusFinished {
		t.Fatalf("status = %s, want finished", e.State.Status)
	}
	if e.State.Winner != "p1" {
		t.Errorf("winner = %s, want p1", e.State.Winner)
	}
	p1 := e.State.Player("p1")
	if p1.VP != 2 {
		t.Errorf("p1 vp = %d, want 2", p1.VP)
	}
	if len(p1.CompletedObjectives) != 1 {
		t.Errorf("completed = %v, want the scored objective", p1.CompletedObjectives)
	}

	log := memLog(e)
	if len(log.EventsOfType(feed.EventGameOver)) != 1 {
		t.Error("expected a single game-over event")
	}
	if len(log.EventsOfType(feed.EventObjectiveScored)) != 1 {
		t.Error("expected a single scoring event")
	}
}

// Scoring waits for the owner's next turn start, which leaves the other
// player a window to destroy a filled objective.
func TestAttackWindowBeforeScoring(t *testing.T) {
	e := newTestEngine(t)
	objID := e.State.ConstructionRow[0]
	obj, _ := e.Catalog.Objective(objID)
	p1 := e.State.Player("p1")
	p2 := e.State.Player("p2")

	// Alice fills the objective on her turn.
	ants := make([]string, obj.AntsRequired)
	for i := range ants {
		ants[i] = "worker_ant"
	}
	setHand(p1, ants...)
	for _, id := range ants {
		mustOK(t, e.PlaceAntOnConstruction("p1", id, objID))
	}
	mustOK(t, e.EndTurn("p1"))

	// Bob's window: destroy it before Alice's turn starts.
	setHand(p2, "soldier_ant")
	mustOK(t, e.AttackPlayer("p2", "p1", []string{"soldier_ant"}))
	mustOK(t, e.EndTurn("p2"))

	if p1.VP != 0 {
		t.Errorf("p1 vp = %d, want 0: the objective died before scoring", p1.VP)
	}
	if p2.VP != 1 {
		t.Errorf("p2 vp = %d, want 1 from the successful attack", p2.VP)
	}
	if len(p1.CompletedObjectives) != 0 {
		t.Errorf("completed = %v, want none", p1.CompletedObjectives)
	}
}
