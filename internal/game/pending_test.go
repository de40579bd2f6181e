package game

import (
	"testing"
)

func scoutEvent(t *testing.T, e *Engine, playerID string) *PendingEvent {
	t.Helper()
	q := e.PendingFor(playerID)
	if len(q) == 0 {
		t.Fatal("expected a pending event")
	}
	ev := q[0]
	if ev.Kind != PendingScout {
		t.Fatalf("pending kind = %s, want scout", ev.Kind)
	}
	return ev
}

func TestScoutRevealsTopThree(t *testing.T) {
	e := newTestEngine(t)
	p := e.State.Player("p1")
	setDeck(p, "worker_ant", "soldier_ant", "forager_ant", "queen_ant")
	setHand(p, "pathfinder_ant")

	mustOK(t, e.PlayCard("p1", "pathfinder_ant"))

	ev := scoutEvent(t, e, "p1")
	if len(ev.Cards) != 3 {
		t.Fatalf("revealed %d cards, want 3", len(ev.Cards))
	}
	// Deck top is the last element, so the reveal order is queen, forager,
	// soldier; the revealed cards are held out of the deck entirely.
	if ev.Cards[0] != "queen_ant" || ev.Cards[1] != "forager_ant" || ev.Cards[2] != "soldier_ant" {
		t.Errorf("revealed = %v, want deck top first", ev.Cards)
	}
	if len(p.Deck) != 1 {
		t.Errorf("deck = %d cards, want 1 left", len(p.Deck))
	}
}

func TestScoutReshufflesShortDeck(t *testing.T) {
	e := newTestEngine(t)
	p := e.State.Player("p1")
	// Two cards in deck, one in discard: the discard must fold into the
	// deck first, giving exactly three candidates.
	setDeck(p, "worker_ant", "soldier_ant")
	p.Discard = []string{"forager_ant"}
	setHand(p, "pathfinder_ant")

	mustOK(t, e.PlayCard("p1", "pathfinder_ant"))

	ev := scoutEvent(t, e, "p1")
	if len(ev.Cards) != 3 {
		t.Fatalf("revealed %d candidates, want 3 (2 deck + 1 reshuffled)", len(ev.Cards))
	}
	if len(p.Deck) != 0 {
		t.Errorf("deck = %d cards, want 0", len(p.Deck))
	}
	if len(p.Discard) != 1 {
		// Only the played Pathfinder Ant itself.
		t.Errorf("discard = %v, want just the played card", p.Discard)
	}
}

func TestCompleteScoutKeepsAndBottoms(t *testing.T) {
	e := newTestEngine(t)
	p := e.State.Player("p1")
	setDeck(p, "worker_ant", "soldier_ant", "forager_ant", "queen_ant")
	setHand(p, "winged_scout") // scout with a keep count of 2

	mustOK(t, e.PlayCard("p1", "winged_scout"))
	ev := scoutEvent(t, e, "p1")

	mustOK(t, e.CompleteScout("p1", ev.ID, []string{"queen_ant", "soldier_ant"}))

	if !p.HasInHand("queen_ant") || !p.HasInHand("soldier_ant") {
		t.Error("kept cards should be in hand")
	}
	// The unkept Forager goes to the bottom, under the remaining Worker.
	if len(p.Deck) != 2 || p.Deck[0] != "forager_ant" || p.Deck[1] != "worker_ant" {
		t.Errorf("deck = %v, want forager under the worker", p.Deck)
	}
	if e.HasPending("p1") {
		t.Error("resolved event should leave the queue")
	}
}

func TestCompleteScoutRejectsOverKeep(t *testing.T) {
	e := newTestEngine(t)
	p := e.State.Player("p1")
	setDeck(p, "worker_ant", "soldier_ant", "forager_ant", "queen_ant")
	setHand(p, "pathfinder_ant") // keep count 1

	mustOK(t, e.PlayCard("p1", "pathfinder_ant"))
	ev := scoutEvent(t, e, "p1")

	mustFail(t, e.CompleteScout("p1", ev.ID, []string{"queen_ant", "forager_ant"}))
	mustFail(t, e.CompleteScout("p1", ev.ID, []string{"worker_ant"})) // not revealed

	if !e.HasPending("p1") {
		t.Error("failed resolution must keep the event queued")
	}
}

func TestCancelScoutRestoresDeckOrder(t *testing.T) {
	e := newTestEngine(t)
	p := e.State.Player("p1")
	setDeck(p, "worker_ant", "soldier_ant", "forager_ant", "queen_ant")
	setHand(p, "pathfinder_ant")

	mustOK(t, e.PlayCard("p1", "pathfinder_ant"))
	ev := scoutEvent(t, e, "p1")

	mustOK(t, e.CancelScout("p1", ev.ID))

	want := []string{"worker_ant", "soldier_ant", "forager_ant", "queen_ant"}
	if len(p.Deck) != len(want) {
		t.Fatalf("deck = %v, want original order restored", p.Deck)
	}
	for i, id := range want {
		if p.Deck[i] != id {
			t.Fatalf("deck = %v, want %v", p.Deck, want)
		}
	}
}

func TestPendingScoutExpiresAtTurnEndWithoutLosingCards(t *testing.T) {
	e := newTestEngine(t)
	p := e.State.Player("p1")
	setDeck(p, "worker_ant", "soldier_ant", "forager_ant", "queen_ant")
	setHand(p, "pathfinder_ant")

	mustOK(t, e.PlayCard("p1", "pathfinder_ant"))
	before := cardMultiset(p)
	for _, ev := range e.PendingFor("p1") {
		for _, id := range ev.Cards {
			before[id]++
		}
	}

	mustOK(t, e.EndTurn("p1"))

	if e.HasPending("p1") {
		t.Error("pending events must not survive the turn boundary")
	}
	if !sameMultiset(before, cardMultiset(p)) {
		t.Errorf("cards lost at turn boundary: before %v, after %v", before, cardMultiset(p))
	}
}

func TestStealForcesVictimDiscard(t *testing.T) {
	e := newTestEngine(t)
	p1 := e.State.Player("p1")
	p2 := e.State.Player("p2")
	setHand(p1, "raider_ant")
	setHand(p2, "worker_ant", "scout_ant", "forager_ant")
	p2.ConstructionZone["leaf_bridge"] = []string{"worker_ant"}

	mustOK(t, e.AttackPlayer("p1", "p2", []string{"raider_ant"}))

	q := e.PendingFor("p2")
	if len(q) != 1 || q[0].Kind != PendingDiscard {
		t.Fatalf("pending = %v, want one forced discard on the victim", q)
	}
	if q[0].Source != "p1" {
		t.Errorf("source = %s, want the attacker p1", q[0].Source)
	}

	mustFail(t, e.CompleteDiscard("p2", q[0].ID, nil))                   // wrong count
	mustFail(t, e.CompleteDiscard("p2", q[0].ID, []string{"queen_ant"})) // not in hand
	mustOK(t, e.CompleteDiscard("p2", q[0].ID, []string{"scout_ant"}))

	if len(p2.Hand) != 2 {
		t.Errorf("victim hand = %d cards, want 2", len(p2.Hand))
	}
	if e.HasPending("p2") {
		t.Error("resolved discard should leave the queue")
	}
}

func TestSabotageTargetsFirstOpponentWithAnts(t *testing.T) {
	e := newTestEngineThreePlayers(t)
	p1 := e.State.Player("p1")
	p3 := e.State.Player("p3")
	setHand(p1, "saboteur_ant")
	// p2 has no ants, so the sabotage falls through to p3.
	p3.ConstructionZone["leaf_bridge"] = []string{"worker_ant", "soldier_ant"}

	mustOK(t, e.PlayCard("p1", "saboteur_ant"))

	q := e.PendingFor("p3")
	if len(q) != 1 || q[0].Kind != PendingSabotage {
		t.Fatalf("pending = %v, want one sabotage on p3", q)
	}

	mustOK(t, e.CompleteSabotage("p3", q[0].ID, []AntRef{
		{ObjectiveID: "leaf_bridge", CardID: "soldier_ant"},
	}))

	if len(p3.ConstructionZone["leaf_bridge"]) != 1 {
		t.Errorf("zone = %v, want one ant left", p3.ConstructionZone["leaf_bridge"])
	}
	if len(p3.Discard) != 1 || p3.Discard[0] != "soldier_ant" {
		t.Errorf("discard = %v, want the removed Soldier Ant", p3.Discard)
	}
}

func TestSabotageFizzlesWithNoEligibleTarget(t *testing.T) {
	e := newTestEngine(t)
	p1 := e.State.Player("p1")
	setHand(p1, "saboteur_ant")

	mustOK(t, e.PlayCard("p1", "saboteur_ant"))

	if e.HasPending("p1") || e.HasPending("p2") {
		t.Error("sabotage with no ants anywhere should fizzle, not queue")
	}
}

func TestCompleteSabotageRejectsWrongAnt(t *testing.T) {
	e := newTestEngine(t)
	p2 := e.State.Player("p2")
	p2.ConstructionZone["leaf_bridge"] = []string{"worker_ant"}
	e.queuePending(&PendingEvent{ID: "ev1", Kind: PendingSabotage, Player: "p2", Source: "p1", Count: 1})

	mustFail(t, e.CompleteSabotage("p2", "ev1", []AntRef{
		{ObjectiveID: "leaf_bridge", CardID: "queen_ant"},
	}))

	if len(p2.ConstructionZone["leaf_bridge"]) != 1 {
		t.Error("failed resolution must not mutate the zone")
	}
}

func TestTrashScrapsStartersAndRecirculatesTheRest(t *testing.T) {
	e := newTestEngine(t)
	p := e.State.Player("p1")
	setHand(p, "cleaner_ant", "worker_ant")
	p.Discard = []string{"forager_ant"}

	mustOK(t, e.PlayCard("p1", "cleaner_ant"))
	q := e.PendingFor("p1")
	if len(q) != 1 || q[0].Kind != PendingTrash {
		t.Fatalf("pending = %v, want one trash event", q)
	}
	marketBefore := len(e.State.MarketDeck)

	// Count 1 allows a single card; trash the starter Worker first.
	mustFail(t, e.CompleteTrash("p1", q[0].ID, []string{"worker_ant", "forager_ant"}))
	mustOK(t, e.CompleteTrash("p1", q[0].ID, []string{"worker_ant"}))

	if p.HasInHand("worker_ant") {
		t.Error("trashed Worker should leave the hand")
	}
	if len(e.State.MarketDeck) != marketBefore {
		t.Error("starter cards never return to the market")
	}
}

func TestTrashNonStarterReturnsToMarket(t *testing.T) {
	e := newTestEngine(t)
	p := e.State.Player("p1")
	setHand(p)
	p.Discard = []string{"forager_ant"}
	e.queuePending(&PendingEvent{ID: "ev1", Kind: PendingTrash, Player: "p1", Source: "p1", Count: 1})
	marketBefore := len(e.State.MarketDeck)

	mustOK(t, e.CompleteTrash("p1", "ev1", []string{"forager_ant"}))

	if len(p.Discard) != 0 {
		t.Errorf("discard = %v, want empty", p.Discard)
	}
	if len(e.State.MarketDeck) != marketBefore+1 {
		t.Error("non-starter trash should recirculate into the market deck")
	}
}

func TestDefaultResolutionUnblocksForcedDiscard(t *testing.T) {
	e := newTestEngine(t)
	p2 := e.State.Player("p2")
	setHand(p2, "worker_ant", "scout_ant")
	e.queuePending(&PendingEvent{ID: "ev1", Kind: PendingDiscard, Player: "p2", Source: "p1", Count: 1})

	mustOK(t, e.ResolvePendingDefault("p2"))

	if len(p2.Hand) != 1 {
		t.Errorf("hand = %d cards, want 1 after the default discard", len(p2.Hand))
	}
	if e.HasPending("p2") {
		t.Error("default resolution should clear the event")
	}
}

func TestPerPlayerQueuesResolveIndependently(t *testing.T) {
	e := newTestEngineThreePlayers(t)
	p2 := e.State.Player("p2")
	p3 := e.State.Player("p3")
	setHand(p2, "worker_ant")
	p3.ConstructionZone["leaf_bridge"] = []string{"worker_ant"}
	e.queuePending(&PendingEvent{ID: "ev-discard", Kind: PendingDiscard, Player: "p2", Source: "p1", Count: 1})
	e.queuePending(&PendingEvent{ID: "ev-sabotage", Kind: PendingSabotage, Player: "p3", Source: "p1", Count: 1})

	// Two different players hold unresolved choices at once; resolving one
	// leaves the other queued.
	mustOK(t, e.CompleteSabotage("p3", "ev-sabotage", []AntRef{
		{ObjectiveID: "leaf_bridge", CardID: "worker_ant"},
	}))

	if !e.HasPending("p2") {
		t.Error("p2's forced discard should still be queued")
	}
	mustOK(t, e.CompleteDiscard("p2", "ev-discard", []string{"worker_ant"}))
	if e.HasPending("p2") || e.HasPending("p3") {
		t.Error("all queues should now be empty")
	}
}
