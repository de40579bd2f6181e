package game

import (
	"github.com/AryavP/AntBridge/internal/feed"
)

// PendingKind enumerates the interactive ability flows that suspend
// mid-resolution while a player makes a choice.
type PendingKind int

const (
	PendingScout PendingKind = iota
	PendingDiscard
	PendingSabotage
	PendingTrash
)

func (k PendingKind) String() string {
	switch k {
	case PendingScout:
		return "scout"
	case PendingDiscard:
		return "discard"
	case PendingSabotage:
		return "sabotage"
	case PendingTrash:
		return "trash"
	default:
		return "unknown"
	}
}

// AntRef names one ant in a construction zone.
type AntRef struct {
	ObjectiveID string `json:"objectiveId"`
	CardID      string `json:"cardId"`
}

// PendingEvent is one suspended interactive choice. It sits in the queue of
// the player who must resolve it. For scout, Cards holds the revealed card
// IDs, which are held out of the deck until the event resolves or cancels.
type PendingEvent struct {
	ID     string      `json:"id"`
	Kind   PendingKind `json:"kind"`
	Player string      `json:"player"` // who must choose
	Source string      `json:"source"` // who triggered the ability
	Count  int         `json:"count"`
	Cards  []string    `json:"cards,omitempty"`
}

// queuePending appends an event to its player's FIFO queue.
func (e *Engine) queuePending(ev *PendingEvent) {
	e.State.Pending[ev.Player] = append(e.State.Pending[ev.Player], ev)
}

// findPending locates an event in a player's queue. Returns its index, or -1.
func (e *Engine) findPending(playerID, eventID string) (*PendingEvent, int) {
	for i, ev := range e.State.Pending[playerID] {
		if ev.ID == eventID {
			return ev, i
		}
	}
	return nil, -1
}

// removePending drops the event at index i from a player's queue.
func (e *Engine) removePending(playerID string, i int) {
	q := e.State.Pending[playerID]
	e.State.Pending[playerID] = append(q[:i], q[i+1:]...)
	if len(e.State.Pending[playerID]) == 0 {
		delete(e.State.Pending, playerID)
	}
}

// HasPending reports whether the player has any unresolved event.
func (e *Engine) HasPending(playerID string) bool {
	return len(e.State.Pending[playerID]) > 0
}

// PendingFor returns the player's unresolved events in queue order.
func (e *Engine) PendingFor(playerID string) []*PendingEvent {
	return e.State.Pending[playerID]
}

// CompleteScout resolves a pending scout: the player keeps up to the event's
// count of the revealed cards in hand, and the rest go to the bottom of the
// deck in revealed order.
func (e *Engine) CompleteScout(playerID, eventID string, keep []string) Result {
	ev, i := e.findPending(playerID, eventID)
	if ev == nil || ev.Kind != PendingScout {
		return Fail("no pending scout event %s", eventID)
	}
	if len(keep) > ev.Count {
		return Fail("may keep at most %d card(s)", ev.Count)
	}
	rest, ok := subtractCards(ev.Cards, keep)
	if !ok {
		return Fail("selection includes cards that were not revealed")
	}

	p := e.State.Player(playerID)
	p.Hand = append(p.Hand, keep...)
	// Bottom of the deck is the front of the slice.
	p.Deck = append(rest, p.Deck...)
	e.removePending(playerID, i)
	e.log(feed.NewScoutResolvedEvent(playerID, p.Name, len(keep)))
	return Succeed("kept %d scouted card(s)", len(keep))
}

// CancelScout aborts a pending scout, restoring the revealed cards to the
// top of the deck in their original order.
func (e *Engine) CancelScout(playerID, eventID string) Result {
	ev, i := e.findPending(playerID, eventID)
	if ev == nil || ev.Kind != PendingScout {
		return Fail("no pending scout event %s", eventID)
	}
	p := e.State.Player(playerID)
	// Cards[0] was the topmost revealed card; push back in reverse so it
	// ends up on top again.
	for j := len(ev.Cards) - 1; j >= 0; j-- {
		p.Deck = append(p.Deck, ev.Cards[j])
	}
	e.removePending(playerID, i)
	e.log(feed.NewEventCancelledEvent(playerID, p.Name, "scouting"))
	return Succeed("scout cancelled, %d card(s) returned to deck", len(ev.Cards))
}

// CompleteDiscard resolves a forced discard: the player names exactly the
// required number of hand cards (or their whole hand, if smaller) and they
// move to the discard pile.
func (e *Engine) CompleteDiscard(playerID, eventID string, cardIDs []string) Result {
	ev, i := e.findPending(playerID, eventID)
	if ev == nil || ev.Kind != PendingDiscard {
		return Fail("no pending discard event %s", eventID)
	}
	p := e.State.Player(playerID)
	required := ev.Count
	if len(p.Hand) < required {
		required = len(p.Hand)
	}
	if len(cardIDs) != required {
		return Fail("must discard exactly %d card(s)", required)
	}
	remaining, ok := subtractCards(p.Hand, cardIDs)
	if !ok {
		return Fail("selection includes cards not in hand")
	}

	p.Hand = remaining
	p.Discard = append(p.Discard, cardIDs...)
	e.removePending(playerID, i)
	e.log(feed.NewDiscardResolvedEvent(playerID, p.Name, len(cardIDs)))
	return Succeed("discarded %d card(s)", len(cardIDs))
}

// CompleteSabotage resolves a pending sabotage: the targeted player removes
// up to the event's count of their own ants from construction, sending them
// to their discard pile.
func (e *Engine) CompleteSabotage(playerID, eventID string, ants []AntRef) Result {
	ev, i := e.findPending(playerID, eventID)
	if ev == nil || ev.Kind != PendingSabotage {
		return Fail("no pending sabotage event %s", eventID)
	}
	p := e.State.Player(playerID)
	required := ev.Count
	if p.TotalAnts() < required {
		required = p.TotalAnts()
	}
	if len(ants) != required {
		return Fail("must remove exactly %d ant(s)", required)
	}

	// Validate the whole selection against a scratch copy before mutating.
	scratch := make(map[string][]string, len(p.ConstructionZone))
	for id, zone := range p.ConstructionZone {
		scratch[id] = append([]string(nil), zone...)
	}
	for _, ref := range ants {
		zone, ok := removeCard(scratch[ref.ObjectiveID], ref.CardID)
		if !ok {
			return Fail("no %s ant on %s", ref.CardID, ref.ObjectiveID)
		}
		scratch[ref.ObjectiveID] = zone
	}

	for id, zone := range scratch {
		if len(zone) == 0 {
			delete(p.ConstructionZone, id)
		} else {
			p.ConstructionZone[id] = zone
		}
	}
	for _, ref := range ants {
		p.Discard = append(p.Discard, ref.CardID)
	}
	e.removePending(playerID, i)
	e.log(feed.NewSabotageResolvedEvent(playerID, p.Name, len(ants)))
	return Succeed("removed %d ant(s) from construction", len(ants))
}

// CompleteTrash resolves a pending trash: the player removes up to the
// event's count of cards from hand and/or discard. Starter cards leave the
// game permanently; everything else reshuffles back into the market deck.
func (e *Engine) CompleteTrash(playerID, eventID string, cardIDs []string) Result {
	ev, i := e.findPending(playerID, eventID)
	if ev == nil || ev.Kind != PendingTrash {
		return Fail("no pending trash event %s", eventID)
	}
	if len(cardIDs) > ev.Count {
		return Fail("may trash at most %d card(s)", ev.Count)
	}
	p := e.State.Player(playerID)

	// Validate against copies first so a bad selection mutates nothing.
	hand := append([]string(nil), p.Hand...)
	discard := append([]string(nil), p.Discard...)
	for _, id := range cardIDs {
		if h, ok := removeCard(hand, id); ok {
			hand = h
			continue
		}
		if d, ok := removeCard(discard, id); ok {
			discard = d
			continue
		}
		return Fail("%s is not in your hand or discard", e.Catalog.CardName(id))
	}

	p.Hand = hand
	p.Discard = discard
	var toMarket []string
	for _, id := range cardIDs {
		if card, ok := e.Catalog.Card(id); ok && !card.IsStarter() {
			toMarket = append(toMarket, id)
		}
	}
	e.reshuffleToMarket(toMarket)
	e.removePending(playerID, i)
	e.log(feed.NewTrashResolvedEvent(playerID, p.Name, len(cardIDs)))
	return Succeed("trashed %d card(s)", len(cardIDs))
}

// ResolvePendingDefault applies the stall-prevention policy to the head of a
// player's queue: forced events resolve with their first candidates, scout
// keeps the first revealed cards, trash resolves as "trash nothing". Used by
// callers when the choosing player disconnects.
func (e *Engine) ResolvePendingDefault(playerID string) Result {
	q := e.State.Pending[playerID]
	if len(q) == 0 {
		return Fail("no pending event")
	}
	ev := q[0]
	p := e.State.Player(playerID)
	switch ev.Kind {
	case PendingScout:
		keep := ev.Cards
		if len(keep) > ev.Count {
			keep = keep[:ev.Count]
		}
		return e.CompleteScout(playerID, ev.ID, keep)
	case PendingDiscard:
		n := ev.Count
		if len(p.Hand) < n {
			n = len(p.Hand)
		}
		return e.CompleteDiscard(playerID, ev.ID, append([]string(nil), p.Hand[:n]...))
	case PendingSabotage:
		var ants []AntRef
		for _, objID := range p.ZoneObjectives() {
			for _, antID := range p.ConstructionZone[objID] {
				if len(ants) == ev.Count {
					break
				}
				ants = append(ants, AntRef{ObjectiveID: objID, CardID: antID})
			}
		}
		return e.CompleteSabotage(playerID, ev.ID, ants)
	case PendingTrash:
		return e.CompleteTrash(playerID, ev.ID, nil)
	default:
		return Fail("unknown pending event kind")
	}
}

// clearAllPending empties every pending queue at a turn boundary. Scout
// events hand their revealed cards back to the deck top first, so no card
// is lost when an event expires unresolved.
func (e *Engine) clearAllPending() {
	for playerID, q := range e.State.Pending {
		p := e.State.Player(playerID)
		for _, ev := range q {
			if ev.Kind == PendingScout {
				for j := len(ev.Cards) - 1; j >= 0; j-- {
					p.Deck = append(p.Deck, ev.Cards[j])
				}
			}
		}
	}
	e.State.Pending = make(map[string][]*PendingEvent)
}

// subtractCards removes the multiset picked from the multiset have,
// reporting false if picked is not contained in have. The remainder
// preserves have's order.
func subtractCards(have, picked []string) ([]string, bool) {
	remaining := append([]string(nil), have...)
	for _, id := range picked {
		var ok bool
		remaining, ok = removeCard(remaining, id)
		if !ok {
			return nil, false
		}
	}
	return remaining, true
}

// removeCard removes the first occurrence of id from ids.
func removeCard(ids []string, id string) ([]string, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
