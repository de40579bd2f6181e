package game

import (
	"fmt"
	"time"

	"github.com/AryavP/AntBridge/internal/feed"
)

// SetupGame deals starter decks, builds the market and construction decks,
// fills both rows and draws every player's opening hand. The game must be
// in the waiting state.
func (e *Engine) SetupGame() error {
	gs := e.State
	if gs.Status != StatusWaiting {
		return fmt.Errorf("game %s already set up (status %s)", gs.ID, gs.Status)
	}
	if len(gs.Seats) < 2 {
		return fmt.Errorf("game %s needs at least 2 players, have %d", gs.ID, len(gs.Seats))
	}

	// Starter decks
	for _, id := range gs.Seats {
		p := gs.Players[id]
		p.Deck = e.Catalog.StarterDeck()
		e.shuffle(p.Deck)
		p.Hand = nil
		p.Discard = nil
		p.Resources = 0
		p.AttackPower = 0
		p.VP = 0
	}

	// Market pool: each non-starter card expands into Copies instances.
	var pool []string
	for _, card := range e.Catalog.Cards() {
		if card.IsStarter() {
			continue
		}
		for i := 0; i < card.Copies; i++ {
			pool = append(pool, card.ID)
		}
	}
	e.shuffle(pool)
	gs.MarketDeck = pool

	// Objectives partitioned by tier; tier 1 forms the starting deck.
	gs.ObjectivesByTier = make(map[int][]string)
	for _, obj := range e.Catalog.Objectives() {
		gs.ObjectivesByTier[obj.Tier] = append(gs.ObjectivesByTier[obj.Tier], obj.ID)
	}
	gs.CurrentTier = 1
	gs.ConstructionDeck = append([]string(nil), gs.ObjectivesByTier[1]...)
	e.shuffle(gs.ConstructionDeck)

	e.fillTradeRow()
	e.fillConstructionRow()

	for _, id := range gs.Seats {
		e.drawCards(gs.Players[id], HandSize)
	}

	gs.Status = StatusActive
	gs.StartedAt = time.Now()
	gs.TurnPhase = PhaseAction
	e.log(feed.NewGameStartEvent(gs.ID, len(gs.Seats)))
	e.log(feed.NewTurnStartEvent(gs.CurrentPlayer, e.playerName(gs.CurrentPlayer)))
	return nil
}

// drawCards draws up to n cards from the top of the player's deck,
// reshuffling the discard into the deck when the deck runs out. A partial
// draw is not an error; drawing simply stops when both piles are empty.
// Returns the number of cards actually drawn.
func (e *Engine) drawCards(p *Player, n int) int {
	drawn := 0
	for i := 0; i < n; i++ {
		if len(p.Deck) == 0 {
			if len(p.Discard) == 0 {
				break
			}
			p.Deck = p.Discard
			p.Discard = nil
			e.shuffle(p.Deck)
			e.log(feed.NewShuffleEvent(p.ID, p.Name))
		}
		top := p.Deck[len(p.Deck)-1]
		p.Deck = p.Deck[:len(p.Deck)-1]
		p.Hand = append(p.Hand, top)
		drawn++
	}
	if drawn > 0 {
		e.log(feed.NewDrawEvent(p.ID, p.Name, drawn))
	}
	return drawn
}

// fillTradeRow tops the trade row up to capacity from the market deck.
func (e *Engine) fillTradeRow() {
	gs := e.State
	for len(gs.TradeRow) < TradeRowSize && len(gs.MarketDeck) > 0 {
		top := gs.MarketDeck[len(gs.MarketDeck)-1]
		gs.MarketDeck = gs.MarketDeck[:len(gs.MarketDeck)-1]
		gs.TradeRow = append(gs.TradeRow, top)
	}
}

// fillConstructionRow tops the construction row up to capacity from the
// construction deck, announcing each revealed objective.
func (e *Engine) fillConstructionRow() {
	gs := e.State
	for len(gs.ConstructionRow) < ConstructionRowSize && len(gs.ConstructionDeck) > 0 {
		top := gs.ConstructionDeck[len(gs.ConstructionDeck)-1]
		gs.ConstructionDeck = gs.ConstructionDeck[:len(gs.ConstructionDeck)-1]
		gs.ConstructionRow = append(gs.ConstructionRow, top)
		e.log(feed.NewObjectiveRevealedEvent(e.Catalog.ObjectiveName(top)))
	}
}

// reshuffleToMarket batch-appends card IDs to the market deck and reshuffles
// the whole deck. Used when non-starter cards are scrapped or trashed,
// returning them to circulation.
func (e *Engine) reshuffleToMarket(cardIDs []string) {
	if len(cardIDs) == 0 {
		return
	}
	gs := e.State
	gs.MarketDeck = append(gs.MarketDeck, cardIDs...)
	e.shuffle(gs.MarketDeck)
}

// startTurn grants the per-turn resource bonus and opens the action phase.
func (e *Engine) startTurn(playerID string) {
	gs := e.State
	p := gs.Players[playerID]
	p.Resources += p.Bonuses.ResourcesPerTurn
	gs.TurnPhase = PhaseAction
	e.log(feed.NewTurnStartEvent(playerID, p.Name))
}

// Defense returns a player's total defense: the accumulated defense bonus
// plus the defense of every ant in their construction zone.
func (e *Engine) Defense(playerID string) int {
	p := e.State.Player(playerID)
	if p == nil {
		return 0
	}
	total := p.Bonuses.DefenseBonus
	for _, ants := range p.ConstructionZone {
		for _, antID := range ants {
			if card, ok := e.Catalog.Card(antID); ok {
				total += card.Defense
			}
		}
	}
	return total
}

// CanAffordCard reports whether the player has the resources for the cost.
func (e *Engine) CanAffordCard(playerID string, cost int) bool {
	p := e.State.Player(playerID)
	return p != nil && p.Resources >= cost
}

// CanPlaceOnConstruction reports whether the objective is the currently
// visible construction-row entry.
func (e *Engine) CanPlaceOnConstruction(objectiveID string) bool {
	for _, id := range e.State.ConstructionRow {
		if id == objectiveID {
			return true
		}
	}
	return false
}

// CanAttack validates an attack. Ties favor the defender: attack power must
// strictly exceed the target's total defense.
func (e *Engine) CanAttack(attackerID, targetID string, power int) (bool, string) {
	if attackerID == targetID {
		return false, "cannot attack yourself"
	}
	target := e.State.Player(targetID)
	if target == nil {
		return false, "target player not found"
	}
	defense := e.Defense(targetID)
	if power <= defense {
		return false, fmt.Sprintf("attack power %d must exceed defense %d", power, defense)
	}
	return true, ""
}

// advanceTier moves to the next objective tier when both the construction
// deck and row are empty. Idempotent: calling it again without further
// mutation is a no-op (either the row refills from the new tier, or there
// are no tiers left and nothing changes).
func (e *Engine) advanceTier() bool {
	gs := e.State
	if len(gs.ConstructionDeck) > 0 || len(gs.ConstructionRow) > 0 {
		return false
	}
	next, ok := gs.ObjectivesByTier[gs.CurrentTier+1]
	if !ok {
		return false
	}
	gs.CurrentTier++
	gs.ConstructionDeck = append([]string(nil), next...)
	e.shuffle(gs.ConstructionDeck)
	e.log(feed.NewTierAdvanceEvent(gs.CurrentTier))
	e.fillConstructionRow()
	return true
}

// checkEndGame finalizes the game when the final tier is exhausted.
func (e *Engine) checkEndGame() {
	gs := e.State
	if gs.Status == StatusFinished {
		return
	}
	if len(gs.ConstructionDeck) > 0 || len(gs.ConstructionRow) > 0 {
		return
	}
	if e.advanceTier() {
		return
	}
	e.finishGame()
}

// finishGame computes final scores and records the winner. On a tie the
// first player in seating order keeps the win; the scan uses strict
// greater-than, so later seats never displace an equal score.
func (e *Engine) finishGame() {
	gs := e.State
	gs.Status = StatusFinished
	highest := -1
	for _, id := range gs.Seats {
		if vp := gs.Players[id].TotalVP(); vp > highest {
			highest = vp
			gs.Winner = id
		}
	}
	e.log(feed.NewGameOverEvent(gs.Winner, e.playerName(gs.Winner), highest))
}
