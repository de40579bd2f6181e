package game

import (
	"fmt"

	"github.com/AryavP/AntBridge/internal/catalog"
	"github.com/AryavP/AntBridge/internal/feed"
)

// Result is the outcome of a command. Expected failures are values, never
// errors: OK is false and Reason carries a short human-readable explanation.
// Successful commands describe what happened in Summary.
type Result struct {
	OK      bool   `json:"ok"`
	Reason  string `json:"reason,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Fail builds a failed result.
func Fail(format string, args ...any) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// Succeed builds a successful result.
func Succeed(format string, args ...any) Result {
	return Result{OK: true, Summary: fmt.Sprintf(format, args...)}
}

func (e *Engine) requireActive() (Result, bool) {
	if e.State.Status != StatusActive {
		return Fail("game is %s", e.State.Status), false
	}
	return Result{}, true
}

// PlayCard plays a hand card for its resources and abilities. The card ends
// up in the player's discard pile.
func (e *Engine) PlayCard(playerID, cardID string) Result {
	if r, ok := e.requireActive(); !ok {
		return r
	}
	p := e.State.Player(playerID)
	if p == nil {
		return Fail("unknown player %s", playerID)
	}
	card, ok := e.Catalog.Card(cardID)
	if !ok {
		return Fail("unknown card %s", cardID)
	}
	if !p.RemoveFromHand(cardID) {
		return Fail("%s is not in your hand", card.Name)
	}

	p.Resources += card.Resources
	e.executeAbilities(p, card, modeResources, "")
	p.Discard = append(p.Discard, cardID)
	e.log(feed.NewCardPlayedEvent(p.ID, p.Name, cardID, card.Name))
	return Succeed("played %s (%d resources available)", card.Name, p.Resources)
}

// PlayCardForAttack spends a hand card into the turn's attack-power pool.
// Abilities run with resource grants suppressed.
func (e *Engine) PlayCardForAttack(playerID, cardID string) Result {
	if r, ok := e.requireActive(); !ok {
		return r
	}
	p := e.State.Player(playerID)
	if p == nil {
		return Fail("unknown player %s", playerID)
	}
	card, ok := e.Catalog.Card(cardID)
	if !ok {
		return Fail("unknown card %s", cardID)
	}
	if card.Attack == 0 {
		return Fail("%s has no attack value", card.Name)
	}
	if !p.RemoveFromHand(cardID) {
		return Fail("%s is not in your hand", card.Name)
	}

	p.AttackPower += card.Attack
	e.executeAbilities(p, card, modeAttack, "")
	p.Discard = append(p.Discard, cardID)
	e.log(feed.NewCardPlayedForAttackEvent(p.ID, p.Name, cardID, card.Name, p.AttackPower))
	return Succeed("added %d attack (pool now %d)", card.Attack, p.AttackPower)
}

// PlaceAntOnConstruction moves a hand card onto the visible construction
// objective. Ownership of an in-progress objective is exclusive: once any
// player has an ant there, only they may add more, up to the requirement.
func (e *Engine) PlaceAntOnConstruction(playerID, cardID, objectiveID string) Result {
	if r, ok := e.requireActive(); !ok {
		return r
	}
	p := e.State.Player(playerID)
	if p == nil {
		return Fail("unknown player %s", playerID)
	}
	card, ok := e.Catalog.Card(cardID)
	if !ok {
		return Fail("unknown card %s", cardID)
	}
	obj, ok := e.Catalog.Objective(objectiveID)
	if !ok {
		return Fail("unknown objective %s", objectiveID)
	}
	if !e.CanPlaceOnConstruction(objectiveID) {
		return Fail("%s is not the visible objective", obj.Name)
	}
	if owner, claimed := e.State.ObjectiveOwner(objectiveID); claimed && owner.ID != playerID {
		return Fail("%s is already being built by %s", obj.Name, owner.Name)
	}
	if len(p.ConstructionZone[objectiveID]) >= obj.AntsRequired {
		return Fail("%s already has the %d ants it needs", obj.Name, obj.AntsRequired)
	}
	if !p.RemoveFromHand(cardID) {
		return Fail("%s is not in your hand", card.Name)
	}

	p.ConstructionZone[objectiveID] = append(p.ConstructionZone[objectiveID], cardID)
	e.executeAbilities(p, card, modeConstruction, "")
	count := len(p.ConstructionZone[objectiveID])
	e.log(feed.NewAntPlacedEvent(p.ID, p.Name, cardID, card.Name, obj.Name, count, obj.AntsRequired))
	return Succeed("placed %s on %s (%d/%d ants)", card.Name, obj.Name, count, obj.AntsRequired)
}

// BuyCard purchases a trade-row card. The card's VP is granted once, at
// purchase; the card itself lands in the discard pile.
func (e *Engine) BuyCard(playerID, cardID string) Result {
	if r, ok := e.requireActive(); !ok {
		return r
	}
	p := e.State.Player(playerID)
	if p == nil {
		return Fail("unknown player %s", playerID)
	}
	card, ok := e.Catalog.Card(cardID)
	if !ok {
		return Fail("unknown card %s", cardID)
	}
	inRow := false
	for _, id := range e.State.TradeRow {
		if id == cardID {
			inRow = true
			break
		}
	}
	if !inRow {
		return Fail("%s is not in the trade row", card.Name)
	}
	if !e.CanAffordCard(playerID, card.Cost) {
		return Fail("need %d resources, have %d", card.Cost, p.Resources)
	}

	p.Resources -= card.Cost
	for i, id := range e.State.TradeRow {
		if id == cardID {
			e.State.TradeRow = append(e.State.TradeRow[:i], e.State.TradeRow[i+1:]...)
			break
		}
	}
	p.Discard = append(p.Discard, cardID)
	p.VP += card.VP
	e.fillTradeRow()
	e.log(feed.NewCardBoughtEvent(p.ID, p.Name, cardID, card.Name, card.Cost))
	return Succeed("bought %s for %d resources", card.Name, card.Cost)
}

// AttackPlayer attacks an opponent's construction with specific hand cards.
// The combined attack must strictly exceed the target's defense, and the
// target must have an objective in progress to destroy. A failed attack
// mutates nothing; the attack cards stay in hand.
func (e *Engine) AttackPlayer(playerID, targetID string, cardIDs []string) Result {
	if r, ok := e.requireActive(); !ok {
		return r
	}
	p := e.State.Player(playerID)
	if p == nil {
		return Fail("unknown player %s", playerID)
	}
	if len(cardIDs) == 0 {
		return Fail("no attack cards named")
	}
	if _, ok := subtractCards(p.Hand, cardIDs); !ok {
		return Fail("attack cards must all be in your hand")
	}
	power := 0
	attackCards := make([]*catalog.CardDef, 0, len(cardIDs))
	for _, id := range cardIDs {
		card, ok := e.Catalog.Card(id)
		if !ok {
			return Fail("unknown card %s", id)
		}
		power += card.Attack
		attackCards = append(attackCards, card)
	}
	if ok, reason := e.CanAttack(playerID, targetID, power); !ok {
		return Fail("%s", reason)
	}
	target := e.State.Player(targetID)
	objectiveID, ok := mostAntsObjective(target)
	if !ok {
		return Fail("%s has no construction in progress", target.Name)
	}

	for i, id := range cardIDs {
		p.RemoveFromHand(id)
		e.executeAbilities(p, attackCards[i], modeAttack, targetID)
		p.Discard = append(p.Discard, id)
	}
	e.destroyObjective(p, target, objectiveID, power)
	return Succeed("destroyed %s with %d attack", e.Catalog.ObjectiveName(objectiveID), power)
}

// AttackWithPower attacks using the pre-accumulated attack-power pool
// instead of specific cards. No ability tags trigger; a successful attack
// zeroes the pool.
func (e *Engine) AttackWithPower(playerID, targetID string, power int) Result {
	if r, ok := e.requireActive(); !ok {
		return r
	}
	p := e.State.Player(playerID)
	if p == nil {
		return Fail("unknown player %s", playerID)
	}
	if power < 1 || power > p.AttackPower {
		return Fail("attack pool holds %d power", p.AttackPower)
	}
	if ok, reason := e.CanAttack(playerID, targetID, power); !ok {
		return Fail("%s", reason)
	}
	target := e.State.Player(targetID)
	objectiveID, ok := mostAntsObjective(target)
	if !ok {
		return Fail("%s has no construction in progress", target.Name)
	}

	p.AttackPower = 0
	e.destroyObjective(p, target, objectiveID, power)
	return Succeed("destroyed %s with %d attack", e.Catalog.ObjectiveName(objectiveID), power)
}

// mostAntsObjective picks the target's in-progress objective holding the
// most ants. Ties break toward the first objective in sorted ID order.
func mostAntsObjective(target *Player) (string, bool) {
	best := ""
	bestCount := 0
	for _, id := range target.ZoneObjectives() {
		if n := len(target.ConstructionZone[id]); n > bestCount {
			best = id
			bestCount = n
		}
	}
	return best, bestCount > 0
}

// destroyObjective removes a target's in-progress objective. All its ants
// return to the target's discard; the attacker gains one VP.
func (e *Engine) destroyObjective(attacker, target *Player, objectiveID string, power int) {
	defense := e.Defense(target.ID)
	ants := target.ConstructionZone[objectiveID]
	delete(target.ConstructionZone, objectiveID)
	target.Discard = append(target.Discard, ants...)
	attacker.VP++
	e.log(feed.NewAttackEvent(attacker.ID, attacker.Name, target.Name,
		e.Catalog.ObjectiveName(objectiveID), power, defense))
}

// EndTurn finishes the current player's turn: their hand is discarded,
// turn-scoped counters reset, every pending event expires, they draw a fresh
// hand, and the next seat starts their turn. Objectives the incoming player
// has already filled score now, after opponents had a full turn to attack
// them.
func (e *Engine) EndTurn(playerID string) Result {
	if r, ok := e.requireActive(); !ok {
		return r
	}
	if e.State.CurrentPlayer != playerID {
		return Fail("not your turn")
	}
	p := e.State.Player(playerID)

	p.Discard = append(p.Discard, p.Hand...)
	p.Hand = nil
	p.Resources = 0
	p.AttackPower = 0
	e.clearAllPending()
	e.drawCards(p, HandSize)
	e.log(feed.NewTurnEndEvent(p.ID, p.Name))

	e.State.CurrentPlayer = e.State.NextSeat(playerID)
	e.startTurn(e.State.CurrentPlayer)
	e.scoreObjectives(e.State.CurrentPlayer)
	e.checkEndGame()
	return Succeed("turn passed to %s", e.playerName(e.State.CurrentPlayer))
}

// scoreObjectives sweeps the player's construction zone and completes every
// objective that meets its ant requirement.
func (e *Engine) scoreObjectives(playerID string) {
	p := e.State.Player(playerID)
	for _, objectiveID := range p.ZoneObjectives() {
		obj, ok := e.Catalog.Objective(objectiveID)
		if !ok {
			continue
		}
		if len(p.ConstructionZone[objectiveID]) >= obj.AntsRequired {
			e.completeObjective(p, obj)
		}
		if e.State.Status == StatusFinished {
			return
		}
	}
}

// completeObjective scores one filled objective: its ants are resolved per
// their tags, VP and the reward payload are granted, and the objective
// leaves circulation. Tier advance and row refill follow.
func (e *Engine) completeObjective(p *Player, obj *catalog.ObjectiveDef) {
	ants := p.ConstructionZone[obj.ID]
	delete(p.ConstructionZone, obj.ID)

	// Return-tagged ants survive to the discard, starters are scrapped for
	// good, everything else goes back into market circulation.
	var toMarket []string
	for _, antID := range ants {
		card, ok := e.Catalog.Card(antID)
		switch {
		case ok && card.HasAbility(catalog.AbilityReturn):
			p.Discard = append(p.Discard, antID)
		case ok && card.IsStarter():
			// scrapped
		default:
			toMarket = append(toMarket, antID)
		}
	}
	e.reshuffleToMarket(toMarket)

	p.CompletedObjectives = append(p.CompletedObjectives, obj.ID)
	p.VP += obj.VP
	e.log(feed.NewObjectiveScoredEvent(p.ID, p.Name, obj.Name, obj.VP))

	switch obj.Reward.Kind {
	case catalog.RewardNone:
	case catalog.RewardResources:
		p.Resources += obj.Reward.Amount
	case catalog.RewardDraw:
		e.drawCards(p, obj.Reward.Amount)
	case catalog.RewardGrantCard:
		p.Discard = append(p.Discard, obj.Reward.CardID)
	case catalog.RewardVPMultiplier:
		p.Bonuses.VPMultiplier += obj.Reward.Amount
	case catalog.RewardDefense:
		p.Bonuses.DefenseBonus += obj.Reward.Amount
	case catalog.RewardResourcesPerTurn:
		p.Bonuses.ResourcesPerTurn += obj.Reward.Amount
	case catalog.RewardInstantWin:
		e.State.Winner = p.ID
		e.State.Status = StatusFinished
		e.log(feed.NewGameOverEvent(p.ID, p.Name, p.TotalVP()))
		return
	case catalog.RewardVPBonus:
		p.VP += obj.Reward.Amount
	}

	gs := e.State
	for i, id := range gs.ConstructionRow {
		if id == obj.ID {
			gs.ConstructionRow = append(gs.ConstructionRow[:i], gs.ConstructionRow[i+1:]...)
			break
		}
	}
	for i, id := range gs.ConstructionDeck {
		if id == obj.ID {
			gs.ConstructionDeck = append(gs.ConstructionDeck[:i], gs.ConstructionDeck[i+1:]...)
			break
		}
	}
	e.advanceTier()
	e.fillConstructionRow()
}
