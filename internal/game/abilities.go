package game

import (
	"github.com/AryavP/AntBridge/internal/catalog"
	"github.com/AryavP/AntBridge/internal/feed"
)

// playMode is the context a card's abilities execute in. Resource-granting
// effects only apply when the card is explicitly played for resources.
type playMode int

const (
	modeResources playMode = iota
	modeConstruction
	modeAttack
)

const scoutRevealCount = 3

// executeAbilities runs every parsed ability tag on the card, then the
// per-card override table. targetID is only meaningful in attack mode, where
// steal needs the designated opponent.
func (e *Engine) executeAbilities(p *Player, card *catalog.CardDef, mode playMode, targetID string) {
	for _, ability := range card.Abilities {
		switch ability.Kind {
		case catalog.AbilityDraw:
			e.drawCards(p, ability.Count)

		case catalog.AbilityResources:
			if mode == modeResources {
				p.Resources += ability.Count
			}

		case catalog.AbilityHeal:
			if len(p.Discard) > 0 {
				antID := p.Discard[len(p.Discard)-1]
				p.Discard = p.Discard[:len(p.Discard)-1]
				p.Hand = append(p.Hand, antID)
			}

		case catalog.AbilityScout:
			e.startScout(p, ability.Count)

		case catalog.AbilitySabotage:
			e.startSabotage(p, ability.Count)

		case catalog.AbilityTrash:
			e.startTrash(p, ability.Count)

		case catalog.AbilitySteal:
			if mode == modeAttack {
				e.startSteal(p, targetID, ability.Count)
			}

		case catalog.AbilityReturn:
			// Resolved at objective completion, not on play.
		}
	}

	e.applyCardOverrides(p, card, mode)
}

// applyCardOverrides handles the few cards whose effects go beyond their tag
// list. Resource grants obey the same suppression as the resources tag.
func (e *Engine) applyCardOverrides(p *Player, card *catalog.CardDef, mode playMode) {
	switch card.ID {
	case "queen_ant":
		e.drawCards(p, 2)
		if mode == modeResources {
			p.Resources += 2
		}
	case "forager_ant":
		if mode == modeResources {
			p.Resources += 1
		}
	case "heavy_lifter":
		if mode == modeResources {
			p.Resources += 2
		}
	}
}

// startScout reveals the top of the player's deck and suspends with a
// pending scout event. If the deck holds fewer than the reveal count and the
// discard is non-empty, the discard is reshuffled in first. With no cards
// available at all the ability fizzles and nothing is queued.
func (e *Engine) startScout(p *Player, count int) {
	if len(p.Deck) < scoutRevealCount && len(p.Discard) > 0 {
		p.Deck = append(p.Discard, p.Deck...)
		p.Discard = nil
		e.shuffle(p.Deck)
		e.log(feed.NewShuffleEvent(p.ID, p.Name))
	}

	var revealed []string
	for len(revealed) < scoutRevealCount && len(p.Deck) > 0 {
		top := p.Deck[len(p.Deck)-1]
		p.Deck = p.Deck[:len(p.Deck)-1]
		revealed = append(revealed, top)
	}
	if len(revealed) == 0 {
		return
	}

	e.queuePending(&PendingEvent{
		ID:     newEventID(),
		Kind:   PendingScout,
		Player: p.ID,
		Source: p.ID,
		Count:  count,
		Cards:  revealed,
	})
	e.log(feed.NewScoutStartedEvent(p.ID, p.Name, len(revealed)))
}

// startSabotage targets the first opponent in seating order after the acting
// player who has at least one ant in construction. No eligible opponent
// means the ability fizzles.
func (e *Engine) startSabotage(p *Player, count int) {
	for _, opp := range e.State.Opponents(p.ID) {
		if opp.TotalAnts() == 0 {
			continue
		}
		e.queuePending(&PendingEvent{
			ID:     newEventID(),
			Kind:   PendingSabotage,
			Player: opp.ID,
			Source: p.ID,
			Count:  count,
		})
		e.log(feed.NewSabotageStartedEvent(p.ID, p.Name, opp.Name, count))
		return
	}
}

// startTrash lets the acting player permanently remove cards from their hand
// or discard. Nothing to trash means the ability fizzles.
func (e *Engine) startTrash(p *Player, count int) {
	if len(p.Hand) == 0 && len(p.Discard) == 0 {
		return
	}
	e.queuePending(&PendingEvent{
		ID:     newEventID(),
		Kind:   PendingTrash,
		Player: p.ID,
		Source: p.ID,
		Count:  count,
	})
	e.log(feed.NewTrashStartedEvent(p.ID, p.Name, count))
}

// startSteal forces the attack target to discard hand cards. An empty hand
// means the ability fizzles.
func (e *Engine) startSteal(p *Player, targetID string, count int) {
	target := e.State.Player(targetID)
	if target == nil || len(target.Hand) == 0 {
		return
	}
	e.queuePending(&PendingEvent{
		ID:     newEventID(),
		Kind:   PendingDiscard,
		Player: target.ID,
		Source: p.ID,
		Count:  count,
	})
	e.log(feed.NewDiscardForcedEvent(target.ID, target.Name, count))
}
