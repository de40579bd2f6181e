package feed

import (
	"fmt"
	"io"
	"strings"
)

// Logger is the interface for recording activity-feed events.
type Logger interface {
	Log(event Event)
	Events() []Event
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []Event
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event Event) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []Event {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []Event {
	var result []Event
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() Event {
	if len(l.events) == 0 {
		return Event{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event Event) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e Event) string {
	t := e.Type.String()
	for len(t) < 20 {
		t += " "
	}
	return fmt.Sprintf("%4d %s| %s", e.Seq, t, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewGameStartEvent(gameID string, players int) Event {
	return Event{
		Type:    EventGameStart,
		Details: fmt.Sprintf("Game %s started with %d players", gameID, players),
	}
}

func NewTurnStartEvent(playerID, playerName string) Event {
	return Event{
		Type:    EventTurnStart,
		Player:  playerID,
		Details: fmt.Sprintf("%s begins their turn", playerName),
	}
}

func NewTurnEndEvent(playerID, playerName string) Event {
	return Event{
		Type:    EventTurnEnd,
		Player:  playerID,
		Details: fmt.Sprintf("%s ends their turn", playerName),
	}
}

func NewDrawEvent(playerID, playerName string, n int) Event {
	return Event{
		Type:    EventDraw,
		Player:  playerID,
		Details: fmt.Sprintf("%s draws %d card(s)", playerName, n),
	}
}

func NewShuffleEvent(playerID, playerName string) Event {
	return Event{
		Type:    EventShuffle,
		Player:  playerID,
		Details: fmt.Sprintf("%s shuffles their discard pile into their deck", playerName),
	}
}

func NewCardPlayedEvent(playerID, playerName, cardID, cardName string) Event {
	return Event{
		Type:    EventCardPlayed,
		Player:  playerID,
		Card:    cardID,
		Details: fmt.Sprintf("%s plays %s", playerName, cardName),
	}
}

func NewCardPlayedForAttackEvent(playerID, playerName, cardID, cardName string, power int) Event {
	return Event{
		Type:    EventCardPlayedForAttack,
		Player:  playerID,
		Card:    cardID,
		Details: fmt.Sprintf("%s plays %s for attack (pool now %d)", playerName, cardName, power),
	}
}

func NewCardBoughtEvent(playerID, playerName, cardID, cardName string, cost int) Event {
	return Event{
		Type:    EventCardBought,
		Player:  playerID,
		Card:    cardID,
		Details: fmt.Sprintf("%s buys %s for %d resources", playerName, cardName, cost),
	}
}

func NewAntPlacedEvent(playerID, playerName, cardID, cardName, objectiveName string, count, required int) Event {
	return Event{
		Type:    EventAntPlaced,
		Player:  playerID,
		Card:    cardID,
		Details: fmt.Sprintf("%s places %s on %s (%d/%d ants)", playerName, cardName, objectiveName, count, required),
	}
}

func NewObjectiveScoredEvent(playerID, playerName, objectiveName string, vp int) Event {
	return Event{
		Type:    EventObjectiveScored,
		Player:  playerID,
		Details: fmt.Sprintf("%s completes %s (+%d VP)", playerName, objectiveName, vp),
	}
}

func NewObjectiveRevealedEvent(objectiveName string) Event {
	return Event{
		Type:    EventObjectiveRevealed,
		Details: fmt.Sprintf("New objective revealed: %s", objectiveName),
	}
}

func NewTierAdvanceEvent(tier int) Event {
	return Event{
		Type:    EventTierAdvance,
		Details: fmt.Sprintf("Construction advances to tier %d", tier),
	}
}

func NewAttackEvent(playerID, playerName, targetName, objectiveName string, power, defense int) Event {
	return Event{
		Type:    EventAttack,
		Player:  playerID,
		Details: fmt.Sprintf("%s attacks %s with power %d vs defense %d, destroying %s", playerName, targetName, power, defense, objectiveName),
	}
}

func NewScoutStartedEvent(playerID, playerName string, revealed int) Event {
	return Event{
		Type:    EventScoutStarted,
		Player:  playerID,
		Details: fmt.Sprintf("%s scouts the top of their deck (%d revealed)", playerName, revealed),
	}
}

func NewScoutResolvedEvent(playerID, playerName string, taken int) Event {
	return Event{
		Type:    EventScoutResolved,
		Player:  playerID,
		Details: fmt.Sprintf("%s keeps %d scouted card(s)", playerName, taken),
	}
}

func NewSabotageStartedEvent(playerID, playerName, targetName string, count int) Event {
	return Event{
		Type:    EventSabotageStarted,
		Player:  playerID,
		Details: fmt.Sprintf("%s sabotages %s (%d ant(s) to remove)", playerName, targetName, count),
	}
}

func NewSabotageResolvedEvent(playerID, playerName string, removed int) Event {
	return Event{
		Type:    EventSabotageResolved,
		Player:  playerID,
		Details: fmt.Sprintf("%s removes %d ant(s) from construction", playerName, removed),
	}
}

func NewTrashStartedEvent(playerID, playerName string, count int) Event {
	return Event{
		Type:    EventTrashStarted,
		Player:  playerID,
		Details: fmt.Sprintf("%s may trash up to %d card(s)", playerName, count),
	}
}

func NewTrashResolvedEvent(playerID, playerName string, trashed int) Event {
	return Event{
		Type:    EventTrashResolved,
		Player:  playerID,
		Details: fmt.Sprintf("%s trashes %d card(s)", playerName, trashed),
	}
}

func NewDiscardForcedEvent(playerID, playerName string, count int) Event {
	return Event{
		Type:    EventDiscardForced,
		Player:  playerID,
		Details: fmt.Sprintf("%s must discard %d card(s)", playerName, count),
	}
}

func NewDiscardResolvedEvent(playerID, playerName string, discarded int) Event {
	return Event{
		Type:    EventDiscardResolved,
		Player:  playerID,
		Details: fmt.Sprintf("%s discards %d card(s)", playerName, discarded),
	}
}

func NewEventCancelledEvent(playerID, playerName, what string) Event {
	return Event{
		Type:    EventEventCancelled,
		Player:  playerID,
		Details: fmt.Sprintf("%s cancels %s", playerName, what),
	}
}

func NewGameOverEvent(winnerID, winnerName string, vp int) Event {
	return Event{
		Type:    EventGameOver,
		Player:  winnerID,
		Details: fmt.Sprintf("%s wins with %d VP", winnerName, vp),
	}
}
