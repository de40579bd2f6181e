package feed

// EventType enumerates all observable game events.
type EventType int

const (
	EventGameStart EventType = iota
	EventTurnStart
	EventTurnEnd
	EventDraw
	EventShuffle
	EventCardPlayed
	EventCardPlayedForAttack
	EventCardBought
	EventAntPlaced
	EventObjectiveScored
	EventObjectiveRevealed
	EventTierAdvance
	EventAttack
	EventScoutStarted
	EventScoutResolved
	EventSabotageStarted
	EventSabotageResolved
	EventTrashStarted
	EventTrashResolved
	EventDiscardForced
	EventDiscardResolved
	EventEventCancelled
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventGameStart:
		return "GameStart"
	case EventTurnStart:
		return "TurnStart"
	case EventTurnEnd:
		return "TurnEnd"
	case EventDraw:
		return "Draw"
	case EventShuffle:
		return "Shuffle"
	case EventCardPlayed:
		return "CardPlayed"
	case EventCardPlayedForAttack:
		return "CardPlayedForAttack"
	case EventCardBought:
		return "CardBought"
	case EventAntPlaced:
		return "AntPlaced"
	case EventObjectiveScored:
		return "ObjectiveScored"
	case EventObjectiveRevealed:
		return "ObjectiveRevealed"
	case EventTierAdvance:
		return "TierAdvance"
	case EventAttack:
		return "Attack"
	case EventScoutStarted:
		return "ScoutStarted"
	case EventScoutResolved:
		return "ScoutResolved"
	case EventSabotageStarted:
		return "SabotageStarted"
	case EventSabotageResolved:
		return "SabotageResolved"
	case EventTrashStarted:
		return "TrashStarted"
	case EventTrashResolved:
		return "TrashResolved"
	case EventDiscardForced:
		return "DiscardForced"
	case EventDiscardResolved:
		return "DiscardResolved"
	case EventEventCancelled:
		return "EventCancelled"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a single entry in the activity feed.
type Event struct {
	Seq     int       `json:"seq"`     // monotonic sequence number
	Type    EventType `json:"type"`    // event type
	Player  string    `json:"player"`  // acting player ID (empty for global events)
	Card    string    `json:"card"`    // card ID, if applicable
	Details string    `json:"details"` // human-readable line
}
