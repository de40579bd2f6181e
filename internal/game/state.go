package game

import (
	"sort"
	"time"
)

const (
	HandSize            = 5
	TradeRowSize        = 5
	ConstructionRowSize = 1
)

// Status is the one-way game lifecycle state.
type Status int

const (
	StatusWaiting Status = iota
	StatusActive
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Phase is the informational turn phase.
type Phase int

const (
	PhaseAction Phase = iota
	PhaseBuy
	PhaseCleanup
)

func (p Phase) String() string {
	switch p {
	case PhaseAction:
		return "action"
	case PhaseBuy:
		return "buy"
	case PhaseCleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

// Bonuses accumulate over the game and never decrease.
type Bonuses struct {
	ResourcesPerTurn int
	DefenseBonus     int
	VPMultiplier     int // starts at 1
}

// Player holds one player's entire state. Deck top is the last element
// (pop from end); Discard is append-only until reshuffled.
type Player struct {
	ID      string
	Name    string
	Deck    []string
	Hand    []string
	Discard []string

	// ConstructionZone maps objective ID to the ants this player has placed
	// there. An objective ID appears in at most one player's zone at a time.
	ConstructionZone map[string][]string

	// CompletedObjectives records objective IDs this player has scored.
	CompletedObjectives []string

	Resources   int // turn-scoped, zeroed at end of turn
	AttackPower int // turn-scoped pool from cards played for attack
	VP          int // monotonically non-decreasing
	Bonuses     Bonuses
	Ready       bool // pre-game only
}

// HasInHand reports whether the given card ID is in the player's hand.
func (p *Player) HasInHand(cardID string) bool {
	for _, id := range p.Hand {
		if id == cardID {
			return true
		}
	}
	return false
}

// RemoveFromHand removes the first occurrence of cardID from the hand.
// Returns false if the card is not in hand.
func (p *Player) RemoveFromHand(cardID string) bool {
	for i, id := range p.Hand {
		if id == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveFromDiscard removes the first occurrence of cardID from the discard.
func (p *Player) RemoveFromDiscard(cardID string) bool {
	for i, id := range p.Discard {
		if id == cardID {
			p.Discard = append(p.Discard[:i], p.Discard[i+1:]...)
			return true
		}
	}
	return false
}

// ZoneObjectives returns the objective IDs in this player's construction
// zone in sorted order, so that zone iteration is deterministic.
func (p *Player) ZoneObjectives() []string {
	ids := make([]string, 0, len(p.ConstructionZone))
	for id := range p.ConstructionZone {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TotalAnts returns the number of ants across all zone entries.
func (p *Player) TotalAnts() int {
	n := 0
	for _, ants := range p.ConstructionZone {
		n += len(ants)
	}
	return n
}

// TotalVP returns the player's score with the VP multiplier applied.
func (p *Player) TotalVP() int {
	return p.VP * p.Bonuses.VPMultiplier
}

// Seat identifies one participant at game creation.
type Seat struct {
	ID   string
	Name string
}

// GameState is the authoritative mutable snapshot of one game.
type GameState struct {
	ID      string
	Players map[string]*Player

	// Seats is the fixed seating order; turn rotation follows it.
	Seats []string

	CurrentPlayer string
	TurnPhase     Phase

	TradeRow         []string
	MarketDeck       []string
	ConstructionRow  []string
	ConstructionDeck []string

	// ObjectivesByTier is derived once at setup and immutable thereafter.
	ObjectivesByTier map[int][]string
	CurrentTier      int

	Status    Status
	Winner    string // set once, never cleared
	StartedAt time.Time

	// Pending holds each player's FIFO queue of unresolved interactive
	// events. Queues never survive a turn boundary.
	Pending map[string][]*PendingEvent
}

// NewGameState creates a fresh pre-setup game with the given seating order.
func NewGameState(id string, seats []Seat) *GameState {
	gs := &GameState{
		ID:               id,
		Players:          make(map[string]*Player, len(seats)),
		ObjectivesByTier: make(map[int][]string),
		CurrentTier:      1,
		Status:           StatusWaiting,
		Pending:          make(map[string][]*PendingEvent),
	}
	for _, seat := range seats {
		gs.Players[seat.ID] = &Player{
			ID:               seat.ID,
			Name:             seat.Name,
			ConstructionZone: make(map[string][]string),
			Bonuses:          Bonuses{VPMultiplier: 1},
		}
		gs.Seats = append(gs.Seats, seat.ID)
	}
	if len(gs.Seats) > 0 {
		gs.CurrentPlayer = gs.Seats[0]
	}
	return gs
}

// Player returns the player with the given ID, or nil.
func (gs *GameState) Player(id string) *Player {
	return gs.Players[id]
}

// Current returns the player whose turn it is.
func (gs *GameState) Current() *Player {
	return gs.Players[gs.CurrentPlayer]
}

// NextSeat returns the seat after the given player in rotation order.
func (gs *GameState) NextSeat(playerID string) string {
	for i, id := range gs.Seats {
		if id == playerID {
			return gs.Seats[(i+1)%len(gs.Seats)]
		}
	}
	return gs.Seats[0]
}

// Opponents returns the other players in seating order, starting with the
// seat after playerID. Sabotage and steal pick the first eligible opponent
// in this order.
func (gs *GameState) Opponents(playerID string) []*Player {
	var result []*Player
	start := 0
	for i, id := range gs.Seats {
		if id == playerID {
			start = i
			break
		}
	}
	for i := 1; i < len(gs.Seats); i++ {
		id := gs.Seats[(start+i)%len(gs.Seats)]
		result = append(result, gs.Players[id])
	}
	return result
}

// ObjectiveOwner returns the player currently building the given objective,
// if any. Ownership of an in-progress objective is exclusive and first-come.
func (gs *GameState) ObjectiveOwner(objectiveID string) (*Player, bool) {
	for _, id := range gs.Seats {
		p := gs.Players[id]
		if _, ok := p.ConstructionZone[objectiveID]; ok {
			return p, true
		}
	}
	return nil, false
}
