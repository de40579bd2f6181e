package game

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// CardList is an ordered ID list that always marshals as an explicit JSON
// array, never null. On load it tolerates the encodings older snapshots have
// been seen to produce: null, a plain array, or an object with numeric
// string keys (a mangled array), all of which decode to a proper list.
type CardList []string

func (l CardList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *CardList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = CardList{}
		return nil
	}
	switch data[0] {
	case '[':
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return err
		}
		if ids == nil {
			ids = []string{}
		}
		*l = ids
		return nil
	case '{':
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("card list object: %w", err)
		}
		type entry struct {
			idx int
			id  string
		}
		entries := make([]entry, 0, len(m))
		for k, v := range m {
			idx, err := strconv.Atoi(k)
			if err != nil {
				return fmt.Errorf("card list object has non-numeric key %q", k)
			}
			entries = append(entries, entry{idx, v})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })
		ids := make([]string, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.id)
		}
		*l = ids
		return nil
	default:
		return fmt.Errorf("card list: unexpected JSON value %s", data)
	}
}

// ZoneMap is a construction zone keyed by objective ID. Null entries are
// dropped on load and malformed entry values normalize through CardList. A
// zone that arrives as a plain array has lost its objective keys entirely;
// that is unrecoverable and is surfaced as an error rather than repaired.
type ZoneMap map[string]CardList

func (z ZoneMap) MarshalJSON() ([]byte, error) {
	if z == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]CardList(z))
}

func (z *ZoneMap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*z = ZoneMap{}
		return nil
	}
	if data[0] == '[' {
		return fmt.Errorf("construction zone arrived as an array: objective keys lost")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("construction zone: %w", err)
	}
	result := make(ZoneMap, len(raw))
	for id, v := range raw {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		var ants CardList
		if err := ants.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("construction zone %q: %w", id, err)
		}
		result[id] = ants
	}
	*z = result
	return nil
}

// BonusSnapshot mirrors Bonuses with wire names.
type BonusSnapshot struct {
	ResourcesPerTurn int `json:"resourcesPerTurn"`
	DefenseBonus     int `json:"defenseBonus"`
	VPMultiplier     int `json:"vpMultiplier"`
}

// PlayerSnapshot is the wire form of one player.
type PlayerSnapshot struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Deck                CardList      `json:"deck"`
	Hand                CardList      `json:"hand"`
	Discard             CardList      `json:"discard"`
	ConstructionZone    ZoneMap       `json:"constructionZone"`
	CompletedObjectives CardList      `json:"completedObjectives"`
	Resources           int           `json:"resources"`
	AttackPower         int           `json:"attackPower"`
	VP                  int           `json:"vp"`
	Bonuses             BonusSnapshot `json:"bonuses"`
	Ready               bool          `json:"ready"`
}

// Snapshot is the wire form of a full game state.
type Snapshot struct {
	ID               string                     `json:"id"`
	Players          map[string]*PlayerSnapshot `json:"players"`
	Seats            CardList                   `json:"seats"`
	CurrentPlayer    string                     `json:"currentPlayer"`
	TurnPhase        string                     `json:"turnPhase"`
	TradeRow         CardList                   `json:"tradeRow"`
	MarketDeck       CardList                   `json:"marketDeck"`
	ConstructionRow  CardList                   `json:"constructionRow"`
	ConstructionDeck CardList                   `json:"constructionDeck"`
	ObjectivesByTier map[int]CardList           `json:"objectivesByTier"`
	CurrentTier      int                        `json:"currentTier"`
	Status           string                     `json:"status"`
	Winner           string                     `json:"winner,omitempty"`
	StartedAt        time.Time                  `json:"startedAt"`
	Pending          map[string][]*PendingEvent `json:"pending"`
}

// TakeSnapshot converts live state to its wire form. The live state is not
// aliased: every slice and map is copied.
func TakeSnapshot(gs *GameState) *Snapshot {
	s := &Snapshot{
		ID:               gs.ID,
		Players:          make(map[string]*PlayerSnapshot, len(gs.Players)),
		Seats:            append(CardList{}, gs.Seats...),
		CurrentPlayer:    gs.CurrentPlayer,
		TurnPhase:        gs.TurnPhase.String(),
		TradeRow:         append(CardList{}, gs.TradeRow...),
		MarketDeck:       append(CardList{}, gs.MarketDeck...),
		ConstructionRow:  append(CardList{}, gs.ConstructionRow...),
		ConstructionDeck: append(CardList{}, gs.ConstructionDeck...),
		ObjectivesByTier: make(map[int]CardList, len(gs.ObjectivesByTier)),
		CurrentTier:      gs.CurrentTier,
		Status:           gs.Status.String(),
		Winner:           gs.Winner,
		StartedAt:        gs.StartedAt,
		Pending:          make(map[string][]*PendingEvent, len(gs.Pending)),
	}
	for tier, ids := range gs.ObjectivesByTier {
		s.ObjectivesByTier[tier] = append(CardList{}, ids...)
	}
	for id, p := range gs.Players {
		zone := make(ZoneMap, len(p.ConstructionZone))
		for objID, ants := range p.ConstructionZone {
			zone[objID] = append(CardList{}, ants...)
		}
		s.Players[id] = &PlayerSnapshot{
			ID:                  p.ID,
			Name:                p.Name,
			Deck:                append(CardList{}, p.Deck...),
			Hand:                append(CardList{}, p.Hand...),
			Discard:             append(CardList{}, p.Discard...),
			ConstructionZone:    zone,
			CompletedObjectives: append(CardList{}, p.CompletedObjectives...),
			Resources:           p.Resources,
			AttackPower:         p.AttackPower,
			VP:                  p.VP,
			Bonuses: BonusSnapshot{
				ResourcesPerTurn: p.Bonuses.ResourcesPerTurn,
				DefenseBonus:     p.Bonuses.DefenseBonus,
				VPMultiplier:     p.Bonuses.VPMultiplier,
			},
			Ready: p.Ready,
		}
	}
	for playerID, q := range gs.Pending {
		events := make([]*PendingEvent, len(q))
		for i, ev := range q {
			cp := *ev
			cp.Cards = append([]string(nil), ev.Cards...)
			events[i] = &cp
		}
		s.Pending[playerID] = events
	}
	return s
}

// GameState rebuilds live state from the wire form.
func (s *Snapshot) GameState() (*GameState, error) {
	status, err := parseStatus(s.Status)
	if err != nil {
		return nil, err
	}
	phase, err := parsePhase(s.TurnPhase)
	if err != nil {
		return nil, err
	}
	gs := &GameState{
		ID:               s.ID,
		Players:          make(map[string]*Player, len(s.Players)),
		Seats:            append([]string(nil), s.Seats...),
		CurrentPlayer:    s.CurrentPlayer,
		TurnPhase:        phase,
		TradeRow:         append([]string(nil), s.TradeRow...),
		MarketDeck:       append([]string(nil), s.MarketDeck...),
		ConstructionRow:  append([]string(nil), s.ConstructionRow...),
		ConstructionDeck: append([]string(nil), s.ConstructionDeck...),
		ObjectivesByTier: make(map[int][]string, len(s.ObjectivesByTier)),
		CurrentTier:      s.CurrentTier,
		Status:           status,
		Winner:           s.Winner,
		StartedAt:        s.StartedAt,
		Pending:          make(map[string][]*PendingEvent, len(s.Pending)),
	}
	for tier, ids := range s.ObjectivesByTier {
		gs.ObjectivesByTier[tier] = append([]string(nil), ids...)
	}
	for id, ps := range s.Players {
		zone := make(map[string][]string, len(ps.ConstructionZone))
		for objID, ants := range ps.ConstructionZone {
			zone[objID] = append([]string(nil), ants...)
		}
		mult := ps.Bonuses.VPMultiplier
		if mult < 1 {
			mult = 1
		}
		gs.Players[id] = &Player{
			ID:                  ps.ID,
			Name:                ps.Name,
			Deck:                append([]string(nil), ps.Deck...),
			Hand:                append([]string(nil), ps.Hand...),
			Discard:             append([]string(nil), ps.Discard...),
			ConstructionZone:    zone,
			CompletedObjectives: append([]string(nil), ps.CompletedObjectives...),
			Resources:           ps.Resources,
			AttackPower:         ps.AttackPower,
			VP:                  ps.VP,
			Bonuses: Bonuses{
				ResourcesPerTurn: ps.Bonuses.ResourcesPerTurn,
				DefenseBonus:     ps.Bonuses.DefenseBonus,
				VPMultiplier:     mult,
			},
			Ready: ps.Ready,
		}
	}
	for playerID, q := range s.Pending {
		events := make([]*PendingEvent, len(q))
		for i, ev := range q {
			cp := *ev
			cp.Cards = append([]string(nil), ev.Cards...)
			events[i] = &cp
		}
		gs.Pending[playerID] = events
	}
	if gs.CurrentPlayer != "" {
		if _, ok := gs.Players[gs.CurrentPlayer]; !ok {
			return nil, fmt.Errorf("current player %s not in players", gs.CurrentPlayer)
		}
	}
	return gs, nil
}

// Encode serializes live state to JSON.
func Encode(gs *GameState) ([]byte, error) {
	return json.Marshal(TakeSnapshot(gs))
}

// Decode rebuilds live state from snapshot JSON.
func Decode(data []byte) (*GameState, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s.GameState()
}

func parseStatus(s string) (Status, error) {
	switch s {
	case "waiting", "":
		return StatusWaiting, nil
	case "active":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return 0, fmt.Errorf("unknown game status %q", s)
	}
}

func parsePhase(s string) (Phase, error) {
	switch s {
	case "action", "":
		return PhaseAction, nil
	case "buy":
		return PhaseBuy, nil
	case "cleanup":
		return PhaseCleanup, nil
	default:
		return 0, fmt.Errorf("unknown turn phase %q", s)
	}
}
