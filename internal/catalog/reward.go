package catalog

import "fmt"

// RewardKind enumerates the objective reward payload types.
type RewardKind int

const (
	RewardNone RewardKind = iota
	RewardResources
	RewardDraw
	RewardGrantCard
	RewardVPMultiplier
	RewardDefense
	RewardResourcesPerTurn
	RewardInstantWin
	RewardVPBonus
)

func (k RewardKind) String() string {
	switch k {
	case RewardResources:
		return "resources"
	case RewardDraw:
		return "draw"
	case RewardGrantCard:
		return "card"
	case RewardVPMultiplier:
		return "vp_multiplier"
	case RewardDefense:
		return "defense"
	case RewardResourcesPerTurn:
		return "resources_per_turn"
	case RewardInstantWin:
		return "instant_win"
	case RewardVPBonus:
		return "vp_bonus"
	default:
		return "none"
	}
}

// Reward is a closed tagged union describing what an objective grants on
// completion. Amount applies to every kind except GrantCard and InstantWin;
// CardID applies only to GrantCard.
type Reward struct {
	Kind   RewardKind
	Amount int
	CardID string
}

func (r Reward) String() string {
	switch r.Kind {
	case RewardNone:
		return "no reward"
	case RewardGrantCard:
		return fmt.Sprintf("gain card %s", r.CardID)
	case RewardInstantWin:
		return "instant win"
	default:
		return fmt.Sprintf("%s +%d", r.Kind, r.Amount)
	}
}

var rewardKinds = map[string]RewardKind{
	"resources":          RewardResources,
	"draw":               RewardDraw,
	"card":               RewardGrantCard,
	"vp_multiplier":      RewardVPMultiplier,
	"defense":            RewardDefense,
	"resources_per_turn": RewardResourcesPerTurn,
	"instant_win":        RewardInstantWin,
	"vp_bonus":           RewardVPBonus,
}

// ParseReward builds a Reward from its external representation.
func ParseReward(kind string, amount int, cardID string) (Reward, error) {
	if kind == "" {
		return Reward{}, nil
	}
	k, ok := rewardKinds[kind]
	if !ok {
		return Reward{}, fmt.Errorf("unknown reward type %q", kind)
	}
	r := Reward{Kind: k, Amount: amount, CardID: cardID}
	switch k {
	case RewardGrantCard:
		if cardID == "" {
			return Reward{}, fmt.Errorf("reward %q: missing card id", kind)
		}
	case RewardInstantWin:
		// no payload
	default:
		if amount < 1 {
			return Reward{}, fmt.Errorf("reward %q: bad amount %d", kind, amount)
		}
	}
	return r, nil
}
