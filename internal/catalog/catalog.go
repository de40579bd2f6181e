package catalog

import (
	"fmt"
	"sort"
)

// CardType categorizes ant cards.
type CardType int

const (
	CardTypeWorker CardType = iota
	CardTypeSoldier
	CardTypeSpecialist
)

func (t CardType) String() string {
	switch t {
	case CardTypeWorker:
		return "Worker"
	case CardTypeSoldier:
		return "Soldier"
	case CardTypeSpecialist:
		return "Specialist"
	default:
		return "Unknown"
	}
}

// CardDef is the static definition of an ant card. Cost 0 marks a starter
// card; starters never appear in the trade row.
type CardDef struct {
	ID        string
	Name      string
	Type      CardType
	Cost      int
	Attack    int
	Defense   int
	Resources int // granted when played for resources
	VP        int // granted once, at purchase
	Abilities []Ability
	Copies    int // instances seeded into the market pool
}

// IsStarter reports whether this card belongs to the starter set.
func (c *CardDef) IsStarter() bool {
	return c.Cost == 0
}

// HasAbility reports whether the card carries the given ability kind.
func (c *CardDef) HasAbility(kind AbilityKind) bool {
	for _, a := range c.Abilities {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// ObjectiveDef is the static definition of a construction objective.
// Objectives are grouped by tier and exhausted tier by tier.
type ObjectiveDef struct {
	ID           string
	Name         string
	Tier         int
	AntsRequired int
	VP           int
	Reward       Reward
}

// Catalog is the read-only card and objective catalog. The engine only ever
// looks entries up by ID; it never mutates the catalog.
type Catalog struct {
	cards       map[string]*CardDef
	objectives  map[string]*ObjectiveDef
	starterDeck []string
}

// New validates the definitions and builds a catalog.
func New(cards []*CardDef, objectives []*ObjectiveDef, starterDeck []string) (*Catalog, error) {
	c := &Catalog{
		cards:      make(map[string]*CardDef, len(cards)),
		objectives: make(map[string]*ObjectiveDef, len(objectives)),
	}
	for _, card := range cards {
		if card.ID == "" {
			return nil, fmt.Errorf("card %q: missing id", card.Name)
		}
		if _, dup := c.cards[card.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %q", card.ID)
		}
		if card.Cost < 0 {
			return nil, fmt.Errorf("card %q: negative cost", card.ID)
		}
		c.cards[card.ID] = card
	}
	for _, obj := range objectives {
		if obj.ID == "" {
			return nil, fmt.Errorf("objective %q: missing id", obj.Name)
		}
		if _, dup := c.objectives[obj.ID]; dup {
			return nil, fmt.Errorf("duplicate objective id %q", obj.ID)
		}
		if obj.Tier < 1 {
			return nil, fmt.Errorf("objective %q: tier must be positive", obj.ID)
		}
		if obj.AntsRequired < 1 {
			return nil, fmt.Errorf("objective %q: antsRequired must be positive", obj.ID)
		}
		if obj.Reward.Kind == RewardGrantCard {
			if _, ok := c.cards[obj.Reward.CardID]; !ok {
				return nil, fmt.Errorf("objective %q: reward card %q not in catalog", obj.ID, obj.Reward.CardID)
			}
		}
		c.objectives[obj.ID] = obj
	}
	for _, id := range starterDeck {
		card, ok := c.cards[id]
		if !ok {
			return nil, fmt.Errorf("starter deck card %q not in catalog", id)
		}
		if !card.IsStarter() {
			return nil, fmt.Errorf("starter deck card %q has nonzero cost", id)
		}
	}
	c.starterDeck = append([]string(nil), starterDeck...)
	return c, nil
}

// Card looks up a card definition by ID.
func (c *Catalog) Card(id string) (*CardDef, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// Objective looks up an objective definition by ID.
func (c *Catalog) Objective(id string) (*ObjectiveDef, bool) {
	obj, ok := c.objectives[id]
	return obj, ok
}

// Cards returns all card definitions sorted by ID.
func (c *Catalog) Cards() []*CardDef {
	cards := make([]*CardDef, 0, len(c.cards))
	for _, card := range c.cards {
		cards = append(cards, card)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards
}

// Objectives returns all objective definitions sorted by tier, then ID.
func (c *Catalog) Objectives() []*ObjectiveDef {
	objs := make([]*ObjectiveDef, 0, len(c.objectives))
	for _, obj := range c.objectives {
		objs = append(objs, obj)
	}
	sort.Slice(objs, func(i, j int) bool {
		if objs[i].Tier != objs[j].Tier {
			return objs[i].Tier < objs[j].Tier
		}
		return objs[i].ID < objs[j].ID
	})
	return objs
}

// StarterDeck returns a copy of the starter deck card ID list.
func (c *Catalog) StarterDeck() []string {
	return append([]string(nil), c.starterDeck...)
}

// CardName returns the display name for a card ID, or the ID itself when the
// card is unknown (keeps the feed readable even on a desynced catalog).
func (c *Catalog) CardName(id string) string {
	if card, ok := c.cards[id]; ok {
		return card.Name
	}
	return id
}

// ObjectiveName returns the display name for an objective ID.
func (c *Catalog) ObjectiveName(id string) string {
	if obj, ok := c.objectives[id]; ok {
		return obj.Name
	}
	return id
}
