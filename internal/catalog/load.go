package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the top-level YAML structure for an external catalog.
type CatalogFile struct {
	Cards       []CardEntry      `yaml:"cards"`
	Objectives  []ObjectiveEntry `yaml:"objectives"`
	StarterDeck []string         `yaml:"starterDeck"`
}

// CardEntry is one card in the YAML file. Abilities are raw tags
// ("scout", "scout:3") parsed at load time.
type CardEntry struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Cost      int      `yaml:"cost"`
	Attack    int      `yaml:"attack"`
	Defense   int      `yaml:"defense"`
	Resources int      `yaml:"resources"`
	VP        int      `yaml:"vp"`
	Abilities []string `yaml:"abilities"`
	Copies    int      `yaml:"copies"`
}

// ObjectiveEntry is one objective in the YAML file.
type ObjectiveEntry struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	Tier         int         `yaml:"tier"`
	AntsRequired int         `yaml:"antsRequired"`
	VP           int         `yaml:"vp"`
	Reward       RewardEntry `yaml:"reward"`
}

// RewardEntry is the external reward representation.
type RewardEntry struct {
	Type   string `yaml:"type"`
	Amount int    `yaml:"amount"`
	CardID string `yaml:"cardId"`
}

var cardTypes = map[string]CardType{
	"worker":     CardTypeWorker,
	"soldier":    CardTypeSoldier,
	"specialist": CardTypeSpecialist,
}

// LoadFile parses a YAML catalog file and returns a validated catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Load parses YAML catalog data and returns a validated catalog.
func Load(data []byte) (*Catalog, error) {
	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	var cards []*CardDef
	for _, entry := range cf.Cards {
		ct, ok := cardTypes[entry.Type]
		if !ok {
			return nil, fmt.Errorf("card %q: unknown type %q", entry.ID, entry.Type)
		}
		abilities, err := ParseAbilities(entry.Abilities)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", entry.ID, err)
		}
		cards = append(cards, &CardDef{
			ID:        entry.ID,
			Name:      entry.Name,
			Type:      ct,
			Cost:      entry.Cost,
			Attack:    entry.Attack,
			Defense:   entry.Defense,
			Resources: entry.Resources,
			VP:        entry.VP,
			Abilities: abilities,
			Copies:    entry.Copies,
		})
	}

	var objectives []*ObjectiveDef
	for _, entry := range cf.Objectives {
		reward, err := ParseReward(entry.Reward.Type, entry.Reward.Amount, entry.Reward.CardID)
		if err != nil {
			return nil, fmt.Errorf("objective %q: %w", entry.ID, err)
		}
		objectives = append(objectives, &ObjectiveDef{
			ID:           entry.ID,
			Name:         entry.Name,
			Tier:         entry.Tier,
			AntsRequired: entry.AntsRequired,
			VP:           entry.VP,
			Reward:       reward,
		})
	}

	return New(cards, objectives, cf.StarterDeck)
}
