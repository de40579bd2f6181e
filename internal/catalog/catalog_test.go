package catalog

import (
	"testing"
)

func TestParseAbilityTags(t *testing.T) {
	tests := []struct {
		tag   string
		kind  AbilityKind
		count int
	}{
		{"draw", AbilityDraw, 1},
		{"resources", AbilityResources, 1},
		{"scout", AbilityScout, 1},
		{"scout:3", AbilityScout, 3},
		{"sabotage:2", AbilitySabotage, 2},
		{"steal", AbilitySteal, 1},
		{"return", AbilityReturn, 1},
	}
	for _, tt := range tests {
		a, err := ParseAbility(tt.tag)
		if err != nil {
			t.Errorf("ParseAbility(%q): %v", tt.tag, err)
			continue
		}
		if a.Kind != tt.kind || a.Count != tt.count {
			t.Errorf("ParseAbility(%q) = %v, want %s x%d", tt.tag, a, tt.kind, tt.count)
		}
	}
}

func TestParseAbilityRejectsBadTags(t *testing.T) {
	for _, tag := range []string{"fly", "scout:", "scout:0", "scout:-1", "scout:x", ""} {
		if _, err := ParseAbility(tag); err == nil {
			t.Errorf("ParseAbility(%q) should fail", tag)
		}
	}
}

func TestParseRewardValidatesPayload(t *testing.T) {
	if _, err := ParseReward("vp_multiplier", 1, ""); err != nil {
		t.Errorf("vp_multiplier: %v", err)
	}
	if _, err := ParseReward("card", 0, "queen_ant"); err != nil {
		t.Errorf("card reward: %v", err)
	}
	if _, err := ParseReward("instant_win", 0, ""); err != nil {
		t.Errorf("instant_win: %v", err)
	}
	if _, err := ParseReward("card", 0, ""); err == nil {
		t.Error("card reward without an id should fail")
	}
	if _, err := ParseReward("resources", 0, ""); err == nil {
		t.Error("resources reward with amount 0 should fail")
	}
	if _, err := ParseReward("jackpot", 1, ""); err == nil {
		t.Error("unknown reward kind should fail")
	}
}

func TestDefaultCatalogIsCoherent(t *testing.T) {
	c := Default()

	deck := c.StarterDeck()
	if len(deck) != 10 {
		t.Fatalf("starter deck = %d cards, want 10", len(deck))
	}
	for _, id := range deck {
		card, ok := c.Card(id)
		if !ok {
			t.Fatalf("starter card %s missing from catalog", id)
		}
		if !card.IsStarter() {
			t.Errorf("starter card %s has cost %d", id, card.Cost)
		}
	}

	tiers := map[int]int{}
	for _, obj := range c.Objectives() {
		tiers[obj.Tier]++
	}
	for tier := 1; tier <= 3; tier++ {
		if tiers[tier] == 0 {
			t.Errorf("tier %d has no objectives", tier)
		}
	}

	// Every grant-card reward must reference a real card.
	for _, obj := range c.Objectives() {
		if obj.Reward.Kind == RewardGrantCard {
			if _, ok := c.Card(obj.Reward.CardID); !ok {
				t.Errorf("objective %s grants unknown card %s", obj.ID, obj.Reward.CardID)
			}
		}
	}
}

func TestNewRejectsDuplicatesAndDanglingRefs(t *testing.T) {
	dup := []*CardDef{
		{ID: "a", Name: "A"},
		{ID: "a", Name: "A again"},
	}
	if _, err := New(dup, nil, nil); err == nil {
		t.Error("duplicate card ids should fail validation")
	}

	objs := []*ObjectiveDef{{
		ID: "o", Name: "O", Tier: 1, AntsRequired: 1,
		Reward: Reward{Kind: RewardGrantCard, CardID: "ghost"},
	}}
	if _, err := New(nil, objs, nil); err == nil {
		t.Error("reward referencing an unknown card should fail validation")
	}

	if _, err := New([]*CardDef{{ID: "b", Name: "B", Cost: 1}}, nil, []string{"b"}); err == nil {
		t.Error("a costed card in the starter deck should fail validation")
	}
}

func TestLoadYAMLCatalog(t *testing.T) {
	data := []byte(`
cards:
  - id: digger_ant
    name: Digger Ant
    type: worker
    resources: 1
  - id: lookout_ant
    name: Lookout Ant
    type: specialist
    cost: 3
    abilities: ["scout:2", "draw"]
    copies: 4
objectives:
  - id: dirt_pile
    name: Dirt Pile
    tier: 1
    antsRequired: 2
    vp: 2
    reward:
      type: resources
      amount: 2
starterDeck: [digger_ant, digger_ant]
`)
	c, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	card, ok := c.Card("lookout_ant")
	if !ok {
		t.Fatal("lookout_ant missing after load")
	}
	if len(card.Abilities) != 2 || card.Abilities[0].Kind != AbilityScout || card.Abilities[0].Count != 2 {
		t.Errorf("abilities = %v, want parsed scout:2 then draw", card.Abilities)
	}

	obj, ok := c.Objective("dirt_pile")
	if !ok {
		t.Fatal("dirt_pile missing after load")
	}
	if obj.Reward.Kind != RewardResources || obj.Reward.Amount != 2 {
		t.Errorf("reward = %v, want resources +2", obj.Reward)
	}
}

func TestLoadRejectsUnknownAbility(t *testing.T) {
	data := []byte(`
cards:
  - id: odd_ant
    name: Odd Ant
    type: worker
    abilities: ["levitate"]
`)
	if _, err := Load(data); err == nil {
		t.Fatal("unknown ability tag should fail the load")
	}
}

func TestLoadRejectsUnknownCardType(t *testing.T) {
	data := []byte(`
cards:
  - id: odd_ant
    name: Odd Ant
    type: wizard
`)
	if _, err := Load(data); err == nil {
		t.Fatal("unknown card type should fail the load")
	}
}
