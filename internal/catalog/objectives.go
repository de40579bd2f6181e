package catalog

// Default construction objectives, three tiers. The game ends when the final
// tier's row and deck are both exhausted.

func defaultObjectives() []*ObjectiveDef {
	return []*ObjectiveDef{
		// --- Tier 1 ---
		{
			ID:           "leaf_bridge",
			Name:         "Leaf Bridge",
			Tier:         1,
			AntsRequired: 2,
			VP:           2,
			Reward:       Reward{Kind: RewardResources, Amount: 2},
		},
		{
			ID:           "twig_ramp",
			Name:         "Twig Ramp",
			Tier:         1,
			AntsRequired: 2,
			VP:           2,
			Reward:       Reward{Kind: RewardDraw, Amount: 2},
		},
		{
			ID:           "pebble_mound",
			Name:         "Pebble Mound",
			Tier:         1,
			AntsRequired: 3,
			VP:           3,
			Reward:       Reward{Kind: RewardDefense, Amount: 1},
		},

		// --- Tier 2 ---
		{
			ID:           "stream_crossing",
			Name:         "Stream Crossing",
			Tier:         2,
			AntsRequired: 3,
			VP:           4,
			Reward:       Reward{Kind: RewardResourcesPerTurn, Amount: 1},
		},
		{
			ID:           "canopy_ladder",
			Name:         "Canopy Ladder",
			Tier:         2,
			AntsRequired: 4,
			VP:           5,
			Reward:       Reward{Kind: RewardGrantCard, CardID: "queen_ant"},
		},
		{
			ID:           "bark_tunnel",
			Name:         "Bark Tunnel",
			Tier:         2,
			AntsRequired: 3,
			VP:           4,
			Reward:       Reward{Kind: RewardVPBonus, Amount: 2},
		},

		// --- Tier 3 ---
		{
			ID:           "royal_chamber",
			Name:         "Royal Chamber",
			Tier:         3,
			AntsRequired: 4,
			VP:           6,
			Reward:       Reward{Kind: RewardDraw, Amount: 3},
		},
		{
			ID:           "great_bridge",
			Name:         "Great Bridge",
			Tier:         3,
			AntsRequired: 5,
			VP:           8,
			Reward:       Reward{Kind: RewardVPMultiplier, Amount: 1},
		},
		{
			ID:           "colony_monument",
			Name:         "Colony Monument",
			Tier:         3,
			AntsRequired: 6,
			VP:           10,
			Reward:       Reward{Kind: RewardInstantWin},
		},
	}
}

// Default returns the built-in catalog. Panics on an invalid default set,
// which would be a programming error.
func Default() *Catalog {
	c, err := New(defaultCards(), defaultObjectives(), defaultStarterDeck())
	if err != nil {
		panic("catalog: invalid default set: " + err.Error())
	}
	return c
}
