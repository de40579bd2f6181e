package catalog

// Default card set. Starter cards cost 0 and are excluded from the market
// pool; everything else is seeded into the market deck Copies times.

func defaultCards() []*CardDef {
	return []*CardDef{
		// --- Starters ---
		{
			ID:        "worker_ant",
			Name:      "Worker Ant",
			Type:      CardTypeWorker,
			Cost:      0,
			Resources: 1,
		},
		{
			ID:      "scout_ant",
			Name:    "Scout Ant",
			Type:    CardTypeSoldier,
			Cost:    0,
			Attack:  1,
			Defense: 1,
		},

		// --- Market: workers ---
		{
			ID:        "forager_ant",
			Name:      "Forager Ant",
			Type:      CardTypeWorker,
			Cost:      2,
			Resources: 1,
			Abilities: []Ability{{Kind: AbilityResources, Count: 1}},
			Copies:    8,
		},
		{
			ID:        "heavy_lifter",
			Name:      "Heavy Lifter",
			Type:      CardTypeWorker,
			Cost:      4,
			Resources: 2,
			Defense:   2,
			Copies:    6,
		},
		{
			ID:        "carpenter_ant",
			Name:      "Carpenter Ant",
			Type:      CardTypeWorker,
			Cost:      4,
			Defense:   2,
			VP:        1,
			Abilities: []Ability{{Kind: AbilityDraw, Count: 1}},
			Copies:    6,
		},
		{
			ID:        "architect_ant",
			Name:      "Architect Ant",
			Type:      CardTypeWorker,
			Cost:      4,
			Defense:   3,
			Abilities: []Ability{{Kind: AbilityReturn, Count: 1}},
			Copies:    6,
		},

		// --- Market: soldiers ---
		{
			ID:      "soldier_ant",
			Name:    "Soldier Ant",
			Type:    CardTypeSoldier,
			Cost:    3,
			Attack:  3,
			Defense: 2,
			Copies:  8,
		},
		{
			ID:        "saboteur_ant",
			Name:      "Saboteur Ant",
			Type:      CardTypeSoldier,
			Cost:      5,
			Attack:    2,
			Abilities: []Ability{{Kind: AbilitySabotage, Count: 1}},
			Copies:    4,
		},
		{
			ID:        "raider_ant",
			Name:      "Raider Ant",
			Type:      CardTypeSoldier,
			Cost:      5,
			Attack:    4,
			Abilities: []Ability{{Kind: AbilitySteal, Count: 1}},
			Copies:    4,
		},

		// --- Market: specialists ---
		{
			ID:        "nurse_ant",
			Name:      "Nurse Ant",
			Type:      CardTypeSpecialist,
			Cost:      3,
			Defense:   1,
			Abilities: []Ability{{Kind: AbilityHeal, Count: 1}},
			Copies:    6,
		},
		{
			ID:        "pathfinder_ant",
			Name:      "Pathfinder Ant",
			Type:      CardTypeSpecialist,
			Cost:      3,
			Abilities: []Ability{{Kind: AbilityScout, Count: 1}},
			Copies:    6,
		},
		{
			ID:        "winged_scout",
			Name:      "Winged Scout",
			Type:      CardTypeSpecialist,
			Cost:      3,
			Attack:    1,
			Abilities: []Ability{{Kind: AbilityScout, Count: 2}},
			Copies:    4,
		},
		{
			ID:        "cleaner_ant",
			Name:      "Cleaner Ant",
			Type:      CardTypeSpecialist,
			Cost:      2,
			Abilities: []Ability{{Kind: AbilityTrash, Count: 1}},
			Copies:    6,
		},
		{
			ID:        "queen_ant",
			Name:      "Queen Ant",
			Type:      CardTypeSpecialist,
			Cost:      7,
			Resources: 2,
			VP:        3,
			Abilities: []Ability{{Kind: AbilityDraw, Count: 1}},
			Copies:    2,
		},
	}
}

// defaultStarterDeck is the fixed ten-card deck every player begins with.
func defaultStarterDeck() []string {
	return []string{
		"worker_ant", "worker_ant", "worker_ant", "worker_ant",
		"worker_ant", "worker_ant", "worker_ant", "worker_ant",
		"scout_ant", "scout_ant",
	}
}
