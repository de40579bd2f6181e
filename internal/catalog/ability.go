package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// AbilityKind enumerates the recognized card ability tags.
type AbilityKind int

const (
	AbilityNone AbilityKind = iota
	AbilityDraw
	AbilityResources
	AbilityHeal
	AbilityScout
	AbilitySabotage
	AbilityTrash
	AbilitySteal
	AbilityReturn
)

func (k AbilityKind) String() string {
	switch k {
	case AbilityDraw:
		return "draw"
	case AbilityResources:
		return "resources"
	case AbilityHeal:
		return "heal"
	case AbilityScout:
		return "scout"
	case AbilitySabotage:
		return "sabotage"
	case AbilityTrash:
		return "trash"
	case AbilitySteal:
		return "steal"
	case AbilityReturn:
		return "return"
	default:
		return "none"
	}
}

// Ability is a single parsed ability tag. Count is the repeat count for tags
// that carry one (scout, sabotage, trash, steal); it is always at least 1.
type Ability struct {
	Kind  AbilityKind
	Count int
}

func (a Ability) String() string {
	if a.Count > 1 {
		return fmt.Sprintf("%s:%d", a.Kind, a.Count)
	}
	return a.Kind.String()
}

var abilityKinds = map[string]AbilityKind{
	"draw":      AbilityDraw,
	"resources": AbilityResources,
	"heal":      AbilityHeal,
	"scout":     AbilityScout,
	"sabotage":  AbilitySabotage,
	"trash":     AbilityTrash,
	"steal":     AbilitySteal,
	"return":    AbilityReturn,
}

// ParseAbility parses a raw ability tag of the form "name" or "name:N".
// Tags are parsed once at catalog load, never re-parsed per invocation.
func ParseAbility(tag string) (Ability, error) {
	name := tag
	count := 1
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		name = tag[:i]
		n, err := strconv.Atoi(tag[i+1:])
		if err != nil || n < 1 {
			return Ability{}, fmt.Errorf("ability %q: bad count", tag)
		}
		count = n
	}
	kind, ok := abilityKinds[name]
	if !ok {
		return Ability{}, fmt.Errorf("unknown ability tag %q", name)
	}
	return Ability{Kind: kind, Count: count}, nil
}

// ParseAbilities parses a list of raw tags.
func ParseAbilities(tags []string) ([]Ability, error) {
	var abilities []Ability
	for _, tag := range tags {
		a, err := ParseAbility(tag)
		if err != nil {
			return nil, err
		}
		abilities = append(abilities, a)
	}
	return abilities, nil
}
