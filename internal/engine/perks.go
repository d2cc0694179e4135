package engine

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

// PerkCheck reports whether an actor qualifies for a perk
type PerkCheck struct {
	Met   bool
	Unmet []string
}

// CheckPerkPrerequisites checks minimum stats and required training
func (e *engine) CheckPerkPrerequisites(actor *vagabond.Actor, perk *vagabond.Perk) *PerkCheck {
	check := &PerkCheck{}
	if actor == nil || perk == nil {
		check.Met = perk == nil
		return check
	}

	stats := make([]string, 0, len(perk.Prerequisites.Stats))
	for stat := range perk.Prerequisites.Stats {
		stats = append(stats, string(stat))
	}
	sort.Strings(stats)

	for _, stat := range stats {
		required := perk.Prerequisites.Stats[vagabond.StatKey(stat)]
		value, ok := actor.Stats.Value(vagabond.StatKey(stat))
		if !ok {
			check.Unmet = append(check.Unmet, fmt.Sprintf("unknown stat %s", stat))
			continue
		}
		if value < required {
			check.Unmet = append(check.Unmet, fmt.Sprintf("%s %d below %d", stat, value, required))
		}
	}

	for _, key := range perk.Prerequisites.Trained {
		skill, ok := actor.Skills[key]
		if !ok || skill == nil || !skill.Trained {
			check.Unmet = append(check.Unmet, fmt.Sprintf("%s not trained", e.rules.SkillLabel(key)))
		}
	}

	check.Met = len(check.Unmet) == 0
	return check
}
