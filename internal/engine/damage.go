package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

// DamagePlan is a weapon damage expression ready to roll
type DamagePlan struct {
	WeaponID string
	Label    string
	Formula  string
}

// PlanDamage builds "die [+ bonus] + stat" for a weapon the actor carries.
// The stat is the one tested by the weapon's attack skill.
func (e *engine) PlanDamage(actor *vagabond.Actor, weaponID string) (*DamagePlan, error) {
	if actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if weaponID == "" {
		return nil, errors.InvalidArgument("weapon ID is required")
	}

	weapon := actor.FindWeapon(weaponID)
	if weapon == nil {
		return nil, errors.NotFoundf("weapon %s not found on actor %s", weaponID, actor.ID)
	}
	if weapon.Damage.Die == "" {
		return nil, errors.InvalidArgumentf("weapon %s has no damage die", weaponID)
	}

	deriveWeapon(weapon)

	formula := weapon.Damage.Die
	if weapon.Damage.Bonus != 0 {
		formula += signedTerm(weapon.Damage.Bonus)
	}

	if def, ok := e.rules.Skill(weapon.AttackSkill); ok {
		stat, _ := actor.Stats.Value(def.Stat)
		formula += signedTerm(stat)
	}

	label := fmt.Sprintf("%s - Damage", weapon.Name)
	if len(weapon.Properties) > 0 {
		labels := make([]string, 0, len(weapon.Properties))
		for _, p := range weapon.Properties {
			labels = append(labels, e.rules.WeaponProperties.Label(p))
		}
		label = fmt.Sprintf("%s (%s)", label, strings.Join(labels, ", "))
	}

	return &DamagePlan{
		WeaponID: weapon.ID,
		Label:    label,
		Formula:  formula,
	}, nil
}

// signedTerm renders a constant as " + n" or " - n"
func signedTerm(n int32) string {
	if n < 0 {
		return fmt.Sprintf(" - %d", -n)
	}
	return fmt.Sprintf(" + %d", n)
}
