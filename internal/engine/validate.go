package engine

import (
	"fmt"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

// Authoring bounds
const (
	MinStat  = 0
	MaxStat  = 12
	MinLevel = 1
	MaxLevel = 10
)

// ValidateActor checks the authored fields of an actor document against the
// ruleset. Derived fields are ignored.
func (e *engine) ValidateActor(actor *vagabond.Actor) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", actor.Name, vb)

	for _, key := range vagabond.AllStats {
		value, _ := actor.Stats.Value(key)
		errors.ValidateRange(fmt.Sprintf("stats.%s", key), value, MinStat, MaxStat, vb)
	}

	switch actor.Type {
	case vagabond.ActorTypeCharacter:
		errors.ValidateRange("level", actor.Level, MinLevel, MaxLevel, vb)
		errors.ValidateKnown("class_id", actor.ClassID, e.rules.Classes.Has, vb)
		errors.ValidateKnown("ancestry_id", actor.AncestryID, e.rules.Ancestries.Has, vb)
		for key, skill := range actor.Skills {
			field := fmt.Sprintf("skills.%s", key)
			if !e.rules.HasSkill(key) {
				vb.Field(field, "unknown skill")
				continue
			}
			if skill == nil {
				vb.Field(field, "is empty")
				continue
			}
			errors.ValidateKnown(field+".stat", string(skill.Stat), e.rules.HasStat, vb)
		}
	case vagabond.ActorTypeNPC:
		errors.ValidateMin("hit_dice", actor.HitDice, 0, vb)
		errors.ValidateKnown("zone", actor.Zone, e.rules.Zones.Has, vb)
		errors.ValidateKnown("size", actor.Size, e.rules.Sizes.Has, vb)
		errors.ValidateKnown("being_type", actor.BeingType, e.rules.BeingTypes.Has, vb)
	case "":
		vb.RequiredField("type")
	default:
		vb.Fieldf("type", "unknown actor type %q", actor.Type)
	}

	errors.ValidateMin("hp.value", actor.HP.Value, 0, vb)
	errors.ValidateMin("luck.value", actor.Luck.Value, 0, vb)
	errors.ValidateMin("mana.value", actor.Mana.Value, 0, vb)
	errors.ValidateMin("mana.max", actor.Mana.Max, 0, vb)
	errors.ValidateMin("fatigue", actor.Fatigue, 0, vb)

	e.validateItems(actor, vb)

	return vb.Build()
}

func (e *engine) validateItems(actor *vagabond.Actor, vb *errors.ValidationBuilder) {
	for i, spell := range actor.Spells {
		field := fmt.Sprintf("spells[%d]", i)
		if spell == nil {
			vb.Field(field, "is empty")
			continue
		}
		errors.ValidateRequired(field+".name", spell.Name, vb)
		errors.ValidateRequired(field+".delivery", spell.Delivery, vb)
		errors.ValidateKnown(field+".delivery", spell.Delivery, e.rules.HasDelivery, vb)
		errors.ValidateKnown(field+".duration", spell.Duration, e.rules.Durations.Has, vb)
	}

	for i, weapon := range actor.Weapons {
		field := fmt.Sprintf("weapons[%d]", i)
		if weapon == nil {
			vb.Field(field, "is empty")
			continue
		}
		errors.ValidateRequired(field+".name", weapon.Name, vb)
		errors.ValidateRequired(field+".damage.die", weapon.Damage.Die, vb)
		errors.ValidateKnown(field+".grip", weapon.Grip, e.rules.Grips.Has, vb)
		errors.ValidateKnown(field+".attack_skill", weapon.AttackSkill, e.rules.HasSkill, vb)
		for _, p := range weapon.Properties {
			errors.ValidateKnown(field+".properties", p, e.rules.WeaponProperties.Has, vb)
		}
	}

	for i, armor := range actor.Armor {
		field := fmt.Sprintf("armor[%d]", i)
		if armor == nil {
			vb.Field(field, "is empty")
			continue
		}
		errors.ValidateRequired(field+".name", armor.Name, vb)
		errors.ValidateKnown(field+".type", armor.Type, e.rules.HasArmorType, vb)
		errors.ValidateMin(field+".rating", armor.Rating, 0, vb)
		errors.ValidateMin(field+".might_req", armor.MightReq, 0, vb)
	}

	for i, perk := range actor.Perks {
		field := fmt.Sprintf("perks[%d]", i)
		if perk == nil {
			vb.Field(field, "is empty")
			continue
		}
		errors.ValidateRequired(field+".name", perk.Name, vb)
		for stat := range perk.Prerequisites.Stats {
			errors.ValidateKnown(field+".prerequisites.stats", string(stat), e.rules.HasStat, vb)
		}
		for _, skill := range perk.Prerequisites.Trained {
			errors.ValidateKnown(field+".prerequisites.trained", skill, e.rules.HasSkill, vb)
		}
	}
}

// SeedSkills gives a character with no skills every ruleset skill, untrained,
// and fills in the stat of any entry that left it out
func (e *engine) SeedSkills(actor *vagabond.Actor) {
	if actor == nil || actor.Type != vagabond.ActorTypeCharacter {
		return
	}

	if len(actor.Skills) == 0 {
		actor.Skills = make(map[string]*vagabond.Skill, len(e.rules.Skills))
		for _, def := range e.rules.Skills {
			actor.Skills[def.Key] = &vagabond.Skill{Stat: def.Stat}
		}
		return
	}

	for key, skill := range actor.Skills {
		if skill == nil || skill.Stat != "" {
			continue
		}
		if def, ok := e.rules.Skill(key); ok {
			skill.Stat = def.Stat
		}
	}
}
