package engine

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

// Base target number every difficulty and save subtracts from
const baseTarget = 20

// Speed tiers keyed by dexterity
var (
	speedSlow   = vagabond.Speed{Base: 25, Crawl: 75, Travel: 5}
	speedNormal = vagabond.Speed{Base: 30, Crawl: 90, Travel: 6}
	speedFast   = vagabond.Speed{Base: 35, Crawl: 105, Travel: 7}
)

// SkillDifficulty is the target number for a skill or attack check
func SkillDifficulty(stat int32, trained bool) int32 {
	multiplier := int32(1)
	if trained {
		multiplier = 2
	}
	return baseTarget - stat*multiplier
}

// SaveTarget is the target number for a save over two stats
func SaveTarget(a, b int32) int32 {
	return baseTarget - (a + b)
}

// CharacterMaxHP is might times level
func CharacterMaxHP(might, level int32) int32 {
	return might * level
}

// NPCMaxHP is floor(hitDice × 4.5). Hit dice are never negative on a valid
// document, so integer division floors.
func NPCMaxHP(hitDice int32) int32 {
	return hitDice * 9 / 2
}

// SlotsMax is the inventory capacity for a might value
func SlotsMax(might int32) int32 {
	return 8 + might
}

// SpeedFor returns the speed tier for a dexterity value
func SpeedFor(dexterity int32) vagabond.Speed {
	switch {
	case dexterity <= 3:
		return speedSlow
	case dexterity <= 5:
		return speedNormal
	default:
		return speedFast
	}
}

// SpendLimit is max(awareness, reason) + ceil(level / 2)
func SpendLimit(awareness, reason, level int32) int32 {
	half := level / 2
	if level > 0 && level%2 != 0 {
		half++
	}
	return max(awareness, reason) + half
}

// DeriveActor overwrites every derived field of the actor and its items
func (e *engine) DeriveActor(actor *vagabond.Actor) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}

	switch actor.Type {
	case vagabond.ActorTypeCharacter:
		e.deriveCharacter(actor)
	case vagabond.ActorTypeNPC:
		e.deriveNPC(actor)
	default:
		return errors.UnknownKeyf("unknown actor type %q", actor.Type)
	}

	e.deriveItems(actor)
	return nil
}

func (e *engine) deriveCharacter(actor *vagabond.Actor) {
	stats := actor.Stats

	actor.HP.Max = CharacterMaxHP(stats.Might.Value, actor.Level)
	actor.Slots.Max = SlotsMax(stats.Might.Value)
	actor.Speed = SpeedFor(stats.Dexterity.Value)
	actor.Luck.Max = stats.Luck.Value
	actor.Saves = e.deriveSaves(stats)

	if actor.Mana.HasPool() {
		limit := SpendLimit(stats.Awareness.Value, stats.Reason.Value, actor.Level)
		actor.Mana.SpendLimit = &limit
	} else {
		actor.Mana.SpendLimit = nil
	}

	for key, skill := range actor.Skills {
		if skill == nil {
			continue
		}
		if skill.Stat == "" {
			if def, ok := e.rules.Skill(key); ok {
				skill.Stat = def.Stat
			}
		}
		value, _ := stats.Value(skill.Stat)
		skill.Difficulty = SkillDifficulty(value, skill.Trained)
	}
}

func (e *engine) deriveNPC(actor *vagabond.Actor) {
	actor.HP.Max = NPCMaxHP(actor.HitDice)
	actor.Saves = e.deriveSaves(actor.Stats)
	actor.Mana.SpendLimit = nil
}

func (e *engine) deriveSaves(stats vagabond.Stats) vagabond.Saves {
	target := func(key string) vagabond.SaveValue {
		def, ok := e.rules.Save(key)
		if !ok || len(def.Stats) != 2 {
			return vagabond.SaveValue{Value: baseTarget}
		}
		a, _ := stats.Value(def.Stats[0])
		b, _ := stats.Value(def.Stats[1])
		return vagabond.SaveValue{Value: SaveTarget(a, b)}
	}

	return vagabond.Saves{
		Endure: target(vagabond.SaveEndure),
		Reflex: target(vagabond.SaveReflex),
		Will:   target(vagabond.SaveWill),
	}
}

func (e *engine) deriveItems(actor *vagabond.Actor) {
	for _, spell := range actor.Spells {
		if spell != nil {
			e.deriveSpell(spell)
		}
	}
	for _, weapon := range actor.Weapons {
		if weapon != nil {
			deriveWeapon(weapon)
		}
	}
	for _, armor := range actor.Armor {
		if armor != nil {
			e.deriveArmor(armor)
		}
	}
}

func (e *engine) deriveSpell(spell *vagabond.Spell) {
	spell.DeliveryCost = 0
	if d, ok := e.rules.Delivery(spell.Delivery); ok {
		spell.DeliveryCost = d.Cost
	}
	spell.HasDamage = spell.DamageBase != ""
}

func deriveWeapon(weapon *vagabond.Weapon) {
	weapon.CanUseBrawl = weapon.HasProperty(vagabond.PropertyBrawl)
	weapon.CanUseFinesse = weapon.HasProperty(vagabond.PropertyFinesse)
	weapon.CanUseRanged = weapon.HasProperty(vagabond.PropertyRanged)

	if weapon.AttackSkill != "" {
		return
	}
	switch {
	case weapon.CanUseBrawl:
		weapon.AttackSkill = vagabond.SkillBrawl
	case weapon.CanUseFinesse:
		weapon.AttackSkill = vagabond.SkillFinesse
	case weapon.CanUseRanged:
		weapon.AttackSkill = vagabond.SkillRanged
	default:
		weapon.AttackSkill = vagabond.SkillMelee
	}
}

// deriveArmor only fills rating and might requirement when they are unset
func (e *engine) deriveArmor(armor *vagabond.Armor) {
	def, ok := e.rules.ArmorType(armor.Type)
	if !ok {
		return
	}
	if armor.Rating == 0 {
		armor.Rating = def.Rating
	}
	if armor.MightReq == 0 {
		armor.MightReq = def.MightReq
	}
}
