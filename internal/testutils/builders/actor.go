// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

// ActorBuilder provides a fluent interface for building test Actor instances
type ActorBuilder struct {
	actor *vagabond.Actor
}

// NewCharacterBuilder creates a level 1 character with minimal defaults
func NewCharacterBuilder() *ActorBuilder {
	return &ActorBuilder{
		actor: &vagabond.Actor{
			ID:    "actor-test-123",
			Type:  vagabond.ActorTypeCharacter,
			Name:  "Test Character",
			Level: 1,
		},
	}
}

// NewNPCBuilder creates a one hit die NPC with minimal defaults
func NewNPCBuilder() *ActorBuilder {
	return &ActorBuilder{
		actor: &vagabond.Actor{
			ID:      "actor-test-456",
			Type:    vagabond.ActorTypeNPC,
			Name:    "Test NPC",
			HitDice: 1,
		},
	}
}

// WithID sets the actor ID
func (b *ActorBuilder) WithID(id string) *ActorBuilder {
	b.actor.ID = id
	return b
}

// WithPlayerID sets the owning player
func (b *ActorBuilder) WithPlayerID(playerID string) *ActorBuilder {
	b.actor.PlayerID = playerID
	return b
}

// WithName sets the actor name
func (b *ActorBuilder) WithName(name string) *ActorBuilder {
	b.actor.Name = name
	return b
}

// WithLevel sets the character level
func (b *ActorBuilder) WithLevel(level int32) *ActorBuilder {
	b.actor.Level = level
	return b
}

// WithHitDice sets the NPC hit dice
func (b *ActorBuilder) WithHitDice(hitDice int32) *ActorBuilder {
	b.actor.HitDice = hitDice
	return b
}

// WithStat sets a single stat value
func (b *ActorBuilder) WithStat(key vagabond.StatKey, value int32) *ActorBuilder {
	stat := vagabond.Stat{Value: value}
	switch key {
	case vagabond.StatMight:
		b.actor.Stats.Might = stat
	case vagabond.StatDexterity:
		b.actor.Stats.Dexterity = stat
	case vagabond.StatAwareness:
		b.actor.Stats.Awareness = stat
	case vagabond.StatReason:
		b.actor.Stats.Reason = stat
	case vagabond.StatPresence:
		b.actor.Stats.Presence = stat
	case vagabond.StatLuck:
		b.actor.Stats.Luck = stat
	}
	return b
}

// WithSkill adds a skill entry
func (b *ActorBuilder) WithSkill(key string, stat vagabond.StatKey, trained bool) *ActorBuilder {
	if b.actor.Skills == nil {
		b.actor.Skills = make(map[string]*vagabond.Skill)
	}
	b.actor.Skills[key] = &vagabond.Skill{Stat: stat, Trained: trained}
	return b
}

// WithMana gives the actor a full mana pool of the given size
func (b *ActorBuilder) WithMana(maxMana int32) *ActorBuilder {
	b.actor.Mana = vagabond.Mana{Value: maxMana, Max: maxMana}
	return b
}

// WithSpell adds a spell
func (b *ActorBuilder) WithSpell(spell *vagabond.Spell) *ActorBuilder {
	b.actor.Spells = append(b.actor.Spells, spell)
	return b
}

// WithWeapon adds a weapon
func (b *ActorBuilder) WithWeapon(weapon *vagabond.Weapon) *ActorBuilder {
	b.actor.Weapons = append(b.actor.Weapons, weapon)
	return b
}

// Build returns the built actor
func (b *ActorBuilder) Build() *vagabond.Actor {
	return b.actor
}
