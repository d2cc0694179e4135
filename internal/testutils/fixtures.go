package testutils

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/testutils/builders"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Wren"

// CreateTestCharacter creates a level 2 caster with a trained arcana skill
// and a damaging spell
func CreateTestCharacter(id, playerID string) *vagabond.Actor {
	return builders.NewCharacterBuilder().
		WithID(id).
		WithPlayerID(playerID).
		WithName(TestCharacterName).
		WithLevel(2).
		WithStat(vagabond.StatMight, 4).
		WithStat(vagabond.StatReason, 5).
		WithSkill("arcana", vagabond.StatReason, true).
		WithMana(6).
		WithSpell(&vagabond.Spell{ID: "spell_1", Name: "Bolt", Delivery: "cube", DamageBase: "d6"}).
		Build()
}

// CreateTestNPC creates a three hit die NPC
func CreateTestNPC(id string) *vagabond.Actor {
	return builders.NewNPCBuilder().
		WithID(id).
		WithName("Bandit").
		WithHitDice(3).
		WithStat(vagabond.StatMight, 3).
		WithStat(vagabond.StatDexterity, 4).
		Build()
}
