package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/rules"
)

type EngineTestSuite struct {
	suite.Suite
	engine engine.Engine
}

func (s *EngineTestSuite) SetupTest() {
	e, err := engine.New(&engine.Config{Rules: rules.MustDefault()})
	s.Require().NoError(err)
	s.engine = e
}

func (s *EngineTestSuite) TestNewRequiresRules() {
	e, err := engine.New(&engine.Config{})
	s.Error(err)
	s.Nil(e)
	s.True(errors.IsInvalidArgument(err))
}

// newCharacter builds a level 3 caster with a spread of stats
func newCharacter() *vagabond.Actor {
	return &vagabond.Actor{
		ID:    "actor_1",
		Type:  vagabond.ActorTypeCharacter,
		Name:  "Wren",
		Level: 3,
		Stats: vagabond.Stats{
			Might:     vagabond.Stat{Value: 4},
			Dexterity: vagabond.Stat{Value: 5},
			Awareness: vagabond.Stat{Value: 3},
			Reason:    vagabond.Stat{Value: 6},
			Presence:  vagabond.Stat{Value: 2},
			Luck:      vagabond.Stat{Value: 3},
		},
		Skills: map[string]*vagabond.Skill{
			"arcana": {Stat: vagabond.StatReason, Trained: true},
			"melee":  {Stat: vagabond.StatMight},
			"sneak":  {Stat: vagabond.StatDexterity, Trained: true},
		},
		Mana: vagabond.Mana{Value: 8, Max: 8},
		Spells: []*vagabond.Spell{
			{ID: "spell_bolt", Name: "Bolt", Delivery: "cube", Duration: "instant", DamageBase: "d6"},
			{ID: "spell_light", Name: "Light", Delivery: "touch", Duration: "focus"},
		},
		Weapons: []*vagabond.Weapon{
			{ID: "weapon_sword", Name: "Sword", Properties: []string{"keen"}, Damage: vagabond.WeaponDamage{Die: "1d8", Bonus: 1}},
			{ID: "weapon_dagger", Name: "Dagger", Properties: []string{"finesse", "thrown"}, Damage: vagabond.WeaponDamage{Die: "1d4"}},
		},
	}
}

func newNPC() *vagabond.Actor {
	return &vagabond.Actor{
		ID:      "actor_2",
		Type:    vagabond.ActorTypeNPC,
		Name:    "Bandit",
		HitDice: 3,
		Stats: vagabond.Stats{
			Might:     vagabond.Stat{Value: 3},
			Dexterity: vagabond.Stat{Value: 4},
			Awareness: vagabond.Stat{Value: 2},
			Reason:    vagabond.Stat{Value: 1},
			Presence:  vagabond.Stat{Value: 1},
		},
	}
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
