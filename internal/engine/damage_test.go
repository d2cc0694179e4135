package engine_test

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

func (s *EngineTestSuite) TestPlanDamage() {
	actor := newCharacter()
	s.Require().NoError(s.engine.DeriveActor(actor))

	s.Run("melee weapon adds bonus and might", func() {
		plan, err := s.engine.PlanDamage(actor, "weapon_sword")
		s.Require().NoError(err)
		s.Equal("1d8 + 1 + 4", plan.Formula)
		s.Equal("Sword - Damage (Keen)", plan.Label)
		s.Equal("weapon_sword", plan.WeaponID)
	})

	s.Run("finesse weapon adds dexterity", func() {
		plan, err := s.engine.PlanDamage(actor, "weapon_dagger")
		s.Require().NoError(err)
		s.Equal("1d4 + 5", plan.Formula)
		s.Equal("Dagger - Damage (Finesse, Thrown)", plan.Label)
	})

	s.Run("negative bonus", func() {
		actor.Weapons = append(actor.Weapons, &vagabond.Weapon{
			ID:     "weapon_club",
			Name:   "Cracked Club",
			Damage: vagabond.WeaponDamage{Die: "1d6", Bonus: -1},
		})
		plan, err := s.engine.PlanDamage(actor, "weapon_club")
		s.Require().NoError(err)
		s.Equal("1d6 - 1 + 4", plan.Formula)
		s.Equal("Cracked Club - Damage", plan.Label)
	})
}

func (s *EngineTestSuite) TestPlanDamageErrors() {
	actor := newCharacter()

	_, err := s.engine.PlanDamage(actor, "")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.PlanDamage(actor, "weapon_missing")
	s.True(errors.IsNotFound(err))

	actor.Weapons = append(actor.Weapons, &vagabond.Weapon{ID: "weapon_broken", Name: "Hilt"})
	_, err = s.engine.PlanDamage(actor, "weapon_broken")
	s.True(errors.IsInvalidArgument(err))
}
