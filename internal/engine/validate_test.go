package engine_test

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

func (s *EngineTestSuite) TestValidateActor() {
	s.NoError(s.engine.ValidateActor(newCharacter()))
	s.NoError(s.engine.ValidateActor(newNPC()))
}

func (s *EngineTestSuite) TestValidateActorFailures() {
	testCases := []struct {
		name   string
		mutate func(*vagabond.Actor)
		field  string
	}{
		{name: "missing name", mutate: func(a *vagabond.Actor) { a.Name = " " }, field: "name"},
		{name: "missing type", mutate: func(a *vagabond.Actor) { a.Type = "" }, field: "type"},
		{name: "unknown type", mutate: func(a *vagabond.Actor) { a.Type = "pet" }, field: "type"},
		{name: "stat too high", mutate: func(a *vagabond.Actor) { a.Stats.Might.Value = 13 }, field: "stats.might"},
		{name: "negative stat", mutate: func(a *vagabond.Actor) { a.Stats.Luck.Value = -1 }, field: "stats.luck"},
		{name: "level zero", mutate: func(a *vagabond.Actor) { a.Level = 0 }, field: "level"},
		{name: "level eleven", mutate: func(a *vagabond.Actor) { a.Level = 11 }, field: "level"},
		{name: "unknown class", mutate: func(a *vagabond.Actor) { a.ClassID = "paladin" }, field: "class_id"},
		{name: "unknown skill", mutate: func(a *vagabond.Actor) { a.Skills["juggling"] = &vagabond.Skill{} }, field: "skills.juggling"},
		{name: "unknown skill stat", mutate: func(a *vagabond.Actor) { a.Skills["melee"].Stat = "strength" }, field: "skills.melee.stat"},
		{name: "negative mana", mutate: func(a *vagabond.Actor) { a.Mana.Value = -1 }, field: "mana.value"},
		{name: "unknown delivery", mutate: func(a *vagabond.Actor) { a.Spells[0].Delivery = "beam" }, field: "spells[0].delivery"},
		{name: "unknown duration", mutate: func(a *vagabond.Actor) { a.Spells[1].Duration = "forever" }, field: "spells[1].duration"},
		{name: "unknown weapon property", mutate: func(a *vagabond.Actor) { a.Weapons[0].Properties = []string{"vorpal"} }, field: "weapons[0].properties"},
		{name: "weapon without die", mutate: func(a *vagabond.Actor) { a.Weapons[1].Damage.Die = "" }, field: "weapons[1].damage.die"},
		{name: "unknown armor type", mutate: func(a *vagabond.Actor) {
			a.Armor = []*vagabond.Armor{{ID: "a", Name: "Hide", Type: "ultra"}}
		}, field: "armor[0].type"},
		{name: "unknown perk prerequisite", mutate: func(a *vagabond.Actor) {
			a.Perks = []*vagabond.Perk{{ID: "p", Name: "P", Prerequisites: vagabond.PerkPrerequisites{Trained: []string{"flight"}}}}
		}, field: "perks[0].prerequisites.trained"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			actor := newCharacter()
			tc.mutate(actor)

			err := s.engine.ValidateActor(actor)

			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *EngineTestSuite) TestValidateNPCFields() {
	actor := newNPC()
	actor.HitDice = -1
	actor.Zone = "sideline"
	actor.Size = "tiny"

	err := s.engine.ValidateActor(actor)

	s.Error(err)
	s.Contains(err.Error(), "hit_dice")
	s.Contains(err.Error(), "zone")
	s.Contains(err.Error(), "size")
}

func (s *EngineTestSuite) TestSeedSkills() {
	s.Run("empty skills get the full list", func() {
		actor := newCharacter()
		actor.Skills = nil

		s.engine.SeedSkills(actor)

		s.Len(actor.Skills, len(s.engine.Rules().Skills))
		s.Equal(vagabond.StatPresence, actor.Skills["leadership"].Stat)
		s.False(actor.Skills["leadership"].Trained)
	})

	s.Run("existing skills keep training and gain stats", func() {
		actor := newCharacter()
		actor.Skills = map[string]*vagabond.Skill{"survival": {Trained: true}}

		s.engine.SeedSkills(actor)

		s.Len(actor.Skills, 1)
		s.Equal(vagabond.StatAwareness, actor.Skills["survival"].Stat)
		s.True(actor.Skills["survival"].Trained)
	})

	s.Run("npcs are left alone", func() {
		actor := newNPC()

		s.engine.SeedSkills(actor)

		s.Nil(actor.Skills)
	})
}
