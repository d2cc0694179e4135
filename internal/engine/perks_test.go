package engine_test

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

func (s *EngineTestSuite) TestCheckPerkPrerequisites() {
	actor := newCharacter()

	testCases := []struct {
		name  string
		perk  *vagabond.Perk
		met   bool
		unmet []string
	}{
		{
			name: "no prerequisites",
			perk: &vagabond.Perk{ID: "p1", Name: "Tough"},
			met:  true,
		},
		{
			name: "stat and training met",
			perk: &vagabond.Perk{ID: "p2", Name: "Scholar", Prerequisites: vagabond.PerkPrerequisites{
				Stats:   map[vagabond.StatKey]int32{vagabond.StatReason: 6},
				Trained: []string{"arcana"},
			}},
			met: true,
		},
		{
			name: "stat too low",
			perk: &vagabond.Perk{ID: "p3", Name: "Brute", Prerequisites: vagabond.PerkPrerequisites{
				Stats: map[vagabond.StatKey]int32{vagabond.StatMight: 5, vagabond.StatDexterity: 6},
			}},
			unmet: []string{"dexterity 5 below 6", "might 4 below 5"},
		},
		{
			name: "untrained and missing skills",
			perk: &vagabond.Perk{ID: "p4", Name: "Duelist", Prerequisites: vagabond.PerkPrerequisites{
				Trained: []string{"melee", "finesse"},
			}},
			unmet: []string{"Melee not trained", "Finesse not trained"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			check := s.engine.CheckPerkPrerequisites(actor, tc.perk)
			s.Equal(tc.met, check.Met)
			s.Equal(tc.unmet, check.Unmet)
		})
	}
}
