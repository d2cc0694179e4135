package engine_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

// newCaster returns a derived character whose spend limit is limit
func (s *EngineTestSuite) newCaster(manaValue, limit int32) *vagabond.Actor {
	actor := newCharacter()
	actor.Level = 2
	actor.Stats.Awareness.Value = 0
	actor.Stats.Reason.Value = limit - 1
	actor.Mana = vagabond.Mana{Value: manaValue, Max: 10}
	s.Require().NoError(s.engine.DeriveActor(actor))
	s.Require().Equal(limit, *actor.Mana.SpendLimit)
	return actor
}

func (s *EngineTestSuite) TestManaCost() {
	s.Equal(int32(5), engine.ManaCost(1, true, 2))
	s.Equal(int32(1), engine.ManaCost(1, false, 2))
	s.Equal(int32(0), engine.ManaCost(0, false, 0))
	s.Equal(int32(8), engine.ManaCost(2, true, 3))
}

func (s *EngineTestSuite) TestQuoteCastCubeWithDamage() {
	input := &engine.QuoteCastInput{SpellID: "spell_bolt", DealDamage: true, DamageDice: 2}

	s.Run("accepted", func() {
		quote, err := s.engine.QuoteCast(s.newCaster(10, 5), input)
		s.Require().NoError(err)
		s.Equal(int32(5), quote.ManaCost)
		s.True(quote.Allowed)
		s.Empty(quote.Reason)
		s.NoError(engine.CastError(quote))
	})

	s.Run("not enough mana", func() {
		quote, err := s.engine.QuoteCast(s.newCaster(4, 5), input)
		s.Require().NoError(err)
		s.False(quote.Allowed)
		s.Equal(errors.ReasonInsufficientMana, quote.Reason)

		castErr := engine.CastError(quote)
		s.True(errors.IsResourceExhausted(castErr))
		s.Equal(errors.ReasonInsufficientMana, errors.Reason(castErr))
	})

	s.Run("above spend limit", func() {
		quote, err := s.engine.QuoteCast(s.newCaster(10, 4), input)
		s.Require().NoError(err)
		s.False(quote.Allowed)
		s.Equal(errors.ReasonSpendLimitExceeded, quote.Reason)

		castErr := engine.CastError(quote)
		s.True(errors.IsFailedPrecondition(castErr))
		s.Equal(errors.ReasonSpendLimitExceeded, errors.Reason(castErr))
	})
}

func (s *EngineTestSuite) TestQuoteCastZeroCostAlwaysAllowed() {
	actor := newCharacter()
	actor.Mana = vagabond.Mana{}
	s.Require().NoError(s.engine.DeriveActor(actor))

	quote, err := s.engine.QuoteCast(actor, &engine.QuoteCastInput{SpellID: "spell_light"})

	s.Require().NoError(err)
	s.Equal(int32(0), quote.ManaCost)
	s.True(quote.Allowed)
	s.Equal("touch", quote.Delivery)
	s.Equal("focus", quote.Duration)
}

func (s *EngineTestSuite) TestQuoteCastNoManaPool() {
	actor := newCharacter()
	actor.Mana = vagabond.Mana{}
	s.Require().NoError(s.engine.DeriveActor(actor))

	quote, err := s.engine.QuoteCast(actor, &engine.QuoteCastInput{SpellID: "spell_bolt"})

	s.Require().NoError(err)
	s.Equal(int32(1), quote.ManaCost)
	s.False(quote.Allowed)
	s.Equal(errors.ReasonNoManaPool, quote.Reason)
	s.True(errors.IsFailedPrecondition(engine.CastError(quote)))
}

func (s *EngineTestSuite) TestQuoteCastOverrides() {
	actor := s.newCaster(10, 8)

	quote, err := s.engine.QuoteCast(actor, &engine.QuoteCastInput{
		SpellID:  "spell_bolt",
		Delivery: "sphere",
		Duration: "continual",
	})

	s.Require().NoError(err)
	s.Equal("sphere", quote.Delivery)
	s.Equal("continual", quote.Duration)
	s.Equal(int32(2), quote.ManaCost)
	s.Equal(int32(0), quote.DamageDice)
}

func (s *EngineTestSuite) TestQuoteCastZeroDamageDiceAddsNoCost() {
	quote, err := s.engine.QuoteCast(s.newCaster(10, 8), &engine.QuoteCastInput{
		SpellID:    "spell_bolt",
		DealDamage: true,
	})

	s.Require().NoError(err)
	s.True(quote.DealDamage)
	s.Equal(int32(0), quote.DamageDice)
	s.Equal(int32(1), quote.ManaCost)
}

func (s *EngineTestSuite) TestQuoteCastInvalid() {
	actor := s.newCaster(10, 8)

	testCases := []struct {
		name    string
		input   *engine.QuoteCastInput
		check   func(error) bool
		message string
	}{
		{
			name:    "missing spell ID",
			input:   &engine.QuoteCastInput{},
			check:   errors.IsInvalidArgument,
			message: "spell ID is required",
		},
		{
			name:    "unknown spell",
			input:   &engine.QuoteCastInput{SpellID: "spell_missing"},
			check:   errors.IsNotFound,
			message: "not found",
		},
		{
			name:    "damage on a non-damaging spell",
			input:   &engine.QuoteCastInput{SpellID: "spell_light", DealDamage: true, DamageDice: 1},
			check:   errors.IsInvalidArgument,
			message: "does not deal damage",
		},
		{
			name:    "negative damage dice",
			input:   &engine.QuoteCastInput{SpellID: "spell_bolt", DealDamage: true, DamageDice: -1},
			check:   errors.IsInvalidArgument,
			message: "must not be negative",
		},
		{
			name:    "unknown delivery",
			input:   &engine.QuoteCastInput{SpellID: "spell_bolt", Delivery: "beam"},
			check:   errors.IsInvalidArgument,
			message: "unknown delivery",
		},
		{
			name:    "unknown duration",
			input:   &engine.QuoteCastInput{SpellID: "spell_bolt", Duration: "forever"},
			check:   errors.IsInvalidArgument,
			message: "unknown duration",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			quote, err := s.engine.QuoteCast(actor, tc.input)
			s.Error(err)
			s.Nil(quote)
			s.True(tc.check(err))
			s.Contains(err.Error(), tc.message)
		})
	}
}

func TestProperty_CastGates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := newPropertyEngine(t)
		actor := &vagabond.Actor{
			ID:    "actor_1",
			Type:  vagabond.ActorTypeCharacter,
			Level: rapid.Int32Range(1, 10).Draw(t, "level"),
			Stats: drawStats(t),
			Spells: []*vagabond.Spell{
				{ID: "s", Name: "S", Delivery: "cube", DamageBase: "d6"},
			},
		}
		maxMana := rapid.Int32Range(0, 12).Draw(t, "mana_max")
		actor.Mana = vagabond.Mana{Max: maxMana, Value: rapid.Int32Range(0, maxMana).Draw(t, "mana_value")}
		if err := e.DeriveActor(actor); err != nil {
			t.Fatalf("derive: %v", err)
		}

		dealDamage := rapid.Bool().Draw(t, "deal_damage")
		dice := rapid.Int32Range(0, 6).Draw(t, "dice")
		quote, err := e.QuoteCast(actor, &engine.QuoteCastInput{SpellID: "s", DealDamage: dealDamage, DamageDice: dice})
		if err != nil {
			t.Fatalf("quote: %v", err)
		}

		wantCost := int32(1)
		if dealDamage {
			wantCost += dice * 2
		}
		if quote.ManaCost != wantCost {
			t.Fatalf("mana cost = %d, want %d", quote.ManaCost, wantCost)
		}

		fits := maxMana > 0 && quote.ManaCost <= actor.Mana.Value && quote.ManaCost <= *actor.Mana.SpendLimit
		if quote.Allowed != fits {
			t.Fatalf("allowed = %v for cost %d, mana %+v", quote.Allowed, quote.ManaCost, actor.Mana)
		}
	})
}
