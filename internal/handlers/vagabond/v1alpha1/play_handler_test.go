package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/handlers/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/check"
	checkmock "github.com/KirkDiggler/vagabond-api/internal/orchestrators/check/mock"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/spell"
	spellmock "github.com/KirkDiggler/vagabond-api/internal/orchestrators/spell/mock"
)

type PlayHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockCheck *checkmock.MockService
	mockSpell *spellmock.MockService
	handler   *v1alpha1.PlayHandler
	ctx       context.Context
}

func TestPlayHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayHandlerTestSuite))
}

func (s *PlayHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCheck = checkmock.NewMockService(s.ctrl)
	s.mockSpell = spellmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewPlayHandler(&v1alpha1.PlayHandlerConfig{
		CheckService: s.mockCheck,
		SpellService: s.mockSpell,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *PlayHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlayHandlerTestSuite) TestRollCheck() {
	s.mockCheck.EXPECT().
		RollCheck(s.ctx, &check.RollCheckInput{
			ActorID: "actor_1",
			Kind:    vagabond.CheckKindSkill,
			Key:     "arcana",
			Favor:   true,
		}).
		Return(&check.RollCheckOutput{Result: &vagabond.CheckResult{
			Label:      "Arcana (Favored)",
			Formula:    "1d20 + 1d6",
			Roll:       12,
			Total:      15,
			Difficulty: 8,
			ResultType: vagabond.ResultPass,
		}}, nil)

	resp, err := s.handler.RollCheck(s.ctx, &vagabondv1alpha1.RollCheckRequest{
		ActorID: "actor_1",
		Kind:    vagabond.CheckKindSkill,
		Key:     "arcana",
		Favor:   true,
	})
	s.Require().NoError(err)
	s.Equal(vagabond.ResultPass, resp.Result.ResultType)
}

func (s *PlayHandlerTestSuite) TestRollCheckValidation() {
	_, err := s.handler.RollCheck(s.ctx, &vagabondv1alpha1.RollCheckRequest{ActorID: "actor_1"})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(status.Convert(err).Message(), "kind")
	s.Contains(status.Convert(err).Message(), "key")
}

func (s *PlayHandlerTestSuite) TestRollCheckUnknownKey() {
	s.mockCheck.EXPECT().
		RollCheck(s.ctx, gomock.Any()).
		Return(nil, errors.UnknownKeyf("unknown skill %q", "juggling"))

	_, err := s.handler.RollCheck(s.ctx, &vagabondv1alpha1.RollCheckRequest{
		ActorID: "actor_1",
		Kind:    vagabond.CheckKindSkill,
		Key:     "juggling",
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Equal(errors.ReasonUnknownKey, errors.Reason(errors.FromGRPCError(err)))
}

func (s *PlayHandlerTestSuite) TestRollDamage() {
	s.mockCheck.EXPECT().
		RollDamage(s.ctx, &check.RollDamageInput{ActorID: "actor_1", WeaponID: "weapon_axe"}).
		Return(&check.RollDamageOutput{Damage: &vagabond.DamageResult{Label: "Axe - Damage", Total: 9}}, nil)

	resp, err := s.handler.RollDamage(s.ctx, &vagabondv1alpha1.RollDamageRequest{ActorID: "actor_1", WeaponID: "weapon_axe"})
	s.Require().NoError(err)
	s.Equal(int32(9), resp.Damage.Total)
}

func (s *PlayHandlerTestSuite) TestQuoteCast() {
	s.mockSpell.EXPECT().
		QuoteCast(s.ctx, &spell.CastInput{
			ActorID:    "actor_1",
			SpellID:    "spell_burn",
			Delivery:   "cube",
			DealDamage: true,
			DamageDice: 2,
		}).
		Return(&spell.QuoteCastOutput{Quote: &vagabond.CastQuote{ManaCost: 5, Allowed: true}}, nil)

	resp, err := s.handler.QuoteCast(s.ctx, &vagabondv1alpha1.CastRequest{
		ActorID:    "actor_1",
		SpellID:    "spell_burn",
		Delivery:   "cube",
		DealDamage: true,
		DamageDice: 2,
	})
	s.Require().NoError(err)
	s.Equal(int32(5), resp.Quote.ManaCost)
}

func (s *PlayHandlerTestSuite) TestCastSpellSpendLimit() {
	s.mockSpell.EXPECT().
		CastSpell(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPreconditionf("cast costs 6, above the spend limit").
			WithReason(errors.ReasonSpendLimitExceeded).
			WithMeta("mana_cost", int32(6)))

	_, err := s.handler.CastSpell(s.ctx, &vagabondv1alpha1.CastRequest{ActorID: "actor_1", SpellID: "spell_burn"})
	s.Require().Error(err)
	s.Equal(codes.FailedPrecondition, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.Equal(errors.ReasonSpendLimitExceeded, errors.Reason(converted))
	s.Equal(float64(6), errors.GetMeta(converted)["mana_cost"])
}

func (s *PlayHandlerTestSuite) TestCastSpellNegativeDice() {
	_, err := s.handler.CastSpell(s.ctx, &vagabondv1alpha1.CastRequest{
		ActorID:    "actor_1",
		SpellID:    "spell_burn",
		DamageDice: -1,
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
