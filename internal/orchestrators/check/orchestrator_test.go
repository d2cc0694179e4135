package check_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vagabond-api/internal/activity"
	activitymock "github.com/KirkDiggler/vagabond-api/internal/activity/mock"
	"github.com/KirkDiggler/vagabond-api/internal/dice"
	dicemock "github.com/KirkDiggler/vagabond-api/internal/dice/mock"
	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/check"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
	actorrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/actor"
	actorrepomock "github.com/KirkDiggler/vagabond-api/internal/repositories/actor/mock"
	"github.com/KirkDiggler/vagabond-api/internal/rules"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockActorRepo *actorrepomock.MockRepository
	mockEvaluator *dicemock.MockEvaluator
	mockRecorder  *activitymock.MockRecorder
	orchestrator  check.Service
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockActorRepo = actorrepomock.NewMockRepository(s.ctrl)
	s.mockEvaluator = dicemock.NewMockEvaluator(s.ctrl)
	s.mockRecorder = activitymock.NewMockRecorder(s.ctrl)
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{Rules: rules.MustDefault()})
	s.Require().NoError(err)

	s.orchestrator, err = check.NewOrchestrator(&check.Config{
		ActorRepo: s.mockActorRepo,
		Engine:    eng,
		Evaluator: s.mockEvaluator,
		Recorder:  s.mockRecorder,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func fighter() *vagabond.Actor {
	return &vagabond.Actor{
		ID:    "actor_1",
		Type:  vagabond.ActorTypeCharacter,
		Name:  "Brann",
		Level: 2,
		Stats: vagabond.Stats{
			Might:     vagabond.Stat{Value: 5},
			Dexterity: vagabond.Stat{Value: 4},
			Awareness: vagabond.Stat{Value: 3},
			Reason:    vagabond.Stat{Value: 2},
			Presence:  vagabond.Stat{Value: 3},
			Luck:      vagabond.Stat{Value: 2},
		},
		Skills: map[string]*vagabond.Skill{
			"melee": {Trained: true},
		},
		Weapons: []*vagabond.Weapon{
			{ID: "weapon_axe", Name: "Axe", Damage: vagabond.WeaponDamage{Die: "1d8"}},
		},
	}
}

func (s *OrchestratorTestSuite) expectActor() {
	s.mockActorRepo.EXPECT().
		Get(s.ctx, actorrepo.GetInput{ID: "actor_1"}).
		Return(&actorrepo.GetOutput{Actor: fighter()}, nil)
}

func rolled(expression string, terms ...dice.Term) *dice.Result {
	result := &dice.Result{Expression: expression, Terms: terms}
	for _, t := range terms {
		result.Total += t.Value
	}
	return result
}

func d20Term(face int32) dice.Term {
	return dice.Term{Sign: 1, Count: 1, Size: 20, Faces: []int32{face}, Value: face}
}

func (s *OrchestratorTestSuite) TestRollTrainedSkillPasses() {
	s.expectActor()
	s.mockEvaluator.EXPECT().
		Evaluate(s.ctx, "1d20").
		Return(rolled("1d20", d20Term(11)), nil)
	s.mockRecorder.EXPECT().
		Record(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *activity.RecordInput) (*activityrepo.Entry, error) {
			s.Equal(activityrepo.KindCheck, input.Kind)
			s.Equal("Melee", input.Label)
			s.Equal("pass", input.Outcome)
			s.Equal(int32(10), input.Difficulty)
			return &activityrepo.Entry{ID: "act_1"}, nil
		})

	out, err := s.orchestrator.RollCheck(s.ctx, &check.RollCheckInput{
		ActorID: "actor_1",
		Kind:    vagabond.CheckKindSkill,
		Key:     "melee",
	})
	s.Require().NoError(err)
	s.Equal(vagabond.ResultPass, out.Result.ResultType)
	s.Equal(int32(11), out.Result.Roll)
	s.Equal(int32(10), out.Result.Difficulty)
}

func (s *OrchestratorTestSuite) TestHinderedNaturalTwentyCrits() {
	s.expectActor()
	s.mockEvaluator.EXPECT().
		Evaluate(s.ctx, "1d20 - 1d6").
		Return(rolled("1d20 - 1d6",
			d20Term(20),
			dice.Term{Sign: -1, Count: 1, Size: 6, Faces: []int32{6}, Value: -6},
		), nil)
	s.mockRecorder.EXPECT().Record(s.ctx, gomock.Any()).Return(&activityrepo.Entry{}, nil)

	out, err := s.orchestrator.RollCheck(s.ctx, &check.RollCheckInput{
		ActorID: "actor_1",
		Kind:    vagabond.CheckKindAttack,
		Key:     "melee",
		Hinder:  true,
	})
	s.Require().NoError(err)
	s.True(out.Result.IsCrit)
	s.Equal(int32(14), out.Result.Total)
	s.Equal("Melee Attack (Hindered)", out.Result.Label)
	s.Equal([]int32{20, 6}, out.Result.Dice)
}

func (s *OrchestratorTestSuite) TestSaveFails() {
	s.expectActor()
	s.mockEvaluator.EXPECT().
		Evaluate(s.ctx, "1d20").
		Return(rolled("1d20", d20Term(3)), nil)
	s.mockRecorder.EXPECT().Record(s.ctx, gomock.Any()).Return(&activityrepo.Entry{}, nil)

	out, err := s.orchestrator.RollCheck(s.ctx, &check.RollCheckInput{
		ActorID: "actor_1",
		Kind:    vagabond.CheckKindSave,
		Key:     vagabond.SaveReflex,
	})
	s.Require().NoError(err)
	s.Equal(vagabond.ResultFail, out.Result.ResultType)
}

func (s *OrchestratorTestSuite) TestUnknownKeyRollsNothing() {
	s.expectActor()

	_, err := s.orchestrator.RollCheck(s.ctx, &check.RollCheckInput{
		ActorID: "actor_1",
		Kind:    vagabond.CheckKindSkill,
		Key:     "juggling",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(errors.ReasonUnknownKey, errors.Reason(err))
}

func (s *OrchestratorTestSuite) TestUnknownActor() {
	s.mockActorRepo.EXPECT().
		Get(s.ctx, actorrepo.GetInput{ID: "actor_9"}).
		Return(nil, errors.NotFound("actor not found"))

	_, err := s.orchestrator.RollCheck(s.ctx, &check.RollCheckInput{
		ActorID: "actor_9",
		Kind:    vagabond.CheckKindSkill,
		Key:     "melee",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRollDamage() {
	s.expectActor()
	s.mockEvaluator.EXPECT().
		Evaluate(s.ctx, "1d8 + 5").
		Return(rolled("1d8 + 5",
			dice.Term{Sign: 1, Count: 1, Size: 8, Faces: []int32{6}, Value: 6},
			dice.Term{Sign: 1, Value: 5},
		), nil)
	s.mockRecorder.EXPECT().
		Record(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *activity.RecordInput) (*activityrepo.Entry, error) {
			s.Equal(activityrepo.KindDamage, input.Kind)
			s.Equal("weapon_axe", input.Details["weapon_id"])
			return &activityrepo.Entry{}, nil
		})

	out, err := s.orchestrator.RollDamage(s.ctx, &check.RollDamageInput{ActorID: "actor_1", WeaponID: "weapon_axe"})
	s.Require().NoError(err)
	s.Equal(int32(11), out.Damage.Total)
	s.Equal("Axe - Damage", out.Damage.Label)
	s.Equal([]int32{6}, out.Damage.Dice)
}

func (s *OrchestratorTestSuite) TestRollDamageUnknownWeapon() {
	s.expectActor()

	_, err := s.orchestrator.RollDamage(s.ctx, &check.RollDamageInput{ActorID: "actor_1", WeaponID: "weapon_none"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEvaluatorFailure() {
	s.expectActor()
	s.mockEvaluator.EXPECT().
		Evaluate(s.ctx, "1d20 + 1d6").
		Return(nil, errors.Internal("roller broke"))

	_, err := s.orchestrator.RollCheck(s.ctx, &check.RollCheckInput{
		ActorID: "actor_1",
		Kind:    vagabond.CheckKindSkill,
		Key:     "melee",
		Favor:   true,
	})
	s.True(errors.IsInternal(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
