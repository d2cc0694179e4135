package actor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vagabond-api/internal/activity"
	activitymock "github.com/KirkDiggler/vagabond-api/internal/activity/mock"
	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/idgen"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
	activityrepomock "github.com/KirkDiggler/vagabond-api/internal/repositories/activity/mock"
	actorrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/actor"
	actorrepomock "github.com/KirkDiggler/vagabond-api/internal/repositories/actor/mock"
	"github.com/KirkDiggler/vagabond-api/internal/rules"
	"github.com/KirkDiggler/vagabond-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockActorRepo    *actorrepomock.MockRepository
	mockActivityRepo *activityrepomock.MockRepository
	mockRecorder     *activitymock.MockRecorder
	orchestrator     actor.Service
	ctx              context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockActorRepo = actorrepomock.NewMockRepository(s.ctrl)
	s.mockActivityRepo = activityrepomock.NewMockRepository(s.ctrl)
	s.mockRecorder = activitymock.NewMockRecorder(s.ctrl)
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{Rules: rules.MustDefault()})
	s.Require().NoError(err)

	s.orchestrator, err = actor.NewOrchestrator(&actor.Config{
		ActorRepo:    s.mockActorRepo,
		ActivityRepo: s.mockActivityRepo,
		Engine:       eng,
		Recorder:     s.mockRecorder,
		IDGenerator:  idgen.NewSequential("actor"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// storedCharacter returns a fresh level 3 character as the store holds it
func storedCharacter() *vagabond.Actor {
	return &vagabond.Actor{
		ID:       "actor_1",
		Type:     vagabond.ActorTypeCharacter,
		Name:     "Wren",
		PlayerID: "player_1",
		Level:    3,
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
		},
		HP:   vagabond.Pool{Value: 5},
		Luck: vagabond.Pool{Value: 1},
		Mana: vagabond.Mana{Value: 2, Max: 8},
		Perks: []*vagabond.Perk{
			{
				ID:   "perk_1",
				Name: "Spellsword",
				Prerequisites: vagabond.PerkPrerequisites{
					Stats:   map[vagabond.StatKey]int32{vagabond.StatReason: 4},
					Trained: []string{"arcana"},
				},
			},
		},
	}
}

func (s *OrchestratorTestSuite) expectGet(stored *vagabond.Actor) {
	s.mockActorRepo.EXPECT().
		Get(s.ctx, actorrepo.GetInput{ID: stored.ID}).
		Return(&actorrepo.GetOutput{Actor: stored}, nil)
}

func (s *OrchestratorTestSuite) expectUpdate() *vagabond.Actor {
	var saved vagabond.Actor
	s.mockActorRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input actorrepo.UpdateInput) (*actorrepo.UpdateOutput, error) {
			saved = *input.Actor
			return &actorrepo.UpdateOutput{Actor: input.Actor}, nil
		})
	return &saved
}

func (s *OrchestratorTestSuite) expectRecord(kind activityrepo.Kind) *activity.RecordInput {
	recorded := &activity.RecordInput{}
	s.mockRecorder.EXPECT().
		Record(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *activity.RecordInput) (*activityrepo.Entry, error) {
			s.Equal(kind, input.Kind)
			*recorded = *input
			return &activityrepo.Entry{ID: "act_1", Kind: input.Kind}, nil
		})
	return recorded
}

func (s *OrchestratorTestSuite) TestCreateActorSeedsAndFillsPools() {
	input := &vagabond.Actor{
		Type:  vagabond.ActorTypeCharacter,
		Name:  "Wren",
		Level: 2,
		Stats: vagabond.Stats{
			Might: vagabond.Stat{Value: 5},
			Luck:  vagabond.Stat{Value: 2},
		},
	}

	s.mockActorRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in actorrepo.CreateInput) (*actorrepo.CreateOutput, error) {
			return &actorrepo.CreateOutput{Actor: in.Actor}, nil
		})
	s.expectRecord(activityrepo.KindCreate)

	out, err := s.orchestrator.CreateActor(s.ctx, &actor.CreateActorInput{Actor: input})
	s.Require().NoError(err)
	s.Equal("actor_1", out.Actor.ID)
	s.Equal(int32(10), out.Actor.HP.Max)
	s.Equal(int32(10), out.Actor.HP.Value)
	s.Equal(int32(2), out.Actor.Luck.Value)
	s.Len(out.Actor.Skills, len(rules.MustDefault().Skills))
	for _, skill := range out.Actor.Skills {
		s.False(skill.Trained)
	}
}

func (s *OrchestratorTestSuite) TestCreateActorRejectsInvalid() {
	_, err := s.orchestrator.CreateActor(s.ctx, &actor.CreateActorInput{Actor: &vagabond.Actor{
		Type:  vagabond.ActorTypeCharacter,
		Level: 11,
	}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
	s.Contains(err.Error(), "level")
}

func (s *OrchestratorTestSuite) TestCreateActorStoreFailure() {
	s.mockActorRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.CreateActor(s.ctx, &actor.CreateActorInput{Actor: storedCharacter()})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestGetActorDerives() {
	s.expectGet(storedCharacter())

	out, err := s.orchestrator.GetActor(s.ctx, &actor.GetActorInput{ActorID: "actor_1"})
	s.Require().NoError(err)
	s.Equal(int32(12), out.Actor.HP.Max)
	s.Equal(int32(8), out.Actor.Skills["arcana"].Difficulty)
	s.Require().NotNil(out.Actor.Mana.SpendLimit)
	s.Equal(int32(8), *out.Actor.Mana.SpendLimit)
}

func (s *OrchestratorTestSuite) TestGetActorNotFound() {
	s.mockActorRepo.EXPECT().
		Get(s.ctx, actorrepo.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("actor not found"))

	_, err := s.orchestrator.GetActor(s.ctx, &actor.GetActorInput{ActorID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetActorRequiresID() {
	_, err := s.orchestrator.GetActor(s.ctx, &actor.GetActorInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateActor() {
	updated := storedCharacter()
	updated.Level = 4
	saved := s.expectUpdate()
	s.expectRecord(activityrepo.KindUpdate)

	out, err := s.orchestrator.UpdateActor(s.ctx, &actor.UpdateActorInput{Actor: updated})
	s.Require().NoError(err)
	s.Equal(int32(16), out.Actor.HP.Max)
	s.Equal(int32(4), saved.Level)
}

func (s *OrchestratorTestSuite) TestDeleteActor() {
	s.expectGet(storedCharacter())
	s.mockActorRepo.EXPECT().
		Delete(s.ctx, actorrepo.DeleteInput{ID: "actor_1"}).
		Return(&actorrepo.DeleteOutput{}, nil)
	s.expectRecord(activityrepo.KindDelete)

	_, err := s.orchestrator.DeleteActor(s.ctx, &actor.DeleteActorInput{ActorID: "actor_1"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestListActorsDerivesEach() {
	npc := testutils.CreateTestNPC("actor_2")
	s.mockActorRepo.EXPECT().
		List(s.ctx, actorrepo.ListInput{PlayerID: "player_1"}).
		Return(&actorrepo.ListOutput{Actors: []*vagabond.Actor{storedCharacter(), npc}}, nil)

	out, err := s.orchestrator.ListActors(s.ctx, &actor.ListActorsInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Actors, 2)
	s.Equal(int32(12), out.Actors[0].HP.Max)
	s.Equal(int32(13), out.Actors[1].HP.Max)
}

func (s *OrchestratorTestSuite) TestLongRest() {
	s.expectGet(storedCharacter())
	saved := s.expectUpdate()
	recorded := s.expectRecord(activityrepo.KindRest)

	out, err := s.orchestrator.Rest(s.ctx, &actor.RestInput{ActorID: "actor_1", Long: true})
	s.Require().NoError(err)
	s.Equal(int32(12), saved.HP.Value)
	s.Equal(int32(3), saved.Luck.Value)
	s.Equal(int32(8), saved.Mana.Value)
	s.Equal(int32(7), out.Outcome.HPRestored)
	s.Equal("restored 7 hp", recorded.Outcome)
}

func (s *OrchestratorTestSuite) TestLongRestPersistsLuckAboveMax() {
	stored := storedCharacter()
	stored.HP.Value = 12
	stored.Luck.Value = 7
	stored.Mana.Value = 8
	s.expectGet(stored)
	saved := s.expectUpdate()
	recorded := s.expectRecord(activityrepo.KindRest)

	out, err := s.orchestrator.Rest(s.ctx, &actor.RestInput{ActorID: "actor_1", Long: true})
	s.Require().NoError(err)
	s.True(out.Outcome.Clamped)
	s.Equal(int32(3), saved.Luck.Value)
	s.Equal("reset luck and mana to max", recorded.Outcome)
}

func (s *OrchestratorTestSuite) TestShortRestChangesNothing() {
	s.expectGet(storedCharacter())

	out, err := s.orchestrator.Rest(s.ctx, &actor.RestInput{ActorID: "actor_1"})
	s.Require().NoError(err)
	s.False(out.Outcome.Changed())
	s.Equal(int32(5), out.Actor.HP.Value)
}

func (s *OrchestratorTestSuite) TestRestRejectsNPC() {
	s.expectGet(testutils.CreateTestNPC("actor_2"))

	_, err := s.orchestrator.Rest(s.ctx, &actor.RestInput{ActorID: "actor_2", Long: true})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestBreather() {
	s.expectGet(storedCharacter())
	saved := s.expectUpdate()
	s.expectRecord(activityrepo.KindBreather)

	out, err := s.orchestrator.Breather(s.ctx, &actor.BreatherInput{ActorID: "actor_1"})
	s.Require().NoError(err)
	s.Equal(int32(4), out.HPRegained)
	s.Equal(int32(9), saved.HP.Value)
}

func (s *OrchestratorTestSuite) TestSpendLuck() {
	s.expectGet(storedCharacter())
	saved := s.expectUpdate()
	s.expectRecord(activityrepo.KindLuck)

	out, err := s.orchestrator.SpendLuck(s.ctx, &actor.SpendLuckInput{ActorID: "actor_1"})
	s.Require().NoError(err)
	s.Zero(out.Actor.Luck.Value)
	s.Zero(saved.Luck.Value)
}

func (s *OrchestratorTestSuite) TestSpendLuckInsufficient() {
	s.expectGet(storedCharacter())

	_, err := s.orchestrator.SpendLuck(s.ctx, &actor.SpendLuckInput{ActorID: "actor_1", Amount: 2})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Equal(errors.ReasonInsufficientLuck, errors.Reason(err))
}

func (s *OrchestratorTestSuite) TestCheckPerkPrerequisites() {
	s.expectGet(storedCharacter())

	out, err := s.orchestrator.CheckPerkPrerequisites(s.ctx, &actor.CheckPerkPrerequisitesInput{
		ActorID: "actor_1",
		PerkID:  "perk_1",
	})
	s.Require().NoError(err)
	s.True(out.Met)
	s.Empty(out.Unmet)
}

func (s *OrchestratorTestSuite) TestCheckInlinePerkUnmet() {
	s.expectGet(storedCharacter())

	out, err := s.orchestrator.CheckPerkPrerequisites(s.ctx, &actor.CheckPerkPrerequisitesInput{
		ActorID: "actor_1",
		Perk: &vagabond.Perk{
			Name: "Brute",
			Prerequisites: vagabond.PerkPrerequisites{
				Stats: map[vagabond.StatKey]int32{vagabond.StatMight: 6},
			},
		},
	})
	s.Require().NoError(err)
	s.False(out.Met)
	s.Len(out.Unmet, 1)
}

func (s *OrchestratorTestSuite) TestCheckPerkNotFound() {
	s.expectGet(storedCharacter())

	_, err := s.orchestrator.CheckPerkPrerequisites(s.ctx, &actor.CheckPerkPrerequisitesInput{
		ActorID: "actor_1",
		PerkID:  "perk_missing",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListActivity() {
	s.mockActivityRepo.EXPECT().
		List(s.ctx, activityrepo.ListInput{ActorID: "actor_1", Limit: 10}).
		Return(&activityrepo.ListOutput{Entries: []*activityrepo.Entry{{ID: "act_2"}, {ID: "act_1"}}}, nil)

	out, err := s.orchestrator.ListActivity(s.ctx, &actor.ListActivityInput{ActorID: "actor_1", Limit: 10})
	s.Require().NoError(err)
	s.Len(out.Entries, 2)
	s.Equal("act_2", out.Entries[0].ID)
}

func (s *OrchestratorTestSuite) TestRecordFailureIsReturned() {
	s.expectGet(storedCharacter())
	s.expectUpdate()
	s.mockRecorder.EXPECT().
		Record(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.Breather(s.ctx, &actor.BreatherInput{ActorID: "actor_1"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
