package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/handlers/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/actor"
	actormock "github.com/KirkDiggler/vagabond-api/internal/orchestrators/actor/mock"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
)

type ActorHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockActor *actormock.MockService
	handler   *v1alpha1.ActorHandler
	ctx       context.Context
}

func TestActorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ActorHandlerTestSuite))
}

func (s *ActorHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockActor = actormock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewActorHandler(&v1alpha1.ActorHandlerConfig{
		ActorService: s.mockActor,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *ActorHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ActorHandlerTestSuite) TestNewActorHandlerRequiresService() {
	_, err := v1alpha1.NewActorHandler(&v1alpha1.ActorHandlerConfig{})
	s.Error(err)
}

func (s *ActorHandlerTestSuite) TestCreateActor() {
	input := &vagabond.Actor{Name: "Wren", Type: vagabond.ActorTypeCharacter, Level: 1}
	stored := &vagabond.Actor{ID: "actor_1", Name: "Wren", Type: vagabond.ActorTypeCharacter, Level: 1}

	s.mockActor.EXPECT().
		CreateActor(s.ctx, &actor.CreateActorInput{Actor: input}).
		Return(&actor.CreateActorOutput{Actor: stored}, nil)

	resp, err := s.handler.CreateActor(s.ctx, &vagabondv1alpha1.CreateActorRequest{Actor: input})
	s.Require().NoError(err)
	s.Equal("actor_1", resp.Actor.ID)
}

func (s *ActorHandlerTestSuite) TestCreateActorMissingActor() {
	_, err := s.handler.CreateActor(s.ctx, &vagabondv1alpha1.CreateActorRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ActorHandlerTestSuite) TestGetActorNotFound() {
	s.mockActor.EXPECT().
		GetActor(s.ctx, &actor.GetActorInput{ActorID: "actor_9"}).
		Return(nil, errors.NotFound("actor not found"))

	_, err := s.handler.GetActor(s.ctx, &vagabondv1alpha1.GetActorRequest{ActorID: "actor_9"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *ActorHandlerTestSuite) TestGetActorRequiresID() {
	_, err := s.handler.GetActor(s.ctx, &vagabondv1alpha1.GetActorRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ActorHandlerTestSuite) TestUpdateActorRequiresID() {
	_, err := s.handler.UpdateActor(s.ctx, &vagabondv1alpha1.UpdateActorRequest{Actor: &vagabond.Actor{Name: "Wren"}})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ActorHandlerTestSuite) TestDeleteActor() {
	s.mockActor.EXPECT().
		DeleteActor(s.ctx, &actor.DeleteActorInput{ActorID: "actor_1"}).
		Return(&actor.DeleteActorOutput{}, nil)

	_, err := s.handler.DeleteActor(s.ctx, &vagabondv1alpha1.DeleteActorRequest{ActorID: "actor_1"})
	s.NoError(err)
}

func (s *ActorHandlerTestSuite) TestListActors() {
	s.mockActor.EXPECT().
		ListActors(s.ctx, &actor.ListActorsInput{PlayerID: "player_1", Type: vagabond.ActorTypeCharacter}).
		Return(&actor.ListActorsOutput{Actors: []*vagabond.Actor{{ID: "actor_1"}, {ID: "actor_2"}}}, nil)

	resp, err := s.handler.ListActors(s.ctx, &vagabondv1alpha1.ListActorsRequest{
		PlayerID: "player_1",
		Type:     vagabond.ActorTypeCharacter,
	})
	s.Require().NoError(err)
	s.Len(resp.Actors, 2)
}

func (s *ActorHandlerTestSuite) TestRest() {
	s.mockActor.EXPECT().
		Rest(s.ctx, &actor.RestInput{ActorID: "actor_1", Long: true}).
		Return(&actor.RestOutput{
			Actor:   &vagabond.Actor{ID: "actor_1"},
			Outcome: &engine.RestOutcome{Long: true, HPRestored: 3, LuckRestored: 1},
		}, nil)

	resp, err := s.handler.Rest(s.ctx, &vagabondv1alpha1.RestRequest{ActorID: "actor_1", Long: true})
	s.Require().NoError(err)
	s.Equal(int32(3), resp.HPRestored)
	s.Equal(int32(1), resp.LuckRestored)
	s.Zero(resp.FatigueRemoved)
}

func (s *ActorHandlerTestSuite) TestBreather() {
	s.mockActor.EXPECT().
		Breather(s.ctx, &actor.BreatherInput{ActorID: "actor_1"}).
		Return(&actor.BreatherOutput{Actor: &vagabond.Actor{ID: "actor_1"}, HPRegained: 4}, nil)

	resp, err := s.handler.Breather(s.ctx, &vagabondv1alpha1.BreatherRequest{ActorID: "actor_1"})
	s.Require().NoError(err)
	s.Equal(int32(4), resp.HPRegained)
}

func (s *ActorHandlerTestSuite) TestSpendLuckInsufficient() {
	s.mockActor.EXPECT().
		SpendLuck(s.ctx, &actor.SpendLuckInput{ActorID: "actor_1", Amount: 2}).
		Return(nil, errors.ResourceExhaustedf("not enough luck").WithReason(errors.ReasonInsufficientLuck))

	_, err := s.handler.SpendLuck(s.ctx, &vagabondv1alpha1.SpendLuckRequest{ActorID: "actor_1", Amount: 2})
	s.Require().Error(err)
	s.Equal(codes.ResourceExhausted, status.Code(err))
	s.Equal(errors.ReasonInsufficientLuck, errors.Reason(errors.FromGRPCError(err)))
}

func (s *ActorHandlerTestSuite) TestSpendLuckNegative() {
	_, err := s.handler.SpendLuck(s.ctx, &vagabondv1alpha1.SpendLuckRequest{ActorID: "actor_1", Amount: -1})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ActorHandlerTestSuite) TestCheckPerkPrerequisites() {
	s.mockActor.EXPECT().
		CheckPerkPrerequisites(s.ctx, &actor.CheckPerkPrerequisitesInput{ActorID: "actor_1", PerkID: "perk_1"}).
		Return(&actor.CheckPerkPrerequisitesOutput{Met: false, Unmet: []string{"Arcana not trained"}}, nil)

	resp, err := s.handler.CheckPerkPrerequisites(s.ctx, &vagabondv1alpha1.CheckPerkPrerequisitesRequest{
		ActorID: "actor_1",
		PerkID:  "perk_1",
	})
	s.Require().NoError(err)
	s.False(resp.Met)
	s.Equal([]string{"Arcana not trained"}, resp.Unmet)
}

func (s *ActorHandlerTestSuite) TestCheckPerkPrerequisitesNeedsPerk() {
	_, err := s.handler.CheckPerkPrerequisites(s.ctx, &vagabondv1alpha1.CheckPerkPrerequisitesRequest{ActorID: "actor_1"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ActorHandlerTestSuite) TestListActivity() {
	created := time.Unix(1700000000, 0).UTC()
	s.mockActor.EXPECT().
		ListActivity(s.ctx, &actor.ListActivityInput{ActorID: "actor_1", Limit: 5}).
		Return(&actor.ListActivityOutput{Entries: []*activityrepo.Entry{
			{ID: "act_1", ActorID: "actor_1", Kind: activityrepo.KindCheck, Label: "Arcana", Outcome: "crit", CreatedAt: created},
		}}, nil)

	resp, err := s.handler.ListActivity(s.ctx, &vagabondv1alpha1.ListActivityRequest{ActorID: "actor_1", Limit: 5})
	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.Equal("check", resp.Entries[0].Kind)
	s.Equal(int64(1700000000), resp.Entries[0].CreatedAt)
}
