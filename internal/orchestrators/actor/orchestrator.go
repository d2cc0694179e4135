// Package actor implements the actor lifecycle and recovery orchestrator
package actor

//go:generate mockgen -destination=mock/mock_service.go -package=actormock github.com/KirkDiggler/vagabond-api/internal/orchestrators/actor Service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/KirkDiggler/vagabond-api/internal/activity"
	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/idgen"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
	actorrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/actor"
)

// Service defines the interface for actor operations
type Service interface {
	// Lifecycle
	CreateActor(ctx context.Context, input *CreateActorInput) (*CreateActorOutput, error)
	GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error)
	UpdateActor(ctx context.Context, input *UpdateActorInput) (*UpdateActorOutput, error)
	DeleteActor(ctx context.Context, input *DeleteActorInput) (*DeleteActorOutput, error)
	ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error)

	// Recovery and resources
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)
	Breather(ctx context.Context, input *BreatherInput) (*BreatherOutput, error)
	SpendLuck(ctx context.Context, input *SpendLuckInput) (*SpendLuckOutput, error)

	CheckPerkPrerequisites(ctx context.Context, input *CheckPerkPrerequisitesInput) (*CheckPerkPrerequisitesOutput, error)
	ListActivity(ctx context.Context, input *ListActivityInput) (*ListActivityOutput, error)
}

// Config holds the dependencies for the actor orchestrator
type Config struct {
	ActorRepo    actorrepo.Repository
	ActivityRepo activityrepo.Repository
	Engine       engine.Engine
	Recorder     activity.Recorder
	IDGenerator  idgen.Generator
	Logger       *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.ActivityRepo == nil {
		vb.RequiredField("ActivityRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Recorder == nil {
		vb.RequiredField("Recorder")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo    actorrepo.Repository
	activityRepo activityrepo.Repository
	engine       engine.Engine
	recorder     activity.Recorder
	idGen        idgen.Generator
	logger       *zap.Logger
}

// NewOrchestrator creates a new actor orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		actorRepo:    cfg.ActorRepo,
		activityRepo: cfg.ActivityRepo,
		engine:       cfg.Engine,
		recorder:     cfg.Recorder,
		idGen:        cfg.IDGenerator,
		logger:       logging.OrNop(cfg.Logger),
	}, nil
}

// CreateActor validates, seeds and stores a new actor
func (o *orchestrator) CreateActor(ctx context.Context, input *CreateActorInput) (*CreateActorOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}

	actor := input.Actor
	if actor.ID == "" {
		actor.ID = o.idGen.Generate()
	}

	o.engine.SeedSkills(actor)
	if err := o.engine.ValidateActor(actor); err != nil {
		return nil, err
	}
	if err := o.engine.DeriveActor(actor); err != nil {
		return nil, err
	}

	if actor.HP.Value == 0 {
		actor.HP.Value = actor.HP.Max
	}
	if actor.Luck.Value == 0 {
		actor.Luck.Value = actor.Luck.Max
	}

	out, err := o.actorRepo.Create(ctx, actorrepo.CreateInput{Actor: actor})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create actor %s", actor.ID)
	}

	if err := o.record(ctx, &activity.RecordInput{
		Actor: out.Actor,
		Kind:  activityrepo.KindCreate,
		Label: fmt.Sprintf("%s created", out.Actor.Name),
	}); err != nil {
		return nil, err
	}

	o.logger.Info("actor created",
		zap.String("actor_id", out.Actor.ID),
		zap.String("type", string(out.Actor.Type)),
		zap.String("player_id", out.Actor.PlayerID))

	return &CreateActorOutput{Actor: out.Actor}, nil
}

// GetActor loads an actor and recomputes its derived fields
func (o *orchestrator) GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	return &GetActorOutput{Actor: actor}, nil
}

// UpdateActor replaces an existing actor document
func (o *orchestrator) UpdateActor(ctx context.Context, input *UpdateActorInput) (*UpdateActorOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	actor := input.Actor
	if err := o.engine.ValidateActor(actor); err != nil {
		return nil, err
	}
	if err := o.engine.DeriveActor(actor); err != nil {
		return nil, err
	}

	out, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update actor %s", actor.ID)
	}

	if err := o.record(ctx, &activity.RecordInput{
		Actor: out.Actor,
		Kind:  activityrepo.KindUpdate,
		Label: fmt.Sprintf("%s updated", out.Actor.Name),
	}); err != nil {
		return nil, err
	}

	return &UpdateActorOutput{Actor: out.Actor}, nil
}

// DeleteActor removes an actor. Its activity log is kept.
func (o *orchestrator) DeleteActor(ctx context.Context, input *DeleteActorInput) (*DeleteActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	if _, err := o.actorRepo.Delete(ctx, actorrepo.DeleteInput{ID: actor.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor %s", actor.ID)
	}

	if err := o.record(ctx, &activity.RecordInput{
		Actor: actor,
		Kind:  activityrepo.KindDelete,
		Label: fmt.Sprintf("%s deleted", actor.Name),
	}); err != nil {
		return nil, err
	}

	o.logger.Info("actor deleted", zap.String("actor_id", actor.ID))
	return &DeleteActorOutput{}, nil
}

// ListActors returns derived actors, optionally narrowed by player and type
func (o *orchestrator) ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error) {
	if input == nil {
		input = &ListActorsInput{}
	}

	out, err := o.actorRepo.List(ctx, actorrepo.ListInput{
		PlayerID: input.PlayerID,
		Type:     input.Type,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actors")
	}

	for _, actor := range out.Actors {
		if err := o.engine.DeriveActor(actor); err != nil {
			return nil, errors.Wrapf(err, "failed to derive actor %s", actor.ID)
		}
	}

	return &ListActorsOutput{Actors: out.Actors}, nil
}

// CheckPerkPrerequisites tests a perk's stat and training requirements
func (o *orchestrator) CheckPerkPrerequisites(ctx context.Context, input *CheckPerkPrerequisitesInput) (*CheckPerkPrerequisitesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PerkID == "" && input.Perk == nil {
		return nil, errors.InvalidArgument("perk ID or perk is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	perk := input.Perk
	if perk == nil {
		perk = actor.FindPerk(input.PerkID)
		if perk == nil {
			return nil, errors.NotFoundf("perk %s not found on actor %s", input.PerkID, actor.ID)
		}
	}

	check := o.engine.CheckPerkPrerequisites(actor, perk)
	return &CheckPerkPrerequisitesOutput{Met: check.Met, Unmet: check.Unmet}, nil
}

// ListActivity reads the activity log, newest first
func (o *orchestrator) ListActivity(ctx context.Context, input *ListActivityInput) (*ListActivityOutput, error) {
	if input == nil {
		input = &ListActivityInput{}
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit must not be negative, got %d", input.Limit)
	}

	out, err := o.activityRepo.List(ctx, activityrepo.ListInput{
		ActorID: input.ActorID,
		Limit:   int64(input.Limit),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity")
	}

	return &ListActivityOutput{Entries: out.Entries}, nil
}

// loadActor fetches an actor and derives it
func (o *orchestrator) loadActor(ctx context.Context, actorID string) (*vagabond.Actor, error) {
	if actorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	out, err := o.actorRepo.Get(ctx, actorrepo.GetInput{ID: actorID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", actorID)
	}

	if err := o.engine.DeriveActor(out.Actor); err != nil {
		return nil, errors.Wrapf(err, "failed to derive actor %s", actorID)
	}

	return out.Actor, nil
}

func (o *orchestrator) save(ctx context.Context, actor *vagabond.Actor) (*vagabond.Actor, error) {
	out, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor})
	if err != nil {
		o.logger.Error("failed to save actor", zap.String("actor_id", actor.ID), zap.Error(err))
		return nil, errors.Wrapf(err, "failed to save actor %s", actor.ID)
	}
	return out.Actor, nil
}

func (o *orchestrator) record(ctx context.Context, input *activity.RecordInput) error {
	if _, err := o.recorder.Record(ctx, input); err != nil {
		o.logger.Error("failed to record activity",
			zap.String("actor_id", input.Actor.ID),
			zap.String("kind", string(input.Kind)),
			zap.Error(err))
		return errors.Wrap(err, "failed to record activity")
	}
	return nil
}

func itoa(n int32) string {
	return strconv.FormatInt(int64(n), 10)
}
