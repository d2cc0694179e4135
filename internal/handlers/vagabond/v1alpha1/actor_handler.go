// Package v1alpha1 handles the Vagabond gRPC service interfaces
package v1alpha1

import (
	"context"

	"go.uber.org/zap"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
)

// ActorHandlerConfig holds dependencies for the actor handler
type ActorHandlerConfig struct {
	ActorService actor.Service
	Logger       *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *ActorHandlerConfig) Validate() error {
	if c.ActorService == nil {
		return errors.InvalidArgument("actor service is required")
	}
	return nil
}

// ActorHandler implements the actor gRPC service
type ActorHandler struct {
	vagabondv1alpha1.UnimplementedActorServiceServer
	actorService actor.Service
	logger       *zap.Logger
}

var _ vagabondv1alpha1.ActorServiceServer = (*ActorHandler)(nil)

// NewActorHandler creates a new actor handler with the given configuration
func NewActorHandler(cfg *ActorHandlerConfig) (*ActorHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ActorHandler{
		actorService: cfg.ActorService,
		logger:       logging.OrNop(cfg.Logger),
	}, nil
}

// CreateActor stores a new character or NPC
func (h *ActorHandler) CreateActor(
	ctx context.Context,
	req *vagabondv1alpha1.CreateActorRequest,
) (*vagabondv1alpha1.CreateActorResponse, error) {
	if req.Actor == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor is required"))
	}

	out, err := h.actorService.CreateActor(ctx, &actor.CreateActorInput{Actor: req.Actor})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.CreateActorResponse{Actor: out.Actor}, nil
}

// GetActor returns an actor with its derived fields
func (h *ActorHandler) GetActor(
	ctx context.Context,
	req *vagabondv1alpha1.GetActorRequest,
) (*vagabondv1alpha1.GetActorResponse, error) {
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	out, err := h.actorService.GetActor(ctx, &actor.GetActorInput{ActorID: req.ActorID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.GetActorResponse{Actor: out.Actor}, nil
}

// UpdateActor replaces an actor document
func (h *ActorHandler) UpdateActor(
	ctx context.Context,
	req *vagabondv1alpha1.UpdateActorRequest,
) (*vagabondv1alpha1.UpdateActorResponse, error) {
	if req.Actor == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor is required"))
	}
	if req.Actor.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor.id is required"))
	}

	out, err := h.actorService.UpdateActor(ctx, &actor.UpdateActorInput{Actor: req.Actor})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.UpdateActorResponse{Actor: out.Actor}, nil
}

// DeleteActor removes an actor
func (h *ActorHandler) DeleteActor(
	ctx context.Context,
	req *vagabondv1alpha1.DeleteActorRequest,
) (*vagabondv1alpha1.DeleteActorResponse, error) {
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	if _, err := h.actorService.DeleteActor(ctx, &actor.DeleteActorInput{ActorID: req.ActorID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.DeleteActorResponse{}, nil
}

// ListActors lists actors, optionally for one player
func (h *ActorHandler) ListActors(
	ctx context.Context,
	req *vagabondv1alpha1.ListActorsRequest,
) (*vagabondv1alpha1.ListActorsResponse, error) {
	out, err := h.actorService.ListActors(ctx, &actor.ListActorsInput{
		PlayerID: req.PlayerID,
		Type:     req.Type,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.ListActorsResponse{Actors: out.Actors}, nil
}

// Rest performs a short or long rest
func (h *ActorHandler) Rest(
	ctx context.Context,
	req *vagabondv1alpha1.RestRequest,
) (*vagabondv1alpha1.RestResponse, error) {
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	out, err := h.actorService.Rest(ctx, &actor.RestInput{ActorID: req.ActorID, Long: req.Long})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.RestResponse{
		Actor:          out.Actor,
		HPRestored:     out.Outcome.HPRestored,
		FatigueRemoved: out.Outcome.FatigueRemoved,
		LuckRestored:   out.Outcome.LuckRestored,
		ManaRestored:   out.Outcome.ManaRestored,
	}, nil
}

// Breather heals the actor by its might
func (h *ActorHandler) Breather(
	ctx context.Context,
	req *vagabondv1alpha1.BreatherRequest,
) (*vagabondv1alpha1.BreatherResponse, error) {
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	out, err := h.actorService.Breather(ctx, &actor.BreatherInput{ActorID: req.ActorID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.BreatherResponse{Actor: out.Actor, HPRegained: out.HPRegained}, nil
}

// SpendLuck deducts luck points
func (h *ActorHandler) SpendLuck(
	ctx context.Context,
	req *vagabondv1alpha1.SpendLuckRequest,
) (*vagabondv1alpha1.SpendLuckResponse, error) {
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}
	if req.Amount < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("amount must not be negative"))
	}

	out, err := h.actorService.SpendLuck(ctx, &actor.SpendLuckInput{ActorID: req.ActorID, Amount: req.Amount})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.SpendLuckResponse{Actor: out.Actor}, nil
}

// CheckPerkPrerequisites reports whether the actor qualifies for a perk
func (h *ActorHandler) CheckPerkPrerequisites(
	ctx context.Context,
	req *vagabondv1alpha1.CheckPerkPrerequisitesRequest,
) (*vagabondv1alpha1.CheckPerkPrerequisitesResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actor_id", req.ActorID, vb)
	if req.PerkID == "" && req.Perk == nil {
		vb.Field("perk_id", "perk_id or perk is required")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.actorService.CheckPerkPrerequisites(ctx, &actor.CheckPerkPrerequisitesInput{
		ActorID: req.ActorID,
		PerkID:  req.PerkID,
		Perk:    req.Perk,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.CheckPerkPrerequisitesResponse{Met: out.Met, Unmet: out.Unmet}, nil
}

// ListActivity reads the activity log, newest first
func (h *ActorHandler) ListActivity(
	ctx context.Context,
	req *vagabondv1alpha1.ListActivityRequest,
) (*vagabondv1alpha1.ListActivityResponse, error) {
	if req.Limit < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("limit must not be negative"))
	}

	out, err := h.actorService.ListActivity(ctx, &actor.ListActivityInput{
		ActorID: req.ActorID,
		Limit:   req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]*vagabondv1alpha1.ActivityEntry, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, convertActivityEntry(e))
	}

	return &vagabondv1alpha1.ListActivityResponse{Entries: entries}, nil
}

func convertActivityEntry(e *activityrepo.Entry) *vagabondv1alpha1.ActivityEntry {
	return &vagabondv1alpha1.ActivityEntry{
		ID:         e.ID,
		ActorID:    e.ActorID,
		ActorName:  e.ActorName,
		Kind:       string(e.Kind),
		Label:      e.Label,
		Formula:    e.Formula,
		Outcome:    e.Outcome,
		Total:      e.Total,
		Difficulty: e.Difficulty,
		Dice:       e.Dice,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt.Unix(),
	}
}
