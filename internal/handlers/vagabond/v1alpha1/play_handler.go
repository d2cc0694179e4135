package v1alpha1

import (
	"context"

	"go.uber.org/zap"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/check"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/spell"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
)

// PlayHandlerConfig holds dependencies for the play handler
type PlayHandlerConfig struct {
	CheckService check.Service
	SpellService spell.Service
	Logger       *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *PlayHandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CheckService == nil {
		vb.RequiredField("CheckService")
	}
	if c.SpellService == nil {
		vb.RequiredField("SpellService")
	}

	return vb.Build()
}

// PlayHandler implements the play gRPC service
type PlayHandler struct {
	vagabondv1alpha1.UnimplementedPlayServiceServer
	checkService check.Service
	spellService spell.Service
	logger       *zap.Logger
}

var _ vagabondv1alpha1.PlayServiceServer = (*PlayHandler)(nil)

// NewPlayHandler creates a new play handler with the given configuration
func NewPlayHandler(cfg *PlayHandlerConfig) (*PlayHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PlayHandler{
		checkService: cfg.CheckService,
		spellService: cfg.SpellService,
		logger:       logging.OrNop(cfg.Logger),
	}, nil
}

// RollCheck rolls a skill, save or attack check
func (h *PlayHandler) RollCheck(
	ctx context.Context,
	req *vagabondv1alpha1.RollCheckRequest,
) (*vagabondv1alpha1.RollCheckResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actor_id", req.ActorID, vb)
	errors.ValidateRequired("kind", string(req.Kind), vb)
	errors.ValidateRequired("key", req.Key, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.checkService.RollCheck(ctx, &check.RollCheckInput{
		ActorID: req.ActorID,
		Kind:    req.Kind,
		Key:     req.Key,
		Favor:   req.Favor,
		Hinder:  req.Hinder,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.RollCheckResponse{Result: out.Result}, nil
}

// RollDamage rolls a carried weapon's damage
func (h *PlayHandler) RollDamage(
	ctx context.Context,
	req *vagabondv1alpha1.RollDamageRequest,
) (*vagabondv1alpha1.RollDamageResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actor_id", req.ActorID, vb)
	errors.ValidateRequired("weapon_id", req.WeaponID, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.checkService.RollDamage(ctx, &check.RollDamageInput{
		ActorID:  req.ActorID,
		WeaponID: req.WeaponID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.RollDamageResponse{Damage: out.Damage}, nil
}

// QuoteCast previews the mana cost of a cast
func (h *PlayHandler) QuoteCast(
	ctx context.Context,
	req *vagabondv1alpha1.CastRequest,
) (*vagabondv1alpha1.QuoteCastResponse, error) {
	if err := validateCastRequest(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.spellService.QuoteCast(ctx, castInput(req))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.QuoteCastResponse{Quote: out.Quote}, nil
}

// CastSpell spends mana and rolls any damage
func (h *PlayHandler) CastSpell(
	ctx context.Context,
	req *vagabondv1alpha1.CastRequest,
) (*vagabondv1alpha1.CastSpellResponse, error) {
	if err := validateCastRequest(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.spellService.CastSpell(ctx, castInput(req))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &vagabondv1alpha1.CastSpellResponse{Result: out.Result, Actor: out.Actor}, nil
}

func validateCastRequest(req *vagabondv1alpha1.CastRequest) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actor_id", req.ActorID, vb)
	errors.ValidateRequired("spell_id", req.SpellID, vb)
	errors.ValidateMin("damage_dice", req.DamageDice, 0, vb)
	return vb.Build()
}

func castInput(req *vagabondv1alpha1.CastRequest) *spell.CastInput {
	return &spell.CastInput{
		ActorID:    req.ActorID,
		SpellID:    req.SpellID,
		Delivery:   req.Delivery,
		Duration:   req.Duration,
		DealDamage: req.DealDamage,
		DamageDice: req.DamageDice,
	}
}
