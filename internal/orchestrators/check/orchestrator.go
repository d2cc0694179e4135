// Package check implements skill, save and attack checks plus weapon damage rolls
package check

//go:generate mockgen -destination=mock/mock_service.go -package=checkmock github.com/KirkDiggler/vagabond-api/internal/orchestrators/check Service

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/vagabond-api/internal/activity"
	"github.com/KirkDiggler/vagabond-api/internal/dice"
	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
	actorrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/actor"
)

const d20 = 20

// Service defines the interface for rolling checks and damage
type Service interface {
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)
}

// Config holds the dependencies for the check orchestrator
type Config struct {
	ActorRepo actorrepo.Repository
	Engine    engine.Engine
	Evaluator dice.Evaluator
	Recorder  activity.Recorder
	Logger    *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Evaluator == nil {
		vb.RequiredField("Evaluator")
	}
	if c.Recorder == nil {
		vb.RequiredField("Recorder")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo actorrepo.Repository
	engine    engine.Engine
	evaluator dice.Evaluator
	recorder  activity.Recorder
	logger    *zap.Logger
}

// NewOrchestrator creates a new check orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		actorRepo: cfg.ActorRepo,
		engine:    cfg.Engine,
		evaluator: cfg.Evaluator,
		recorder:  cfg.Recorder,
		logger:    logging.OrNop(cfg.Logger),
	}, nil
}

// RollCheck resolves a skill, save or attack check against the actor's
// derived difficulty
func (o *orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	plan, err := o.engine.PlanCheck(actor, &engine.PlanCheckInput{
		Kind:   input.Kind,
		Key:    input.Key,
		Favor:  input.Favor,
		Hinder: input.Hinder,
	})
	if err != nil {
		return nil, err
	}

	roll, err := o.evaluator.Evaluate(ctx, plan.Formula)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", plan.Label)
	}

	face, ok := roll.FirstFace(d20)
	if !ok {
		return nil, errors.Internalf("roll of %q produced no d20", plan.Formula)
	}

	result := engine.ResolveCheck(plan, face, roll.Total, roll.Faces())

	if _, err := o.recorder.Record(ctx, &activity.RecordInput{
		Actor:      actor,
		Kind:       activityrepo.KindCheck,
		Label:      result.Label,
		Formula:    result.Formula,
		Outcome:    string(result.ResultType),
		Total:      result.Total,
		Difficulty: result.Difficulty,
		Dice:       result.Dice,
		Details: map[string]string{
			"check_kind": string(result.Kind),
			"check_key":  result.Key,
		},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to record check")
	}

	o.logger.Info("check rolled",
		zap.String("actor_id", actor.ID),
		zap.String("label", result.Label),
		zap.Int32("total", result.Total),
		zap.Int32("difficulty", result.Difficulty),
		zap.String("result", string(result.ResultType)))

	return &RollCheckOutput{Result: result}, nil
}

// RollDamage rolls a carried weapon's damage
func (o *orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	plan, err := o.engine.PlanDamage(actor, input.WeaponID)
	if err != nil {
		return nil, err
	}

	roll, err := o.evaluator.Evaluate(ctx, plan.Formula)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", plan.Label)
	}

	damage := &vagabond.DamageResult{
		Label:   plan.Label,
		Formula: plan.Formula,
		Dice:    roll.Faces(),
		Total:   roll.Total,
	}

	if _, err := o.recorder.Record(ctx, &activity.RecordInput{
		Actor:   actor,
		Kind:    activityrepo.KindDamage,
		Label:   damage.Label,
		Formula: damage.Formula,
		Total:   damage.Total,
		Dice:    damage.Dice,
		Details: map[string]string{"weapon_id": plan.WeaponID},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to record damage")
	}

	return &RollDamageOutput{Damage: damage}, nil
}

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
