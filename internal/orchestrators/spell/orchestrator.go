// Package spell implements spell cost previews and casting
package spell

//go:generate mockgen -destination=mock/mock_service.go -package=spellmock github.com/KirkDiggler/vagabond-api/internal/orchestrators/spell Service

import (
	"context"
	"fmt"
	"strconv"

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

// Damage dice on a spell are always d6. A damaging cast rolls at least one,
// and only the dice the caster paid for are priced.
const damageDieSize = 6

// Service defines the interface for spell operations
type Service interface {
	// QuoteCast prices a cast without changing anything
	QuoteCast(ctx context.Context, input *CastInput) (*QuoteCastOutput, error)

	// CastSpell pays the mana, rolls damage and records the cast
	CastSpell(ctx context.Context, input *CastInput) (*CastSpellOutput, error)
}

// Config holds the dependencies for the spell orchestrator
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

// NewOrchestrator creates a new spell orchestrator with the provided dependencies
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

func (o *orchestrator) QuoteCast(ctx context.Context, input *CastInput) (*QuoteCastOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	quote, err := o.engine.QuoteCast(actor, quoteInput(input))
	if err != nil {
		return nil, err
	}

	return &QuoteCastOutput{Quote: quote}, nil
}

// CastSpell runs both spending gates and fails without side effects when
// either refuses. Damage is rolled before the mana is persisted.
func (o *orchestrator) CastSpell(ctx context.Context, input *CastInput) (*CastSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	quote, err := o.engine.QuoteCast(actor, quoteInput(input))
	if err != nil {
		return nil, err
	}
	if err := engine.CastError(quote); err != nil {
		o.logger.Info("cast refused",
			zap.String("actor_id", actor.ID),
			zap.String("spell_id", quote.SpellID),
			zap.Int32("mana_cost", quote.ManaCost),
			zap.String("reason", quote.Reason))
		return nil, err
	}

	spell := actor.FindSpell(quote.SpellID)
	result := &vagabond.CastResult{Quote: quote}

	if quote.DealDamage {
		formula := fmt.Sprintf("%dd%d", max(quote.DamageDice, 1), damageDieSize)
		roll, err := o.evaluator.Evaluate(ctx, formula)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll damage for %s", spell.Name)
		}
		result.Damage = &vagabond.DamageResult{
			Label:   fmt.Sprintf("%s - Damage", spell.Name),
			Formula: formula,
			Dice:    roll.Faces(),
			Total:   roll.Total,
		}
	}

	if quote.ManaCost > 0 {
		actor.Mana.Value -= quote.ManaCost
		out, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor})
		if err != nil {
			o.logger.Error("failed to spend mana",
				zap.String("actor_id", actor.ID),
				zap.Int32("mana_cost", quote.ManaCost),
				zap.Error(err))
			return nil, errors.Wrapf(err, "failed to spend mana for actor %s", actor.ID)
		}
		actor = out.Actor
		if err := o.engine.DeriveActor(actor); err != nil {
			return nil, err
		}
	}
	result.ManaRemaining = actor.Mana.Value

	record := &activity.RecordInput{
		Actor:   actor,
		Kind:    activityrepo.KindCast,
		Label:   fmt.Sprintf("Cast %s", spell.Name),
		Outcome: fmt.Sprintf("spent %d mana", quote.ManaCost),
		Details: map[string]string{
			"spell_id":       quote.SpellID,
			"delivery":       quote.Delivery,
			"duration":       quote.Duration,
			"mana_cost":      strconv.Itoa(int(quote.ManaCost)),
			"mana_remaining": strconv.Itoa(int(result.ManaRemaining)),
		},
	}
	if result.Damage != nil {
		record.Formula = result.Damage.Formula
		record.Total = result.Damage.Total
		record.Dice = result.Damage.Dice
	}
	if _, err := o.recorder.Record(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to record cast")
	}

	o.logger.Info("spell cast",
		zap.String("actor_id", actor.ID),
		zap.String("spell_id", quote.SpellID),
		zap.Int32("mana_cost", quote.ManaCost),
		zap.Int32("mana_remaining", result.ManaRemaining))

	return &CastSpellOutput{Result: result, Actor: actor}, nil
}

func quoteInput(input *CastInput) *engine.QuoteCastInput {
	return &engine.QuoteCastInput{
		SpellID:    input.SpellID,
		Delivery:   input.Delivery,
		Duration:   input.Duration,
		DealDamage: input.DealDamage,
		DamageDice: input.DamageDice,
	}
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
