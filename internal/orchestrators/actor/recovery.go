package actor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/vagabond-api/internal/activity"
	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
)

// Rest refreshes a character. Short rests are accepted and change nothing.
func (o *orchestrator) Rest(ctx context.Context, input *RestInput) (*RestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadCharacter(ctx, input.ActorID, "rest")
	if err != nil {
		return nil, err
	}

	outcome := engine.ApplyRest(actor, input.Long)
	if !outcome.Changed() {
		return &RestOutput{Actor: actor, Outcome: outcome}, nil
	}

	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := o.engine.DeriveActor(saved); err != nil {
		return nil, err
	}

	if err := o.record(ctx, &activity.RecordInput{
		Actor:   saved,
		Kind:    activityrepo.KindRest,
		Label:   "Rest",
		Outcome: restSummary(outcome),
		Details: map[string]string{
			"hp_restored":     itoa(outcome.HPRestored),
			"fatigue_removed": itoa(outcome.FatigueRemoved),
			"luck_restored":   itoa(outcome.LuckRestored),
			"mana_restored":   itoa(outcome.ManaRestored),
		},
	}); err != nil {
		return nil, err
	}

	return &RestOutput{Actor: saved, Outcome: outcome}, nil
}

// Breather heals the actor by its might, capped at max hp
func (o *orchestrator) Breather(ctx context.Context, input *BreatherInput) (*BreatherOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	regained := engine.ApplyBreather(actor)

	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := o.engine.DeriveActor(saved); err != nil {
		return nil, err
	}

	if err := o.record(ctx, &activity.RecordInput{
		Actor:   saved,
		Kind:    activityrepo.KindBreather,
		Label:   "Breather",
		Outcome: fmt.Sprintf("regained %d hp", regained),
		Total:   regained,
	}); err != nil {
		return nil, err
	}

	o.logger.Debug("breather taken",
		zap.String("actor_id", saved.ID),
		zap.Int32("hp_regained", regained))

	return &BreatherOutput{Actor: saved, HPRegained: regained}, nil
}

// SpendLuck deducts luck from a character
func (o *orchestrator) SpendLuck(ctx context.Context, input *SpendLuckInput) (*SpendLuckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	amount := input.Amount
	if amount == 0 {
		amount = 1
	}

	actor, err := o.loadCharacter(ctx, input.ActorID, "spend luck")
	if err != nil {
		return nil, err
	}

	if err := engine.SpendLuck(actor, amount); err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := o.engine.DeriveActor(saved); err != nil {
		return nil, err
	}

	if err := o.record(ctx, &activity.RecordInput{
		Actor:   saved,
		Kind:    activityrepo.KindLuck,
		Label:   "Spend Luck",
		Outcome: fmt.Sprintf("spent %d, %d left", amount, saved.Luck.Value),
		Total:   amount,
	}); err != nil {
		return nil, err
	}

	return &SpendLuckOutput{Actor: saved}, nil
}

func (o *orchestrator) loadCharacter(ctx context.Context, actorID, action string) (*vagabond.Actor, error) {
	actor, err := o.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsCharacter() {
		return nil, errors.FailedPreconditionf("only characters can %s, %s is an %s", action, actor.ID, actor.Type)
	}
	return actor, nil
}

func restSummary(o *engine.RestOutcome) string {
	switch {
	case o.HPRestored > 0:
		return fmt.Sprintf("restored %d hp", o.HPRestored)
	case o.FatigueRemoved > 0:
		return "removed 1 fatigue"
	case o.LuckRestored == 0 && o.ManaRestored == 0 && o.Clamped:
		return "reset luck and mana to max"
	default:
		return "refreshed"
	}
}
