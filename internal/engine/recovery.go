package engine

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

// RestOutcome reports what a rest changed
type RestOutcome struct {
	Long           bool
	HPRestored     int32
	FatigueRemoved int32
	LuckRestored   int32
	ManaRestored   int32
	// Clamped is set when luck or mana sat above max and was brought down to it
	Clamped bool
}

// Changed reports whether the rest touched any resource
func (o *RestOutcome) Changed() bool {
	return o.HPRestored > 0 || o.FatigueRemoved > 0 || o.LuckRestored > 0 || o.ManaRestored > 0 || o.Clamped
}

// ApplyRest mutates the actor for a rest. A long rest heals to full or, when
// already at full hp, removes one fatigue. Luck and mana refill either way.
// A short rest changes nothing.
func ApplyRest(actor *vagabond.Actor, long bool) *RestOutcome {
	outcome := &RestOutcome{Long: long}
	if !long {
		return outcome
	}

	if actor.HP.Value < actor.HP.Max {
		outcome.HPRestored = actor.HP.Max - actor.HP.Value
		actor.HP.Value = actor.HP.Max
	} else if actor.Fatigue > 0 {
		outcome.FatigueRemoved = 1
		actor.Fatigue--
	}

	if actor.Luck.Value < actor.Luck.Max {
		outcome.LuckRestored = actor.Luck.Max - actor.Luck.Value
	}
	if actor.Mana.Value < actor.Mana.Max {
		outcome.ManaRestored = actor.Mana.Max - actor.Mana.Value
	}
	outcome.Clamped = actor.Luck.Value > actor.Luck.Max || actor.Mana.Value > actor.Mana.Max

	actor.Luck.Value = actor.Luck.Max
	actor.Mana.Value = actor.Mana.Max

	return outcome
}

// ApplyBreather heals might hp, capped at max, and returns the hp regained
func ApplyBreather(actor *vagabond.Actor) int32 {
	healed := min(actor.HP.Value+actor.Stats.Might.Value, actor.HP.Max)
	regained := max(healed-actor.HP.Value, 0)
	actor.HP.Value += regained
	return regained
}

// SpendLuck deducts luck points. Nothing changes when the actor cannot pay.
func SpendLuck(actor *vagabond.Actor, amount int32) error {
	if amount < 1 {
		return errors.InvalidArgumentf("luck amount must be at least 1, got %d", amount)
	}
	if actor.Luck.Value < amount {
		return errors.ResourceExhaustedf("not enough luck: have %d, need %d", actor.Luck.Value, amount).
			WithReason(errors.ReasonInsufficientLuck).
			WithMeta("luck", actor.Luck.Value)
	}

	actor.Luck.Value -= amount
	return nil
}
