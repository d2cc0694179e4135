package engine

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

// Mana per damage die on a damaging cast
const manaPerDamageDie = 2

// QuoteCastInput holds the caster's choices. Empty delivery and duration fall
// back to the spell's own.
type QuoteCastInput struct {
	SpellID    string
	Delivery   string
	Duration   string
	DealDamage bool
	DamageDice int32
}

// ManaCost is deliveryCost + damageDice × 2 when dealing damage. Duration adds nothing.
func ManaCost(deliveryCost int32, dealDamage bool, damageDice int32) int32 {
	if !dealDamage {
		return deliveryCost
	}
	return deliveryCost + damageDice*manaPerDamageDie
}

// QuoteCast prices a cast and runs both spending gates without mutating anything
func (e *engine) QuoteCast(actor *vagabond.Actor, input *QuoteCastInput) (*vagabond.CastQuote, error) {
	if actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if input == nil || input.SpellID == "" {
		return nil, errors.InvalidArgument("spell ID is required")
	}

	spell := actor.FindSpell(input.SpellID)
	if spell == nil {
		return nil, errors.NotFoundf("spell %s not found on actor %s", input.SpellID, actor.ID)
	}

	deliveryKey := input.Delivery
	if deliveryKey == "" {
		deliveryKey = spell.Delivery
	}
	delivery, ok := e.rules.Delivery(deliveryKey)
	if !ok {
		return nil, errors.UnknownKeyf("unknown delivery %q", deliveryKey)
	}

	duration := input.Duration
	if duration == "" {
		duration = spell.Duration
	}
	if duration == "" {
		duration = vagabond.DurationInstant
	}
	if !e.rules.Durations.Has(duration) {
		return nil, errors.UnknownKeyf("unknown duration %q", duration)
	}

	damageDice := int32(0)
	if input.DealDamage {
		if spell.DamageBase == "" {
			return nil, errors.InvalidArgumentf("spell %s does not deal damage", spell.ID)
		}
		if input.DamageDice < 0 {
			return nil, errors.InvalidArgumentf("damage dice must not be negative, got %d", input.DamageDice)
		}
		damageDice = input.DamageDice
	}

	quote := &vagabond.CastQuote{
		SpellID:    spell.ID,
		Delivery:   delivery.Key,
		Duration:   duration,
		DealDamage: input.DealDamage,
		DamageDice: damageDice,
		ManaCost:   ManaCost(delivery.Cost, input.DealDamage, damageDice),
	}
	quote.Reason = castGate(actor.Mana, quote.ManaCost)
	quote.Allowed = quote.Reason == ""

	return quote, nil
}

// castGate returns the reason a cast is refused, or "" when it may proceed.
// A zero cost never touches the pool and always passes.
func castGate(mana vagabond.Mana, cost int32) string {
	switch {
	case cost <= 0:
		return ""
	case !mana.HasPool():
		return errors.ReasonNoManaPool
	case cost > mana.Value:
		return errors.ReasonInsufficientMana
	case mana.SpendLimit != nil && cost > *mana.SpendLimit:
		return errors.ReasonSpendLimitExceeded
	default:
		return ""
	}
}

// CastError turns a refused quote into the matching error. It returns nil for
// an allowed quote.
func CastError(quote *vagabond.CastQuote) error {
	if quote == nil || quote.Allowed {
		return nil
	}

	switch quote.Reason {
	case errors.ReasonInsufficientMana:
		return errors.ResourceExhaustedf("not enough mana: cast costs %d", quote.ManaCost).
			WithReason(errors.ReasonInsufficientMana).
			WithMeta("mana_cost", quote.ManaCost)
	case errors.ReasonSpendLimitExceeded:
		return errors.FailedPreconditionf("cast costs %d, above the spend limit", quote.ManaCost).
			WithReason(errors.ReasonSpendLimitExceeded).
			WithMeta("mana_cost", quote.ManaCost)
	case errors.ReasonNoManaPool:
		return errors.FailedPreconditionf("caster has no mana pool for a cast costing %d", quote.ManaCost).
			WithReason(errors.ReasonNoManaPool).
			WithMeta("mana_cost", quote.ManaCost)
	default:
		return errors.Internalf("cast refused for unknown reason %q", quote.Reason)
	}
}
