package spell

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

// CastInput holds the caster's choices. Empty delivery and duration use the
// spell's own.
type CastInput struct {
	ActorID    string
	SpellID    string
	Delivery   string
	Duration   string
	DealDamage bool
	DamageDice int32
}

// QuoteCastOutput contains the cost preview
type QuoteCastOutput struct {
	Quote *vagabond.CastQuote
}

// CastSpellOutput contains the cast and the actor after paying for it
type CastSpellOutput struct {
	Result *vagabond.CastResult
	Actor  *vagabond.Actor
}
