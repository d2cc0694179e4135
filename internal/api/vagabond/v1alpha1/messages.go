package vagabondv1alpha1

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

// Actor service messages

type CreateActorRequest struct {
	Actor *vagabond.Actor `json:"actor"`
}

type CreateActorResponse struct {
	Actor *vagabond.Actor `json:"actor"`
}

type GetActorRequest struct {
	ActorID string `json:"actor_id"`
}

type GetActorResponse struct {
	Actor *vagabond.Actor `json:"actor"`
}

type UpdateActorRequest struct {
	Actor *vagabond.Actor `json:"actor"`
}

type UpdateActorResponse struct {
	Actor *vagabond.Actor `json:"actor"`
}

type DeleteActorRequest struct {
	ActorID string `json:"actor_id"`
}

type DeleteActorResponse struct{}

type ListActorsRequest struct {
	PlayerID string             `json:"player_id,omitempty"`
	Type     vagabond.ActorType `json:"type,omitempty"`
}

type ListActorsResponse struct {
	Actors []*vagabond.Actor `json:"actors"`
}

type RestRequest struct {
	ActorID string `json:"actor_id"`
	Long    bool   `json:"long"`
}

type RestResponse struct {
	Actor          *vagabond.Actor `json:"actor"`
	HPRestored     int32           `json:"hp_restored"`
	FatigueRemoved int32           `json:"fatigue_removed"`
	LuckRestored   int32           `json:"luck_restored"`
	ManaRestored   int32           `json:"mana_restored"`
}

type BreatherRequest struct {
	ActorID string `json:"actor_id"`
}

type BreatherResponse struct {
	Actor      *vagabond.Actor `json:"actor"`
	HPRegained int32           `json:"hp_regained"`
}

type SpendLuckRequest struct {
	ActorID string `json:"actor_id"`
	// Amount defaults to 1
	Amount int32 `json:"amount,omitempty"`
}

type SpendLuckResponse struct {
	Actor *vagabond.Actor `json:"actor"`
}

// CheckPerkPrerequisitesRequest names a perk on the actor or carries one inline
type CheckPerkPrerequisitesRequest struct {
	ActorID string         `json:"actor_id"`
	PerkID  string         `json:"perk_id,omitempty"`
	Perk    *vagabond.Perk `json:"perk,omitempty"`
}

type CheckPerkPrerequisitesResponse struct {
	Met   bool     `json:"met"`
	Unmet []string `json:"unmet,omitempty"`
}

type ListActivityRequest struct {
	// ActorID is empty for the global log
	ActorID string `json:"actor_id,omitempty"`
	Limit   int32  `json:"limit,omitempty"`
}

type ListActivityResponse struct {
	Entries []*ActivityEntry `json:"entries"`
}

// ActivityEntry is one activity log record. CreatedAt is unix seconds.
type ActivityEntry struct {
	ID         string            `json:"id"`
	ActorID    string            `json:"actor_id"`
	ActorName  string            `json:"actor_name,omitempty"`
	Kind       string            `json:"kind"`
	Label      string            `json:"label"`
	Formula    string            `json:"formula,omitempty"`
	Outcome    string            `json:"outcome,omitempty"`
	Total      int32             `json:"total,omitempty"`
	Difficulty int32             `json:"difficulty,omitempty"`
	Dice       []int32           `json:"dice,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	CreatedAt  int64             `json:"created_at"`
}

// Play service messages

type RollCheckRequest struct {
	ActorID string             `json:"actor_id"`
	Kind    vagabond.CheckKind `json:"kind"`
	Key     string             `json:"key"`
	Favor   bool               `json:"favor,omitempty"`
	Hinder  bool               `json:"hinder,omitempty"`
}

type RollCheckResponse struct {
	Result *vagabond.CheckResult `json:"result"`
}

type RollDamageRequest struct {
	ActorID  string `json:"actor_id"`
	WeaponID string `json:"weapon_id"`
}

type RollDamageResponse struct {
	Damage *vagabond.DamageResult `json:"damage"`
}

// CastRequest carries the caster's choices for both quoting and casting
type CastRequest struct {
	ActorID    string `json:"actor_id"`
	SpellID    string `json:"spell_id"`
	Delivery   string `json:"delivery,omitempty"`
	Duration   string `json:"duration,omitempty"`
	DealDamage bool   `json:"deal_damage,omitempty"`
	DamageDice int32  `json:"damage_dice,omitempty"`
}

type QuoteCastResponse struct {
	Quote *vagabond.CastQuote `json:"quote"`
}

type CastSpellResponse struct {
	Result *vagabond.CastResult `json:"result"`
	Actor  *vagabond.Actor      `json:"actor"`
}
