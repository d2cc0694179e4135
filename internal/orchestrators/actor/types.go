package actor

import (
	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
)

// CreateActorInput contains the authored actor to store. An empty ID is assigned.
type CreateActorInput struct {
	Actor *vagabond.Actor
}

// CreateActorOutput contains the stored actor with derived fields
type CreateActorOutput struct {
	Actor *vagabond.Actor
}

// GetActorInput identifies an actor
type GetActorInput struct {
	ActorID string
}

// GetActorOutput contains the derived actor
type GetActorOutput struct {
	Actor *vagabond.Actor
}

// UpdateActorInput contains the replacement document
type UpdateActorInput struct {
	Actor *vagabond.Actor
}

// UpdateActorOutput contains the stored actor with derived fields
type UpdateActorOutput struct {
	Actor *vagabond.Actor
}

// DeleteActorInput identifies an actor
type DeleteActorInput struct {
	ActorID string
}

// DeleteActorOutput is empty
type DeleteActorOutput struct{}

// ListActorsInput filters the listing. Empty fields match everything.
type ListActorsInput struct {
	PlayerID string
	Type     vagabond.ActorType
}

// ListActorsOutput contains derived actors sorted by name
type ListActorsOutput struct {
	Actors []*vagabond.Actor
}

// RestInput selects the actor and rest length
type RestInput struct {
	ActorID string
	Long    bool
}

// RestOutput reports the actor after resting
type RestOutput struct {
	Actor   *vagabond.Actor
	Outcome *engine.RestOutcome
}

// BreatherInput identifies an actor
type BreatherInput struct {
	ActorID string
}

// BreatherOutput reports the hp regained
type BreatherOutput struct {
	Actor      *vagabond.Actor
	HPRegained int32
}

// SpendLuckInput selects how much luck to spend. Zero spends one point.
type SpendLuckInput struct {
	ActorID string
	Amount  int32
}

// SpendLuckOutput contains the actor after spending
type SpendLuckOutput struct {
	Actor *vagabond.Actor
}

// CheckPerkPrerequisitesInput names a perk on the actor, or carries one inline
type CheckPerkPrerequisitesInput struct {
	ActorID string
	PerkID  string
	Perk    *vagabond.Perk
}

// CheckPerkPrerequisitesOutput reports whether the actor qualifies
type CheckPerkPrerequisitesOutput struct {
	Met   bool
	Unmet []string
}

// ListActivityInput selects a log. An empty ActorID reads the global log.
type ListActivityInput struct {
	ActorID string
	Limit   int32
}

// ListActivityOutput contains entries, newest first
type ListActivityOutput struct {
	Entries []*activityrepo.Entry
}
