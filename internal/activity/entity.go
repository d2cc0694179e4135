package activity

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

// actorEntity presents an actor to the toolkit event bus
type actorEntity struct {
	id        string
	actorType vagabond.ActorType
}

var _ core.Entity = (*actorEntity)(nil)

func newActorEntity(actor *vagabond.Actor) *actorEntity {
	return &actorEntity{id: actor.ID, actorType: actor.Type}
}

func (e *actorEntity) GetID() string {
	return e.id
}

func (e *actorEntity) GetType() string {
	return string(e.actorType)
}
