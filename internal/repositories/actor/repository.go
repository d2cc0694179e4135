// Package actor provides the interface for actor document persistence
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/vagabond-api/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

// Repository defines the interface for actor persistence. Only authored
// fields are meaningful in storage; derived fields are recomputed on read.
type Repository interface {
	// Create stores a new actor
	// Returns errors.InvalidArgument for missing actor or ID
	// Returns errors.AlreadyExists if an actor with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing actor document
	// Returns errors.InvalidArgument for missing actor or ID
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an actor by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves actors, optionally narrowed to one player and type
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating an actor
type CreateInput struct {
	Actor *vagabond.Actor
}

// CreateOutput defines the output for creating an actor
type CreateOutput struct {
	Actor *vagabond.Actor
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *vagabond.Actor
}

// UpdateInput defines the input for updating an actor
type UpdateInput struct {
	Actor *vagabond.Actor
}

// UpdateOutput defines the output for updating an actor
type UpdateOutput struct {
	Actor *vagabond.Actor
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct{}

// ListInput defines the input for listing actors. An empty PlayerID lists
// every actor; an empty Type matches both characters and NPCs.
type ListInput struct {
	PlayerID string
	Type     vagabond.ActorType
}

// ListOutput defines the output for listing actors
type ListOutput struct {
	Actors []*vagabond.Actor
}
