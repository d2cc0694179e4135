// Package activity records structured activity entries to the shared log and
// announces them on the event bus.
package activity

//go:generate mockgen -destination=mock/mock_recorder.go -package=activitymock github.com/KirkDiggler/vagabond-api/internal/activity Recorder

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/clock"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/idgen"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
)

// EventTypePrefix prefixes every published activity event, e.g. "vagabond.activity.check"
const EventTypePrefix = "vagabond.activity."

// Event context keys
const (
	ContextKeyEntryID = "entry_id"
	ContextKeyLabel   = "label"
	ContextKeyFormula = "formula"
	ContextKeyOutcome = "outcome"
	ContextKeyTotal   = "total"
)

// EventType returns the bus event type for an activity kind
func EventType(kind activityrepo.Kind) string {
	return EventTypePrefix + string(kind)
}

// Recorder appends activity entries
type Recorder interface {
	Record(ctx context.Context, input *RecordInput) (*activityrepo.Entry, error)
}

// RecordInput describes what happened to an actor
type RecordInput struct {
	Actor      *vagabond.Actor
	Kind       activityrepo.Kind
	Label      string
	Formula    string
	Outcome    string
	Total      int32
	Difficulty int32
	Dice       []int32
	Details    map[string]string
}

// Config holds the recorder dependencies
type Config struct {
	Repo        activityrepo.Repository
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Logger      *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type recorder struct {
	repo   activityrepo.Repository
	bus    events.EventBus
	idGen  idgen.Generator
	clock  clock.Clock
	logger *zap.Logger
}

// NewRecorder creates a recorder
func NewRecorder(cfg *Config) (Recorder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &recorder{
		repo:   cfg.Repo,
		bus:    cfg.EventBus,
		idGen:  cfg.IDGenerator,
		clock:  c,
		logger: logging.OrNop(cfg.Logger),
	}, nil
}

// Record stores the entry, then publishes it. A failed publish is logged but
// does not fail the call since the entry is already durable.
func (r *recorder) Record(ctx context.Context, input *RecordInput) (*activityrepo.Entry, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if input.Kind == "" {
		return nil, errors.InvalidArgument("activity kind is required")
	}

	entry := &activityrepo.Entry{
		ID:         r.idGen.Generate(),
		ActorID:    input.Actor.ID,
		ActorName:  input.Actor.Name,
		Kind:       input.Kind,
		Label:      input.Label,
		Formula:    input.Formula,
		Outcome:    input.Outcome,
		Total:      input.Total,
		Difficulty: input.Difficulty,
		Dice:       input.Dice,
		Details:    input.Details,
		CreatedAt:  r.clock.Now().UTC(),
	}

	if _, err := r.repo.Append(ctx, activityrepo.AppendInput{Entry: entry}); err != nil {
		return nil, errors.Wrap(err, "failed to append activity")
	}

	event := events.NewGameEvent(EventType(entry.Kind), newActorEntity(input.Actor), nil)
	event.Context().Set(ContextKeyEntryID, entry.ID)
	event.Context().Set(ContextKeyLabel, entry.Label)
	event.Context().Set(ContextKeyFormula, entry.Formula)
	event.Context().Set(ContextKeyOutcome, entry.Outcome)
	event.Context().Set(ContextKeyTotal, entry.Total)

	if err := r.bus.Publish(ctx, event); err != nil {
		r.logger.Warn("failed to publish activity event",
			zap.String("entry_id", entry.ID),
			zap.String("actor_id", entry.ActorID),
			zap.String("kind", string(entry.Kind)),
			zap.Error(err))
	}

	r.logger.Info("activity recorded",
		zap.String("entry_id", entry.ID),
		zap.String("actor_id", entry.ActorID),
		zap.String("kind", string(entry.Kind)),
		zap.String("label", entry.Label),
		zap.String("outcome", entry.Outcome))

	return entry, nil
}
