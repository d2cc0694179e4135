package server

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/vagabond-api/internal/activity"
	"github.com/KirkDiggler/vagabond-api/internal/dice"
	"github.com/KirkDiggler/vagabond-api/internal/engine"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/vagabond-api/internal/handlers/vagabond/v1alpha1"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/check"
	"github.com/KirkDiggler/vagabond-api/internal/orchestrators/spell"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/clock"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/idgen"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
	redisclient "github.com/KirkDiggler/vagabond-api/internal/redis"
	activityrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/activity"
	actorrepo "github.com/KirkDiggler/vagabond-api/internal/repositories/actor"
	"github.com/KirkDiggler/vagabond-api/internal/rules"
)

// Dependencies are the external resources the services are built on
type Dependencies struct {
	Redis redisclient.Client
	Rules *rules.Ruleset

	// Optional; defaults are the toolkit roller, a fresh event bus, the
	// wall clock and UUID IDs
	Roller      toolkitdice.Roller
	EventBus    events.EventBus
	Clock       clock.Clock
	ActorIDs    idgen.Generator
	ActivityIDs idgen.Generator

	MaxActivityEntries int64
	Logger             *zap.Logger
}

// Validate ensures all required dependencies are provided
func (d *Dependencies) Validate() error {
	vb := errors.NewValidationBuilder()

	if d.Redis == nil {
		vb.RequiredField("Redis")
	}
	if d.Rules == nil {
		vb.RequiredField("Rules")
	}

	return vb.Build()
}

// Build wires repositories, the engine, orchestrators and handlers into a server
func Build(deps *Dependencies) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid dependencies")
	}

	logger := logging.OrNop(deps.Logger)
	c := deps.Clock
	if c == nil {
		c = clock.New()
	}
	bus := deps.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	actorIDs := deps.ActorIDs
	if actorIDs == nil {
		actorIDs = idgen.NewUUID("actor")
	}
	activityIDs := deps.ActivityIDs
	if activityIDs == nil {
		activityIDs = idgen.NewUUID("act")
	}

	actorRepo, err := actorrepo.NewRedis(&actorrepo.RedisConfig{
		Client: deps.Redis,
		Clock:  c,
		Logger: logger.Named("actor_repo"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor repository")
	}

	activityRepo, err := activityrepo.NewRedisRepository(&activityrepo.Config{
		Client:     deps.Redis,
		MaxEntries: deps.MaxActivityEntries,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create activity repository")
	}

	eng, err := engine.New(&engine.Config{Rules: deps.Rules})
	if err != nil {
		return nil, err
	}

	evaluator := dice.NewEvaluator(&dice.Config{
		Roller: deps.Roller,
		Logger: logger.Named("dice"),
	})

	recorder, err := activity.NewRecorder(&activity.Config{
		Repo:        activityRepo,
		EventBus:    bus,
		IDGenerator: activityIDs,
		Clock:       c,
		Logger:      logger.Named("activity"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create activity recorder")
	}

	actorService, err := actor.NewOrchestrator(&actor.Config{
		ActorRepo:    actorRepo,
		ActivityRepo: activityRepo,
		Engine:       eng,
		Recorder:     recorder,
		IDGenerator:  actorIDs,
		Logger:       logger.Named("actor"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor orchestrator")
	}

	checkService, err := check.NewOrchestrator(&check.Config{
		ActorRepo: actorRepo,
		Engine:    eng,
		Evaluator: evaluator,
		Recorder:  recorder,
		Logger:    logger.Named("check"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create check orchestrator")
	}

	spellService, err := spell.NewOrchestrator(&spell.Config{
		ActorRepo: actorRepo,
		Engine:    eng,
		Evaluator: evaluator,
		Recorder:  recorder,
		Logger:    logger.Named("spell"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spell orchestrator")
	}

	actorHandler, err := v1alpha1.NewActorHandler(&v1alpha1.ActorHandlerConfig{
		ActorService: actorService,
		Logger:       logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor handler")
	}

	playHandler, err := v1alpha1.NewPlayHandler(&v1alpha1.PlayHandlerConfig{
		CheckService: checkService,
		SpellService: spellService,
		Logger:       logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create play handler")
	}

	return New(&Config{
		ActorService: actorHandler,
		PlayService:  playHandler,
		Logger:       logger.Named("grpc"),
	})
}
