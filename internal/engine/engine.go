// Package engine computes Vagabond derived state and resolves rules decisions.
//
// Everything here is pure: no I/O, no randomness. Dice results are passed in by
// the caller so that classification can be tested deterministically.
package engine

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/rules"
)

// Engine provides ruleset calculations over actor documents
type Engine interface {
	// Derivation
	DeriveActor(actor *vagabond.Actor) error

	// Authoring
	ValidateActor(actor *vagabond.Actor) error
	SeedSkills(actor *vagabond.Actor)

	// Checks and damage
	PlanCheck(actor *vagabond.Actor, input *PlanCheckInput) (*CheckPlan, error)
	PlanDamage(actor *vagabond.Actor, weaponID string) (*DamagePlan, error)

	// Spells
	QuoteCast(actor *vagabond.Actor, input *QuoteCastInput) (*vagabond.CastQuote, error)

	// Perks
	CheckPerkPrerequisites(actor *vagabond.Actor, perk *vagabond.Perk) *PerkCheck

	// Rules exposes the tables the engine was built with
	Rules() *rules.Ruleset
}

// Config holds the engine dependencies
type Config struct {
	Rules *rules.Ruleset
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Rules == nil {
		vb.RequiredField("Rules")
	}

	return vb.Build()
}

type engine struct {
	rules *rules.Ruleset
}

// New creates an engine over the given ruleset
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid engine config")
	}

	return &engine{rules: cfg.Rules}, nil
}

func (e *engine) Rules() *rules.Ruleset {
	return e.rules
}
