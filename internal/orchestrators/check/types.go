package check

import (
	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
)

// RollCheckInput selects the check to roll
type RollCheckInput struct {
	ActorID string
	Kind    vagabond.CheckKind
	Key     string
	Favor   bool
	Hinder  bool
}

// RollCheckOutput contains the graded roll
type RollCheckOutput struct {
	Result *vagabond.CheckResult
}

// RollDamageInput selects a weapon the actor carries
type RollDamageInput struct {
	ActorID  string
	WeaponID string
}

// RollDamageOutput contains the damage roll
type RollDamageOutput struct {
	Damage *vagabond.DamageResult
}
