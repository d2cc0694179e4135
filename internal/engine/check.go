package engine

import (
	"fmt"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

// Check formulas
const (
	FormulaPlain    = "1d20"
	FormulaFavored  = "1d20 + 1d6"
	FormulaHindered = "1d20 - 1d6"
)

const critFace = 20

// PlanCheckInput selects the check to resolve
type PlanCheckInput struct {
	Kind   vagabond.CheckKind
	Key    string
	Favor  bool
	Hinder bool
}

// CheckPlan is everything needed to roll a check
type CheckPlan struct {
	Kind       vagabond.CheckKind
	Key        string
	Label      string
	Formula    string
	Difficulty int32
}

// CheckFormula builds the dice expression. Favor and hinder cancel out.
func CheckFormula(favor, hinder bool) string {
	switch {
	case favor && !hinder:
		return FormulaFavored
	case hinder && !favor:
		return FormulaHindered
	default:
		return FormulaPlain
	}
}

func modifierSuffix(favor, hinder bool) string {
	switch {
	case favor && !hinder:
		return " (Favored)"
	case hinder && !favor:
		return " (Hindered)"
	default:
		return ""
	}
}

// Classify grades a roll. A natural 20 is a crit no matter the total.
func Classify(d20, total, difficulty int32) vagabond.ResultType {
	switch {
	case d20 == critFace:
		return vagabond.ResultCrit
	case total >= difficulty:
		return vagabond.ResultPass
	default:
		return vagabond.ResultFail
	}
}

// ResolveCheck grades the rolled values against a plan
func ResolveCheck(plan *CheckPlan, d20, total int32, dice []int32) *vagabond.CheckResult {
	resultType := Classify(d20, total, plan.Difficulty)

	return &vagabond.CheckResult{
		Kind:       plan.Kind,
		Key:        plan.Key,
		Label:      plan.Label,
		Formula:    plan.Formula,
		Roll:       d20,
		Dice:       dice,
		Total:      total,
		Difficulty: plan.Difficulty,
		ResultType: resultType,
		IsCrit:     resultType == vagabond.ResultCrit,
	}
}

// PlanCheck resolves the difficulty, label and formula of a check
func (e *engine) PlanCheck(actor *vagabond.Actor, input *PlanCheckInput) (*CheckPlan, error) {
	if actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument("check key is required")
	}

	plan := &CheckPlan{
		Kind:    input.Kind,
		Key:     input.Key,
		Formula: CheckFormula(input.Favor, input.Hinder),
	}

	switch input.Kind {
	case vagabond.CheckKindSkill, vagabond.CheckKindAttack:
		difficulty, err := e.skillDifficulty(actor, input.Key)
		if err != nil {
			return nil, err
		}
		plan.Difficulty = difficulty
		plan.Label = e.rules.SkillLabel(input.Key)
		if input.Kind == vagabond.CheckKindAttack {
			plan.Label = fmt.Sprintf("%s Attack", plan.Label)
		}
	case vagabond.CheckKindSave:
		def, ok := e.rules.Save(input.Key)
		if !ok {
			return nil, errors.UnknownKeyf("unknown save %q", input.Key)
		}
		value, _ := actor.Saves.Value(input.Key)
		plan.Difficulty = value
		plan.Label = def.Label
	default:
		return nil, errors.UnknownKeyf("unknown check kind %q", input.Kind)
	}

	plan.Label += modifierSuffix(input.Favor, input.Hinder)
	return plan, nil
}

// skillDifficulty uses the actor's skill entry when it has one and falls back
// to an untrained roll on the ruleset stat otherwise
func (e *engine) skillDifficulty(actor *vagabond.Actor, key string) (int32, error) {
	def, ok := e.rules.Skill(key)
	if !ok {
		return 0, errors.UnknownKeyf("unknown skill %q", key)
	}

	stat := def.Stat
	trained := false
	if skill, ok := actor.Skills[key]; ok && skill != nil {
		trained = skill.Trained
		if skill.Stat != "" {
			stat = skill.Stat
		}
	}

	value, ok := actor.Stats.Value(stat)
	if !ok {
		return 0, errors.UnknownKeyf("skill %q references unknown stat %q", key, stat)
	}
	return SkillDifficulty(value, trained), nil
}
