// Package dice evaluates arithmetic-of-dice expressions such as "1d20 + 1d6"
// using the rpg-toolkit roller.
package dice

//go:generate mockgen -destination=mock/mock_evaluator.go -package=dicemock github.com/KirkDiggler/vagabond-api/internal/dice Evaluator

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.uber.org/zap"

	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
)

// Evaluator rolls a textual dice expression
type Evaluator interface {
	Evaluate(ctx context.Context, expression string) (*Result, error)
}

// Result is a rolled expression
type Result struct {
	Expression string `json:"expression"`
	Terms      []Term `json:"terms"`
	Total      int32  `json:"total"`
}

// Faces returns every die face in term order
func (r *Result) Faces() []int32 {
	var faces []int32
	for _, t := range r.Terms {
		faces = append(faces, t.Faces...)
	}
	return faces
}

// FirstFace returns the first face rolled on a die of the given size
func (r *Result) FirstFace(size int32) (int32, bool) {
	for _, t := range r.Terms {
		if t.Size == size && len(t.Faces) > 0 {
			return t.Faces[0], true
		}
	}
	return 0, false
}

// Config holds the evaluator dependencies
type Config struct {
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	Logger *zap.Logger
}

type evaluator struct {
	roller dice.Roller
	logger *zap.Logger
}

// NewEvaluator creates an evaluator backed by the toolkit roller
func NewEvaluator(cfg *Config) Evaluator {
	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &evaluator{
		roller: roller,
		logger: logging.OrNop(cfg.Logger),
	}
}

// Evaluate parses and rolls the expression
func (e *evaluator) Evaluate(ctx context.Context, expression string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "dice evaluation canceled")
	}

	terms, err := Parse(expression)
	if err != nil {
		return nil, err
	}

	result := &Result{Expression: expression, Terms: terms}
	for i := range result.Terms {
		term := &result.Terms[i]
		if term.IsDice() {
			faces, err := e.roller.RollN(int(term.Count), int(term.Size))
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll %dd%d", term.Count, term.Size)
			}
			if len(faces) != int(term.Count) {
				return nil, errors.Internalf("roller returned %d faces for %dd%d", len(faces), term.Count, term.Size)
			}

			sum := int32(0)
			term.Faces = make([]int32, len(faces))
			for j, f := range faces {
				term.Faces[j] = int32(f)
				sum += int32(f)
			}
			term.Value = term.Sign * sum
		}
		result.Total += term.Value
	}

	e.logger.Debug("dice roll",
		zap.String("expression", expression),
		zap.Int32s("faces", result.Faces()),
		zap.Int32("total", result.Total),
	)

	return result, nil
}
