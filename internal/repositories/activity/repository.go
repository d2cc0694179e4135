// Package activity provides the append-only activity log store
package activity

//go:generate mockgen -destination=mock/mock_repository.go -package=activitymock github.com/KirkDiggler/vagabond-api/internal/repositories/activity Repository

import (
	"context"
	"time"
)

// Kind classifies an activity entry
type Kind string

// Activity kinds
const (
	KindCheck    Kind = "check"
	KindDamage   Kind = "damage"
	KindCast     Kind = "cast"
	KindRest     Kind = "rest"
	KindBreather Kind = "breather"
	KindLuck     Kind = "luck"
	KindCreate   Kind = "create"
	KindUpdate   Kind = "update"
	KindDelete   Kind = "delete"
)

// Entry is one structured record in the shared log
type Entry struct {
	// Unique identifier for the entry
	ID string `json:"id"`

	// Actor the entry is about
	ActorID   string `json:"actor_id"`
	ActorName string `json:"actor_name,omitempty"`

	Kind Kind `json:"kind"`

	// Human-readable label, e.g. "Arcana (Favored)"
	Label string `json:"label"`

	// Dice expression that was rolled, if any
	Formula string `json:"formula,omitempty"`

	// Outcome classification or short summary, e.g. "crit", "regained 4 hp"
	Outcome string `json:"outcome,omitempty"`

	Total      int32   `json:"total,omitempty"`
	Difficulty int32   `json:"difficulty,omitempty"`
	Dice       []int32 `json:"dice,omitempty"`

	// Extra structured fields such as mana cost or spell ID
	Details map[string]string `json:"details,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Repository stores activity entries newest first
type Repository interface {
	// Append adds an entry to the actor's log and the global log
	// Returns errors.InvalidArgument for a missing entry, ID or actor ID
	// Returns errors.Internal for storage failures
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the newest entries first. An empty ActorID reads the global log.
	// Returns errors.InvalidArgument for a negative limit
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AppendInput contains the entry to append
type AppendInput struct {
	Entry *Entry
}

// AppendOutput contains the stored entry
type AppendOutput struct {
	Entry *Entry
}

// ListInput selects a log and how many entries to read. Zero Limit uses the
// repository default.
type ListInput struct {
	ActorID string
	Limit   int64
}

// ListOutput contains entries, newest first
type ListOutput struct {
	Entries []*Entry
}
