package domain

import (
	"errors"
	"time"
)

const (
	MinScore = 1
	MaxScore = 5
)

var ErrInvalidScore = errors.New("score must be between 1 and 5")

// Rating is one user's score for one store. The (UserID, StoreID) pair is
// unique: re-rating mutates the existing row, keeping ID and CreatedAt
// stable so audit trails stay anchored to the first submission.
type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	StoreID   int64     `json:"store_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidScore reports whether score lies in the accepted 1..5 range.
func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// StoreAggregate is a derived summary over a store's ratings. It is
// recomputed from the rating rows on every read and never persisted, so it
// can never go stale. An unrated store yields {0, 0}.
type StoreAggregate struct {
	AverageScore float64 `json:"average_score"`
	TotalCount   int64   `json:"total_count"`
}
