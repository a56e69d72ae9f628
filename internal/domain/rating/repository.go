package rating

import (
	"context"
	"time"
)

// Query narrows the record set fetched from storage. Filters are pushed down
// where the backend can evaluate them; correctness does not depend on it.
type Query struct {
	// Sport keeps only records of one sport when non-empty.
	Sport Sport
	// ExcludeSport drops one sport when non-empty (driver events on the
	// classic leaderboard).
	ExcludeSport Sport
	// ExcludePositions drops records whose position matches any entry.
	ExcludePositions []string
	// CreatedAfter keeps records created at or after the given instant.
	CreatedAfter *time.Time
	// MatchID keeps only records of a single match when non-empty.
	MatchID string
}

// Repository describes rating persistence needs from use cases.
type Repository interface {
	ListRatings(ctx context.Context, q Query) ([]Rating, error)
	InsertRatings(ctx context.Context, records []Rating) error
}
