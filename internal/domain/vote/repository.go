package vote

import "context"

// Repository describes man-of-the-match vote persistence.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Vote, error)
	// Upsert replaces any previous vote by the same voter on the same match.
	Upsert(ctx context.Context, v Vote) error
	// Delete removes the voter's vote; it reports whether one existed.
	Delete(ctx context.Context, matchID, voterID string) (bool, error)
}
