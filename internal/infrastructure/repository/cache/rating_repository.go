// Package cache decorates repositories with a TTL read-through layer.
// Leaderboard reads repeat the same record queries; caching the snapshot
// keeps the fusion pipeline pure while saving round trips.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gfoot/sportrate/internal/domain/rating"
	"github.com/gfoot/sportrate/internal/platform/cache"
)

const ratingKeyPrefix = "ratings:"

type RatingRepository struct {
	next  rating.Repository
	store *cache.Store
}

func NewRatingRepository(next rating.Repository, store *cache.Store) *RatingRepository {
	return &RatingRepository{next: next, store: store}
}

func (r *RatingRepository) ListRatings(ctx context.Context, query rating.Query) ([]rating.Rating, error) {
	key := ratingQueryKey(query)

	value, err := r.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.ListRatings(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	records, ok := value.([]rating.Rating)
	if !ok {
		return r.next.ListRatings(ctx, query)
	}

	return records, nil
}

// InsertRatings writes through and drops every cached snapshot; any cached
// query result may now be stale.
func (r *RatingRepository) InsertRatings(ctx context.Context, records []rating.Rating) error {
	if err := r.next.InsertRatings(ctx, records); err != nil {
		return err
	}
	r.store.DeletePrefix(ctx, ratingKeyPrefix)
	return nil
}

// Period windows are derived from the request clock, so CreatedAfter moves
// a little on every call. The key buckets it to the hour; without that no
// two windowed reads would ever share an entry.
func ratingQueryKey(query rating.Query) string {
	createdAfter := ""
	if query.CreatedAfter != nil {
		createdAfter = query.CreatedAfter.UTC().Truncate(time.Hour).Format(time.RFC3339)
	}
	return fmt.Sprintf("%ssport=%s&exclude=%s&positions=%v&after=%s&match=%s",
		ratingKeyPrefix,
		query.Sport,
		query.ExcludeSport,
		query.ExcludePositions,
		createdAfter,
		query.MatchID,
	)
}
