// Package memory provides in-memory repositories backing the demo mode and
// the usecase tests. All repositories are safe for concurrent use.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/gfoot/sportrate/internal/domain/rating"
)

type RatingRepository struct {
	mu      sync.RWMutex
	records []rating.Rating
}

func NewRatingRepository(seed ...rating.Rating) *RatingRepository {
	return &RatingRepository{records: append([]rating.Rating(nil), seed...)}
}

func (r *RatingRepository) ListRatings(_ context.Context, query rating.Query) ([]rating.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rating.Rating, 0, len(r.records))
	for _, record := range r.records {
		if !matchesQuery(record, query) {
			continue
		}
		out = append(out, record)
	}

	return out, nil
}

func (r *RatingRepository) InsertRatings(_ context.Context, records []rating.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, records...)
	return nil
}

func matchesQuery(record rating.Rating, query rating.Query) bool {
	if query.Sport != "" && record.Sport != query.Sport {
		return false
	}
	if query.ExcludeSport != "" && record.Sport == query.ExcludeSport {
		return false
	}
	for _, position := range query.ExcludePositions {
		if strings.EqualFold(strings.TrimSpace(record.Position), position) {
			return false
		}
	}
	if query.CreatedAfter != nil && record.CreatedAt.Before(*query.CreatedAfter) {
		return false
	}
	if query.MatchID != "" && record.Match.ID != query.MatchID {
		return false
	}
	return true
}
