package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gfoot/sportrate/internal/domain/identity"
	"github.com/gfoot/sportrate/internal/domain/leaderboard"
	"github.com/gfoot/sportrate/internal/domain/rating"
	"github.com/gfoot/sportrate/internal/platform/logging"
)

// ResolvedFilters echoes the filter values a leaderboard was computed with,
// including the derived flags the response exposes.
type ResolvedFilters struct {
	Sport          string
	Position       string
	Period         leaderboard.Period
	MinSamples     int
	Limit          int
	PlayersOnly    bool
	ExcludeCoaches bool
	ExcludeDrivers bool
	DriverBoard    bool
}

// Leaderboard is the full response of one Ballon d'Or computation.
type Leaderboard struct {
	Entries []leaderboard.Entry
	Stats   leaderboard.GlobalStats
	Filters ResolvedFilters
}

// LeaderboardService runs the fusion pipeline: fetch a record snapshot, fuse
// identities, aggregate statistics and rank. Each call is stateless; fused
// identities are never cached across requests.
type LeaderboardService struct {
	ratingRepo rating.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewLeaderboardService(ratingRepo rating.Repository, logger *logging.Logger) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderboardService{
		ratingRepo: ratingRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock fixes the reference instant for period windows. Tests only.
func (s *LeaderboardService) WithClock(now func() time.Time) *LeaderboardService {
	s.now = now
	return s
}

// BallonOr computes the ranked leaderboard for the given filters.
func (s *LeaderboardService) BallonOr(ctx context.Context, filters leaderboard.Filters) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.BallonOr")
	defer span.End()

	filters = filters.Normalized()
	if !filters.Period.Valid() {
		return Leaderboard{}, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, filters.Period)
	}

	records, err := s.ratingRepo.ListRatings(ctx, s.recordQuery(filters))
	if err != nil {
		return Leaderboard{}, fmt.Errorf("list ratings: %w", err)
	}

	fused := identity.Fuse(records, filters.Domain())
	if fused.Skipped > 0 {
		s.logger.WarnContext(ctx, "malformed rating records skipped",
			"skipped", fused.Skipped,
			"fetched", len(records),
		)
	}

	entries := make([]leaderboard.Entry, 0, len(fused.Identities))
	for _, id := range fused.Identities {
		entry, aggErr := leaderboard.Aggregate(id)
		if aggErr != nil {
			// A fused identity without ratings means the fusion stage is
			// broken; fail the request instead of emitting partial output.
			return Leaderboard{}, fmt.Errorf("aggregate identity %q: %w", id.Key, aggErr)
		}
		entries = append(entries, entry)
	}

	page, stats := leaderboard.Rank(entries, filters, fused.OriginalCount)

	s.logger.InfoContext(ctx, "leaderboard computed",
		"sport", filters.Sport,
		"period", string(filters.Period),
		"fetched", len(records),
		"fused", len(fused.Identities),
		"candidates", stats.TotalPlayers,
		"page", len(page),
	)

	return Leaderboard{
		Entries: page,
		Stats:   stats,
		Filters: ResolvedFilters{
			Sport:          filters.Sport,
			Position:       filters.Position,
			Period:         filters.Period,
			MinSamples:     filters.MinSamples,
			Limit:          filters.Limit,
			PlayersOnly:    true,
			ExcludeCoaches: true,
			ExcludeDrivers: filters.DriversExcluded(),
			DriverBoard:    filters.DriverRequested(),
		},
	}, nil
}

// recordQuery pushes the sport, coach and period filters down to storage.
// Position and sample-size filters run after fusion; they depend on the
// merged identity, not on single records.
func (s *LeaderboardService) recordQuery(filters leaderboard.Filters) rating.Query {
	q := rating.Query{
		ExcludePositions: []string{rating.PositionCoach},
	}

	if filters.Sport != leaderboard.FilterAll {
		q.Sport = rating.Sport(strings.ToUpper(filters.Sport))
	} else if filters.DriversExcluded() {
		q.ExcludeSport = rating.SportF1
	}

	if start, ok := filters.Period.WindowStart(s.now()); ok {
		q.CreatedAfter = &start
	}

	return q
}
