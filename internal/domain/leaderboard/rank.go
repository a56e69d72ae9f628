package leaderboard

import (
	"math"
	"sort"

	"github.com/gfoot/sportrate/internal/domain/rating"
)

// avgRatingEpsilon is the band within which two averages are considered tied
// and ordering falls back to distinct match counts.
const avgRatingEpsilon = 0.01

// SportBreakdown summarizes candidates of one sport.
type SportBreakdown struct {
	Sport        rating.Sport
	PlayerCount  int
	AvgRating    float64
	TotalRatings int
}

// FusionStats reports how much deduplication the fusion stage achieved.
type FusionStats struct {
	OriginalCount int
	FusedCount    int
	Reduction     int
}

// GlobalStats aggregates the whole candidate pool, not just the page.
type GlobalStats struct {
	TotalPlayers   int
	TotalRatings   int
	TotalMatches   int
	AvgRating      float64
	TopRating      float64
	SportBreakdown []SportBreakdown
	Fusion         FusionStats
}

// Rank applies the post-fusion filters (position, minimum sample size),
// orders the candidates and truncates to the page size. An empty candidate
// pool is not an error: it yields an empty page and zero stats.
func Rank(entries []Entry, filters Filters, originalCount int) ([]Entry, GlobalStats) {
	filters = filters.Normalized()

	candidates := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.TotalRatings < filters.MinSamples {
			continue
		}
		if filters.Position != FilterAll && !e.hasPosition(filters.Position) {
			continue
		}
		candidates = append(candidates, e)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if math.Abs(a.AvgRating-b.AvgRating) < avgRatingEpsilon {
			return a.TotalMatches > b.TotalMatches
		}
		return a.AvgRating > b.AvgRating
	})

	page := candidates
	if len(page) > filters.Limit {
		page = page[:filters.Limit]
	}

	return page, globalStats(candidates, page, originalCount)
}

func globalStats(candidates, page []Entry, originalCount int) GlobalStats {
	stats := GlobalStats{
		TotalPlayers: len(candidates),
		Fusion: FusionStats{
			OriginalCount: originalCount,
			FusedCount:    len(candidates),
			Reduction:     originalCount - len(candidates),
		},
	}

	if len(candidates) == 0 {
		return stats
	}

	avgSum := 0.0
	for _, e := range candidates {
		stats.TotalRatings += e.TotalRatings
		stats.TotalMatches += e.TotalMatches
		avgSum += e.AvgRating
	}
	stats.AvgRating = round2(avgSum / float64(len(candidates)))
	if len(page) > 0 {
		stats.TopRating = page[0].AvgRating
	}
	stats.SportBreakdown = sportBreakdown(candidates)

	return stats
}

func sportBreakdown(candidates []Entry) []SportBreakdown {
	type acc struct {
		count        int
		totalRatings int
		avgSum       float64
	}

	accs := make(map[rating.Sport]*acc)
	order := make([]rating.Sport, 0)
	for _, e := range candidates {
		a, ok := accs[e.Sport]
		if !ok {
			a = &acc{}
			accs[e.Sport] = a
			order = append(order, e.Sport)
		}
		a.count++
		a.totalRatings += e.TotalRatings
		a.avgSum += e.AvgRating
	}

	out := make([]SportBreakdown, 0, len(order))
	for _, sport := range order {
		a := accs[sport]
		out = append(out, SportBreakdown{
			Sport:        sport,
			PlayerCount:  a.count,
			AvgRating:    round2(a.avgSum / float64(a.count)),
			TotalRatings: a.totalRatings,
		})
	}

	return out
}
