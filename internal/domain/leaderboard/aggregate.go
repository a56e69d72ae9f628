package leaderboard

import (
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/gfoot/sportrate/internal/domain/identity"
	"github.com/gfoot/sportrate/internal/domain/rating"
)

const (
	recentMatchLimit   = 5
	historyMonthLimit  = 12
	ratingHistoryShape = "2006-01"
)

// Aggregate computes the leaderboard snapshot for one fused identity. Fusion
// guarantees at least one rating per identity; an empty identity here means
// the upstream stage is broken, so the whole computation fails rather than
// emitting a NaN average.
func Aggregate(fused *identity.FusedIdentity) (Entry, error) {
	if fused == nil || len(fused.Ratings) == 0 {
		return Entry{}, errors.AssertionFailedf("aggregate called with no ratings for identity %q", keyOf(fused))
	}

	teams := fused.Teams.Items()
	ratings := fused.Ratings

	sum := 0.0
	best := ratings[0]
	for _, r := range ratings {
		sum += r.Score
		if r.Score > best.Score {
			best = r
		}
	}

	groups := groupByMatch(ratings)

	return Entry{
		ID:            "fused_" + fused.Key,
		Name:          fused.DisplayName,
		NormalizedKey: fused.Key,
		Positions:     fused.Positions.Items(),
		Teams:         teams,
		Sport:         fused.Sport,
		AvgRating:     round2(sum / float64(len(ratings))),
		TotalRatings:  len(ratings),
		TotalMatches:  len(groups),
		BestMatch: BestMatch{
			MatchID:     best.Match.ID,
			Score:       best.Score,
			HomeTeam:    best.Match.HomeTeam,
			AwayTeam:    best.Match.AwayTeam,
			Date:        best.Match.Date,
			Competition: best.Match.Competition,
			Team:        TeamForMatch(best.Match, teams),
		},
		RecentMatches: recentMatches(groups, teams),
		RatingHistory: monthlyHistory(ratings),
		TeamBreakdown: teamBreakdown(ratings, teams),
	}, nil
}

func keyOf(fused *identity.FusedIdentity) string {
	if fused == nil {
		return ""
	}
	return fused.Key
}

type matchGroup struct {
	match   rating.Match
	ratings []rating.Rating
}

// groupByMatch collapses records into distinct matches, preserving the order
// in which matches were first encountered.
func groupByMatch(ratings []rating.Rating) []*matchGroup {
	index := make(map[string]*matchGroup)
	groups := make([]*matchGroup, 0)

	for _, r := range ratings {
		g, ok := index[r.Match.ID]
		if !ok {
			g = &matchGroup{match: r.Match}
			index[r.Match.ID] = g
			groups = append(groups, g)
		}
		g.ratings = append(g.ratings, r)
	}

	return groups
}

func recentMatches(groups []*matchGroup, teams []string) []RecentMatch {
	sorted := make([]*matchGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].match.Date.After(sorted[j].match.Date)
	})
	if len(sorted) > recentMatchLimit {
		sorted = sorted[:recentMatchLimit]
	}

	out := make([]RecentMatch, 0, len(sorted))
	for _, g := range sorted {
		sum := 0.0
		comment := ""
		for _, r := range g.ratings {
			sum += r.Score
			if comment == "" && strings.TrimSpace(r.Comment) != "" {
				comment = r.Comment
			}
		}

		out = append(out, RecentMatch{
			MatchID:     g.match.ID,
			Score:       round1(sum / float64(len(g.ratings))),
			Comment:     comment,
			HomeTeam:    g.match.HomeTeam,
			AwayTeam:    g.match.AwayTeam,
			Date:        g.match.Date,
			Competition: g.match.Competition,
			Team:        TeamForMatch(g.match, teams),
		})
	}

	return out
}

func monthlyHistory(ratings []rating.Rating) []MonthlyPoint {
	type bucket struct {
		sum     float64
		count   int
		matches map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	for _, r := range ratings {
		month := r.CreatedAt.Format(ratingHistoryShape)
		b, ok := buckets[month]
		if !ok {
			b = &bucket{matches: make(map[string]struct{})}
			buckets[month] = b
		}
		b.sum += r.Score
		b.count++
		b.matches[r.Match.ID] = struct{}{}
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)
	if len(months) > historyMonthLimit {
		months = months[len(months)-historyMonthLimit:]
	}

	out := make([]MonthlyPoint, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		out = append(out, MonthlyPoint{
			Month:      month,
			AvgRating:  round2(b.sum / float64(b.count)),
			MatchCount: len(b.matches),
		})
	}

	return out
}

// teamBreakdown splits ratings across the identity's known teams by
// attributing each record's match, then averages per team. Teams that never
// matched a record are omitted.
func teamBreakdown(ratings []rating.Rating, teams []string) []TeamStanding {
	type teamAcc struct {
		sum     float64
		count   int
		matches map[string]struct{}
	}

	accs := make(map[string]*teamAcc, len(teams))
	for _, team := range teams {
		accs[team] = &teamAcc{matches: make(map[string]struct{})}
	}

	for _, r := range ratings {
		attributed := TeamForMatch(r.Match, teams)
		team := matchKnownTeam(attributed, teams)
		acc, ok := accs[team]
		if !ok {
			continue
		}
		acc.sum += r.Score
		acc.count++
		acc.matches[r.Match.ID] = struct{}{}
	}

	out := make([]TeamStanding, 0, len(teams))
	for _, team := range teams {
		acc := accs[team]
		if acc.count == 0 {
			continue
		}
		out = append(out, TeamStanding{
			Team:        team,
			AvgRating:   round2(acc.sum / float64(acc.count)),
			MatchCount:  len(acc.matches),
			RatingCount: acc.count,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgRating > out[j].AvgRating
	})

	return out
}

// matchKnownTeam maps an attributed side name back onto one of the known
// team labels; fixture naming and roster naming rarely agree byte-for-byte.
func matchKnownTeam(attributed string, teams []string) string {
	attributedLower := strings.ToLower(attributed)
	for _, team := range teams {
		teamLower := strings.ToLower(team)
		if strings.Contains(teamLower, attributedLower) || strings.Contains(attributedLower, teamLower) {
			return team
		}
	}
	if len(teams) > 0 {
		return teams[0]
	}
	return attributed
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
