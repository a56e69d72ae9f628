// Package leaderboard computes the Ballon d'Or / Driver of the Day ranking
// from fused identities: team attribution, per-identity statistics, filtering
// and ordering. Everything here is a pure computation over an in-memory
// snapshot; no I/O and no state survives a call.
package leaderboard

import (
	"time"

	"github.com/gfoot/sportrate/internal/domain/rating"
)

// BestMatch is the single highest-rated record of an identity.
type BestMatch struct {
	MatchID     string
	Score       float64
	HomeTeam    string
	AwayTeam    string
	Date        time.Time
	Competition string
	Team        string
}

// RecentMatch is one of the identity's latest distinct matches with the mean
// score across its raters.
type RecentMatch struct {
	MatchID     string
	Score       float64
	Comment     string
	HomeTeam    string
	AwayTeam    string
	Date        time.Time
	Competition string
	Team        string
}

// MonthlyPoint is one year-month bucket of the rating history.
type MonthlyPoint struct {
	Month      string
	AvgRating  float64
	MatchCount int
}

// TeamStanding is the per-team slice of an identity's ratings.
type TeamStanding struct {
	Team        string
	AvgRating   float64
	MatchCount  int
	RatingCount int
}

// Entry is the read-only leaderboard snapshot of one fused identity.
type Entry struct {
	ID            string
	Name          string
	NormalizedKey string
	Positions     []string
	Teams         []string
	Sport         rating.Sport
	AvgRating     float64
	TotalRatings  int
	TotalMatches  int
	BestMatch     BestMatch
	RecentMatches []RecentMatch
	RatingHistory []MonthlyPoint
	TeamBreakdown []TeamStanding
}

func (e Entry) hasPosition(position string) bool {
	for _, p := range e.Positions {
		if p == position {
			return true
		}
	}
	return false
}
