package rating

import (
	"fmt"
	"strings"
	"time"
)

// Sport identifies the event category a rating belongs to.
type Sport string

const (
	SportFootball   Sport = "FOOTBALL"
	SportBasketball Sport = "BASKETBALL"
	SportRugby      Sport = "RUGBY"
	SportF1         Sport = "F1"
)

// PositionCoach marks staff records that never enter the leaderboard pool.
const PositionCoach = "COACH"

// Match is a read-only reference to the match a rating was cast on.
type Match struct {
	ID          string
	HomeTeam    string
	AwayTeam    string
	Date        time.Time
	Competition string
	Sport       Sport
}

// Rating is one rater's score for a player (or driver) at a given team in a
// given match. Records are immutable once retrieved from storage.
type Rating struct {
	ID          string
	IdentityID  string
	DisplayName string
	Team        string
	Position    string
	Sport       Sport
	Score       float64
	Comment     string
	CreatedAt   time.Time
	Match       Match
}

// Validate reports whether the record carries everything the fusion pipeline
// needs. Malformed records are skipped, not fatal.
func (r Rating) Validate() error {
	if strings.TrimSpace(r.DisplayName) == "" {
		return fmt.Errorf("rating display name is required")
	}
	if strings.TrimSpace(r.Team) == "" {
		return fmt.Errorf("rating team is required")
	}
	if r.Sport == "" {
		return fmt.Errorf("rating sport is required")
	}
	if r.Score < 0 || r.Score > 10 {
		return fmt.Errorf("rating score out of range: %v", r.Score)
	}
	if r.Match.ID == "" {
		return fmt.Errorf("rating match reference is required")
	}
	return nil
}

// IsCoach reports whether the record belongs to a coach/staff member.
func (r Rating) IsCoach() bool {
	return strings.EqualFold(strings.TrimSpace(r.Position), PositionCoach)
}
