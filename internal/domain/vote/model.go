package vote

import (
	"fmt"
	"strings"
	"time"
)

// Vote is one user's man-of-the-match pick for a single match. A voter has
// at most one live vote per match; casting again replaces it.
type Vote struct {
	ID         string
	MatchID    string
	VoterID    string
	VoterName  string
	PlayerName string
	Team       string
	Comment    string
	CreatedAt  time.Time
}

func (v Vote) Validate() error {
	if strings.TrimSpace(v.MatchID) == "" {
		return fmt.Errorf("vote match id is required")
	}
	if strings.TrimSpace(v.VoterID) == "" {
		return fmt.Errorf("vote voter id is required")
	}
	if strings.TrimSpace(v.PlayerName) == "" {
		return fmt.Errorf("vote player name is required")
	}
	return nil
}
