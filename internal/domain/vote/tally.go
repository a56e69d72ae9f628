package vote

import (
	"math"
	"sort"
	"strings"
)

// PlayerTally is the vote share of one player within a match.
type PlayerTally struct {
	PlayerName string
	Team       string
	Votes      int
	Percentage float64
	Comments   []string
}

// Tally is the aggregated man-of-the-match result for one match.
type Tally struct {
	TotalVotes int
	Players    []PlayerTally
	Leader     *PlayerTally
}

// Compute aggregates votes into per-player shares, ordered by vote count
// descending with first-voted players winning ties. Empty input yields an
// empty tally, not an error.
func Compute(votes []Vote) Tally {
	if len(votes) == 0 {
		return Tally{}
	}

	index := make(map[string]*PlayerTally)
	order := make([]string, 0)
	for _, v := range votes {
		key := strings.ToLower(strings.TrimSpace(v.PlayerName))
		t, ok := index[key]
		if !ok {
			t = &PlayerTally{PlayerName: v.PlayerName, Team: v.Team}
			index[key] = t
			order = append(order, key)
		}
		t.Votes++
		if strings.TrimSpace(v.Comment) != "" {
			t.Comments = append(t.Comments, v.Comment)
		}
	}

	players := make([]PlayerTally, 0, len(order))
	for _, key := range order {
		t := index[key]
		t.Percentage = math.Round(float64(t.Votes) / float64(len(votes)) * 100)
		players = append(players, *t)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Votes > players[j].Votes
	})

	tally := Tally{TotalVotes: len(votes), Players: players}
	if len(players) > 0 {
		tally.Leader = &players[0]
	}
	return tally
}
