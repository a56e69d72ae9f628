package leaderboard

import (
	"strings"

	"github.com/gfoot/sportrate/internal/domain/rating"
)

// UnknownTeam is returned when attribution has no known teams to pick from.
const UnknownTeam = "Unknown team"

// TeamForMatch decides which side of a match an identity played for, given
// the teams it is known to have represented, in insertion order. Team names
// are inconsistently formatted across sources (club vs national naming,
// abbreviations), so this is containment-based and heuristic: it never fails,
// it degrades to the first known team when neither side matches.
func TeamForMatch(match rating.Match, knownTeams []string) string {
	home := strings.ToLower(match.HomeTeam)
	away := strings.ToLower(match.AwayTeam)

	for _, team := range knownTeams {
		teamLower := strings.ToLower(team)

		if home != "" && (strings.Contains(home, teamLower) || strings.Contains(teamLower, firstToken(home))) {
			return match.HomeTeam
		}
		if away != "" && (strings.Contains(away, teamLower) || strings.Contains(teamLower, firstToken(away))) {
			return match.AwayTeam
		}

		// National-team special case: "France" squads rarely share a token
		// with fixture naming. Other countries are not handled; known
		// limitation rather than a bug.
		if strings.Contains(team, "France") {
			if strings.Contains(home, "france") {
				return match.HomeTeam
			}
			if strings.Contains(away, "france") {
				return match.AwayTeam
			}
		}
	}

	if len(knownTeams) > 0 {
		return knownTeams[0]
	}
	return UnknownTeam
}

func firstToken(s string) string {
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}
