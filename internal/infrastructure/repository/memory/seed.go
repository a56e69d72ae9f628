package memory

import (
	"time"

	"github.com/gfoot/sportrate/internal/domain/rating"
)

// SeedRatings returns a small demo data set. The aliases are deliberately
// inconsistent so the fusion stage has real work to do out of the box.
func SeedRatings(now time.Time) []rating.Rating {
	matchClasico := rating.Match{
		ID:          "match-classico-001",
		HomeTeam:    "Real Madrid",
		AwayTeam:    "FC Barcelone",
		Date:        now.AddDate(0, 0, -3),
		Competition: "La Liga",
		Sport:       rating.SportFootball,
	}
	matchPSG := rating.Match{
		ID:          "match-psg-om-002",
		HomeTeam:    "Paris Saint-Germain",
		AwayTeam:    "Olympique de Marseille",
		Date:        now.AddDate(0, 0, -10),
		Competition: "Ligue 1",
		Sport:       rating.SportFootball,
	}
	matchMiami := rating.Match{
		ID:          "match-miami-003",
		HomeTeam:    "Inter Miami",
		AwayTeam:    "LA Galaxy",
		Date:        now.AddDate(0, -1, 0),
		Competition: "MLS",
		Sport:       rating.SportFootball,
	}
	raceMonaco := rating.Match{
		ID:          "race-monaco-004",
		HomeTeam:    "Monaco GP",
		AwayTeam:    "",
		Date:        now.AddDate(0, 0, -20),
		Competition: "Formula 1",
		Sport:       rating.SportF1,
	}

	seed := []rating.Rating{
		{ID: "seed-001", DisplayName: "Messi", Team: "Inter Miami", Position: "RW", Sport: rating.SportFootball, Score: 9.5, Comment: "Unstoppable tonight", Match: matchMiami},
		{ID: "seed-002", DisplayName: "L. Messi", Team: "Inter Miami", Position: "RW", Sport: rating.SportFootball, Score: 9.0, Match: matchMiami},
		{ID: "seed-003", DisplayName: "Lionel Messi", Team: "FC Barcelone", Position: "RW", Sport: rating.SportFootball, Score: 8.8, Comment: "Vintage performance", Match: matchClasico},
		{ID: "seed-004", DisplayName: "Mbappe", Team: "Real Madrid", Position: "ST", Sport: rating.SportFootball, Score: 8.9, Match: matchClasico},
		{ID: "seed-005", DisplayName: "Kylian Mbappé", Team: "Paris Saint-Germain", Position: "ST", Sport: rating.SportFootball, Score: 8.4, Comment: "Two goals", Match: matchPSG},
		{ID: "seed-006", DisplayName: "K. Mbappe", Team: "Real Madrid", Position: "ST", Sport: rating.SportFootball, Score: 9.1, Match: matchClasico},
		{ID: "seed-007", DisplayName: "Griezmann", Team: "Atletico Madrid", Position: "AM", Sport: rating.SportFootball, Score: 7.6, Match: matchClasico},
		{ID: "seed-008", DisplayName: "Luis Enrique", Team: "Paris Saint-Germain", Position: "COACH", Sport: rating.SportFootball, Score: 8.0, Match: matchPSG},
		{ID: "seed-009", DisplayName: "Verstappen", Team: "Red Bull Racing", Position: "DRIVER", Sport: rating.SportF1, Score: 9.7, Comment: "Pole to flag", Match: raceMonaco},
		{ID: "seed-010", DisplayName: "Max Verstappen", Team: "Red Bull Racing", Position: "DRIVER", Sport: rating.SportF1, Score: 9.4, Match: raceMonaco},
		{ID: "seed-011", DisplayName: "Leclerc", Team: "Ferrari", Position: "DRIVER", Sport: rating.SportF1, Score: 8.8, Match: raceMonaco},
	}

	for i := range seed {
		seed[i].CreatedAt = seed[i].Match.Date
	}

	return seed
}
