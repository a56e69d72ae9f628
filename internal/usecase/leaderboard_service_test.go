package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gfoot/sportrate/internal/domain/leaderboard"
	"github.com/gfoot/sportrate/internal/domain/rating"
	"github.com/gfoot/sportrate/internal/infrastructure/repository/memory"
	"github.com/gfoot/sportrate/internal/platform/logging"
)

var testNow = time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)

func footballRating(id, name, team, matchID string, score float64, createdAt time.Time) rating.Rating {
	return rating.Rating{
		ID:          id,
		DisplayName: name,
		Team:        team,
		Position:    "RW",
		Sport:       rating.SportFootball,
		Score:       score,
		CreatedAt:   createdAt,
		Match: rating.Match{
			ID:       matchID,
			HomeTeam: team,
			AwayTeam: "Opponent FC",
			Date:     createdAt,
			Sport:    rating.SportFootball,
		},
	}
}

func driverRating(id, name, matchID string, score float64, createdAt time.Time) rating.Rating {
	return rating.Rating{
		ID:          id,
		DisplayName: name,
		Team:        "Red Bull Racing",
		Position:    "DRIVER",
		Sport:       rating.SportF1,
		Score:       score,
		CreatedAt:   createdAt,
		Match: rating.Match{
			ID:       matchID,
			HomeTeam: "Monaco GP",
			Date:     createdAt,
			Sport:    rating.SportF1,
		},
	}
}

func newLeaderboardService(records ...rating.Rating) *LeaderboardService {
	repo := memory.NewRatingRepository(records...)
	svc := NewLeaderboardService(repo, logging.NewNop())
	return svc.WithClock(func() time.Time { return testNow })
}

func TestBallonOrFusesAndRanks(t *testing.T) {
	svc := newLeaderboardService(
		footballRating("r1", "Messi", "Inter Miami", "m1", 9.0, testNow.AddDate(0, 0, -1)),
		footballRating("r2", "L. Messi", "Inter Miami", "m2", 9.5, testNow.AddDate(0, 0, -2)),
		footballRating("r3", "Lionel Messi", "FC Barcelone", "m3", 8.5, testNow.AddDate(0, 0, -3)),
		footballRating("r4", "Griezmann", "Atletico Madrid", "m4", 7.0, testNow.AddDate(0, 0, -4)),
	)

	board, err := svc.BallonOr(context.Background(), leaderboard.Filters{MinSamples: 1})
	if err != nil {
		t.Fatalf("BallonOr error = %v", err)
	}

	if len(board.Entries) != 2 {
		t.Fatalf("entries = %d, want 2 fused identities", len(board.Entries))
	}
	top := board.Entries[0]
	if top.Name != "Lionel Messi" {
		t.Fatalf("top entry = %q, want Lionel Messi", top.Name)
	}
	if top.TotalRatings != 3 || top.TotalMatches != 3 {
		t.Fatalf("top totals = %d ratings %d matches, want 3/3", top.TotalRatings, top.TotalMatches)
	}
	if len(top.Teams) != 2 {
		t.Fatalf("top teams = %v, want both clubs", top.Teams)
	}

	if board.Stats.Fusion.OriginalCount != 4 || board.Stats.Fusion.FusedCount != 2 {
		t.Fatalf("fusion stats = %+v", board.Stats.Fusion)
	}
}

func TestBallonOrExcludesCoachesAndDrivers(t *testing.T) {
	coach := footballRating("r5", "Luis Enrique", "PSG", "m5", 8.0, testNow.AddDate(0, 0, -1))
	coach.Position = "COACH"

	svc := newLeaderboardService(
		footballRating("r1", "Messi", "Inter Miami", "m1", 9.0, testNow.AddDate(0, 0, -1)),
		driverRating("r2", "Verstappen", "race1", 9.8, testNow.AddDate(0, 0, -1)),
		coach,
	)

	board, err := svc.BallonOr(context.Background(), leaderboard.Filters{MinSamples: 1, ExcludeDrivers: true})
	if err != nil {
		t.Fatalf("BallonOr error = %v", err)
	}

	if len(board.Entries) != 1 {
		t.Fatalf("entries = %d, want only the player", len(board.Entries))
	}
	if board.Entries[0].Name != "Lionel Messi" {
		t.Fatalf("entry = %q", board.Entries[0].Name)
	}
	if !board.Filters.ExcludeCoaches || !board.Filters.ExcludeDrivers {
		t.Fatalf("resolved filters = %+v", board.Filters)
	}
}

func TestBallonOrDriverBoard(t *testing.T) {
	svc := newLeaderboardService(
		footballRating("r1", "Messi", "Inter Miami", "m1", 9.0, testNow.AddDate(0, 0, -1)),
		driverRating("r2", "Verstappen", "race1", 9.8, testNow.AddDate(0, 0, -1)),
		driverRating("r3", "M. Verstappen", "race2", 9.2, testNow.AddDate(0, 0, -2)),
	)

	board, err := svc.BallonOr(context.Background(), leaderboard.Filters{
		Sport:          "F1",
		MinSamples:     1,
		ExcludeDrivers: true,
	})
	if err != nil {
		t.Fatalf("BallonOr error = %v", err)
	}

	if len(board.Entries) != 1 {
		t.Fatalf("entries = %d, want 1 fused driver", len(board.Entries))
	}
	if board.Entries[0].Name != "Max Verstappen" {
		t.Fatalf("driver = %q", board.Entries[0].Name)
	}
	if !board.Filters.DriverBoard {
		t.Fatal("DriverBoard flag not set for explicit F1 request")
	}
	if board.Filters.ExcludeDrivers {
		t.Fatal("explicit F1 request must not report drivers as excluded")
	}
}

func TestBallonOrPeriodWindow(t *testing.T) {
	svc := newLeaderboardService(
		footballRating("r1", "Messi", "Inter Miami", "m1", 9.0, testNow.AddDate(0, 0, -10)),
		footballRating("r2", "Messi", "Inter Miami", "m2", 5.0, testNow.AddDate(-2, 0, 0)),
	)

	board, err := svc.BallonOr(context.Background(), leaderboard.Filters{
		MinSamples: 1,
		Period:     leaderboard.PeriodLastSixMonths,
	})
	if err != nil {
		t.Fatalf("BallonOr error = %v", err)
	}

	if len(board.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(board.Entries))
	}
	if got := board.Entries[0].TotalRatings; got != 1 {
		t.Fatalf("TotalRatings = %d, want only the recent record", got)
	}
	if board.Entries[0].AvgRating != 9.0 {
		t.Fatalf("AvgRating = %v, want 9.0", board.Entries[0].AvgRating)
	}
}

func TestBallonOrRejectsUnknownPeriod(t *testing.T) {
	svc := newLeaderboardService()

	_, err := svc.BallonOr(context.Background(), leaderboard.Filters{Period: "last-week"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestBallonOrEmptyPool(t *testing.T) {
	svc := newLeaderboardService()

	board, err := svc.BallonOr(context.Background(), leaderboard.Filters{})
	if err != nil {
		t.Fatalf("BallonOr error = %v", err)
	}
	if len(board.Entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(board.Entries))
	}
	if board.Stats.TotalPlayers != 0 {
		t.Fatalf("stats = %+v, want zeros", board.Stats)
	}
}
