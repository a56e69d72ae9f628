package memory

import (
	"context"
	"testing"
	"time"

	"github.com/gfoot/sportrate/internal/domain/rating"
)

func TestRatingRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	repo := NewRatingRepository(
		rating.Rating{ID: "r1", DisplayName: "Messi", Team: "Inter Miami", Position: "RW", Sport: rating.SportFootball, Score: 9, CreatedAt: now, Match: rating.Match{ID: "m1"}},
		rating.Rating{ID: "r2", DisplayName: "Verstappen", Team: "Red Bull", Position: "DRIVER", Sport: rating.SportF1, Score: 9.5, CreatedAt: now, Match: rating.Match{ID: "race1"}},
		rating.Rating{ID: "r3", DisplayName: "Luis Enrique", Team: "PSG", Position: "coach", Sport: rating.SportFootball, Score: 8, CreatedAt: now, Match: rating.Match{ID: "m2"}},
		rating.Rating{ID: "r4", DisplayName: "Old Record", Team: "PSG", Position: "CB", Sport: rating.SportFootball, Score: 6, CreatedAt: now.AddDate(-2, 0, 0), Match: rating.Match{ID: "m0"}},
	)

	t.Run("sport filter", func(t *testing.T) {
		got, err := repo.ListRatings(ctx, rating.Query{Sport: rating.SportF1})
		if err != nil {
			t.Fatalf("ListRatings error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "r2" {
			t.Fatalf("got %v, want only r2", got)
		}
	})

	t.Run("exclude sport", func(t *testing.T) {
		got, err := repo.ListRatings(ctx, rating.Query{ExcludeSport: rating.SportF1})
		if err != nil {
			t.Fatalf("ListRatings error = %v", err)
		}
		for _, r := range got {
			if r.Sport == rating.SportF1 {
				t.Fatalf("driver record leaked: %+v", r)
			}
		}
	})

	t.Run("exclude positions is case-insensitive", func(t *testing.T) {
		got, err := repo.ListRatings(ctx, rating.Query{ExcludePositions: []string{"COACH"}})
		if err != nil {
			t.Fatalf("ListRatings error = %v", err)
		}
		for _, r := range got {
			if r.ID == "r3" {
				t.Fatal("coach record leaked")
			}
		}
	})

	t.Run("created after", func(t *testing.T) {
		cutoff := now.AddDate(0, -6, 0)
		got, err := repo.ListRatings(ctx, rating.Query{CreatedAfter: &cutoff})
		if err != nil {
			t.Fatalf("ListRatings error = %v", err)
		}
		for _, r := range got {
			if r.ID == "r4" {
				t.Fatal("stale record leaked past the window")
			}
		}
	})

	t.Run("match filter", func(t *testing.T) {
		got, err := repo.ListRatings(ctx, rating.Query{MatchID: "m1"})
		if err != nil {
			t.Fatalf("ListRatings error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "r1" {
			t.Fatalf("got %v, want only r1", got)
		}
	})
}

func TestRatingRepositoryInsert(t *testing.T) {
	ctx := context.Background()
	repo := NewRatingRepository()

	err := repo.InsertRatings(ctx, []rating.Rating{
		{ID: "a", DisplayName: "X", Team: "T", Sport: rating.SportFootball, Score: 5, Match: rating.Match{ID: "m"}},
		{ID: "b", DisplayName: "Y", Team: "T", Sport: rating.SportFootball, Score: 6, Match: rating.Match{ID: "m"}},
	})
	if err != nil {
		t.Fatalf("InsertRatings error = %v", err)
	}

	got, err := repo.ListRatings(ctx, rating.Query{})
	if err != nil {
		t.Fatalf("ListRatings error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("stored = %d, want 2", len(got))
	}
}
