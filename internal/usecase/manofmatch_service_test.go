package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/gfoot/sportrate/internal/domain/rating"
	"github.com/gfoot/sportrate/internal/domain/vote"
	"github.com/gfoot/sportrate/internal/infrastructure/repository/memory"
	idgen "github.com/gfoot/sportrate/internal/platform/id"
	"github.com/gfoot/sportrate/internal/platform/logging"
)

func newManOfMatchService(records ...rating.Rating) (*ManOfMatchService, *memory.VoteRepository) {
	voteRepo := memory.NewVoteRepository()
	ratingRepo := memory.NewRatingRepository(records...)
	svc := NewManOfMatchService(voteRepo, ratingRepo, idgen.NewUUIDGenerator(), logging.NewNop())
	return svc, voteRepo
}

func TestManOfMatchCastAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newManOfMatchService(
		footballRating("r1", "Messi", "Inter Miami", "m1", 9.0, testNow),
		footballRating("r2", "Alba", "Inter Miami", "m1", 8.0, testNow),
	)

	for _, v := range []vote.Vote{
		{MatchID: "m1", VoterID: "u1", VoterName: "Alice", PlayerName: "Messi", Team: "Inter Miami", Comment: "classe"},
		{MatchID: "m1", VoterID: "u2", VoterName: "Bob", PlayerName: "Messi"},
		{MatchID: "m1", VoterID: "u3", VoterName: "Cara", PlayerName: "Alba"},
	} {
		if _, err := svc.Cast(ctx, v); err != nil {
			t.Fatalf("Cast error = %v", err)
		}
	}

	result, err := svc.Get(ctx, "m1")
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}

	if result.Tally.TotalVotes != 3 {
		t.Fatalf("TotalVotes = %d, want 3", result.Tally.TotalVotes)
	}
	if result.Tally.Leader == nil || result.Tally.Leader.PlayerName != "Messi" {
		t.Fatalf("Leader = %+v", result.Tally.Leader)
	}
	if result.RatingCount != 2 {
		t.Fatalf("RatingCount = %d, want 2", result.RatingCount)
	}
	if result.CommunityAvg != 8.5 {
		t.Fatalf("CommunityAvg = %v, want 8.5", result.CommunityAvg)
	}
}

func TestManOfMatchCastReplacesPreviousVote(t *testing.T) {
	ctx := context.Background()
	svc, _ := newManOfMatchService()

	if _, err := svc.Cast(ctx, vote.Vote{MatchID: "m1", VoterID: "u1", VoterName: "Alice", PlayerName: "Messi"}); err != nil {
		t.Fatalf("first Cast error = %v", err)
	}
	if _, err := svc.Cast(ctx, vote.Vote{MatchID: "m1", VoterID: "u1", VoterName: "Alice", PlayerName: "Hakimi"}); err != nil {
		t.Fatalf("second Cast error = %v", err)
	}

	result, err := svc.Get(ctx, "m1")
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if result.Tally.TotalVotes != 1 {
		t.Fatalf("TotalVotes = %d, want 1 after replacement", result.Tally.TotalVotes)
	}
	if result.Tally.Leader.PlayerName != "Hakimi" {
		t.Fatalf("Leader = %q, want the replacement pick", result.Tally.Leader.PlayerName)
	}
}

func TestManOfMatchCastRejectsInvalidVote(t *testing.T) {
	svc, _ := newManOfMatchService()

	_, err := svc.Cast(context.Background(), vote.Vote{MatchID: "m1", VoterID: "u1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestManOfMatchRetract(t *testing.T) {
	ctx := context.Background()
	svc, _ := newManOfMatchService()

	if _, err := svc.Cast(ctx, vote.Vote{MatchID: "m1", VoterID: "u1", VoterName: "Alice", PlayerName: "Messi"}); err != nil {
		t.Fatalf("Cast error = %v", err)
	}

	if err := svc.Retract(ctx, "m1", "u1"); err != nil {
		t.Fatalf("Retract error = %v", err)
	}

	err := svc.Retract(ctx, "m1", "u1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Retract error = %v, want ErrNotFound", err)
	}
}

func TestManOfMatchGetRequiresMatchID(t *testing.T) {
	svc, _ := newManOfMatchService()

	_, err := svc.Get(context.Background(), "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}
