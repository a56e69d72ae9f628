package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/gfoot/sportrate/internal/domain/rating"
	"github.com/gfoot/sportrate/internal/domain/vote"
	"github.com/gfoot/sportrate/internal/platform/id"
	"github.com/gfoot/sportrate/internal/platform/logging"
)

// ManOfMatch is the aggregated vote picture for one match, with the
// community rating average alongside for context.
type ManOfMatch struct {
	MatchID      string
	Tally        vote.Tally
	Votes        []vote.Vote
	CommunityAvg float64
	RatingCount  int
}

type ManOfMatchService struct {
	voteRepo   vote.Repository
	ratingRepo rating.Repository
	idGen      id.Generator
	logger     *logging.Logger
}

func NewManOfMatchService(
	voteRepo vote.Repository,
	ratingRepo rating.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *ManOfMatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ManOfMatchService{
		voteRepo:   voteRepo,
		ratingRepo: ratingRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

// Get fetches votes and the match's rating records in parallel and tallies
// the man-of-the-match shares.
func (s *ManOfMatchService) Get(ctx context.Context, matchID string) (ManOfMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManOfMatchService.Get")
	defer span.End()

	if matchID == "" {
		return ManOfMatch{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	var (
		votes     []vote.Vote
		votesErr  error
		records   []rating.Rating
		recordErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		votes, votesErr = s.voteRepo.ListByMatch(ctx, matchID)
	})
	wg.Go(func() {
		records, recordErr = s.ratingRepo.ListRatings(ctx, rating.Query{MatchID: matchID})
	})
	wg.Wait()

	if votesErr != nil {
		return ManOfMatch{}, fmt.Errorf("list votes: %w", votesErr)
	}
	if recordErr != nil {
		return ManOfMatch{}, fmt.Errorf("list match ratings: %w", recordErr)
	}

	result := ManOfMatch{
		MatchID:     matchID,
		Tally:       vote.Compute(votes),
		Votes:       votes,
		RatingCount: len(records),
	}
	if len(records) > 0 {
		sum := 0.0
		for _, r := range records {
			sum += r.Score
		}
		result.CommunityAvg = math.Round(sum/float64(len(records))*10) / 10
	}

	return result, nil
}

// Cast records (or replaces) the voter's pick for a match.
func (s *ManOfMatchService) Cast(ctx context.Context, v vote.Vote) (vote.Vote, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManOfMatchService.Cast")
	defer span.End()

	if err := v.Validate(); err != nil {
		return vote.Vote{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	v.ID = s.idGen.NewID()
	v.CreatedAt = time.Now().UTC()

	if err := s.voteRepo.Upsert(ctx, v); err != nil {
		return vote.Vote{}, fmt.Errorf("upsert vote: %w", err)
	}

	s.logger.InfoContext(ctx, "man of the match vote cast",
		"match_id", v.MatchID,
		"player", v.PlayerName,
	)

	return v, nil
}

// Retract removes the voter's pick; missing votes map to ErrNotFound.
func (s *ManOfMatchService) Retract(ctx context.Context, matchID, voterID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManOfMatchService.Retract")
	defer span.End()

	if matchID == "" || voterID == "" {
		return fmt.Errorf("%w: match id and voter id are required", ErrInvalidInput)
	}

	existed, err := s.voteRepo.Delete(ctx, matchID, voterID)
	if err != nil {
		return fmt.Errorf("delete vote: %w", err)
	}
	if !existed {
		return fmt.Errorf("%w: no vote for match %s", ErrNotFound, matchID)
	}

	return nil
}
