package memory

import (
	"context"
	"sync"

	"github.com/gfoot/sportrate/internal/domain/vote"
)

type VoteRepository struct {
	mu    sync.RWMutex
	votes []vote.Vote
}

func NewVoteRepository() *VoteRepository {
	return &VoteRepository{}
}

func (r *VoteRepository) ListByMatch(_ context.Context, matchID string) ([]vote.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vote.Vote, 0)
	for _, v := range r.votes {
		if v.MatchID == matchID {
			out = append(out, v)
		}
	}

	return out, nil
}

func (r *VoteRepository) Upsert(_ context.Context, v vote.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.votes {
		if existing.MatchID == v.MatchID && existing.VoterID == v.VoterID {
			r.votes[i] = v
			return nil
		}
	}

	r.votes = append(r.votes, v)
	return nil
}

func (r *VoteRepository) Delete(_ context.Context, matchID, voterID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.votes {
		if existing.MatchID == matchID && existing.VoterID == voterID {
			r.votes = append(r.votes[:i], r.votes[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}
