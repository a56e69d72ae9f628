package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gfoot/sportrate/internal/domain/vote"
	qb "github.com/gfoot/sportrate/internal/platform/querybuilder"
)

type VoteRepository struct {
	db *sqlx.DB
}

var voteSelectColumns = []string{
	"id",
	"match_id",
	"voter_id",
	"voter_name",
	"player_name",
	"team",
	"comment",
	"created_at",
}

func NewVoteRepository(db *sqlx.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) ListByMatch(ctx context.Context, matchID string) ([]vote.Vote, error) {
	sqlQuery, args, err := qb.Select(voteSelectColumns...).From("man_of_match_votes").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select votes query: %w", err)
	}

	var rows []voteTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("select votes: %w", err)
	}

	out := make([]vote.Vote, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// Upsert replaces the voter's previous pick for the same match, keyed by the
// (match_id, voter_id) unique constraint.
func (r *VoteRepository) Upsert(ctx context.Context, v vote.Vote) error {
	sqlQuery, args, err := qb.InsertInto("man_of_match_votes").
		Columns(voteSelectColumns...).
		Values(
			v.ID,
			v.MatchID,
			v.VoterID,
			v.VoterName,
			v.PlayerName,
			nullString(v.Team),
			nullString(v.Comment),
			v.CreatedAt,
		).
		Suffix(`ON CONFLICT (match_id, voter_id) DO UPDATE SET
			voter_name = EXCLUDED.voter_name,
			player_name = EXCLUDED.player_name,
			team = EXCLUDED.team,
			comment = EXCLUDED.comment,
			created_at = EXCLUDED.created_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert vote query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}

	return nil
}

func (r *VoteRepository) Delete(ctx context.Context, matchID, voterID string) (bool, error) {
	sqlQuery, args, err := qb.DeleteFrom("man_of_match_votes").
		Where(
			qb.Eq("match_id", matchID),
			qb.Eq("voter_id", voterID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete vote query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return false, fmt.Errorf("delete vote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete vote rows affected: %w", err)
	}

	return affected > 0, nil
}
