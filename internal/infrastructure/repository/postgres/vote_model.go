package postgres

import (
	"database/sql"
	"time"

	"github.com/gfoot/sportrate/internal/domain/vote"
)

type voteTableModel struct {
	ID         string         `db:"id"`
	MatchID    string         `db:"match_id"`
	VoterID    string         `db:"voter_id"`
	VoterName  string         `db:"voter_name"`
	PlayerName string         `db:"player_name"`
	Team       sql.NullString `db:"team"`
	Comment    sql.NullString `db:"comment"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (m voteTableModel) toDomain() vote.Vote {
	return vote.Vote{
		ID:         m.ID,
		MatchID:    m.MatchID,
		VoterID:    m.VoterID,
		VoterName:  m.VoterName,
		PlayerName: m.PlayerName,
		Team:       m.Team.String,
		Comment:    m.Comment.String,
		CreatedAt:  m.CreatedAt,
	}
}
