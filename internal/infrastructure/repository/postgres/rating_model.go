package postgres

import (
	"database/sql"
	"time"

	"github.com/gfoot/sportrate/internal/domain/rating"
)

type ratingTableModel struct {
	ID          string         `db:"id"`
	MatchID     string         `db:"match_id"`
	PlayerName  string         `db:"player_name"`
	Team        string         `db:"team"`
	Position    sql.NullString `db:"position"`
	Sport       string         `db:"sport"`
	Score       float64        `db:"score"`
	Comment     sql.NullString `db:"comment"`
	HomeTeam    sql.NullString `db:"home_team"`
	AwayTeam    sql.NullString `db:"away_team"`
	MatchDate   sql.NullTime   `db:"match_date"`
	Competition sql.NullString `db:"competition"`
	MatchSport  sql.NullString `db:"match_sport"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (m ratingTableModel) toDomain() rating.Rating {
	return rating.Rating{
		ID:          m.ID,
		DisplayName: m.PlayerName,
		Team:        m.Team,
		Position:    m.Position.String,
		Sport:       rating.Sport(m.Sport),
		Score:       m.Score,
		Comment:     m.Comment.String,
		CreatedAt:   m.CreatedAt,
		Match: rating.Match{
			ID:          m.MatchID,
			HomeTeam:    m.HomeTeam.String,
			AwayTeam:    m.AwayTeam.String,
			Date:        m.MatchDate.Time,
			Competition: m.Competition.String,
			Sport:       rating.Sport(m.MatchSport.String),
		},
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
