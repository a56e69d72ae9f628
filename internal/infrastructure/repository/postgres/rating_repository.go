package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gfoot/sportrate/internal/domain/rating"
	qb "github.com/gfoot/sportrate/internal/platform/querybuilder"
)

type RatingRepository struct {
	db *sqlx.DB
}

var ratingSelectColumns = []string{
	"id",
	"match_id",
	"player_name",
	"team",
	"position",
	"sport",
	"score",
	"comment",
	"home_team",
	"away_team",
	"match_date",
	"competition",
	"match_sport",
	"created_at",
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) ListRatings(ctx context.Context, query rating.Query) ([]rating.Rating, error) {
	sqlQuery, args, err := qb.Select(ratingSelectColumns...).From("ratings").
		Where(listRatingConditions(query)...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select ratings query: %w", err)
	}

	var rows []ratingTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("select ratings: %w", err)
	}

	out := make([]rating.Rating, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// listRatingConditions translates a rating.Query into WHERE conditions.
// Position is nullable, so the exclusion has to keep NULL rows; a plain
// NOT IN would drop them.
func listRatingConditions(query rating.Query) []qb.Condition {
	conditions := make([]qb.Condition, 0, 4)
	if query.Sport != "" {
		conditions = append(conditions, qb.Eq("sport", string(query.Sport)))
	}
	if query.ExcludeSport != "" {
		conditions = append(conditions, qb.NotEq("sport", string(query.ExcludeSport)))
	}
	if len(query.ExcludePositions) > 0 {
		values := make([]any, 0, len(query.ExcludePositions))
		for _, position := range query.ExcludePositions {
			values = append(values, position)
		}
		conditions = append(conditions, qb.NotInOrNull("UPPER(position)", values))
	}
	if query.CreatedAfter != nil {
		conditions = append(conditions, qb.Gte("created_at", *query.CreatedAfter))
	}
	if query.MatchID != "" {
		conditions = append(conditions, qb.Eq("match_id", query.MatchID))
	}
	return conditions
}

func (r *RatingRepository) InsertRatings(ctx context.Context, records []rating.Rating) error {
	if len(records) == 0 {
		return nil
	}

	builder := qb.InsertInto("ratings").Columns(ratingSelectColumns...)
	for _, record := range records {
		builder.Values(
			record.ID,
			record.Match.ID,
			record.DisplayName,
			record.Team,
			nullString(record.Position),
			string(record.Sport),
			record.Score,
			nullString(record.Comment),
			nullString(record.Match.HomeTeam),
			nullString(record.Match.AwayTeam),
			nullTime(record.Match.Date),
			nullString(record.Match.Competition),
			nullString(string(record.Match.Sport)),
			record.CreatedAt,
		)
	}

	sqlQuery, args, err := builder.Suffix("ON CONFLICT (id) DO NOTHING").ToSQL()
	if err != nil {
		return fmt.Errorf("build insert ratings query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("insert ratings: %w", err)
	}

	return nil
}
