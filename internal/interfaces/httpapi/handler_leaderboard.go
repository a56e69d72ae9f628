package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gfoot/sportrate/internal/domain/leaderboard"
	"github.com/gfoot/sportrate/internal/usecase"
)

// BallonOr serves GET /v1/leaderboard/ballon-or.
func (h *Handler) BallonOr(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BallonOr")
	defer span.End()

	filters, err := parseLeaderboardFilters(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.leaderboard.BallonOr(ctx, filters)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLeaderboardResponse(board))
}

func parseLeaderboardFilters(r *http.Request) (leaderboard.Filters, error) {
	query := r.URL.Query()

	filters := leaderboard.Filters{
		Sport:    strings.TrimSpace(query.Get("sport")),
		Position: strings.TrimSpace(query.Get("position")),
		Period:   leaderboard.Period(strings.TrimSpace(query.Get("period"))),
	}

	minMatches, err := parsePositiveInt(query.Get("minMatches"), "minMatches")
	if err != nil {
		return leaderboard.Filters{}, err
	}
	filters.MinSamples = minMatches

	limit, err := parsePositiveInt(query.Get("limit"), "limit")
	if err != nil {
		return leaderboard.Filters{}, err
	}
	filters.Limit = limit

	// Driver records stay out of the mixed board unless F1 was asked for.
	filters.ExcludeDrivers = true
	if raw := strings.TrimSpace(query.Get("excludeF1")); raw != "" {
		excludeF1, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return leaderboard.Filters{}, fmt.Errorf("%w: invalid excludeF1 value %q", usecase.ErrInvalidInput, raw)
		}
		filters.ExcludeDrivers = excludeF1
	}

	return filters, nil
}

func parsePositiveInt(raw, name string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("%w: invalid %s value %q", usecase.ErrInvalidInput, name, raw)
	}
	return parsed, nil
}
