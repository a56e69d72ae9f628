package httpapi

import (
	"net/http"

	"github.com/gfoot/sportrate/internal/domain/vote"
)

// GetManOfMatch serves GET /v1/matches/{matchID}/man-of-match.
func (h *Handler) GetManOfMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManOfMatch")
	defer span.End()

	result, err := h.manOfMatch.Get(ctx, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toManOfMatchResponse(result))
}

// CastManOfMatchVote serves POST /v1/matches/{matchID}/man-of-match.
func (h *Handler) CastManOfMatchVote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CastManOfMatchVote")
	defer span.End()

	var payload castVoteDTO
	if err := h.decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(r, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	cast, err := h.manOfMatch.Cast(ctx, vote.Vote{
		MatchID:    r.PathValue("matchID"),
		VoterID:    payload.VoterID,
		VoterName:  payload.VoterName,
		PlayerName: payload.PlayerName,
		Team:       payload.Team,
		Comment:    payload.Comment,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toVoteDTO(cast))
}

// RetractManOfMatchVote serves DELETE /v1/matches/{matchID}/man-of-match.
func (h *Handler) RetractManOfMatchVote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RetractManOfMatchVote")
	defer span.End()

	var payload retractVoteDTO
	if err := h.decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(r, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.manOfMatch.Retract(ctx, r.PathValue("matchID"), payload.VoterID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
