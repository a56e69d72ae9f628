package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gfoot/sportrate/internal/domain/rating"
	"github.com/gfoot/sportrate/internal/usecase"
)

// SubmitRating serves POST /v1/ratings.
func (h *Handler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitRating")
	defer span.End()

	var payload ratingSubmissionDTO
	if err := h.decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(r, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := payload.toRecord()
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	stored, err := h.ingestion.SubmitRating(ctx, record)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{
		"id":      stored.ID,
		"matchId": stored.Match.ID,
	})
}

// IngestRatings serves POST /v1/internal/ingestion/ratings.
func (h *Handler) IngestRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestRatings")
	defer span.End()

	var payload ingestRatingsDTO
	if err := h.decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(r, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	records := make([]rating.Rating, 0, len(payload.Ratings))
	for _, item := range payload.Ratings {
		record, err := item.toRecord()
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
		records = append(records, record)
	}

	result, err := h.ingestion.IngestRatings(ctx, records, 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
