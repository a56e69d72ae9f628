package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/gfoot/sportrate/internal/platform/logging"
	"github.com/gfoot/sportrate/internal/usecase"
)

var jsonDecoder = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler exposes the HTTP surface of the rating service.
type Handler struct {
	leaderboard *usecase.LeaderboardService
	manOfMatch  *usecase.ManOfMatchService
	ingestion   *usecase.IngestionService
	logger      *logging.Logger
	validate    *validator.Validate
}

func NewHandler(
	leaderboard *usecase.LeaderboardService,
	manOfMatch *usecase.ManOfMatchService,
	ingestion *usecase.IngestionService,
	logger *logging.Logger,
) *Handler {
	return &Handler{
		leaderboard: leaderboard,
		manOfMatch:  manOfMatch,
		ingestion:   ingestion,
		logger:      logger,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}
	if err := jsonDecoder.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(r *http.Request, payload any) error {
	if err := h.validate.StructCtx(r.Context(), payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
