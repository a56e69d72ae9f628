package httpapi

import "net/http"

func registerRoutes(mux *http.ServeMux, h *Handler, cfg RouterConfig) {
	mux.HandleFunc("GET /healthz", h.Healthz)

	mux.HandleFunc("GET /v1/leaderboard/ballon-or", h.BallonOr)

	mux.HandleFunc("GET /v1/matches/{matchID}/man-of-match", h.GetManOfMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/man-of-match", h.CastManOfMatchVote)
	mux.HandleFunc("DELETE /v1/matches/{matchID}/man-of-match", h.RetractManOfMatchVote)

	mux.HandleFunc("POST /v1/ratings", h.SubmitRating)

	mux.Handle("POST /v1/internal/ingestion/ratings",
		RequireInternalJobToken(cfg.InternalJobToken, http.HandlerFunc(h.IngestRatings)))
}
