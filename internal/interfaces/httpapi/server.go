// Package httpapi exposes the rating service over HTTP: the Ballon d'Or
// leaderboard, man-of-the-match votes, rating submission and the internal
// bulk ingestion endpoint.
package httpapi

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gfoot/sportrate/internal/platform/logging"
)

// RouterConfig carries the transport-level knobs the router needs.
type RouterConfig struct {
	CORSAllowedOrigins []string
	InternalJobToken   string
}

// ServerConfig carries the listener settings.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewRouter assembles the route table and the shared middleware chain.
func NewRouter(h *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, h, cfg)

	var handler http.Handler = mux
	handler = recoverPanic(logger, handler)
	handler = RequestLogging(logger, handler)
	handler = CORS(cfg.CORSAllowedOrigins, handler)
	handler = RequestTracing(handler)

	return handler
}

// NewServer wraps the router in an http.Server with sane timeouts.
func NewServer(handler http.Handler, cfg ServerConfig) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered",
					"error", fmt.Errorf("%v", rec),
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
