// Package app wires configuration, storage, services and the HTTP transport
// into a runnable server.
package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/gfoot/sportrate/internal/config"
	cacherepo "github.com/gfoot/sportrate/internal/infrastructure/repository/cache"
	"github.com/gfoot/sportrate/internal/infrastructure/repository/memory"
	"github.com/gfoot/sportrate/internal/infrastructure/repository/postgres"
	"github.com/gfoot/sportrate/internal/interfaces/httpapi"
	"github.com/gfoot/sportrate/internal/platform/cache"
	idgen "github.com/gfoot/sportrate/internal/platform/id"
	"github.com/gfoot/sportrate/internal/platform/logging"
	"github.com/gfoot/sportrate/internal/usecase"

	"github.com/gfoot/sportrate/internal/domain/rating"
	"github.com/gfoot/sportrate/internal/domain/vote"
)

// NewHTTPServer builds the fully wired API server. Without DB_URL the
// service runs on seeded in-memory repositories, which is the demo mode.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	ratingRepo, voteRepo, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		ratingRepo = cacherepo.NewRatingRepository(ratingRepo, store)
	}

	ids := idgen.NewUUIDGenerator()

	leaderboardSvc := usecase.NewLeaderboardService(ratingRepo, logger)
	manOfMatchSvc := usecase.NewManOfMatchService(voteRepo, ratingRepo, ids, logger)
	ingestionSvc := usecase.NewIngestionService(ratingRepo, ids, logger).
		WithMaxWorkers(cfg.IngestMaxWorkers)

	handler := httpapi.NewHandler(leaderboardSvc, manOfMatchSvc, ingestionSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
	})

	return httpapi.NewServer(router, httpapi.ServerConfig{
		Addr:         cfg.HTTPAddr,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}), nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (rating.Repository, vote.Repository, error) {
	if cfg.DBURL == "" {
		logger.Info("DB_URL not set, using in-memory repositories with demo seed")
		return memory.NewRatingRepository(memory.SeedRatings(time.Now().UTC())...),
			memory.NewVoteRepository(),
			nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("database connected", "db_name", databaseName(cfg.DBURL))

	return postgres.NewRatingRepository(db), postgres.NewVoteRepository(db), nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := connString(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(databaseName(cfg.DBURL)),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
