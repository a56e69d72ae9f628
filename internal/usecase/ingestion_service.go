package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/gfoot/sportrate/internal/domain/rating"
	"github.com/gfoot/sportrate/internal/platform/id"
	"github.com/gfoot/sportrate/internal/platform/logging"
)

const (
	defaultIngestWorkers = 4
	maxIngestWorkers     = 16
	ingestBatchSize      = 100
)

// IngestResult summarizes one bulk rating ingestion run.
type IngestResult struct {
	Received    int `json:"received"`
	Inserted    int `json:"inserted"`
	Skipped     int `json:"skipped"`
	BatchCount  int `json:"batch_count"`
	WorkerCount int `json:"worker_count"`
}

// IngestionService writes bulk rating batches concurrently. It feeds the
// store the leaderboard reads; malformed records are dropped and counted,
// never fatal.
type IngestionService struct {
	ratingRepo rating.Repository
	idGen      id.Generator
	logger     *logging.Logger
	maxWorkers int
}

func NewIngestionService(ratingRepo rating.Repository, idGen id.Generator, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		ratingRepo: ratingRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

// WithMaxWorkers caps the worker pool used for calls that do not specify
// their own limit.
func (s *IngestionService) WithMaxWorkers(n int) *IngestionService {
	s.maxWorkers = n
	return s
}

// SubmitRating validates and stores a single rating record.
func (s *IngestionService) SubmitRating(ctx context.Context, record rating.Rating) (rating.Rating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.SubmitRating")
	defer span.End()

	record.ID = s.idGen.NewID()
	record.CreatedAt = time.Now().UTC()

	if err := record.Validate(); err != nil {
		return rating.Rating{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ratingRepo.InsertRatings(ctx, []rating.Rating{record}); err != nil {
		return rating.Rating{}, fmt.Errorf("insert rating: %w", err)
	}

	s.logger.InfoContext(ctx, "rating submitted",
		"match_id", record.Match.ID,
		"player", record.DisplayName,
	)

	return record, nil
}

// IngestRatings validates and inserts records in batches across a worker
// pool. Batches are independent; one failing batch fails the run but does
// not roll back earlier batches.
func (s *IngestionService) IngestRatings(ctx context.Context, records []rating.Rating, maxWorkers int) (IngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestRatings")
	defer span.End()

	if len(records) == 0 {
		return IngestResult{}, fmt.Errorf("%w: no records to ingest", ErrInvalidInput)
	}

	workerCount := maxWorkers
	if workerCount <= 0 {
		workerCount = s.maxWorkers
	}
	if workerCount <= 0 {
		workerCount = defaultIngestWorkers
	}
	if workerCount > maxIngestWorkers {
		workerCount = maxIngestWorkers
	}

	batches := chunkRatings(records, ingestBatchSize)
	if len(batches) < workerCount {
		workerCount = len(batches)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return IngestResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	started := time.Now()
	result := IngestResult{
		Received:    len(records),
		BatchCount:  len(batches),
		WorkerCount: workerCount,
	}

	var (
		mu       sync.Mutex
		firstErr error
		workers  sync.WaitGroup
	)

	for _, batch := range batches {
		batch := batch
		workers.Add(1)
		if submitErr := pool.Submit(func() {
			defer workers.Done()

			valid := make([]rating.Rating, 0, len(batch))
			skipped := 0
			for _, record := range batch {
				if record.ID == "" {
					record.ID = s.idGen.NewID()
				}
				if record.CreatedAt.IsZero() {
					record.CreatedAt = time.Now().UTC()
				}
				if err := record.Validate(); err != nil {
					skipped++
					s.logger.WarnContext(ctx, "malformed rating record dropped",
						"error", err,
						"match_id", record.Match.ID,
					)
					continue
				}
				valid = append(valid, record)
			}

			var insertErr error
			if len(valid) > 0 {
				insertErr = s.ratingRepo.InsertRatings(ctx, valid)
			}

			mu.Lock()
			defer mu.Unlock()
			result.Skipped += skipped
			if insertErr != nil {
				if firstErr == nil {
					firstErr = insertErr
				}
				return
			}
			result.Inserted += len(valid)
		}); submitErr != nil {
			workers.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}

	workers.Wait()

	if firstErr != nil {
		return result, fmt.Errorf("ingest ratings: %w", firstErr)
	}

	s.logger.InfoContext(ctx, "ratings ingested",
		"received", result.Received,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"batches", result.BatchCount,
		"workers", result.WorkerCount,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return result, nil
}

func chunkRatings(records []rating.Rating, size int) [][]rating.Rating {
	if size <= 0 {
		return [][]rating.Rating{records}
	}

	out := make([][]rating.Rating, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		out = append(out, records[start:end])
	}
	return out
}
