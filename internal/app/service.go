// Package app provides the core matching service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	geoqueue "github.com/maeumlab/gunghap/internal/adapters/mq/queue"
	workerpool "github.com/maeumlab/gunghap/internal/adapters/mq/worker"
	repository "github.com/maeumlab/gunghap/internal/adapters/repository"
	"github.com/maeumlab/gunghap/internal/domain/compat"
	"github.com/maeumlab/gunghap/internal/domain/dedupe"
	"github.com/maeumlab/gunghap/internal/domain/geo"
	"github.com/maeumlab/gunghap/internal/domain/interest"
	"github.com/maeumlab/gunghap/internal/domain/model"
	"github.com/maeumlab/gunghap/internal/domain/rank"
	"github.com/maeumlab/gunghap/internal/domain/types"
	"github.com/maeumlab/gunghap/pkg/logger"
	"github.com/maeumlab/gunghap/pkg/metrics"
)

// Service wires the profile store, the scorers, the ranker and the
// async geocoding pipeline behind one facade.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	deduper  dedupe.Deduper
	queue    geoqueue.Queue
	geocoder geo.Geocoder
	compat   *compat.Scorer
	interest *interest.Scorer
	ranker   *rank.Ranker
	pool     *workerpool.Pool

	// Configuration
	workerCount     int
	queueSize       int
	dedupeSize      int
	shardCount      int
	topK            int
	rankConcurrency int

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:     2,
		queueSize:       10_000,
		dedupeSize:      50_000,
		shardCount:      8,
		topK:            rank.DefaultTopK,
		rankConcurrency: 0, // ranker default
		stopCh:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting matching service...")

	s.store = repository.NewMemStore(
		repository.WithShardCount(s.shardCount),
	)
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.queue = geoqueue.NewInMemoryQueue(
		geoqueue.WithCapacity(s.queueSize),
	)
	if s.geocoder == nil {
		s.geocoder = geo.NewStaticGeocoder()
	}
	if s.compat == nil {
		s.compat = compat.NewScorer(compat.WithLogger(s.logger))
	}
	if s.interest == nil {
		s.interest = interest.NewScorer()
	}

	rankOpts := []rank.Option{
		rank.WithTopK(s.topK),
		rank.WithLogger(s.logger),
	}
	if s.rankConcurrency > 0 {
		rankOpts = append(rankOpts, rank.WithConcurrency(s.rankConcurrency))
	}
	s.ranker = rank.New(s.compat, s.interest, rankOpts...)

	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.geocoder, s.store, s.deduper)
	s.pool.Start(ctx)

	metrics.UpdateQueueCapacity(s.queueSize)
	metrics.UpdateWorkerCount(s.workerCount)

	s.started = true
	s.logger.Info(ctx, "matching service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("shards", s.shardCount),
		logger.Int("topK", s.topK),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping matching service...")

	if s.pool != nil {
		s.pool.Stop()
	}

	if q, ok := s.queue.(*geoqueue.InMemoryQueue); ok {
		_ = q.Close()
	}

	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(context.Background(), "matching service stopped")
}

// UpsertProfile stores a profile and, when it has a district but no
// coordinate yet, schedules an async geocode resolution for it. The
// write itself never waits on geocoding.
func (s *Service) UpsertProfile(ctx context.Context, p model.Profile) error {
	if err := s.store.Upsert(ctx, p); err != nil {
		return err
	}
	metrics.UpdateProfilesStored(s.store.Count(ctx))

	if p.Coord != nil || p.City == "" {
		return nil
	}

	// In-flight markers are keyed by user ID; the worker releases the
	// same key after resolution.
	if s.deduper.SeenAndRecord(ctx, p.UserID) {
		metrics.RecordGeocodeDuplicate()
		s.logger.Debug(ctx, "geocode already in flight",
			logger.String("userID", p.UserID),
		)
		return nil
	}

	job := model.GeocodeJob{
		UserID:   p.UserID,
		City:     p.City,
		District: p.District,
	}
	if !s.queue.Enqueue(ctx, job) {
		// Queue full or closed: release the marker so a later upsert
		// can retry. The profile stays usable without a coordinate.
		s.deduper.Unrecord(ctx, p.UserID)
		s.logger.Warn(ctx, "geocode queue rejected job",
			logger.String("userID", p.UserID),
		)
		return nil
	}
	metrics.RecordGeocodeEnqueued()
	return nil
}

// GetProfile returns the stored profile for a user ID.
func (s *Service) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	return s.store.Get(ctx, userID)
}

// Recommend returns the subject's top matches among opposite-gender
// candidates, best first. limit <= 0 falls back to the configured
// default.
func (s *Service) Recommend(ctx context.Context, userID string, limit int) ([]types.Match, error) {
	start := time.Now()
	metrics.RecordRecommendRequest()

	subject, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.CandidatesFor(ctx, subject)
	if err != nil {
		return nil, err
	}

	ranker := s.ranker
	if limit > 0 && limit != s.topK {
		opts := []rank.Option{
			rank.WithTopK(limit),
			rank.WithLogger(s.logger),
		}
		if s.rankConcurrency > 0 {
			opts = append(opts, rank.WithConcurrency(s.rankConcurrency))
		}
		ranker = rank.New(s.compat, s.interest, opts...)
	}

	matches := ranker.Recommend(ctx, subject, candidates)
	metrics.RecordRecommendLatency(float64(time.Since(start).Milliseconds()))
	return matches, nil
}

// ScorePair computes the full score breakdown between two users.
func (s *Service) ScorePair(ctx context.Context, userID, targetID string) (types.Match, error) {
	subject, err := s.store.Get(ctx, userID)
	if err != nil {
		return types.Match{}, err
	}
	target, err := s.store.Get(ctx, targetID)
	if err != nil {
		return types.Match{}, err
	}

	pair := rank.New(s.compat, s.interest,
		rank.WithTopK(1),
		rank.WithLogger(s.logger),
	)
	matches := pair.Recommend(ctx, subject, []model.Profile{target})
	if len(matches) == 0 {
		return types.Match{}, fmt.Errorf("score pair %s/%s: %w", userID, targetID, ErrScoreFailed)
	}
	return matches[0], nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"topK":        s.topK,
	}

	if s.started {
		queueLen := s.queue.Len(ctx)
		totalProfiles := s.store.Count(ctx)

		stats["queueLength"] = queueLen
		stats["totalProfiles"] = totalProfiles
		stats["geocodeInFlight"] = s.deduper.Size()

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateProfilesStored(totalProfiles)
		if s.queueSize > 0 {
			metrics.UpdateQueueUtilization(float64(queueLen) / float64(s.queueSize))
		}
	}

	return stats
}
