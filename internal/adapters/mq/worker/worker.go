// Package worker defines the asynchronous geocode resolution workers.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/maeumlab/gunghap/internal/domain/model"
	"github.com/maeumlab/gunghap/pkg/logger"
	"github.com/maeumlab/gunghap/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount    = 2
	workerShutdownTimeout = 5 * time.Second
)

// Job is what workers read off the queue.
type Job = model.GeocodeJob

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Job
}

// Resolver turns a city/district pair into a coordinate. Usually the
// static table geocoder; may be an external API client.
type Resolver interface {
	Resolve(ctx context.Context, city, district string) (model.Coordinate, error)
}

// Updater writes a resolved coordinate back onto a stored profile.
type Updater interface {
	SetCoordinate(ctx context.Context, userID string, coord model.Coordinate) error
}

// Tracker releases a job's in-flight marker once it has been handled.
type Tracker interface {
	Unrecord(ctx context.Context, id string)
}

// Worker consumes geocode jobs until stopped.
type Worker struct {
	queue    Queue
	resolver Resolver
	updater  Updater
	tracker  Tracker
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a geocode worker with configuration options.
func NewWorker(q Queue, resolver Resolver, updater Updater, tracker Tracker, opts ...Option) *Worker {
	w := &Worker{
		queue:    q,
		resolver: resolver,
		updater:  updater,
		tracker:  tracker,
		name:     "geocode-worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

// Run starts the worker loop until ctx is canceled or Shutdown is
// called.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			w.processJob(ctx, job)
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "worker shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processJob resolves one job and writes the coordinate back. A job
// that cannot be resolved is dropped; the profile simply keeps its
// distance sentinel behavior.
func (w *Worker) processJob(ctx context.Context, job Job) {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerLatency(float64(time.Since(start).Milliseconds()))
	}()

	// Allow resubmission whatever the outcome.
	if w.tracker != nil {
		defer w.tracker.Unrecord(ctx, job.UserID)
	}

	coord, err := w.resolver.Resolve(ctx, job.City, job.District)
	if err != nil {
		metrics.RecordGeocodeFailed()
		w.logger.Debug(ctx, "geocode resolution failed",
			logger.String("user", job.UserID),
			logger.String("city", job.City),
			logger.String("district", job.District),
			logger.Error(err),
		)
		return
	}

	if err := w.updater.SetCoordinate(ctx, job.UserID, coord); err != nil {
		metrics.RecordGeocodeFailed()
		w.logger.Warn(ctx, "coordinate write-back failed",
			logger.String("user", job.UserID),
			logger.Error(err),
		)
		return
	}

	metrics.RecordGeocodeResolved()
}

// Pool manages multiple geocode workers.
type Pool struct {
	workers  []*Worker
	stopOnce sync.Once
	logger   logger.Logger
}

// NewPool creates a pool of workerCount geocode workers.
func NewPool(workerCount int, q Queue, resolver Resolver, updater Updater, tracker Tracker) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	p := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("geocode-pool"),
	}
	for i := 0; i < workerCount; i++ {
		p.workers[i] = NewWorker(q, resolver, updater, tracker,
			WithName("geocode-worker-"+strconv.Itoa(i)),
		)
	}
	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop gracefully stops all workers. Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		for _, w := range p.workers {
			close(w.shutdown)
		}
		for _, w := range p.workers {
			select {
			case <-w.done:
			case <-time.After(workerShutdownTimeout):
			}
		}
	})
}
