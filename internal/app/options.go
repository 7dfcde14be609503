package app

import (
	"github.com/maeumlab/gunghap/internal/domain/geo"
	"github.com/maeumlab/gunghap/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of geocode worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the geocode queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the in-flight geocode cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithShardCount sets the number of profile store shards.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}

// WithTopK sets the default number of matches per recommendation.
func WithTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithRankConcurrency bounds concurrent candidate scoring per request.
func WithRankConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.rankConcurrency = n
		}
	}
}

// WithGeocoder replaces the static district geocoder.
func WithGeocoder(g geo.Geocoder) Option {
	return func(s *Service) {
		if g != nil {
			s.geocoder = g
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
