package compat

import "github.com/maeumlab/gunghap/pkg/logger"

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithPredictorLoader installs the loader for the optional external
// day-stem model. The loader runs at most once, on first score.
func WithPredictorLoader(load PredictorLoader) Option {
	return func(s *Scorer) {
		if load != nil {
			s.predictor = newLazyPredictor(load)
		}
	}
}

// WithLogger sets a custom logger for the scorer.
func WithLogger(l logger.Logger) Option {
	return func(s *Scorer) {
		if l != nil {
			s.logger = l
		}
	}
}
