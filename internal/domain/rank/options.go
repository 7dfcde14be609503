package rank

import "github.com/maeumlab/gunghap/pkg/logger"

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithTopK bounds the number of returned matches.
func WithTopK(k int) Option {
	return func(r *Ranker) {
		if k > 0 {
			r.topK = k
		}
	}
}

// WithConcurrency bounds the per-candidate scoring fan-out.
func WithConcurrency(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for the ranker.
func WithLogger(l logger.Logger) Option {
	return func(r *Ranker) {
		if l != nil {
			r.logger = l
		}
	}
}
