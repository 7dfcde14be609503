package compat

import (
	"context"
	"sync"
)

// Predictor is an optional external day-stem model. It is probed for
// diagnostics only; its output never reaches a score.
type Predictor interface {
	Predict(ctx context.Context, dayStemA, dayStemB int) (float64, error)
}

// PredictorLoader constructs a Predictor. Loading may be expensive
// (model files, remote handles) so it runs at most once per holder.
type PredictorLoader func(ctx context.Context) (Predictor, error)

// lazyPredictor wraps a PredictorLoader behind a single-initialization
// guard. A failed load leaves the holder empty; scoring proceeds
// without the model.
type lazyPredictor struct {
	once    sync.Once
	load    PredictorLoader
	model   Predictor
	loadErr error
}

func newLazyPredictor(load PredictorLoader) *lazyPredictor {
	return &lazyPredictor{load: load}
}

// get returns the model, triggering at most one load attempt per
// process lifetime. Returns nil when no loader is configured or the
// load failed.
func (l *lazyPredictor) get(ctx context.Context) Predictor {
	if l == nil || l.load == nil {
		return nil
	}
	l.once.Do(func() {
		l.model, l.loadErr = l.load(ctx)
	})
	if l.loadErr != nil {
		return nil
	}
	return l.model
}

// probe runs the best-effort side call with the two day-stem indices.
// The result is discarded and every failure, panics included, is
// swallowed.
func (l *lazyPredictor) probe(ctx context.Context, dayStemA, dayStemB int) {
	defer func() {
		_ = recover()
	}()
	m := l.get(ctx)
	if m == nil {
		return
	}
	_, _ = m.Predict(ctx, dayStemA, dayStemB)
}
