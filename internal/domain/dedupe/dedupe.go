// Package dedupe tracks in-flight geocode jobs so a profile is never
// geocoded twice concurrently.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

// Deduper records pending job IDs to ensure at-most-once enqueueing.
type Deduper interface {
	// SeenAndRecord atomically checks whether id is pending and records
	// it if not. Returns true if id was already pending, false if it
	// was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an ID, allowing the job to be submitted again.
	// Used when a job finished or could not be enqueued.
	Unrecord(ctx context.Context, id string)

	Size() int64
}

// inMemoryDeduper implements Deduper with a bounded map guarded by a
// mutex. When the bound is reached the oldest recorded IDs are evicted
// in insertion order; a dropped ID merely allows an extra geocode.
type inMemoryDeduper struct {
	mu      sync.Mutex
	pending map[string]struct{}
	order   []string
	maxSize int
	size    atomic.Int64
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration
// options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: 50000,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.pending = make(map[string]struct{})
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.pending[id]; exists {
		return true
	}

	if d.maxSize > 0 && len(d.pending) >= d.maxSize {
		d.evictOldest()
	}

	d.pending[id] = struct{}{}
	d.order = append(d.order, id)
	d.size.Add(1)
	return false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.pending[id]; !exists {
		return
	}
	delete(d.pending, id)
	d.size.Add(-1)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Size returns the current number of pending entries.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

// evictOldest removes the earliest recorded ID. Must be called with
// d.mu held.
func (d *inMemoryDeduper) evictOldest() {
	for len(d.order) > 0 {
		id := d.order[0]
		d.order = d.order[1:]
		if _, exists := d.pending[id]; exists {
			delete(d.pending, id)
			d.size.Add(-1)
			return
		}
	}
}
