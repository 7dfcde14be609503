// Package dedupe tracks in-flight geocode jobs.
package dedupe

// Option applies a configuration option to the inMemoryDeduper.
type Option func(*inMemoryDeduper)

// WithMaxSize bounds the number of tracked IDs. Zero or negative means
// unbounded.
func WithMaxSize(size int) Option {
	return func(d *inMemoryDeduper) {
		d.maxSize = size
	}
}
