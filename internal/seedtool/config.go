// Package seedtool generates realistic random profiles and submits
// them to a running service instance. It exists for load testing and
// local demos.
package seedtool

import (
	"time"
)

// Config controls a seeding run.
type Config struct {
	// BaseURL of the target service, e.g. http://localhost:8080.
	BaseURL string

	// NumProfiles to generate and submit.
	NumProfiles int

	// Workers submitting concurrently.
	Workers int

	// Timeout per HTTP request.
	Timeout time.Duration

	// CoordRatio is the fraction of profiles submitted with explicit
	// coordinates; the rest carry only city/district and exercise the
	// async geocode pipeline.
	CoordRatio float64

	// Verify probes /recommend for a sample of seeded users after
	// submission and checks ordering and shape.
	Verify bool

	// Verbose enables per-request logging.
	Verbose bool
}

// Stats summarizes the outcome of one run.
type Stats struct {
	ProfilesGenerated int
	ProfilesSubmitted int
	ProfilesCreated   int
	ProfilesFailed    int
	ProbesPassed      int
	Elapsed           time.Duration
}
