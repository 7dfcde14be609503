// Package repository defines the profile store interface and errors.
package repository

import (
	"context"

	"github.com/maeumlab/gunghap/internal/domain/model"
)

// Store provides read/write access to matching profiles. The core
// scorers treat everything it returns as read-only values.
type Store interface {
	// Upsert inserts or replaces a profile keyed by its user ID.
	Upsert(ctx context.Context, p model.Profile) error

	// Get returns the profile for a user ID.
	// Returns ErrNotFound when the user is unknown.
	Get(ctx context.Context, userID string) (model.Profile, error)

	// SetCoordinate writes a resolved coordinate back onto a stored
	// profile. Used by the geocode worker.
	SetCoordinate(ctx context.Context, userID string, coord model.Coordinate) error

	// CandidatesFor returns the candidate pool for a subject: every
	// stored profile of the opposite gender, excluding the subject.
	// Eligibility beyond that (blocks, previous swipes) is the
	// caller's concern.
	CandidatesFor(ctx context.Context, subject model.Profile) ([]model.Profile, error)

	// Count returns the number of stored profiles.
	Count(ctx context.Context) int
}
