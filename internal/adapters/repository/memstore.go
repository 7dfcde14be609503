package repository

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/maeumlab/gunghap/internal/domain/model"
	"github.com/maeumlab/gunghap/pkg/metrics"
)

// defaultShardCount spreads lock contention across independent maps.
const defaultShardCount = 8

// shard is one lock-guarded slice of the profile space.
type shard struct {
	mu       sync.RWMutex
	profiles map[string]model.Profile
}

// MemStore implements Store with sharded in-memory maps.
type MemStore struct {
	shards []*shard
}

// NewMemStore creates an in-memory profile store with configuration
// options.
func NewMemStore(opts ...Option) *MemStore {
	cfg := &storeConfig{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &MemStore{
		shards: make([]*shard, cfg.shardCount),
	}
	for i := range s.shards {
		s.shards[i] = &shard{profiles: make(map[string]model.Profile)}
	}
	return s
}

// shardFor picks the shard owning a user ID.
func (s *MemStore) shardFor(userID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return s.shards[int(h.Sum32())%len(s.shards)]
}

// Upsert inserts or replaces a profile.
func (s *MemStore) Upsert(ctx context.Context, p model.Profile) error {
	if p.UserID == "" {
		return ErrMissingUserID
	}
	sh := s.shardFor(p.UserID)
	sh.mu.Lock()
	sh.profiles[p.UserID] = p
	sh.mu.Unlock()

	metrics.UpdateProfilesStored(s.Count(ctx))
	return nil
}

// Get returns the profile for a user ID.
func (s *MemStore) Get(_ context.Context, userID string) (model.Profile, error) {
	sh := s.shardFor(userID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	p, ok := sh.profiles[userID]
	if !ok {
		return model.Profile{}, ErrNotFound
	}
	return p, nil
}

// SetCoordinate writes a resolved coordinate onto a stored profile.
func (s *MemStore) SetCoordinate(_ context.Context, userID string, coord model.Coordinate) error {
	sh := s.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	p, ok := sh.profiles[userID]
	if !ok {
		return ErrNotFound
	}
	c := coord
	p.Coord = &c
	sh.profiles[userID] = p
	return nil
}

// CandidatesFor returns every opposite-gender profile except the
// subject itself.
func (s *MemStore) CandidatesFor(_ context.Context, subject model.Profile) ([]model.Profile, error) {
	target := oppositeGender(subject.Gender)
	if target == "" {
		return nil, nil
	}

	var out []model.Profile
	for _, sh := range s.shards {
		sh.mu.RLock()
		for id, p := range sh.profiles {
			if id == subject.UserID || p.Gender != target {
				continue
			}
			out = append(out, p)
		}
		sh.mu.RUnlock()
	}
	return out, nil
}

// Count returns the number of stored profiles.
func (s *MemStore) Count(_ context.Context) int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.profiles)
		sh.mu.RUnlock()
	}
	return total
}

// oppositeGender mirrors the matching policy of the original service:
// 남성 matches 여성 and vice versa. Unknown gender yields no pool.
func oppositeGender(gender string) string {
	switch gender {
	case "남성":
		return "여성"
	case "여성":
		return "남성"
	default:
		return ""
	}
}
