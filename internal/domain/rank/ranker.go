// Package rank turns per-pair scores into a bounded top-K match list.
package rank

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/maeumlab/gunghap/internal/domain/geo"
	"github.com/maeumlab/gunghap/internal/domain/model"
	"github.com/maeumlab/gunghap/internal/domain/types"
	"github.com/maeumlab/gunghap/pkg/logger"
	"github.com/maeumlab/gunghap/pkg/metrics"
)

// Default ranking configuration constants.
const (
	// DefaultTopK bounds the returned list.
	DefaultTopK = 10

	// defaultConcurrency bounds the per-candidate fan-out.
	defaultConcurrency = 8

	// Total-score weights. Interest leads, saju close behind, distance
	// is a tiebreaker-sized nudge.
	weightSaju     = 0.4
	weightInterest = 0.5
	weightGeo      = 0.1

	// geoScale lifts the 5-10 proximity tier onto a 100-point scale.
	geoScale = 10
)

// CompatScorer computes the saju compatibility of two birth moments.
type CompatScorer interface {
	Score(ctx context.Context, a, b model.BirthInfo) int
}

// InterestScorer computes hobby affinity for two canonical tag lists.
type InterestScorer interface {
	Score(tagsA, tagsB []string) int
}

// Ranker scores a candidate set against one subject and returns the
// top-K matches.
type Ranker struct {
	compat   CompatScorer
	interest InterestScorer

	topK        int
	concurrency int

	logger logger.Logger
}

// New creates a Ranker with configuration options.
func New(compatScorer CompatScorer, interestScorer InterestScorer, opts ...Option) *Ranker {
	r := &Ranker{
		compat:      compatScorer,
		interest:    interestScorer,
		topK:        DefaultTopK,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend scores every candidate against the subject, sorts by total
// descending and truncates to the configured top-K. Candidates are
// evaluated concurrently; a failure while scoring one candidate drops
// that candidate only and never aborts the batch. Ties keep candidate
// insertion order (stable sort), which is accepted behavior rather
// than a bug.
func (r *Ranker) Recommend(ctx context.Context, subject model.Profile, candidates []model.Profile) []types.Match {
	// Indexed slots keep insertion order deterministic regardless of
	// goroutine completion order.
	results := make([]*types.Match, len(candidates))

	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	for i := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			m, err := r.evaluate(ctx, subject, candidates[idx])
			if err != nil {
				metrics.RecordCandidateSkipped()
				if r.logger != nil {
					r.logger.Warn(ctx, "skipping candidate after scoring failure",
						logger.String("candidate", candidates[idx].UserID),
						logger.Error(err),
					)
				}
				return
			}
			metrics.RecordCandidateScored()
			results[idx] = &m
		}(i)
	}
	wg.Wait()

	ranked := make([]types.Match, 0, len(candidates))
	for _, m := range results {
		if m != nil {
			ranked = append(ranked, *m)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	if len(ranked) > r.topK {
		ranked = ranked[:r.topK]
	}
	return ranked
}

// evaluate computes one candidate's breakdown. Panics inside any
// scorer are converted to an error so one bad record cannot take the
// batch down.
func (r *Ranker) evaluate(ctx context.Context, subject, candidate model.Profile) (m types.Match, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("candidate evaluation panicked: %v", rec)
		}
	}()

	sajuScore := r.compat.Score(ctx, subject.Birth, candidate.Birth)
	interestScore := r.interest.Score(subject.Hobbies, candidate.Hobbies)

	distKM := geo.Distance(subject.Coord, candidate.Coord)
	geoScore := geo.ProximityScore(distKM) * geoScale

	total := weightSaju*float64(sajuScore) +
		weightInterest*float64(interestScore) +
		weightGeo*float64(geoScore)

	distanceText := "알수없음"
	if subject.Coord != nil && candidate.Coord != nil {
		distanceText = fmt.Sprintf("%.1fkm", distKM)
	}

	return types.Match{
		UserID:     candidate.UserID,
		Nickname:   candidate.Nickname,
		Gender:     candidate.Gender,
		MBTI:       candidate.MBTI,
		Job:        candidate.Job,
		Location:   location(candidate),
		TotalScore: round1(total),
		Scores: types.Scores{
			Saju:     sajuScore,
			Interest: interestScore,
			Distance: geoScore,
		},
		Info: types.MatchInfo{
			DistanceKM:    distanceText,
			CommonHobbies: commonHobbies(subject.Hobbies, candidate.Hobbies),
		},
		ProfileText: candidate.ProfileText,
	}, nil
}

func location(p model.Profile) string {
	if p.City == "" {
		return ""
	}
	if p.District == "" {
		return p.City
	}
	return p.City + " " + p.District
}

// commonHobbies intersects the two tag lists, preserving the subject's
// order.
func commonHobbies(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, t := range b {
		inB[t] = struct{}{}
	}
	common := make([]string, 0)
	seen := make(map[string]struct{})
	for _, t := range a {
		if _, ok := inB[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		common = append(common, t)
	}
	return common
}

// round1 rounds to one decimal place, the precision exposed by the API.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
