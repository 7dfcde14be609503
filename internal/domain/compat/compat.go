// Package compat scores the saju compatibility of two birth moments.
package compat

import (
	"context"
	"math"

	"github.com/maeumlab/gunghap/internal/domain/model"
	"github.com/maeumlab/gunghap/internal/domain/saju"
	"github.com/maeumlab/gunghap/pkg/logger"
	"github.com/maeumlab/gunghap/pkg/metrics"
)

// Relation scores for one pillar component.
const (
	relationHarmony = 10 // 합: stem combination or branch six-harmony
	relationSame    = 6
	relationDefault = 4
)

// Fixed component weights. The day pillar dominates because it is
// considered the most personally significant one.
const (
	weightYearStem    = 0.6
	weightDayStem     = 4.5
	weightYearBranch  = 1.0
	weightMonthBranch = 1.5
	weightDayBranch   = 4.5

	// maxWeightedSum is the raw sum when all five components score 10.
	maxWeightedSum = 121.0

	// DefaultScore is returned when either side lacks the data for a
	// pillar computation. A business rule, not an error path.
	DefaultScore = 50

	maxScore = 100
)

// sixHarmony holds the 육합 branch pairs as unordered 1-based index
// pairs, smaller index first.
var sixHarmony = [6][2]int{{1, 2}, {3, 12}, {4, 11}, {5, 10}, {6, 9}, {7, 8}}

// pillarVector is the 1-based integer form of the six scored symbols.
type pillarVector struct {
	yearStem    int
	yearBranch  int
	monthStem   int
	monthBranch int
	dayStem     int
	dayBranch   int
}

// Scorer computes pairwise saju compatibility.
type Scorer struct {
	predictor *lazyPredictor
	logger    logger.Logger
}

// NewScorer creates a compatibility scorer with configuration options.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		predictor: newLazyPredictor(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns a compatibility score in [0,100] for the two birth
// moments. When either side is missing year/month/day or carries an
// invalid date, the neutral DefaultScore is returned. The relation
// checks are symmetric, so Score(a,b) == Score(b,a).
func (s *Scorer) Score(ctx context.Context, a, b model.BirthInfo) int {
	va, okA := vectorOf(a)
	vb, okB := vectorOf(b)
	if !okA || !okB {
		metrics.RecordSajuFallback()
		if s.logger != nil {
			s.logger.Debug(ctx, "insufficient birth data, using default score",
				logger.Bool("subject_ok", okA),
				logger.Bool("candidate_ok", okB),
			)
		}
		return DefaultScore
	}

	scoreYS := stemRelation(va.yearStem, vb.yearStem)
	scoreDS := stemRelation(va.dayStem, vb.dayStem)
	scoreYB := branchRelation(va.yearBranch, vb.yearBranch)
	scoreMB := branchRelation(va.monthBranch, vb.monthBranch)
	scoreDB := branchRelation(va.dayBranch, vb.dayBranch)

	weighted := weightYearStem*float64(scoreYS) +
		weightDayStem*float64(scoreDS) +
		weightYearBranch*float64(scoreYB) +
		weightMonthBranch*float64(scoreMB) +
		weightDayBranch*float64(scoreDB)

	final := int(math.Floor(weighted / maxWeightedSum * maxScore))
	if final < 0 {
		final = 0
	}
	if final > maxScore {
		final = maxScore
	}

	// Diagnostic warm-up of the optional external model. Never feeds
	// back into the score.
	s.predictor.probe(ctx, va.dayStem, vb.dayStem)

	return final
}

// vectorOf derives the 1-based symbol indices for a birth moment.
// Returns ok=false when year/month/day are missing or the date is not
// a real calendar date.
func vectorOf(b model.BirthInfo) (pillarVector, bool) {
	if !b.Complete() {
		return pillarVector{}, false
	}
	ps, err := saju.Calculate(*b.Year, *b.Month, *b.Day, b.HourOrZero(), b.MinuteOrZero())
	if err != nil {
		return pillarVector{}, false
	}
	return pillarVector{
		yearStem:    ps.Year.StemIdx + 1,
		yearBranch:  ps.Year.BranchIdx + 1,
		monthStem:   ps.Month.StemIdx + 1,
		monthBranch: ps.Month.BranchIdx + 1,
		dayStem:     ps.Day.StemIdx + 1,
		dayBranch:   ps.Day.BranchIdx + 1,
	}, true
}

// stemRelation scores two 1-based stem indices. Indices five apart form
// a 천간합 pair.
func stemRelation(a, b int) int {
	if abs(a-b) == 5 {
		return relationHarmony
	}
	if a == b {
		return relationSame
	}
	return relationDefault
}

// branchRelation scores two 1-based branch indices against the 육합
// pairs.
func branchRelation(a, b int) int {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, p := range sixHarmony {
		if p[0] == lo && p[1] == hi {
			return relationHarmony
		}
	}
	if a == b {
		return relationSame
	}
	return relationDefault
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
