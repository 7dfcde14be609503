package compat_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/maeumlab/gunghap/internal/domain/compat"
	"github.com/maeumlab/gunghap/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func birth(year, month, day, hour, minute int) model.BirthInfo {
	return model.BirthInfo{
		Year:   &year,
		Month:  &month,
		Day:    &day,
		Hour:   &hour,
		Minute: &minute,
	}
}

func TestScore(t *testing.T) {
	Convey("Given a compatibility scorer", t, func() {
		scorer := compat.NewScorer()
		ctx := context.Background()

		a := birth(1995, 3, 15, 9, 30)
		b := birth(1996, 8, 20, 14, 0)

		Convey("When scoring two complete birth moments", func() {
			score := scorer.Score(ctx, a, b)

			Convey("Then the score is within [0,100]", func() {
				So(score, ShouldBeGreaterThanOrEqualTo, 0)
				So(score, ShouldBeLessThanOrEqualTo, 100)
			})

			Convey("And the score is symmetric", func() {
				So(scorer.Score(ctx, b, a), ShouldEqual, score)
			})
		})

		Convey("When both subjects share the same birth moment", func() {
			score := scorer.Score(ctx, a, a)

			Convey("Then every component scores 6 and the total is 60", func() {
				// 12.1 * 6 / 121 * 100 = 60
				So(score, ShouldEqual, 60)
			})
		})

		Convey("When a subject is missing required fields", func() {
			incomplete := model.BirthInfo{}

			Convey("Then the neutral default score is returned", func() {
				So(scorer.Score(ctx, incomplete, b), ShouldEqual, compat.DefaultScore)
				So(scorer.Score(ctx, a, incomplete), ShouldEqual, compat.DefaultScore)
				So(scorer.Score(ctx, incomplete, incomplete), ShouldEqual, compat.DefaultScore)
			})
		})

		Convey("When a subject carries an impossible date", func() {
			bad := birth(1995, 2, 30, 0, 0)

			Convey("Then the neutral default score is returned", func() {
				So(scorer.Score(ctx, bad, b), ShouldEqual, compat.DefaultScore)
			})
		})

		Convey("When the birth time is unknown", func() {
			y, m, d := 1995, 3, 15
			unknown := model.BirthInfo{Year: &y, Month: &m, Day: &d, TimeUnknown: true}

			Convey("Then scoring still succeeds", func() {
				score := scorer.Score(ctx, unknown, b)
				So(score, ShouldBeGreaterThanOrEqualTo, 0)
				So(score, ShouldBeLessThanOrEqualTo, 100)
			})
		})
	})
}

type countingPredictor struct {
	calls atomic.Int64
}

func (p *countingPredictor) Predict(_ context.Context, _, _ int) (float64, error) {
	p.calls.Add(1)
	return 0.5, nil
}

type panickingPredictor struct{}

func (panickingPredictor) Predict(_ context.Context, _, _ int) (float64, error) {
	panic("model exploded")
}

func TestPredictorProbe(t *testing.T) {
	Convey("Given a scorer with an installed predictor", t, func() {
		ctx := context.Background()
		a := birth(1995, 3, 15, 9, 30)
		b := birth(1996, 8, 20, 14, 0)

		Convey("When the predictor loads successfully", func() {
			var loads atomic.Int64
			p := &countingPredictor{}
			scorer := compat.NewScorer(compat.WithPredictorLoader(
				func(_ context.Context) (compat.Predictor, error) {
					loads.Add(1)
					return p, nil
				},
			))

			withoutModel := compat.NewScorer().Score(ctx, a, b)
			withModel := scorer.Score(ctx, a, b)
			_ = scorer.Score(ctx, a, b)

			Convey("Then the model is loaded exactly once", func() {
				So(loads.Load(), ShouldEqual, 1)
				So(p.calls.Load(), ShouldEqual, 2)
			})

			Convey("And the model never alters the score", func() {
				So(withModel, ShouldEqual, withoutModel)
			})
		})

		Convey("When the predictor fails to load", func() {
			scorer := compat.NewScorer(compat.WithPredictorLoader(
				func(_ context.Context) (compat.Predictor, error) {
					return nil, errors.New("model file missing")
				},
			))

			Convey("Then scoring succeeds regardless", func() {
				So(scorer.Score(ctx, a, b), ShouldBeGreaterThanOrEqualTo, 0)
			})
		})

		Convey("When the predictor panics on invoke", func() {
			scorer := compat.NewScorer(compat.WithPredictorLoader(
				func(_ context.Context) (compat.Predictor, error) {
					return panickingPredictor{}, nil
				},
			))

			Convey("Then the panic is swallowed and scoring succeeds", func() {
				So(func() { scorer.Score(ctx, a, b) }, ShouldNotPanic)
			})
		})
	})
}
