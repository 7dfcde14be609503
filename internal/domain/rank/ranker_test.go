package rank_test

import (
	"context"
	"testing"

	"github.com/maeumlab/gunghap/internal/domain/compat"
	"github.com/maeumlab/gunghap/internal/domain/interest"
	"github.com/maeumlab/gunghap/internal/domain/model"
	"github.com/maeumlab/gunghap/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(n int) *int { return &n }

func profile(id string, year, month, day int, hobbies []string, coord *model.Coordinate) model.Profile {
	return model.Profile{
		UserID:   id,
		Nickname: "u-" + id,
		Gender:   "여성",
		Birth: model.BirthInfo{
			Year:   intPtr(year),
			Month:  intPtr(month),
			Day:    intPtr(day),
			Hour:   intPtr(12),
			Minute: intPtr(0),
		},
		Hobbies: hobbies,
		Coord:   coord,
	}
}

// fixedCompat returns a preconfigured score per candidate birth year.
type fixedCompat struct {
	scores map[int]int
}

func (f fixedCompat) Score(_ context.Context, _, b model.BirthInfo) int {
	if b.Year == nil {
		return 50
	}
	if s, ok := f.scores[*b.Year]; ok {
		return s
	}
	return 50
}

// panickingCompat panics for one marker year.
type panickingCompat struct {
	badYear int
}

func (p panickingCompat) Score(_ context.Context, _, b model.BirthInfo) int {
	if b.Year != nil && *b.Year == p.badYear {
		panic("corrupt birth record")
	}
	return 70
}

func TestRecommend(t *testing.T) {
	Convey("Given a ranker over real scorers", t, func() {
		ctx := context.Background()
		ranker := rank.New(compat.NewScorer(), interest.NewScorer())

		subjectCoord := &model.Coordinate{Lat: 37.5172, Lon: 127.0473}
		subject := profile("me", 1995, 3, 15, []string{"골프", "등산", "영화"}, subjectCoord)
		subject.Gender = "남성"

		Convey("When ranking a nearby candidate with shared hobbies", func() {
			nearby := &model.Coordinate{Lat: 37.4837, Lon: 127.0324} // ~4km away
			candidate := profile("c1", 1996, 8, 20, []string{"골프", "등산", "영화", "캠핑"}, nearby)
			matches := ranker.Recommend(ctx, subject, []model.Profile{candidate})

			So(matches, ShouldHaveLength, 1)
			m := matches[0]

			Convey("Then the breakdown follows the fixed weights", func() {
				So(m.Scores.Saju, ShouldBeBetweenOrEqual, 0, 100)
				So(m.Scores.Interest, ShouldBeGreaterThan, 0)
				So(m.Scores.Distance, ShouldEqual, 100) // within 20km, tier 10

				want := 0.4*float64(m.Scores.Saju) + 0.5*float64(m.Scores.Interest) + 0.1*float64(m.Scores.Distance)
				So(m.TotalScore, ShouldAlmostEqual, want, 0.05)
			})

			Convey("And the info fields are populated", func() {
				So(m.Info.CommonHobbies, ShouldResemble, []string{"골프", "등산", "영화"})
				So(m.Info.DistanceKM, ShouldEndWith, "km")
			})
		})

		Convey("When a candidate has no coordinate", func() {
			candidate := profile("c2", 1996, 8, 20, []string{"골프"}, nil)
			matches := ranker.Recommend(ctx, subject, []model.Profile{candidate})

			So(matches, ShouldHaveLength, 1)

			Convey("Then the distance degrades to the lowest tier", func() {
				So(matches[0].Scores.Distance, ShouldEqual, 50)
				So(matches[0].Info.DistanceKM, ShouldEqual, "알수없음")
			})
		})

		Convey("When the candidate set is empty", func() {
			So(ranker.Recommend(ctx, subject, nil), ShouldBeEmpty)
		})
	})
}

func TestRecommendOrderingAndTruncation(t *testing.T) {
	Convey("Given candidates with controlled compatibility scores", t, func() {
		ctx := context.Background()
		scores := map[int]int{1990: 20, 1991: 90, 1992: 60, 1993: 90}
		ranker := rank.New(fixedCompat{scores: scores}, interest.NewScorer())

		subject := profile("me", 1995, 3, 15, nil, nil)
		candidates := []model.Profile{
			profile("low", 1990, 1, 1, nil, nil),
			profile("high-a", 1991, 1, 1, nil, nil),
			profile("mid", 1992, 1, 1, nil, nil),
			profile("high-b", 1993, 1, 1, nil, nil),
		}

		Convey("When ranking all four", func() {
			matches := ranker.Recommend(ctx, subject, candidates)

			Convey("Then they are sorted by total descending", func() {
				So(matches, ShouldHaveLength, 4)
				for i := 1; i < len(matches); i++ {
					So(matches[i-1].TotalScore, ShouldBeGreaterThanOrEqualTo, matches[i].TotalScore)
				}
			})

			Convey("And ties keep candidate insertion order", func() {
				So(matches[0].UserID, ShouldEqual, "high-a")
				So(matches[1].UserID, ShouldEqual, "high-b")
			})
		})

		Convey("When top-K is smaller than the candidate set", func() {
			small := rank.New(fixedCompat{scores: scores}, interest.NewScorer(), rank.WithTopK(2))
			matches := small.Recommend(ctx, subject, candidates)

			Convey("Then only the best two remain", func() {
				So(matches, ShouldHaveLength, 2)
				So(matches[0].UserID, ShouldEqual, "high-a")
				So(matches[1].UserID, ShouldEqual, "high-b")
			})
		})
	})
}

func TestRecommendFailureIsolation(t *testing.T) {
	Convey("Given a scorer that panics for one candidate", t, func() {
		ctx := context.Background()
		ranker := rank.New(panickingCompat{badYear: 1992}, interest.NewScorer(), rank.WithConcurrency(2))

		subject := profile("me", 1995, 3, 15, nil, nil)
		candidates := []model.Profile{
			profile("ok-1", 1990, 1, 1, nil, nil),
			profile("bad", 1992, 1, 1, nil, nil),
			profile("ok-2", 1993, 1, 1, nil, nil),
		}

		Convey("When ranking the batch", func() {
			result := ranker.Recommend(ctx, subject, candidates)

			Convey("Then the bad candidate is dropped and the rest survive", func() {
				So(result, ShouldHaveLength, 2)
				ids := []string{result[0].UserID, result[1].UserID}
				So(ids, ShouldContain, "ok-1")
				So(ids, ShouldContain, "ok-2")
			})
		})
	})
}
