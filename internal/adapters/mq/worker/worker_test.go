package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/maeumlab/gunghap/internal/adapters/mq/queue"
	"github.com/maeumlab/gunghap/internal/adapters/mq/worker"
	"github.com/maeumlab/gunghap/internal/domain/dedupe"
	"github.com/maeumlab/gunghap/internal/domain/geo"
	"github.com/maeumlab/gunghap/internal/domain/model"
	"github.com/maeumlab/gunghap/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// recordingUpdater captures coordinate write-backs.
type recordingUpdater struct {
	mu     sync.Mutex
	coords map[string]model.Coordinate
}

func newRecordingUpdater() *recordingUpdater {
	return &recordingUpdater{coords: make(map[string]model.Coordinate)}
}

func (u *recordingUpdater) SetCoordinate(_ context.Context, userID string, coord model.Coordinate) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.coords[userID] = coord
	return nil
}

func (u *recordingUpdater) get(userID string) (model.Coordinate, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.coords[userID]
	return c, ok
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}

func TestWorkerResolvesJobs(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	Convey("Given a running geocode worker pool", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewInMemoryQueue(queue.WithCapacity(16))
		updater := newRecordingUpdater()
		tracker := dedupe.NewInMemoryDeduper()

		pool := worker.NewPool(2, q, geo.NewStaticGeocoder(), updater, tracker)
		pool.Start(ctx)
		defer pool.Stop()

		Convey("When a resolvable job is enqueued", func() {
			tracker.SeenAndRecord(ctx, "u1")
			ok := q.Enqueue(ctx, worker.Job{UserID: "u1", City: "서울시", District: "강남구"})
			So(ok, ShouldBeTrue)

			Convey("Then the coordinate is written back", func() {
				So(waitFor(func() bool { _, ok := updater.get("u1"); return ok }), ShouldBeTrue)
				coord, _ := updater.get("u1")
				So(coord.Lat, ShouldAlmostEqual, 37.5172, 1e-4)
			})

			Convey("And the in-flight marker is released", func() {
				So(waitFor(func() bool { return tracker.Size() == 0 }), ShouldBeTrue)
			})
		})

		Convey("When the district is unknown", func() {
			tracker.SeenAndRecord(ctx, "u2")
			ok := q.Enqueue(ctx, worker.Job{UserID: "u2", City: "서울시", District: "없는구"})
			So(ok, ShouldBeTrue)

			Convey("Then no coordinate is written but the marker is released", func() {
				So(waitFor(func() bool { return tracker.Size() == 0 }), ShouldBeTrue)
				_, found := updater.get("u2")
				So(found, ShouldBeFalse)
			})
		})
	})
}

func TestPoolStop(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	Convey("Given a started pool", t, func() {
		ctx := context.Background()
		q := queue.NewInMemoryQueue()
		pool := worker.NewPool(3, q, geo.NewStaticGeocoder(), newRecordingUpdater(), nil)
		pool.Start(ctx)

		Convey("When stopping it twice", func() {
			So(func() {
				pool.Stop()
				pool.Stop()
			}, ShouldNotPanic)
		})
	})
}
