package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/maeumlab/gunghap/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeenAndRecord(t *testing.T) {
	Convey("Given an in-memory deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When recording a new ID", func() {
			seen := d.SeenAndRecord(ctx, "user-1")

			Convey("Then it reports not seen and tracks it", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And recording it again reports seen", func() {
				So(d.SeenAndRecord(ctx, "user-1"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When unrecording an ID", func() {
			d.SeenAndRecord(ctx, "user-1")
			d.Unrecord(ctx, "user-1")

			Convey("Then it can be recorded again", func() {
				So(d.SeenAndRecord(ctx, "user-1"), ShouldBeFalse)
			})
		})

		Convey("When unrecording an unknown ID", func() {
			So(func() { d.Unrecord(ctx, "ghost") }, ShouldNotPanic)
			So(d.Size(), ShouldEqual, 0)
		})
	})
}

func TestBoundedEviction(t *testing.T) {
	Convey("Given a deduper bounded to 3 entries", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))
		ctx := context.Background()

		Convey("When recording four IDs", func() {
			for i := 1; i <= 4; i++ {
				d.SeenAndRecord(ctx, fmt.Sprintf("user-%d", i))
			}

			Convey("Then the oldest entry is evicted", func() {
				So(d.Size(), ShouldEqual, 3)
				So(d.SeenAndRecord(ctx, "user-1"), ShouldBeFalse) // evicted, so recordable
			})
		})
	})
}

func TestConcurrentAccess(t *testing.T) {
	Convey("Given concurrent recorders", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When many goroutines race on the same ID", func() {
			const goroutines = 32
			var wg sync.WaitGroup
			newlyRecorded := make(chan bool, goroutines)

			for i := 0; i < goroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if !d.SeenAndRecord(ctx, "contested") {
						newlyRecorded <- true
					}
				}()
			}
			wg.Wait()
			close(newlyRecorded)

			Convey("Then exactly one goroutine records it", func() {
				So(len(newlyRecorded), ShouldEqual, 1)
				So(d.Size(), ShouldEqual, 1)
			})
		})
	})
}
