package seedtool

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerateProfiles(t *testing.T) {
	Convey("Given a batch of generated profiles", t, func() {
		profiles := GenerateProfiles(100, 0.5)

		Convey("Then user IDs should be unique", func() {
			seen := make(map[string]struct{}, len(profiles))
			for _, p := range profiles {
				_, dup := seen[p.UserID]
				So(dup, ShouldBeFalse)
				seen[p.UserID] = struct{}{}
			}
		})

		Convey("And genders should alternate", func() {
			So(profiles[0].Gender, ShouldEqual, "남성")
			So(profiles[1].Gender, ShouldEqual, "여성")
			So(profiles[2].Gender, ShouldEqual, "남성")
		})

		Convey("And every profile should pass basic validity", func() {
			for _, p := range profiles {
				So(p.UserID, ShouldNotBeEmpty)
				So(p.Gender, ShouldBeIn, "남성", "여성")
				So(p.Birth.Year, ShouldBeBetweenOrEqual, 1975, 2005)
				So(p.Birth.Month, ShouldBeBetweenOrEqual, 1, 12)
				So(p.Birth.Day, ShouldBeBetweenOrEqual, 1, 28)
				So(len(p.Hobbies), ShouldBeBetweenOrEqual, 1, 5)
				So(p.City, ShouldNotBeEmpty)
				if !p.Birth.TimeUnknown {
					So(p.Birth.Hour, ShouldNotBeNil)
				}
				if p.Lat != nil {
					So(p.Lon, ShouldNotBeNil)
				}
			}
		})

		Convey("And hobbies should not repeat within a profile", func() {
			for _, p := range profiles {
				seen := make(map[string]struct{}, len(p.Hobbies))
				for _, h := range p.Hobbies {
					_, dup := seen[h]
					So(dup, ShouldBeFalse)
					seen[h] = struct{}{}
				}
			}
		})
	})

	Convey("Given a coordinate ratio of zero", t, func() {
		profiles := GenerateProfiles(50, 0)

		Convey("Then no profile should carry explicit coordinates", func() {
			for _, p := range profiles {
				So(p.Lat, ShouldBeNil)
				So(p.Lon, ShouldBeNil)
			}
		})
	})
}
