// Package model contains domain models passed between layers.
package model

// BirthInfo holds a birth moment as entered by the user. Year, month and
// day are required for pillar computation; hour and minute may be absent
// when the user does not know their birth time.
type BirthInfo struct {
	Year   *int
	Month  *int
	Day    *int
	Hour   *int
	Minute *int
	// TimeUnknown marks the hour/minute as user-declared unknown. The
	// hour pillar computed from the 0/0 substitute is kept but carries
	// no meaning.
	TimeUnknown bool
}

// Complete reports whether the fields required for pillar computation
// are present.
func (b BirthInfo) Complete() bool {
	return b.Year != nil && b.Month != nil && b.Day != nil
}

// HourOrZero returns the hour, substituting 0 when absent.
func (b BirthInfo) HourOrZero() int {
	if b.Hour == nil {
		return 0
	}
	return *b.Hour
}

// MinuteOrZero returns the minute, substituting 0 when absent.
func (b BirthInfo) MinuteOrZero() int {
	if b.Minute == nil {
		return 0
	}
	return *b.Minute
}

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Profile is the matching view of a user. It is supplied by the profile
// store and treated as a read-only value during scoring.
type Profile struct {
	UserID   string
	Nickname string
	Gender   string // "남성" or "여성"

	Birth BirthInfo

	// Hobbies is the canonical ordered tag list. Normalization from
	// loosely-typed client input happens at the HTTP boundary; scoring
	// only ever sees this form.
	Hobbies []string

	MBTI string
	Job  string

	City     string // 시/도, e.g. "서울시"
	District string // 시/군/구, e.g. "강남구"

	// Coord is nil until stored or resolved by the geocode pipeline.
	Coord *Coordinate

	ProfileText string
}

// GeocodeJob asks the geocode worker to resolve a profile's district
// into a coordinate and write it back to the store.
type GeocodeJob struct {
	UserID   string
	City     string
	District string
}
