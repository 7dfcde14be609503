// Package saju computes the four pillars (사주팔자) of a birth moment.
//
// The calendar math is a deliberate approximation: year and month
// boundaries are keyed by calendar date rather than true solar terms.
// The approximation is part of the product contract and must not be
// "corrected".
package saju

import (
	"fmt"
	"time"
)

// Anchor constants for the cyclic calendars.
const (
	// epochYear is the origin of the year cycle; its stem and branch
	// indices are both 0 (갑자년).
	epochYear = 1864

	// The day cycle is anchored at 1900-01-31, a 경자일: stem 6, branch 0.
	epochDayStem = 6

	// cutoverMonth/cutoverDay approximate 입춘, the saju new year.
	// Dates before Feb 4 belong to the previous saju year.
	cutoverMonth = 2
	cutoverDay   = 4

	// The day used for the hour-stem table rolls over at 23:30 rather
	// than midnight.
	rolloverHour   = 23
	rolloverMinute = 30
)

// epochDate is the day-cycle anchor.
var epochDate = time.Date(1900, time.January, 31, 0, 0, 0, 0, time.UTC)

// Pillar is one stem/branch symbol pair.
type Pillar struct {
	StemIdx   int
	BranchIdx int
}

// Stem returns the pillar's stem symbol.
func (p Pillar) Stem() string { return Stems[p.StemIdx] }

// Branch returns the pillar's branch symbol.
func (p Pillar) Branch() string { return Branches[p.BranchIdx] }

// String renders the conventional two-character pillar, e.g. "갑자".
func (p Pillar) String() string { return p.Stem() + p.Branch() }

// PillarSet is the full four-pillar derivation of a birth moment.
type PillarSet struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
	Hour  Pillar
}

// Calculate derives the four pillars for the given birth moment.
// Hour and minute may be zero substitutes for an unknown birth time;
// the hour pillar is then meaningless but still returned. The only
// failure mode is ErrInvalidDate.
func Calculate(year, month, day, hour, minute int) (PillarSet, error) {
	if !validDate(year, month, day) {
		return PillarSet{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	target := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// Day pillar: offset from the anchor day.
	totalDays := int(target.Sub(epochDate) / (24 * time.Hour))
	dayStem := mod(epochDayStem+totalDays, 10)
	dayBranch := mod(totalDays, 12)

	// Year pillar: the saju year starts at the Feb 4 cutover.
	sajuYear := year
	if month < cutoverMonth || (month == cutoverMonth && day < cutoverDay) {
		sajuYear = year - 1
	}
	yearOffset := sajuYear - epochYear
	yearStem := mod(yearOffset, 10)
	yearBranch := mod(yearOffset, 12)

	// Month pillar: branch from the fixed month table, stem counted
	// from the year-stem group's start stem beginning at the 인월.
	monthBranch := monthBranchByMonth[month]
	start := monthStemStart[groupOfStem(yearStem)]
	monthStem := mod(start+mod(monthBranch-branchIdxIn+12, 12), 10)

	// Hour pillar: the day stem feeding the start table advances one
	// day at or after 23:30.
	hourDayStem := dayStem
	if hour == rolloverHour && minute >= rolloverMinute {
		hourDayStem = mod(epochDayStem+totalDays+1, 10)
	}
	hb := hourBranch(hour)
	hourStem := mod(hourStemStart[groupOfStem(hourDayStem)]+hb, 10)

	return PillarSet{
		Year:  Pillar{StemIdx: yearStem, BranchIdx: yearBranch},
		Month: Pillar{StemIdx: monthStem, BranchIdx: monthBranch},
		Day:   Pillar{StemIdx: dayStem, BranchIdx: dayBranch},
		Hour:  Pillar{StemIdx: hourStem, BranchIdx: hb},
	}, nil
}

// validDate reports whether (year, month, day) exists in the proleptic
// Gregorian calendar.
func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// mod is the non-negative remainder.
func mod(a, n int) int {
	return ((a % n) + n) % n
}
