package saju

// The ten heavenly stems (천간) and twelve earthly branches (지지) in
// their canonical cycle order. All pillar arithmetic is an index into
// these alphabets modulo 10 or 12.
var (
	Stems = [10]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

	Branches = [12]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}
)

// StemGroup identifies one of the five stem pair-groups (갑기, 을경,
// 병신, 정임, 무계). Two stems whose indices differ by 5 share a group.
type StemGroup int

// Stem pair-groups in alphabet order of their first member.
const (
	GroupGapGi     StemGroup = iota // 갑, 기
	GroupEulGyeong                  // 을, 경
	GroupByeongSin                  // 병, 신
	GroupJeongIm                    // 정, 임
	GroupMuGye                      // 무, 계
)

// groupOfStem maps each stem index to its pair-group: stems i and i+5
// belong to the same group.
func groupOfStem(stemIdx int) StemGroup {
	return StemGroup(stemIdx % 5)
}

// monthBranchByMonth maps the calendar month (1-12) to the month
// pillar's branch index. Keyed by calendar month rather than solar
// term, an accepted approximation.
var monthBranchByMonth = [13]int{
	0,  // unused
	1,  // 1월  -> 축
	2,  // 2월  -> 인
	3,  // 3월  -> 묘
	4,  // 4월  -> 진
	5,  // 5월  -> 사
	6,  // 6월  -> 오
	7,  // 7월  -> 미
	8,  // 8월  -> 신
	9,  // 9월  -> 유
	10, // 10월 -> 술
	11, // 11월 -> 해
	0,  // 12월 -> 자
}

// monthStemStart gives, per year-stem group, the stem index that starts
// the first month (인월) of that year.
var monthStemStart = [5]int{
	GroupGapGi:     2, // 병
	GroupEulGyeong: 4, // 무
	GroupByeongSin: 6, // 경
	GroupJeongIm:   8, // 임
	GroupMuGye:     0, // 갑
}

// hourStemStart gives, per day-stem group, the stem index that starts
// the 자시 (23:00-00:59) window of that day.
var hourStemStart = [5]int{
	GroupGapGi:     0, // 갑
	GroupEulGyeong: 2, // 병
	GroupByeongSin: 4, // 무
	GroupJeongIm:   6, // 경
	GroupMuGye:     8, // 임
}

// branchIdxIn is the position of 인 in the branch cycle; the month stem
// offset is counted from the 인월.
const branchIdxIn = 2

// hourBranch maps an hour of day to the branch index of its two-hour
// window. 23:00-00:59 wraps around midnight and always maps to 자.
func hourBranch(hour int) int {
	if hour == 23 || hour == 0 {
		return 0 // 자
	}
	// Windows start at odd hours: 01-02 축, 03-04 인, ...
	return ((hour + 1) / 2) % 12
}
