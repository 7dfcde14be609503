package seedtool

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// Value pools for generated profiles. Skewed towards the Seoul area
// the way a real early user base would be.
var (
	genders = []string{"남성", "여성"}

	nicknames = []string{
		"민지", "서연", "지우", "하은", "수빈", "예린", "다은", "소율",
		"준호", "민준", "서준", "도윤", "시우", "지호", "현우", "태양",
	}

	hobbyPool = []string{
		"등산", "골프", "테니스", "요가", "헬스", "러닝", "수영", "클라이밍",
		"여행", "캠핑", "맛집탐방", "드라이브",
		"영화감상", "독서", "전시회", "공연관람", "사진", "음악감상",
		"요리", "카페", "반려동물", "게임", "와인",
	}

	mbtiTypes = []string{
		"ISTJ", "ISFJ", "INFJ", "INTJ", "ISTP", "ISFP", "INFP", "INTP",
		"ESTP", "ESFP", "ENFP", "ENTP", "ESTJ", "ESFJ", "ENFJ", "ENTJ",
	}

	jobs = []string{
		"개발자", "디자이너", "마케터", "교사", "간호사", "회계사",
		"공무원", "연구원", "약사", "변호사", "자영업", "프리랜서",
	}

	locations = []struct {
		city     string
		district string
	}{
		{"서울시", "강남구"},
		{"서울시", "마포구"},
		{"서울시", "송파구"},
		{"서울시", "관악구"},
		{"서울시", "성동구"},
		{"경기도", "성남시"},
		{"경기도", "수원시"},
		{"경기도", "고양시"},
		{"인천시", ""},
		{"부산시", ""},
		{"대전시", ""},
		{"제주시", ""},
	}
)

// Birth year and hobby count bounds.
const (
	minBirthYear   = 1975
	birthYearRange = 30
	minHobbies     = 1
	maxHobbies     = 5
	unknownTimePct = 10
)

// Profile mirrors the POST /profiles request schema.
type Profile struct {
	UserID      string   `json:"user_id"`
	Nickname    string   `json:"nickname"`
	Gender      string   `json:"gender"`
	Birth       Birth    `json:"birth"`
	Hobbies     []string `json:"hobbies"`
	MBTI        string   `json:"mbti"`
	Job         string   `json:"job"`
	City        string   `json:"city"`
	District    string   `json:"district,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	ProfileText string   `json:"profile_text,omitempty"`
}

// Birth mirrors the request's birth object.
type Birth struct {
	Year        int  `json:"year"`
	Month       int  `json:"month"`
	Day         int  `json:"day"`
	Hour        *int `json:"hour,omitempty"`
	Minute      *int `json:"minute,omitempty"`
	TimeUnknown bool `json:"time_unknown,omitempty"`
}

// randInt returns a uniform random int in [0, n) using crypto/rand.
func randInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

func pick(pool []string) string {
	return pool[randInt(len(pool))]
}

// GenerateProfiles creates n random profiles with unique user IDs.
// Genders alternate so both candidate pools stay populated.
func GenerateProfiles(n int, coordRatio float64) []Profile {
	out := make([]Profile, n)
	for i := range out {
		out[i] = generateProfile(i, coordRatio)
	}
	return out
}

func generateProfile(index int, coordRatio float64) Profile {
	loc := locations[randInt(len(locations))]

	p := Profile{
		UserID:   uuid.New().String(),
		Nickname: pick(nicknames),
		Gender:   genders[index%len(genders)],
		Birth:    generateBirth(),
		Hobbies:  generateHobbies(),
		MBTI:     pick(mbtiTypes),
		Job:      pick(jobs),
		City:     loc.city,
		District: loc.district,
	}

	// A slice of profiles skips geocoding entirely by carrying explicit
	// coordinates near Seoul City Hall.
	if coordRatio > 0 && float64(randInt(100))/100.0 < coordRatio {
		lat := 37.4 + float64(randInt(40))/100.0
		lon := 126.8 + float64(randInt(40))/100.0
		p.Lat = &lat
		p.Lon = &lon
	}
	return p
}

func generateBirth() Birth {
	b := Birth{
		Year:  minBirthYear + randInt(birthYearRange),
		Month: 1 + randInt(12),
		Day:   1 + randInt(28),
	}
	if randInt(100) < unknownTimePct {
		b.TimeUnknown = true
		return b
	}
	hour := randInt(24)
	minute := randInt(60)
	b.Hour = &hour
	b.Minute = &minute
	return b
}

func generateHobbies() []string {
	n := minHobbies + randInt(maxHobbies-minHobbies+1)
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		h := pick(hobbyPool)
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}
