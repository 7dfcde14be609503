// Package types contains common types used across the application.
package types

// Scores breaks a match total into its three weighted components.
type Scores struct {
	Saju     int `json:"saju"`
	Interest int `json:"interest"`
	Distance int `json:"distance"`
}

// MatchInfo carries human-facing extras for a match entry.
type MatchInfo struct {
	DistanceKM    string   `json:"distance_km"`
	CommonHobbies []string `json:"common_hobbies"`
}

// Match is one ranked recommendation entry.
type Match struct {
	UserID      string    `json:"user_id"`
	Nickname    string    `json:"nickname"`
	Gender      string    `json:"gender"`
	MBTI        string    `json:"mbti,omitempty"`
	Job         string    `json:"job,omitempty"`
	Location    string    `json:"location,omitempty"`
	TotalScore  float64   `json:"total_score"`
	Scores      Scores    `json:"scores"`
	Info        MatchInfo `json:"info"`
	ProfileText string    `json:"profile_text,omitempty"`
}
