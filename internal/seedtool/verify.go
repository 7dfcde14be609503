package seedtool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/maeumlab/gunghap/pkg/logger"
)

// verifySampleSize bounds how many seeded users get a recommendation
// probe after submission.
const verifySampleSize = 5

type verifyMatch struct {
	UserID     string  `json:"user_id"`
	TotalScore float64 `json:"total_score"`
}

type verifyResponse struct {
	UserID  string        `json:"user_id"`
	Count   int           `json:"count"`
	Matches []verifyMatch `json:"matches"`
}

// VerifyRecommendations probes /recommend for a sample of the seeded
// profiles and checks response shape and score ordering. Returns the
// number of probes that passed.
func VerifyRecommendations(ctx context.Context, config *Config, profiles []Profile) (int, error) {
	client := &http.Client{Timeout: config.Timeout}
	log := logger.Get()

	sample := len(profiles)
	if sample > verifySampleSize {
		sample = verifySampleSize
	}

	passed := 0
	for i := 0; i < sample; i++ {
		userID := profiles[i].UserID
		if err := probeRecommend(ctx, client, config.BaseURL, userID); err != nil {
			log.Warn(ctx, "recommendation probe failed",
				logger.String("userID", userID),
				logger.Error(err),
			)
			continue
		}
		passed++
	}
	return passed, nil
}

func probeRecommend(ctx context.Context, client *http.Client, baseURL, userID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/recommend/"+userID, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get recommendations: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if body.UserID != userID {
		return fmt.Errorf("response user %q does not match request %q", body.UserID, userID)
	}
	if body.Count != len(body.Matches) {
		return fmt.Errorf("count %d disagrees with %d matches", body.Count, len(body.Matches))
	}
	for i := 1; i < len(body.Matches); i++ {
		if body.Matches[i].TotalScore > body.Matches[i-1].TotalScore {
			return fmt.Errorf("matches out of order at index %d", i)
		}
	}
	return nil
}
