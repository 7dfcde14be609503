package seedtool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/maeumlab/gunghap/pkg/logger"
)

// Run generates and submits profiles according to config, returning
// run statistics. Submission failures are counted, not fatal.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	if config.NumProfiles <= 0 {
		return nil, fmt.Errorf("seedtool: profile count must be positive")
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}

	log := logger.Get()
	start := time.Now()

	profiles := GenerateProfiles(config.NumProfiles, config.CoordRatio)
	log.Info(ctx, "generated profiles", logger.Int("count", len(profiles)))

	stats := &Stats{ProfilesGenerated: len(profiles)}

	client := &http.Client{Timeout: config.Timeout}
	url := config.BaseURL + "/profiles"

	var (
		submitted int64
		created   int64
		failed    int64
	)

	profileChan := make(chan Profile, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range profileChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				atomic.AddInt64(&submitted, 1)
				if err := submitProfile(ctx, client, url, p); err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Warn(ctx, "profile submission failed",
							logger.String("userID", p.UserID),
							logger.Error(err),
						)
					}
					continue
				}
				atomic.AddInt64(&created, 1)
			}
		}()
	}

	go func() {
		defer close(profileChan)
		for _, p := range profiles {
			select {
			case <-ctx.Done():
				return
			case profileChan <- p:
			}
		}
	}()

	wg.Wait()

	stats.ProfilesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.ProfilesCreated = int(atomic.LoadInt64(&created))
	stats.ProfilesFailed = int(atomic.LoadInt64(&failed))

	if config.Verify {
		passed, err := VerifyRecommendations(ctx, config, profiles)
		if err != nil {
			return nil, err
		}
		stats.ProbesPassed = passed
	}
	stats.Elapsed = time.Since(start)

	log.Info(ctx, "seeding completed",
		logger.Int("submitted", stats.ProfilesSubmitted),
		logger.Int("created", stats.ProfilesCreated),
		logger.Int("failed", stats.ProfilesFailed),
		logger.String("elapsed", stats.Elapsed.String()),
	)
	return stats, nil
}

func submitProfile(ctx context.Context, client *http.Client, url string, p Profile) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("post profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
