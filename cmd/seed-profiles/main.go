package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/maeumlab/gunghap/internal/seedtool"
	"github.com/maeumlab/gunghap/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumProfiles = 1000
	defaultTimeout     = 10 * time.Second
	defaultRunTimeout  = 10 * time.Minute
	defaultCoordRatio  = 0.5
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numProfiles = flag.Int("profiles", defaultNumProfiles, "Number of profiles to generate and submit")
		workers     = flag.Int("workers", runtime.NumCPU()*2, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		coordRatio  = flag.Float64("coord-ratio", defaultCoordRatio, "Fraction of profiles submitted with explicit coordinates")
		verify      = flag.Bool("verify", true, "Probe /recommend for a sample of seeded users afterwards")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seedtool.Config{
		BaseURL:     *baseURL,
		NumProfiles: *numProfiles,
		Workers:     *workers,
		Timeout:     *timeout,
		CoordRatio:  *coordRatio,
		Verify:      *verify,
		Verbose:     *verbose,
	}

	stats, err := seedtool.Run(ctx, config)
	if err != nil {
		os.Stderr.WriteString("Seeding failed: " + err.Error() + "\n")
		return
	}

	fmt.Printf("Seeded %d/%d profiles in %s (%d failed)\n",
		stats.ProfilesCreated, stats.ProfilesGenerated, stats.Elapsed.Round(time.Millisecond), stats.ProfilesFailed)
	if *verify {
		fmt.Printf("Recommendation probes passed: %d\n", stats.ProbesPassed)
	}
}
