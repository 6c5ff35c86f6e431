package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/okian/scoreportal/internal/seed"
	"github.com/okian/scoreportal/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumScores  = 1000
	defaultNumTeams   = 10
	defaultMaxScore   = 100_000
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8080", "Base URL of the portal")
		numScores  = flag.Int("scores", defaultNumScores, "Number of score submissions to send")
		numTeams   = flag.Int("teams", defaultNumTeams, "Number of synthetic teams")
		teamList   = flag.String("team-ids", "", "Comma-separated team ids (overrides -teams)")
		workers    = flag.Int("workers", runtime.NumCPU()*2, "Number of concurrent submitters")
		maxScore   = flag.Int64("max-score", defaultMaxScore, "Scores are drawn from [0, max-score)")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		skipVerify = flag.Bool("skip-verify", false, "Skip read-path verification after seeding")
		verbose    = flag.Bool("verbose", false, "Log every failed submission")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seed.Config{
		BaseURL:    *baseURL,
		NumScores:  *numScores,
		NumTeams:   *numTeams,
		Workers:    *workers,
		Timeout:    *timeout,
		MaxScore:   *maxScore,
		Verbose:    *verbose,
		SkipVerify: *skipVerify,
	}
	if *teamList != "" {
		config.Teams = strings.Split(*teamList, ",")
	}

	if _, err := seed.Run(ctx, config); err != nil {
		os.Stderr.WriteString("seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
