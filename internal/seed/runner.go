package seed

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/scoreportal/pkg/logger"
)

// Run generates submissions, posts them with a worker pool, then fetches
// both read paths and checks their shape against what was submitted.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	log := logger.Get()
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.NumTeams <= 0 && len(config.Teams) == 0 {
		config.NumTeams = 1
	}
	subs := generateSubmissions(config)
	c := newClient(config)

	log.Info(ctx, "seeding scores",
		logger.String("url", config.BaseURL),
		logger.Int("scores", len(subs)),
		logger.Int("workers", config.Workers),
	)

	start := time.Now()
	var submitted, failed atomic.Int64

	jobs := make(chan Submission)
	var wg sync.WaitGroup
	for range config.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sub := range jobs {
				if err := c.postScore(ctx, sub); err != nil {
					failed.Add(1)
					if config.Verbose {
						log.Warn(ctx, "submission failed", logger.Error(err))
					}
					continue
				}
				submitted.Add(1)
			}
		}()
	}

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- sub:
		}
	}
	close(jobs)
	wg.Wait()

	stats := &Stats{
		Submitted: int(submitted.Load()),
		Failed:    int(failed.Load()),
		Elapsed:   time.Since(start),
	}
	log.Info(ctx, "seeding finished",
		logger.Int("submitted", stats.Submitted),
		logger.Int("failed", stats.Failed),
		logger.String("elapsed", stats.Elapsed.String()),
	)

	if config.SkipVerify {
		return stats, nil
	}
	if err := verify(ctx, c, subs); err != nil {
		return stats, err
	}
	log.Info(ctx, "read paths verified")
	return stats, nil
}

// verify cross-checks the two read paths against the submitted events.
// Other writers may be active concurrently, so checks are containment and
// ordering properties rather than exact equality.
func verify(ctx context.Context, c *client, subs []Submission) error {
	series, err := c.fetchSeries(ctx)
	if err != nil {
		return err
	}

	teams := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		teams[sub.TeamID] = struct{}{}
	}
	if len(series.Datasets) < len(teams) {
		return fmt.Errorf("series has %d datasets, want at least %d", len(series.Datasets), len(teams))
	}

	latest, err := c.fetchLatest(ctx)
	if err != nil {
		return err
	}
	if len(latest.Datasets) != 1 {
		return fmt.Errorf("latest has %d datasets, want 1", len(latest.Datasets))
	}
	data := latest.Datasets[0].Data
	if len(latest.Labels) != len(data) {
		return fmt.Errorf("latest labels (%d) and data (%d) are not parallel", len(latest.Labels), len(data))
	}
	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1] {
			return fmt.Errorf("latest data not sorted descending at index %d", i)
		}
	}
	if latest.LatestTimestamp == 0 && len(data) > 0 {
		return fmt.Errorf("latest timestamp is zero despite %d ranked teams", len(data))
	}
	return nil
}
