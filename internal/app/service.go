// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	repository "github.com/okian/scoreportal/internal/adapters/repository"
	"github.com/okian/scoreportal/internal/domain/chart"
	"github.com/okian/scoreportal/internal/domain/teams"
	"github.com/okian/scoreportal/pkg/logger"
	"github.com/okian/scoreportal/pkg/metrics"
)

// Service implements the API dependencies for the scoreboard.
//
// It holds no aggregate state of its own: every read recomputes its view
// from the event store, so two reads with no intervening write return
// identical results. The only in-process mutable state is the freeze flag.
type Service struct {
	mu sync.RWMutex

	// Core components
	store repository.Store
	names *teams.NameMap

	// Configuration
	dbPath       string
	queryTimeout time.Duration
	palette      []chart.Color
	borderWidth  int

	// State
	started bool
	frozen  atomic.Bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore injects an already-open event store. Start then skips opening
// the SQLite database itself; useful for tests.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDBPath sets the SQLite database location used when no store is injected.
func WithDBPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dbPath = path
		}
	}
}

// WithQueryTimeout bounds event store queries.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.queryTimeout = timeout
		}
	}
}

// WithTeamNames sets the immutable team display-name mapping.
func WithTeamNames(names map[string]string) Option {
	return func(s *Service) {
		s.names = teams.NewNameMap(names)
	}
}

// WithPalette overrides the chart color cycle.
func WithPalette(palette []chart.Color) Option {
	return func(s *Service) {
		if len(palette) > 0 {
			s.palette = palette
		}
	}
}

// WithBorderWidth sets the chart dataset border width.
func WithBorderWidth(width int) Option {
	return func(s *Service) {
		if width >= 0 {
			s.borderWidth = width
		}
	}
}

// WithFrozen seeds the freeze flag from configuration.
func WithFrozen(frozen bool) Option {
	return func(s *Service) {
		s.frozen.Store(frozen)
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dbPath:      "scores.db",
		palette:     chart.DefaultPalette(),
		borderWidth: 1,
		names:       teams.NewNameMap(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens the event store and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		store, err := repository.NewSQLiteStore(ctx, s.dbPath,
			repository.WithQueryTimeout(s.queryTimeout))
		if err != nil {
			return err
		}
		s.store = store
		s.logger.Info(ctx, "opened scores database", logger.String("path", s.dbPath))
	}

	metrics.UpdateFrozen(s.frozen.Load())

	s.started = true
	s.logger.Info(ctx, "scoreboard service started",
		logger.Int("teamNames", s.names.Len()),
		logger.Bool("frozen", s.frozen.Load()),
	)
	return nil
}

// Stop closes the event store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error(context.Background(), "failed to close store", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(context.Background(), "scoreboard service stopped")
}

// SubmitScore records one score submission. The registration timestamp is
// assigned here, server-side; any caller-supplied time is ignored upstream.
// While frozen the submission is accepted but discarded, so the caller still
// observes success and the scoreboard stays put.
func (s *Service) SubmitScore(ctx context.Context, teamID string, score int64) error {
	if s.frozen.Load() {
		metrics.RecordScoreDiscarded()
		s.logger.Debug(ctx, "submission discarded while frozen",
			logger.String("teamId", teamID), logger.Int64("score", score))
		return nil
	}

	registeredAt := time.Now().UnixMilli()
	id, err := s.store.Append(ctx, teamID, score, registeredAt)
	if err != nil {
		return err
	}

	metrics.RecordScoreStored()
	s.logger.Debug(ctx, "stored score event",
		logger.Int64("id", id),
		logger.String("teamId", teamID),
		logger.Int64("score", score),
		logger.Int64("registeredAt", registeredAt),
	)
	return nil
}

// Series scans the full event log and groups it into one time series per
// team in insertion order.
func (s *Service) Series(ctx context.Context) (chart.Series, error) {
	events, err := s.store.ListAll(ctx)
	if err != nil {
		return chart.Series{}, err
	}
	return chart.BuildSeries(events, s.names, s.borderWidth), nil
}

// Latest returns the ranking snapshot: per-team best score, ordered
// descending, with the cycled styling palette applied.
func (s *Service) Latest(ctx context.Context) (chart.Latest, error) {
	best, err := s.store.BestByTeam(ctx)
	if err != nil {
		return chart.Latest{}, err
	}
	return chart.BuildLatest(best, s.names, s.palette, s.borderWidth), nil
}

// Frozen reports whether submissions are currently discarded.
func (s *Service) Frozen() bool {
	return s.frozen.Load()
}

// SetFrozen toggles freeze mode at runtime.
func (s *Service) SetFrozen(frozen bool) {
	s.frozen.Store(frozen)
	metrics.UpdateFrozen(frozen)
	s.logger.Info(context.Background(), "freeze mode changed", logger.Bool("frozen", frozen))
}

// GetStats returns service counters for the stats endpoint and the metrics
// updater.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	store := s.store
	s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": started,
		"frozen":  s.frozen.Load(),
	}

	if store == nil {
		return stats
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if n, err := store.Count(ctx); err == nil {
		stats["eventCount"] = n
		metrics.UpdateEventCount(n)
	}
	if n, err := store.TeamCount(ctx); err == nil {
		stats["teamCount"] = n
		metrics.UpdateTeamCount(n)
	}
	return stats
}
