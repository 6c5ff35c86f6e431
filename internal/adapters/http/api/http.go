// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/scoreportal/internal/domain/chart"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// SubmitScore appends one score event; the server assigns the timestamp.
	SubmitScore(ctx context.Context, teamID string, score int64) error

	// Series returns the per-team time series view.
	Series(ctx context.Context) (chart.Series, error)

	// Latest returns the ranked latest-score snapshot.
	Latest(ctx context.Context) (chart.Latest, error)

	// Frozen and SetFrozen expose the accept-but-discard submission mode.
	Frozen() bool
	SetFrozen(frozen bool)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	scoresHandler *ScoresHandler
	latestHandler *LatestHandler
	freezeHandler *FreezeHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		scoresHandler: NewScoresHandler(deps),
		latestHandler: NewLatestHandler(deps),
		freezeHandler: NewFreezeHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/scores", MetricsMiddleware(s.scoresHandler.HandleScores, "scores"))
	mux.HandleFunc("/api/scores/latest", MetricsMiddleware(s.latestHandler.HandleGetLatest, "scores_latest"))
	mux.HandleFunc("/api/freeze", MetricsMiddleware(s.freezeHandler.HandleFreeze, "freeze"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
