// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// scoreRequest mirrors the POST /api/scores payload. Unknown fields,
// including any client-supplied timestamp, are ignored; the registration
// time is always assigned server-side.
type scoreRequest struct {
	TeamID string      `json:"teamId"`
	Score  json.Number `json:"score"`
}

func (r scoreRequest) validate() (int64, error) {
	if strings.TrimSpace(r.TeamID) == "" {
		return 0, errors.New("missing teamId")
	}
	if r.Score == "" {
		return 0, errors.New("missing score")
	}
	score, err := r.Score.Int64()
	if err != nil {
		return 0, errors.New("invalid score; must be an integer")
	}
	return score, nil
}

// ScoresHandler handles the combined read/write /api/scores route.
type ScoresHandler struct {
	deps Dependencies
}

// NewScoresHandler creates a new scores handler.
func NewScoresHandler(deps Dependencies) *ScoresHandler {
	return &ScoresHandler{deps: deps}
}

// HandleScores dispatches GET (time series) and POST (ingestion) on
// /api/scores.
func (h *ScoresHandler) HandleScores(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetSeries(w, r)
	case http.MethodPost:
		h.handlePostScore(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleGetSeries handles GET /api/scores requests.
func (h *ScoresHandler) handleGetSeries(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_scores"
	series, err := h.deps.Series(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// handlePostScore handles POST /api/scores requests.
func (h *ScoresHandler) handlePostScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_score"
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	score, err := req.validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	if err := h.deps.SubmitScore(r.Context(), req.TeamID, score); err != nil {
		writeError(w, http.StatusInternalServerError, "storage_error", WrapKind(op, ErrStorage, err))
		return
	}
	w.WriteHeader(http.StatusCreated)
}
