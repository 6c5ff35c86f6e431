// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// LatestHandler handles ranking snapshot requests.
type LatestHandler struct {
	deps Dependencies
}

// NewLatestHandler creates a new latest-score handler.
func NewLatestHandler(deps Dependencies) *LatestHandler {
	return &LatestHandler{deps: deps}
}

// HandleGetLatest handles GET /api/scores/latest requests.
func (h *LatestHandler) HandleGetLatest(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_scores_latest"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	latest, err := h.deps.Latest(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, latest)
}
