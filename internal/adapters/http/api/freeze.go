// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// freezeState is both the PUT /api/freeze payload and the response body.
type freezeState struct {
	Frozen bool `json:"frozen"`
}

// FreezeHandler toggles and reports the accept-but-discard submission mode.
type FreezeHandler struct {
	deps Dependencies
}

// NewFreezeHandler creates a new freeze handler.
func NewFreezeHandler(deps Dependencies) *FreezeHandler {
	return &FreezeHandler{deps: deps}
}

// HandleFreeze dispatches GET (inspect) and PUT (toggle) on /api/freeze.
func (h *FreezeHandler) HandleFreeze(w http.ResponseWriter, r *http.Request) {
	const op = "api.freeze"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, freezeState{Frozen: h.deps.Frozen()})
	case http.MethodPut:
		var req freezeState
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		h.deps.SetFrozen(req.Frozen)
		writeJSON(w, http.StatusOK, freezeState{Frozen: h.deps.Frozen()})
	default:
		http.NotFound(w, r)
	}
}
