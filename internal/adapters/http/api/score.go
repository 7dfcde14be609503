// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strings"
)

// ScoreHandler handles pair scoring requests.
type ScoreHandler struct {
	deps Dependencies
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps Dependencies) *ScoreHandler {
	return &ScoreHandler{deps: deps}
}

// HandleGetScore handles GET /match/score/{user_id}/{target_id} requests.
func (h *ScoreHandler) HandleGetScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_score"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/match/score/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	userID, targetID := parts[0], parts[1]
	if userID == targetID {
		writeError(w, http.StatusBadRequest, "self_match", ErrSelfMatch)
		return
	}

	match, err := h.deps.ScorePair(r.Context(), userID, targetID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, match)
}
