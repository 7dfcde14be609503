// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps    Dependencies
	maxTopK int
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps Dependencies, maxTopK int) *RecommendHandler {
	return &RecommendHandler{
		deps:    deps,
		maxTopK: maxTopK,
	}
}

// recommendResponse is the read shape for GET /recommend/{user_id}.
type recommendResponse struct {
	UserID  string  `json:"user_id"`
	Count   int     `json:"count"`
	Matches []Match `json:"matches"`
}

// HandleGetRecommend handles GET /recommend/{user_id}?limit=N requests.
func (h *RecommendHandler) HandleGetRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_recommend"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID := strings.TrimPrefix(r.URL.Path, "/recommend/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if n > h.maxTopK {
			writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
			return
		}
		limit = n
	}

	matches, err := h.deps.Recommend(r.Context(), userID, limit)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", fmt.Errorf("%s: %w", op, err))
		return
	}
	if matches == nil {
		matches = []Match{}
	}
	writeJSON(w, http.StatusOK, recommendResponse{
		UserID:  userID,
		Count:   len(matches),
		Matches: matches,
	})
}
