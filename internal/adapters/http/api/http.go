// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maeumlab/gunghap/internal/adapters/repository"
	"github.com/maeumlab/gunghap/internal/domain/model"
	"github.com/maeumlab/gunghap/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	UpsertProfile(ctx context.Context, p model.Profile) error
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	Recommend(ctx context.Context, userID string, limit int) ([]types.Match, error)
	ScorePair(ctx context.Context, userID, targetID string) (types.Match, error)
}

// Match mirrors the read shape returned by recommendation queries.
type Match = types.Match

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	profilesHandler  *ProfilesHandler
	recommendHandler *RecommendHandler
	scoreHandler     *ScoreHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxTopK int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		profilesHandler:  NewProfilesHandler(deps),
		recommendHandler: NewRecommendHandler(deps, maxTopK),
		scoreHandler:     NewScoreHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/profiles", MetricsMiddleware(s.profilesHandler.HandlePostProfile, "profiles"))
	mux.HandleFunc("/profiles/", MetricsMiddleware(s.profilesHandler.HandleGetProfile, "profiles"))
	mux.HandleFunc("/recommend/", MetricsMiddleware(s.recommendHandler.HandleGetRecommend, "recommend"))
	mux.HandleFunc("/match/score/", MetricsMiddleware(s.scoreHandler.HandleGetScore, "score"))
}

type ackResponse struct {
	Status string `json:"status"`
	UserID string `json:"user_id"`
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

// isNotFound allows the API to translate upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
