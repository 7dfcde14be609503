// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/maeumlab/gunghap/internal/domain/model"
)

// ProfilesHandler handles profile registration and lookup.
type ProfilesHandler struct {
	deps Dependencies
}

// NewProfilesHandler creates a new profiles handler.
func NewProfilesHandler(deps Dependencies) *ProfilesHandler {
	return &ProfilesHandler{deps: deps}
}

// birthRequest mirrors the OpenAPI schema for a birth moment.
type birthRequest struct {
	Year        *int `json:"year"`
	Month       *int `json:"month"`
	Day         *int `json:"day"`
	Hour        *int `json:"hour,omitempty"`
	Minute      *int `json:"minute,omitempty"`
	TimeUnknown bool `json:"time_unknown,omitempty"`
}

// profileRequest mirrors the OpenAPI schema for POST /profiles.
type profileRequest struct {
	UserID      string       `json:"user_id"`
	Nickname    string       `json:"nickname"`
	Gender      string       `json:"gender"`
	Birth       birthRequest `json:"birth"`
	Hobbies     []string     `json:"hobbies"`
	MBTI        string       `json:"mbti,omitempty"`
	Job         string       `json:"job,omitempty"`
	City        string       `json:"city,omitempty"`
	District    string       `json:"district,omitempty"`
	Lat         *float64     `json:"lat,omitempty"`
	Lon         *float64     `json:"lon,omitempty"`
	ProfileText string       `json:"profile_text,omitempty"`
}

func (p profileRequest) validate() error {
	switch {
	case strings.TrimSpace(p.UserID) == "":
		return errors.New("missing user_id")
	case p.Gender != "남성" && p.Gender != "여성":
		return errors.New("gender must be 남성 or 여성")
	case p.Birth.Year == nil || p.Birth.Month == nil || p.Birth.Day == nil:
		return errors.New("missing birth date")
	}
	if !p.Birth.TimeUnknown && p.Birth.Hour == nil {
		return errors.New("missing birth hour; set time_unknown to omit it")
	}
	if (p.Lat == nil) != (p.Lon == nil) {
		return errors.New("lat and lon must be provided together")
	}
	return nil
}

// toModel converts the request to the domain profile, normalizing
// hobby tags at the boundary: trimmed, empties dropped, duplicates
// removed with first occurrence winning.
func (p profileRequest) toModel() model.Profile {
	out := model.Profile{
		UserID:   strings.TrimSpace(p.UserID),
		Nickname: strings.TrimSpace(p.Nickname),
		Gender:   p.Gender,
		Birth: model.BirthInfo{
			Year:        p.Birth.Year,
			Month:       p.Birth.Month,
			Day:         p.Birth.Day,
			Hour:        p.Birth.Hour,
			Minute:      p.Birth.Minute,
			TimeUnknown: p.Birth.TimeUnknown,
		},
		Hobbies:     normalizeTags(p.Hobbies),
		MBTI:        strings.ToUpper(strings.TrimSpace(p.MBTI)),
		Job:         strings.TrimSpace(p.Job),
		City:        strings.TrimSpace(p.City),
		District:    strings.TrimSpace(p.District),
		ProfileText: p.ProfileText,
	}
	if p.Lat != nil && p.Lon != nil {
		out.Coord = &model.Coordinate{Lat: *p.Lat, Lon: *p.Lon}
	}
	return out
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// profileResponse is the read shape for GET /profiles/{user_id}.
type profileResponse struct {
	UserID      string       `json:"user_id"`
	Nickname    string       `json:"nickname"`
	Gender      string       `json:"gender"`
	Birth       birthRequest `json:"birth"`
	Hobbies     []string     `json:"hobbies"`
	MBTI        string       `json:"mbti,omitempty"`
	Job         string       `json:"job,omitempty"`
	City        string       `json:"city,omitempty"`
	District    string       `json:"district,omitempty"`
	Lat         *float64     `json:"lat,omitempty"`
	Lon         *float64     `json:"lon,omitempty"`
	ProfileText string       `json:"profile_text,omitempty"`
}

func toResponse(p model.Profile) profileResponse {
	resp := profileResponse{
		UserID:   p.UserID,
		Nickname: p.Nickname,
		Gender:   p.Gender,
		Birth: birthRequest{
			Year:        p.Birth.Year,
			Month:       p.Birth.Month,
			Day:         p.Birth.Day,
			Hour:        p.Birth.Hour,
			Minute:      p.Birth.Minute,
			TimeUnknown: p.Birth.TimeUnknown,
		},
		Hobbies:     p.Hobbies,
		MBTI:        p.MBTI,
		Job:         p.Job,
		City:        p.City,
		District:    p.District,
		ProfileText: p.ProfileText,
	}
	if p.Coord != nil {
		resp.Lat = &p.Coord.Lat
		resp.Lon = &p.Coord.Lon
	}
	return resp
}

// HandlePostProfile handles POST /profiles requests.
func (h *ProfilesHandler) HandlePostProfile(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_profile"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%s: %w", op, err))
		return
	}

	if err := h.deps.UpsertProfile(r.Context(), req.toModel()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusCreated, ackResponse{Status: "created", UserID: strings.TrimSpace(req.UserID)})
}

// HandleGetProfile handles GET /profiles/{user_id} requests.
func (h *ProfilesHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_profile"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID := strings.TrimPrefix(r.URL.Path, "/profiles/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	p, err := h.deps.GetProfile(r.Context(), userID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", fmt.Errorf("%s: %w", op, err))
		return
	}
	writeJSON(w, http.StatusOK, toResponse(p))
}
