package api

import (
	"net/http"
	"strings"
	"time"

	"cityhive/core"
)

type createHiveRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	// Latitude and Longitude stay untyped so non-numeric values reach the
	// coordinate validators instead of failing JSON decoding.
	Latitude    any        `json:"latitude"`
	Longitude   any        `json:"longitude"`
	FrameType   string     `json:"frame_type"`
	InstalledAt *time.Time `json:"installed_at"`
}

// createHive registers a new hive for an existing user
func (a *API) createHive(w http.ResponseWriter, r *http.Request) {
	var req createHiveRequest
	if err := a.decodeJSONBody(w, r, &req); err != nil {
		return
	}

	input := core.HiveCreationInput{
		UserID:      req.UserID,
		Name:        strings.TrimSpace(req.Name),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		FrameType:   strings.TrimSpace(req.FrameType),
		InstalledAt: req.InstalledAt,
	}

	result := a.hives.CreateHive(r.Context(), input)
	if !result.Success {
		writeError(w, statusForHiveError(result.ErrorKind), result.Message, nil, a.logger)
		return
	}

	a.respondJSON(w, map[string]any{"hive": result.Entity}, http.StatusCreated)
}

// getHive returns a single hive by ID
func (a *API) getHive(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	hive, err := a.hives.GetHiveByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve hive", err, a.logger)
		return
	}
	if hive == nil {
		writeError(w, http.StatusNotFound, "Hive not found", nil, a.logger)
		return
	}

	a.respondJSON(w, map[string]any{"hive": hive}, http.StatusOK)
}

// getUserHives lists all hives owned by a user
func (a *API) getUserHives(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	hives, err := a.hives.GetHivesByUserID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve hives", err, a.logger)
		return
	}

	a.respondJSON(w, map[string]any{"hives": hives}, http.StatusOK)
}
