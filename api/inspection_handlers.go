package api

import (
	"net/http"
	"time"

	"cityhive/core"
)

const scheduledForLayout = "2006-01-02"

type createInspectionRequest struct {
	HiveID       int64  `json:"hive_id"`
	ScheduledFor string `json:"scheduled_for"`
	Notes        string `json:"notes"`
}

// createInspection schedules a new inspection for an existing hive
func (a *API) createInspection(w http.ResponseWriter, r *http.Request) {
	var req createInspectionRequest
	if err := a.decodeJSONBody(w, r, &req); err != nil {
		return
	}

	scheduledFor, err := time.ParseInLocation(scheduledForLayout, req.ScheduledFor, time.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scheduled_for date, expected YYYY-MM-DD", err, a.logger)
		return
	}

	input := core.InspectionCreationInput{
		HiveID:       req.HiveID,
		ScheduledFor: scheduledFor,
		Notes:        req.Notes,
	}

	result := a.inspections.CreateInspection(r.Context(), input)
	if !result.Success {
		writeError(w, statusForInspectionError(result.ErrorKind), result.Message, nil, a.logger)
		return
	}

	a.respondJSON(w, map[string]any{"inspection": result.Entity}, http.StatusCreated)
}

// getInspection returns a single inspection by ID
func (a *API) getInspection(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	inspection, err := a.inspections.GetInspectionByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve inspection", err, a.logger)
		return
	}
	if inspection == nil {
		writeError(w, http.StatusNotFound, "Inspection not found", nil, a.logger)
		return
	}

	a.respondJSON(w, map[string]any{"inspection": inspection}, http.StatusOK)
}

// getHiveInspections lists all inspections scheduled for a hive
func (a *API) getHiveInspections(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	inspections, err := a.inspections.GetInspectionsByHiveID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve inspections", err, a.logger)
		return
	}

	a.respondJSON(w, map[string]any{"inspections": inspections}, http.StatusOK)
}
