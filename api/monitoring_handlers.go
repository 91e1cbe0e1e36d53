package api

import "net/http"

// getLiveness reports whether the process is running. Always 200 while the
// server can answer at all.
func (a *API) getLiveness(w http.ResponseWriter, r *http.Request) {
	report := a.health.CheckLiveness(r.Context())
	a.respondJSON(w, report, http.StatusOK)
}

// getReadiness probes dependencies and reports 503 when any is unhealthy
func (a *API) getReadiness(w http.ResponseWriter, r *http.Request) {
	report := a.health.CheckReadiness(r.Context())

	status := http.StatusOK
	if !report.IsHealthy() {
		status = http.StatusServiceUnavailable
	}
	a.respondJSON(w, report, status)
}
