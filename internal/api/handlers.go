package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/taskpulse/taskpulse/internal/analytics"
	"github.com/taskpulse/taskpulse/internal/logging"
	"github.com/taskpulse/taskpulse/internal/models"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	opts := dashboardOptions(r)
	writeJSON(w, analytics.BuildDashboard(s.store.Snapshot(), opts))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	tasks := filteredSnapshot(s, r)
	writeJSON(w, analytics.CalculateProductivityMetrics(tasks, time.Now().UTC()))
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	tasks := filteredSnapshot(s, r)
	weeks := queryInt(r, "weeks", analytics.DefaultHeatmapWeeks)
	writeJSON(w, analytics.CalculateHeatmap(tasks, weeks, time.Now().UTC()))
}

func (s *Server) handleStreaks(w http.ResponseWriter, r *http.Request) {
	tasks := filteredSnapshot(s, r)
	writeJSON(w, analytics.ComputeStreaks(tasks, time.Now().UTC()))
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	tasks := filteredSnapshot(s, r)
	limit := queryInt(r, "limit", analytics.DefaultTagLimit)
	writeJSON(w, analytics.GetTagStats(tasks, limit))
}

func (s *Server) handleRecurring(w http.ResponseWriter, r *http.Request) {
	tasks := filteredSnapshot(s, r)
	writeJSON(w, analytics.GetRecurringTaskStats(tasks, time.Now().UTC()))
}

func (s *Server) handlePriorities(w http.ResponseWriter, r *http.Request) {
	tasks := filteredSnapshot(s, r)
	writeJSON(w, analytics.CalculatePriorityDistribution(tasks))
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, filteredSnapshot(s, r))
}

// dashboardOptions collects the shared query parameters. Malformed values
// fall back to defaults rather than failing the request.
func dashboardOptions(r *http.Request) analytics.DashboardOptions {
	return analytics.DashboardOptions{
		From:     queryDate(r, "from"),
		To:       queryDate(r, "to"),
		Weeks:    queryInt(r, "weeks", analytics.DefaultHeatmapWeeks),
		TagLimit: queryInt(r, "limit", analytics.DefaultTagLimit),
		Today:    time.Now().UTC(),
	}
}

// filteredSnapshot applies the from/to creation-date window to a copy of the
// stored tasks.
func filteredSnapshot(s *Server, r *http.Request) []models.Task {
	return analytics.FilterByDateRange(
		s.store.Snapshot(),
		queryDate(r, "from"),
		queryDate(r, "to"),
		analytics.DateFieldCreated,
	)
}

func queryDate(r *http.Request, name string) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation(analytics.DayFormat, raw, time.UTC)
	if err != nil {
		logging.Warnf("Ignoring malformed %s parameter: %q", name, raw)
		return nil
	}
	return &t
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		logging.Warnf("Ignoring malformed %s parameter: %q", name, raw)
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logging.Errorf("Failed to encode response: %v", err)
	}
}
