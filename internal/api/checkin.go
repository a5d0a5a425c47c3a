package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/respite/internal/domain"
)

// RecordCheckin stores a check-in for the period named in the URL.
func (h *Handler) RecordCheckin(w http.ResponseWriter, r *http.Request) {
	period := domain.CheckinPeriod(chi.URLParam(r, "period"))
	if !domain.IsValidPeriod(period) {
		Error(w, http.StatusBadRequest, "invalid check-in type")
		return
	}

	var payload map[string]any
	if r.Body != nil {
		// A missing or malformed body is treated as an empty check-in.
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}

	result, err := h.svc.RecordCheckin(r.Context(), h.userID(r), period, payload)
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"checkin":       result.Entry,
		"mood_analysis": result.Mood,
	})
}

// CheckinHistory returns recent check-ins grouped by period.
func (h *Handler) CheckinHistory(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", 30)

	history, err := h.svc.CheckinHistory(r.Context(), h.userID(r), days)
	if err != nil {
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"history": history,
		"days":    days,
	})
}

// CheckinStatus reports which of today's check-ins are done and which
// one is due now.
func (h *Handler) CheckinStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.CheckinStatus(r.Context(), h.userID(r))
	if err != nil {
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"status":  status,
	})
}

// CheckinAnalytics aggregates a window of check-ins.
func (h *Handler) CheckinAnalytics(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", 7)

	analytics, err := h.svc.CheckinAnalytics(r.Context(), h.userID(r), days)
	if err != nil {
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"analytics": analytics,
		"days":      days,
	})
}
