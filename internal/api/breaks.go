package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexanderramin/respite/internal/breaks"
	"github.com/alexanderramin/respite/internal/domain"
)

const clockLayout = "15:04"

type startBreakRequest struct {
	BreakID  string `json:"break_id"`
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	Reason   string `json:"ai_reason"`
}

// StartBreak begins a break session. Fields default to a five minute
// breathing break.
func (h *Handler) StartBreak(w http.ResponseWriter, r *http.Request) {
	req := startBreakRequest{
		Type:     string(domain.BreakBreathing),
		Duration: 5,
		Reason:   "Scheduled wellness break",
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Type == "" {
		req.Type = string(domain.BreakBreathing)
	}
	if req.Duration <= 0 {
		req.Duration = 5
	}

	session, err := h.svc.Tracker().Start(r.Context(), req.BreakID, domain.BreakType(req.Type), req.Duration, req.Reason)
	if err != nil {
		if errors.Is(err, breaks.ErrBreakInProgress) {
			Error(w, http.StatusConflict, err.Error())
			return
		}
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"status":     "started",
		"break_id":   session.ID,
		"start_time": session.StartTime.Format(clockLayout),
		"end_time":   session.EndTime.Format(clockLayout),
	})
}

type completeBreakRequest struct {
	BreakID   string `json:"break_id"`
	Completed *bool  `json:"completed"`
	Feedback  string `json:"feedback"`
}

// CompleteBreak finishes the active session and records it.
func (h *Handler) CompleteBreak(w http.ResponseWriter, r *http.Request) {
	var req completeBreakRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	if err := h.svc.Tracker().Complete(r.Context(), req.BreakID, completed, req.Feedback); err != nil {
		switch {
		case errors.Is(err, breaks.ErrNoActiveBreak), errors.Is(err, breaks.ErrBreakIDMismatch):
			Error(w, http.StatusBadRequest, err.Error())
		default:
			Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"success":             true,
		"status":              "completed",
		"reward":              "calm_point",
		"next_recommendation": "Great job! Your next break is in 90 minutes",
	})
}

type skipBreakRequest struct {
	BreakID string `json:"break_id"`
}

// SkipBreak discards the named session. Skipping something that is not
// active succeeds anyway.
func (h *Handler) SkipBreak(w http.ResponseWriter, r *http.Request) {
	var req skipBreakRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	h.svc.Tracker().Skip(r.Context(), req.BreakID)

	JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"status":  "skipped",
	})
}

// CurrentBreak returns the in-progress session, if any.
func (h *Handler) CurrentBreak(w http.ResponseWriter, r *http.Request) {
	session, elapsed, active := h.svc.Tracker().Current(r.Context())
	if !active {
		JSON(w, http.StatusOK, map[string]any{"active": false})
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"active":           true,
		"break_id":         session.ID,
		"type":             session.Type,
		"title":            session.Title,
		"duration_minutes": session.DurationMin,
		"start_time":       session.StartTime.Format(clockLayout),
		"end_time":         session.EndTime.Format(clockLayout),
		"ai_reason":        session.Reason,
		"elapsed_seconds":  elapsed,
	})
}

// BreakHistory returns the recent break records and their stats.
func (h *Handler) BreakHistory(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", 7)

	records, stats, err := h.svc.Tracker().History(r.Context(), days)
	if err != nil {
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []domain.BreakHistoryRecord{}
	}

	JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"history": records,
		"stats":   stats,
	})
}

// BreakContent returns the guided script for one break type.
func (h *Handler) BreakContent(w http.ResponseWriter, r *http.Request) {
	breakType := domain.BreakType(r.URL.Query().Get("type"))

	content, ok := breaks.ContentFor(breakType)
	if !ok {
		Error(w, http.StatusBadRequest, "Invalid break type")
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"type":             content.Type,
		"title":            content.Title,
		"steps":            content.Steps,
		"animation":        content.Animation,
		"background_music": content.BackgroundMusic,
		"total_duration":   content.TotalDurationSec(),
	})
}

// BreakTypes lists every break type in the catalog.
func (h *Handler) BreakTypes(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"break_types": breaks.TypeSummaries(),
	})
}
