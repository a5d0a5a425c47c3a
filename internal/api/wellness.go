package api

import (
	"net/http"
	"strconv"

	"github.com/alexanderramin/respite/internal/provider"
)

// Analyze runs a full workload analysis and returns the assessment.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Analyze(r.Context())

	JSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"stress_analysis": result.Assessment,
		"events_analyzed": result.EventsAnalyzed,
		"tasks_analyzed":  result.TasksAnalyzed,
		"timestamp":       result.Timestamp,
	})
}

// ScheduleBreaks plans today's breaks. auto_insert=true writes the
// proposals to the calendar; the configured default applies otherwise.
func (h *Handler) ScheduleBreaks(w http.ResponseWriter, r *http.Request) {
	autoInsert := h.autoInsertBreaks
	if v := r.URL.Query().Get("auto_insert"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			autoInsert = b
		}
	}

	result := h.svc.ScheduleBreaks(r.Context(), h.userID(r), autoInsert)

	inserted := result.Inserted
	if inserted == nil {
		inserted = []provider.InsertResult{}
	}

	JSON(w, http.StatusOK, map[string]any{
		"success":              true,
		"breaks":               result.Plan.RecommendedBreaks,
		"daily_strategy":       result.Plan.DailyStrategy,
		"scheduled_events":     inserted,
		"available_slots":      result.Slots,
		"checkin_intelligence": result.Intel,
		"stress_context": map[string]any{
			"level": result.Assessment.StressLevel,
			"score": result.Assessment.StressScore,
		},
	})
}

// MusicTherapy returns tracks matched to the current stress picture.
func (h *Handler) MusicTherapy(w http.ResponseWriter, r *http.Request) {
	result := h.svc.MusicTherapy(r.Context())

	JSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"stress_analysis": result.Assessment,
		"genres":          result.Genres,
		"tracks":          result.Tracks,
		"total_tracks":    len(result.Tracks),
	})
}

// VideoTherapy returns videos matched to the current stress level.
func (h *Handler) VideoTherapy(w http.ResponseWriter, r *http.Request) {
	result := h.svc.VideoTherapy(r.Context())

	JSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"stress_analysis": result.Assessment,
		"queries":         result.Queries,
		"videos":          result.Videos,
		"total_videos":    len(result.Videos),
	})
}
