// Package api provides the HTTP handlers for the wellness API.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/respite/internal/service"
)

// Handler holds the handler dependencies.
type Handler struct {
	svc              *service.Wellness
	defaultUserID    string
	autoInsertBreaks bool
}

// NewHandler creates a Handler over the wellness service.
func NewHandler(svc *service.Wellness, defaultUserID string, autoInsertBreaks bool) *Handler {
	return &Handler{svc: svc, defaultUserID: defaultUserID, autoInsertBreaks: autoInsertBreaks}
}

// RegisterRoutes mounts every endpoint on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/analyze", h.Analyze)
	r.Get("/schedule-breaks", h.ScheduleBreaks)

	r.Post("/checkin/{period}", h.RecordCheckin)
	r.Get("/checkin/history", h.CheckinHistory)
	r.Get("/checkin/status", h.CheckinStatus)
	r.Get("/checkin/analytics", h.CheckinAnalytics)

	r.Post("/breaks/start", h.StartBreak)
	r.Post("/breaks/complete", h.CompleteBreak)
	r.Post("/breaks/skip", h.SkipBreak)
	r.Get("/breaks/current", h.CurrentBreak)
	r.Get("/breaks/history", h.BreakHistory)
	r.Get("/breaks/content", h.BreakContent)
	r.Get("/breaks/types", h.BreakTypes)

	r.Get("/music-therapy", h.MusicTherapy)
	r.Get("/video-therapy", h.VideoTherapy)
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// userID reads the user query parameter, defaulting to the configured user.
func (h *Handler) userID(r *http.Request) string {
	if user := r.URL.Query().Get("user"); user != "" {
		return user
	}
	return h.defaultUserID
}

// intQuery reads an integer query parameter with a fallback.
func intQuery(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// Home reports the service identity and its endpoints.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"service": "respite",
		"status":  "running",
		"endpoints": map[string]string{
			"GET /analyze":           "Stress analysis",
			"GET /schedule-breaks":   "Break scheduler",
			"POST /checkin/{period}": "Record a check-in",
			"GET /checkin/history":   "Recent check-ins",
			"GET /checkin/status":    "Today's check-in status",
			"GET /checkin/analytics": "Check-in aggregates",
			"POST /breaks/start":     "Start a break session",
			"POST /breaks/complete":  "Complete the active break",
			"POST /breaks/skip":      "Skip a scheduled break",
			"GET /breaks/current":    "Active break session",
			"GET /breaks/history":    "Break history and stats",
			"GET /breaks/content":    "Guided break content",
			"GET /breaks/types":      "Available break types",
			"GET /music-therapy":     "Track recommendations",
			"GET /video-therapy":     "Video recommendations",
		},
	})
}
