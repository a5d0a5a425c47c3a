package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	breaktrack "github.com/alexanderramin/respite/internal/breaks"
	"github.com/alexanderramin/respite/internal/checkin"
	"github.com/alexanderramin/respite/internal/domain"
	"github.com/alexanderramin/respite/internal/intelligence"
	"github.com/alexanderramin/respite/internal/llm"
	"github.com/alexanderramin/respite/internal/provider"
	"github.com/alexanderramin/respite/internal/service"
)

type fakeCalendar struct {
	events   []domain.CalendarEvent
	inserted []string
}

func (f *fakeCalendar) ListEvents(_ context.Context, _ int) ([]domain.CalendarEvent, error) {
	return f.events, nil
}

func (f *fakeCalendar) InsertEvent(_ context.Context, _ time.Time, _ int, title, _ string) (provider.InsertResult, error) {
	f.inserted = append(f.inserted, title)
	return provider.InsertResult{EventID: "ev-1", Summary: title}, nil
}

type fakeTasks struct{ tasks []domain.TaskRecord }

func (f *fakeTasks) ListTasks(_ context.Context) ([]domain.TaskRecord, error) {
	return f.tasks, nil
}

type fakeMusic struct{ tracks []provider.Track }

func (f *fakeMusic) SearchTracks(_ context.Context, _ []string, _ int) ([]provider.Track, error) {
	return f.tracks, nil
}

type fakeVideos struct{ videos []provider.Video }

func (f *fakeVideos) SearchVideos(_ context.Context, _ []string, _ int) ([]provider.Video, error) {
	return f.videos, nil
}

type downClient struct{}

func (downClient) Complete(_ context.Context, _ llm.Request) (*llm.Response, error) {
	return nil, llm.ErrUnavailable
}

func (downClient) Available(_ context.Context) bool { return true }

func apiNow() time.Time {
	return time.Date(2026, 3, 10, 10, 20, 0, 0, time.UTC)
}

func newTestRouter(t *testing.T) (chi.Router, *fakeCalendar) {
	t.Helper()
	cal := &fakeCalendar{}
	client := downClient{}
	svc := service.New(service.Deps{
		Calendar: cal,
		Tasks:    &fakeTasks{},
		Music:    &fakeMusic{tracks: []provider.Track{{Name: "Weightless"}}},
		Videos:   &fakeVideos{videos: []provider.Video{{VideoID: "v1"}}},
		Stress:   intelligence.NewStressService(client),
		Breaks:   intelligence.NewBreakService(client),
		Mood:     intelligence.NewMoodService(client),
		Ledger:   checkin.NewLedgerWithClock(checkin.NewMemoryStore(), apiNow),
		Tracker:  breaktrack.NewTrackerWithClock(breaktrack.NewMemoryHistory(), apiNow),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:    apiNow,
	})

	r := chi.NewRouter()
	NewHandler(svc, "default", false).RegisterRoutes(r)
	return r, cal
}

func doRequest(t *testing.T, r chi.Router, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHome(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "respite", body["service"])
}

func TestAnalyzeEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodGet, "/analyze", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	analysis := body["stress_analysis"].(map[string]any)
	assert.Equal(t, float64(1), analysis["stress_score"])
	assert.Equal(t, "minimal", analysis["stress_level"])
	assert.Equal(t, "unavailable", analysis["fallback_reason"])
}

func TestScheduleBreaksEndpoint(t *testing.T) {
	r, cal := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodGet, "/schedule-breaks", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	proposals := body["breaks"].([]any)
	require.Len(t, proposals, 1, "fallback plan")
	assert.Equal(t, "Keep things light and balanced", body["daily_strategy"])
	assert.Empty(t, body["scheduled_events"])
	assert.Empty(t, cal.inserted)

	ctx := body["stress_context"].(map[string]any)
	assert.Equal(t, "minimal", ctx["level"])
	assert.Equal(t, float64(1), ctx["score"])
}

func TestScheduleBreaksEndpoint_AutoInsert(t *testing.T) {
	r, cal := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodGet, "/schedule-breaks?auto_insert=true", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["scheduled_events"].([]any), 1)
	assert.Equal(t, []string{"Wellness Break - breathing"}, cal.inserted)
}

func TestRecordCheckinEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodPost, "/checkin/morning", `{"mood": 7, "stress": 3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	entry := body["checkin"].(map[string]any)
	signals := entry["signals"].(map[string]any)
	assert.Equal(t, float64(7), signals["mood"])
	assert.Equal(t, float64(3), signals["stress"])
	mood := body["mood_analysis"].(map[string]any)
	assert.Equal(t, "fair", mood["mood_state"])
}

func TestRecordCheckinEndpoint_InvalidPeriod(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodPost, "/checkin/midnight", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "invalid")
}

func TestCheckinStatusEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	_, _ = doRequest(t, r, http.MethodPost, "/checkin/morning", `{"mood": 6}`)
	rec, body := doRequest(t, r, http.MethodGet, "/checkin/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	status := body["status"].(map[string]any)
	assert.Equal(t, true, status["morning_completed"])
	assert.Equal(t, false, status["afternoon_completed"])
}

func TestCheckinAnalyticsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	_, _ = doRequest(t, r, http.MethodPost, "/checkin/morning", `{"mood": 8, "energy": 6, "stress": 2}`)
	rec, body := doRequest(t, r, http.MethodGet, "/checkin/analytics?days=7", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	analytics := body["analytics"].(map[string]any)
	assert.Equal(t, float64(1), analytics["total_checkins"])
	assert.Equal(t, float64(8), analytics["average_mood"])
}

func TestBreakLifecycleEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	// Start with defaults.
	rec, body := doRequest(t, r, http.MethodPost, "/breaks/start", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "started", body["status"])
	assert.Equal(t, "10:20", body["start_time"])
	assert.Equal(t, "10:25", body["end_time"], "default five minutes")
	breakID := body["break_id"].(string)
	require.NotEmpty(t, breakID)

	// Starting again while live conflicts.
	rec, _ = doRequest(t, r, http.MethodPost, "/breaks/start", `{"type": "walk"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The session is visible.
	rec, body = doRequest(t, r, http.MethodGet, "/breaks/current", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["active"])
	assert.Equal(t, "breathing", body["type"])
	assert.Equal(t, "Box Breathing", body["title"])

	// Complete it.
	rec, body = doRequest(t, r, http.MethodPost, "/breaks/complete", `{"break_id": "`+breakID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, "calm_point", body["reward"])

	// Now idle again.
	rec, body = doRequest(t, r, http.MethodGet, "/breaks/current", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["active"])

	// And the record shows up in history.
	rec, body = doRequest(t, r, http.MethodGet, "/breaks/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body["history"].([]any), 1)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(100), stats["completion_rate"])
}

func TestStartBreakEndpoint_UnknownType(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodPost, "/breaks/start", `{"type": "nap"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "unknown break type")
}

func TestCompleteBreakEndpoint_NoActive(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, _ := doRequest(t, r, http.MethodPost, "/breaks/complete", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSkipBreakEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodPost, "/breaks/skip", `{"break_id": "br_missing"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "skipped", body["status"])
}

func TestBreakContentEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodGet, "/breaks/content?type=breathing", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Box Breathing", body["title"])
	assert.Equal(t, float64(26), body["total_duration"])
	assert.Len(t, body["steps"].([]any), 5)
}

func TestBreakContentEndpoint_InvalidType(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, _ := doRequest(t, r, http.MethodGet, "/breaks/content?type=nap", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBreakTypesEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodGet, "/breaks/types", "")

	require.Equal(t, http.StatusOK, rec.Code)
	types := body["break_types"].([]any)
	require.Len(t, types, 4)
	first := types[0].(map[string]any)
	assert.Equal(t, "breathing", first["type"])
	assert.Equal(t, 0.4, first["duration_minutes"])
}

func TestMusicTherapyEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodGet, "/music-therapy", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total_tracks"])
}

func TestVideoTherapyEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, body := doRequest(t, r, http.MethodGet, "/video-therapy", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total_videos"])
	assert.Equal(t, provider.VideoQueriesForStress("minimal")[0], body["queries"].([]any)[0])
}
