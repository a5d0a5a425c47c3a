// Package service composes providers, the check-in ledger, the
// intelligence services and the break tracker into the operations the
// API exposes. Provider failures degrade to empty inputs; no operation
// here fails because an upstream did.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	breaktrack "github.com/alexanderramin/respite/internal/breaks"
	"github.com/alexanderramin/respite/internal/checkin"
	"github.com/alexanderramin/respite/internal/domain"
	"github.com/alexanderramin/respite/internal/intelligence"
	"github.com/alexanderramin/respite/internal/provider"
	"github.com/alexanderramin/respite/internal/scheduler"
	"github.com/alexanderramin/respite/internal/workload"
)

const (
	analysisWindowDays = 7
	rollupWindowDays   = 7
	musicTrackLimit    = 30
	videosPerQuery     = 4
)

// Wellness is the application service behind every API operation.
type Wellness struct {
	calendar provider.CalendarProvider
	tasks    provider.TaskProvider
	music    provider.MusicCatalog
	videos   provider.VideoCatalog

	stress intelligence.StressService
	breaks intelligence.BreakService
	mood   intelligence.MoodService

	ledger  *checkin.Ledger
	tracker *breaktrack.Tracker

	log *slog.Logger
	now func() time.Time
}

// Deps bundles the collaborators of the wellness service.
type Deps struct {
	Calendar provider.CalendarProvider
	Tasks    provider.TaskProvider
	Music    provider.MusicCatalog
	Videos   provider.VideoCatalog
	Stress   intelligence.StressService
	Breaks   intelligence.BreakService
	Mood     intelligence.MoodService
	Ledger   *checkin.Ledger
	Tracker  *breaktrack.Tracker
	Logger   *slog.Logger
	Clock    func() time.Time
}

// New creates the wellness service.
func New(deps Deps) *Wellness {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &Wellness{
		calendar: deps.Calendar,
		tasks:    deps.Tasks,
		music:    deps.Music,
		videos:   deps.Videos,
		stress:   deps.Stress,
		breaks:   deps.Breaks,
		mood:     deps.Mood,
		ledger:   deps.Ledger,
		tracker:  deps.Tracker,
		log:      deps.Logger,
		now:      deps.Clock,
	}
}

// Tracker exposes the break session tracker for the API layer.
func (w *Wellness) Tracker() *breaktrack.Tracker { return w.tracker }

// AnalyzeResult is the outcome of a full workload analysis.
type AnalyzeResult struct {
	Assessment     *intelligence.StressAssessment `json:"stress_analysis"`
	EventsAnalyzed int                            `json:"events_analyzed"`
	TasksAnalyzed  int                            `json:"tasks_analyzed"`
	Timestamp      time.Time                      `json:"timestamp"`
}

// Analyze fetches the week's events and tasks, extracts workload
// metrics and scores them. Either provider failing yields an empty
// input, not a failed analysis.
func (w *Wellness) Analyze(ctx context.Context) AnalyzeResult {
	events, tasks := w.fetchInputs(ctx)
	metrics := w.extractMetrics(events, tasks)

	assessment := w.stress.Score(ctx, metrics)
	if assessment.FallbackReason != "" {
		w.log.Warn("stress scoring degraded", "reason", assessment.FallbackReason)
	}

	return AnalyzeResult{
		Assessment:     assessment,
		EventsAnalyzed: len(events),
		TasksAnalyzed:  len(tasks),
		Timestamp:      w.now(),
	}
}

// ScheduleResult is a day's break plan plus everything that shaped it.
type ScheduleResult struct {
	Plan       *intelligence.BreakPlan        `json:"plan"`
	Slots      []scheduler.Slot               `json:"available_slots"`
	Intel      domain.CheckinIntelligence     `json:"checkin_intelligence"`
	Assessment *intelligence.StressAssessment `json:"stress_context"`
	Inserted   []provider.InsertResult        `json:"scheduled_events,omitempty"`
}

// ScheduleBreaks plans today's breaks from free slots, recent check-ins
// and the current stress picture. With autoInsert set, each proposal is
// written to the calendar; a failed insert is logged and skipped.
func (w *Wellness) ScheduleBreaks(ctx context.Context, userID string, autoInsert bool) ScheduleResult {
	events, tasks := w.fetchInputs(ctx)
	metrics := w.extractMetrics(events, tasks)
	now := w.now()

	intel := domain.NeutralIntelligence()
	if history, err := w.ledger.Recent(ctx, userID, rollupWindowDays); err != nil {
		w.log.Warn("check-in history unavailable", "error", err)
	} else {
		intel = checkin.Rollup(history, rollupWindowDays, now)
	}

	assessment := w.stress.Score(ctx, metrics)
	slots := scheduler.DiscoverSlots(events, now)
	plan := w.breaks.Allocate(ctx, slots, intel, assessment, now)
	if plan.FallbackReason != "" {
		w.log.Warn("break planning degraded", "reason", plan.FallbackReason)
	}

	result := ScheduleResult{
		Plan:       plan,
		Slots:      slots,
		Intel:      intel,
		Assessment: assessment,
	}

	if autoInsert {
		result.Inserted = w.insertBreaks(ctx, plan.RecommendedBreaks)
	}
	return result
}

func (w *Wellness) insertBreaks(ctx context.Context, proposals []domain.BreakProposal) []provider.InsertResult {
	var inserted []provider.InsertResult
	for _, p := range proposals {
		title := fmt.Sprintf("Wellness Break - %s", p.Type)
		description := fmt.Sprintf("Type: %s\nReason: %s", p.Type, p.Reasoning)

		res, err := w.calendar.InsertEvent(ctx, p.Start, p.DurationMin, title, description)
		if err != nil {
			w.log.Warn("break insert failed", "slot", p.TimeSlot, "error", err)
			continue
		}
		inserted = append(inserted, res)
	}
	return inserted
}

// CheckinResult pairs the stored entry with its mood interpretation.
type CheckinResult struct {
	Entry domain.CheckinEntry        `json:"checkin"`
	Mood  *intelligence.MoodAnalysis `json:"mood_analysis"`
}

// RecordCheckin stores a check-in and interprets it against recent
// history. Only an unknown period is an error; payloads are never
// rejected.
func (w *Wellness) RecordCheckin(ctx context.Context, userID string, period domain.CheckinPeriod, payload map[string]any) (CheckinResult, error) {
	entry, err := w.ledger.Record(ctx, userID, period, payload)
	if err != nil {
		return CheckinResult{}, err
	}

	history, err := w.ledger.Recent(ctx, userID, rollupWindowDays)
	if err != nil {
		w.log.Warn("check-in history unavailable", "error", err)
		history = domain.CheckinHistory{}
	}
	intel := checkin.Rollup(history, rollupWindowDays, w.now())

	analysis := w.mood.Analyze(ctx, history, entry.Signals, intel)
	if analysis.FallbackReason != "" {
		w.log.Warn("mood analysis degraded", "reason", analysis.FallbackReason)
	}

	return CheckinResult{Entry: entry, Mood: analysis}, nil
}

// CheckinHistory returns the user's per-period entries for a window.
func (w *Wellness) CheckinHistory(ctx context.Context, userID string, days int) (domain.CheckinHistory, error) {
	return w.ledger.Recent(ctx, userID, days)
}

// CheckinStatus reports which check-in is due right now.
func (w *Wellness) CheckinStatus(ctx context.Context, userID string) (checkin.TodayStatus, error) {
	history, err := w.ledger.Recent(ctx, userID, 1)
	if err != nil {
		return checkin.TodayStatus{}, err
	}
	return checkin.StatusToday(history, w.now()), nil
}

// CheckinAnalytics aggregates a window of check-ins.
func (w *Wellness) CheckinAnalytics(ctx context.Context, userID string, days int) (checkin.Analytics, error) {
	history, err := w.ledger.Recent(ctx, userID, days)
	if err != nil {
		return checkin.Analytics{}, err
	}
	return checkin.Analyze(history), nil
}

// MusicTherapyResult carries the assessment-driven track selection.
type MusicTherapyResult struct {
	Assessment *intelligence.StressAssessment `json:"stress_analysis"`
	Genres     []string                       `json:"genres"`
	Tracks     []provider.Track               `json:"tracks"`
}

// MusicTherapy analyzes the workload and searches the music catalog
// for tracks matching the recommended genres. A catalog failure yields
// an empty track list.
func (w *Wellness) MusicTherapy(ctx context.Context) MusicTherapyResult {
	analysis := w.Analyze(ctx)

	genres := analysis.Assessment.MusicGenres
	tracks, err := w.music.SearchTracks(ctx, genres, musicTrackLimit)
	if err != nil {
		w.log.Warn("music catalog unavailable", "error", err)
		tracks = nil
	}

	return MusicTherapyResult{
		Assessment: analysis.Assessment,
		Genres:     genres,
		Tracks:     tracks,
	}
}

// VideoTherapyResult carries the stress-level-driven video selection.
type VideoTherapyResult struct {
	Assessment *intelligence.StressAssessment `json:"stress_analysis"`
	Queries    []string                       `json:"queries"`
	Videos     []provider.Video               `json:"videos"`
}

// VideoTherapy analyzes the workload and searches the video catalog
// with the query set curated for the resulting stress level.
func (w *Wellness) VideoTherapy(ctx context.Context) VideoTherapyResult {
	analysis := w.Analyze(ctx)

	queries := provider.VideoQueriesForStress(analysis.Assessment.StressLevel)
	videos, err := w.videos.SearchVideos(ctx, queries, videosPerQuery)
	if err != nil {
		w.log.Warn("video catalog unavailable", "error", err)
		videos = nil
	}

	return VideoTherapyResult{
		Assessment: analysis.Assessment,
		Queries:    queries,
		Videos:     videos,
	}
}

func (w *Wellness) fetchInputs(ctx context.Context) ([]domain.CalendarEvent, []domain.TaskRecord) {
	events, err := w.calendar.ListEvents(ctx, analysisWindowDays)
	if err != nil {
		w.log.Warn("calendar unavailable", "error", err)
		events = nil
	}

	tasks, err := w.tasks.ListTasks(ctx)
	if err != nil {
		w.log.Warn("task provider unavailable", "error", err)
		tasks = nil
	}
	return events, tasks
}

func (w *Wellness) extractMetrics(events []domain.CalendarEvent, tasks []domain.TaskRecord) workload.Metrics {
	metrics, dropped := workload.Analyze(events, tasks, w.now())
	for _, name := range dropped {
		w.log.Warn("task due date unparsable, dropped", "task", name)
	}
	return metrics
}
