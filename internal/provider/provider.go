// Package provider holds the clients for external calendar, task,
// music and video services. Every call is context-bound with an
// explicit timeout; the service layer degrades provider failures to
// empty inputs rather than failing the operation.
package provider

import (
	"context"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

const defaultTimeout = 10 * time.Second

// InsertResult describes a calendar event created for a break.
type InsertResult struct {
	EventID   string `json:"event_id"`
	EventLink string `json:"event_link"`
	Summary   string `json:"summary"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// CalendarProvider fetches upcoming events and inserts break events.
type CalendarProvider interface {
	ListEvents(ctx context.Context, windowDays int) ([]domain.CalendarEvent, error)
	InsertEvent(ctx context.Context, start time.Time, durationMin int, title, description string) (InsertResult, error)
}

// TaskProvider fetches the task backlog.
type TaskProvider interface {
	ListTasks(ctx context.Context) ([]domain.TaskRecord, error)
}

// Track is one playable result from the music catalog.
type Track struct {
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	URI        string `json:"uri"`
	URL        string `json:"url"`
	Popularity int    `json:"popularity"`
	Album      string `json:"album"`
	AlbumImage string `json:"album_image,omitempty"`
}

// MusicCatalog searches tracks by genre for the therapy endpoint.
type MusicCatalog interface {
	SearchTracks(ctx context.Context, genres []string, limit int) ([]Track, error)
}

// Video is one result from the video catalog.
type Video struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
	Channel     string `json:"channel"`
	PublishedAt string `json:"published_at"`
	QueryUsed   string `json:"query_used"`
}

// VideoCatalog searches wellness videos by query.
type VideoCatalog interface {
	SearchVideos(ctx context.Context, queries []string, maxResults int) ([]Video, error)
}
