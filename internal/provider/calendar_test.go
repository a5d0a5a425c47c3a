package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gcalListResponse = `{
  "items": [
    {
      "id": "ev-1",
      "summary": "Sprint review",
      "description": "demo day",
      "start": {"dateTime": "2026-03-10T10:00:00Z"},
      "end": {"dateTime": "2026-03-10T11:00:00Z"},
      "location": "Room 4",
      "attendees": [{"email": "a@x"}, {"email": "b@x"}],
      "htmlLink": "https://calendar.example/ev-1"
    },
    {
      "id": "ev-2",
      "start": {"date": "2026-03-11"},
      "end": {"date": "2026-03-12"}
    }
  ]
}`

func TestGoogleCalendar_ListEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
		assert.Equal(t, "startTime", r.URL.Query().Get("orderBy"))
		w.Write([]byte(gcalListResponse))
	}))
	defer srv.Close()

	client := NewGoogleCalendar(GoogleCalendarConfig{BaseURL: srv.URL, AccessToken: "tok"})
	events, err := client.ListEvents(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Sprint review", events[0].Summary)
	assert.Equal(t, "2026-03-10T10:00:00Z", events[0].Start)
	assert.Equal(t, 2, events[0].Attendees)

	// All-day events carry date-only timestamps and a default title.
	assert.Equal(t, "No Title", events[1].Summary)
	assert.Equal(t, "2026-03-11", events[1].Start)
}

func TestGoogleCalendar_InsertEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Wellness Break - Walk", body["summary"])
		assert.Equal(t, "10", body["colorId"])

		w.Write([]byte(`{"id": "ev-new", "summary": "Wellness Break - Walk", "htmlLink": "https://calendar.example/ev-new"}`))
	}))
	defer srv.Close()

	client := NewGoogleCalendar(GoogleCalendarConfig{BaseURL: srv.URL, AccessToken: "tok"})
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	result, err := client.InsertEvent(context.Background(), start, 10, "Wellness Break - Walk", "stretch your legs")
	require.NoError(t, err)
	assert.Equal(t, "ev-new", result.EventID)
	assert.Equal(t, "https://calendar.example/ev-new", result.EventLink)
	assert.Equal(t, "2026-03-10T14:00:00Z", result.Start)
	assert.Equal(t, "2026-03-10T14:10:00Z", result.End)
}
