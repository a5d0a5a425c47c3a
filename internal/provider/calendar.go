package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

const googleCalendarBaseURL = "https://www.googleapis.com/calendar/v3"

// GoogleCalendarConfig configures the calendar client.
type GoogleCalendarConfig struct {
	BaseURL     string // defaults to the Google Calendar API
	AccessToken string
	CalendarID  string // defaults to "primary"
	Timeout     time.Duration
}

// GoogleCalendar is a CalendarProvider over the Google Calendar REST API.
type GoogleCalendar struct {
	cfg  GoogleCalendarConfig
	http *http.Client
}

// NewGoogleCalendar creates a calendar client.
func NewGoogleCalendar(cfg GoogleCalendarConfig) *GoogleCalendar {
	if cfg.BaseURL == "" {
		cfg.BaseURL = googleCalendarBaseURL
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &GoogleCalendar{cfg: cfg, http: &http.Client{}}
}

type gcalTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

func (t gcalTime) value() string {
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}

type gcalEvent struct {
	ID          string   `json:"id"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Start       gcalTime `json:"start"`
	End         gcalTime `json:"end"`
	Location    string   `json:"location"`
	Attendees   []struct {
		Email string `json:"email"`
	} `json:"attendees"`
	HTMLLink string `json:"htmlLink"`
}

func (c *GoogleCalendar) ListEvents(ctx context.Context, windowDays int) ([]domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	now := time.Now().UTC()
	q := url.Values{}
	q.Set("timeMin", now.Format(time.RFC3339))
	q.Set("timeMax", now.AddDate(0, 0, windowDays).Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")
	q.Set("maxResults", "100")

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", c.cfg.BaseURL, url.PathEscape(c.cfg.CalendarID), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("listing events: status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Items []gcalEvent `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}

	events := make([]domain.CalendarEvent, 0, len(payload.Items))
	for _, item := range payload.Items {
		summary := item.Summary
		if summary == "" {
			summary = "No Title"
		}
		events = append(events, domain.CalendarEvent{
			ID:          item.ID,
			Summary:     summary,
			Description: item.Description,
			Start:       item.Start.value(),
			End:         item.End.value(),
			Location:    item.Location,
			Attendees:   len(item.Attendees),
			HTMLLink:    item.HTMLLink,
		})
	}
	return events, nil
}

func (c *GoogleCalendar) InsertEvent(ctx context.Context, start time.Time, durationMin int, title, description string) (InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	end := start.Add(time.Duration(durationMin) * time.Minute)
	body := map[string]any{
		"summary":     title,
		"description": description,
		"start":       gcalTime{DateTime: start.Format(time.RFC3339)},
		"end":         gcalTime{DateTime: end.Format(time.RFC3339)},
		"colorId":     "10",
		"reminders": map[string]any{
			"useDefault": false,
			"overrides": []map[string]any{
				{"method": "popup", "minutes": 5},
				{"method": "popup", "minutes": 1},
			},
		},
	}
	data, err := json.Marshal(body)
	if err != nil {
		return InsertResult{}, fmt.Errorf("marshaling event: %w", err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.cfg.BaseURL, url.PathEscape(c.cfg.CalendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return InsertResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return InsertResult{}, fmt.Errorf("inserting event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return InsertResult{}, fmt.Errorf("inserting event: status %d: %s", resp.StatusCode, respBody)
	}

	var created gcalEvent
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return InsertResult{}, fmt.Errorf("decoding created event: %w", err)
	}

	return InsertResult{
		EventID:   created.ID,
		EventLink: created.HTMLLink,
		Summary:   created.Summary,
		Start:     start.Format(time.RFC3339),
		End:       end.Format(time.RFC3339),
	}, nil
}
