package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

const notionBaseURL = "https://api.notion.com"

// NotionConfig configures the task client.
type NotionConfig struct {
	BaseURL    string // defaults to the Notion API
	Token      string
	DatabaseID string
	Timeout    time.Duration
}

// NotionTasks is a TaskProvider over a Notion database query.
type NotionTasks struct {
	cfg  NotionConfig
	http *http.Client
}

// NewNotionTasks creates a task client.
func NewNotionTasks(cfg NotionConfig) *NotionTasks {
	if cfg.BaseURL == "" {
		cfg.BaseURL = notionBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &NotionTasks{cfg: cfg, http: &http.Client{}}
}

// notionPage mirrors the property shapes the task database uses:
// a title, a date, a select, a status and a rich-text column.
type notionPage struct {
	ID         string `json:"id"`
	Properties struct {
		Name struct {
			Title []struct {
				PlainText string `json:"plain_text"`
			} `json:"title"`
		} `json:"Name"`
		DueDate struct {
			Date *struct {
				Start string `json:"start"`
			} `json:"date"`
		} `json:"Due date"`
		Priority struct {
			Select *struct {
				Name string `json:"name"`
			} `json:"select"`
		} `json:"Priority Level"`
		Status struct {
			Status *struct {
				Name string `json:"name"`
			} `json:"status"`
		} `json:"Status"`
		Type struct {
			RichText []struct {
				PlainText string `json:"plain_text"`
			} `json:"rich_text"`
		} `json:"Type"`
	} `json:"properties"`
}

func (n *NotionTasks) ListTasks(ctx context.Context) ([]domain.TaskRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v1/databases/%s/query", n.cfg.BaseURL, n.cfg.DatabaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.cfg.Token)
	req.Header.Set("Notion-Version", "2022-06-28")
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("querying tasks: status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Results []notionPage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding tasks: %w", err)
	}

	tasks := make([]domain.TaskRecord, 0, len(payload.Results))
	for _, page := range payload.Results {
		tasks = append(tasks, pageToTask(page))
	}
	return tasks, nil
}

func pageToTask(page notionPage) domain.TaskRecord {
	task := domain.TaskRecord{
		ID:       page.ID,
		Name:     "Untitled",
		Priority: domain.PriorityNone,
	}
	if title := page.Properties.Name.Title; len(title) > 0 && title[0].PlainText != "" {
		task.Name = title[0].PlainText
	}
	if date := page.Properties.DueDate.Date; date != nil {
		task.DueDate = date.Start
	}
	if sel := page.Properties.Priority.Select; sel != nil && sel.Name != "" {
		task.Priority = domain.TaskPriority(sel.Name)
	}
	if status := page.Properties.Status.Status; status != nil {
		task.Status = status.Name
	}
	if rich := page.Properties.Type.RichText; len(rich) > 0 {
		task.Type = rich[0].PlainText
	}
	return task
}
