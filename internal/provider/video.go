package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const youtubeBaseURL = "https://www.googleapis.com"

// YouTubeConfig configures the video catalog client.
type YouTubeConfig struct {
	BaseURL string // defaults to the YouTube Data API
	APIKey  string
	Timeout time.Duration
}

// YouTubeCatalog is a VideoCatalog over the YouTube search API.
type YouTubeCatalog struct {
	cfg  YouTubeConfig
	http *http.Client
}

// NewYouTubeCatalog creates a video catalog client.
func NewYouTubeCatalog(cfg YouTubeConfig) *YouTubeCatalog {
	if cfg.BaseURL == "" {
		cfg.BaseURL = youtubeBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &YouTubeCatalog{cfg: cfg, http: &http.Client{}}
}

// SearchVideos runs every query and concatenates results. A failed
// query is skipped so one quota error doesn't empty the whole set.
func (y *YouTubeCatalog) SearchVideos(ctx context.Context, queries []string, maxResults int) ([]Video, error) {
	var videos []Video
	for _, query := range queries {
		found, err := y.search(ctx, query, maxResults)
		if err != nil {
			continue
		}
		videos = append(videos, found...)
	}

	if len(videos) == 0 && len(queries) > 0 {
		return nil, fmt.Errorf("no videos found for %d queries", len(queries))
	}
	return videos, nil
}

func (y *YouTubeCatalog) search(ctx context.Context, query string, maxResults int) ([]Video, error) {
	ctx, cancel := context.WithTimeout(ctx, y.cfg.Timeout)
	defer cancel()

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("q", query)
	q.Set("type", "video")
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("key", y.cfg.APIKey)
	q.Set("videoDuration", "medium") // 4-20 minute videos
	q.Set("order", "relevance")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.cfg.BaseURL+"/youtube/v3/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := y.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching videos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("searching videos: status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				Thumbnails  struct {
					High struct {
						URL string `json:"url"`
					} `json:"high"`
				} `json:"thumbnails"`
				ChannelTitle string `json:"channelTitle"`
				PublishedAt  string `json:"publishedAt"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding videos: %w", err)
	}

	out := make([]Video, 0, len(payload.Items))
	for _, item := range payload.Items {
		out = append(out, Video{
			VideoID:     item.ID.VideoID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Thumbnail:   item.Snippet.Thumbnails.High.URL,
			URL:         "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Channel:     item.Snippet.ChannelTitle,
			PublishedAt: item.Snippet.PublishedAt,
			QueryUsed:   query,
		})
	}
	return out, nil
}

// videoQueryTable maps a stress level to curated search queries.
var videoQueryTable = map[string][]string{
	"critical": {
		"5 minute emergency calm meditation",
		"instant anxiety relief breathing",
		"panic attack calming technique",
	},
	"severe": {
		"10 minute stress relief meditation",
		"deep calm breathing exercise",
		"guided relaxation for anxiety",
	},
	"high": {
		"stress relief meditation",
		"calming music for anxiety",
		"guided breathing for stress",
	},
	"moderate": {
		"focus music for work",
		"relaxing study music",
		"mindfulness meditation",
	},
	"low": {
		"uplifting music",
		"motivation video",
		"positive affirmations",
	},
	"minimal": {
		"energizing music",
		"productivity boost meditation",
		"morning motivation",
	},
}

// VideoQueriesForStress returns the curated query list for a stress
// level, with a generic default for unknown labels.
func VideoQueriesForStress(level string) []string {
	if queries, ok := videoQueryTable[level]; ok {
		return queries
	}
	return []string{"relaxing music", "meditation"}
}
