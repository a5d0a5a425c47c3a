package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const spotifyBaseURL = "https://api.spotify.com"

// SpotifyConfig configures the music catalog client.
type SpotifyConfig struct {
	BaseURL     string // defaults to the Spotify API
	AccessToken string
	Timeout     time.Duration
}

// SpotifyCatalog is a MusicCatalog over the Spotify search API.
type SpotifyCatalog struct {
	cfg  SpotifyConfig
	http *http.Client
}

// NewSpotifyCatalog creates a music catalog client.
func NewSpotifyCatalog(cfg SpotifyConfig) *SpotifyCatalog {
	if cfg.BaseURL == "" {
		cfg.BaseURL = spotifyBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &SpotifyCatalog{cfg: cfg, http: &http.Client{}}
}

type spotifyTrack struct {
	Name    string `json:"name"`
	URI     string `json:"uri"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	Popularity int `json:"popularity"`
	Album      struct {
		Name   string `json:"name"`
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
}

// SearchTracks queries one genre at a time until the limit fills,
// dropping duplicates by URI. A failed genre query is skipped, not
// fatal: partial results beat none for a therapy playlist.
func (s *SpotifyCatalog) SearchTracks(ctx context.Context, genres []string, limit int) ([]Track, error) {
	var tracks []Track
	seen := map[string]bool{}

	for _, genre := range genres {
		if len(tracks) >= limit {
			break
		}
		found, err := s.searchGenre(ctx, genre, 8)
		if err != nil {
			continue
		}
		for _, tr := range found {
			if len(tracks) >= limit {
				break
			}
			if seen[tr.URI] {
				continue
			}
			seen[tr.URI] = true
			tracks = append(tracks, tr)
		}
	}

	if len(tracks) == 0 && len(genres) > 0 {
		return nil, fmt.Errorf("no tracks found for genres %v", genres)
	}
	return tracks, nil
}

func (s *SpotifyCatalog) searchGenre(ctx context.Context, genre string, perQuery int) ([]Track, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", "genre:"+genre)
	q.Set("type", "track")
	q.Set("limit", strconv.Itoa(perQuery))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/v1/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching tracks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("searching tracks: status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Tracks struct {
			Items []spotifyTrack `json:"items"`
		} `json:"tracks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding tracks: %w", err)
	}

	out := make([]Track, 0, len(payload.Tracks.Items))
	for _, item := range payload.Tracks.Items {
		names := make([]string, 0, len(item.Artists))
		for _, a := range item.Artists {
			names = append(names, a.Name)
		}
		track := Track{
			Name:       item.Name,
			Artist:     strings.Join(names, ", "),
			URI:        item.URI,
			URL:        item.ExternalURLs.Spotify,
			Popularity: item.Popularity,
			Album:      item.Album.Name,
		}
		if len(item.Album.Images) > 0 {
			track.AlbumImage = item.Album.Images[0].URL
		}
		out = append(out, track)
	}
	return out, nil
}
