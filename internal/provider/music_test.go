package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spotifySearchResponse = `{
  "tracks": {
    "items": [
      {
        "name": "Weightless",
        "uri": "spotify:track:1",
        "artists": [{"name": "Marconi Union"}],
        "external_urls": {"spotify": "https://open.spotify.example/1"},
        "popularity": 70,
        "album": {"name": "Weightless", "images": [{"url": "https://i.example/a.jpg"}]}
      },
      {
        "name": "Duet",
        "uri": "spotify:track:2",
        "artists": [{"name": "A"}, {"name": "B"}],
        "external_urls": {"spotify": "https://open.spotify.example/2"},
        "popularity": 55,
        "album": {"name": "Duets", "images": []}
      }
    ]
  }
}`

func TestSpotifyCatalog_SearchTracks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "track", r.URL.Query().Get("type"))
		w.Write([]byte(spotifySearchResponse))
	}))
	defer srv.Close()

	catalog := NewSpotifyCatalog(SpotifyConfig{BaseURL: srv.URL, AccessToken: "tok"})

	// Both genres return the same two tracks: duplicates collapse by URI.
	tracks, err := catalog.SearchTracks(context.Background(), []string{"ambient", "chill"}, 10)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Weightless", tracks[0].Name)
	assert.Equal(t, "Marconi Union", tracks[0].Artist)
	assert.Equal(t, "A, B", tracks[1].Artist)
	assert.Empty(t, tracks[1].AlbumImage)
}

func TestSpotifyCatalog_LimitRespected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(spotifySearchResponse))
	}))
	defer srv.Close()

	catalog := NewSpotifyCatalog(SpotifyConfig{BaseURL: srv.URL, AccessToken: "tok"})
	tracks, err := catalog.SearchTracks(context.Background(), []string{"ambient"}, 1)
	require.NoError(t, err)
	assert.Len(t, tracks, 1)
}
