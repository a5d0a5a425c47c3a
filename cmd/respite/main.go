package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/respite/internal/breaks"
	"github.com/alexanderramin/respite/internal/checkin"
	"github.com/alexanderramin/respite/internal/cli"
	"github.com/alexanderramin/respite/internal/config"
	"github.com/alexanderramin/respite/internal/db"
	"github.com/alexanderramin/respite/internal/intelligence"
	"github.com/alexanderramin/respite/internal/llm"
	"github.com/alexanderramin/respite/internal/provider"
	"github.com/alexanderramin/respite/internal/repository"
	"github.com/alexanderramin/respite/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger()
	slog.SetDefault(logger)

	// Stores: SQLite when a path is configured, in-memory otherwise.
	checkinStore := checkin.Store(checkin.NewMemoryStore())
	historyStore := breaks.HistoryStore(breaks.NewMemoryHistory())
	if cfg.DBPath != "" {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		checkinStore = repository.NewSQLiteCheckinStore(database)
		historyStore = repository.NewSQLiteBreakHistory(database)
	}

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewChatClient(llmCfg, observer)

	providerTimeout := time.Duration(cfg.ProviderTimeoutSec) * time.Second

	svc := service.New(service.Deps{
		Calendar: provider.NewGoogleCalendar(provider.GoogleCalendarConfig{
			AccessToken: cfg.Calendar.AccessToken,
			CalendarID:  cfg.Calendar.CalendarID,
			Timeout:     providerTimeout,
		}),
		Tasks: provider.NewNotionTasks(provider.NotionConfig{
			Token:      cfg.Notion.Token,
			DatabaseID: cfg.Notion.DatabaseID,
			Timeout:    providerTimeout,
		}),
		Music: provider.NewSpotifyCatalog(provider.SpotifyConfig{
			AccessToken: cfg.Spotify.AccessToken,
			Timeout:     providerTimeout,
		}),
		Videos: provider.NewYouTubeCatalog(provider.YouTubeConfig{
			APIKey:  cfg.YouTube.APIKey,
			Timeout: providerTimeout,
		}),
		Stress:  intelligence.NewStressService(client),
		Breaks:  intelligence.NewBreakService(client),
		Mood:    intelligence.NewMoodService(client),
		Ledger:  checkin.NewLedger(checkinStore),
		Tracker: breaks.NewTracker(historyStore),
		Logger:  logger,
	})

	app := &cli.App{Svc: svc, Cfg: cfg, Log: logger}
	return cli.NewRootCmd(app).Execute()
}

// newLogger writes human-readable logs on a terminal and JSON otherwise.
func newLogger() *slog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
