package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/macaddy2/leadskylab/internal/config"
	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/macaddy2/leadskylab/internal/db"
	"github.com/macaddy2/leadskylab/internal/draftindex"
	"github.com/macaddy2/leadskylab/internal/fallback"
	"github.com/macaddy2/leadskylab/internal/gemini"
	"github.com/macaddy2/leadskylab/internal/notify"
	"github.com/macaddy2/leadskylab/internal/studio"
)

// App is the main application container holding all dependencies.
type App struct {
	Config    *config.Config
	Store     *db.Store
	Generator gemini.Generator
	Studio    *studio.Studio
	Templates *fallback.Library
	Notifier  notify.Notifier

	index *draftindex.Index
}

// New creates a new application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if _, err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	templates, err := fallback.LoadLibrary(cfg.TemplatesPath)
	if err != nil {
		store.Close()
		return nil, err
	}

	gen := gemini.New(ctx, gemini.Config{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		JSONMode: cfg.GeminiJSONMode,
		BaseURL:  cfg.GeminiBaseURL,
	})

	notifier := notify.NewLogNotifier(slog.Default())

	return &App{
		Config:    cfg,
		Store:     store,
		Generator: gen,
		Studio: studio.New(studio.Config{
			Generator:    gen,
			Notifier:     notifier,
			HashtagCount: cfg.HashtagCount,
		}),
		Templates: templates,
		Notifier:  notifier,
	}, nil
}

// GenerationContext bounds a generation call by the configured timeout.
func (a *App) GenerationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.Config.GenerationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.Config.GenerationTimeout)
}

// Index opens the draft index on first use. It returns nil, nil when the
// index is disabled.
func (a *App) Index() (*draftindex.Index, error) {
	if a.index != nil || a.Config.VecLitePath == "" {
		return a.index, nil
	}

	idx, err := draftindex.New(draftindex.Config{
		Path:       a.Config.VecLitePath,
		ConfigPath: a.Config.VecLiteConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("open draft index: %w", err)
	}
	a.index = idx
	return idx, nil
}

// SaveDrafts persists drafts in one transaction and, once committed, adds
// them to the draft index. Index failures are logged and never fail the save.
func (a *App) SaveDrafts(ctx context.Context, drafts ...content.Draft) error {
	drafts, err := a.Store.SaveDrafts(ctx, drafts...)
	if err != nil {
		return fmt.Errorf("save drafts: %w", err)
	}

	idx, err := a.Index()
	if err != nil {
		slog.Warn("draft index unavailable, skipping indexing", "error", err)
		return nil
	}
	if idx == nil {
		return nil
	}

	for _, d := range drafts {
		if _, err := idx.InsertDraft(ctx, d); err != nil {
			slog.Warn("failed to index draft", "id", d.ID, "error", err)
		}
	}
	if err := idx.Sync(); err != nil {
		slog.Warn("failed to sync draft index", "error", err)
	}
	return nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.index != nil {
		if err := a.index.Close(); err != nil {
			slog.Warn("failed to close draft index", "error", err)
		}
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
