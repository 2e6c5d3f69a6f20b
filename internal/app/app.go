package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"NewsRanker/internal/classify"
	"NewsRanker/internal/config"
	"NewsRanker/internal/infrastructure/cache"
	"NewsRanker/internal/infrastructure/fetch"
	"NewsRanker/internal/infrastructure/httpapi"
	"NewsRanker/internal/infrastructure/scheduler"
	"NewsRanker/internal/infrastructure/storage"
	"NewsRanker/internal/lexicon"
	"NewsRanker/internal/logging"
	"NewsRanker/internal/ports"
	"NewsRanker/internal/rank"
	"NewsRanker/internal/source"
	"NewsRanker/internal/usecase"
	"NewsRanker/pkg/logger"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	server    *httpapi.Server
	refresher *usecase.Refresher
	db        *sql.DB
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	lex := lexicon.Default()
	if cfg.Lexicon.Path != "" {
		loaded, err := lexicon.Load(cfg.Lexicon.Path)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		lex = loaded
	}

	registry := source.NewRegistry()
	registry.Register(fetch.NewAPISource(nil))
	registry.Register(fetch.NewRSSSource(nil))
	articleSource := source.NewMultiSource(registry, cfg.Feeds, baseLogger.With("component", "source"))

	var db *sql.DB
	var repository ports.InteractionRepository
	if cfg.Database.DSN != "" {
		opened, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = opened
		repository = storage.NewPostgresRepository(db)
	}

	var homepageCache ports.HomepageCache
	if cfg.Redis.Addr != "" {
		homepageCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.Database())
	}

	assembler := usecase.NewAssembler(usecase.AssemblerDeps{
		Source:     articleSource,
		Repository: repository,
		Cache:      homepageCache,
		Classifier: classify.New(lex),
		Ranker:     rank.NewEngine(),
		Hero:       rank.NewHeroValidator(lex),
		Logger:     baseLogger.With("component", "assembler"),
		CacheTTL:   cfg.Redis.TTL.Std(),
	})

	refresher := usecase.NewRefresher(
		scheduler.NewTickerDriver(cfg.Refresh.Interval.Std()),
		assembler,
		baseLogger.With("component", "refresher"),
	)

	server := httpapi.NewServer(assembler, logger.New("http"))

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		server:    server,
		refresher: refresher,
		db:        db,
	}, nil
}

// Run starts the background refresher and serves HTTP until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	if err := a.refresher.Start(ctx); err != nil {
		return fmt.Errorf("start refresher: %w", err)
	}
	defer func() {
		_ = a.refresher.Stop(context.Background())
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	srv := &http.Server{
		Addr:    a.cfg.Server.Addr,
		Handler: a.server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
