package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/taiwoajasa245/daily-meditation/internal/database"
	"github.com/taiwoajasa245/daily-meditation/internal/meditation"
	"github.com/taiwoajasa245/daily-meditation/pkg/config"
)

type Server struct {
	port     string
	db       database.Service
	handler  http.Handler
	cfg      *config.Config
	logger   *zap.Logger
	mService meditation.MeditationService
}

// OpenSource picks the entry repository configured by ENTRIES_SOURCE. The
// returned database service is nil for file sources.
func OpenSource(cfg *config.Config) (meditation.MeditationRepo, database.Service, error) {
	switch cfg.EntriesSource {
	case config.SourceFile:
		return meditation.NewFileRepo(cfg.EntriesPath), nil, nil
	case config.SourcePostgres:
		db, err := database.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return meditation.NewMeditationRepo(db), db, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", meditation.ErrUnsupportedSource, cfg.EntriesSource)
	}
}

// NewMeditationService loads the collection once and wires the renderer.
func NewMeditationService(ctx context.Context, cfg *config.Config, repo meditation.MeditationRepo, logger *zap.Logger) (meditation.MeditationService, error) {
	entries, err := meditation.LoadCollection(ctx, repo)
	if err != nil {
		return meditation.MeditationService{}, fmt.Errorf("loading entries: %w", err)
	}

	rich, err := meditation.NewRichText(meditation.ContentFormat(cfg.ContentFormat))
	if err != nil {
		return meditation.MeditationService{}, err
	}
	renderer, err := meditation.NewRenderer(rich)
	if err != nil {
		return meditation.MeditationService{}, err
	}

	logger.Info("entries loaded",
		zap.String("source", cfg.EntriesSource),
		zap.Int("count", entries.Len()),
		zap.String("format", cfg.ContentFormat),
	)
	return meditation.NewMeditationService(entries, renderer, logger), nil
}

// NewServer constructs your app server with all dependencies injected.
func NewServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	repo, db, err := OpenSource(cfg)
	if err != nil {
		return nil, err
	}

	if db != nil {
		stats := db.Health()
		if stats["status"] != "up" {
			_ = db.Close()
			return nil, fmt.Errorf("database connection failed: %s", stats["error"])
		}
		logger.Info("database connection successful", zap.String("open_connections", stats["open_connections"]))
	}

	s, err := NewServerWithRepo(ctx, cfg, repo, logger)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}
	s.db = db
	return s, nil
}

// NewServerWithRepo builds a server over an already opened repository.
func NewServerWithRepo(ctx context.Context, cfg *config.Config, repo meditation.MeditationRepo, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	mService, err := NewMeditationService(ctx, cfg, repo, logger)
	if err != nil {
		return nil, err
	}

	s := &Server{
		port:     cfg.Port,
		cfg:      cfg,
		logger:   logger,
		mService: mService,
	}
	s.handler = s.RegisterRoutes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     zap.NewStdLog(s.logger),
	}
}

// Close releases the database pool, if any.
func (s *Server) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.logger.Info("database connection closed")
	return nil
}
