package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rs/xid"

	"github.com/cyk-dot/rtigen/internal/config"
	"github.com/cyk-dot/rtigen/internal/ctxlog"
)

// App encapsulates the generator's dependencies, configuration, and
// lifecycle for a single run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	model  *config.Model
	runID  xid.ID
}

// NewApp is the constructor for the main application. It configures an
// isolated logger, loads the configuration document through the provided
// loader, and returns a fully initialized App instance. Pipeline validation
// happens later, in Run.
func NewApp(outW io.Writer, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	runID := xid.New()
	logger = logger.With("run", runID.String())

	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		model:  model,
		runID:  runID,
	}, nil
}
