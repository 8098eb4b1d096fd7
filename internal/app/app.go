// Package app provides the main application logic for the mudra avatar renderer.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/export"
	"github.com/ayusman/mudra/internal/player"
	"github.com/ayusman/mudra/internal/render"
)

// Result summarizes a finished run.
type Result struct {
	Run      string
	Frames   int
	Dir      string
	Manifest string
}

// App renders one keyframe sequence to files.
type App struct {
	config  config.Config
	backend export.Backend
	logger  *slog.Logger

	mu     sync.RWMutex
	player *player.Player
}

// New creates an App. The configuration's backend is checked here so a
// bad value fails before any file is touched.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backend, err := export.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &App{config: cfg, backend: backend, logger: logger}, nil
}

// Run loads the sequence, plays it onto the configured backend and writes
// every frame plus a manifest. It returns when playback finishes or ctx
// is cancelled; frames written before a cancel are kept.
func (a *App) Run(ctx context.Context) (Result, error) {
	seq, err := a.Sequence()
	if err != nil {
		return Result{}, err
	}

	target, err := export.NewTarget(a.backend, a.config.Width, a.config.Height, a.config.FontSize, a.logger)
	if err != nil {
		return Result{}, fmt.Errorf("create %s target: %w", a.backend, err)
	}
	defer func() {
		if err := target.Close(); err != nil {
			a.logger.Warn("closing target", "error", err)
		}
	}()

	writer, err := export.NewWriter(export.Config{
		Dir:     a.config.OutputDir,
		Backend: a.backend,
		FPS:     a.config.FPS,
		Logger:  a.logger,
	}, target)
	if err != nil {
		return Result{}, err
	}

	rcfg := render.DefaultConfig()
	rcfg.LabelFontSize = a.config.FontSize
	renderer := render.New(rcfg, render.WithLogger(a.logger))

	opts := []player.Option{
		player.WithFPS(a.config.FPS),
		player.WithTween(a.config.Tween),
		player.WithLogger(a.logger),
		player.WithFrameHook(writer.Hook()),
	}
	if !a.config.Realtime {
		opts = append(opts, player.WithClock(player.Immediate{}))
	}
	p := player.New(target, renderer, opts...)

	a.mu.Lock()
	a.player = p
	a.mu.Unlock()

	runErr := p.Run(ctx, seq)

	m := writer.Manifest()
	res := Result{Run: m.Run, Frames: len(m.Frames), Dir: writer.Dir()}
	if res.Frames > 0 {
		path, err := writer.Finish()
		if err != nil {
			return res, err
		}
		res.Manifest = path
	}

	if err := errors.Join(runErr, writer.Err()); err != nil {
		return res, err
	}
	a.logger.Info("frames written", "run", res.Run, "frames", res.Frames, "dir", res.Dir)
	return res, nil
}

// Stop halts an in-progress Run.
func (a *App) Stop() {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.player != nil {
		a.player.Stop()
	}
}

// Player returns the player of the most recent Run, or nil.
func (a *App) Player() *player.Player {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.player
}
