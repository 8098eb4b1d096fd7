// Package config loads the mudra command configuration from MUDRA_*
// environment variables, overlaid by command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the renderer command configuration.
type Config struct {
	// Input is a keyframe sequence file (.json, .yaml). Empty plays the demo.
	Input string `env:"MUDRA_INPUT"`
	// Clips is a timeline clip file. It is used when Input is empty.
	Clips     string  `env:"MUDRA_CLIPS"`
	OutputDir string  `env:"MUDRA_OUTPUT_DIR" envDefault:"frames"`
	Backend   string  `env:"MUDRA_BACKEND"    envDefault:"raster"`
	Width     int     `env:"MUDRA_WIDTH"      envDefault:"500"`
	Height    int     `env:"MUDRA_HEIGHT"     envDefault:"500"`
	FPS       int     `env:"MUDRA_FPS"        envDefault:"30"`
	Tween     int     `env:"MUDRA_TWEEN"      envDefault:"0"`
	FontSize  float64 `env:"MUDRA_FONT_SIZE"  envDefault:"18"`
	LogLevel  string  `env:"MUDRA_LOG_LEVEL"  envDefault:"info"`
	// Realtime paces playback at FPS instead of rendering as fast as possible.
	Realtime bool `env:"MUDRA_REALTIME"`
}

// ParseConfig reads the environment, then parses args over it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, "keyframe sequence file (json or yaml)")
	fs.StringVar(&cfg.Clips, "clips", cfg.Clips, "timeline clip file, used when -input is empty")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory for rendered frames")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "drawing backend: raster, svg or vector")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "canvas width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "canvas height in pixels")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.IntVar(&cfg.Tween, "tween", cfg.Tween, "interpolated frames between keyframes")
	fs.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "sign label font size")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.Realtime, "realtime", cfg.Realtime, "pace playback at the frame rate")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and the log level.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if c.Tween < 0 {
		errs = append(errs, fmt.Errorf("tween %d must not be negative", c.Tween))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font size %g must be positive", c.FontSize))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
