package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ayusman/mudra/internal/player"
)

// ManifestName is the file written next to the frames of each run.
const ManifestName = "manifest.json"

// FrameRecord describes one written frame.
type FrameRecord struct {
	Index    int    `json:"index"`
	Sign     string `json:"sign,omitempty"`
	File     string `json:"file"`
	AtMillis int64  `json:"at_ms"`
}

// Manifest lists the frames of one playback run.
type Manifest struct {
	Run     string        `json:"run"`
	Backend Backend       `json:"backend"`
	FPS     int           `json:"fps"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Frames  []FrameRecord `json:"frames"`
}

// Config configures a Writer.
type Config struct {
	Dir     string
	Backend Backend
	FPS     int
	Logger  *slog.Logger
}

// Writer saves each played frame of a Target into Dir/<run>/.
type Writer struct {
	cfg    Config
	target Target
	logger *slog.Logger

	mu       sync.Mutex
	manifest Manifest
	runDir   string
	err      error
}

// NewWriter creates the output directory and returns a Writer for t.
func NewWriter(cfg Config, t Target) (*Writer, error) {
	if cfg.Dir == "" {
		return nil, errors.New("output directory is required")
	}
	if cfg.FPS <= 0 {
		cfg.FPS = player.DefaultFPS
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{cfg: cfg, target: t, logger: logger}, nil
}

// Hook returns a player.FrameHook that writes every frame. The first
// failure is kept and reported by Err; later frames are still attempted.
func (w *Writer) Hook() player.FrameHook {
	return func(f player.Frame) {
		if err := w.WriteFrame(f); err != nil {
			w.logger.Error("export: write frame failed", "run", f.Run, "index", f.Index, "error", err)
		}
	}
}

// WriteFrame writes the target's current frame as f's file.
func (w *Writer) WriteFrame(f player.Frame) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if f.Run != w.manifest.Run {
		if err := w.startRun(f.Run); err != nil {
			return w.fail(err)
		}
	}

	name := fmt.Sprintf("frame-%05d.%s", f.Index, w.target.Ext())
	file, err := os.Create(filepath.Join(w.runDir, name))
	if err != nil {
		return w.fail(fmt.Errorf("create frame: %w", err))
	}
	werr := w.target.WriteFrame(file)
	if err := errors.Join(werr, file.Close()); err != nil {
		return w.fail(fmt.Errorf("frame %d: %w", f.Index, err))
	}

	w.manifest.Frames = append(w.manifest.Frames, FrameRecord{
		Index:    f.Index,
		Sign:     f.Keyframe.Sign,
		File:     name,
		AtMillis: int64(f.Index) * 1000 / int64(w.cfg.FPS),
	})
	return nil
}

func (w *Writer) startRun(run string) error {
	dir := filepath.Join(w.cfg.Dir, run)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}
	w.runDir = dir
	w.manifest = Manifest{
		Run:     run,
		Backend: w.cfg.Backend,
		FPS:     w.cfg.FPS,
		Width:   w.target.Width(),
		Height:  w.target.Height(),
	}
	return nil
}

func (w *Writer) fail(err error) error {
	if w.err == nil {
		w.err = err
	}
	return err
}

// Err returns the first write failure.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Manifest returns a copy of the current run's manifest.
func (w *Writer) Manifest() Manifest {
	w.mu.Lock()
	defer w.mu.Unlock()
	m := w.manifest
	m.Frames = append([]FrameRecord(nil), w.manifest.Frames...)
	return m
}

// Dir returns the directory holding the current run's frames.
func (w *Writer) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runDir
}

// Finish writes the manifest for the current run and returns its path.
func (w *Writer) Finish() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.runDir == "" {
		return "", errors.New("no frames written")
	}
	data, err := json.MarshalIndent(w.manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	path := filepath.Join(w.runDir, ManifestName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}
