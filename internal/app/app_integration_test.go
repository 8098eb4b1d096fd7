package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/export"
	"github.com/ayusman/mudra/internal/fixtures"
	"github.com/ayusman/mudra/internal/landmark"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		OutputDir: t.TempDir(),
		Backend:   "svg",
		Width:     500,
		Height:    500,
		FPS:       30,
		FontSize:  18,
		LogLevel:  "info",
	}
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_Errors(t *testing.T) {
	cfg := testConfig(t)
	cfg.Backend = "pdf"
	if _, err := New(cfg, nil); !errors.Is(err, export.ErrUnknownBackend) {
		t.Errorf("New() error = %v, want ErrUnknownBackend", err)
	}

	cfg = testConfig(t)
	cfg.FPS = 0
	if _, err := New(cfg, nil); err == nil {
		t.Error("New() should reject zero fps")
	}
}

func TestSource(t *testing.T) {
	cfg := testConfig(t)
	a, _ := New(cfg, quiet())
	if a.Source() != SourceDemo {
		t.Errorf("Source() = %v, want demo", a.Source())
	}

	cfg.Clips = "c.yaml"
	a, _ = New(cfg, quiet())
	if a.Source() != SourceClips {
		t.Errorf("Source() = %v, want clips", a.Source())
	}

	cfg.Input = "s.json"
	a, _ = New(cfg, quiet())
	if a.Source() != SourceSequence {
		t.Errorf("Source() = %v, want sequence", a.Source())
	}
}

func TestSequence_FromFile(t *testing.T) {
	cfg := testConfig(t)
	path, err := fixtures.CopyTo(t.TempDir(), "hello.json")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Input = path

	a, _ := New(cfg, quiet())
	seq, err := a.Sequence()
	if err != nil {
		t.Fatalf("Sequence() error = %v", err)
	}
	if len(seq) != 4 {
		t.Errorf("got %d keyframes, want 4", len(seq))
	}
}

func TestSequence_InvalidFile(t *testing.T) {
	cfg := testConfig(t)
	path, err := fixtures.CopyTo(t.TempDir(), "broken.json")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Input = path

	a, _ := New(cfg, quiet())
	_, err = a.Sequence()
	var invalid *landmark.InvalidPoseError
	if !errors.As(err, &invalid) {
		t.Fatalf("Sequence() error = %v, want InvalidPoseError", err)
	}
	if invalid.Count != 2 {
		t.Errorf("Count = %d, want 2", invalid.Count)
	}
}

func TestSequence_Clips(t *testing.T) {
	cfg := testConfig(t)
	path, err := fixtures.CopyTo(t.TempDir(), "greeting.yaml")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Clips = path

	a, _ := New(cfg, quiet())
	seq, err := a.Sequence()
	if err != nil {
		t.Fatalf("Sequence() error = %v", err)
	}
	signs := strings.Join(seq.Signs(), ",")
	if signs != "HELLO,THANK YOU,YES" {
		t.Errorf("signs = %s", signs)
	}
}

func TestApp_RunWritesFrames(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	for _, backend := range []string{"raster", "svg", "vector"} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Backend = backend
			path, err := fixtures.CopyTo(t.TempDir(), "hello.json")
			if err != nil {
				t.Fatal(err)
			}
			cfg.Input = path
			cfg.Tween = 1

			a, err := New(cfg, quiet())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			res, err := a.Run(context.Background())
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			// 4 keyframes with one in-between per pair.
			if res.Frames != 7 {
				t.Errorf("Frames = %d, want 7", res.Frames)
			}
			if res.Dir != filepath.Join(cfg.OutputDir, res.Run) {
				t.Errorf("Dir = %q", res.Dir)
			}
			entries, err := os.ReadDir(res.Dir)
			if err != nil {
				t.Fatal(err)
			}
			// Frames plus the manifest.
			if len(entries) != 8 {
				t.Errorf("run dir has %d entries, want 8", len(entries))
			}
			if filepath.Base(res.Manifest) != export.ManifestName {
				t.Errorf("Manifest = %q", res.Manifest)
			}
			if p := a.Player(); p == nil || p.Index() != 7 {
				t.Error("player should have played every frame")
			}
		})
	}
}

func TestApp_RunCancelled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Realtime = true

	a, err := New(cfg, quiet())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := a.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	// The first frame may already be drawn when the cancel is seen.
	if res.Frames > 1 {
		t.Errorf("Frames = %d, want at most 1", res.Frames)
	}
}
