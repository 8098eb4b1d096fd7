package app

import (
	"fmt"
	"time"

	"github.com/ayusman/mudra/internal/keyframe"
	"github.com/ayusman/mudra/internal/timeline"
)

// Source reports where the App takes its keyframes from.
type Source int

const (
	// SourceDemo plays the built-in greeting.
	SourceDemo Source = iota
	// SourceSequence plays a keyframe file as is.
	SourceSequence
	// SourceClips animates a clip file through the timeline builder.
	SourceClips
)

func (s Source) String() string {
	switch s {
	case SourceSequence:
		return "sequence"
	case SourceClips:
		return "clips"
	}
	return "demo"
}

// Source picks the input: a sequence file wins over a clip file, and the
// demo is used when neither is set.
func (a *App) Source() Source {
	switch {
	case a.config.Input != "":
		return SourceSequence
	case a.config.Clips != "":
		return SourceClips
	}
	return SourceDemo
}

// Sequence loads the keyframes to play.
func (a *App) Sequence() (keyframe.Sequence, error) {
	src := a.Source()
	switch src {
	case SourceSequence:
		seq, err := keyframe.Load(a.config.Input)
		if err != nil {
			return nil, err
		}
		a.logger.Info("loaded sequence", "path", a.config.Input, "keyframes", len(seq), "signs", seq.Signs())
		return seq, nil
	case SourceClips:
		clips, err := timeline.LoadClips(a.config.Clips)
		if err != nil {
			return nil, err
		}
		return a.build(src, clips)
	}
	return a.build(src, timeline.Demo())
}

func (a *App) build(src Source, clips []timeline.Clip) (keyframe.Sequence, error) {
	tl, err := timeline.NewBuilder(timeline.WithFPS(a.config.FPS)).Build(clips)
	if err != nil {
		return nil, fmt.Errorf("build %s timeline: %w", src, err)
	}
	for _, e := range tl.Schedule {
		a.logger.Debug("scheduled sign", "sign", e.Sign,
			"start", e.Start.Round(time.Millisecond), "duration", e.Duration, "frames", e.FrameCount)
	}
	a.logger.Info("built timeline", "source", src.String(), "signs", len(tl.Schedule),
		"frames", len(tl.Frames), "total", tl.Total)
	return tl.Frames, nil
}
