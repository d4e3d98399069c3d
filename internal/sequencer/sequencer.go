// Package sequencer walks the growth stages in order, renders each one, and
// hands the frame to every configured sink.
package sequencer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/papapumpkin/sprout/internal/growth"
)

// FrameFunc renders the frame for a stage.
type FrameFunc func(stage growth.Stage) string

// Sink receives rendered frames. Finish is called once after the last stage.
type Sink interface {
	WriteFrame(stage growth.Stage, frame string) error
	Finish() error
}

// Runner drives one pass through the stages. The zero value sleeps with
// time.Sleep and discards logs.
type Runner struct {
	// Sleep pauses between stages. Defaults to time.Sleep.
	Sleep func(time.Duration)

	// Logger receives a debug line per stage. Nil disables logging.
	Logger *slog.Logger
}

// Run renders every stage once, in order, and passes each frame to the sinks.
// It waits delay between stages but not after the last one; a non-positive
// delay disables waiting. The first sink error stops the run.
func (r *Runner) Run(stages []growth.Stage, frame FrameFunc, sinks []Sink, delay time.Duration) error {
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for i, stage := range stages {
		out := frame(stage)
		r.debug("stage rendered", "stage", stage.String(), "index", i+1, "of", len(stages))

		for _, s := range sinks {
			if err := s.WriteFrame(stage, out); err != nil {
				return fmt.Errorf("sequencer: stage %s: %w", stage, err)
			}
		}

		if delay > 0 && i < len(stages)-1 {
			sleep(delay)
		}
	}

	for _, s := range sinks {
		if err := s.Finish(); err != nil {
			return fmt.Errorf("sequencer: finish: %w", err)
		}
	}
	return nil
}

func (r *Runner) debug(msg string, args ...any) {
	if r.Logger == nil {
		return
	}
	r.Logger.Debug(msg, args...)
}
