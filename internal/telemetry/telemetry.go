// Package telemetry records a JSONL journal of growth runs. Each run start,
// rendered stage, export, and completion is appended as one JSON event, so
// runs can be inspected or followed with `sprout journal`.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/papapumpkin/sprout/internal/growth"
)

// Event kinds identify the type of journal event.
const (
	KindRunStart      = "run_start"
	KindStageRendered = "stage_rendered"
	KindExportWritten = "export_written"
	KindRunDone       = "run_done"
)

// Event is a single journal record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	RunID     string    `json:"run,omitempty"`
	Stage     string    `json:"stage,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter appends events to a JSONL file. A nil *Emitter is a valid no-op
// emitter.
type Emitter struct {
	file  *os.File
	enc   *json.Encoder
	runID string

	// Now stamps recorded events. Defaults to time.Now.
	Now func() time.Time
}

// NewEmitter opens the journal at path for appending, creating it if needed.
// Events recorded through the emitter carry runID.
func NewEmitter(path, runID string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:  f,
		enc:   json.NewEncoder(f),
		runID: runID,
		Now:   time.Now,
	}, nil
}

// Emit writes a single event as one line. Calling Emit on a nil Emitter is a
// no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Record stamps and emits an event of the given kind for this run. stage may
// be empty.
func (e *Emitter) Record(kind, stage string, data any) error {
	if e == nil {
		return nil
	}
	return e.Emit(Event{
		Timestamp: e.Now(),
		Kind:      kind,
		RunID:     e.runID,
		Stage:     stage,
		Data:      data,
	})
}

// Close closes the underlying file. Calling Close on a nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}

// Journal records a stage_rendered event for every frame. It satisfies
// sequencer.Sink.
type Journal struct {
	Emitter *Emitter
}

// WriteFrame records the stage name and frame geometry.
func (j Journal) WriteFrame(stage growth.Stage, frame string) error {
	rows, cols := frameSize(frame)
	return j.Emitter.Record(KindStageRendered, stage.String(), map[string]int{
		"rows": rows,
		"cols": cols,
	})
}

// Finish implements sequencer.Sink; run_done is recorded by the caller.
func (j Journal) Finish() error {
	return nil
}

// frameSize returns the number of lines in frame and the rune width of its
// first line.
func frameSize(frame string) (rows, cols int) {
	if frame == "" {
		return 0, 0
	}
	rows = 1
	for _, r := range frame {
		if r == '\n' {
			rows++
			continue
		}
		if rows == 1 {
			cols++
		}
	}
	return rows, cols
}
