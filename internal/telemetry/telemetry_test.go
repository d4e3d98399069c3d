package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/sprout/internal/growth"
)

func readEvents(t *testing.T, path string) []Event {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var out []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var evt Event
		if err := json.Unmarshal([]byte(line), &evt); err != nil {
			t.Fatalf("invalid JSON line: %v\nline: %s", err, line)
		}
		out = append(out, evt)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner: %v", err)
	}
	return out
}

func TestNewEmitter_CreatesFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	em, err := NewEmitter(path, "r1")
	if err != nil {
		t.Fatalf("NewEmitter(%q): %v", path, err)
	}
	defer em.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist at %q: %v", path, err)
	}
}

func TestNewEmitter_ErrorOnBadPath(t *testing.T) {
	t.Parallel()
	_, err := NewEmitter("/nonexistent/dir/journal.jsonl", "r1")
	if err == nil {
		t.Fatal("expected error for bad path, got nil")
	}
	if !strings.Contains(err.Error(), "telemetry: open") {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}

func TestRecord_StampsRunAndTime(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	em, err := NewEmitter(path, "run-7")
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	em.Now = func() time.Time { return fixed }

	if err := em.Record(KindRunStart, "", map[string]string{"variety": "red"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := em.Record(KindRunDone, "", nil); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	events := readEvents(t, path)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].RunID != "run-7" || !events[0].Timestamp.Equal(fixed) {
		t.Errorf("event 0 = %+v", events[0])
	}
	data, ok := events[0].Data.(map[string]any)
	if !ok || data["variety"] != "red" {
		t.Errorf("event 0 data = %#v", events[0].Data)
	}
	if events[1].Kind != KindRunDone {
		t.Errorf("event 1 kind = %q, want %q", events[1].Kind, KindRunDone)
	}
}

func TestJournal_RecordsEachStage(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	em, err := NewEmitter(path, "r1")
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	j := Journal{Emitter: em}
	if err := j.WriteFrame(growth.Seed, "~-~\n▒░▓"); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if err := j.WriteFrame(growth.Maturity, ""); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if err := j.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	em.Close()

	events := readEvents(t, path)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != KindStageRendered || events[0].Stage != "seed" {
		t.Errorf("event 0 = %+v", events[0])
	}
	data := events[0].Data.(map[string]any)
	if data["rows"] != float64(2) || data["cols"] != float64(3) {
		t.Errorf("frame size = %v, want rows=2 cols=3", data)
	}
	if events[1].Stage != "maturity" {
		t.Errorf("event 1 stage = %q", events[1].Stage)
	}
}

func TestNilEmitter_NoOp(t *testing.T) {
	t.Parallel()
	var em *Emitter

	if err := em.Emit(Event{Kind: KindRunStart}); err != nil {
		t.Errorf("nil Emit: %v", err)
	}
	if err := em.Record(KindRunStart, "", nil); err != nil {
		t.Errorf("nil Record: %v", err)
	}
	if err := em.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
	if err := (Journal{}).WriteFrame(growth.Seed, "x"); err != nil {
		t.Errorf("Journal with nil emitter: %v", err)
	}
}

func TestEmit_AppendsToExistingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "append.jsonl")

	em1, err := NewEmitter(path, "r1")
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	if err := em1.Record(KindRunStart, "", nil); err != nil {
		t.Fatalf("Record: %v", err)
	}
	em1.Close()

	em2, err := NewEmitter(path, "r2")
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	if err := em2.Record(KindRunStart, "", nil); err != nil {
		t.Fatalf("Record: %v", err)
	}
	em2.Close()

	events := readEvents(t, path)
	if len(events) != 2 || events[0].RunID != "r1" || events[1].RunID != "r2" {
		t.Fatalf("events = %+v", events)
	}
}

func TestEventKinds_AreDistinct(t *testing.T) {
	t.Parallel()
	kinds := []string{KindRunStart, KindStageRendered, KindExportWritten, KindRunDone}
	seen := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		if k == "" {
			t.Errorf("empty kind constant found")
		}
		if seen[k] {
			t.Errorf("duplicate kind: %q", k)
		}
		seen[k] = true
	}
}

func TestEvent_OmitsEmptyFields(t *testing.T) {
	t.Parallel()
	evt := Event{
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Kind:      KindRunStart,
	}
	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	for _, key := range []string{`"run"`, `"stage"`, `"data"`} {
		if strings.Contains(s, key) {
			t.Errorf("expected %s to be omitted, got: %s", key, s)
		}
	}
}
