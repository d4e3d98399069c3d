package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/sprout/internal/telemetry"
	"github.com/papapumpkin/sprout/internal/ui"
)

var journalCmd = &cobra.Command{
	Use:   "journal <path>",
	Short: "View a JSONL run journal",
	Long: `Reads and formats a run journal written with --journal.

With --follow (-F), watches the file for new events (like tail -f).`,
	Args: cobra.ExactArgs(1),
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().BoolP("follow", "F", false, "follow the file for new events")
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) error {
	follow, _ := cmd.Flags().GetBool("follow")
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("journal: open %s: %w", path, err)
	}
	defer f.Close()

	tail := &lineTail{r: bufio.NewReader(f)}
	if err := tail.drain(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("journal: read %s: %w", path, err)
	}

	if !follow {
		tail.flush(cmd.OutOrStdout())
		return nil
	}
	ui.New(cmd.ErrOrStderr(), false).Info("following " + path + " (Ctrl-C to stop)")
	return tailFollow(cmd.OutOrStdout(), tail, path)
}

// lineTail reads complete lines from a growing file. A trailing line without
// its newline is held back until the rest of it arrives.
type lineTail struct {
	r       *bufio.Reader
	pending string
}

// drain prints every complete line currently readable.
func (t *lineTail) drain(w io.Writer) error {
	for {
		chunk, err := t.r.ReadString('\n')
		t.pending += chunk
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line := strings.TrimSpace(t.pending); line != "" {
			printEvent(w, line)
		}
		t.pending = ""
	}
}

// flush prints a held-back final line, if any.
func (t *lineTail) flush(w io.Writer) {
	if line := strings.TrimSpace(t.pending); line != "" {
		printEvent(w, line)
	}
	t.pending = ""
}

// tailFollow watches the file for new data using fsnotify and prints new events.
func tailFollow(w io.Writer, tail *lineTail, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("journal: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("journal: watch %s: %w", path, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == 0 {
				continue
			}
			if err := tail.drain(w); err != nil {
				return fmt.Errorf("journal: read %s: %w", path, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("journal: watch %s: %w", path, err)
		}
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
func printEvent(w io.Writer, line string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("[%s]", evt.Timestamp.Format(time.TimeOnly)))
	parts = append(parts, evt.Kind)

	if evt.RunID != "" {
		parts = append(parts, fmt.Sprintf("run=%s", evt.RunID))
	}
	if evt.Stage != "" {
		parts = append(parts, fmt.Sprintf("stage=%s", evt.Stage))
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}
