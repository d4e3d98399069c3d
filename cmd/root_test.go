package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSubcommands_Registered(t *testing.T) {
	t.Parallel()

	want := []string{"render", "varieties", "validate", "journal"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %q subcommand to be registered on rootCmd", name)
		}
	}
}

func TestRootCmd_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag      string
		shorthand string
		def       string
	}{
		{"config", "c", ""},
		{"speed", "s", "2"},
		{"variety", "v", "russet"},
		{"width", "w", "40"},
		{"height", "", "20"},
		{"output", "o", "terminal"},
		{"file", "f", ""},
		{"no-colors", "", "false"},
		{"catalog", "", "registry"},
		{"pack", "", ""},
		{"journal", "", ""},
		{"verbose", "", "false"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()
			f := rootCmd.PersistentFlags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("expected flag %q to be registered on root command", tt.flag)
			}
			if f.Shorthand != tt.shorthand {
				t.Errorf("--%s shorthand = %q, want %q", tt.flag, f.Shorthand, tt.shorthand)
			}
			if f.DefValue != tt.def {
				t.Errorf("--%s default = %q, want %q", tt.flag, f.DefValue, tt.def)
			}
		})
	}
}

func TestFlagKeys_MatchPersistentFlags(t *testing.T) {
	t.Parallel()
	for name := range flagKeys {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("flagKeys names unknown flag --%s", name)
		}
	}
}

func TestStageNames(t *testing.T) {
	t.Parallel()
	got := stageNames()
	if !strings.HasPrefix(got, "seed, germination") || !strings.HasSuffix(got, "maturity") {
		t.Errorf("stageNames() = %q", got)
	}
}

func TestPrintEvent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "stage event",
			line: `{"ts":"2026-05-01T12:00:03Z","kind":"stage_rendered","run":"r1","stage":"seed","data":{"rows":20,"cols":40}}`,
			want: "[12:00:03] stage_rendered run=r1 stage=seed cols=40 rows=20\n",
		},
		{
			name: "no data",
			line: `{"ts":"2026-05-01T12:00:09Z","kind":"run_done"}`,
			want: "[12:00:09] run_done\n",
		},
		{
			name: "not json",
			line: `garbage`,
			want: "??? garbage\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			printEvent(&buf, tt.line)
			if got := buf.String(); got != tt.want {
				t.Errorf("printEvent = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunJournal_PrintsAllLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	content := `{"ts":"2026-05-01T12:00:00Z","kind":"run_start","run":"r1"}` + "\n" +
		`{"ts":"2026-05-01T12:00:01Z","kind":"run_done","run":"r1"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	journalCmd.SetOut(&out)
	defer journalCmd.SetOut(nil)

	if err := runJournal(journalCmd, []string{path}); err != nil {
		t.Fatalf("runJournal: %v", err)
	}
	want := "[12:00:00] run_start run=r1\n[12:00:01] run_done run=r1\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunJournal_MissingFile(t *testing.T) {
	err := runJournal(journalCmd, []string{filepath.Join(t.TempDir(), "absent.jsonl")})
	if err == nil || !strings.Contains(err.Error(), "journal: open") {
		t.Errorf("runJournal(missing) = %v, want open error", err)
	}
}
