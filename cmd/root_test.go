package cmd

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
	"github.com/bekkevard/chatgpt-toggle/internal/output"
	"gopkg.in/yaml.v3"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"status", "list", "config", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"config", "string"},
		{"format", "string"},
		{"pretty", "bool"},
		{"log-level", "string"},
		{"backend", "string"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestToggle_LaunchesWhenNoWindows(t *testing.T) {
	fake := useTestBackend(t, nil, "")

	if err := runToggle(rootCmd, nil); err != nil {
		t.Fatalf("toggle must not fail: %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "launch" {
		t.Errorf("calls = %v, want [launch]", fake.calls)
	}
}

func TestToggle_CyclesWhenFrontmostWithSibling(t *testing.T) {
	fake := useTestBackend(t, []model.Window{
		{App: "Comet", Title: "ChatGPT - abc", OnScreen: true},
		{App: "Comet", Title: "Docs", OnScreen: true},
	}, "Comet")

	if err := runToggle(rootCmd, nil); err != nil {
		t.Fatal(err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "cycle" {
		t.Errorf("calls = %v, want [cycle]", fake.calls)
	}
}

func TestToggle_RepeatedSoleWindowHidesEachTime(t *testing.T) {
	fake := useTestBackend(t, []model.Window{
		{App: "Comet", Title: "ChatGPT", OnScreen: true},
	}, "Comet")

	for i := 0; i < 2; i++ {
		if err := runToggle(rootCmd, nil); err != nil {
			t.Fatal(err)
		}
	}
	if len(fake.calls) != 2 || fake.calls[0] != "hide" || fake.calls[1] != "hide" {
		t.Errorf("calls = %v, want [hide hide]", fake.calls)
	}
}

func TestToggle_UnknownBackendStillSucceeds(t *testing.T) {
	useTestBackend(t, nil, "")
	flags := rootCmd.PersistentFlags()
	flags.Set("backend", "no-such-backend")

	if err := runToggle(rootCmd, nil); err != nil {
		t.Errorf("toggle must swallow errors, got %v", err)
	}
}

// useReport turns on --report with YAML output written to w.
func useReport(t *testing.T, w io.Writer) {
	t.Helper()
	if err := rootCmd.Flags().Set("report", "true"); err != nil {
		t.Fatal(err)
	}
	oldFormat := output.OutputFormat
	output.OutputFormat = output.FormatYAML
	rootCmd.SetOut(w)
	t.Cleanup(func() {
		rootCmd.Flags().Set("report", "false")
		output.OutputFormat = oldFormat
		rootCmd.SetOut(nil)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestToggle_ReportPrintsResult(t *testing.T) {
	useTestBackend(t, []model.Window{
		{App: "Comet", Title: "Docs", OnScreen: true},
		{App: "Comet", Title: "ChatGPT", OnScreen: false},
	}, "Comet")
	var buf bytes.Buffer
	useReport(t, &buf)

	if err := runToggle(rootCmd, nil); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		OK     bool `yaml:"ok"`
		Action struct {
			Kind string `yaml:"kind"`
		} `yaml:"action"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if !decoded.OK || decoded.Action.Kind != "raise" {
		t.Errorf("unexpected report:\n%s", buf.String())
	}
}

func TestToggle_NoReportByDefault(t *testing.T) {
	useTestBackend(t, nil, "")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)

	if err := runToggle(rootCmd, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("toggle without --report should print nothing, got:\n%s", buf.String())
	}
}

func TestToggle_ReportWriteFailureStillSucceeds(t *testing.T) {
	fake := useTestBackend(t, nil, "")
	useReport(t, failingWriter{})

	if err := runToggle(rootCmd, nil); err != nil {
		t.Errorf("toggle must swallow print errors, got %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "launch" {
		t.Errorf("calls = %v, want [launch]", fake.calls)
	}
}

func TestStatus_ReportsWithoutActing(t *testing.T) {
	fake := useTestBackend(t, []model.Window{
		{App: "Comet", Title: "Docs", OnScreen: true},
		{App: "Comet", Title: "ChatGPT", OnScreen: false},
	}, "Comet")

	var buf bytes.Buffer
	statusCmd.SetOut(&buf)
	defer statusCmd.SetOut(nil)

	if err := runStatus(statusCmd, nil); err != nil {
		t.Fatal(err)
	}
	if len(fake.calls) != 0 {
		t.Errorf("status must not act, got calls %v", fake.calls)
	}

	var decoded struct {
		Backend string `yaml:"backend"`
		Action  struct {
			Kind  string `yaml:"kind"`
			State string `yaml:"state"`
		} `yaml:"action"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if decoded.Backend != "test" {
		t.Errorf("backend = %q, want test", decoded.Backend)
	}
	if decoded.Action.Kind != "raise" || decoded.Action.State != "target-not-frontmost" {
		t.Errorf("action = %+v, want raise/target-not-frontmost", decoded.Action)
	}
}
