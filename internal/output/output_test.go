package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
	"gopkg.in/yaml.v3"
)

func withFormat(t *testing.T, f Format, pretty bool) {
	t.Helper()
	oldFormat, oldPretty := OutputFormat, PrettyOutput
	OutputFormat, PrettyOutput = f, pretty
	t.Cleanup(func() { OutputFormat, PrettyOutput = oldFormat, oldPretty })
}

func TestFprint_YAML(t *testing.T) {
	withFormat(t, FormatYAML, false)
	windows := []model.Window{
		{App: "Comet", PID: 1234, Title: "ChatGPT - abc", Index: 1, OnScreen: true},
	}

	var buf bytes.Buffer
	if err := Fprint(&buf, windows); err != nil {
		t.Fatal(err)
	}
	output := buf.String()

	// YAML output should be multi-line
	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}

	var decoded []model.Window
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Title != "ChatGPT - abc" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestFprint_JSONCompact(t *testing.T) {
	withFormat(t, FormatJSON, false)

	var buf bytes.Buffer
	if err := Fprint(&buf, model.Window{App: "Comet", Title: "Docs"}); err != nil {
		t.Fatal(err)
	}
	if bytes.Count(buf.Bytes(), []byte("\n")) != 1 {
		t.Errorf("compact output should be single line, got:\n%s", buf.String())
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["pid"]; ok {
		t.Error("zero pid should be omitted")
	}
	if decoded["on_screen"] != false {
		t.Error("on_screen should always be present")
	}
}

func TestFprint_JSONPretty(t *testing.T) {
	withFormat(t, FormatJSON, true)

	var buf bytes.Buffer
	if err := Fprint(&buf, model.Window{App: "Comet", Title: "Docs"}); err != nil {
		t.Fatal(err)
	}
	if bytes.Count(buf.Bytes(), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", buf.String())
	}
}

func TestFprint_UnsupportedFormat(t *testing.T) {
	withFormat(t, Format("xml"), false)
	if err := Fprint(&bytes.Buffer{}, 1); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatYAML, "yaml": FormatYAML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("agent"); err == nil {
		t.Error("expected error for unknown format")
	}
}
