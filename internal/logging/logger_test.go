package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Format: "console", Writer: &buf})
	logger.With("component", "pipeline", "run_id", "abc").Info("result saved", "path", "output/result.json")

	line := strings.TrimSuffix(buf.String(), "\n")
	if !strings.Contains(line, " INFO pipeline: result saved") {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.Contains(line, "run_id=abc") || !strings.Contains(line, "path=output/result.json") {
		t.Fatalf("attributes missing from %q", line)
	}
}

func TestConsoleQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Format: "console", Writer: &buf})
	logger.Warn("narration failed", "error", "empty response: openai: chat")

	if !strings.Contains(buf.String(), `error="empty response: openai: chat"`) {
		t.Fatalf("value not quoted: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Format: "console", Writer: &buf})
	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record not filtered: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Format: "json", Writer: &buf})
	logger.Info("hello", "k", "v")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if record["msg"] != "hello" || record["k"] != "v" {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("DEBUG") != slog.LevelDebug {
		t.Fatal("debug not parsed")
	}
	if parseLevel("nonsense") != slog.LevelInfo {
		t.Fatal("unknown level should default to info")
	}
}
