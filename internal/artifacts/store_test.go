package artifacts

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stampvoice/internal/services"
)

func TestSaveResultCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	store := NewStore(dir)

	path, err := store.SaveResult(`{"country":"France","confidence":0.9}`)
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if path != filepath.Join(dir, "result.json") {
		t.Fatalf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("result is not valid json: %v", err)
	}
	if decoded["country"] != "France" || decoded["confidence"] != 0.9 {
		t.Fatalf("unexpected result %v", decoded)
	}
	if !strings.Contains(string(data), "  \"country\"") {
		t.Fatalf("result not pretty-printed:\n%s", data)
	}
}

func TestSaveResultMalformedLeavesPreviousResult(t *testing.T) {
	store := NewStore(t.TempDir())

	first, err := store.SaveResult(`{"country":"France"}`)
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	before, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}

	_, err = store.SaveResult("not json at all")
	if !errors.Is(err, services.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
	if payload, ok := services.Payload(err); !ok || payload != "not json at all" {
		t.Fatalf("raw payload missing from error: %q, %v", payload, ok)
	}

	after, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("previous result removed: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("previous result modified by failed save")
	}
}

func TestSaveResultMalformedWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	store := NewStore(dir)

	if _, err := store.SaveResult("{"); err == nil {
		t.Fatal("expected malformed error")
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("output dir should not exist after malformed save, stat err=%v", err)
	}
}

func TestSaveVoiceScriptAndAudio(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	scriptPath, err := store.SaveVoiceScript("Bonjour! A short narration.")
	if err != nil {
		t.Fatalf("SaveVoiceScript: %v", err)
	}
	if filepath.Base(scriptPath) != "voice_script.txt" {
		t.Fatalf("unexpected script path %q", scriptPath)
	}
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		t.Fatalf("read script: %v", err)
	}
	if string(script) != "Bonjour! A short narration." {
		t.Fatalf("script altered: %q", script)
	}

	audio := []byte{1, 2, 3, 4}
	audioPath, err := store.SaveAudio(audio, "FLAC")
	if err != nil {
		t.Fatalf("SaveAudio: %v", err)
	}
	if filepath.Base(audioPath) != "result.flac" {
		t.Fatalf("unexpected audio path %q", audioPath)
	}
	got, err := os.ReadFile(audioPath)
	if err != nil {
		t.Fatalf("read audio: %v", err)
	}
	if len(got) != len(audio) {
		t.Fatalf("audio length %d, want %d", len(got), len(audio))
	}
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if _, err := store.SaveResult(`{"ok":true}`); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}
