package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stampvoice/internal/services"
	"stampvoice/internal/stamp"
)

const (
	// ResultFileName is the fixed name of the structured analysis artifact.
	ResultFileName = "result.json"
	// VoiceScriptFileName is the fixed name of the narration text artifact.
	VoiceScriptFileName = "voice_script.txt"

	audioFileBase = "result"
)

// Store writes pipeline artifacts into a single output directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir, defaulting to "output" when blank.
func NewStore(dir string) *Store {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "output"
	}
	return &Store{dir: dir}
}

// Dir reports the output directory.
func (s *Store) Dir() string { return s.dir }

// ResultPath reports where the structured record is (or will be) written.
func (s *Store) ResultPath() string {
	return filepath.Join(s.dir, ResultFileName)
}

// SaveResult validates the raw analysis text as JSON, pretty-prints it, and
// writes it to result.json. On a malformed payload nothing is written and any
// existing result.json is left untouched.
func (s *Store) SaveResult(raw string) (string, error) {
	formatted, err := stamp.FormatJSON(raw)
	if err != nil {
		return "", err
	}
	path := s.ResultPath()
	if err := s.write(path, formatted); err != nil {
		return "", err
	}
	return path, nil
}

// SaveVoiceScript writes the narration text to voice_script.txt.
func (s *Store) SaveVoiceScript(script string) (string, error) {
	path := filepath.Join(s.dir, VoiceScriptFileName)
	if err := s.write(path, []byte(script)); err != nil {
		return "", err
	}
	return path, nil
}

// SaveAudio writes the audio payload to result.<format>.
func (s *Store) SaveAudio(audio []byte, format string) (string, error) {
	path := filepath.Join(s.dir, audioFileBase+"."+strings.ToLower(strings.TrimSpace(format)))
	if err := s.write(path, audio); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) write(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return services.Wrap(services.ErrUnexpected, "artifacts", "create output directory", s.dir, err)
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return services.Wrap(services.ErrUnexpected, "artifacts", "write artifact", path, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
