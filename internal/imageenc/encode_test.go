package imageenc

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stampvoice/internal/services"
)

func TestMIMEType(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"stamp.jpg", "image/jpeg"},
		{"stamp.jpeg", "image/jpeg"},
		{"stamp.png", "image/png"},
		{"stamp.gif", "image/gif"},
		{"stamp.webp", "image/webp"},
		{"stamp.JPG", "image/jpeg"},
		{"stamp.PnG", "image/png"},
		{"stamp.WEBP", "image/webp"},
		{"stamp.tiff", "image/jpeg"},
		{"stamp.bmp", "image/jpeg"},
		{"stamp", "image/jpeg"},
		{"dir.png/stamp", "image/jpeg"},
	}
	for _, tc := range cases {
		if got := MIMEType(tc.path); got != tc.want {
			t.Errorf("MIMEType(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stamp.png")
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}

	inline, err := EncodeFile(path)
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	if inline.MIME != "image/png" {
		t.Fatalf("unexpected mime %q", inline.MIME)
	}
	decoded, err := base64.StdEncoding.DecodeString(inline.Data)
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	if string(decoded) != string(payload) {
		t.Fatal("base64 round trip mismatch")
	}
	if !strings.HasPrefix(inline.DataURL(), "data:image/png;base64,") {
		t.Fatalf("unexpected data url %q", inline.DataURL())
	}
}

func TestEncodeFileMissing(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "absent.jpg"))
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
