package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestManifestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	m := New("out.gif", 0, []string{"frame1.png", "frame2.png"}, []int{200, 400})

	if err := Write(m, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "duration: 400") {
		t.Errorf("unexpected YAML:\n%s", data)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("manifest changed (-want +got):\n%s", diff)
	}
}

func TestReadMissing(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestReadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	os.WriteFile(path, []byte("frames: [unclosed"), 0644)

	_, err := Read(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse manifest "+path) {
		t.Errorf("error lacks path: %v", err)
	}
}

func TestWriteMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.yaml")
	err := Write(New("out.gif", 0, nil, nil), path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "write manifest: ") {
		t.Errorf("unexpected error: %v", err)
	}
}
