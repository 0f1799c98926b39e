package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Directory = "frames"
	cfg.Output = "out.gif"
	cfg.Extension = ".png"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Extension != "png" {
		t.Errorf("leading dot not stripped: %q", cfg.Extension)
	}

	bad := Config{Loop: -1, Sort: "random"}
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"directory", "output", "dpi", "duration", "loop", "sort", "unnumbered", "single frame"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %s: %v", want, err)
		}
	}
}

func TestLoadJobs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.yaml")
	err := os.WriteFile(path, []byte(`workers: 2
jobs:
  - directory: a
    output: a.gif
  - directory: b
    output: b.gif
    extension: png
    duration: 100
    loop: 3
    sort: lexical
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	jobs, err := LoadJobs(path)
	if err != nil {
		t.Fatalf("LoadJobs failed: %v", err)
	}
	if jobs.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", jobs.Workers)
	}

	first := Default()
	first.Directory, first.Output = "a", "a.gif"
	second := Default()
	second.Directory, second.Output = "b", "b.gif"
	second.Extension, second.Duration, second.Loop, second.Sort = "png", 100, 3, SortLexical

	if diff := cmp.Diff([]Config{first, second}, jobs.Jobs); diff != "" {
		t.Errorf("unexpected jobs (-want +got):\n%s", diff)
	}
}

func TestLoadJobsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.yaml")
	os.WriteFile(path, []byte("jobs:\n  - directory: a\n    dpi: 0\n"), 0644)

	_, err := LoadJobs(path)
	if err == nil || !strings.Contains(err.Error(), "job 0") {
		t.Fatalf("expected job 0 error, got %v", err)
	}

	os.WriteFile(path, []byte("workers: 1\n"), 0644)
	if _, err := LoadJobs(path); err == nil {
		t.Fatal("expected error for empty job list")
	}
}
