package batch

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ivlev/img2gif/internal/config"
)

func TestRun(t *testing.T) {
	jobs := []config.Config{{Output: "a.gif"}, {Output: "b.gif"}, {Output: "c.gif"}, {Output: "d.gif"}}
	errBoom := errors.New("boom")

	var ran, inFlight, peak atomic.Int32
	err := Run(context.Background(), jobs, 2, func(ctx context.Context, cfg *config.Config) error {
		ran.Add(1)
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		if cfg.Output == "b.gif" {
			return errBoom
		}
		return nil
	})

	if ran.Load() != 4 {
		t.Errorf("expected 4 jobs to run, got %d", ran.Load())
	}
	if peak.Load() > 2 {
		t.Errorf("worker limit exceeded: %d jobs in flight", peak.Load())
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected job error, got %v", err)
	}
	if !strings.Contains(err.Error(), "job 1 (b.gif)") {
		t.Errorf("error lacks job context: %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, []config.Config{{Output: "a.gif"}}, 0, func(context.Context, *config.Config) error {
		t.Error("job ran after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunCancelledKeepsJobErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errBoom := errors.New("boom")

	jobs := []config.Config{{Output: "a.gif"}, {Output: "b.gif"}, {Output: "c.gif"}}
	var ran atomic.Int32
	err := Run(ctx, jobs, 1, func(ctx context.Context, cfg *config.Config) error {
		ran.Add(1)
		cancel()
		return errBoom
	})

	if ran.Load() != 1 {
		t.Errorf("expected 1 job to run, got %d", ran.Load())
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("job error lost: %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	for _, want := range []string{"job 0 (a.gif): boom", "job 2 (c.gif)"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error lacks %q: %v", want, err)
		}
	}
}
