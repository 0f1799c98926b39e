// Package batch runs independent animation builds side by side.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/img2gif/internal/config"
)

// Run calls run for every job with at most workers jobs in flight. A failed
// job does not stop the others. Jobs not started before ctx is cancelled
// fail with the context's error; all failures are returned joined.
func Run(ctx context.Context, jobs []config.Config, workers int, run func(context.Context, *config.Config) error) error {
	if workers < 1 {
		workers = 1
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := range jobs {
		job := &jobs[i]
		g.Go(func() error {
			err := ctx.Err()
			if err == nil {
				err = run(ctx, job)
			}
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("job %d (%s): %w", i, job.Output, err))
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()
	return errors.Join(errs...)
}
