package dataset

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// batchPerWorker is how many records each worker generates before the
// batch is handed to the caller.
const batchPerWorker = 8

// Build generates opts.Count records using up to opts.Workers goroutines
// and calls fn with each one, in index order. Generation stops at the
// first error from fn or from ctx.
func Build(ctx context.Context, opts Options, fn func(Record) error) error {
	workers := max(opts.Workers, 1)
	batch := make([]Record, workers*batchPerWorker)

	for start := 0; start < opts.Count; start += len(batch) {
		n := min(len(batch), opts.Count-start)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				rec, err := MakeRecord(opts, start+i)
				if err != nil {
					return err
				}
				batch[i] = rec
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, rec := range batch[:n] {
			if err := fn(rec); err != nil {
				return err
			}
		}
	}
	return ctx.Err()
}
