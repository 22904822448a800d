package spot

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ribhisaleh/poker-trainer/internal/randutil"
)

// maxBatchWorkers caps the fan-out; spot generation is cheap and more
// goroutines stop paying off quickly.
const maxBatchWorkers = 8

// GenerateBatch produces n independent spots concurrently. Every spot gets
// its own seed drawn up front from the generator's source, so the output for
// a given top-level seed is reproducible regardless of worker count.
func (g *Generator) GenerateBatch(ctx context.Context, n int, mode Mode) ([]Spot, error) {
	if n <= 0 {
		return nil, nil
	}

	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = g.rng.Int64()
	}

	workers := runtime.NumCPU()
	if workers > maxBatchWorkers {
		workers = maxBatchWorkers
	}
	if workers > n {
		workers = n
	}

	spots := make([]Spot, n)
	group, ctx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}
		group.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				spots[i] = NewGenerator(randutil.New(seeds[i])).Generate(mode)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return spots, nil
}
