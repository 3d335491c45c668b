// internal/app/run.go
package app

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"cgmatch-core/engine"
	"cgmatch-core/hiercc"
	"cgmatch-core/profile"
	"cgmatch-core/reftable"
	"cgmatch/internal/output"
	"cgmatch/internal/timing"
)

type runParams struct {
	queries    []profile.Query
	scanner    *reftable.Scanner
	table      *hiercc.Table
	threads    int
	confidence bool
	logger     *zap.Logger
}

// runAll matches every query against the reference table and returns one
// output row per query in input order, plus the count of isolates whose
// matched type had no hierCC entry. Isolates are independent — every
// pass rescans the table from the top — so they run in a worker pool;
// rows land in an index-addressed slice to preserve input order.
func runAll(parent context.Context, p runParams) ([]output.Row, int, error) {
	threads := p.threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(p.queries) && len(p.queries) > 0 {
		threads = len(p.queries)
	}

	eng := engine.New(engine.Config{Timer: timing.NewZapTimer(p.logger)})
	rows := make([]output.Row, len(p.queries))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		misses   int
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	jobs := make(chan int)
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				q := p.queries[idx]
				best, err := eng.Run(ctx, q.Profile, p.scanner)
				if err != nil {
					fail(err)
					return
				}
				row := output.Row{
					Isolate:    q.Isolate,
					Matches:    best.Score,
					Loci:       len(q.Profile),
					Mismatches: len(q.Profile) - best.Score,
					Type:       best.Row.Type,
				}
				codes, err := p.table.Lookup(best.Row.Type)
				switch {
				case errors.Is(err, hiercc.ErrUnknownType):
					// Recoverable: emit the row with blank cluster fields.
					p.logger.Warn("matched type missing from hierCC table",
						zap.String("isolate", q.Isolate),
						zap.String("cgmlst", best.Row.Type))
					mu.Lock()
					misses++
					mu.Unlock()
				case err != nil:
					fail(err)
					return
				default:
					row.Codes = codes
				}
				if p.confidence {
					row.Confidence = hiercc.Confidence(row.Mismatches)
				}
				p.logger.Info("isolate matched",
					zap.String("isolate", q.Isolate),
					zap.String("cgmlst", best.Row.Type),
					zap.Int("matching_alleles", best.Score),
					zap.Int("mismatches", row.Mismatches),
					zap.Int("ref_line", best.Row.Line))
				rows[idx] = row
			}
		}()
	}

feed:
	for i := range p.queries {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, 0, firstErr
	}
	if err := parent.Err(); err != nil {
		return nil, 0, err
	}
	return rows, misses, nil
}
