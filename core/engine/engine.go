// core/engine/engine.go
package engine

import (
	"context"
	"errors"
	"time"

	"cgmatch-core/profile"
	"cgmatch-core/reftable"
)

// Timer observes how long named operations took. Implementations are
// injected through Config; the engine never reaches for a global.
type Timer interface {
	Observe(op string, d time.Duration)
}

type noopTimer struct{}

func (noopTimer) Observe(string, time.Duration) {}

// Config controls a matching engine.
type Config struct {
	Timer Timer // nil means no instrumentation
}

// Engine finds, for one query profile at a time, the closest-matching
// row of a reference table. Safe for concurrent use: Run keeps all scan
// state on the stack.
type Engine struct {
	timer Timer
}

func New(cfg Config) *Engine {
	t := cfg.Timer
	if t == nil {
		t = noopTimer{}
	}
	return &Engine{timer: t}
}

// Best is the winning reference row for one query.
type Best struct {
	Row   reftable.Row
	Score int
}

// Tracker keeps the running best-scoring reference row across chunks.
// Replacement requires a strictly greater score, so on ties the earliest
// row in scan order wins. Reference tables routinely hold exact
// duplicates at the top score; first-seen-wins keeps output reproducible
// across reruns.
type Tracker struct {
	best  reftable.Row
	score int
}

func NewTracker() *Tracker { return &Tracker{score: -1} }

func (t *Tracker) Update(row reftable.Row, score int) {
	if score > t.score {
		t.score = score
		t.best = row
	}
}

// Best returns the winner so far; ok is false before any Update.
func (t *Tracker) Best() (reftable.Row, int, bool) {
	return t.best, t.score, t.score >= 0
}

// Run scans the full reference table once and returns the best match
// for query. Each call restarts the scan from the top of the table.
func (e *Engine) Run(ctx context.Context, query profile.Profile, sc *reftable.Scanner) (Best, error) {
	start := time.Now()
	tr := NewTracker()
	err := sc.Scan(ctx, func(rows []reftable.Row) error {
		for i := range rows {
			n, err := profile.Score(query, rows[i].Profile)
			if err != nil {
				return err
			}
			tr.Update(rows[i], n)
		}
		return nil
	})
	e.timer.Observe("reference_scan", time.Since(start))
	if err != nil {
		return Best{}, err
	}
	row, score, ok := tr.Best()
	if !ok {
		return Best{}, errors.New("reference table has no rows")
	}
	return Best{Row: row, Score: score}, nil
}
