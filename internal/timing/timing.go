// internal/timing/timing.go
package timing

import (
	"time"

	"go.uber.org/zap"
)

// ZapTimer logs operation durations at debug level. It satisfies
// engine.Timer and is handed to components explicitly; there is no
// package-level timer.
type ZapTimer struct {
	log *zap.Logger
}

func NewZapTimer(log *zap.Logger) *ZapTimer {
	return &ZapTimer{log: log}
}

func (t *ZapTimer) Observe(op string, d time.Duration) {
	t.log.Debug("operation timed", zap.String("op", op), zap.Duration("took", d))
}
