package delivery

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// DefaultPollInterval is the delay between two ticks when Config.Interval is zero.
const DefaultPollInterval = time.Second

// ErrDeadline is returned by Wait when a tick finds no match and the
// configured timeout has elapsed.
var ErrDeadline = errors.New("poll deadline reached")

// FetchFunc returns the candidates visible at one tick.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// MatchFunc reports whether a candidate satisfies the wait. An error aborts
// the wait.
type MatchFunc[T any] func(candidate T) (bool, error)

// Config holds the timing of a wait.
type Config struct {
	// Interval is the fixed delay between the end of one tick and the
	// start of the next. Zero means DefaultPollInterval.
	Interval time.Duration

	// Timeout bounds the wait. It is compared against the elapsed time
	// after every unmatched tick; a tick in flight is never interrupted.
	// Zero or negative allows exactly one tick.
	Timeout time.Duration

	// Logger receives tick-level debug logs. Nil disables logging.
	Logger *zap.Logger

	// Now is the clock used to measure elapsed time. Nil means time.Now.
	Now func() time.Time
}

// Wait fetches candidates, returns the first one accepted by match, and
// otherwise sleeps Interval and tries again until Timeout has elapsed.
//
// Ticks run sequentially on the calling goroutine. Any error from fetch or
// match is returned unchanged on the tick it occurs, without retry.
// Cancelling ctx stops the pending timer and returns ctx.Err().
func Wait[T any](ctx context.Context, cfg Config, fetch FetchFunc[T], match MatchFunc[T]) (T, error) {
	var zero T

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	start := now()
	for tick := 1; ; tick++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		candidates, err := fetch(ctx)
		if err != nil {
			logger.Debug("poll fetch failed", zap.Int("tick", tick), zap.Error(err))
			return zero, err
		}

		for _, c := range candidates {
			ok, err := match(c)
			if err != nil {
				logger.Debug("poll match failed", zap.Int("tick", tick), zap.Error(err))
				return zero, err
			}
			if ok {
				logger.Debug("poll matched",
					zap.Int("tick", tick),
					zap.Duration("elapsed", now().Sub(start)),
				)
				return c, nil
			}
		}

		elapsed := now().Sub(start)
		logger.Debug("poll tick",
			zap.Int("tick", tick),
			zap.Int("candidates", len(candidates)),
			zap.Duration("elapsed", elapsed),
		)
		if elapsed >= cfg.Timeout {
			return zero, ErrDeadline
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}
