package retry

import (
	"context"
	"log/slog"
	"time"
)

var defaultDelays = []time.Duration{
	1 * time.Second,
	3 * time.Second,
	5 * time.Second,
}

type Retrier struct {
	isRetryable func(error) bool
	delays      []time.Duration
}

// New returns a Retrier that repeats an operation after each delay while
// isRetryable reports true for the returned error.
func New(isRetryable func(error) bool, delays ...time.Duration) *Retrier {
	if len(delays) == 0 {
		delays = defaultDelays
	}
	return &Retrier{
		isRetryable: isRetryable,
		delays:      delays,
	}
}

func (r *Retrier) Do(
	ctx context.Context,
	op func(ctx context.Context) error,
) error {
	err := op(ctx)
	for attempt, delay := range r.delays {
		if err == nil || !r.isRetryable(err) {
			return err
		}

		slog.Warn(
			"retryable error, retrying",
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}

		err = op(ctx)
	}

	return err
}
