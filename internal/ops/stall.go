package ops

import (
	"context"
	"time"

	"github.com/tomwassing/brane/internal/input"
	"github.com/tomwassing/brane/internal/record"
)

// Stall occupies the process for the requested number of seconds, then
// reports "success". The wait busy-loops on the wall clock without
// sleeping, so the process stays runnable for the whole duration.
// Zero and negative durations return immediately.
func (e *Engine) Stall(ctx context.Context, args input.StallArgs) (record.Record, error) {
	if err := spin(ctx, time.Duration(args.Seconds)*time.Second); err != nil {
		return record.Record{}, err
	}
	return record.Record{Output: record.Success}, nil
}

// spin busy-waits until d has elapsed or ctx is cancelled.
func spin(ctx context.Context, d time.Duration) error {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}
