package ops

import (
	"context"
	"fmt"

	"github.com/tomwassing/brane/internal/input"
	"github.com/tomwassing/brane/internal/record"
)

// List lists a directory with ls. The record carries the listing, or
// "<no output>" when the command printed nothing, with stderr text
// appended when present.
func (e *Engine) List(ctx context.Context, args input.ListArgs) (record.Record, error) {
	argv := []string{"ls", args.Dir}
	argv = append(argv, e.Config.List.Args...)

	res, err := e.Runner.Run(ctx, argv)
	if err != nil {
		return record.Record{}, fmt.Errorf("running ls: %w", err)
	}
	logRun("ls", res)

	return record.Record{Output: foldOutput(res)}, nil
}
