package ops

import (
	"context"
	"fmt"

	"github.com/tomwassing/brane/internal/input"
	"github.com/tomwassing/brane/internal/record"
)

// Read prints a file with cat, under the same record contract as List.
func (e *Engine) Read(ctx context.Context, args input.ReadArgs) (record.Record, error) {
	argv := []string{"cat", args.File}
	argv = append(argv, e.Config.Read.Args...)

	res, err := e.Runner.Run(ctx, argv)
	if err != nil {
		return record.Record{}, fmt.Errorf("running cat: %w", err)
	}
	logRun("cat", res)

	return record.Record{Output: foldOutput(res)}, nil
}
