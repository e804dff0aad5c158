package ops

import (
	"context"
	"fmt"

	"github.com/tomwassing/brane/internal/input"
	"github.com/tomwassing/brane/internal/record"
)

// Copy copies source to target with cp. An empty stderr yields a
// "success" record; otherwise the record carries the stderr text.
// The command's exit code and stdout are not consulted.
func (e *Engine) Copy(ctx context.Context, args input.CopyArgs) (record.Record, error) {
	argv := []string{"cp", args.Source, args.Target}
	argv = append(argv, e.Config.Copy.Args...)

	res, err := e.Runner.Run(ctx, argv)
	if err != nil {
		return record.Record{}, fmt.Errorf("running cp: %w", err)
	}
	logRun("cp", res)

	if len(res.Stderr) == 0 {
		return record.Record{Output: record.Success}, nil
	}
	return record.Record{Output: record.StderrPrefix + string(res.Stderr)}, nil
}
