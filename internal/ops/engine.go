package ops

import (
	"context"
	"log"

	"github.com/tomwassing/brane/internal/config"
	"github.com/tomwassing/brane/internal/input"
	"github.com/tomwassing/brane/internal/record"
	"github.com/tomwassing/brane/internal/runner"
)

// CommandRunner executes external commands.
// Implemented by runner.Runner.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (*runner.Result, error)
}

// Engine holds shared dependencies for the package operations.
type Engine struct {
	Config *config.Config
	Runner CommandRunner
}

// Do resolves the arguments for op from the environment and runs it.
// The switch is exhaustive over the operations ParseOp accepts.
func (e *Engine) Do(ctx context.Context, op Op) (record.Record, error) {
	switch op {
	case OpCopy:
		args, err := input.Copy()
		if err != nil {
			return record.Record{}, err
		}
		return e.Copy(ctx, args)
	case OpList:
		args, err := input.List()
		if err != nil {
			return record.Record{}, err
		}
		return e.List(ctx, args)
	case OpRead:
		args, err := input.Read()
		if err != nil {
			return record.Record{}, err
		}
		return e.Read(ctx, args)
	case OpStall:
		args, err := input.Stall()
		if err != nil {
			return record.Record{}, err
		}
		return e.Stall(ctx, args)
	default:
		return record.Record{}, &UnknownOpError{Name: op.String()}
	}
}

// logRun reports run diagnostics that must stay out of the record.
// They go to stderr, the channel the platform reserves for them.
func logRun(name string, res *runner.Result) {
	if res.Truncated {
		log.Printf("%s run %s: output truncated", name, res.RunID)
	}
}

// foldOutput builds the record output for the operations that report
// their command's stdout: the stdout text, or "<no output>" when the
// command printed nothing, with stderr appended when present.
func foldOutput(res *runner.Result) string {
	output := record.NoOutput
	if len(res.Stdout) > 0 {
		output = string(res.Stdout)
	}
	if len(res.Stderr) > 0 {
		output += "\n\n" + record.StderrPrefix + string(res.Stderr)
	}
	return output
}
