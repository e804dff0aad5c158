// Command base64 provides the Brane base64 demo package: encode and
// decode text read from the INPUT environment variable, with one YAML
// result record written to stdout.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/tomwassing/brane/internal/codec"
	"github.com/tomwassing/brane/internal/input"
	"github.com/tomwassing/brane/internal/record"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("base64: ")

	_ = godotenv.Load()

	os.Exit(run(os.Args, os.Stdout))
}

// run dispatches the command line and returns the process exit code.
// stdout receives either one record or the usage line; diagnostics go
// to stderr.
func run(argv []string, stdout io.Writer) int {
	if len(argv) < 2 || (argv[1] != "encode" && argv[1] != "decode") {
		// Usage goes to stdout; the non-zero exit marks the failure.
		fmt.Fprintf(stdout, "Usage: %s encode|decode <value>\n", argv[0])
		return 1
	}

	args, err := input.Codec()
	if err != nil {
		log.Print(err)
		return 1
	}

	var output string
	switch argv[1] {
	case "encode":
		output = codec.Encode(args.Input)
	case "decode":
		output, err = codec.Decode(args.Input)
		if err != nil {
			log.Print(err)
			return 1
		}
	}

	if err := record.Write(stdout, record.Record{Output: output}, record.CaptureComplete); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}
