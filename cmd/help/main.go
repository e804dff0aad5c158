// Command help provides the Brane help package: filesystem helpers
// plus a stall command, with arguments read from the environment and
// one YAML result record written to stdout per invocation.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tomwassing/brane"
	"github.com/tomwassing/brane/internal/config"
	branemcp "github.com/tomwassing/brane/internal/mcp"
	"github.com/tomwassing/brane/internal/ops"
	"github.com/tomwassing/brane/internal/record"
	"github.com/tomwassing/brane/internal/runner"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("help: ")

	_ = godotenv.Load()

	os.Exit(run(os.Args, os.Stdout))
}

// run dispatches the command line and returns the process exit code.
// stdout receives only record and version output; diagnostics and the
// usage text go to stderr.
func run(argv []string, stdout io.Writer) int {
	if len(argv) < 2 {
		log.Print("no command specified; nothing to do")
		usage()
		return 2
	}

	cmd := argv[1]
	args := argv[2:]

	var err error
	switch cmd {
	case "cp", "ls", "cat", "stall":
		err = opMain(cmd, args, stdout)
	case "mcp":
		err = mcpMain(args, stdout)
	case "version":
		fmt.Fprintln(stdout, brane.Version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "help: unknown command %q\n", cmd)
		usage()
		return 2
	}

	if err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: help <command> [flags]

Commands:
  cp          Copy SOURCE to TARGET
  ls          List DIRECTORY
  cat         Print FILE
  stall       Busy-wait for NSECONDS seconds
  mcp         Start the MCP server
  version     Print the version
  help        Show this help

Operation arguments are read from the environment variables named
above. Each operation writes one YAML record (output: <value>) to
stdout; diagnostics go to stderr.

Use "help <command> -h" for command-specific flags.`)
}

// --- operations ---

func opMain(name string, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	captureFlag := fs.String("capture", "", "record capture mode (complete, marked, or prefixed)")
	timeoutFlag := fs.Duration("timeout", 0, "override configured command timeout (e.g. 30s)")
	_ = fs.Parse(args)

	op, err := ops.ParseOp(name)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	workdir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	cfg, err := config.Load(workdir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	mode := cfg.Capture()
	if *captureFlag != "" {
		mode, err = record.ParseMode(*captureFlag)
		if err != nil {
			return err
		}
	}

	timeout := cfg.Timeout()
	if *timeoutFlag > 0 {
		timeout = *timeoutFlag
	}

	r := &runner.Runner{
		Dir:       cfg.Workdir,
		Timeout:   timeout,
		MaxOutput: cfg.MaxOutputBytes(),
	}

	engine := &ops.Engine{Config: cfg, Runner: r}

	rec, err := engine.Do(ctx, op)
	if err != nil {
		return err
	}

	return record.Write(stdout, rec, mode)
}

// --- mcp ---

func mcpMain(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	instructions := fs.Bool("instructions", false, "print model instructions and exit")
	httpAddr := fs.String("http", "", "start HTTP server on address (e.g. :9090)")
	_ = fs.Parse(args)

	if *instructions {
		fmt.Fprint(stdout, branemcp.Instructions)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return serve(ctx, *httpAddr)
}

func serve(ctx context.Context, httpAddr string) error {
	workdir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	cfg, err := config.Load(workdir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	r := &runner.Runner{
		Dir:       cfg.Workdir,
		Timeout:   cfg.Timeout(),
		MaxOutput: cfg.MaxOutputBytes(),
	}

	server := branemcp.NewServer(cfg, r)

	if httpAddr != "" {
		return serveHTTP(ctx, server, httpAddr)
	}
	return server.Run(ctx, &mcpsdk.StdioTransport{})
}

func serveHTTP(ctx context.Context, server *mcpsdk.Server, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: branemcp.NewHTTPHandler(server),
	}

	go func() {
		<-ctx.Done()
		_ = httpServer.Close()
	}()

	log.Printf("listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
