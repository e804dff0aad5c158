// Package input resolves operation arguments from the process
// environment, the convention the platform uses to hand function
// arguments to package code. Each operation has one reader that
// validates everything it needs in a single pass and returns a typed
// argument struct.
package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names carrying the operation arguments.
const (
	EnvSource    = "SOURCE"
	EnvTarget    = "TARGET"
	EnvDirectory = "DIRECTORY"
	EnvFile      = "FILE"
	EnvSeconds   = "NSECONDS"
	EnvInput     = "INPUT"
)

// MissingError reports an argument variable absent from the
// environment.
type MissingError struct {
	Var string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Var)
}

// ParseError reports an argument variable that is set but does not
// parse as the expected type.
type ParseError struct {
	Var   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s %q: %v", e.Var, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// lookup returns the value of an argument variable. An empty value is
// accepted; only an unset variable is an error.
func lookup(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", &MissingError{Var: name}
	}
	return v, nil
}

// CopyArgs are the arguments of the cp operation.
type CopyArgs struct {
	Source string
	Target string
}

// Copy reads the cp arguments from the environment.
func Copy() (CopyArgs, error) {
	source, err := lookup(EnvSource)
	if err != nil {
		return CopyArgs{}, err
	}
	target, err := lookup(EnvTarget)
	if err != nil {
		return CopyArgs{}, err
	}
	return CopyArgs{Source: source, Target: target}, nil
}

// ListArgs are the arguments of the ls operation.
type ListArgs struct {
	Dir string
}

// List reads the ls argument from the environment.
func List() (ListArgs, error) {
	dir, err := lookup(EnvDirectory)
	if err != nil {
		return ListArgs{}, err
	}
	return ListArgs{Dir: dir}, nil
}

// ReadArgs are the arguments of the cat operation.
type ReadArgs struct {
	File string
}

// Read reads the cat argument from the environment.
func Read() (ReadArgs, error) {
	file, err := lookup(EnvFile)
	if err != nil {
		return ReadArgs{}, err
	}
	return ReadArgs{File: file}, nil
}

// StallArgs are the arguments of the stall operation.
type StallArgs struct {
	Seconds int
}

// Stall reads and parses the stall argument from the environment.
// A value that does not parse as an integer aborts the operation.
func Stall() (StallArgs, error) {
	raw, err := lookup(EnvSeconds)
	if err != nil {
		return StallArgs{}, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return StallArgs{}, &ParseError{Var: EnvSeconds, Value: raw, Err: err}
	}
	return StallArgs{Seconds: n}, nil
}

// CodecArgs is the argument of the encode and decode operations.
type CodecArgs struct {
	Input string
}

// Codec reads the codec argument from the environment.
func Codec() (CodecArgs, error) {
	in, err := lookup(EnvInput)
	if err != nil {
		return CodecArgs{}, err
	}
	return CodecArgs{Input: in}, nil
}
