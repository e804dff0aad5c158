// Package record implements the result record a Brane package prints
// for the platform: one YAML document with a single "output" key,
// written to stdout once per invocation and read back by the executor.
package record

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Well-known output values shared by the operations.
const (
	Success  = "success"
	NoOutput = "<no output>"
)

// StderrPrefix introduces captured stderr text inside an output value.
const StderrPrefix = "Stderr:\n"

// Record is the result of one package function invocation.
type Record struct {
	Output string `yaml:"output"`
}

// Marshal encodes the record as a single YAML document.
func Marshal(r Record) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return data, nil
}

// Write emits r to w as one YAML document, wrapped for the given
// capture mode. The record is serialized exactly once, and the whole
// document, including its final line break, lands inside the capture
// area: Extract recovers it intact. For marked mode that means a blank
// line before the end marker; for prefixed mode, a terminating bare
// prefix line.
func Write(w io.Writer, r Record, mode CaptureMode) error {
	doc, err := Marshal(r)
	if err != nil {
		return err
	}

	var out string
	switch mode {
	case CaptureMarked:
		out = MarkStart + "\n" + string(doc) + "\n" + MarkEnd + "\n"
	case CapturePrefixed:
		var b strings.Builder
		for _, line := range strings.Split(string(doc), "\n") {
			if line == "" {
				b.WriteString(Prefix + "\n")
				continue
			}
			b.WriteString(Prefix + " " + line + "\n")
		}
		out = b.String()
	default:
		out = string(doc)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// ParseError reports text that is not a valid result record.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid record: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid record: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes a result record from the captured output of a package
// run. The document must be a YAML mapping carrying an "output" value.
func Parse(text string) (Record, error) {
	var doc struct {
		Output *string `yaml:"output"`
	}
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return Record{}, &ParseError{Reason: "not a YAML mapping", Err: err}
	}
	if doc.Output == nil {
		return Record{}, &ParseError{Reason: `no "output" value`}
	}
	return Record{Output: *doc.Output}, nil
}
