package record

import (
	"fmt"
	"strings"
	"unicode"
)

// Markers recognised by the marked and prefixed capture modes.
const (
	MarkStart = "--> START CAPTURE"
	MarkEnd   = "--> END CAPTURE"
	Prefix    = "~~>"
)

// CaptureMode selects which part of a package's stdout carries the
// result record.
type CaptureMode int

const (
	// CaptureComplete treats the whole stdout as the record document.
	CaptureComplete CaptureMode = iota
	// CaptureMarked captures the lines between MarkStart and MarkEnd.
	CaptureMarked
	// CapturePrefixed captures the lines starting with Prefix.
	CapturePrefixed
)

var modeNames = map[CaptureMode]string{
	CaptureComplete: "complete",
	CaptureMarked:   "marked",
	CapturePrefixed: "prefixed",
}

func (m CaptureMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("CaptureMode(%d)", int(m))
}

// ParseMode maps a capture mode name from container metadata to a
// CaptureMode. The empty string selects CaptureComplete.
func ParseMode(name string) (CaptureMode, error) {
	switch name {
	case "", "complete":
		return CaptureComplete, nil
	case "marked":
		return CaptureMarked, nil
	case "prefixed":
		return CapturePrefixed, nil
	default:
		return CaptureComplete, fmt.Errorf("unknown capture mode %q", name)
	}
}

// Extract recovers the capture area from a package's stdout.
// CaptureComplete returns stdout unchanged. CaptureMarked returns the
// lines between the first MarkStart line and the MarkEnd line that
// follows it, markers excluded. CapturePrefixed returns every line
// starting with Prefix, with the prefix stripped.
func Extract(stdout string, mode CaptureMode) string {
	switch mode {
	case CaptureMarked:
		var captured []string
		capturing := false
		for _, line := range strings.Split(stdout, "\n") {
			trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
			if strings.HasPrefix(trimmed, MarkStart) {
				capturing = true
				continue
			}
			if capturing && strings.HasPrefix(trimmed, MarkEnd) {
				break
			}
			if capturing {
				captured = append(captured, line)
			}
		}
		return strings.Join(captured, "\n")

	case CapturePrefixed:
		var captured []string
		for _, line := range strings.Split(stdout, "\n") {
			if !strings.HasPrefix(line, Prefix) {
				continue
			}
			for strings.HasPrefix(line, Prefix) {
				line = line[len(Prefix):]
			}
			captured = append(captured, line)
		}
		return strings.Join(captured, "\n")

	default:
		return stdout
	}
}
