// Package codec implements the text transforms of the base64 demo
// package.
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is wrapped by DecodeError when the decoded bytes are
// not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")

// DecodeError reports input that is not base64-encoded UTF-8 text.
type DecodeError struct {
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %q: %v", e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Encode returns the standard base64 encoding of s.
func Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Decode reverses Encode. Newlines are stripped first, so wrapped
// input is accepted. The decoded bytes must form valid UTF-8 text.
func Decode(s string) (string, error) {
	stripped := strings.ReplaceAll(s, "\n", "")

	b, err := base64.StdEncoding.DecodeString(stripped)
	if err != nil {
		return "", &DecodeError{Input: s, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &DecodeError{Input: s, Err: ErrInvalidUTF8}
	}
	return string(b), nil
}
