// Package config holds indicator defaults. Values come from built-in
// defaults, then an optional JSON file in the XDG config directory, then
// TERMBAR_* environment variables.
package config

import (
	"fmt"
	"strings"
)

// Stream names the standard stream indicators draw on.
type Stream string

const (
	// StreamStdout is the process's standard output.
	StreamStdout Stream = "stdout"
	// StreamStderr is the process's standard error.
	StreamStderr Stream = "stderr"
)

// ParseStream converts a string into a Stream.
func ParseStream(s string) (Stream, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stdout", "out", "1":
		return StreamStdout, nil
	case "stderr", "err", "2":
		return StreamStderr, nil
	default:
		return "", fmt.Errorf("%w: unknown stream %q", ErrInvalid, s)
	}
}
