package gate

import (
	"errors"
	"io"
	"strings"
)

// IsConfirmation reports whether a response line counts as consent.
// Only "y" (any case, surrounding whitespace ignored) does.
func IsConfirmation(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw
// terminal modes. A nil reader or immediate end-of-input yields io.EOF.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
