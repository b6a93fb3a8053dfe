package engine

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a contract file is not valid UTF-8 text
var ErrInvalidEncoding = errors.New("source is not valid UTF-8")

// ReadSource reads a contract source file as text.
// Filesystem errors are returned as-is so callers can match fs.ErrNotExist and friends.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}
