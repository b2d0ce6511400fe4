// Package textfile reads the texts walter searches.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"git.sr.ht/~jakintosh/walter/internal/core"
)

// ErrFileNotFound is returned when the text file cannot be opened.
var ErrFileNotFound = errors.New("404: File not Found")

// maxLineLength bounds a single line of text.
const maxLineLength = 64 * 1024 * 1024

// CheckReference reports whether path names a text file. Only paths
// containing ".txt" are accepted.
func CheckReference(path string) error {
	if !strings.Contains(path, ".txt") {
		return fmt.Errorf("%q: %w", path, core.ErrNotTextFile)
	}
	return nil
}

// ReadFirstLine returns the first line of the file at path without its line
// terminator. An empty file yields an empty string.
func ReadFirstLine(path string) (string, error) {
	var first string
	err := eachLine(path, func(n int, line string) bool {
		first = line
		return false
	})
	return first, err
}

// ReadLines returns every line of the file at path.
func ReadLines(path string) ([]string, error) {
	var lines []string
	err := eachLine(path, func(n int, line string) bool {
		lines = append(lines, line)
		return true
	})
	return lines, err
}

// eachLine calls fn with every line of the file and its 1-based number
// until fn returns false.
func eachLine(path string, fn func(n int, line string) bool) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return scanLines(file, fn)
}

func scanLines(r io.Reader, fn func(n int, line string) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if !fn(lineNumber, scanner.Text()) {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	return nil
}
