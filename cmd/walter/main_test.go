package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeText(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(""), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunPrintsMatches(t *testing.T) {
	path := writeText(t, "ushers\nsecond line with she\n")

	code, stdout, stderr := runCLI("he", "she", "his", "hers", path)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "he : 2\nshe : 1\nhers : 2\n", stdout)
}

func TestRunOverlappingMatches(t *testing.T) {
	path := writeText(t, "aaaa")

	code, stdout, _ := runCLI("aa", path)

	assert.Equal(t, 0, code)
	assert.Equal(t, "aa : 0\naa : 1\naa : 2\n", stdout)
}

func TestRunVerboseTable(t *testing.T) {
	path := writeText(t, "aaaa")

	code, stdout, _ := runCLI("-v", "aa", path)

	require.Equal(t, 0, code)
	assert.Equal(t, "0: 1,2\n1: 1,1\n2: 2,1\naa : 0\naa : 1\naa : 2\n", stdout)
}

func TestRunWhereFiltersTable(t *testing.T) {
	path := writeText(t, "aaaa")

	code, stdout, _ := runCLI("-v", "-where", "end", "aa", path)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "2: 2,1\n")
	assert.NotContains(t, stdout, "0: 1,2\n")
	assert.NotContains(t, stdout, "1: 1,1\n")
}

func TestRunWhereOnLabel(t *testing.T) {
	path := writeText(t, "ushers")

	code, stdout, _ := runCLI("-v", "-where", "label == 'h'", "he", "she", path)

	require.Equal(t, 0, code)
	assert.Equal(t, "2: 2,2\nhe : 2\nshe : 1\n", stdout)
}

func TestRunInvalidWhere(t *testing.T) {
	path := writeText(t, "aaaa")

	code, _, stderr := runCLI("-v", "-where", "weight > 2", "aa", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid -where expression")
}

func TestRunSummary(t *testing.T) {
	path := writeText(t, strings.Repeat("x", 600))

	code, stdout, _ := runCLI("-summary", "needle", path)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "automaton: 1 patterns, 7 nodes, pmin 6, fingerprint ")
	assert.Contains(t, stdout, "  matches:         0\n")
	assert.Contains(t, stdout, "  windows:         100\n")
	assert.Contains(t, stdout, "  inspection rate: 0.17\n")
}

func TestRunAllLines(t *testing.T) {
	path := writeText(t, "ushers\nnothing\nshe\n")

	code, stdout, _ := runCLI("-all", "-workers", "2", "she", path)

	require.Equal(t, 0, code)
	assert.Equal(t, "line 1: she : 1\nline 3: she : 0\n", stdout)
}

func TestRunEmptyFirstLine(t *testing.T) {
	path := writeText(t, "\nushers\n")

	code, stdout, _ := runCLI("she", path)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
}

func TestRunInputErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{
			name:   "no operands",
			args:   nil,
			code:   1,
			stderr: "invalid input. Program termination\n",
		},
		{
			name:   "file without patterns",
			args:   []string{"text.txt"},
			code:   1,
			stderr: "invalid input. Program termination\n",
		},
		{
			name:   "not a text file",
			args:   []string{"he", "text.dat"},
			code:   1,
			stderr: "invalid file input. Program termination\n",
		},
		{
			name:   "empty pattern",
			args:   []string{"he", "", "text.txt"},
			code:   1,
			stderr: "invalid input: pattern 2: empty pattern. Program termination\n",
		},
		{
			name:   "where without verbose",
			args:   []string{"-where", "end", "he", "text.txt"},
			code:   2,
			stderr: "walter: -where requires -v\n",
		},
		{
			name: "unknown flag",
			args: []string{"-nope", "he", "text.txt"},
			code: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(test.args...)
			assert.Equal(t, test.code, code)
			assert.Empty(t, stdout)
			if test.stderr != "" {
				assert.Equal(t, test.stderr, stderr)
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	code, stdout, stderr := runCLI("-v", "he", path)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "404: File not Found\n", stdout)
}

func TestRunUnreadableFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dir.txt")
	require.NoError(t, os.Mkdir(dir, 0755))

	code, stdout, _ := runCLI("he", dir)

	assert.Equal(t, 1, code)
	assert.NotContains(t, stdout, "404: File not Found")
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI("-version")

	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "walter "))
}

func TestRunHelp(t *testing.T) {
	code, stdout, stderr := runCLI("-h")

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage: walter [options] PATTERN... FILE")
}
