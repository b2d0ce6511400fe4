package core

import "errors"

// Configuration errors reported before any automaton is built.
var (
	ErrNoPatterns   = errors.New("no patterns given")
	ErrEmptyPattern = errors.New("empty pattern")
	ErrNotTextFile  = errors.New("not a text file reference")
)
