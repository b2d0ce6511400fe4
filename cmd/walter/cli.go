package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
)

var (
	// errInvalidInput is reported when no pattern operands are given.
	errInvalidInput = errors.New("invalid input")
	// errWhereWithoutVerbose is reported when -where has no table to filter.
	errWhereWithoutVerbose = errors.New("-where requires -v")
)

// options holds the parsed command line.
type options struct {
	verbose     bool
	where       string
	summary     bool
	all         bool
	workers     int
	interactive bool
	showVersion bool
	patterns    []string
	file        string
}

func parseCLIArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("walter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.BoolVar(&opts.verbose, "v", false, "Print the s1 and s2 shift tables before the matches")
	fs.StringVar(&opts.where, "where", "", "Only print table rows matching an expression over node, depth, s1, s2, end, failure, label")
	fs.BoolVar(&opts.summary, "summary", false, "Print scan statistics after the matches")
	fs.BoolVar(&opts.all, "all", false, "Scan every line of the file instead of only the first")
	fs.IntVar(&opts.workers, "workers", runtime.NumCPU(), "Number of lines scanned concurrently with -all")
	fs.BoolVar(&opts.interactive, "i", false, "Open the interactive explorer")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version information")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: walter [options] PATTERN... FILE")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.showVersion {
		return opts, nil
	}
	if opts.where != "" && !opts.verbose {
		return nil, errWhereWithoutVerbose
	}

	remaining := fs.Args()
	if len(remaining) < 2 {
		return nil, errInvalidInput
	}
	opts.patterns = remaining[:len(remaining)-1]
	opts.file = remaining[len(remaining)-1]
	return opts, nil
}
