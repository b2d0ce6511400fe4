package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"git.sr.ht/~jakintosh/walter/internal/automaton"
	"git.sr.ht/~jakintosh/walter/internal/core"
	"git.sr.ht/~jakintosh/walter/internal/report"
	"git.sr.ht/~jakintosh/walter/internal/session"
	"git.sr.ht/~jakintosh/walter/internal/textfile"
	"git.sr.ht/~jakintosh/walter/internal/tui"
	"git.sr.ht/~jakintosh/walter/internal/util"
	"git.sr.ht/~jakintosh/walter/internal/version"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseCLIArgs(args, stderr)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errInvalidInput):
			fmt.Fprintln(stderr, "invalid input. Program termination")
			return 1
		case errors.Is(err, errWhereWithoutVerbose):
			fmt.Fprintf(stderr, "walter: %v\n", err)
			return 2
		default:
			return 2
		}
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Data())
		return 0
	}

	if err := textfile.CheckReference(opts.file); err != nil {
		fmt.Fprintln(stderr, "invalid file input. Program termination")
		return 1
	}

	patterns, err := core.NewPatternSet(opts.patterns)
	if err != nil {
		fmt.Fprintf(stderr, "invalid input: %v. Program termination\n", err)
		return 1
	}

	var filter *util.NodeFilter
	if opts.where != "" {
		if filter, err = util.CompileNodeFilter(opts.where); err != nil {
			fmt.Fprintf(stderr, "invalid -where expression: %v\n", err)
			return 1
		}
	}

	printer := report.NewPrinter(stdout)

	var lines []string
	if opts.all {
		lines, err = textfile.ReadLines(opts.file)
	} else {
		var first string
		first, err = textfile.ReadFirstLine(opts.file)
		lines = []string{first}
	}
	if err != nil {
		if errors.Is(err, textfile.ErrFileNotFound) {
			printer.NotFound()
			return 0
		}
		log.Printf("Failed to read text file '%s': %v", opts.file, err)
		return 1
	}

	a := automaton.Build(patterns)

	if opts.interactive {
		return runExplorer(a, strings.Join(lines, "\n"), opts.file, stdin, stdout)
	}

	if opts.verbose {
		nodes := a.Nodes()
		if filter != nil {
			if nodes, err = filter.Apply(nodes); err != nil {
				fmt.Fprintf(stderr, "invalid -where expression: %v\n", err)
				return 1
			}
		}
		printer.NodeTable(nodes)
	}

	if opts.all {
		results, err := a.ScanLines(context.Background(), lines, opts.workers)
		if err != nil {
			log.Printf("Scan failed: %v", err)
			return 1
		}
		printer.LineMatches(results)
		if opts.summary {
			var total core.ScanSummary
			for _, line := range results {
				total.Add(line.Summary)
			}
			printer.AutomatonHeader(a)
			printer.Summary(total)
		}
		return 0
	}

	matches, summary := a.ScanWithSummary(lines[0])
	printer.Matches(matches)
	if opts.summary {
		printer.AutomatonHeader(a)
		printer.Summary(summary)
	}
	return 0
}

// runExplorer starts the interactive explorer, offering to restore the
// patterns of the previous session.
func runExplorer(a *automaton.Automaton, text, textFile string, stdin io.Reader, stdout io.Writer) int {
	store := session.NewStore(session.DefaultPath)
	patterns := a.Patterns().Patterns()

	if store.Exists() {
		fmt.Fprint(stdout, "Previous session found. Restore it? [y/N]: ")
		var response string
		fmt.Fscanln(stdin, &response)
		if response == "y" || response == "Y" {
			state, err := store.Load()
			if err != nil {
				log.Printf("Warning: failed to load previous session: %v", err)
			} else if len(state.Patterns) > 0 {
				patterns = state.Patterns
				fmt.Fprintf(stdout, "Restored %d pattern(s) from previous session.\n", len(patterns))
			}
		} else if err := store.Delete(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	model := tui.NewModel(text, textFile, store)
	model.SetPatterns(patterns)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(stdin), tea.WithOutput(stdout))
	if _, err := program.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
	if err := model.SaveErr(); err != nil {
		log.Printf("Warning: failed to save session: %v", err)
	}
	return 0
}
