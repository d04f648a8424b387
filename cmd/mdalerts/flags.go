package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the mdalerts CLI.
type cliFlags struct {
	config  string
	output  string
	style   string
	noStyle bool
	full    bool
	drafts  bool
	workers int
	watch   bool
	quiet   bool
	verbose bool
	version bool
}

const usageText = `Usage: mdalerts [flags] <input>

Rewrites [!NOTE]-style alert blockquotes into styled callout boxes.
Markdown inputs (.md, .markdown) are rendered to HTML first; HTML inputs
(.html, .htm) are transformed in place of their rendered content.

Input may be a single file or a directory (processed recursively).

Flags:
`

// parseFlags parses CLI arguments. Returns the parsed flags and the
// positional arguments (input paths).
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("mdalerts", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fmt.Fprintln(os.Stderr, fs.FlagUsages())
	}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (\"\" = alongside input)")
	fs.StringVarP(&f.style, "style", "s", "", "preview style: name, CSS file path, or raw CSS")
	fs.BoolVar(&f.noStyle, "no-style", false, "skip stylesheet injection")
	fs.BoolVar(&f.full, "full", false, "wrap output in a complete HTML5 document")
	fs.BoolVar(&f.drafts, "drafts", false, "process posts marked draft: true")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent workers (0 = number of CPUs)")
	fs.BoolVar(&f.watch, "watch", false, "watch input for changes and re-process")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
