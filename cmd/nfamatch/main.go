// Command nfamatch matches whole strings against a pattern.
//
// Usage:
//
//	nfamatch [flags] pattern [candidate...]
//
// Candidates come from the arguments, from files named with -f, or else from
// standard input, one per line. On a terminal each result is printed as
// "match" or "no match"; otherwise as "candidate<TAB>true|false".
//
// Exit status is 0 if every candidate matched, 1 if any did not, and 2 on
// usage, compile or I/O errors.
//
// With -gen, a standalone Go matcher for the pattern is written to the named
// file ("-" for standard output).
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/nfamatch"
	"github.com/coregx/nfamatch/codegen"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

// arrayFlags allows a flag to be specified multiple times.
type arrayFlags []string

func (i *arrayFlags) String() string {
	return strings.Join(*i, ", ")
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// options holds parsed command-line flags.
type options struct {
	verbose     bool
	noPrefilter bool
	cache       int
	files       arrayFlags
	genFile     string
	genPackage  string
	genName     string
	pattern     string
	candidates  []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, isTerminal(os.Stdout.Fd())))
}

// run executes the command and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, tty bool) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitMatch
		}
		return exitError
	}

	logger := NewLogger(opts.verbose)
	logger.SetOutput(stderr)

	config := nfamatch.DefaultConfig()
	config.EnablePrefilter = !opts.noPrefilter
	config.CacheCapacity = opts.cache

	re, err := nfamatch.CompileWithConfig(opts.pattern, config)
	if err != nil {
		fmt.Fprintf(stderr, "nfamatch: %v\n", err)
		return exitError
	}

	logger.Section("Compile")
	logger.Log("Pattern: %q", opts.pattern)
	logger.Log("NFA states: %d", re.NumStates())
	logger.Log("Cache capacity: %d", config.CacheCapacity)
	if pf := re.Engine().Prefilter(); pf != nil {
		logger.Log("Prefilter: %s", pf)
	} else {
		logger.Log("Prefilter: none")
	}

	if opts.genFile != "" {
		if err := generate(re, opts, stdout); err != nil {
			fmt.Fprintf(stderr, "nfamatch: %v\n", err)
			return exitError
		}
		logger.Log("Generated Match%s in %s", opts.genName, opts.genFile)
		if len(opts.candidates) == 0 && len(opts.files) == 0 {
			return exitMatch
		}
	}

	status := exitMatch
	report := func(candidate string) {
		matched := re.MatchString(candidate)
		if !matched {
			status = exitNoMatch
		}
		switch {
		case !tty:
			fmt.Fprintf(stdout, "%s\t%t\n", candidate, matched)
		case matched:
			fmt.Fprintln(stdout, "match")
		default:
			fmt.Fprintln(stdout, "no match")
		}
	}

	switch {
	case len(opts.candidates) > 0 || len(opts.files) > 0:
		for _, c := range opts.candidates {
			report(c)
		}
		for _, name := range opts.files {
			if err := matchFile(name, report); err != nil {
				fmt.Fprintf(stderr, "nfamatch: %v\n", err)
				return exitError
			}
		}
	default:
		if err := matchLines(stdin, report); err != nil {
			fmt.Fprintf(stderr, "nfamatch: read stdin: %v\n", err)
			return exitError
		}
	}

	stats := re.Stats()
	logger.Section("Stats")
	logger.Log("Matches: %d", stats.Matches)
	logger.Log("Prefilter rejects: %d", stats.PrefilterRejects)
	logger.Log("Exact checks: %d", stats.ExactChecks)
	logger.Log("NFA searches: %d", stats.NFASearches)
	logger.Log("Cache hits/misses: %d/%d", stats.CacheHits, stats.CacheMisses)

	return status
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("nfamatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: nfamatch [flags] pattern [candidate...]")
		fs.PrintDefaults()
	}

	fs.BoolVar(&opts.verbose, "v", false, "log compilation and matching statistics to stderr")
	fs.BoolVar(&opts.noPrefilter, "no-prefilter", false, "always run the automaton")
	fs.IntVar(&opts.cache, "cache", nfamatch.DefaultConfig().CacheCapacity, "transition cache capacity (0 disables)")
	fs.Var(&opts.files, "f", "read candidates from `file`, one per line (repeatable)")
	fs.StringVar(&opts.genFile, "gen", "", "write a Go matcher to `file` (- for stdout)")
	fs.StringVar(&opts.genPackage, "pkg", "main", "package of the generated matcher")
	fs.StringVar(&opts.genName, "name", "Pattern", "name of the generated matcher, as in Match<name>")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return nil, errors.New("missing pattern")
	}
	opts.pattern = fs.Arg(0)
	opts.candidates = fs.Args()[1:]
	return opts, nil
}

// generate writes the Go matcher for re.
func generate(re *nfamatch.Regex, opts *options, stdout io.Writer) error {
	src, err := codegen.Generate(re.Engine().NFA(), codegen.Config{
		Package: opts.genPackage,
		Name:    opts.genName,
		Pattern: opts.pattern,
	})
	if err != nil {
		return err
	}
	if opts.genFile == "-" {
		_, err = stdout.Write(src)
		return err
	}
	return os.WriteFile(opts.genFile, src, 0o644)
}

func matchFile(name string, report func(string)) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := matchLines(f, report); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// matchLines reports each line of r, without its line terminator.
func matchLines(r io.Reader, report func(string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		report(strings.TrimSuffix(sc.Text(), "\r"))
	}
	return sc.Err()
}
