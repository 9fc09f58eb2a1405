// Command sanitize prompts for one line of input, validates it and prints the value.
//
//	age=$(sanitize -prompt "Age: " -type int -range 0:130)
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/klejdi94/sanitize"
	"github.com/klejdi94/sanitize/core"
	"github.com/mattn/go-isatty"
)

// Exit codes.
const (
	exitOK         = 0
	exitError      = 1
	exitConversion = 2
	exitMembership = 3
)

type options struct {
	prompt string
	typ    string
	values string
	rng    string
}

func main() {
	color.NoColor = os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" || !isTerminal(os.Stderr)

	promptOut := io.Writer(os.Stdout)
	if !isTerminal(os.Stdout) {
		promptOut = os.Stderr
	}
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, promptOut, os.Stderr))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// run parses args, validates one line from in and prints the value to out.
// The prompt goes to promptOut and errors to errOut.
func run(args []string, in io.Reader, out, promptOut, errOut io.Writer) int {
	logger := log.New(errOut, "sanitize: ", 0)
	fs := flag.NewFlagSet("sanitize", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var o options
	fs.StringVar(&o.prompt, "prompt", "", "Text shown before reading input")
	fs.StringVar(&o.typ, "type", "str", "Expected type: str|int|float|bool")
	fs.StringVar(&o.values, "values", "", "Comma-separated allowed values")
	fs.StringVar(&o.rng, "range", "", "Allowed range start:stop[:step] (int and float only)")
	fs.Usage = func() { printUsage(errOut, fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	if fs.NArg() > 0 {
		logger.Printf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		return exitError
	}
	if o.values != "" && o.rng != "" {
		logger.Print("-values and -range are mutually exclusive")
		return exitError
	}

	var (
		value string
		err   error
	)
	switch o.typ {
	case "str":
		value, err = readValue(sanitize.String, o, nil, in, promptOut)
	case "int":
		value, err = readValue(sanitize.Int, o, rangeParser(sanitize.Int), in, promptOut)
	case "float":
		value, err = readValue(sanitize.Float, o, rangeParser(sanitize.Float), in, promptOut)
	case "bool":
		value, err = readValue(sanitize.Bool, o, nil, in, promptOut)
	default:
		logger.Printf("unknown -type %q (want str|int|float|bool)", o.typ)
		return exitError
	}
	if err != nil {
		return report(logger, errOut, err)
	}
	fmt.Fprintln(out, value)
	return exitOK
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage: sanitize [flags]

Reads one line from stdin, validates it and prints it to stdout.
The prompt goes to stderr when stdout is not a terminal.

Exit status: 0 ok, 1 usage or I/O error, 2 wrong type, 3 value not allowed.

Flags:
`)
	fs.PrintDefaults()
}

// report prints err and maps it to an exit code. Validation errors are
// printed bare so they read like the library's messages.
func report(logger *log.Logger, w io.Writer, err error) int {
	red := color.New(color.FgRed)
	switch {
	case errors.Is(err, core.ErrConversion):
		red.Fprintln(w, err)
		return exitConversion
	case errors.Is(err, core.ErrMembership):
		red.Fprintln(w, err)
		return exitMembership
	default:
		logger.Print(err)
		return exitError
	}
}

type expectedParser[T comparable] func(arg string) (core.Expected[T], error)

// readValue builds the validator from o, reads one line and formats the accepted value.
func readValue[T comparable](conv core.Converter[T], o options, parseRange expectedParser[T], in io.Reader, promptOut io.Writer) (string, error) {
	v := sanitize.New(conv).WithPrompt(o.prompt)
	switch {
	case o.values != "":
		expected, err := parseValues(conv, o.values)
		if err != nil {
			return "", err
		}
		v.WithExpected(expected)
	case o.rng != "":
		if parseRange == nil {
			return "", fmt.Errorf("-range is not supported for -type %s", o.typ)
		}
		expected, err := parseRange(o.rng)
		if err != nil {
			return "", err
		}
		v.WithExpected(expected)
	}
	value, err := v.Read(in, promptOut)
	if err != nil {
		return "", err
	}
	return core.FormatValue(value), nil
}

// parseValues converts each comma-separated item with conv.
func parseValues[T comparable](conv core.Converter[T], list string) (core.Expected[T], error) {
	parts := strings.Split(list, ",")
	values := make([]T, 0, len(parts))
	for _, p := range parts {
		val, err := conv.Convert(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: -values item %q is not a %s", core.ErrInvalidExpected, p, conv.Name)
		}
		values = append(values, val)
	}
	return core.Values(values...), nil
}

// rangeParser returns a parser for "start:stop[:step]" with bounds converted by conv.
func rangeParser[T core.Number](conv core.Converter[T]) expectedParser[T] {
	return func(arg string) (core.Expected[T], error) {
		parts := strings.Split(arg, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("%w: -range %q must be start:stop[:step]", core.ErrInvalidExpected, arg)
		}
		bounds := make([]T, 0, 3)
		for _, p := range parts {
			b, err := conv.Convert(p)
			if err != nil {
				return nil, fmt.Errorf("%w: -range bound %q is not a %s", core.ErrInvalidExpected, p, conv.Name)
			}
			bounds = append(bounds, b)
		}
		if len(bounds) == 2 {
			bounds = append(bounds, 1)
		}
		r, err := core.NewStepRange(bounds[0], bounds[1], bounds[2])
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}
