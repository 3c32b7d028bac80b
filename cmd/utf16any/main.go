// Command utf16any prints the positions of any of a set of characters in
// UTF-16 text.
//
// Usage:
//
//	utf16any --chars SET [--first] [--start N] [--count N] [--strategy S]
//	         [--encoding E] [--verbose] [FILE...]
//
// Each match is printed as name:pos:index:U+XXXX, where pos is the code unit
// offset into the decoded text and index is the position in SET of the
// character that matched. With --first only name:pos is printed, -1 when the
// text holds none of the characters. With no FILE, standard input is read.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coregx/utf16any"
	"github.com/coregx/utf16any/simd"
)

type options struct {
	chars    string
	first    bool
	start    int
	count    int
	strategy string
	encoding string
	verbose  bool
}

func (o *options) register(flags *pflag.FlagSet) {
	flags.StringVarP(&o.chars, "chars", "c", "", "characters to search for, at most 32 UTF-16 code units (required)")
	flags.BoolVar(&o.first, "first", false, "print only the first match position per input")
	flags.IntVar(&o.start, "start", 0, "code unit offset to start searching at")
	flags.IntVar(&o.count, "count", -1, "number of code units to search, -1 for the rest of the input")
	flags.StringVar(&o.strategy, "strategy", "auto", "search kernel: auto, scalar, vec128 or vec256")
	flags.StringVarP(&o.encoding, "encoding", "e", "auto", "input encoding: utf-8, utf-16le, utf-16be or auto")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log kernel selection and per-input statistics")
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "utf16any --chars SET [FILE...]",
		Short:        "Locate any of a set of characters in UTF-16 text",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			return run(&opts, args, stdin, stdout, log)
		},
	}
	opts.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("chars")
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func run(opts *options, args []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	strategy, err := utf16any.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}
	dec, err := decoder(opts.encoding)
	if err != nil {
		return err
	}
	config := utf16any.DefaultConfig()
	config.Strategy = strategy
	sc, err := utf16any.CompileWithConfig(utf16any.EncodeString(opts.chars), config)
	if err != nil {
		return err
	}
	caps := simd.Detect()
	log.Debug("compiled query set",
		"chars", len(sc.Chars()),
		"has128", caps.Has128,
		"has256", caps.Has256,
		"strategy", sc.Strategy())

	if len(args) == 0 {
		args = []string{"-"}
	}
	w := bufio.NewWriter(stdout)
	var matches []utf16any.Match
	for _, name := range args {
		data, err := readInput(name, stdin)
		if err != nil {
			return err
		}
		text, err := decodeInput(data, dec)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		count := opts.count
		if count < 0 {
			count = len(text) - opts.start
		}

		if opts.first {
			pos, err := sc.FindFirstRange(text, opts.start, count)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			log.Debug("searched input", "name", name, "units", len(text), "first", pos)
			fmt.Fprintf(w, "%s:%d\n", name, pos)
			continue
		}

		matches, err = sc.AppendAllRange(matches[:0], text, opts.start, count)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.Debug("searched input", "name", name, "units", len(text), "matches", len(matches))
		for _, m := range matches {
			fmt.Fprintf(w, "%s:%d:%d:U+%04X\n", name, m.Pos, m.Index, text[m.Pos])
		}
	}
	return w.Flush()
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}
