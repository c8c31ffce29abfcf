package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"brewin/internal/config"
	"brewin/pkg/color"
	"brewin/pkg/interpreter"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Runner struct {
	Help        bool     // Show help message
	Verbose     bool     // Enable debug logging
	Trace       bool     // Print every executed statement
	Quiet       bool     // Suppress program output
	NoColor     bool     // Disable colored output
	CheckOnly   bool     // Load and validate without running
	MaxSteps    int      // Abort after this many statements (0 = unlimited)
	ConfigFile  string   // Path to a YAML config file
	SourceFiles []string // Programs to run, in order

	Stdin  io.Reader // program input, os.Stdin when nil
	Stdout io.Writer // program output, os.Stdout when nil
	Stderr io.Writer // diagnostics and trace, os.Stderr when nil
}

// Apply merges file settings into the runner. Values already set from
// flags take precedence.
func (r *Runner) Apply(cfg config.Config) {
	r.Verbose = r.Verbose || cfg.Verbose
	r.Trace = r.Trace || cfg.Trace
	r.Quiet = r.Quiet || cfg.Quiet
	if r.MaxSteps == 0 {
		r.MaxSteps = cfg.MaxSteps
	}

	switch cfg.Color {
	case config.ColorNever:
		r.NoColor = true
	case config.ColorAlways:
		if !r.NoColor {
			color.EnableColor(true)
		}
	}
}

func (r *Runner) defaults() {
	if r.Stdin == nil {
		r.Stdin = os.Stdin
	}
	if r.Stdout == nil {
		r.Stdout = os.Stdout
	}
	if r.Stderr == nil {
		r.Stderr = os.Stderr
	}
}

// Run executes every source file in order, stopping at the first failure.
func (r *Runner) Run() error {
	r.defaults()
	if r.CheckOnly {
		return r.Check()
	}

	for _, path := range r.SourceFiles {
		if err := r.runFile(path); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runFile(path string) error {
	id := uuid.NewString()
	logger := log.With("run", id[:8], "file", path)
	logger.Info("Running program")

	lines, err := ReadSource(path)
	if err != nil {
		return err
	}

	opts := []interpreter.Option{
		interpreter.WithWriter(r.Stdout),
		interpreter.WithReader(r.Stdin),
		interpreter.WithOutput(!r.Quiet),
		interpreter.WithLogger(logger),
		interpreter.WithMaxSteps(r.MaxSteps),
	}
	if r.Trace {
		opts = append(opts, interpreter.WithTrace(r.Stderr))
	}

	if err := interpreter.NewInterpreter(opts...).Run(lines); err != nil {
		r.report(path, lines, err)
		return fmt.Errorf("running %s: %w", path, err)
	}

	return nil
}

// Check loads every file concurrently and reports each failure in order.
func (r *Runner) Check() error {
	r.defaults()

	sources := make([][]string, len(r.SourceFiles))
	results := make([]error, len(r.SourceFiles))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for idx, path := range r.SourceFiles {
		idx, path := idx, path
		g.Go(func() error {
			lines, err := ReadSource(path)
			if err != nil {
				results[idx] = err
				return nil
			}
			sources[idx] = lines

			p, err := interpreter.Load(lines)
			if err == nil {
				err = p.Check()
			}
			results[idx] = err
			return nil
		})
	}
	_ = g.Wait()

	var failed []error
	for idx, path := range r.SourceFiles {
		if err := results[idx]; err != nil {
			r.report(path, sources[idx], err)
			failed = append(failed, fmt.Errorf("checking %s: %w", path, err))
			continue
		}
		log.Info("Program is well-formed", "file", path)
		fmt.Fprintf(r.Stderr, "%s %s\n", color.GreenText("ok"), path)
	}

	return errors.Join(failed...)
}

// report prints a classified error with the offending source line.
func (r *Runner) report(path string, lines []string, err error) {
	var rerr *interpreter.Error
	if !errors.As(err, &rerr) {
		fmt.Fprintf(r.Stderr, "%s: %v\n", color.RedText(path), err)
		return
	}

	source := ""
	if rerr.Line > 0 && rerr.Line <= len(lines) {
		source = strings.TrimRight(lines[rerr.Line-1], " \t\r")
	}

	fmt.Fprintf(r.Stderr, "%s\n%s\n", color.YellowText(path), color.ErrorAtLine(rerr.Kind.String(), rerr.Line, rerr.Msg, source))
}

// ReadSource reads a program and splits it into lines.
func ReadSource(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.Split(string(data), "\n"), nil
}
