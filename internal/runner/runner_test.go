package runner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brewin/internal/config"
	"brewin/pkg/color"
	"brewin/pkg/interpreter"

	"github.com/google/go-cmp/cmp"
)

func writeProgram(t *testing.T, dir, name, src string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.TrimPrefix(src, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newRunner(files ...string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Runner{
		SourceFiles: files,
		Stdin:       strings.NewReader(""),
		Stdout:      &stdout,
		Stderr:      &stderr,
	}, &stdout, &stderr
}

func TestRunInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeProgram(t, dir, "first.br", `
func main void
  funccall print "first"
endfunc
`)
	second := writeProgram(t, dir, "second.br", `
func main void
  var int x
  assign x * 6 7
  funccall print x
endfunc
`)

	r, stdout, _ := newRunner(first, second)
	if err := r.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff("first\n42\n", stdout.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunReportsSourceLine(t *testing.T) {
	prev := color.IsColorEnabled()
	defer color.EnableColor(prev)
	color.EnableColor(false)

	dir := t.TempDir()
	path := writeProgram(t, dir, "bad.br", `
func main void
  assign y 1
endfunc
`)

	r, _, stderr := newRunner(path)
	err := r.Run()
	if !errors.Is(err, interpreter.ErrName) {
		t.Fatalf("expected name error, got %v", err)
	}

	got := stderr.String()
	if !strings.Contains(got, "NAME_ERROR at line 2:") || !strings.Contains(got, "   2 |   assign y 1") {
		t.Errorf("unexpected diagnostic %q", got)
	}
}

func TestRunQuiet(t *testing.T) {
	dir := t.TempDir()
	path := writeProgram(t, dir, "loud.br", `
func main void
  funccall print "noise"
endfunc
`)

	r, stdout, _ := newRunner(path)
	r.Quiet = true
	if err := r.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", stdout.String())
	}
}

func TestCheck(t *testing.T) {
	prev := color.IsColorEnabled()
	defer color.EnableColor(prev)
	color.EnableColor(false)

	dir := t.TempDir()
	good := writeProgram(t, dir, "good.br", `
func main void
  while true
  endwhile
endfunc
`)
	bad := writeProgram(t, dir, "nomain.br", `
func helper void
endfunc
`)
	missing := filepath.Join(dir, "missing.br")

	r, stdout, stderr := newRunner(good, bad, missing)
	r.CheckOnly = true

	// an infinite loop passes: checking never executes
	err := r.Run()
	if !errors.Is(err, interpreter.ErrName) {
		t.Fatalf("expected name error for the file without main, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected the missing file to be reported, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("check must not produce program output, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "ok "+good) {
		t.Errorf("expected %s to pass, got %q", good, stderr.String())
	}
}

func TestApply(t *testing.T) {
	r := &Runner{MaxSteps: 10}
	r.Apply(config.Config{Trace: true, Color: config.ColorNever, MaxSteps: 99})

	if !r.Trace || !r.NoColor {
		t.Errorf("expected file settings to be merged, got %+v", r)
	}
	if r.MaxSteps != 10 {
		t.Errorf("expected flag max steps to win, got %d", r.MaxSteps)
	}
}
