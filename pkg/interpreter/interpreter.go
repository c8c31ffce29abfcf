package interpreter

import (
	"bufio"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"brewin/pkg/stack"
)

// Interpreter holds construction-time options. All run state lives in an
// execution created per Run, so one Interpreter can run programs repeatedly.
type Interpreter struct {
	out    io.Writer     // program output (print, input prompts)
	in     *bufio.Reader // program input (input builtin)
	trace  io.Writer     // per-statement trace, nil when disabled
	logger *log.Logger

	maxSteps int // maximum steps (0 = unlimited)
}

type Option func(*Interpreter)

// WithWriter sets the output writer for print statements
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithOutput enables or disables program output altogether
func WithOutput(enabled bool) Option {
	return func(i *Interpreter) {
		if !enabled {
			i.out = io.Discard
		}
	}
}

// WithReader sets the source of lines for the input builtin
func WithReader(r io.Reader) Option {
	return func(i *Interpreter) { i.in = bufio.NewReader(r) }
}

// WithTrace prints every executed statement, prefixed by its line index
func WithTrace(w io.Writer) Option {
	return func(i *Interpreter) { i.trace = w }
}

// WithLogger sets the logger receiving call/return debug events
func WithLogger(l *log.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(opts ...Option) *Interpreter {
	it := &Interpreter{}
	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}
	if it.in == nil {
		it.in = bufio.NewReader(os.Stdin)
	}
	if it.logger == nil {
		it.logger = log.Default()
	}

	return it
}

// Run loads the source lines and executes main to completion
func (i *Interpreter) Run(lines []string) error {
	p, err := Load(lines)
	if err != nil {
		return err
	}
	return i.Exec(p)
}

// Exec executes an already loaded program
func (i *Interpreter) Exec(p *Program) error {
	e, err := i.Start(p)
	if err != nil {
		return err
	}
	return e.Run()
}

// Start prepares an execution positioned at the first statement of main.
func (i *Interpreter) Start(p *Program) (*Execution, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	entry, _ := p.Funcs.Lookup(MainFunc)

	e := &Execution{
		it:      i,
		prog:    p,
		blocks:  newBlockIndex(p),
		env:     NewEnv(),
		ip:      entry.Start,
		resume:  stack.NewStack[int](),
		returns: stack.NewStack(entry.Returns),
	}
	e.env.PushFrame()

	i.logger.Debug("Starting program", "functions", p.Funcs.Len(), "lines", p.Len())
	return e, nil
}

// Execution is the state of one program run: instruction pointer, scope
// environment and the parallel call stacks.
type Execution struct {
	it     *Interpreter
	prog   *Program
	blocks *blockIndex
	env    *Env

	ip      int                     // 0-based index of the next statement
	resume  *stack.Stack[int]       // caller lines to continue at after a call
	returns *stack.Stack[ValueKind] // declared return kinds of active calls

	halted bool
	steps  int
}

// Step executes a single statement, returning (halted, error)
func (e *Execution) Step() (bool, error) {
	if e.halted {
		return true, ErrHalted
	}

	if e.it.maxSteps > 0 && e.steps >= e.it.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	ip := e.ip
	err := coreStep(e)
	e.steps++
	if err != nil {
		e.halted = true
		return true, atLine(err, ip)
	}

	return e.halted, nil
}

// Run executes until halt or error
func (e *Execution) Run() error {
	for {
		halted, err := e.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// PC returns the current instruction pointer
func (e *Execution) PC() int {
	return e.ip
}

// Env exposes the scope environment of the run
func (e *Execution) Env() *Env {
	return e.env
}

// Halted reports whether main has finished
func (e *Execution) Halted() bool {
	return e.halted
}

// Steps returns the number of statements executed so far
func (e *Execution) Steps() int {
	return e.steps
}
