package interpreter

import (
	"errors"

	"brewin/pkg/lexer"
)

// Program is a loaded source: tokens, indentation and function registry.
// It is immutable once loaded and may back any number of runs.
type Program struct {
	Lines   []string
	Tokens  [][]lexer.Token
	Indents []int
	Funcs   *Registry
}

// Load tokenizes the source lines, records per-line indentation and builds
// the function registry.
func Load(lines []string) (*Program, error) {
	tokens, err := lexer.TokenizeProgram(lines)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return nil, &Error{Kind: SyntaxError, Line: lexErr.Pos.Line, Msg: lexErr.Err.Error()}
		}
		return nil, err
	}

	p := &Program{
		Lines:   lines,
		Tokens:  tokens,
		Indents: computeIndentation(lines),
	}

	p.Funcs, err = NewRegistry(p.Tokens, p.Indents)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Check verifies the program can start: a parameterless main must exist.
func (p *Program) Check() error {
	fn, ok := p.Funcs.Lookup(MainFunc)
	if !ok {
		return nameErrorf("unable to locate %s function", MainFunc)
	}
	if len(fn.Params) > 0 {
		return atLine(syntaxErrorf("%s must not take parameters", MainFunc), fn.Line)
	}
	return nil
}

// Len returns the number of source lines.
func (p *Program) Len() int {
	return len(p.Tokens)
}

// computeIndentation counts the leading blanks of every line; a tab counts
// as one column.
func computeIndentation(lines []string) []int {
	indents := make([]int, len(lines))
	for i, line := range lines {
		n := 0
		for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
			n++
		}
		indents[i] = n
	}
	return indents
}
