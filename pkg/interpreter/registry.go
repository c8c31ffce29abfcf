package interpreter

import (
	"sort"
	"strings"

	"brewin/pkg/lexer"
)

const MainFunc = "main"

// Param is one declared function parameter.
type Param struct {
	Name string
	Kind ValueKind
	Ref  bool
}

// Function is the cached signature and location of a user function.
type Function struct {
	Name    string
	Line    int // 0-based line of the func statement
	Start   int // first body line
	End     int // line of the matching endfunc
	Params  []Param
	Returns ValueKind
}

// Registry maps function names to their definitions. It is built once
// before execution and never modified afterwards.
type Registry struct {
	funcs map[string]*Function
}

// NewRegistry scans the tokenized program for function definitions.
func NewRegistry(program [][]lexer.Token, indents []int) (*Registry, error) {
	r := &Registry{funcs: make(map[string]*Function)}

	for idx, line := range program {
		if len(line) == 0 || line[0].Type != lexer.FUNC {
			continue
		}

		fn, err := parseFunction(idx, line)
		if err != nil {
			return nil, atLine(err, idx)
		}
		if prev, ok := r.funcs[fn.Name]; ok {
			return nil, atLine(nameErrorf("function `%s` already defined at line %d", fn.Name, prev.Line+1), idx)
		}

		fn.End = findEndfunc(program, indents, idx)
		if fn.End < 0 {
			return nil, atLine(syntaxErrorf("missing endfunc for `%s`", fn.Name), idx)
		}

		r.funcs[fn.Name] = fn
	}

	return r, nil
}

func parseFunction(idx int, line []lexer.Token) (*Function, error) {
	if len(line) < 3 {
		return nil, syntaxErrorf("invalid function declaration")
	}
	if line[1].Type != lexer.ID {
		return nil, syntaxErrorf("invalid function name `%s`", line[1].Lexeme)
	}

	fn := &Function{Name: line[1].Lexeme, Line: idx, Start: idx + 1}

	seen := make(map[string]bool)
	for _, tok := range line[2 : len(line)-1] {
		name, typ, ok := strings.Cut(tok.Lexeme, ":")
		if !ok || tok.Type != lexer.PARAM {
			return nil, syntaxErrorf("invalid parameter definition `%s`", tok.Lexeme)
		}
		kind, ref, ok := ParseType(typ)
		if !ok || kind == KindVoid {
			return nil, syntaxErrorf("invalid parameter type `%s`", typ)
		}
		if seen[name] {
			return nil, nameErrorf("duplicate parameter `%s`", name)
		}
		seen[name] = true
		fn.Params = append(fn.Params, Param{Name: name, Kind: kind, Ref: ref})
	}

	ret := line[len(line)-1].Lexeme
	kind, ref, ok := ParseType(ret)
	if !ok {
		return nil, syntaxErrorf("invalid return type `%s`", ret)
	}
	if ref {
		return nil, typeErrorf("invalid return type `%s`", ret)
	}
	fn.Returns = kind

	return fn, nil
}

func findEndfunc(program [][]lexer.Token, indents []int, def int) int {
	for idx := def + 1; idx < len(program); idx++ {
		line := program[idx]
		if len(line) == 0 {
			continue
		}
		if line[0].Type == lexer.ENDFUNC && indents[idx] == indents[def] {
			return idx
		}
		if line[0].Type == lexer.FUNC {
			return -1
		}
	}
	return -1
}

// Lookup returns the cached definition of name.
func (r *Registry) Lookup(name string) (*Function, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Enclosing returns the function whose body contains line.
func (r *Registry) Enclosing(line int) (*Function, bool) {
	for _, fn := range r.funcs {
		if fn.Start <= line && line < fn.End {
			return fn, true
		}
	}
	return nil, false
}

// Names lists the defined functions in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined functions.
func (r *Registry) Len() int {
	return len(r.funcs)
}
