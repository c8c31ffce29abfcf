package interpreter

import (
	"fmt"
	"strings"

	"brewin/pkg/lexer"
)

// coreStep executes the statement at the instruction pointer and moves the
// pointer on.
func coreStep(e *Execution) error {
	if e.ip < 0 || e.ip >= e.prog.Len() {
		return syntaxErrorf("unexpected end of program")
	}

	if e.it.trace != nil {
		fmt.Fprintf(e.it.trace, "%04d: %s\n", e.ip, strings.TrimRight(e.prog.Lines[e.ip], " \t\r\n"))
	}

	tokens := e.prog.Tokens[e.ip]
	if len(tokens) == 0 {
		e.ip++
		return nil
	}

	args := tokens[1:]

	switch tokens[0].Type {
	case lexer.VAR:
		return e.declare(args)

	case lexer.ASSIGN:
		return e.assign(args)

	case lexer.FUNCCALL:
		e.env.PushFrame()
		return e.call(args)

	case lexer.ENDFUNC:
		return e.endFunc(false)

	case lexer.IF:
		return e.ifStmt(args)

	case lexer.ELSE:
		return e.elseStmt()

	case lexer.ENDIF:
		e.env.PopFrame()
		e.ip++
		return nil

	case lexer.WHILE:
		e.env.PushFrame()
		return e.while(args)

	case lexer.ENDWHILE:
		return e.endWhile()

	case lexer.RETURN:
		return e.ret(args)

	default:
		return syntaxErrorf("unknown statement `%s`", tokens[0].Lexeme)
	}
}

// declare handles `var <type> <name>...`
func (e *Execution) declare(args []lexer.Token) error {
	if len(args) < 2 {
		return syntaxErrorf("invalid variable definition")
	}

	kind, ref, ok := ParseType(args[0].Lexeme)
	if !ok || ref || kind == KindVoid {
		return syntaxErrorf("invalid variable type `%s`", args[0].Lexeme)
	}

	for _, tok := range args[1:] {
		if tok.Type != lexer.ID {
			return syntaxErrorf("invalid variable name `%s`", tok.Lexeme)
		}
		if err := e.env.Add(tok.Lexeme, kind.Zero()); err != nil {
			return err
		}
	}

	e.ip++
	return nil
}

// assign handles `assign <name> <expr>`
func (e *Execution) assign(args []lexer.Token) error {
	if len(args) < 2 {
		return syntaxErrorf("invalid assignment statement")
	}

	v, err := Eval(args[1:], e.env)
	if err != nil {
		return err
	}

	name := args[0].Lexeme
	cur, ok := e.env.Get(name)
	if !ok {
		return nameErrorf("unable to locate variable `%s`", name)
	}
	if cur.Kind != v.Kind {
		return typeErrorf("mismatching types %s and %s assigning `%s`", cur.Kind, v.Kind, name)
	}

	e.env.Set(name, v)
	e.ip++
	return nil
}

// call handles `funccall <name> <arg>...`. The dispatcher has already
// pushed the callee frame.
func (e *Execution) call(args []lexer.Token) error {
	if len(args) == 0 {
		return syntaxErrorf("missing function name to call")
	}

	name, params := args[0].Lexeme, args[1:]

	if fn, ok := builtins[name]; ok {
		err := fn(e, params)
		e.env.PopFrame()
		if err != nil {
			return err
		}
		e.ip++
		return nil
	}

	fn, ok := e.prog.Funcs.Lookup(name)
	if !ok {
		return nameErrorf("unable to locate %s function", name)
	}
	if len(params) != len(fn.Params) {
		return nameErrorf("function `%s` expects %d arguments, got %d", name, len(fn.Params), len(params))
	}

	// every argument is checked before anything is bound
	values := make([]Value, len(params))
	for idx, tok := range params {
		v, err := resolve(tok, e.env)
		if err != nil {
			return err
		}
		if want := fn.Params[idx].Kind; v.Kind != want {
			return typeErrorf("argument %d of `%s` must be %s, got %s", idx+1, name, want, v.Kind)
		}
		values[idx] = v
	}

	for idx, p := range fn.Params {
		var err error
		if p.Ref && params[idx].Type == lexer.ID {
			err = e.env.Alias(p.Name, params[idx].Lexeme)
		} else {
			err = e.env.Add(p.Name, values[idx])
		}
		if err != nil {
			return err
		}
	}

	e.returns.Push(fn.Returns)
	e.resume.Push(e.ip + 1)
	e.it.logger.Debug("Calling function", "func", name, "from", e.ip+1, "depth", e.resume.Size())
	e.ip = fn.Start

	return nil
}

// endFunc leaves the current function. explicit is set when a return
// statement already filled the result slot.
func (e *Execution) endFunc(explicit bool) error {
	kind, _ := e.returns.Pop()
	if !explicit {
		if slot, ok := kind.ResultSlot(); ok {
			e.env.SetGlobal(slot, kind.Zero())
		}
	}

	e.env.PopFrame()

	resumeAt, ok := e.resume.Pop()
	if !ok {
		e.halted = true
		e.it.logger.Debug("Program finished", "steps", e.steps+1)
		return nil
	}

	e.it.logger.Debug("Returning", "to", resumeAt+1, "kind", kind)
	e.ip = resumeAt
	return nil
}

// condition evaluates the Boolean expression of an if or while.
func (e *Execution) condition(stmt string, args []lexer.Token) (bool, error) {
	if len(args) == 0 {
		return false, syntaxErrorf("missing %s expression", stmt)
	}

	v, err := Eval(args, e.env)
	if err != nil {
		return false, err
	}
	if v.Kind != KindBool {
		return false, typeErrorf("non-boolean %s expression", stmt)
	}
	return v.Bool, nil
}

// ifStmt handles `if <expr>`: the true branch falls through, otherwise
// execution resumes after the matching else or endif.
func (e *Execution) ifStmt(args []lexer.Token) error {
	cond, err := e.condition("if", args)
	if err != nil {
		return err
	}

	e.env.PushFrame()
	if cond {
		e.ip++
		return nil
	}

	target, ok := e.blocks.matchForward(e.ip)
	if !ok {
		return syntaxErrorf("missing endif")
	}

	// the else body gets a scope of its own, an endif closes the block
	e.env.PopFrame()
	if e.blocks.kind(target) == lexer.ELSE {
		e.env.PushFrame()
	}
	e.ip = target + 1
	return nil
}

// elseStmt is only reached by finishing the true branch, so it skips the
// else body.
func (e *Execution) elseStmt() error {
	end, ok := e.blocks.matchForward(e.ip)
	if !ok {
		return syntaxErrorf("missing endif")
	}

	e.env.PopFrame()
	e.ip = end + 1
	return nil
}

// while handles `while <expr>`. The dispatcher pushed the body frame.
func (e *Execution) while(args []lexer.Token) error {
	cond, err := e.condition("while", args)
	if err != nil {
		return err
	}

	if cond {
		e.ip++
		return nil
	}

	end, ok := e.blocks.matchForward(e.ip)
	if !ok {
		return syntaxErrorf("missing endwhile")
	}

	e.env.PopFrame()
	e.ip = end + 1
	return nil
}

// endWhile jumps back to the loop head, which re-evaluates the condition.
func (e *Execution) endWhile() error {
	start, ok := e.blocks.matchBackward(e.ip)
	if !ok {
		return syntaxErrorf("missing while")
	}

	e.env.PopFrame()
	e.ip = start
	return nil
}

// ret handles `return [<expr>]`.
func (e *Execution) ret(args []lexer.Token) error {
	fn, ok := e.prog.Funcs.Enclosing(e.ip)
	if !ok {
		return syntaxErrorf("return outside of a function")
	}

	explicit := false
	if len(args) > 0 {
		v, err := Eval(args, e.env)
		if err != nil {
			return err
		}

		want, _ := e.returns.Peek()
		if v.Kind != want {
			return typeErrorf("returning %s from `%s`, declared %s", v.Kind, fn.Name, want)
		}

		slot, _ := want.ResultSlot()
		e.env.SetGlobal(slot, v)
		explicit = true
	}

	// drop the scopes of the blocks the return sits in
	for range e.blocks.enclosingClosers(e.ip, fn.End) {
		e.env.PopFrame()
	}

	return e.endFunc(explicit)
}
