package interpreter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"brewin/pkg/lexer"
)

type builtin func(e *Execution, args []lexer.Token) error

var builtins = map[string]builtin{
	"print":    printBuiltin,
	"input":    inputBuiltin,
	"strtoint": strtointBuiltin,
}

// printBuiltin writes its arguments back to back, then a newline.
func printBuiltin(e *Execution, args []lexer.Token) error {
	if len(args) == 0 {
		return syntaxErrorf("invalid print call syntax")
	}

	var sb strings.Builder
	for _, tok := range args {
		v, err := resolve(tok, e.env)
		if err != nil {
			return err
		}
		sb.WriteString(v.String())
	}

	fmt.Fprintln(e.it.out, sb.String())
	return nil
}

// inputBuiltin prints an optional prompt and stores one line of input in
// results.
func inputBuiltin(e *Execution, args []lexer.Token) error {
	if len(args) > 0 {
		if err := printBuiltin(e, args); err != nil {
			return err
		}
	}

	line, err := e.it.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading input: %w", err)
	}

	e.env.SetGlobal(ResultString, newString(strings.TrimRight(line, "\r\n")))
	return nil
}

// strtointBuiltin parses a decimal string into resulti. Text that is not
// an integer is a type error.
func strtointBuiltin(e *Execution, args []lexer.Token) error {
	if len(args) != 1 {
		return syntaxErrorf("invalid strtoint call syntax")
	}

	v, err := resolve(args[0], e.env)
	if err != nil {
		return err
	}
	if v.Kind != KindString {
		return typeErrorf("non-string passed to strtoint")
	}

	n, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
	if err != nil {
		return typeErrorf("strtoint: %q is not an integer", v.Str)
	}

	e.env.SetGlobal(ResultInt, newInt(n))
	return nil
}
