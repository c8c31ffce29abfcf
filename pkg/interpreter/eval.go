package interpreter

import (
	"strconv"
	"strings"

	"brewin/pkg/lexer"
	"brewin/pkg/stack"
)

// Lookup resolves identifiers during evaluation.
type Lookup interface {
	Get(name string) (Value, bool)
}

type binaryOp func(a, b Value) (Value, error)

// binaryOps is the per-kind operator table. An operator missing from a
// kind's table is a type error for operands of that kind.
var binaryOps = map[ValueKind]map[lexer.TokenType]binaryOp{
	KindInt: {
		lexer.PLUS:  intOp(func(a, b int64) int64 { return a + b }),
		lexer.MINUS: intOp(func(a, b int64) int64 { return a - b }),
		lexer.MULT:  intOp(func(a, b int64) int64 { return a * b }),
		lexer.DIV:   floorDiv,
		lexer.MOD:   floorMod,
		lexer.EQ:    func(a, b Value) (Value, error) { return newBool(a.Int == b.Int), nil },
		lexer.NE:    func(a, b Value) (Value, error) { return newBool(a.Int != b.Int), nil },
		lexer.GT:    func(a, b Value) (Value, error) { return newBool(a.Int > b.Int), nil },
		lexer.LT:    func(a, b Value) (Value, error) { return newBool(a.Int < b.Int), nil },
		lexer.GE:    func(a, b Value) (Value, error) { return newBool(a.Int >= b.Int), nil },
		lexer.LE:    func(a, b Value) (Value, error) { return newBool(a.Int <= b.Int), nil },
	},
	KindString: {
		lexer.PLUS: func(a, b Value) (Value, error) { return newString(a.Str + b.Str), nil },
		lexer.EQ:   strCmp(func(c int) bool { return c == 0 }),
		lexer.NE:   strCmp(func(c int) bool { return c != 0 }),
		lexer.GT:   strCmp(func(c int) bool { return c > 0 }),
		lexer.LT:   strCmp(func(c int) bool { return c < 0 }),
		lexer.GE:   strCmp(func(c int) bool { return c >= 0 }),
		lexer.LE:   strCmp(func(c int) bool { return c <= 0 }),
	},
	KindBool: {
		lexer.AND: func(a, b Value) (Value, error) { return newBool(a.Bool && b.Bool), nil },
		lexer.OR:  func(a, b Value) (Value, error) { return newBool(a.Bool || b.Bool), nil },
		lexer.EQ:  func(a, b Value) (Value, error) { return newBool(a.Bool == b.Bool), nil },
		lexer.NE:  func(a, b Value) (Value, error) { return newBool(a.Bool != b.Bool), nil },
	},
}

func intOp(fn func(a, b int64) int64) binaryOp {
	return func(a, b Value) (Value, error) {
		return newInt(fn(a.Int, b.Int)), nil
	}
}

func strCmp(fn func(c int) bool) binaryOp {
	return func(a, b Value) (Value, error) {
		return newBool(fn(strings.Compare(a.Str, b.Str))), nil
	}
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b Value) (Value, error) {
	if b.Int == 0 {
		return Value{}, typeErrorf("division by zero")
	}
	q := a.Int / b.Int
	if (a.Int%b.Int != 0) && ((a.Int < 0) != (b.Int < 0)) {
		q--
	}
	return newInt(q), nil
}

// floorMod takes the sign of the divisor, matching floorDiv.
func floorMod(a, b Value) (Value, error) {
	if b.Int == 0 {
		return Value{}, typeErrorf("modulo by zero")
	}
	m := a.Int % b.Int
	if m != 0 && ((m < 0) != (b.Int < 0)) {
		m += b.Int
	}
	return newInt(m), nil
}

// Eval evaluates a prefix-notation expression such as `+ 5 * 6 x`. Tokens
// are consumed right to left: operands are pushed, operators pop theirs
// and push the result.
func Eval(tokens []lexer.Token, vars Lookup) (Value, error) {
	if len(tokens) == 0 {
		return Value{}, syntaxErrorf("missing expression")
	}

	operands := stack.NewStack[Value]()
	for idx := len(tokens) - 1; idx >= 0; idx-- {
		tok := tokens[idx]

		switch {
		case tok.Type == lexer.NOT:
			v, ok := operands.Pop()
			if !ok {
				return Value{}, syntaxErrorf("invalid expression: `!` is missing its operand")
			}
			if v.Kind != KindBool {
				return Value{}, typeErrorf("expecting bool for `!`, got %s", v.Kind)
			}
			operands.Push(newBool(!v.Bool))

		case tok.IsBinary():
			a, okA := operands.Pop()
			b, okB := operands.Pop()
			if !okA || !okB {
				return Value{}, syntaxErrorf("invalid expression: `%s` is missing operands", tok.Lexeme)
			}
			if a.Kind != b.Kind {
				return Value{}, typeErrorf("mismatching types %s and %s for `%s`", a.Kind, b.Kind, tok.Lexeme)
			}
			op, ok := binaryOps[a.Kind][tok.Type]
			if !ok {
				return Value{}, typeErrorf("operator `%s` is not compatible with %s", tok.Lexeme, a.Kind)
			}
			res, err := op(a, b)
			if err != nil {
				return Value{}, err
			}
			operands.Push(res)

		default:
			v, err := resolve(tok, vars)
			if err != nil {
				return Value{}, err
			}
			operands.Push(v)
		}
	}

	if operands.Size() != 1 {
		return Value{}, syntaxErrorf("invalid expression")
	}

	v, _ := operands.Pop()
	return v, nil
}

// resolve turns a literal or identifier token into a value.
func resolve(tok lexer.Token, vars Lookup) (Value, error) {
	switch tok.Type {
	case lexer.STRING:
		return newString(tok.Lexeme[1 : len(tok.Lexeme)-1]), nil
	case lexer.NUM:
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return Value{}, syntaxErrorf("invalid integer literal `%s`", tok.Lexeme)
		}
		return newInt(n), nil
	case lexer.TRUE:
		return newBool(true), nil
	case lexer.FALSE:
		return newBool(false), nil
	}

	if v, ok := vars.Get(tok.Lexeme); ok {
		return v, nil
	}
	return Value{}, nameErrorf("unknown variable `%s`", tok.Lexeme)
}
