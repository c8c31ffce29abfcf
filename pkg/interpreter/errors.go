package interpreter

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	SyntaxError ErrorKind = iota + 1
	NameError
	TypeError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SYNTAX_ERROR"
	case NameError:
		return "NAME_ERROR"
	case TypeError:
		return "TYPE_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error is a classified, fatal run error. Line is 1-based; zero means the
// error has not been attributed to a statement yet.
type Error struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is lets errors.Is match a classified error against its kind sentinel.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSyntax:
		return e.Kind == SyntaxError
	case ErrName:
		return e.Kind == NameError
	case ErrType:
		return e.Kind == TypeError
	}
	return false
}

var (
	ErrSyntax = errors.New("syntax error")
	ErrName   = errors.New("name error")
	ErrType   = errors.New("type error")

	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
	ErrHalted           = errors.New("execution already terminated")
)

func syntaxErrorf(format string, args ...any) *Error {
	return &Error{Kind: SyntaxError, Msg: fmt.Sprintf(format, args...)}
}

func nameErrorf(format string, args ...any) *Error {
	return &Error{Kind: NameError, Msg: fmt.Sprintf(format, args...)}
}

func typeErrorf(format string, args ...any) *Error {
	return &Error{Kind: TypeError, Msg: fmt.Sprintf(format, args...)}
}

// atLine attributes an unplaced classified error to a 0-based program line.
func atLine(err error, ip int) error {
	var e *Error
	if errors.As(err, &e) && e.Line == 0 {
		e.Line = ip + 1
	}
	return err
}
