package interpreter

import (
	"strconv"
)

type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindInt
	KindBool
	KindString
	KindVoid // only valid as a function return type
)

// Return-value slots living in frame 0, one per value kind.
const (
	ResultInt    = "resulti"
	ResultBool   = "resultb"
	ResultString = "results"
)

// Value represents a dynamically-typed value in the interpreter.
type Value struct {
	Kind ValueKind
	Int  int64
	Bool bool
	Str  string
}

// String renders the value the way print writes it.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindString:
		return v.Str
	default:
		return "<nil>"
	}
}

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Zero returns the default-initialized value of the kind.
func (k ValueKind) Zero() Value {
	return Value{Kind: k}
}

// ResultSlot names the frame-0 slot that carries a function result of kind k.
func (k ValueKind) ResultSlot() (string, bool) {
	switch k {
	case KindInt:
		return ResultInt, true
	case KindBool:
		return ResultBool, true
	case KindString:
		return ResultString, true
	default:
		return "", false
	}
}

// ParseType maps a type word to its kind. ref is set for refint, refbool
// and refstring.
func ParseType(word string) (kind ValueKind, ref bool, ok bool) {
	switch word {
	case "int":
		return KindInt, false, true
	case "bool":
		return KindBool, false, true
	case "string":
		return KindString, false, true
	case "void":
		return KindVoid, false, true
	case "refint":
		return KindInt, true, true
	case "refbool":
		return KindBool, true, true
	case "refstring":
		return KindString, true, true
	default:
		return KindUnknown, false, false
	}
}

func newInt(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

func newBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

func newString(s string) Value {
	return Value{Kind: KindString, Str: s}
}
