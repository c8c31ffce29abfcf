package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type   TokenType // Type of the token
	Lexeme string    // Actual string from source code
	Pos    Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, pos Position) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Pos:    pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	TYPENAME
	IDENTIFIER
	LITERAL
	OPERATOR
)

const (
	ILLEGAL TokenType = iota // illegal token

	FUNC     // func
	ENDFUNC  // endfunc
	VAR      // var
	ASSIGN   // assign
	FUNCCALL // funccall
	IF       // if
	ELSE     // else
	ENDIF    // endif
	WHILE    // while
	ENDWHILE // endwhile
	RETURN   // return
	TRUE     // true
	FALSE    // false

	INT       // int
	BOOL      // bool
	STR       // string
	VOID      // void
	REFINT    // refint
	REFBOOL   // refbool
	REFSTRING // refstring

	ID     // id (identifier)
	NUM    // num (integer literal)
	STRING // string literal
	PARAM  // name:type

	PLUS  // +
	MINUS // -
	MULT  // *
	DIV   // /
	MOD   // %
	LT    // <
	GT    // >
	LE    // <=
	GE    // >=
	EQ    // ==
	NE    // !=
	AND   // &
	OR    // |
	NOT   // !
)

var Keywords = map[string]TokenType{
	"func":      FUNC,
	"endfunc":   ENDFUNC,
	"var":       VAR,
	"assign":    ASSIGN,
	"funccall":  FUNCCALL,
	"if":        IF,
	"else":      ELSE,
	"endif":     ENDIF,
	"while":     WHILE,
	"endwhile":  ENDWHILE,
	"return":    RETURN,
	"true":      TRUE,
	"false":     FALSE,
	"int":       INT,
	"bool":      BOOL,
	"string":    STR,
	"void":      VOID,
	"refint":    REFINT,
	"refbool":   REFBOOL,
	"refstring": REFSTRING,
}

var Operators = map[string]TokenType{
	"+":  PLUS,
	"-":  MINUS,
	"*":  MULT,
	"/":  DIV,
	"%":  MOD,
	"<":  LT,
	">":  GT,
	"<=": LE,
	">=": GE,
	"==": EQ,
	"!=": NE,
	"&":  AND,
	"|":  OR,
	"!":  NOT,
}

var names = map[TokenType]string{
	ILLEGAL: "illegal",
	ID:      "id",
	NUM:     "num",
	STRING:  "string literal",
	PARAM:   "param",
}

func init() {
	for word, t := range Keywords {
		names[t] = word
	}
	for op, t := range Operators {
		names[t] = op
	}
}

// String returns a string representation of the Token
func (t Token) String() string {
	return fmt.Sprintf("T_{%s, %q, %s}", t.Type, t.Lexeme, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := names[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case FUNC, ENDFUNC, VAR, ASSIGN, FUNCCALL, IF, ELSE, ENDIF, WHILE, ENDWHILE, RETURN:
		return KEYWORD
	case INT, BOOL, STR, VOID, REFINT, REFBOOL, REFSTRING:
		return TYPENAME
	case ID, PARAM:
		return IDENTIFIER
	case NUM, STRING, TRUE, FALSE:
		return LITERAL
	case PLUS, MINUS, MULT, DIV, MOD, LT, GT, LE, GE, EQ, NE, AND, OR, NOT:
		return OPERATOR
	default:
		return NONE
	}
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}

// IsOperator reports whether the token is a unary or binary expression operator
func (t Token) IsOperator() bool {
	return t.Type.GetCategory() == OPERATOR
}

// IsBinary reports whether the token is a binary expression operator
func (t Token) IsBinary() bool {
	return t.IsOperator() && t.Type != NOT
}
