package lexer

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnterminatedString = errors.New("unterminated string literal")

// Error ties a lexing failure to its source position
type Error struct {
	Pos Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at %s", e.Err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Lexer struct {
	input    string // source line to be tokenized
	length   int    // length of the input string
	position int    // current position in the input string
	line     int    // line number for error reporting (1-based)
}

// Create a new lexer instance for one source line
func NewLexer(s string, line int) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
		line:     line,
	}
}

// NextToken returns the next token on the line. ok is false once the line
// (or a trailing comment) is exhausted.
func (l *Lexer) NextToken() (tok Token, ok bool, err error) {
	l.skipWhitespace()

	if l.position >= l.length || l.input[l.position] == '#' {
		return Token{}, false, nil
	}

	start := l.position
	if l.input[l.position] == '"' {
		end := strings.IndexByte(l.input[start+1:], '"')
		if end < 0 {
			return Token{}, false, &Error{Pos: l.currentPosition(), Err: ErrUnterminatedString}
		}
		l.position = start + end + 2
	} else {
		for l.position < l.length && !isSpace(l.input[l.position]) && l.input[l.position] != '#' {
			l.position++
		}
	}

	word := l.input[start:l.position]
	tokenType, _ := MatchToken(word)

	return NewToken(tokenType, word, NewPosition(l.line, start+1)), true, nil
}

// Tokens drains the lexer into a slice
func (l *Lexer) Tokens() ([]Token, error) {
	var tokens []Token
	for {
		tok, ok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}

// Skip whitespace between words
func (l *Lexer) skipWhitespace() {
	for l.position < l.length && isSpace(l.input[l.position]) {
		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return NewPosition(l.line, l.position+1)
}

// TokenizeProgram splits every source line into its tokens. Blank and
// comment-only lines yield an empty slice so the result stays index-aligned
// with the source.
func TokenizeProgram(lines []string) ([][]Token, error) {
	program := make([][]Token, len(lines))
	for i, line := range lines {
		tokens, err := NewLexer(line, i+1).Tokens()
		if err != nil {
			return nil, err
		}
		program[i] = tokens
	}

	return program, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
