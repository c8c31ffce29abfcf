package lexer

import "fmt"

// Position locates a token. Line is the 1-based program line, Column the
// 1-based byte offset of the token's first character within it.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func NewPosition(line, column int) Position {
	return Position{Line: line, Column: column}
}
