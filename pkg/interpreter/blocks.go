package interpreter

import (
	"slices"

	"brewin/pkg/lexer"
)

// blockIndex matches block openers and closers by indentation. Matches are
// found by scanning and memoized per line; a failed scan is not cached so
// the error is raised every time the statement runs.
type blockIndex struct {
	prog     *Program
	forward  map[int]int
	backward map[int]int
}

func newBlockIndex(p *Program) *blockIndex {
	return &blockIndex{
		prog:     p,
		forward:  make(map[int]int),
		backward: make(map[int]int),
	}
}

var (
	blockClosers = map[lexer.TokenType][]lexer.TokenType{
		lexer.IF:    {lexer.ELSE, lexer.ENDIF},
		lexer.ELSE:  {lexer.ENDIF},
		lexer.WHILE: {lexer.ENDWHILE},
	}
	blockOpeners = map[lexer.TokenType]lexer.TokenType{
		lexer.ENDWHILE: lexer.WHILE,
	}
)

func (b *blockIndex) kind(line int) lexer.TokenType {
	if tokens := b.prog.Tokens[line]; len(tokens) > 0 {
		return tokens[0].Type
	}
	return lexer.ILLEGAL
}

// matchForward returns the first line after the opener at from, at the
// same depth, that can close it. The scan gives up at a shallower line.
func (b *blockIndex) matchForward(from int) (int, bool) {
	if to, ok := b.forward[from]; ok {
		return to, true
	}

	targets, ok := blockClosers[b.kind(from)]
	if !ok {
		return -1, false
	}

	depth := b.prog.Indents[from]
	for line := from + 1; line < b.prog.Len(); line++ {
		if len(b.prog.Tokens[line]) == 0 {
			continue
		}
		if b.prog.Indents[line] < depth {
			break
		}
		if b.prog.Indents[line] == depth && slices.Contains(targets, b.kind(line)) {
			b.forward[from] = line
			return line, true
		}
	}

	return -1, false
}

// matchBackward finds the opener of the closer at from.
func (b *blockIndex) matchBackward(from int) (int, bool) {
	if to, ok := b.backward[from]; ok {
		return to, true
	}

	target, ok := blockOpeners[b.kind(from)]
	if !ok {
		return -1, false
	}

	depth := b.prog.Indents[from]
	for line := from - 1; line >= 0; line-- {
		if len(b.prog.Tokens[line]) == 0 {
			continue
		}
		if b.prog.Indents[line] < depth {
			break
		}
		if b.prog.Indents[line] == depth && b.kind(line) == target {
			b.backward[from] = line
			return line, true
		}
	}

	return -1, false
}

// enclosingClosers lists the endif/endwhile lines between a return and its
// endfunc that close blocks containing the return. Each closer must sit
// shallower than the return and every closer already counted; deeper ones
// belong to sibling blocks.
func (b *blockIndex) enclosingClosers(ret, end int) []int {
	var closers []int

	depth := b.prog.Indents[ret]
	for line := ret + 1; line < end; line++ {
		switch b.kind(line) {
		case lexer.ENDIF, lexer.ENDWHILE:
			if b.prog.Indents[line] < depth {
				closers = append(closers, line)
				depth = b.prog.Indents[line]
			}
		}
	}

	return closers
}
