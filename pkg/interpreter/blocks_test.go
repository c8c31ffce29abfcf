package interpreter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBlockMatching(t *testing.T) {
	src := `
func main void
  while true
    if true
      if false
        return
      endif
    else
      while false
      endwhile
    endif
  endwhile
endfunc
`
	p, err := Load(sourceLines(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := newBlockIndex(p)

	if got, ok := b.matchForward(2); !ok || got != 6 {
		t.Errorf("outer if: expected else at 6, got %d", got)
	}
	if got, ok := b.matchForward(6); !ok || got != 9 {
		t.Errorf("else: expected endif at 9, got %d", got)
	}
	if got, ok := b.matchForward(1); !ok || got != 10 {
		t.Errorf("outer while: expected endwhile at 10, got %d", got)
	}
	if got, ok := b.matchBackward(8); !ok || got != 7 {
		t.Errorf("inner endwhile: expected while at 7, got %d", got)
	}
	if _, ok := b.matchForward(4); ok {
		t.Errorf("return is not a block opener")
	}

	// the return sits in the inner if, the outer if and the outer while;
	// the sibling while in the else body must not be counted
	if diff := cmp.Diff([]int{5, 9, 10}, b.enclosingClosers(4, 11)); diff != "" {
		t.Errorf("closers mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockMatchingStopsAtShallowerLine(t *testing.T) {
	src := `
func main void
  if true
    while true
  endif
    endwhile
endfunc
`
	p, err := Load(sourceLines(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := newBlockIndex(p)

	if _, ok := b.matchForward(2); ok {
		t.Errorf("while must not match an endwhile past the enclosing endif")
	}
	if _, ok := b.matchBackward(4); ok {
		t.Errorf("endwhile must not match a while behind the shallower endif")
	}
	if got, ok := b.matchForward(1); !ok || got != 3 {
		t.Errorf("if: expected endif at 3, got %d", got)
	}
}
