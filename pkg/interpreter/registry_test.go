package interpreter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry(t *testing.T) {
	src := `
func swap a:refint b:refint void
  var int t
endfunc

func main void
  funccall swap x y
endfunc
`
	p, err := Load(sourceLines(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fn, ok := p.Funcs.Lookup("swap")
	if !ok {
		t.Fatalf("swap not registered")
	}

	want := &Function{
		Name:    "swap",
		Line:    0,
		Start:   1,
		End:     2,
		Params:  []Param{{Name: "a", Kind: KindInt, Ref: true}, {Name: "b", Kind: KindInt, Ref: true}},
		Returns: KindVoid,
	}
	if diff := cmp.Diff(want, fn); diff != "" {
		t.Errorf("swap mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"main", "swap"}, p.Funcs.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	if enc, ok := p.Funcs.Enclosing(5); !ok || enc.Name != "main" {
		t.Errorf("expected line 5 to be inside main, got %v", enc)
	}
	if _, ok := p.Funcs.Enclosing(3); ok {
		t.Errorf("blank line between functions belongs to none")
	}
	if _, ok := p.Funcs.Lookup("nope"); ok {
		t.Errorf("unexpected function nope")
	}
}

func TestRegistryErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
	}{
		{"too short", "func f\nendfunc", ErrSyntax},
		{"bad parameter type", "func f a:float void\nendfunc", ErrSyntax},
		{"void parameter", "func f a:void void\nendfunc", ErrSyntax},
		{"unknown return type", "func f a:int float\nendfunc", ErrSyntax},
		{"reference return type", "func f refstring\nendfunc", ErrType},
		{"duplicate function", "func f void\nendfunc\nfunc f void\nendfunc", ErrName},
		{"duplicate parameter", "func f a:int a:bool void\nendfunc", ErrName},
		{"missing endfunc", "func f void\n  var int x", ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(sourceLines(tt.src))
			if !errors.Is(err, tt.kind) {
				t.Errorf("expected %v, got %v", tt.kind, err)
			}
		})
	}
}
