package color

import "testing"

func TestErrorAtLinePlain(t *testing.T) {
	prev := IsColorEnabled()
	defer EnableColor(prev)

	EnableColor(false)

	got := ErrorAtLine("NAME_ERROR", 3, "unknown variable `y`", "  assign x y")
	want := "NAME_ERROR at line 3: unknown variable `y`\n   3 |   assign x y"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = ErrorAtLine("NAME_ERROR", 0, "unable to locate main function", "")
	if got != "NAME_ERROR: unable to locate main function" {
		t.Errorf("unexpected unplaced error rendering %q", got)
	}
}

func TestColorize(t *testing.T) {
	prev := IsColorEnabled()
	defer EnableColor(prev)

	EnableColor(true)
	if got := RedText("x"); got != Red+"x"+Reset {
		t.Errorf("expected coloured text, got %q", got)
	}

	EnableColor(false)
	if got := RedText("x"); got != "x" {
		t.Errorf("expected plain text, got %q", got)
	}
}
