package interpreter

import (
	"errors"
	"testing"
)

func TestEnvShadowing(t *testing.T) {
	env := NewEnv()
	env.PushFrame()

	if err := env.Add("x", newInt(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := env.Add("x", newInt(2)); !errors.Is(err, ErrName) {
		t.Fatalf("expected name error on redeclaration, got %v", err)
	}

	env.PushFrame()
	if err := env.Add("x", newString("inner")); err != nil {
		t.Fatalf("shadowing in a nested frame should be legal: %v", err)
	}
	if v, _ := env.Get("x"); v.Str != "inner" {
		t.Errorf("expected inner binding, got %v", v)
	}

	env.PopFrame()
	if v, _ := env.Get("x"); v.Kind != KindInt || v.Int != 1 {
		t.Errorf("expected outer binding to be restored, got %v", v)
	}
}

func TestEnvSetMutatesNearest(t *testing.T) {
	env := NewEnv()
	env.PushFrame()
	_ = env.Add("x", newInt(1))
	env.PushFrame()

	env.Set("x", newInt(5))
	if env.ExistsInCurrentFrame("x") {
		t.Errorf("Set must update the visible binding, not declare a new one")
	}

	env.PopFrame()
	if v, _ := env.Get("x"); v.Int != 5 {
		t.Errorf("expected 5, got %v", v)
	}

	env.Set("fresh", newBool(true))
	if !env.ExistsInCurrentFrame("fresh") {
		t.Errorf("Set of an unknown name should declare it in the top frame")
	}
}

func TestEnvAlias(t *testing.T) {
	env := NewEnv()
	env.PushFrame()
	_ = env.Add("x", newInt(3))

	env.PushFrame()
	if err := env.Alias("a", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env.PushFrame()
	if err := env.Alias("b", "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, _ := env.Binding("b")
	if b.Owner != Aliased || b.OriginFrame != 1 || b.OriginName != "x" {
		t.Errorf("expected alias of frame 1 slot x, got %+v", b)
	}

	env.Set("b", newInt(9))
	env.PopFrame()
	env.PopFrame()
	if v, _ := env.Get("x"); v.Int != 9 {
		t.Errorf("expected write through the alias chain, got %v", v)
	}

	if err := env.Alias("c", "missing"); !errors.Is(err, ErrName) {
		t.Errorf("expected name error for missing origin, got %v", err)
	}
}

func TestEnvGlobals(t *testing.T) {
	env := NewEnv()
	for _, slot := range []string{ResultInt, ResultBool, ResultString} {
		if !env.Exists(slot) {
			t.Errorf("expected slot %s in frame 0", slot)
		}
	}

	env.PushFrame()
	env.PushFrame()
	env.SetGlobal(ResultInt, newInt(42))
	if v, _ := env.Get(ResultInt); v.Int != 42 {
		t.Errorf("expected 42, got %v", v)
	}

	for env.PopFrame() {
	}
	if env.Depth() != 1 {
		t.Errorf("frame 0 must survive PopFrame, depth %d", env.Depth())
	}
}
