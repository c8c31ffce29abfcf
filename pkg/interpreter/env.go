package interpreter

// Env is the scope environment: a stack of frames searched innermost
// first. Frame 0 holds the return-value slots and is never popped.
type Env struct {
	frames []*Frame
}

// NewEnv creates an environment with frame 0 populated.
func NewEnv() *Env {
	globals := newFrame()
	globals.Vars[ResultInt] = newOwned(KindInt.Zero())
	globals.Vars[ResultBool] = newOwned(KindBool.Zero())
	globals.Vars[ResultString] = newOwned(KindString.Zero())

	return &Env{frames: []*Frame{globals}}
}

// Depth returns the number of frames, frame 0 included.
func (e *Env) Depth() int {
	return len(e.frames)
}

func (e *Env) top() *Frame {
	return e.frames[len(e.frames)-1]
}

// lookup finds the nearest binding for name and the index of its frame.
func (e *Env) lookup(name string) (*Binding, int, bool) {
	return e.lookupFrom(name, len(e.frames)-1)
}

func (e *Env) lookupFrom(name string, from int) (*Binding, int, bool) {
	for idx := from; idx >= 0; idx-- {
		if b, ok := e.frames[idx].Vars[name]; ok {
			return b, idx, true
		}
	}
	return nil, -1, false
}

// Exists reports whether name is visible from the current frame.
func (e *Env) Exists(name string) bool {
	_, _, ok := e.lookup(name)
	return ok
}

// ExistsInCurrentFrame reports whether name is declared in the top frame.
func (e *Env) ExistsInCurrentFrame(name string) bool {
	_, ok := e.top().Vars[name]
	return ok
}

// Get returns the value of the nearest binding of name.
func (e *Env) Get(name string) (Value, bool) {
	b, _, ok := e.lookup(name)
	if !ok {
		return Value{}, false
	}
	return b.Value(), true
}

// Binding returns the nearest binding of name.
func (e *Env) Binding(name string) (*Binding, bool) {
	b, _, ok := e.lookup(name)
	return b, ok
}

// Add declares name in the top frame with its own storage.
func (e *Env) Add(name string, v Value) error {
	if e.ExistsInCurrentFrame(name) {
		return nameErrorf("conflicting variable declaration `%s`", name)
	}
	e.top().Vars[name] = newOwned(v)
	return nil
}

// Alias declares name in the top frame sharing the storage of origin as
// seen from the frame below the top one. A call pushes the callee frame
// before binding its parameters, so origin always resolves in the caller's
// scope even when it is spelled like a parameter.
func (e *Env) Alias(name, origin string) error {
	if e.ExistsInCurrentFrame(name) {
		return nameErrorf("conflicting variable declaration `%s`", name)
	}
	target, idx, ok := e.lookupFrom(origin, len(e.frames)-2)
	if !ok {
		return nameErrorf("unknown variable `%s`", origin)
	}

	alias := &Binding{cell: target.cell, Owner: Aliased, OriginFrame: idx, OriginName: origin}
	if target.Owner == Aliased {
		alias.OriginFrame = target.OriginFrame
		alias.OriginName = target.OriginName
	}
	e.top().Vars[name] = alias
	return nil
}

// Set updates the nearest binding of name in place, or declares it in the
// top frame when nothing is visible. Callers that must reject undeclared
// names check Exists first.
func (e *Env) Set(name string, v Value) {
	if b, _, ok := e.lookup(name); ok {
		b.Store(v)
		return
	}
	e.top().Vars[name] = newOwned(v)
}

// SetGlobal writes a frame-0 slot regardless of the current depth.
func (e *Env) SetGlobal(slot string, v Value) {
	if b, ok := e.frames[0].Vars[slot]; ok {
		b.Store(v)
		return
	}
	e.frames[0].Vars[slot] = newOwned(v)
}

// PushFrame opens a new innermost scope.
func (e *Env) PushFrame() {
	e.frames = append(e.frames, newFrame())
}

// PopFrame discards the innermost scope. Frame 0 is never removed.
func (e *Env) PopFrame() bool {
	if len(e.frames) <= 1 {
		return false
	}
	e.frames[len(e.frames)-1] = nil
	e.frames = e.frames[:len(e.frames)-1]
	return true
}
