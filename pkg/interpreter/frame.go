package interpreter

type Ownership int

const (
	Owned   Ownership = iota // the binding's frame owns the storage
	Aliased                  // the storage belongs to a binding in an outer frame
)

// Binding ties a name to value storage. Several bindings may share one
// storage cell; only the Owned one is dropped with its frame, aliases just
// stop referring to it.
type Binding struct {
	cell        *Value
	Owner       Ownership
	OriginFrame int    // frame index owning the storage (Aliased only)
	OriginName  string // binding name in OriginFrame (Aliased only)
}

func newOwned(v Value) *Binding {
	cell := v
	return &Binding{cell: &cell, Owner: Owned}
}

// Value returns a copy of the current contents.
func (b *Binding) Value() Value {
	return *b.cell
}

// Store overwrites the shared storage in place. This is the only way a
// bound value changes, so every alias of the cell observes the write.
func (b *Binding) Store(v Value) {
	*b.cell = v
}

// Frame represents one lexical scope: a block body or a function call.
type Frame struct {
	Vars map[string]*Binding // bindings declared in this scope
}

func newFrame() *Frame {
	return &Frame{Vars: make(map[string]*Binding)}
}
