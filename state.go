// state.go — the aggregate execution state of one Push run.
package pustgp

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// PushState owns one typed stack per supported kind plus the exec stack and
// the name-bindings table. A state is exclusively owned by the one logical
// run using it; many runs proceed in parallel by giving each its own state
// while sharing one read-only InstructionSet.
type PushState struct {
	BoolStack        *Stack[bool]
	IntStack         *Stack[int64]
	FloatStack       *Stack[float64]
	NameStack        *Stack[string]
	CodeStack        *Stack[Atom]
	ExecStack        *Stack[Atom]
	BoolVectorStack  *Stack[BoolVector]
	IntVectorStack   *Stack[IntVector]
	FloatVectorStack *Stack[FloatVector]

	// NameBindings maps a name to the item it was defined as (via the
	// *.DEFINE instructions). A bound name encountered by the step loop
	// executes its definition unless the quote flag is set.
	NameBindings map[string]Atom

	// QuoteName makes the next name literal land on the name stack even if
	// it is bound. Set by NAME.QUOTE, cleared when consumed.
	QuoteName bool

	// Rand feeds the *.RAND instructions. Per-state, so parallel runs stay
	// independent and a fixed Config.Seed reproduces a run exactly.
	Rand *rand.Rand
}

// NewPushState constructs a fresh state with the capacity caps from cfg.
func NewPushState(cfg Config) *PushState {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PushState{
		BoolStack:        NewStack[bool](cfg.Limit(KindBoolean)),
		IntStack:         NewStack[int64](cfg.Limit(KindInteger)),
		FloatStack:       NewStack[float64](cfg.Limit(KindFloat)),
		NameStack:        NewStack[string](cfg.Limit(KindName)),
		CodeStack:        NewStack[Atom](cfg.Limit(KindCode)),
		// The exec stack is never drop-capped: silently losing pending
		// program would corrupt a run. Its configured limit is enforced by
		// the run loop as a HaltStepLimit condition instead.
		ExecStack: NewStack[Atom](0),
		BoolVectorStack:  NewStack[BoolVector](cfg.Limit(KindBoolVector)),
		IntVectorStack:   NewStack[IntVector](cfg.Limit(KindIntVector)),
		FloatVectorStack: NewStack[FloatVector](cfg.Limit(KindFloatVector)),
		NameBindings:     map[string]Atom{},
		Rand:             rand.New(rand.NewSource(seed)),
	}
}

// Bind records name as defined to item, overwriting any prior definition.
func (st *PushState) Bind(name string, item Atom) {
	st.NameBindings[name] = item
}

// Binding returns the definition bound to name, if any.
func (st *PushState) Binding(name string) (Atom, bool) {
	a, ok := st.NameBindings[name]
	return a, ok
}

// Flush empties every stack. Name bindings survive; use Reset to drop them.
func (st *PushState) Flush() {
	st.BoolStack.Flush()
	st.IntStack.Flush()
	st.FloatStack.Flush()
	st.NameStack.Flush()
	st.CodeStack.Flush()
	st.ExecStack.Flush()
	st.BoolVectorStack.Flush()
	st.IntVectorStack.Flush()
	st.FloatVectorStack.Flush()
}

// Reset returns the state to its freshly constructed condition so it can be
// reused across runs without reallocating.
func (st *PushState) Reset() {
	st.Flush()
	st.NameBindings = map[string]Atom{}
	st.QuoteName = false
}

// Dump renders every non-empty stack (and the bindings) one per line,
// top-first, for the REPL and for debugging test failures.
func (st *PushState) Dump() string {
	var b strings.Builder
	write := func(kind, body string) {
		if body != "" {
			fmt.Fprintf(&b, "%s: %s\n", kind, body)
		}
	}
	write(KindExec, st.ExecStack.String())
	write(KindCode, st.CodeStack.String())
	write(KindBoolean, st.BoolStack.String())
	write(KindInteger, st.IntStack.String())
	write(KindFloat, st.FloatStack.String())
	write(KindName, st.NameStack.String())
	write(KindBoolVector, st.BoolVectorStack.String())
	write(KindIntVector, st.IntVectorStack.String())
	write(KindFloatVector, st.FloatVectorStack.String())
	if len(st.NameBindings) > 0 {
		names := make([]string, 0, len(st.NameBindings))
		for n := range st.NameBindings {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(&b, "%s = %s\n", n, st.NameBindings[n])
		}
	}
	return b.String()
}
