package pustgp

import (
	"testing"
)

// --- shared helpers ---------------------------------------------------------

func loadedSet(t *testing.T) *InstructionSet {
	t.Helper()
	set := NewInstructionSet()
	set.Load()
	return set
}

func mustParse(t *testing.T, set *InstructionSet, src string) Atom {
	t.Helper()
	program, err := Parse(src, set)
	if err != nil {
		t.Fatalf("parse error for %q: %v", src, err)
	}
	return program
}

// runSrc parses src and runs it on a fresh state, failing the test unless
// the run halts with want.
func runSrc(t *testing.T, src string, cfg Config, want HaltReason) *PushState {
	t.Helper()
	set := loadedSet(t)
	st := NewPushState(cfg)
	got := NewInterpreter(set, cfg).RunProgram(mustParse(t, set, src), st)
	if got != want {
		t.Fatalf("program %q: halt reason %v, want %v\nstate:\n%s", src, got, want, st.Dump())
	}
	return st
}

func wantIntStack(t *testing.T, st *PushState, want string) {
	t.Helper()
	if got := st.IntStack.String(); got != want {
		t.Fatalf("integer stack = %q, want %q", got, want)
	}
}

func wantIntTop(t *testing.T, st *PushState, n int64) {
	t.Helper()
	got, ok := st.IntStack.Peek()
	if !ok {
		t.Fatalf("integer stack empty, want top %d\nstate:\n%s", n, st.Dump())
	}
	if got != n {
		t.Fatalf("integer top = %d, want %d\nstate:\n%s", got, n, st.Dump())
	}
}

func wantFloatTop(t *testing.T, st *PushState, f float64) {
	t.Helper()
	got, ok := st.FloatStack.Peek()
	if !ok {
		t.Fatalf("float stack empty, want top %g\nstate:\n%s", f, st.Dump())
	}
	if got != f {
		t.Fatalf("float top = %g, want %g\nstate:\n%s", got, f, st.Dump())
	}
}

func wantBoolTop(t *testing.T, st *PushState, b bool) {
	t.Helper()
	got, ok := st.BoolStack.Peek()
	if !ok {
		t.Fatalf("boolean stack empty, want top %v\nstate:\n%s", b, st.Dump())
	}
	if got != b {
		t.Fatalf("boolean top = %v, want %v\nstate:\n%s", got, b, st.Dump())
	}
}

func emptyState() *PushState { return NewPushState(DefaultConfig()) }

// --- step semantics ---------------------------------------------------------

func Test_Run_EmptyNestedList_IsNoop(t *testing.T) {
	st := runSrc(t, "( ( ) )", DefaultConfig(), HaltSuccess)
	if st.ExecStack.Depth() != 0 {
		t.Fatalf("exec stack not drained: %s", st.ExecStack)
	}
	if st.Dump() != "" {
		t.Fatalf("state not empty after empty program:\n%s", st.Dump())
	}
}

func Test_Run_Literals_LandOnTypedStacks(t *testing.T) {
	st := runSrc(t, "( 2 3 TRUE 4.5 )", DefaultConfig(), HaltSuccess)
	wantIntStack(t, st, "1:3; 2:2;")
	wantBoolTop(t, st, true)
	wantFloatTop(t, st, 4.5)
}

func Test_Run_ListUnpacking_PreservesProgramOrder(t *testing.T) {
	st := runSrc(t, "( 2 ( 3 INTEGER.* ) 4 INTEGER.+ )", DefaultConfig(), HaltSuccess)
	wantIntStack(t, st, "1:10;")
}

func Test_Run_MissingOperands_GracefulSkip(t *testing.T) {
	// INTEGER.+ against a fresh state does nothing and the run still
	// terminates successfully.
	st := runSrc(t, "INTEGER.+", DefaultConfig(), HaltSuccess)
	if st.IntStack.Depth() != 0 {
		t.Fatalf("integer stack not empty: %s", st.IntStack)
	}
}

func Test_Run_UnknownInstructionAtom_IsSkipped(t *testing.T) {
	set := loadedSet(t)
	st := emptyState()
	// An instruction atom whose name is not registered dispatches to
	// nothing; execution continues with the rest of the program.
	program := ListAtom([]Atom{InstructionAtom("INTEGER.VANISHED"), IntAtom(7)})
	if got := NewInterpreter(set, DefaultConfig()).RunProgram(program, st); got != HaltSuccess {
		t.Fatalf("halt reason %v", got)
	}
	wantIntTop(t, st, 7)
}

func Test_Run_StepLimit_HaltsSelfRequotingProgram(t *testing.T) {
	cfg := Config{MaxSteps: 500}
	// CODE.DUP keeps a copy quoted and CODE.DO re-executes it; only the
	// step budget stops the loop.
	runSrc(t, "( CODE.QUOTE ( CODE.DUP CODE.DO ) CODE.DUP CODE.DO )", cfg, HaltStepLimit)
}

func Test_Run_ExecGrowthCap_Halts(t *testing.T) {
	cfg := Config{MaxSteps: 10000, Stacks: map[string]int{KindExec: 16}}
	// EXEC.Y re-inserts its recursion while EXEC.DUP doubles the pending
	// copy, so the exec stack grows by one item per cycle. With a cap of 16
	// the growth trips long before the step budget would.
	runSrc(t, "( EXEC.Y EXEC.DUP )", cfg, HaltStepLimit)
}

func Test_Run_StackCap_SilentlyDropsOverflow(t *testing.T) {
	cfg := Config{Stacks: map[string]int{KindInteger: 3}}
	st := runSrc(t, "( 1 2 3 4 5 )", cfg, HaltSuccess)
	// The run continues past the cap; the stack holds exactly cap items
	// and the dropped pushes left no trace.
	wantIntStack(t, st, "1:3; 2:2; 3:1;")
}

func Test_Run_BoundName_ExecutesDefinition(t *testing.T) {
	st := runSrc(t, "( FIVE 5 INTEGER.DEFINE FIVE FIVE INTEGER.+ )", DefaultConfig(), HaltSuccess)
	wantIntTop(t, st, 10)
}

func Test_Run_UnboundName_IsData(t *testing.T) {
	st := runSrc(t, "( PLAIN )", DefaultConfig(), HaltSuccess)
	if got, ok := st.NameStack.Peek(); !ok || got != "PLAIN" {
		t.Fatalf("name stack = %q", st.NameStack.String())
	}
}

func Test_Run_NameQuote_SuppressesDefinition(t *testing.T) {
	st := runSrc(t, "( X 3 INTEGER.DEFINE NAME.QUOTE X )", DefaultConfig(), HaltSuccess)
	if st.IntStack.Depth() != 0 {
		t.Fatalf("definition executed despite NAME.QUOTE: %s", st.IntStack)
	}
	if got, ok := st.NameStack.Peek(); !ok || got != "X" {
		t.Fatalf("name stack = %q", st.NameStack.String())
	}
	if _, ok := st.Binding("X"); !ok {
		t.Fatalf("binding for X missing")
	}
}

func Test_Run_PreseededState_IsVisibleToProgram(t *testing.T) {
	set := loadedSet(t)
	st := emptyState()
	st.IntStack.Push(40)
	st.IntStack.Push(2)
	if got := NewInterpreter(set, DefaultConfig()).RunProgram(mustParse(t, set, "( INTEGER.+ )"), st); got != HaltSuccess {
		t.Fatalf("halt reason %v", got)
	}
	wantIntTop(t, st, 42)
}

func Test_Run_SharedSet_IndependentStates(t *testing.T) {
	set := loadedSet(t)
	cfg := DefaultConfig()
	program := mustParse(t, set, "( 1 2 INTEGER.+ )")
	// One parsed program, many runs: states must not interfere.
	for i := 0; i < 4; i++ {
		st := NewPushState(cfg)
		if got := NewInterpreter(set, cfg).RunProgram(program, st); got != HaltSuccess {
			t.Fatalf("run %d: halt reason %v", i, got)
		}
		wantIntStack(t, st, "1:3;")
	}
}

func Test_Run_StateReset_AllowsReuse(t *testing.T) {
	set := loadedSet(t)
	cfg := DefaultConfig()
	ip := NewInterpreter(set, cfg)
	st := NewPushState(cfg)

	ip.RunProgram(mustParse(t, set, "( N 9 INTEGER.DEFINE 1 TRUE )"), st)
	st.Reset()
	if st.Dump() != "" {
		t.Fatalf("state survived reset:\n%s", st.Dump())
	}
	if _, ok := st.Binding("N"); ok {
		t.Fatalf("binding survived reset")
	}

	ip.RunProgram(mustParse(t, set, "( 6 7 INTEGER.* )"), st)
	wantIntTop(t, st, 42)
}

func Test_Step_EmptyExecStack_IsNoop(t *testing.T) {
	set := loadedSet(t)
	st := emptyState()
	NewInterpreter(set, DefaultConfig()).Step(st)
	if st.Dump() != "" {
		t.Fatalf("step on empty exec stack changed state:\n%s", st.Dump())
	}
}

func Test_HaltReason_String(t *testing.T) {
	if got := HaltSuccess.String(); got != "Success" {
		t.Fatalf("HaltSuccess = %q", got)
	}
	if got := HaltStepLimit.String(); got != "StepLimitExceeded" {
		t.Fatalf("HaltStepLimit = %q", got)
	}
}
