// interpreter.go — the Push execution state machine.
//
// OVERVIEW
// ========
// Execution is one loop over the exec stack, which at every instant holds
// exactly "what remains of the program". Each step pops the top item:
//
//   - a literal atom is pushed onto its typed stack (subject to the silent
//     capacity drop),
//   - a list is unpacked back onto the exec stack in reverse order, so its
//     first element runs next,
//   - an instruction atom dispatches through the InstructionSet.
//
// There is no special-casing for control flow: CODE.QUOTE, CODE.IF,
// CODE.DO and the whole EXEC catalog are ordinary instructions that happen
// to rewrite the exec stack, and that uniformity is the whole language.
//
// FAILURE POLICY
// --------------
// Programs are produced by mutation and recombination, so they are
// routinely malformed locally. An instruction missing operands (or finding
// the wrong kinds) does nothing; nothing inside a run can abort the run.
// The only halts are an empty exec stack (success) and the configured
// limits (step budget, exec-stack growth).
//
// A PushState is owned by one run at a time. The InstructionSet is shared
// read-only across any number of parallel runs.
package pustgp

// HaltReason is the terminal state of a run.
type HaltReason int

const (
	// Running is the non-terminal state; Run never returns it.
	Running HaltReason = iota
	// HaltSuccess: the exec stack drained.
	HaltSuccess
	// HaltStepLimit: the step budget was exhausted or the exec stack
	// outgrew its configured cap.
	HaltStepLimit
)

func (h HaltReason) String() string {
	switch h {
	case Running:
		return "Running"
	case HaltSuccess:
		return "Success"
	case HaltStepLimit:
		return "StepLimitExceeded"
	default:
		return "Unknown"
	}
}

// Interpreter drives execution of parsed programs against a PushState.
// It holds no per-run state itself, so one interpreter may serve many
// sequential runs (and many interpreters may share one InstructionSet).
type Interpreter struct {
	Set    *InstructionSet
	Config Config
}

// NewInterpreter creates an interpreter over a loaded instruction set.
func NewInterpreter(set *InstructionSet, cfg Config) *Interpreter {
	return &Interpreter{Set: set, Config: cfg}
}

// RunProgram pushes a parsed program onto the state's exec stack and runs
// to a halt.
func (ip *Interpreter) RunProgram(program Atom, st *PushState) HaltReason {
	st.ExecStack.Push(program)
	return ip.Run(st)
}

// Run repeats Step until the exec stack drains or a configured limit trips.
func (ip *Interpreter) Run(st *PushState) HaltReason {
	execCap := ip.Config.Limit(KindExec)
	for steps := 0; ; steps++ {
		if st.ExecStack.Depth() == 0 {
			return HaltSuccess
		}
		if ip.Config.MaxSteps > 0 && steps >= ip.Config.MaxSteps {
			return HaltStepLimit
		}
		if execCap > 0 && st.ExecStack.Depth() > execCap {
			return HaltStepLimit
		}
		ip.Step(st)
	}
}

// Step pops the top of the exec stack and acts on it. On an empty exec
// stack it does nothing.
func (ip *Interpreter) Step(st *PushState) {
	item, ok := st.ExecStack.Pop()
	if !ok {
		return
	}
	ip.execute(item, st)
}

func (ip *Interpreter) execute(item Atom, st *PushState) {
	switch item.Tag {
	case ATBool:
		st.BoolStack.Push(item.Data.(bool))
	case ATInt:
		st.IntStack.Push(item.Data.(int64))
	case ATFloat:
		st.FloatStack.Push(item.Data.(float64))
	case ATBoolVector:
		st.BoolVectorStack.Push(item.Data.(BoolVector))
	case ATIntVector:
		st.IntVectorStack.Push(item.Data.(IntVector))
	case ATFloatVector:
		st.FloatVectorStack.Push(item.Data.(FloatVector))
	case ATName:
		name := item.Data.(string)
		if st.QuoteName {
			st.QuoteName = false
			st.NameStack.Push(name)
			return
		}
		// A bound name executes its definition; an unbound one is data.
		if def, ok := st.Binding(name); ok {
			st.ExecStack.Push(def)
			return
		}
		st.NameStack.Push(name)
	case ATList:
		items := item.Data.([]Atom)
		for i := len(items) - 1; i >= 0; i-- {
			st.ExecStack.Push(items[i])
		}
	case ATInstruction:
		if in, ok := ip.Set.Lookup(item.Data.(string)); ok {
			in.Execute(st, ip.Set)
		}
	}
}
