// builtin_boolean.go — the BOOLEAN.* catalog.
package pustgp

func registerBooleanInstructions(s *InstructionSet) {
	registerStackOps(s, "BOOLEAN",
		func(st *PushState) *Stack[bool] { return st.BoolStack },
		func(a, b bool) bool { return a == b })

	// BOOLEAN.AND: conjunction of the top two items.
	s.Add("BOOLEAN.AND", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.BoolStack.PopN(2); ok {
			st.BoolStack.Push(xs[0] && xs[1])
		}
	})
	// BOOLEAN.OR: disjunction of the top two items.
	s.Add("BOOLEAN.OR", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.BoolStack.PopN(2); ok {
			st.BoolStack.Push(xs[0] || xs[1])
		}
	})
	// BOOLEAN.NOT: negation of the top item.
	s.Add("BOOLEAN.NOT", func(st *PushState, _ *InstructionSet) {
		if b, ok := st.BoolStack.Pop(); ok {
			st.BoolStack.Push(!b)
		}
	})
	// BOOLEAN.FROMINTEGER: TRUE for any nonzero integer.
	s.Add("BOOLEAN.FROMINTEGER", func(st *PushState, _ *InstructionSet) {
		if n, ok := st.IntStack.Pop(); ok {
			st.BoolStack.Push(n != 0)
		}
	})
	// BOOLEAN.FROMFLOAT: TRUE for any nonzero float.
	s.Add("BOOLEAN.FROMFLOAT", func(st *PushState, _ *InstructionSet) {
		if f, ok := st.FloatStack.Pop(); ok {
			st.BoolStack.Push(f != 0)
		}
	})
	// BOOLEAN.RAND: a fair coin flip from the state's random source.
	s.Add("BOOLEAN.RAND", func(st *PushState, _ *InstructionSet) {
		st.BoolStack.Push(st.Rand.Intn(2) == 1)
	})
	// BOOLEAN.DEFINE: binds the top NAME to the top boolean.
	s.Add("BOOLEAN.DEFINE", func(st *PushState, _ *InstructionSet) {
		defineTop(st, func(st *PushState) *Stack[bool] { return st.BoolStack }, BoolAtom)
	})
	// BOOLEAN.ID: pushes this stack's id onto the INTEGER stack (consumed
	// by the LIST instructions).
	s.Add("BOOLEAN.ID", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(BoolStackID)
	})
}
