// builtin_name.go — the NAME.* catalog.
//
// Names are the language's binding mechanism: *.DEFINE instructions attach
// a definition to the top name, and a bound name later encountered by the
// step loop executes its definition. NAME.QUOTE suppresses that for the
// next name so bound names can still be manipulated as data.
package pustgp

const randomNameLength = 5

func registerNameInstructions(s *InstructionSet) {
	registerStackOps(s, "NAME",
		func(st *PushState) *Stack[string] { return st.NameStack },
		func(a, b string) bool { return a == b })

	// NAME.QUOTE: the next name the step loop encounters goes onto the
	// name stack even if it is bound.
	s.Add("NAME.QUOTE", func(st *PushState, _ *InstructionSet) {
		st.QuoteName = true
	})
	// NAME.RAND: pushes a freshly generated name.
	s.Add("NAME.RAND", func(st *PushState, _ *InstructionSet) {
		b := make([]byte, randomNameLength)
		for i := range b {
			b[i] = byte('A' + st.Rand.Intn(26))
		}
		st.NameStack.Push(string(b))
	})
	s.Add("NAME.ID", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(NameStackID)
	})
}
