// builtin_integer.go — the INTEGER.* catalog.
package pustgp

// Range of INTEGER.RAND results, inclusive.
const (
	minRandomInteger = -100
	maxRandomInteger = 100
)

func registerIntegerInstructions(s *InstructionSet) {
	registerStackOps(s, "INTEGER",
		func(st *PushState) *Stack[int64] { return st.IntStack },
		func(a, b int64) bool { return a == b })

	intBinop := func(name string, op func(a, b int64) int64) {
		s.Add(name, func(st *PushState, _ *InstructionSet) {
			if xs, ok := st.IntStack.PopN(2); ok {
				st.IntStack.Push(op(xs[0], xs[1]))
			}
		})
	}
	intCompare := func(name string, op func(a, b int64) bool) {
		s.Add(name, func(st *PushState, _ *InstructionSet) {
			if xs, ok := st.IntStack.PopN(2); ok {
				st.BoolStack.Push(op(xs[0], xs[1]))
			}
		})
	}

	intBinop("INTEGER.+", func(a, b int64) int64 { return a + b })
	intBinop("INTEGER.-", func(a, b int64) int64 { return a - b })
	intBinop("INTEGER.*", func(a, b int64) int64 { return a * b })
	intBinop("INTEGER.MIN", func(a, b int64) int64 {
		if a < b {
			return a
		}
		return b
	})
	intBinop("INTEGER.MAX", func(a, b int64) int64 {
		if a > b {
			return a
		}
		return b
	})

	// Division and modulus by zero are type mismatches in spirit: the step
	// degrades to a no-op, operands untouched.
	s.Add("INTEGER./", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.IntStack.CopyN(2); ok && xs[1] != 0 {
			st.IntStack.PopN(2)
			st.IntStack.Push(xs[0] / xs[1])
		}
	})
	s.Add("INTEGER.%", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.IntStack.CopyN(2); ok && xs[1] != 0 {
			st.IntStack.PopN(2)
			st.IntStack.Push(xs[0] % xs[1])
		}
	})

	intCompare("INTEGER.<", func(a, b int64) bool { return a < b })
	intCompare("INTEGER.>", func(a, b int64) bool { return a > b })

	// INTEGER.FROMBOOLEAN: TRUE -> 1, FALSE -> 0.
	s.Add("INTEGER.FROMBOOLEAN", func(st *PushState, _ *InstructionSet) {
		if b, ok := st.BoolStack.Pop(); ok {
			if b {
				st.IntStack.Push(1)
			} else {
				st.IntStack.Push(0)
			}
		}
	})
	// INTEGER.FROMFLOAT: truncation toward zero.
	s.Add("INTEGER.FROMFLOAT", func(st *PushState, _ *InstructionSet) {
		if f, ok := st.FloatStack.Pop(); ok {
			st.IntStack.Push(int64(f))
		}
	})
	// INTEGER.RAND: uniform in [minRandomInteger, maxRandomInteger].
	s.Add("INTEGER.RAND", func(st *PushState, _ *InstructionSet) {
		n := st.Rand.Int63n(maxRandomInteger-minRandomInteger+1) + minRandomInteger
		st.IntStack.Push(n)
	})
	// INTEGER.DEFINE: binds the top NAME to the top integer.
	s.Add("INTEGER.DEFINE", func(st *PushState, _ *InstructionSet) {
		defineTop(st, func(st *PushState) *Stack[int64] { return st.IntStack }, IntAtom)
	})
	s.Add("INTEGER.ID", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(IntStackID)
	})
}
