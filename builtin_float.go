// builtin_float.go — the FLOAT.* catalog.
package pustgp

import "math"

func registerFloatInstructions(s *InstructionSet) {
	registerStackOps(s, "FLOAT",
		func(st *PushState) *Stack[float64] { return st.FloatStack },
		func(a, b float64) bool { return a == b })

	floatBinop := func(name string, op func(a, b float64) float64) {
		s.Add(name, func(st *PushState, _ *InstructionSet) {
			if xs, ok := st.FloatStack.PopN(2); ok {
				st.FloatStack.Push(op(xs[0], xs[1]))
			}
		})
	}
	floatCompare := func(name string, op func(a, b float64) bool) {
		s.Add(name, func(st *PushState, _ *InstructionSet) {
			if xs, ok := st.FloatStack.PopN(2); ok {
				st.BoolStack.Push(op(xs[0], xs[1]))
			}
		})
	}
	floatUnop := func(name string, op func(f float64) float64) {
		s.Add(name, func(st *PushState, _ *InstructionSet) {
			if f, ok := st.FloatStack.Pop(); ok {
				st.FloatStack.Push(op(f))
			}
		})
	}

	floatBinop("FLOAT.+", func(a, b float64) float64 { return a + b })
	floatBinop("FLOAT.-", func(a, b float64) float64 { return a - b })
	floatBinop("FLOAT.*", func(a, b float64) float64 { return a * b })
	floatBinop("FLOAT.MIN", math.Min)
	floatBinop("FLOAT.MAX", math.Max)

	s.Add("FLOAT./", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.FloatStack.CopyN(2); ok && xs[1] != 0 {
			st.FloatStack.PopN(2)
			st.FloatStack.Push(xs[0] / xs[1])
		}
	})
	s.Add("FLOAT.%", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.FloatStack.CopyN(2); ok && xs[1] != 0 {
			st.FloatStack.PopN(2)
			st.FloatStack.Push(math.Mod(xs[0], xs[1]))
		}
	})

	floatCompare("FLOAT.<", func(a, b float64) bool { return a < b })
	floatCompare("FLOAT.>", func(a, b float64) bool { return a > b })

	floatUnop("FLOAT.SIN", math.Sin)
	floatUnop("FLOAT.COS", math.Cos)
	floatUnop("FLOAT.TAN", math.Tan)

	// FLOAT.FROMBOOLEAN: TRUE -> 1.0, FALSE -> 0.0.
	s.Add("FLOAT.FROMBOOLEAN", func(st *PushState, _ *InstructionSet) {
		if b, ok := st.BoolStack.Pop(); ok {
			if b {
				st.FloatStack.Push(1)
			} else {
				st.FloatStack.Push(0)
			}
		}
	})
	// FLOAT.FROMINTEGER: exact widening conversion.
	s.Add("FLOAT.FROMINTEGER", func(st *PushState, _ *InstructionSet) {
		if n, ok := st.IntStack.Pop(); ok {
			st.FloatStack.Push(float64(n))
		}
	})
	// FLOAT.RAND: uniform in [0, 1).
	s.Add("FLOAT.RAND", func(st *PushState, _ *InstructionSet) {
		st.FloatStack.Push(st.Rand.Float64())
	})
	// FLOAT.DEFINE: binds the top NAME to the top float.
	s.Add("FLOAT.DEFINE", func(st *PushState, _ *InstructionSet) {
		defineTop(st, func(st *PushState) *Stack[float64] { return st.FloatStack }, FloatAtom)
	})
	s.Add("FLOAT.ID", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(FloatStackID)
	})
}
