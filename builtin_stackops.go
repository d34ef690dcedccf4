// builtin_stackops.go — the stack manipulators every kind shares.
//
// DUP, POP, SWAP, ROT, FLUSH, SHOVE, YANK, YANKDUP, STACKDEPTH and "="
// behave identically on every stack kind, so they are registered once per
// kind through one generic helper. Indices for SHOVE/YANK/YANKDUP come
// from the INTEGER stack; STACKDEPTH reports onto the INTEGER stack.
package pustgp

type stackSelector[T any] func(*PushState) *Stack[T]

// registerStackOps installs the common manipulators for one stack kind
// under prefix (e.g. "BOOLEAN"). eq may be nil to skip "PREFIX.=".
func registerStackOps[T any](s *InstructionSet, prefix string, sel stackSelector[T], eq func(a, b T) bool) {
	s.Add(prefix+".DUP", func(st *PushState, _ *InstructionSet) {
		if v, ok := sel(st).Peek(); ok {
			sel(st).Push(v)
		}
	})
	s.Add(prefix+".POP", func(st *PushState, _ *InstructionSet) {
		sel(st).Pop()
	})
	s.Add(prefix+".SWAP", func(st *PushState, _ *InstructionSet) {
		if xs, ok := sel(st).PopN(2); ok {
			sel(st).Push(xs[1])
			sel(st).Push(xs[0])
		}
	})
	s.Add(prefix+".ROT", func(st *PushState, _ *InstructionSet) {
		if sel(st).Depth() >= 3 {
			sel(st).Yank(2)
		}
	})
	s.Add(prefix+".FLUSH", func(st *PushState, _ *InstructionSet) {
		sel(st).Flush()
	})
	s.Add(prefix+".SHOVE", func(st *PushState, _ *InstructionSet) {
		if idx, ok := st.IntStack.Pop(); ok {
			sel(st).Shove(int(idx))
		}
	})
	s.Add(prefix+".YANK", func(st *PushState, _ *InstructionSet) {
		if idx, ok := st.IntStack.Pop(); ok {
			sel(st).Yank(int(idx))
		}
	})
	s.Add(prefix+".YANKDUP", func(st *PushState, _ *InstructionSet) {
		if idx, ok := st.IntStack.Pop(); ok {
			if v, ok := sel(st).Copy(int(idx)); ok {
				sel(st).Push(v)
			}
		}
	})
	s.Add(prefix+".STACKDEPTH", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(int64(sel(st).Depth()))
	})
	if eq != nil {
		s.Add(prefix+".=", func(st *PushState, _ *InstructionSet) {
			if xs, ok := sel(st).PopN(2); ok {
				st.BoolStack.Push(eq(xs[0], xs[1]))
			}
		})
	}
}

// defineTop binds the name on top of the NAME stack to an item produced by
// popping the prefix's own stack. Shared by the *.DEFINE instructions.
func defineTop[T any](st *PushState, sel stackSelector[T], wrap func(T) Atom) {
	name, ok := st.NameStack.Pop()
	if !ok {
		return
	}
	v, ok := sel(st).Pop()
	if !ok {
		// Restore the name: the step was a no-op.
		st.NameStack.Push(name)
		return
	}
	st.Bind(name, wrap(v))
}
