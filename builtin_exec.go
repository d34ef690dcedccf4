// builtin_exec.go — the EXEC.* catalog.
//
// The exec stack maintains the live execution state of the interpreter, so
// these instructions rewrite the actual remaining program rather than code
// that might later run. EXEC.Y/S/K are the classic combinators; the DO*
// family iterates by macro-expanding into EXEC.DO*RANGE.
package pustgp

func execStack(st *PushState) *Stack[Atom] { return st.ExecStack }

func registerExecInstructions(s *InstructionSet) {
	registerStackOps(s, "EXEC", execStack, nil)

	// EXEC.=: compares the top two pending items without disturbing them.
	s.Add("EXEC.=", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.ExecStack.CopyN(2); ok {
			st.BoolStack.Push(AtomEqual(xs[0], xs[1]))
		}
	})
	// EXEC.DEFINE: binds the top NAME to the next pending item, which is
	// removed from the program.
	s.Add("EXEC.DEFINE", func(st *PushState, _ *InstructionSet) {
		defineTop(st, execStack, func(a Atom) Atom { return a })
	})
	// EXEC.IF: TRUE keeps the next pending item and discards the second;
	// FALSE keeps the second. No-op unless two exec items and a boolean
	// are present.
	s.Add("EXEC.IF", func(st *PushState, _ *InstructionSet) {
		if st.ExecStack.Depth() < 2 || st.BoolStack.Depth() < 1 {
			return
		}
		xs, _ := st.ExecStack.PopN(2)
		b, _ := st.BoolStack.Pop()
		if b {
			st.ExecStack.Push(xs[1])
		} else {
			st.ExecStack.Push(xs[0])
		}
	})
	// EXEC.K: the K combinator — discards the second pending item.
	s.Add("EXEC.K", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.ExecStack.PopN(2); ok {
			st.ExecStack.Push(xs[1])
		}
	})
	// EXEC.S: the S combinator — pops A, B, C and pushes ( B C ), then C,
	// then A.
	s.Add("EXEC.S", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.ExecStack.PopN(3); ok {
			a, b, c := xs[2], xs[1], xs[0]
			st.ExecStack.Push(ListAtom([]Atom{b, c}))
			st.ExecStack.Push(c)
			st.ExecStack.Push(a)
		}
	})
	// EXEC.Y: the Y combinator — re-inserts ( EXEC.Y <top> ) beneath the
	// top item, so the top item runs now and recurses afterwards.
	s.Add("EXEC.Y", func(st *PushState, _ *InstructionSet) {
		if top, ok := st.ExecStack.Pop(); ok {
			st.ExecStack.Push(ListAtom([]Atom{InstructionAtom("EXEC.Y"), top}))
			st.ExecStack.Push(top)
		}
	})

	// Iteration. DO*RANGE runs its body once per counter value, pushing
	// the counter onto the INTEGER stack before each iteration; the range
	// is inclusive of both endpoints and may count downwards.
	s.Add("EXEC.DO*RANGE", func(st *PushState, _ *InstructionSet) {
		if st.ExecStack.Depth() < 1 || st.IntStack.Depth() < 2 {
			return
		}
		body, _ := st.ExecStack.Pop()
		idx, _ := st.IntStack.PopN(2)
		current, destination := idx[0], idx[1]
		st.IntStack.Push(current)
		if current == destination {
			st.ExecStack.Push(body)
			return
		}
		next := current + 1
		if current > destination {
			next = current - 1
		}
		st.ExecStack.Push(ListAtom([]Atom{
			IntAtom(next),
			IntAtom(destination),
			InstructionAtom("EXEC.DO*RANGE"),
			body,
		}))
		st.ExecStack.Push(body)
	})
	// EXEC.DO*COUNT: runs the next pending item n times with the counter
	// 0..n-1 on the INTEGER stack; expands into EXEC.DO*RANGE. A count
	// below one consumes its arguments and does nothing further.
	s.Add("EXEC.DO*COUNT", func(st *PushState, _ *InstructionSet) {
		if st.ExecStack.Depth() < 1 || st.IntStack.Depth() < 1 {
			return
		}
		n, _ := st.IntStack.Pop()
		body, _ := st.ExecStack.Pop()
		if n < 1 {
			return
		}
		st.ExecStack.Push(ListAtom([]Atom{
			IntAtom(0),
			IntAtom(n - 1),
			InstructionAtom("EXEC.DO*RANGE"),
			body,
		}))
	})
	// EXEC.DO*TIMES: like DO*COUNT but the loop body never sees the
	// counter; an INTEGER.POP is spliced ahead of the body.
	s.Add("EXEC.DO*TIMES", func(st *PushState, _ *InstructionSet) {
		if st.ExecStack.Depth() < 1 || st.IntStack.Depth() < 1 {
			return
		}
		n, _ := st.IntStack.Pop()
		body, _ := st.ExecStack.Pop()
		if n < 1 {
			return
		}
		wrapped := ListAtom([]Atom{InstructionAtom("INTEGER.POP"), body})
		st.ExecStack.Push(ListAtom([]Atom{
			IntAtom(0),
			IntAtom(n - 1),
			InstructionAtom("EXEC.DO*RANGE"),
			wrapped,
		}))
	})
	s.Add("EXEC.ID", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(ExecStackID)
	})
}
