// builtin_code.go — the CODE.* catalog.
//
// The code stack holds unevaluated program fragments. CODE.QUOTE moves the
// next piece of pending program onto it untouched, CODE.DO moves a fragment
// back onto the exec stack for evaluation, and CODE.IF selects between two
// quoted fragments — together they are the language's conditional and its
// bridge between data and execution. Everything here is an ordinary
// instruction; the step loop knows nothing about control flow.
package pustgp

func codeStack(st *PushState) *Stack[Atom] { return st.CodeStack }

// asList coerces an atom to its list form: lists yield their items, any
// other atom becomes a single-element list.
func asList(a Atom) []Atom {
	if items, ok := a.List(); ok {
		return items
	}
	return []Atom{a}
}

func registerCodeInstructions(s *InstructionSet) {
	registerStackOps(s, "CODE", codeStack, AtomEqual)

	// CODE.QUOTE: moves the top of the exec stack — the next thing that
	// would have been executed — onto the code stack unevaluated.
	s.Add("CODE.QUOTE", func(st *PushState, _ *InstructionSet) {
		if item, ok := st.ExecStack.Pop(); ok {
			st.CodeStack.Push(item)
		}
	})
	// CODE.DO: evaluates the top code fragment by pushing it onto the exec
	// stack. This is how quoted code becomes executable again.
	s.Add("CODE.DO", func(st *PushState, _ *InstructionSet) {
		if item, ok := st.CodeStack.Pop(); ok {
			st.ExecStack.Push(item)
		}
	})
	// CODE.IF: pops a boolean and two code fragments; TRUE selects the
	// second (the one quoted first), FALSE the top one. No-op unless all
	// three operands are present.
	s.Add("CODE.IF", func(st *PushState, _ *InstructionSet) {
		if st.CodeStack.Depth() < 2 || st.BoolStack.Depth() < 1 {
			return
		}
		xs, _ := st.CodeStack.PopN(2)
		b, _ := st.BoolStack.Pop()
		if b {
			st.ExecStack.Push(xs[0])
		} else {
			st.ExecStack.Push(xs[1])
		}
	})

	// CODE.APPEND: concatenates the top two fragments (each coerced to a
	// list), second's items first.
	s.Add("CODE.APPEND", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.CodeStack.PopN(2); ok {
			second, top := asList(xs[0]), asList(xs[1])
			out := make([]Atom, 0, len(second)+len(top))
			out = append(out, second...)
			out = append(out, top...)
			st.CodeStack.Push(ListAtom(out))
		}
	})
	// CODE.ATOM: TRUE when the popped fragment is a single atom.
	s.Add("CODE.ATOM", func(st *PushState, _ *InstructionSet) {
		if item, ok := st.CodeStack.Pop(); ok {
			st.BoolStack.Push(item.Tag != ATList)
		}
	})
	// CODE.CAR: the first element of the top fragment. A non-list or an
	// empty list is left unchanged.
	s.Add("CODE.CAR", func(st *PushState, _ *InstructionSet) {
		if item, ok := st.CodeStack.Peek(); ok {
			if items, isList := item.List(); isList && len(items) > 0 {
				st.CodeStack.Pop()
				st.CodeStack.Push(items[0])
			}
		}
	})
	// CODE.CDR: everything but the first element. A non-list becomes the
	// empty list.
	s.Add("CODE.CDR", func(st *PushState, _ *InstructionSet) {
		if item, ok := st.CodeStack.Pop(); ok {
			items, isList := item.List()
			if !isList || len(items) == 0 {
				st.CodeStack.Push(ListAtom([]Atom{}))
				return
			}
			rest := make([]Atom, len(items)-1)
			copy(rest, items[1:])
			st.CodeStack.Push(ListAtom(rest))
		}
	})
	// CODE.CONS: the second fragment consed onto the top one (top coerced
	// to a list).
	s.Add("CODE.CONS", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.CodeStack.PopN(2); ok {
			tail := asList(xs[1])
			out := make([]Atom, 0, len(tail)+1)
			out = append(out, xs[0])
			out = append(out, tail...)
			st.CodeStack.Push(ListAtom(out))
		}
	})
	// CODE.DEFINE: binds the top NAME to the top code fragment.
	s.Add("CODE.DEFINE", func(st *PushState, _ *InstructionSet) {
		defineTop(st, codeStack, func(a Atom) Atom { return a })
	})
	// CODE.LENGTH: length of the top fragment coerced to a list.
	s.Add("CODE.LENGTH", func(st *PushState, _ *InstructionSet) {
		if item, ok := st.CodeStack.Pop(); ok {
			st.IntStack.Push(int64(len(asList(item))))
		}
	})
	// CODE.LIST: a two-element list of the top two fragments, second first.
	s.Add("CODE.LIST", func(st *PushState, _ *InstructionSet) {
		if xs, ok := st.CodeStack.PopN(2); ok {
			st.CodeStack.Push(ListAtom([]Atom{xs[0], xs[1]}))
		}
	})
	// CODE.NOOP: does nothing, deliberately.
	s.Add("CODE.NOOP", func(*PushState, *InstructionSet) {})
	// CODE.NTH: the n-th element of the top fragment, index taken from the
	// INTEGER stack and wrapped into range. An empty list stays empty.
	s.Add("CODE.NTH", func(st *PushState, _ *InstructionSet) {
		if st.CodeStack.Depth() < 1 || st.IntStack.Depth() < 1 {
			return
		}
		n, _ := st.IntStack.Pop()
		item, _ := st.CodeStack.Pop()
		items := asList(item)
		if len(items) == 0 {
			st.CodeStack.Push(ListAtom([]Atom{}))
			return
		}
		// Reduce before taking the magnitude: negating after the modulo
		// cannot overflow, even for the smallest integer.
		i := n % int64(len(items))
		if i < 0 {
			i = -i
		}
		st.CodeStack.Push(items[i])
	})

	// Iteration: the loop body comes from the code stack, counters from
	// the INTEGER stack. DO*COUNT and DO*TIMES are macros that expand into
	// DO*RANGE, exactly as the EXEC variants do.
	s.Add("CODE.DO*RANGE", func(st *PushState, _ *InstructionSet) {
		if st.CodeStack.Depth() < 1 || st.IntStack.Depth() < 2 {
			return
		}
		body, _ := st.CodeStack.Pop()
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
			InstructionAtom("CODE.QUOTE"),
			body,
			InstructionAtom("CODE.DO*RANGE"),
		}))
		st.ExecStack.Push(body)
	})
	s.Add("CODE.DO*COUNT", func(st *PushState, _ *InstructionSet) {
		if st.CodeStack.Depth() < 1 || st.IntStack.Depth() < 1 {
			return
		}
		n, _ := st.IntStack.Pop()
		body, _ := st.CodeStack.Pop()
		if n < 1 {
			return
		}
		st.ExecStack.Push(ListAtom([]Atom{
			IntAtom(0),
			IntAtom(n - 1),
			InstructionAtom("CODE.QUOTE"),
			body,
			InstructionAtom("CODE.DO*RANGE"),
		}))
	})
	s.Add("CODE.DO*TIMES", func(st *PushState, _ *InstructionSet) {
		if st.CodeStack.Depth() < 1 || st.IntStack.Depth() < 1 {
			return
		}
		n, _ := st.IntStack.Pop()
		body, _ := st.CodeStack.Pop()
		if n < 1 {
			return
		}
		// INTEGER.POP ahead of the body discards the loop counter that
		// DO*RANGE pushes before each iteration.
		wrapped := ListAtom([]Atom{InstructionAtom("INTEGER.POP"), body})
		st.ExecStack.Push(ListAtom([]Atom{
			IntAtom(0),
			IntAtom(n - 1),
			InstructionAtom("CODE.QUOTE"),
			wrapped,
			InstructionAtom("CODE.DO*RANGE"),
		}))
	})
	s.Add("CODE.ID", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(CodeStackID)
	})
}
