// builtin_vector.go — vector stacks and the LIST.* assembly instructions.
//
// Vectors are flat sequences of one scalar kind with their own stacks.
// Programs build them with the *VECTOR.PACK instructions and consume them
// via LIST.*, which assembles heterogeneous list items from the stacks
// named by the top INTVECTOR of stack ids (pushed by the *.ID
// instructions).
package pustgp

import "math"

// Stack ids used by the LIST instructions to name a source stack. These
// are observable program values (via the *.ID instructions), so the
// numbering is part of the language surface: BOOLEAN is 1 and INTEGER is 9.
const (
	BoolStackID = iota + 1
	BoolVectorStackID
	CodeStackID
	ExecStackID
	FloatStackID
	FloatVectorStackID
	IntVectorStackID
	NameStackID
	IntStackID
)

func boolSliceEqual(a, b BoolVector) bool   { return AtomEqual(BoolVectorAtom(a), BoolVectorAtom(b)) }
func intSliceEqual(a, b IntVector) bool     { return AtomEqual(IntVectorAtom(a), IntVectorAtom(b)) }
func floatSliceEqual(a, b FloatVector) bool { return AtomEqual(FloatVectorAtom(a), FloatVectorAtom(b)) }

func registerVectorInstructions(s *InstructionSet) {
	registerStackOps(s, "BOOLVECTOR",
		func(st *PushState) *Stack[BoolVector] { return st.BoolVectorStack }, boolSliceEqual)
	registerStackOps(s, "INTVECTOR",
		func(st *PushState) *Stack[IntVector] { return st.IntVectorStack }, intSliceEqual)
	registerStackOps(s, "FLOATVECTOR",
		func(st *PushState) *Stack[FloatVector] { return st.FloatVectorStack }, floatSliceEqual)

	// *VECTOR.PACK: pops a count from the INTEGER stack, then that many
	// scalars, and pushes them as one vector (in the order they sat on
	// the stack, bottom of the popped window first).
	s.Add("BOOLVECTOR.PACK", func(st *PushState, _ *InstructionSet) {
		if n, ok := st.IntStack.Pop(); ok {
			if xs, ok := st.BoolStack.PopN(int(n)); ok {
				st.BoolVectorStack.Push(BoolVector{Values: xs})
			} else {
				st.IntStack.Push(n)
			}
		}
	})
	s.Add("INTVECTOR.PACK", func(st *PushState, _ *InstructionSet) {
		if n, ok := st.IntStack.Pop(); ok {
			if xs, ok := st.IntStack.PopN(int(n)); ok {
				st.IntVectorStack.Push(IntVector{Values: xs})
			} else {
				st.IntStack.Push(n)
			}
		}
	})
	s.Add("FLOATVECTOR.PACK", func(st *PushState, _ *InstructionSet) {
		if n, ok := st.IntStack.Pop(); ok {
			if xs, ok := st.FloatStack.PopN(int(n)); ok {
				st.FloatVectorStack.Push(FloatVector{Values: xs})
			} else {
				st.IntStack.Push(n)
			}
		}
	})

	// *VECTOR.UNPACK: spills a vector's elements back onto its scalar
	// stack, first element deepest.
	s.Add("BOOLVECTOR.UNPACK", func(st *PushState, _ *InstructionSet) {
		if v, ok := st.BoolVectorStack.Pop(); ok {
			for _, x := range v.Values {
				st.BoolStack.Push(x)
			}
		}
	})
	s.Add("INTVECTOR.UNPACK", func(st *PushState, _ *InstructionSet) {
		if v, ok := st.IntVectorStack.Pop(); ok {
			for _, x := range v.Values {
				st.IntStack.Push(x)
			}
		}
	})
	s.Add("FLOATVECTOR.UNPACK", func(st *PushState, _ *InstructionSet) {
		if v, ok := st.FloatVectorStack.Pop(); ok {
			for _, x := range v.Values {
				st.FloatStack.Push(x)
			}
		}
	})

	// *VECTOR.LENGTH: length of the top vector onto the INTEGER stack,
	// vector left in place.
	s.Add("BOOLVECTOR.LENGTH", func(st *PushState, _ *InstructionSet) {
		if v, ok := st.BoolVectorStack.Peek(); ok {
			st.IntStack.Push(int64(len(v.Values)))
		}
	})
	s.Add("INTVECTOR.LENGTH", func(st *PushState, _ *InstructionSet) {
		if v, ok := st.IntVectorStack.Peek(); ok {
			st.IntStack.Push(int64(len(v.Values)))
		}
	})
	s.Add("FLOATVECTOR.LENGTH", func(st *PushState, _ *InstructionSet) {
		if v, ok := st.FloatVectorStack.Peek(); ok {
			st.IntStack.Push(int64(len(v.Values)))
		}
	})

	s.Add("BOOLVECTOR.ID", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(BoolVectorStackID)
	})
	s.Add("INTVECTOR.ID", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(IntVectorStackID)
	})
	s.Add("FLOATVECTOR.ID", func(st *PushState, _ *InstructionSet) {
		st.IntStack.Push(FloatVectorStackID)
	})

	registerListInstructions(s)
}

// generateList assembles list items from the stacks named by the top
// INTVECTOR: each entry is a stack id whose top is popped and wrapped as an
// atom. Unknown ids and empty source stacks contribute nothing.
func generateList(st *PushState) ([]Atom, bool) {
	ids, ok := st.IntVectorStack.Pop()
	if !ok {
		return nil, false
	}
	items := []Atom{}
	for _, id := range ids.Values {
		switch id {
		case BoolStackID:
			if b, ok := st.BoolStack.Pop(); ok {
				items = append(items, BoolAtom(b))
			}
		case BoolVectorStackID:
			if v, ok := st.BoolVectorStack.Pop(); ok {
				items = append(items, BoolVectorAtom(v))
			}
		case CodeStackID:
			if c, ok := st.CodeStack.Pop(); ok {
				items = append(items, c)
			}
		case ExecStackID:
			if e, ok := st.ExecStack.Pop(); ok {
				items = append(items, e)
			}
		case FloatStackID:
			if f, ok := st.FloatStack.Pop(); ok {
				items = append(items, FloatAtom(f))
			}
		case FloatVectorStackID:
			if v, ok := st.FloatVectorStack.Pop(); ok {
				items = append(items, FloatVectorAtom(v))
			}
		case IntStackID:
			if n, ok := st.IntStack.Pop(); ok {
				items = append(items, IntAtom(n))
			}
		case IntVectorStackID:
			if v, ok := st.IntVectorStack.Pop(); ok {
				items = append(items, IntVectorAtom(v))
			}
		case NameStackID:
			if n, ok := st.NameStack.Pop(); ok {
				items = append(items, NameAtom(n))
			}
		}
	}
	return items, true
}

func registerListInstructions(s *InstructionSet) {
	// LIST.ADD: pushes a list assembled per the top INTVECTOR onto the
	// code stack.
	s.Add("LIST.ADD", func(st *PushState, _ *InstructionSet) {
		if items, ok := generateList(st); ok {
			st.CodeStack.Push(ListAtom(items))
		}
	})
	// LIST.GET: copies the code-stack item at the index from the INTEGER
	// stack (min-max corrected, 0 = top) onto the exec stack.
	s.Add("LIST.GET", func(st *PushState, _ *InstructionSet) {
		if idx, ok := st.IntStack.Pop(); ok {
			if item, ok := st.CodeStack.Copy(int(idx)); ok {
				st.ExecStack.Push(item)
			}
		}
	})
	// LIST.SET: replaces the code-stack item at the index from the
	// INTEGER stack with a freshly assembled list.
	s.Add("LIST.SET", func(st *PushState, _ *InstructionSet) {
		if idx, ok := st.IntStack.Pop(); ok {
			if items, ok := generateList(st); ok {
				st.CodeStack.Replace(int(idx), ListAtom(items))
			}
		}
	})
	// LIST.NEIGHBORS: treats indices 0..size-1 as cells of a hypercube and
	// pushes, in ascending order, every index within Euclidean distance
	// radius of the given index. Size, index and dimension count come from
	// the INTEGER stack (top first), the radius from the FLOAT stack; all
	// operands are min-max corrected. When size is not a power of the
	// dimension count the smallest enclosing hypercube is used and indices
	// beyond size are ignored.
	s.Add("LIST.NEIGHBORS", func(st *PushState, _ *InstructionSet) {
		if st.IntStack.Depth() < 3 || st.FloatStack.Depth() < 1 {
			return
		}
		xs, _ := st.IntStack.PopN(3)
		fval, _ := st.FloatStack.Pop()

		size := xs[2]
		if size < 0 {
			size = 0
		}
		index := xs[1]
		if index > size-1 {
			index = size - 1
		}
		if index < 0 {
			index = 0
		}
		dims := xs[0]
		if dims > size {
			dims = size
		}
		if dims < 1 || size < 1 {
			return
		}
		radius := math.Max(fval, 0)

		side := hypercubeSide(size, dims)
		center := gridCoords(index, side, dims)
		for i := int64(0); i < size; i++ {
			if gridDistance(gridCoords(i, side, dims), center) <= radius {
				st.IntStack.Push(i)
			}
		}
	})
}

// hypercubeSide returns the smallest side length whose dims-dimensional
// hypercube holds at least size cells (e.g. size 38 in two dimensions
// needs a 7x7 grid).
func hypercubeSide(size, dims int64) int64 {
	for side := int64(1); side < size; side++ {
		v := int64(1)
		holds := false
		for d := int64(0); d < dims; d++ {
			v *= side
			if v >= size {
				holds = true
				break
			}
		}
		if holds {
			return side
		}
	}
	return size
}

// gridCoords decomposes a cell index into hypercube coordinates,
// least-significant axis first.
func gridCoords(index, side, dims int64) []int64 {
	coords := make([]int64, dims)
	for d := int64(0); d < dims; d++ {
		coords[d] = index % side
		index /= side
	}
	return coords
}

func gridDistance(a, b []int64) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
