package pustgp

import "testing"

func intStackOf(vals ...int64) *Stack[int64] {
	s := NewStack[int64](0)
	for _, v := range vals {
		s.Push(v)
	}
	return s
}

func wantStackString(t *testing.T, s *Stack[int64], want string) {
	t.Helper()
	if got := s.String(); got != want {
		t.Fatalf("stack = %q, want %q", got, want)
	}
}

func Test_Stack_PushPop(t *testing.T) {
	s := intStackOf(1, 2, 3)
	wantStackString(t, s, "1:3; 2:2; 3:1;")

	v, ok := s.Pop()
	if !ok || v != 3 {
		t.Fatalf("Pop = %d, %v", v, ok)
	}
	if _, ok := s.Peek(); !ok {
		t.Fatalf("Peek failed on non-empty stack")
	}
	s.Pop()
	s.Pop()
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop succeeded on empty stack")
	}
}

func Test_Stack_PopN_StackOrder(t *testing.T) {
	s := intStackOf(1, 2, 3)
	xs, ok := s.PopN(2)
	if !ok {
		t.Fatalf("PopN failed")
	}
	// Stack order: former top last.
	if xs[0] != 2 || xs[1] != 3 {
		t.Fatalf("PopN = %v, want [2 3]", xs)
	}
	wantStackString(t, s, "1:1;")
}

func Test_Stack_PopN_Underflow_IsAtomic(t *testing.T) {
	s := intStackOf(1, 2)
	if _, ok := s.PopN(3); ok {
		t.Fatalf("PopN(3) succeeded with two elements")
	}
	// Nothing was consumed.
	wantStackString(t, s, "1:2; 2:1;")
}

func Test_Stack_CopyN_DoesNotConsume(t *testing.T) {
	s := intStackOf(1, 2, 3)
	xs, ok := s.CopyN(2)
	if !ok || xs[0] != 2 || xs[1] != 3 {
		t.Fatalf("CopyN = %v, %v", xs, ok)
	}
	wantStackString(t, s, "1:3; 2:2; 3:1;")
}

func Test_Stack_Copy_ClampsIndex(t *testing.T) {
	s := intStackOf(1, 2, 3)
	if v, _ := s.Copy(0); v != 3 {
		t.Fatalf("Copy(0) = %d", v)
	}
	if v, _ := s.Copy(99); v != 1 {
		t.Fatalf("Copy(99) = %d, want bottom element", v)
	}
	if v, _ := s.Copy(-7); v != 3 {
		t.Fatalf("Copy(-7) = %d, want top element", v)
	}
	if _, ok := NewStack[int64](0).Copy(0); ok {
		t.Fatalf("Copy succeeded on empty stack")
	}
}

func Test_Stack_Yank(t *testing.T) {
	s := intStackOf(1, 2, 3, 4)
	// Depth 2 from the top is the value 2.
	s.Yank(2)
	wantStackString(t, s, "1:2; 2:4; 3:3; 4:1;")
}

func Test_Stack_Shove(t *testing.T) {
	s := intStackOf(1, 2, 3, 4)
	// Top (4) inserted two below its old position.
	s.Shove(2)
	wantStackString(t, s, "1:3; 2:2; 3:4; 4:1;")
}

func Test_Stack_Shove_ClampsToBottom(t *testing.T) {
	s := intStackOf(1, 2, 3)
	s.Shove(99)
	wantStackString(t, s, "1:2; 2:1; 3:3;")
}

func Test_Stack_Replace(t *testing.T) {
	s := intStackOf(1, 2, 3)
	if !s.Replace(1, 9) {
		t.Fatalf("Replace failed")
	}
	wantStackString(t, s, "1:3; 2:9; 3:1;")
	if NewStack[int64](0).Replace(0, 1) {
		t.Fatalf("Replace succeeded on empty stack")
	}
}

func Test_Stack_Cap_SilentDrop(t *testing.T) {
	s := NewStack[int64](2)
	s.Push(1)
	s.Push(2)
	s.Push(3) // dropped
	wantStackString(t, s, "1:2; 2:1;")
	if s.Depth() != 2 {
		t.Fatalf("Depth = %d", s.Depth())
	}
}

func Test_Stack_SetMax_OnlyAffectsFuturePushes(t *testing.T) {
	s := intStackOf(1, 2, 3)
	s.SetMax(2)
	if s.Depth() != 3 {
		t.Fatalf("existing elements dropped by SetMax")
	}
	s.Push(4) // over the new cap
	if s.Depth() != 3 {
		t.Fatalf("push over cap not dropped")
	}
}

func Test_Stack_Flush(t *testing.T) {
	s := intStackOf(1, 2, 3)
	s.Flush()
	if s.Depth() != 0 {
		t.Fatalf("Depth after Flush = %d", s.Depth())
	}
	wantStackString(t, s, "")
}
