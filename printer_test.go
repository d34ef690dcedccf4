package pustgp

import "testing"

func Test_FormatAtom(t *testing.T) {
	cases := []struct {
		atom Atom
		want string
	}{
		{BoolAtom(true), "TRUE"},
		{BoolAtom(false), "FALSE"},
		{IntAtom(-12), "-12"},
		{FloatAtom(4.1), "4.1"},
		{FloatAtom(3), "3.0"}, // floats always re-read as floats
		{FloatAtom(1e21), "1e+21"},
		{NameAtom("X"), "X"},
		{InstructionAtom("INTEGER.+"), "INTEGER.+"},
		{ListAtom(nil), "( )"},
		{ListAtom([]Atom{IntAtom(1), ListAtom([]Atom{NameAtom("Y")})}), "( 1 ( Y ) )"},
	}
	for _, c := range cases {
		if got := FormatAtom(c.atom); got != c.want {
			t.Errorf("FormatAtom(%s) = %q, want %q", c.atom, got, c.want)
		}
	}
}

func Test_FormatProgram_RoundTrip(t *testing.T) {
	set := loadedSet(t)
	sources := []string{
		"( )",
		"( 1 2 INTEGER.+ )",
		"( 2.0 TRUE SOMENAME ( CODE.QUOTE ( INTEGER.DUP ) ) )",
		"( CODE.QUOTE ( INTEGER.POP 1 ) CODE.QUOTE ( CODE.DUP INTEGER.DUP 1 INTEGER.- CODE.DO INTEGER.* ) INTEGER.DUP 2 INTEGER.< CODE.IF )",
	}
	for _, src := range sources {
		program := mustParse(t, set, src)
		reparsed := mustParse(t, set, FormatProgram(program))
		if !AtomEqual(program, reparsed) {
			t.Errorf("round trip diverged for %q:\n first: %s\nsecond: %s", src, program, reparsed)
		}
	}
}
