// types.go — the Push value model.
//
// Push is homoiconic: a program and the data it manipulates share one
// representation, the Atom. An Atom is a tagged sum over
//
//	Literal(bool | int | float | name | vector)  — pushes itself onto its stack
//	InstructionMeta(name)                        — dispatched via the InstructionSet
//	List(items)                                  — unevaluated code
//
// Atoms are immutable once constructed. Lists own their children and are
// built only by the parser or by instructions assembling fresh slices, so
// the structure is always a tree (no cycles, no sharing surprises).
package pustgp

import (
	"fmt"
	"strconv"
	"strings"
)

// AtomTag enumerates the runtime kinds an Atom may hold.
// The tag determines which field of Atom.Data is valid.
type AtomTag int

const (
	ATBool        AtomTag = iota // bool
	ATInt                        // int64
	ATFloat                      // float64
	ATName                       // string (opaque identifier literal)
	ATBoolVector                 // BoolVector
	ATIntVector                  // IntVector
	ATFloatVector                // FloatVector
	ATList                       // []Atom (unevaluated code)
	ATInstruction                // string (instruction name, resolved at parse time)
)

// Atom is the universal carrier for both code and data.
//
// Invariants:
//   - Tag is fixed at construction; Data matches the tag (see AtomTag).
//   - ATList atoms own their element slice; callers must not mutate it.
type Atom struct {
	Tag  AtomTag
	Data interface{}
}

// BoolVector / IntVector / FloatVector are the vector literal payloads.
// They are plain wrappers so the vector stacks stay strongly typed.
type BoolVector struct{ Values []bool }
type IntVector struct{ Values []int64 }
type FloatVector struct{ Values []float64 }

// Constructors. They do not copy scalar payloads; list/vector constructors
// take ownership of the slice passed in.
func BoolAtom(b bool) Atom          { return Atom{Tag: ATBool, Data: b} }
func IntAtom(n int64) Atom          { return Atom{Tag: ATInt, Data: n} }
func FloatAtom(f float64) Atom      { return Atom{Tag: ATFloat, Data: f} }
func NameAtom(s string) Atom        { return Atom{Tag: ATName, Data: s} }
func ListAtom(items []Atom) Atom    { return Atom{Tag: ATList, Data: items} }
func InstructionAtom(s string) Atom { return Atom{Tag: ATInstruction, Data: s} }

func BoolVectorAtom(v BoolVector) Atom   { return Atom{Tag: ATBoolVector, Data: v} }
func IntVectorAtom(v IntVector) Atom     { return Atom{Tag: ATIntVector, Data: v} }
func FloatVectorAtom(v FloatVector) Atom { return Atom{Tag: ATFloatVector, Data: v} }

// NoopAtom is the canonical do-nothing instruction, handy in tests and in
// macro expansions.
func NoopAtom() Atom { return InstructionAtom("NOOP") }

// List returns the element slice of a list atom, or (nil, false) when the
// atom is not a list.
func (a Atom) List() ([]Atom, bool) {
	if a.Tag != ATList {
		return nil, false
	}
	return a.Data.([]Atom), true
}

// String renders the debug representation used by stack dumps and tests.
// Lists render their items in order, top-of-list first.
func (a Atom) String() string {
	switch a.Tag {
	case ATBool:
		return fmt.Sprintf("Literal(%v)", a.Data.(bool))
	case ATInt:
		return fmt.Sprintf("Literal(%d)", a.Data.(int64))
	case ATFloat:
		return fmt.Sprintf("Literal(%vf)", strconv.FormatFloat(a.Data.(float64), 'g', -1, 64))
	case ATName:
		return fmt.Sprintf("Identifier(%s)", a.Data.(string))
	case ATBoolVector:
		return fmt.Sprintf("BoolVector(%v)", a.Data.(BoolVector).Values)
	case ATIntVector:
		return fmt.Sprintf("IntVector(%v)", a.Data.(IntVector).Values)
	case ATFloatVector:
		return fmt.Sprintf("FloatVector(%v)", a.Data.(FloatVector).Values)
	case ATInstruction:
		return fmt.Sprintf("InstructionMeta(%s)", a.Data.(string))
	case ATList:
		var b strings.Builder
		b.WriteString("List: ")
		for i, item := range a.Data.([]Atom) {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d:%s;", i+1, item.String())
		}
		b.WriteString(";")
		return b.String()
	default:
		return "<unknown>"
	}
}

// AtomEqual is deep structural equality over the whole Atom space.
// Used by the *.= instructions and by tests.
func AtomEqual(a, b Atom) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case ATBool:
		return a.Data.(bool) == b.Data.(bool)
	case ATInt:
		return a.Data.(int64) == b.Data.(int64)
	case ATFloat:
		return a.Data.(float64) == b.Data.(float64)
	case ATName, ATInstruction:
		return a.Data.(string) == b.Data.(string)
	case ATBoolVector:
		av, bv := a.Data.(BoolVector).Values, b.Data.(BoolVector).Values
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case ATIntVector:
		av, bv := a.Data.(IntVector).Values, b.Data.(IntVector).Values
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case ATFloatVector:
		av, bv := a.Data.(FloatVector).Values, b.Data.(FloatVector).Values
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case ATList:
		ax, bx := a.Data.([]Atom), b.Data.([]Atom)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !AtomEqual(ax[i], bx[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
