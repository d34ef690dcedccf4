// registry.go — the instruction set shared by parser and interpreter.
//
// The parser consults it to decide whether a token is an instruction
// reference; the interpreter consults it to dispatch instruction atoms.
// After Load and any Add calls have completed it is read-only, so one set
// can back any number of concurrent runs without locking.
package pustgp

import "sort"

// InstructionFunc is the executable behavior of one instruction. It may
// read and write any stack of the state, including the exec stack; that
// uniform access is what makes the control-flow instructions ordinary
// catalog entries. Behaviors enforce their own operand requirements and
// degrade to a no-op when operands are missing or ill-typed.
type InstructionFunc func(*PushState, *InstructionSet)

// Instruction pairs a name with its behavior.
type Instruction struct {
	Name    string
	Execute InstructionFunc
}

// InstructionSet maps instruction names to behaviors. Names are unique;
// re-adding a name overwrites the prior entry (redefinition, not rejection).
type InstructionSet struct {
	m      map[string]*Instruction
	loaded bool
}

// NewInstructionSet returns an empty set. Call Load for the built-in
// catalog, then Add for any caller extensions, before parsing.
func NewInstructionSet() *InstructionSet {
	return &InstructionSet{m: map[string]*Instruction{}}
}

// Load populates the full built-in catalog. It runs at most once per set;
// repeated calls are no-ops.
func (s *InstructionSet) Load() {
	if s.loaded {
		return
	}
	s.loaded = true

	s.Add("NOOP", func(*PushState, *InstructionSet) {})
	registerBooleanInstructions(s)
	registerIntegerInstructions(s)
	registerFloatInstructions(s)
	registerNameInstructions(s)
	registerCodeInstructions(s)
	registerExecInstructions(s)
	registerVectorInstructions(s)
}

// Add inserts or overwrites the entry for name.
func (s *InstructionSet) Add(name string, fn InstructionFunc) {
	s.m[name] = &Instruction{Name: name, Execute: fn}
}

// Lookup returns the instruction bound to name, if any.
func (s *InstructionSet) Lookup(name string) (*Instruction, bool) {
	in, ok := s.m[name]
	return in, ok
}

// Has reports whether name is a registered instruction. The parser uses
// this to resolve tokens; resolution happens at parse time, so entries
// added afterwards never retroactively change a parsed program.
func (s *InstructionSet) Has(name string) bool {
	_, ok := s.m[name]
	return ok
}

// Names returns all registered instruction names, sorted.
func (s *InstructionSet) Names() []string {
	out := make([]string, 0, len(s.m))
	for n := range s.m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len reports the catalog size.
func (s *InstructionSet) Len() int { return len(s.m) }
