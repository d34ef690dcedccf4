// printer.go — turns parsed programs back into program text.
//
// FormatAtom emits text the parser reads back to an equal atom: parsing
// the formatted form of any program built from literals and balanced
// parentheses yields the original list. Floats always carry a decimal point
// or exponent so the literal-precedence rule re-reads them as floats, not
// integers.
package pustgp

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAtom renders one atom as program text.
func FormatAtom(a Atom) string {
	switch a.Tag {
	case ATBool:
		if a.Data.(bool) {
			return "TRUE"
		}
		return "FALSE"
	case ATInt:
		return strconv.FormatInt(a.Data.(int64), 10)
	case ATFloat:
		return formatFloatToken(a.Data.(float64))
	case ATName, ATInstruction:
		return a.Data.(string)
	case ATList:
		items, _ := a.List()
		if len(items) == 0 {
			return "( )"
		}
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = FormatAtom(item)
		}
		return "( " + strings.Join(parts, " ") + " )"
	case ATBoolVector:
		return fmt.Sprintf("%v", a.Data.(BoolVector).Values)
	case ATIntVector:
		return fmt.Sprintf("%v", a.Data.(IntVector).Values)
	case ATFloatVector:
		return fmt.Sprintf("%v", a.Data.(FloatVector).Values)
	default:
		return "<unknown>"
	}
}

// FormatProgram renders a whole program. Identical to FormatAtom; the name
// exists for call sites that hold the parse result.
func FormatProgram(program Atom) string { return FormatAtom(program) }

func formatFloatToken(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	switch s {
	case "+Inf", "-Inf", "Inf", "NaN":
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
