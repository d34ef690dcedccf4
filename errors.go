// errors.go — caret-snippet rendering for parse errors.
//
// Turns a *ParseError into a readable multi-line message with a caret under
// the offending column:
//
//	PARSE ERROR at 2:9: unexpected ')'
//
//	   1 | ( 1 2 INTEGER.+
//	   2 |     ) )
//	     |         ^
//
// Only parse-time malformation is ever surfaced this way; execution-time
// conditions (empty stacks, type mismatches) are absorbed by the graceful
// no-op policy and never become errors.
package pustgp

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns err augmented with a caret-annotated snippet
// of src when err is a *ParseError; any other error is returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	pe, ok := err.(*ParseError)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", snippet(src, pe.Line, pe.Col+1, pe.Msg))
}

// snippet builds the annotated message. Line/col are 1-based here and are
// clamped to the source bounds so rendering never faults.
func snippet(src string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PARSE ERROR at %d:%d: %s\n\n", line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
