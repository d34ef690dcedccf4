// parser.go — builds one program List from tokens.
//
// Recursive descent over the token stream: "(" opens a nested list, ")"
// closes it, and every other token resolves to an atom using a fixed
// precedence that is part of the language contract:
//
//	1. integer literal        (optional sign)
//	2. float literal          (decimal point and/or exponent)
//	3. boolean literal        (TRUE / FALSE, exact case)
//	4. instruction reference  (name present in the InstructionSet)
//	5. name literal           (everything else)
//
// A token that looks numeric is never an instruction or a name, and a token
// matching an instruction name is never an opaque name literal. Resolution
// is a pure function of (tokens, set): instructions added to the set after
// parsing do not retroactively affect an already-parsed program.
//
// Only unbalanced parentheses are fatal; every other token parses.
package pustgp

import (
	"fmt"
	"strconv"
)

// ParseError reports unbalanced parentheses in program text. Line is
// 1-based, Col 0-based (rendered 1-based by WrapErrorWithSource).
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// Parse tokenizes src and parses it into a single program list. If the
// top-level tokens are not already one parenthesized list, they are wrapped
// in an implicit outer list.
func Parse(src string, set *InstructionSet) (Atom, error) {
	return ParseTokens(Tokenize(src), set)
}

// ParseTokens parses a pre-scanned token sequence. See Parse.
func ParseTokens(tokens []Token, set *InstructionSet) (Atom, error) {
	p := &parser{tokens: tokens, set: set}
	items, err := p.sequence()
	if err != nil {
		return Atom{}, err
	}
	if len(items) == 1 && items[0].Tag == ATList {
		return items[0], nil
	}
	return ListAtom(items), nil
}

type parser struct {
	tokens []Token
	cur    int
	set    *InstructionSet
}

// sequence parses top-level atoms until the tokens run out. A stray ")"
// here has no open list to close and is fatal.
func (p *parser) sequence() ([]Atom, error) {
	items := []Atom{}
	for p.cur < len(p.tokens) {
		tok := p.tokens[p.cur]
		switch tok.Text {
		case "(":
			p.cur++
			sub, err := p.list(tok)
			if err != nil {
				return nil, err
			}
			items = append(items, sub)
		case ")":
			return nil, &ParseError{Line: tok.Line, Col: tok.Col, Msg: "unexpected ')'"}
		default:
			p.cur++
			items = append(items, p.resolve(tok))
		}
	}
	return items, nil
}

// list parses the body of a nested list up to its closing ")". Running out
// of tokens first means the "(" at open was never balanced.
func (p *parser) list(open Token) (Atom, error) {
	items := []Atom{}
	for p.cur < len(p.tokens) {
		tok := p.tokens[p.cur]
		switch tok.Text {
		case "(":
			p.cur++
			sub, err := p.list(tok)
			if err != nil {
				return Atom{}, err
			}
			items = append(items, sub)
		case ")":
			p.cur++
			return ListAtom(items), nil
		default:
			p.cur++
			items = append(items, p.resolve(tok))
		}
	}
	return Atom{}, &ParseError{Line: open.Line, Col: open.Col, Msg: "unclosed '('"}
}

// resolve classifies one plain token per the precedence contract above.
// It cannot fail: the final fallback is a name literal.
func (p *parser) resolve(tok Token) Atom {
	if n, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
		return IntAtom(n)
	}
	if f, err := strconv.ParseFloat(tok.Text, 64); err == nil {
		return FloatAtom(f)
	}
	switch tok.Text {
	case "TRUE":
		return BoolAtom(true)
	case "FALSE":
		return BoolAtom(false)
	}
	if p.set != nil && p.set.Has(tok.Text) {
		return InstructionAtom(tok.Text)
	}
	return NameAtom(tok.Text)
}
