// lexer.go — splits Push program text into raw tokens.
//
// The token grammar is deliberately tiny: whitespace separates tokens, and
// "(" / ")" are always tokens of their own even when glued to neighboring
// characters. The lexer does no semantic interpretation and no balance
// checking; both belong to the parser.
package pustgp

// Token is a raw lexeme with its source position (for parse-error carets).
type Token struct {
	Text string
	Line int // 1-based
	Col  int // 0-based column of the first character
}

// Lexer scans a Push source string into tokens.
type Lexer struct {
	src  string
	cur  int
	line int
	col  int
}

// NewLexer creates a lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Scan returns all tokens in order. Scanning cannot fail: every character
// either is whitespace, a parenthesis, or part of a plain token.
func (l *Lexer) Scan() []Token {
	var tokens []Token
	for l.cur < len(l.src) {
		ch := l.src[l.cur]
		switch ch {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '(', ')':
			tokens = append(tokens, Token{Text: string(ch), Line: l.line, Col: l.col})
			l.advance()
		default:
			start, line, col := l.cur, l.line, l.col
			for l.cur < len(l.src) && !boundary(l.src[l.cur]) {
				l.advance()
			}
			tokens = append(tokens, Token{Text: l.src[start:l.cur], Line: line, Col: col})
		}
	}
	return tokens
}

func (l *Lexer) advance() {
	if l.src[l.cur] == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	l.cur++
}

func boundary(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '(', ')':
		return true
	}
	return false
}

// Tokenize is the convenience form used by the parser and tests.
func Tokenize(src string) []Token {
	return NewLexer(src).Scan()
}
