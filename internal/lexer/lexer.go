// Package lexer turns Tiger source text into a token.Token stream,
// supplementing the "external collaborator" boundary spec.md leaves
// unspecified (SPEC_FULL.md §A). Grounded on the teacher's
// internal/lexer package shape (a cursor plus a handful of scanN
// files driven by one dispatching Next), cut down to the much smaller
// Tiger token set.
package lexer

import (
	"tiger/internal/diag"
	"tiger/internal/source"
	"tiger/internal/symbol"
	"tiger/internal/token"
)

// Lexer scans one source file's bytes into tokens on demand.
type Lexer struct {
	cur      cursor
	symbols  *symbol.Table
	reporter diag.Reporter
	look     *token.Token
}

func New(src []byte, symbols *symbol.Table, reporter diag.Reporter) *Lexer {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Lexer{cur: newCursor(src), symbols: symbols, reporter: reporter}
}

// Next returns the next token, skipping whitespace and comments.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}
	lx.skipTrivia()
	if lx.cur.eof() {
		return token.Token{Kind: token.EOF, Loc: lx.cur.loc()}
	}

	ch := lx.cur.peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) skipTrivia() {
	for {
		switch {
		case lx.cur.peek() == ' ' || lx.cur.peek() == '\t' || lx.cur.peek() == '\r' || lx.cur.peek() == '\n':
			lx.cur.bump()
		case lx.cur.peek() == '/' && lx.cur.peekAt(1) == '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

// skipBlockComment consumes a /* ... */ comment, honoring nesting the
// way the original Tiger grammar does.
func (lx *Lexer) skipBlockComment() {
	start := lx.cur.loc()
	lx.cur.bump()
	lx.cur.bump()
	depth := 1
	for depth > 0 {
		if lx.cur.eof() {
			lx.errLex(diag.LexUnknownChar, start, "unterminated block comment")
			return
		}
		switch {
		case lx.cur.peek() == '/' && lx.cur.peekAt(1) == '*':
			lx.cur.bump()
			lx.cur.bump()
			depth++
		case lx.cur.peek() == '*' && lx.cur.peekAt(1) == '/':
			lx.cur.bump()
			lx.cur.bump()
			depth--
		default:
			lx.cur.bump()
		}
	}
}

func (lx *Lexer) errLex(code diag.Code, at source.Location, msg string) {
	lx.reporter.Report(diag.NewError(code, at, msg))
}
