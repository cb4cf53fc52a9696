package lexer

import (
	"tiger/internal/diag"
	"tiger/internal/token"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// scanNumber reads the decimal-integer literals the Tiger grammar
// supports (no floats, no sign — unary minus is a prefix operator).
func (lx *Lexer) scanNumber() token.Token {
	loc := lx.cur.loc()
	start := lx.cur.off
	for isDigit(lx.cur.peek()) {
		lx.cur.bump()
	}
	text := string(lx.cur.src[start:lx.cur.off])

	var v int32
	for i := 0; i < len(text); i++ {
		v = v*10 + int32(text[i]-'0')
		if v < 0 {
			lx.errLex(diag.LexBadNumber, loc, "integer literal out of range: "+text)
			return token.Token{Kind: token.IntLit, Loc: loc, Text: text}
		}
	}
	return token.Token{Kind: token.IntLit, Loc: loc, Text: text, Int: v}
}
