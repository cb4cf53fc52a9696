package lexer

import "tiger/internal/token"

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	loc := lx.cur.loc()
	start := lx.cur.off
	for isIdentContinue(lx.cur.peek()) {
		lx.cur.bump()
	}
	text := string(lx.cur.src[start:lx.cur.off])
	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Loc: loc, Text: text}
	}
	return token.Token{Kind: token.Ident, Loc: loc, Text: text}
}
