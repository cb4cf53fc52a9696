package lexer

import (
	"strconv"

	"tiger/internal/diag"
	"tiger/internal/token"
)

// scanString reads a `"..."` literal, unescaping \n \t \" \\ and the
// three-digit decimal \ddd escape the Appel Tiger grammar defines.
func (lx *Lexer) scanString() token.Token {
	loc := lx.cur.loc()
	lx.cur.bump() // opening quote

	var out []byte
	for {
		if lx.cur.eof() {
			lx.errLex(diag.LexUnterminatedString, loc, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Loc: loc, Text: string(out)}
		}
		b := lx.cur.peek()
		if b == '"' {
			lx.cur.bump()
			return token.Token{Kind: token.StringLit, Loc: loc, Text: string(out)}
		}
		if b == '\n' {
			lx.errLex(diag.LexUnterminatedString, loc, "newline in string literal")
			return token.Token{Kind: token.Invalid, Loc: loc, Text: string(out)}
		}
		if b != '\\' {
			out = append(out, lx.cur.bump())
			continue
		}

		lx.cur.bump() // '\'
		esc := lx.cur.peek()
		switch {
		case esc == 'n':
			lx.cur.bump()
			out = append(out, '\n')
		case esc == 't':
			lx.cur.bump()
			out = append(out, '\t')
		case esc == '"':
			lx.cur.bump()
			out = append(out, '"')
		case esc == '\\':
			lx.cur.bump()
			out = append(out, '\\')
		case isDigit(esc) && isDigit(lx.cur.peekAt(1)) && isDigit(lx.cur.peekAt(2)):
			digits := []byte{lx.cur.bump(), lx.cur.bump(), lx.cur.bump()}
			code, err := strconv.Atoi(string(digits))
			if err != nil || code > 255 {
				lx.errLex(diag.LexBadNumber, loc, "invalid \\ddd escape in string literal")
				return token.Token{Kind: token.Invalid, Loc: loc, Text: string(out)}
			}
			out = append(out, byte(code))
		default:
			lx.errLex(diag.LexUnknownChar, loc, "unrecognized escape sequence in string literal")
			return token.Token{Kind: token.Invalid, Loc: loc, Text: string(out)}
		}
	}
}
