package token

import "tiger/internal/source"

// Token is one scanned lexeme with its source position.
type Token struct {
	Kind Kind
	Loc  source.Location
	Text string // identifier spelling, or the unescaped string-literal value
	Int  int32  // populated when Kind == IntLit
}

func (t Token) IsKeyword() bool {
	_, ok := keywordText(t.Kind)
	return ok
}
