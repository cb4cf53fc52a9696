package lexer

import (
	"testing"

	"tiger/internal/symbol"
	"tiger/internal/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	lx := New([]byte(src), symbol.NewTable(), nil)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestScansKeywordsAndIdents(t *testing.T) {
	toks := scanAll(t, "let var x := 1 in x end")
	wantKinds := []token.Kind{
		token.KwLet, token.KwVar, token.Ident, token.ColonEq, token.IntLit,
		token.KwIn, token.Ident, token.KwEnd, token.EOF,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, want)
		}
	}
}

func TestScansStringEscapes(t *testing.T) {
	toks := scanAll(t, `"a\nb\"c"`)
	if toks[0].Kind != token.StringLit {
		t.Fatalf("got %v, want StringLit", toks[0].Kind)
	}
	if toks[0].Text != "a\nb\"c" {
		t.Errorf("got %q, want %q", toks[0].Text, "a\nb\"c")
	}
}

func TestScansNestedBlockComments(t *testing.T) {
	toks := scanAll(t, "/* outer /* inner */ still outer */ 42")
	if len(toks) != 2 || toks[0].Kind != token.IntLit || toks[0].Int != 42 {
		t.Fatalf("got %v", toks)
	}
}

func TestUnterminatedStringReportsError(t *testing.T) {
	toks := scanAll(t, `"abc`)
	if toks[0].Kind != token.Invalid {
		t.Fatalf("got %v, want Invalid", toks[0].Kind)
	}
}

func TestTracksLineAndColumn(t *testing.T) {
	toks := scanAll(t, "x\ny")
	if toks[0].Loc.Line != 1 || toks[0].Loc.Column != 1 {
		t.Errorf("got %v, want 1:1", toks[0].Loc)
	}
	if toks[1].Loc.Line != 2 || toks[1].Loc.Column != 1 {
		t.Errorf("got %v, want 2:1", toks[1].Loc)
	}
}
