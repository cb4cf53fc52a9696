package parser

import (
	"tiger/internal/ast"
	"tiger/internal/diag"
	"tiger/internal/symbol"
	"tiger/internal/token"
)

// parseTy parses one syntactic type expression (spec §3: name alias,
// record, array-of).
func (p *Parser) parseTy() ast.Ty {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return &ast.NameTy{Loc: tok.Loc, Name: p.symbols.Intern(tok.Text)}
	case token.LBrace:
		p.advance()
		fields := p.parseTyFields()
		p.expect(token.RBrace, "'}'")
		return &ast.RecordTy{Loc: tok.Loc, Fields: fields}
	case token.KwArray:
		p.advance()
		p.expect(token.KwOf, "'of'")
		elem := p.expectIdent()
		return &ast.ArrayTy{Loc: tok.Loc, Elem: elem}
	default:
		p.errSyn(diag.SynUnexpectedToken, tok.Loc, "expected a type, got "+tok.Kind.String())
		return &ast.NameTy{Loc: tok.Loc, Name: symbol.NoSymbol}
	}
}

func (p *Parser) parseTyFields() []ast.TyField {
	if p.at(token.RBrace) {
		return nil
	}
	var fields []ast.TyField
	for {
		loc := p.peek().Loc
		name := p.expectIdent()
		p.expect(token.Colon, "':'")
		ty := p.expectIdent()
		fields = append(fields, ast.TyField{Loc: loc, Name: name, Type: ty})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return fields
}
