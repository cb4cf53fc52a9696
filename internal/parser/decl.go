package parser

import (
	"tiger/internal/ast"
	"tiger/internal/source"
	"tiger/internal/token"
)

// parseDecs collects a let's declaration list, grouping maximal runs
// of consecutive `type` declarations and `function` declarations into
// single TypeDecGroup/FuncDecGroup nodes the way the mutually-recursive
// group semantics require.
func (p *Parser) parseDecs() []ast.Dec {
	var decs []ast.Dec
	for {
		switch p.peek().Kind {
		case token.KwVar:
			decs = append(decs, p.parseVarDec())
		case token.KwType:
			decs = append(decs, p.parseTypeDecGroup())
		case token.KwFunction:
			decs = append(decs, p.parseFuncDecGroup())
		default:
			return decs
		}
	}
}

func (p *Parser) parseVarDec() *ast.VarDec {
	tok := p.advance() // 'var'
	name := p.expectIdent()

	typeName := ast.NoSymbolSpan
	var typeLoc source.Location
	if p.at(token.Colon) {
		p.advance()
		typeLoc = p.peek().Loc
		typeName = p.expectIdent()
	}

	p.expect(token.ColonEq, "':='")
	init := p.parseExpr(precLowest)
	return &ast.VarDec{Loc: tok.Loc, Name: name, TypeName: typeName, TypeLoc: typeLoc, Init: init}
}

func (p *Parser) parseTypeDecGroup() *ast.TypeDecGroup {
	groupLoc := p.peek().Loc
	var decls []ast.TypeDecl
	for p.at(token.KwType) {
		tok := p.advance()
		name := p.expectIdent()
		p.expect(token.Eq, "'='")
		ty := p.parseTy()
		decls = append(decls, ast.TypeDecl{Loc: tok.Loc, Name: name, Type: ty})
	}
	return &ast.TypeDecGroup{Loc: groupLoc, Decls: decls}
}

func (p *Parser) parseFuncDecGroup() *ast.FuncDecGroup {
	groupLoc := p.peek().Loc
	var decls []ast.FuncDecl
	for p.at(token.KwFunction) {
		tok := p.advance()
		name := p.expectIdent()
		p.expect(token.LParen, "'('")
		params := p.parseParams()
		p.expect(token.RParen, "')'")

		resultName := ast.NoSymbolSpan
		var resultLoc source.Location
		if p.at(token.Colon) {
			p.advance()
			resultLoc = p.peek().Loc
			resultName = p.expectIdent()
		}

		p.expect(token.Eq, "'='")
		body := p.parseExpr(precLowest)
		decls = append(decls, ast.FuncDecl{
			Loc: tok.Loc, Name: name, Params: params,
			ResultName: resultName, ResultLoc: resultLoc, Body: body,
		})
	}
	return &ast.FuncDecGroup{Loc: groupLoc, Decls: decls}
}

func (p *Parser) parseParams() []ast.Param {
	if p.at(token.RParen) {
		return nil
	}
	var params []ast.Param
	for {
		loc := p.peek().Loc
		name := p.expectIdent()
		p.expect(token.Colon, "':'")
		ty := p.expectIdent()
		params = append(params, ast.Param{Loc: loc, Name: name, Type: ty})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return params
}
