package parser

import (
	"tiger/internal/ast"
	"tiger/internal/source"
	"tiger/internal/token"
)

// parseLValueSuffix consumes zero or more trailing `.field` / `[idx]`
// suffixes onto an already-parsed l-value base.
func (p *Parser) parseLValueSuffix(v ast.Var) ast.Var {
	for {
		switch {
		case p.at(token.Dot):
			loc := p.advance().Loc
			field := p.expectIdent()
			v = &ast.FieldVar{Loc: loc, Var: v, Field: field}
		case p.at(token.LBracket):
			loc := p.advance().Loc
			idx := p.parseExpr(precLowest)
			p.expect(token.RBracket, "']'")
			v = &ast.IndexVar{Loc: loc, Var: v, Index: idx}
		default:
			return v
		}
	}
}

// finishLValue turns a parsed l-value into either a plain read
// (VarExpr) or, if `:=` follows, an assignment.
func (p *Parser) finishLValue(v ast.Var, loc source.Location) ast.Expr {
	if p.at(token.ColonEq) {
		p.advance()
		value := p.parseExpr(precLowest)
		return &ast.AssignExpr{Loc: loc, Var: v, Value: value}
	}
	return &ast.VarExpr{Loc: loc, Var: v}
}
