package parser

import (
	"tiger/internal/ast"
	"tiger/internal/diag"
	"tiger/internal/source"
	"tiger/internal/token"
)

// parseExpr is precedence-climbing over the binary operator table
// (op_table.go); unary minus is handled one level down, in parseUnary,
// since it binds tighter than every binary operator.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		prec := binaryPrec(p.peek().Kind)
		if prec < 0 || prec < minPrec {
			return left
		}
		opTok := p.advance()
		right := p.parseExpr(prec + 1) // left-associative: raise the floor by one
		left = &ast.OpExpr{Loc: opTok.Loc, Op: tokenToOp(opTok.Kind), Lhs: left, Rhs: right}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if p.at(token.Minus) {
		tok := p.advance()
		operand := p.parseUnary()
		return &ast.OpExpr{Loc: tok.Loc, Op: ast.OpSub, Lhs: &ast.IntExpr{Loc: tok.Loc, Value: 0}, Rhs: operand}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.KwNil:
		p.advance()
		return &ast.NilExpr{Loc: tok.Loc}
	case token.IntLit:
		p.advance()
		return &ast.IntExpr{Loc: tok.Loc, Value: tok.Int}
	case token.StringLit:
		p.advance()
		return &ast.StringExpr{Loc: tok.Loc, Value: p.symbols.Intern(tok.Text)}
	case token.KwBreak:
		p.advance()
		return &ast.BreakExpr{Loc: tok.Loc}
	case token.LParen:
		return p.parseParenOrSeq()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwLet:
		return p.parseLet()
	case token.Ident:
		return p.parseIdentLed()
	default:
		p.errSyn(diag.SynUnexpectedToken, tok.Loc, "unexpected token "+tok.Kind.String())
		p.advance()
		return &ast.NilExpr{Loc: tok.Loc}
	}
}

func (p *Parser) parseParenOrSeq() ast.Expr {
	tok := p.advance() // '('
	if p.at(token.RParen) {
		p.advance()
		return &ast.UnitExpr{Loc: tok.Loc}
	}
	var exprs []ast.Expr
	for {
		exprs = append(exprs, p.parseExpr(precLowest))
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, "')'")
	return seqOf(tok.Loc, exprs)
}

func seqOf(loc source.Location, exprs []ast.Expr) ast.Expr {
	switch len(exprs) {
	case 0:
		return &ast.UnitExpr{Loc: loc}
	case 1:
		return exprs[0]
	default:
		return &ast.SeqExpr{Loc: loc, Exprs: exprs}
	}
}

func (p *Parser) parseIf() ast.Expr {
	tok := p.advance() // 'if'
	cond := p.parseExpr(precLowest)
	p.expect(token.KwThen, "'then'")
	then := p.parseExpr(precLowest)
	var els ast.Expr
	if p.at(token.KwElse) {
		p.advance()
		els = p.parseExpr(precLowest)
	}
	return &ast.IfExpr{Loc: tok.Loc, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseWhile() ast.Expr {
	tok := p.advance() // 'while'
	cond := p.parseExpr(precLowest)
	p.expect(token.KwDo, "'do'")
	body := p.parseExpr(precLowest)
	return &ast.WhileExpr{Loc: tok.Loc, Cond: cond, Body: body}
}

func (p *Parser) parseFor() ast.Expr {
	tok := p.advance() // 'for'
	name := p.expectIdent()
	p.expect(token.ColonEq, "':='")
	lo := p.parseExpr(precLowest)
	p.expect(token.KwTo, "'to'")
	hi := p.parseExpr(precLowest)
	p.expect(token.KwDo, "'do'")
	body := p.parseExpr(precLowest)
	return &ast.ForExpr{Loc: tok.Loc, Var: name, Lo: lo, Hi: hi, Body: body}
}

func (p *Parser) parseLet() ast.Expr {
	tok := p.advance() // 'let'
	decs := p.parseDecs()
	p.expect(token.KwIn, "'in'")
	var exprs []ast.Expr
	for !p.at(token.KwEnd) && !p.at(token.EOF) {
		exprs = append(exprs, p.parseExpr(precLowest))
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.KwEnd, "'end'")
	return &ast.LetExpr{Loc: tok.Loc, Decs: decs, Body: seqOf(tok.Loc, exprs)}
}

// parseIdentLed disambiguates the four expression forms that start
// with a bare identifier: a call `f(...)`, a record literal `T{...}`,
// an array literal `T[n] of v`, and an l-value (optionally followed by
// `:= exp`). Array literal and index l-value share a `T[` prefix and
// can only be told apart after the closing `]`.
func (p *Parser) parseIdentLed() ast.Expr {
	tok := p.advance()
	loc := tok.Loc
	name := p.symbols.Intern(tok.Text)

	switch {
	case p.at(token.LParen):
		p.advance()
		args := p.parseArgs()
		p.expect(token.RParen, "')'")
		return &ast.CallExpr{Loc: loc, Func: name, Args: args}

	case p.at(token.LBrace):
		p.advance()
		fields := p.parseRecordFields()
		p.expect(token.RBrace, "'}'")
		return &ast.RecordExpr{Loc: loc, Type: name, Fields: fields}

	case p.at(token.LBracket):
		p.advance()
		inner := p.parseExpr(precLowest)
		p.expect(token.RBracket, "']'")
		if p.at(token.KwOf) {
			p.advance()
			init := p.parseExpr(precLowest)
			return &ast.ArrayExpr{Loc: loc, Type: name, Size: inner, Init: init}
		}
		v := p.parseLValueSuffix(&ast.IndexVar{Loc: loc, Var: &ast.SimpleVar{Loc: loc, Name: name}, Index: inner})
		return p.finishLValue(v, loc)

	default:
		v := p.parseLValueSuffix(&ast.SimpleVar{Loc: loc, Name: name})
		return p.finishLValue(v, loc)
	}
}

func (p *Parser) parseArgs() []ast.Expr {
	if p.at(token.RParen) {
		return nil
	}
	var args []ast.Expr
	for {
		args = append(args, p.parseExpr(precLowest))
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return args
}

func (p *Parser) parseRecordFields() []ast.RecordField {
	if p.at(token.RBrace) {
		return nil
	}
	var fields []ast.RecordField
	for {
		loc := p.peek().Loc
		name := p.expectIdent()
		p.expect(token.Eq, "'='")
		value := p.parseExpr(precLowest)
		fields = append(fields, ast.RecordField{Loc: loc, Name: name, Value: value})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return fields
}
