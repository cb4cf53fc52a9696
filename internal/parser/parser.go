// Package parser builds an internal/ast tree from a internal/lexer
// token stream, supplementing the "external collaborator" boundary
// spec.md leaves unspecified (SPEC_FULL.md §A). Grounded on the
// teacher's internal/parser package shape (a Parser driver plus a
// handful of expression/statement files, precedence table in its own
// file), cut down to the Tiger grammar.
package parser

import (
	"tiger/internal/ast"
	"tiger/internal/diag"
	"tiger/internal/lexer"
	"tiger/internal/source"
	"tiger/internal/symbol"
	"tiger/internal/token"
)

// Parser holds the state needed to recursive-descend one token stream
// into one ast.Expr tree.
type Parser struct {
	lx       *lexer.Lexer
	symbols  *symbol.Table
	reporter diag.Reporter
	failed   bool
}

func New(lx *lexer.Lexer, symbols *symbol.Table, reporter diag.Reporter) *Parser {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Parser{lx: lx, symbols: symbols, reporter: reporter}
}

// ParseProgram parses a whole Tiger program, which the grammar defines
// as a single top-level expression.
func ParseProgram(lx *lexer.Lexer, symbols *symbol.Table, reporter diag.Reporter) (ast.Expr, bool) {
	p := New(lx, symbols, reporter)
	e := p.parseExpr(precLowest)
	if !p.failed {
		p.expect(token.EOF, "end of input")
	}
	if p.failed {
		return nil, false
	}
	return e, true
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

// expect consumes the current token if it matches k, else reports a
// syntax diagnostic and marks the parse as failed.
func (p *Parser) expect(k token.Kind, what string) token.Token {
	tok := p.peek()
	if tok.Kind != k {
		p.errSyn(diag.SynExpectToken, tok.Loc, "expected "+what+", got "+tok.Kind.String())
		return tok
	}
	return p.advance()
}

func (p *Parser) expectIdent() symbol.Symbol {
	tok := p.peek()
	if tok.Kind != token.Ident {
		p.errSyn(diag.SynExpectIdent, tok.Loc, "expected identifier, got "+tok.Kind.String())
		return symbol.NoSymbol
	}
	p.advance()
	return p.symbols.Intern(tok.Text)
}

func (p *Parser) errSyn(code diag.Code, at source.Location, msg string) {
	p.failed = true
	p.reporter.Report(diag.NewError(code, at, msg))
}
