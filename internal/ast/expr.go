package ast

import (
	"tiger/internal/source"
	"tiger/internal/symbol"
)

// NilExpr is the nil literal.
type NilExpr struct {
	Loc source.Location
}

func (e *NilExpr) Location() source.Location { return e.Loc }

// IntExpr is an integer literal.
type IntExpr struct {
	Loc   source.Location
	Value int32
}

func (e *IntExpr) Location() source.Location { return e.Loc }

// StringExpr is a string literal. Value is already interned.
type StringExpr struct {
	Loc   source.Location
	Value symbol.Symbol
}

func (e *StringExpr) Location() source.Location { return e.Loc }

// UnitExpr is the unit value `()`.
type UnitExpr struct {
	Loc source.Location
}

func (e *UnitExpr) Location() source.Location { return e.Loc }

// VarExpr reads an l-value.
type VarExpr struct {
	Loc source.Location
	Var Var
}

func (e *VarExpr) Location() source.Location { return e.Loc }

// CallExpr is a function call.
type CallExpr struct {
	Loc  source.Location
	Func symbol.Symbol
	Args []Expr
}

func (e *CallExpr) Location() source.Location { return e.Loc }

// OpExpr is a binary arithmetic/comparison/logical expression.
type OpExpr struct {
	Loc source.Location
	Op  Op
	Lhs Expr
	Rhs Expr
}

func (e *OpExpr) Location() source.Location { return e.Loc }

// RecordField is one `name = value` pair of a record literal.
type RecordField struct {
	Loc   source.Location
	Name  symbol.Symbol
	Value Expr
}

// RecordExpr is a record literal `T { f1 = e1, ... }`.
type RecordExpr struct {
	Loc    source.Location
	Type   symbol.Symbol
	Fields []RecordField
}

func (e *RecordExpr) Location() source.Location { return e.Loc }

// ArrayExpr is an array literal `T [size] of init`.
type ArrayExpr struct {
	Loc  source.Location
	Type symbol.Symbol
	Size Expr
	Init Expr
}

func (e *ArrayExpr) Location() source.Location { return e.Loc }

// SeqExpr is a `;`-separated sequence of expressions; its type is its
// last element's type, or Unit if empty.
type SeqExpr struct {
	Loc   source.Location
	Exprs []Expr
}

func (e *SeqExpr) Location() source.Location { return e.Loc }

// AssignExpr is `var := exp`.
type AssignExpr struct {
	Loc   source.Location
	Var   Var
	Value Expr
}

func (e *AssignExpr) Location() source.Location { return e.Loc }

// IfExpr is `if cond then then [else else_]`. Else is nil when absent.
type IfExpr struct {
	Loc  source.Location
	Cond Expr
	Then Expr
	Else Expr
}

func (e *IfExpr) Location() source.Location { return e.Loc }

// WhileExpr is `while cond do body`.
type WhileExpr struct {
	Loc  source.Location
	Cond Expr
	Body Expr
}

func (e *WhileExpr) Location() source.Location { return e.Loc }

// ForExpr is `for var := lo to hi do body`.
type ForExpr struct {
	Loc  source.Location
	Var  symbol.Symbol
	Lo   Expr
	Hi   Expr
	Body Expr
}

func (e *ForExpr) Location() source.Location { return e.Loc }

// BreakExpr is `break`.
type BreakExpr struct {
	Loc source.Location
}

func (e *BreakExpr) Location() source.Location { return e.Loc }

// LetExpr is `let decs in body end`.
type LetExpr struct {
	Loc   source.Location
	Decs  []Dec
	Body  Expr
}

func (e *LetExpr) Location() source.Location { return e.Loc }
