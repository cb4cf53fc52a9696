package ast

import (
	"tiger/internal/source"
	"tiger/internal/symbol"
)

// SimpleVar is a bare identifier reference.
type SimpleVar struct {
	Loc  source.Location
	Name symbol.Symbol
}

func (v *SimpleVar) Location() source.Location { return v.Loc }

// FieldVar is `var.field`.
type FieldVar struct {
	Loc   source.Location
	Var   Var
	Field symbol.Symbol
}

func (v *FieldVar) Location() source.Location { return v.Loc }

// IndexVar is `var[index]`.
type IndexVar struct {
	Loc   source.Location
	Var   Var
	Index Expr
}

func (v *IndexVar) Location() source.Location { return v.Loc }
