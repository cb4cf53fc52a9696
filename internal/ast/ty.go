package ast

import (
	"tiger/internal/source"
	"tiger/internal/symbol"
)

// NameTy is a syntactic type that is just an alias for another name.
type NameTy struct {
	Loc  source.Location
	Name symbol.Symbol
}

func (t *NameTy) Location() source.Location { return t.Loc }

// TyField is one `name: type` pair in a record type declaration.
type TyField struct {
	Loc  source.Location
	Name symbol.Symbol
	Type symbol.Symbol
}

// RecordTy is `{ f1: t1, f2: t2, ... }`.
type RecordTy struct {
	Loc    source.Location
	Fields []TyField
}

func (t *RecordTy) Location() source.Location { return t.Loc }

// ArrayTy is `array of elem`.
type ArrayTy struct {
	Loc  source.Location
	Elem symbol.Symbol
}

func (t *ArrayTy) Location() source.Location { return t.Loc }
