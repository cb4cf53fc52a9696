// Package types implements the semantic type universe (spec §3, §4.2):
// a closed sum of primitive singletons plus nominally-identified records
// and arrays, with a NameRef indirection that lets mutually recursive
// type declarations close.
package types

import "tiger/internal/symbol"

// Kind tags the closed set of semantic type shapes.
type Kind uint8

const (
	Invalid Kind = iota
	Int
	String
	Nil
	Unit
	Record
	Array
	NameRef
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case String:
		return "string"
	case Nil:
		return "nil"
	case Unit:
		return "unit"
	case Record:
		return "record"
	case Array:
		return "array"
	case NameRef:
		return "name"
	default:
		return "invalid"
	}
}

// Field is one (name, type) pair of a record, in declaration order.
type Field struct {
	Name symbol.Symbol
	Type *Type
}

// Type is the sum described in spec §3. Record and Array carry a
// nominal ID minted by a Universe; two Types with equal Kind but
// different ID are never equal, even with identical shape (spec §8's
// "nominal identity" invariant). NameRef is a mutable one-slot
// indirection: Target is nil until the declaring group's phase 2 fills
// it in (spec §4.7).
type Type struct {
	Kind   Kind
	ID     uint64 // nominal identity for Record/Array; 0 otherwise
	Fields []Field
	Elem   *Type  // Array element type
	Name   symbol.Symbol // NameRef's declared name, for diagnostics
	Target *Type  // NameRef's slot; nil while unresolved
}

var (
	intSingleton    = &Type{Kind: Int}
	stringSingleton = &Type{Kind: String}
	nilSingleton    = &Type{Kind: Nil}
	unitSingleton   = &Type{Kind: Unit}
)

// IntType, StringType, NilType and UnitType are the four primitive
// singletons. They carry no nominal identity and are structurally
// equal to themselves regardless of which Universe constructed a
// record or array that references them.
func IntType() *Type    { return intSingleton }
func StringType() *Type { return stringSingleton }
func NilType() *Type    { return nilSingleton }
func UnitType() *Type   { return unitSingleton }
