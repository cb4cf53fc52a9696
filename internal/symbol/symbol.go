// Package symbol implements the analyzer's symbol intern table (spec
// §4.1): canonicalizing identifier strings so that symbol equality is a
// cheap index comparison.
package symbol

import "fortio.org/safecast"

// Symbol is an interned identifier. Two symbols compare equal iff their
// underlying strings are equal; the comparison itself never touches the
// string.
type Symbol uint32

// NoSymbol is returned by Intern only for the empty string; it is used
// as a "no symbol here" sentinel by callers that hold an optional Symbol.
const NoSymbol Symbol = 0

// Table is a process-wide (or analyzer-wide) interning registry.
type Table struct {
	byID  []string
	index map[string]Symbol
}

// NewTable constructs an empty intern table. Index 0 is reserved for
// NoSymbol, which is also the Symbol the empty string interns to, so no
// non-empty string is ever given the zero Symbol.
func NewTable() *Table {
	return &Table{
		byID:  []string{""},
		index: map[string]Symbol{"": 0},
	}
}

// Intern returns the unique Symbol for s, allocating one if s has not
// been seen before.
func (t *Table) Intern(s string) Symbol {
	if s == "" {
		return NoSymbol
	}
	if id, ok := t.index[s]; ok {
		return id
	}
	n, err := safecast.Conv[uint32](len(t.byID))
	if err != nil {
		panic("symbol: intern table overflow")
	}
	id := Symbol(n)
	cpy := string([]byte(s)) // own a copy, independent of the lexer's buffer
	t.byID = append(t.byID, cpy)
	t.index[cpy] = id
	return id
}

// Name returns the text of an interned symbol. It panics if ReleaseAll
// has already been called, since Name is only meaningful for diagnostics
// produced while the table is alive.
func (t *Table) Name(s Symbol) string {
	if int(s) >= len(t.byID) {
		panic("symbol: invalid Symbol")
	}
	if t.byID == nil {
		panic("symbol: table released")
	}
	return t.byID[s]
}

// Len reports how many distinct strings (including the reserved empty
// string at index 0) are interned.
func (t *Table) Len() int {
	return len(t.byID)
}

// ReleaseAll frees every interned string (spec §4.1's "single bulk-release
// operation at shutdown"). Symbols minted before the call remain valid for
// equality comparisons — Symbol is just an integer — but Name panics
// afterward.
func (t *Table) ReleaseAll() {
	t.byID = nil
	t.index = nil
}
