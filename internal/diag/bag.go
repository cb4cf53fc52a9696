package diag

import "sort"

// Bag accumulates diagnostics, grounded on the teacher's diag.Bag. The
// analyzer itself only ever needs the first error (spec §4.10 — first
// violation aborts analysis), but a Bag lets the CLI gather diagnostics
// from several files analyzed concurrently and print them in a stable
// order. Like the teacher's Bag, it can be given a cap (the zero value
// means unlimited, so a bare &Bag{} keeps working everywhere a cap
// doesn't matter — in tests and in internal analysis, only
// project.CheckConfig.MaxDiagnostics, threaded through cmd/tigerc,
// ever sets one).
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add appends d, unless the bag's cap (if any) has already been
// reached, in which case it reports false and drops d.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by location then severity (descending) then
// code, for deterministic CLI output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.At.Line != dj.At.Line {
			return di.At.Line < dj.At.Line
		}
		if di.At.Column != dj.At.Column {
			return di.At.Column < dj.At.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
