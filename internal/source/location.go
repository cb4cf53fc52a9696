// Package source carries the minimal positional information the rest of
// the module threads through tokens, AST nodes, and diagnostics.
package source

import "fmt"

// Location is a 1-based line/column position in a single source file.
// The analyzer never compares locations across files, so unlike the
// teacher's byte-offset Span, a bare line/column pair is enough here.
type Location struct {
	Line   int
	Column int
}

// NoLocation is the zero value, used for internal errors that have no
// attributable source position.
var NoLocation = Location{}

func (l Location) IsValid() bool {
	return l.Line > 0
}

func (l Location) String() string {
	if !l.IsValid() {
		return "<internal>"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
