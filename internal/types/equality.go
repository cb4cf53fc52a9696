package types

// ActualTy repeatedly chases NameRef indirections until a non-name type
// is reached (spec §4.2, §GLOSSARY). It reports failure — rather than
// panicking — when the chain is unresolved or cyclic, so the caller
// (internal/sema) can turn that into an "incomplete/cyclic type"
// diagnostic instead of crashing the process.
func ActualTy(t *Type) (*Type, bool) {
	seen := make(map[*Type]bool)
	cur := t
	for cur.Kind == NameRef {
		if seen[cur] {
			return nil, false // cycle of name-only aliases, spec §8 scenario 8
		}
		seen[cur] = true
		if cur.Target == nil {
			return nil, false // slot never filled in
		}
		cur = cur.Target
	}
	return cur, true
}

// Equals implements spec §4.2's equality relation: structural for the
// primitive singletons, nominal (by ID) for records and arrays, and
// deliberately false for Nil compared with Nil — two nil expressions
// carry no record identity to compare.
func Equals(a, b *Type) bool {
	ra, ok := ActualTy(a)
	if !ok {
		return false
	}
	rb, ok := ActualTy(b)
	if !ok {
		return false
	}
	if ra.Kind != rb.Kind {
		return false
	}
	switch ra.Kind {
	case Int, String, Unit:
		return true
	case Nil:
		return false
	case Record, Array:
		return ra.ID == rb.ID
	default:
		return false
	}
}

// IsCompatible implements the assignment/argument/field-value relation
// from spec §4.2: equality, or Nil widening to any record type.
func IsCompatible(src, dst *Type) bool {
	if Equals(src, dst) {
		return true
	}
	rsrc, ok := ActualTy(src)
	if !ok || rsrc.Kind != Nil {
		return false
	}
	rdst, ok := ActualTy(dst)
	return ok && rdst.Kind == Record
}
