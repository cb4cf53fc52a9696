package diag

// Code identifies the kind of a diagnostic. The Sema* block below is the
// closed set from spec §7; Lex*/Syn* codes belong to the supplementary
// lexer/parser front end described in SPEC_FULL.md §A.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexUnknownChar        Code = 1000
	LexUnterminatedString Code = 1001
	LexBadNumber          Code = 1002

	// Syntax.
	SynUnexpectedToken Code = 2000
	SynExpectIdent     Code = 2001
	SynExpectToken     Code = 2002

	// Semantic — spec §7's closed error-kind set.
	SemaUndefinedSymbol     Code = 3000
	SemaKindMismatch        Code = 3001
	SemaTypeMismatch        Code = 3002
	SemaDuplicateName       Code = 3003
	SemaRedeclaration       Code = 3004
	SemaMissingAnnotation   Code = 3005
	SemaUnitInAssignment    Code = 3006
	SemaBreakOutsideLoop    Code = 3007
	SemaIncompleteOrCyclic  Code = 3008
	SemaInternalError       Code = 3009
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "unknown"
	case LexUnknownChar:
		return "lex-unknown-char"
	case LexUnterminatedString:
		return "lex-unterminated-string"
	case LexBadNumber:
		return "lex-bad-number"
	case SynUnexpectedToken:
		return "syn-unexpected-token"
	case SynExpectIdent:
		return "syn-expect-ident"
	case SynExpectToken:
		return "syn-expect-token"
	case SemaUndefinedSymbol:
		return "undefined-symbol"
	case SemaKindMismatch:
		return "kind-mismatch"
	case SemaTypeMismatch:
		return "type-mismatch"
	case SemaDuplicateName:
		return "duplicate-name"
	case SemaRedeclaration:
		return "redeclaration"
	case SemaMissingAnnotation:
		return "missing-annotation"
	case SemaUnitInAssignment:
		return "unit-in-assignment"
	case SemaBreakOutsideLoop:
		return "break-outside-loop"
	case SemaIncompleteOrCyclic:
		return "incomplete-or-cyclic-type"
	case SemaInternalError:
		return "internal-error"
	default:
		return "unknown"
	}
}
