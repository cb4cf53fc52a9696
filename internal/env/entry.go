package env

import "tiger/internal/types"

// EntryKind distinguishes the two shapes a Venv binding can take (spec
// §3: `Venv : sym → {VarEntry(type) | FunEntry(formals, result)}`).
type EntryKind uint8

const (
	VarEntryKind EntryKind = iota
	FunEntryKind
)

// ValueEntry is a Venv binding. Exactly one of the Var/Fun-shaped field
// groups is meaningful, selected by Kind.
type ValueEntry struct {
	Kind    EntryKind
	VarType *types.Type   // valid when Kind == VarEntryKind
	Formals []*types.Type // valid when Kind == FunEntryKind
	Result  *types.Type   // valid when Kind == FunEntryKind
}

func NewVarEntry(t *types.Type) ValueEntry {
	return ValueEntry{Kind: VarEntryKind, VarType: t}
}

func NewFunEntry(formals []*types.Type, result *types.Type) ValueEntry {
	return ValueEntry{Kind: FunEntryKind, Formals: formals, Result: result}
}

// Venv binds value-level names (variables and functions) to entries.
type Venv = Table[ValueEntry]

// Tenv binds type-level names to semantic types.
type Tenv = Table[*types.Type]

func NewVenv() *Venv { return NewTable[ValueEntry]() }
func NewTenv() *Tenv { return NewTable[*types.Type]() }
