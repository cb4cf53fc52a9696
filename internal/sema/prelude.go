package sema

import (
	"tiger/internal/env"
	"tiger/internal/symbol"
	"tiger/internal/types"
)

// seedTenv installs the two primitive type bindings spec §6 requires
// every analysis to start with.
func seedTenv(tenv *env.Tenv, tbl *symbol.Table) {
	tenv.Enter(tbl.Intern("int"), types.IntType())
	tenv.Enter(tbl.Intern("string"), types.StringType())
}

// DefaultBuiltins describes the standard Tiger base library functions
// (print, flush, getchar, ord, chr, size, substring, concat, not, exit)
// documented by the language this front end implements. The original
// reference implementation under analysis leaves Venv empty and lets
// its caller decide what, if anything, to expose (spec §6: "any
// built-in functions the host language exposes ... the core only
// consumes them through lookup") — DefaultBuiltins is that opt-in
// decision for callers (the CLI) that want to check realistic
// programs instead of bare expressions.
func DefaultBuiltins(tbl *symbol.Table, u *types.Universe) map[string]env.ValueEntry {
	intT := types.IntType()
	strT := types.StringType()
	unitT := types.UnitType()
	return map[string]env.ValueEntry{
		"print":     env.NewFunEntry([]*types.Type{strT}, unitT),
		"flush":     env.NewFunEntry(nil, unitT),
		"getchar":   env.NewFunEntry(nil, strT),
		"ord":       env.NewFunEntry([]*types.Type{strT}, intT),
		"chr":       env.NewFunEntry([]*types.Type{intT}, strT),
		"size":      env.NewFunEntry([]*types.Type{strT}, intT),
		"substring": env.NewFunEntry([]*types.Type{strT, intT, intT}, strT),
		"concat":    env.NewFunEntry([]*types.Type{strT, strT}, strT),
		"not":       env.NewFunEntry([]*types.Type{intT}, intT),
		"exit":      env.NewFunEntry([]*types.Type{intT}, unitT),
	}
}

// InstallBuiltins binds every entry of builtins into venv under its
// interned name. It is a thin helper so callers don't need to touch
// symbol interning themselves.
func InstallBuiltins(venv *env.Venv, tbl *symbol.Table, builtins map[string]env.ValueEntry) {
	for name, entry := range builtins {
		venv.Enter(tbl.Intern(name), entry)
	}
}
