package sema

import (
	"tiger/internal/ast"
	"tiger/internal/diag"
	"tiger/internal/env"
	"tiger/internal/source"
	"tiger/internal/types"
)

// transVar is trans_var (spec §4.6): the type of an l-value after
// actual_ty resolution.
func (c *checker) transVar(v ast.Var) *types.Type {
	switch n := v.(type) {
	case *ast.SimpleVar:
		entry, ok := c.venv.Lookup(n.Name)
		if !ok {
			c.fail(diag.SemaUndefinedSymbol, n.Loc, "undefined variable %q", c.symbols.Name(n.Name))
		}
		if entry.Kind != env.VarEntryKind {
			c.fail(diag.SemaKindMismatch, n.Loc, "%q is a function, not a variable", c.symbols.Name(n.Name))
		}
		return c.actualTyOrFail(entry.VarType, n.Loc)

	case *ast.FieldVar:
		base := c.transVar(n.Var)
		rec := c.actualTyOrFail(base, n.Loc)
		if rec.Kind != types.Record {
			c.fail(diag.SemaKindMismatch, n.Loc, "field access on a non-record type")
		}
		for _, f := range rec.Fields {
			if f.Name == n.Field {
				return c.actualTyOrFail(f.Type, n.Loc)
			}
		}
		c.fail(diag.SemaUndefinedSymbol, n.Loc, "record has no field %q", c.symbols.Name(n.Field))
		return nil

	case *ast.IndexVar:
		base := c.transVar(n.Var)
		arr := c.actualTyOrFail(base, n.Loc)
		if arr.Kind != types.Array {
			c.fail(diag.SemaKindMismatch, n.Loc, "index access on a non-array type")
		}
		idx := c.transExp(n.Index)
		if c.actualTyOrFail(idx, n.Loc).Kind != types.Int {
			c.fail(diag.SemaTypeMismatch, n.Loc, "array index must be int")
		}
		return c.actualTyOrFail(arr.Elem, n.Loc)

	default:
		c.internalError("trans_var: unhandled var node %T", v)
		return nil
	}
}

// actualTyOrFail chases NameRef indirections, turning an unresolved or
// cyclic chain into the "incomplete/cyclic type" diagnostic (spec §7,
// §8 scenario 8) instead of a silent nil.
func (c *checker) actualTyOrFail(t *types.Type, at source.Location) *types.Type {
	resolved, ok := types.ActualTy(t)
	if !ok {
		c.fail(diag.SemaIncompleteOrCyclic, at, "incomplete or cyclic type")
	}
	return resolved
}
