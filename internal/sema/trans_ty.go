package sema

import (
	"tiger/internal/ast"
	"tiger/internal/diag"
	"tiger/internal/types"
)

// transTy is trans_ty (spec §4.8): resolve a syntactic type against
// Tenv into a semantic Type.
func (c *checker) transTy(ty ast.Ty) *types.Type {
	switch t := ty.(type) {
	case *ast.NameTy:
		resolved, ok := c.tenv.Lookup(t.Name)
		if !ok {
			c.fail(diag.SemaUndefinedSymbol, t.Loc, "undefined type %q", c.symbols.Name(t.Name))
		}
		return resolved

	case *ast.RecordTy:
		seen := make(map[uint32]bool, len(t.Fields))
		fields := make([]types.Field, 0, len(t.Fields))
		for _, f := range t.Fields {
			if seen[uint32(f.Name)] {
				c.fail(diag.SemaDuplicateName, f.Loc, "duplicate field %q in record type", c.symbols.Name(f.Name))
			}
			seen[uint32(f.Name)] = true
			fieldTy, ok := c.tenv.Lookup(f.Type)
			if !ok {
				c.fail(diag.SemaUndefinedSymbol, f.Loc, "undefined type %q", c.symbols.Name(f.Type))
			}
			fields = append(fields, types.Field{Name: f.Name, Type: fieldTy})
		}
		return c.universe.NewRecord(fields)

	case *ast.ArrayTy:
		elem, ok := c.tenv.Lookup(t.Elem)
		if !ok {
			c.fail(diag.SemaUndefinedSymbol, t.Loc, "undefined type %q", c.symbols.Name(t.Elem))
		}
		return c.universe.NewArray(elem)

	default:
		c.internalError("trans_ty: unhandled syntactic type %T", ty)
		return nil
	}
}
