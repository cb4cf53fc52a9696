package sema

import (
	"tiger/internal/ast"
	"tiger/internal/diag"
	"tiger/internal/env"
	"tiger/internal/types"
)

// transDec is trans_dec (spec §4.7): install one declaration node's
// bindings into the enclosing Venv/Tenv.
func (c *checker) transDec(d ast.Dec) {
	switch n := d.(type) {
	case *ast.VarDec:
		c.transVarDec(n)
	case *ast.TypeDecGroup:
		c.transTypeDecGroup(n)
	case *ast.FuncDecGroup:
		c.transFuncDecGroup(n)
	default:
		c.internalError("trans_dec: unhandled dec node %T", d)
	}
}

func (c *checker) transVarDec(d *ast.VarDec) {
	initTy := c.transExp(d.Init)

	var chosen *types.Type
	if d.TypeName == ast.NoSymbolSpan {
		actual := c.actualTyOrFail(initTy, d.Loc)
		if actual.Kind == types.Nil {
			c.fail(diag.SemaMissingAnnotation, d.Loc, "var %q initialized to nil needs an explicit type annotation", c.symbols.Name(d.Name))
		}
		if actual.Kind == types.Unit {
			c.fail(diag.SemaTypeMismatch, d.Loc, "var %q cannot be initialized with a unit-valued expression", c.symbols.Name(d.Name))
		}
		chosen = actual
	} else {
		declared, ok := c.tenv.Lookup(d.TypeName)
		if !ok {
			c.fail(diag.SemaUndefinedSymbol, d.TypeLoc, "undefined type %q", c.symbols.Name(d.TypeName))
		}
		resolved := c.actualTyOrFail(declared, d.TypeLoc)
		if !c.compatible(initTy, declared, d.Loc) {
			c.fail(diag.SemaTypeMismatch, d.Loc, "initializer for %q is not compatible with its declared type", c.symbols.Name(d.Name))
		}
		chosen = resolved
	}

	if !c.venv.Enter(d.Name, env.NewVarEntry(chosen)) {
		c.fail(diag.SemaRedeclaration, d.Loc, "%q is already declared in this scope", c.symbols.Name(d.Name))
	}
}

// transTypeDecGroup is the two-pass fixed point of §4.7: allocate a
// NameRef per member, then resolve each member's right-hand side.
func (c *checker) transTypeDecGroup(g *ast.TypeDecGroup) {
	seen := make(map[uint32]bool, len(g.Decls))
	refs := make([]*types.Type, len(g.Decls))

	for i, decl := range g.Decls {
		if seen[uint32(decl.Name)] {
			c.fail(diag.SemaDuplicateName, decl.Loc, "duplicate type name %q in mutually recursive group", c.symbols.Name(decl.Name))
		}
		seen[uint32(decl.Name)] = true

		ref := c.universe.NewNameRef(decl.Name)
		refs[i] = ref
		if !c.tenv.Enter(decl.Name, ref) {
			c.fail(diag.SemaRedeclaration, decl.Loc, "%q is already declared in this scope", c.symbols.Name(decl.Name))
		}
	}

	for i, decl := range g.Decls {
		resolved := c.transTy(decl.Type)
		types.Resolve(refs[i], resolved)
	}
}

// transFuncDecGroup is the two-pass fixed point of §4.7: install every
// signature first so mutually recursive calls resolve, then typecheck
// every body against its own signature.
func (c *checker) transFuncDecGroup(g *ast.FuncDecGroup) {
	seen := make(map[uint32]bool, len(g.Decls))

	for _, decl := range g.Decls {
		if seen[uint32(decl.Name)] {
			c.fail(diag.SemaDuplicateName, decl.Loc, "duplicate function name %q in mutually recursive group", c.symbols.Name(decl.Name))
		}
		seen[uint32(decl.Name)] = true

		result := types.UnitType()
		if decl.ResultName != ast.NoSymbolSpan {
			r, ok := c.tenv.Lookup(decl.ResultName)
			if !ok {
				c.fail(diag.SemaUndefinedSymbol, decl.ResultLoc, "undefined type %q", c.symbols.Name(decl.ResultName))
			}
			result = r
		}

		formals := make([]*types.Type, len(decl.Params))
		for i, p := range decl.Params {
			pt, ok := c.tenv.Lookup(p.Type)
			if !ok {
				c.fail(diag.SemaUndefinedSymbol, p.Loc, "undefined type %q", c.symbols.Name(p.Type))
			}
			formals[i] = pt
		}

		if !c.venv.Enter(decl.Name, env.NewFunEntry(formals, result)) {
			c.fail(diag.SemaRedeclaration, decl.Loc, "%q is already declared in this scope", c.symbols.Name(decl.Name))
		}
	}

	for _, decl := range g.Decls {
		c.transFuncBody(decl)
	}
}

// transFuncBody typechecks one function's body against its
// already-installed signature. It is its own function, not inlined
// into transFuncDecGroup's loop, so the deferred scope/loop-context
// pops run at the end of each iteration rather than at the end of the
// whole group — required for the push/pop pairing to hold even when a
// body aborts analysis partway through (spec §5).
func (c *checker) transFuncBody(decl ast.FuncDecl) {
	entry, _ := c.venv.Lookup(decl.Name)

	seenParam := make(map[uint32]bool, len(decl.Params))
	for _, p := range decl.Params {
		if seenParam[uint32(p.Name)] {
			c.fail(diag.SemaDuplicateName, p.Loc, "duplicate parameter name %q", c.symbols.Name(p.Name))
		}
		seenParam[uint32(p.Name)] = true
	}

	popV := c.venv.PushScope()
	defer popV()
	for i, p := range decl.Params {
		c.venv.Enter(p.Name, env.NewVarEntry(entry.Formals[i]))
	}

	c.loops.enterFun()
	defer c.loops.exitFun()
	bodyTy := c.transExp(decl.Body)

	if !c.compatible(bodyTy, entry.Result, decl.Loc) {
		c.fail(diag.SemaTypeMismatch, decl.Loc, "body of %q is not compatible with its declared result type", c.symbols.Name(decl.Name))
	}
}
