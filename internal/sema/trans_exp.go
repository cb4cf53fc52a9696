package sema

import (
	"tiger/internal/ast"
	"tiger/internal/diag"
	"tiger/internal/env"
	"tiger/internal/types"
)

// transExp is trans_exp (spec §4.5): the type of an expression.
func (c *checker) transExp(e ast.Expr) *types.Type {
	switch n := e.(type) {
	case *ast.NilExpr:
		return types.NilType()
	case *ast.IntExpr:
		return types.IntType()
	case *ast.StringExpr:
		return types.StringType()
	case *ast.UnitExpr:
		return types.UnitType()

	case *ast.VarExpr:
		return c.transVar(n.Var)

	case *ast.CallExpr:
		return c.transCall(n)

	case *ast.OpExpr:
		return c.transOp(n)

	case *ast.RecordExpr:
		return c.transRecord(n)

	case *ast.ArrayExpr:
		return c.transArray(n)

	case *ast.SeqExpr:
		if len(n.Exprs) == 0 {
			return types.UnitType()
		}
		var last *types.Type
		for _, sub := range n.Exprs {
			last = c.transExp(sub)
		}
		return last

	case *ast.AssignExpr:
		dst := c.transVar(n.Var)
		src := c.transExp(n.Value)
		if c.actualTyOrFail(src, n.Loc).Kind == types.Unit {
			c.fail(diag.SemaUnitInAssignment, n.Loc, "cannot assign a unit-valued expression")
		}
		if !c.compatible(src, dst, n.Loc) {
			c.fail(diag.SemaTypeMismatch, n.Loc, "assignment value is not compatible with the variable's type")
		}
		return types.UnitType()

	case *ast.IfExpr:
		return c.transIf(n)

	case *ast.WhileExpr:
		return c.transWhile(n)

	case *ast.ForExpr:
		return c.transFor(n)

	case *ast.BreakExpr:
		if !c.loops.inLoop() {
			c.fail(diag.SemaBreakOutsideLoop, n.Loc, "break outside any enclosing loop")
		}
		return types.UnitType()

	case *ast.LetExpr:
		return c.transLet(n)

	default:
		c.internalError("trans_exp: unhandled expr node %T", e)
		return nil
	}
}

func (c *checker) transCall(n *ast.CallExpr) *types.Type {
	entry, ok := c.venv.Lookup(n.Func)
	if !ok {
		c.fail(diag.SemaUndefinedSymbol, n.Loc, "undefined function %q", c.symbols.Name(n.Func))
	}
	if entry.Kind != env.FunEntryKind {
		c.fail(diag.SemaKindMismatch, n.Loc, "%q is a variable, not a function", c.symbols.Name(n.Func))
	}
	if len(n.Args) != len(entry.Formals) {
		c.fail(diag.SemaTypeMismatch, n.Loc, "%q expects %d argument(s), got %d",
			c.symbols.Name(n.Func), len(entry.Formals), len(n.Args))
	}
	for i, arg := range n.Args {
		argTy := c.transExp(arg)
		if !c.compatible(argTy, entry.Formals[i], arg.Location()) {
			c.fail(diag.SemaTypeMismatch, arg.Location(), "argument %d is not compatible with the declared parameter type", i+1)
		}
	}
	return entry.Result
}

func (c *checker) transOp(n *ast.OpExpr) *types.Type {
	lhs := c.transExp(n.Lhs)
	rhs := c.transExp(n.Rhs)
	switch {
	case n.Op.IsArithmetic():
		if c.actualTyOrFail(lhs, n.Loc).Kind != types.Int {
			c.fail(diag.SemaTypeMismatch, n.Loc, "left operand of %s must be int", n.Op)
		}
		if c.actualTyOrFail(rhs, n.Loc).Kind != types.Int {
			c.fail(diag.SemaTypeMismatch, n.Loc, "right operand of %s must be int", n.Op)
		}
	case n.Op.IsOrdering():
		lk := c.actualTyOrFail(lhs, n.Loc).Kind
		if lk != types.Int && lk != types.String {
			c.fail(diag.SemaTypeMismatch, n.Loc, "operands of %s must be int or string", n.Op)
		}
		if !c.compatible(rhs, lhs, n.Loc) {
			c.fail(diag.SemaTypeMismatch, n.Loc, "operands of %s must have the same type", n.Op)
		}
	case n.Op.IsEquality():
		lk := c.actualTyOrFail(lhs, n.Loc).Kind
		switch lk {
		case types.Int, types.String, types.Record, types.Array, types.Nil:
		default:
			c.fail(diag.SemaTypeMismatch, n.Loc, "operands of %s cannot be compared", n.Op)
		}
		if !c.compatible(lhs, rhs, n.Loc) && !c.compatible(rhs, lhs, n.Loc) {
			c.fail(diag.SemaTypeMismatch, n.Loc, "operands of %s are not comparable", n.Op)
		}
	default: // logical & |
		if c.actualTyOrFail(lhs, n.Loc).Kind != types.Int {
			c.fail(diag.SemaTypeMismatch, n.Loc, "left operand of %s must be int", n.Op)
		}
		if c.actualTyOrFail(rhs, n.Loc).Kind != types.Int {
			c.fail(diag.SemaTypeMismatch, n.Loc, "right operand of %s must be int", n.Op)
		}
	}
	return types.IntType()
}

func (c *checker) transRecord(n *ast.RecordExpr) *types.Type {
	declared, ok := c.tenv.Lookup(n.Type)
	if !ok {
		c.fail(diag.SemaUndefinedSymbol, n.Loc, "undefined type %q", c.symbols.Name(n.Type))
	}
	rec := c.actualTyOrFail(declared, n.Loc)
	if rec.Kind != types.Record {
		c.fail(diag.SemaKindMismatch, n.Loc, "%q is not a record type", c.symbols.Name(n.Type))
	}
	if len(n.Fields) != len(rec.Fields) {
		c.fail(diag.SemaTypeMismatch, n.Loc, "record literal has %d field(s), type declares %d", len(n.Fields), len(rec.Fields))
	}
	for i, f := range n.Fields {
		want := rec.Fields[i]
		if f.Name != want.Name {
			c.fail(diag.SemaTypeMismatch, f.Loc, "field %d should be named %q, got %q", i+1, c.symbols.Name(want.Name), c.symbols.Name(f.Name))
		}
		valTy := c.transExp(f.Value)
		if !c.compatible(valTy, want.Type, f.Loc) {
			c.fail(diag.SemaTypeMismatch, f.Loc, "field %q's value is not compatible with its declared type", c.symbols.Name(f.Name))
		}
	}
	return declared
}

func (c *checker) transArray(n *ast.ArrayExpr) *types.Type {
	declared, ok := c.tenv.Lookup(n.Type)
	if !ok {
		c.fail(diag.SemaUndefinedSymbol, n.Loc, "undefined type %q", c.symbols.Name(n.Type))
	}
	arr := c.actualTyOrFail(declared, n.Loc)
	if arr.Kind != types.Array {
		c.fail(diag.SemaKindMismatch, n.Loc, "%q is not an array type", c.symbols.Name(n.Type))
	}
	sizeTy := c.transExp(n.Size)
	if c.actualTyOrFail(sizeTy, n.Loc).Kind != types.Int {
		c.fail(diag.SemaTypeMismatch, n.Loc, "array size must be int")
	}
	initTy := c.transExp(n.Init)
	if !c.compatible(initTy, arr.Elem, n.Loc) {
		c.fail(diag.SemaTypeMismatch, n.Loc, "array init value is not compatible with the element type")
	}
	return declared
}

func (c *checker) transIf(n *ast.IfExpr) *types.Type {
	cond := c.transExp(n.Cond)
	if c.actualTyOrFail(cond, n.Loc).Kind != types.Int {
		c.fail(diag.SemaTypeMismatch, n.Loc, "if condition must be int")
	}
	thenTy := c.transExp(n.Then)
	if n.Else == nil {
		if c.actualTyOrFail(thenTy, n.Loc).Kind != types.Unit {
			c.fail(diag.SemaTypeMismatch, n.Loc, "if without else must have a unit-valued branch")
		}
		return types.UnitType()
	}
	elseTy := c.transExp(n.Else)
	if c.equals(thenTy, elseTy, n.Loc) {
		return thenTy
	}
	thenActual := c.actualTyOrFail(thenTy, n.Loc)
	elseActual := c.actualTyOrFail(elseTy, n.Loc)
	if thenActual.Kind == types.Nil && elseActual.Kind == types.Record {
		return elseTy
	}
	if elseActual.Kind == types.Nil && thenActual.Kind == types.Record {
		return thenTy
	}
	c.fail(diag.SemaTypeMismatch, n.Loc, "if branches have incompatible types")
	return nil
}

func (c *checker) transWhile(n *ast.WhileExpr) *types.Type {
	cond := c.transExp(n.Cond)
	if c.actualTyOrFail(cond, n.Loc).Kind != types.Int {
		c.fail(diag.SemaTypeMismatch, n.Loc, "while condition must be int")
	}
	c.loops.enterLoop()
	bodyTy := c.transExp(n.Body)
	c.loops.exitLoop()
	if c.actualTyOrFail(bodyTy, n.Loc).Kind != types.Unit {
		c.fail(diag.SemaTypeMismatch, n.Loc, "while body must be unit-valued")
	}
	return types.UnitType()
}

func (c *checker) transFor(n *ast.ForExpr) *types.Type {
	lo := c.transExp(n.Lo)
	if c.actualTyOrFail(lo, n.Loc).Kind != types.Int {
		c.fail(diag.SemaTypeMismatch, n.Loc, "for loop's lower bound must be int")
	}
	hi := c.transExp(n.Hi)
	if c.actualTyOrFail(hi, n.Loc).Kind != types.Int {
		c.fail(diag.SemaTypeMismatch, n.Loc, "for loop's upper bound must be int")
	}
	popV := c.venv.PushScope()
	defer popV()
	c.venv.Enter(n.Var, env.NewVarEntry(types.IntType()))

	c.loops.enterLoop()
	bodyTy := c.transExp(n.Body)
	c.loops.exitLoop()
	if c.actualTyOrFail(bodyTy, n.Loc).Kind != types.Unit {
		c.fail(diag.SemaTypeMismatch, n.Loc, "for body must be unit-valued")
	}
	return types.UnitType()
}

func (c *checker) transLet(n *ast.LetExpr) *types.Type {
	popV := c.venv.PushScope()
	defer popV()
	popT := c.tenv.PushScope()
	defer popT()

	for _, dec := range n.Decs {
		c.transDec(dec)
	}
	return c.transExp(n.Body)
}
