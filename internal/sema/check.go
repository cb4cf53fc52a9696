// Package sema is the core translator (spec §4.5-§4.9): the three
// mutually recursive procedures trans_exp, trans_var, and trans_dec,
// plus the trans_ty helper, realized as an exhaustive type switch over
// the closed ast.Expr/ast.Var/ast.Dec/ast.Ty sums.
package sema

import (
	"fmt"

	"tiger/internal/ast"
	"tiger/internal/diag"
	"tiger/internal/env"
	"tiger/internal/source"
	"tiger/internal/symbol"
	"tiger/internal/types"
)

// Options configures one analysis run.
type Options struct {
	// Symbols is the intern table the AST's symbols were already
	// interned through (spec §6's input contract).
	Symbols *symbol.Table
	// Reporter receives every diagnostic. If nil, diagnostics are
	// discarded.
	Reporter diag.Reporter
	// Builtins are additional Venv entries to seed before analysis,
	// e.g. from DefaultBuiltins. May be nil.
	Builtins map[string]env.ValueEntry
}

// Result is the success half of spec §6's output contract.
type Result struct {
	Type     *types.Type
	Universe *types.Universe
	Venv     *env.Venv
	Tenv     *env.Tenv
}

// checker carries the mutable state the three translation procedures
// thread through recursive calls: the environments, the loop context,
// the type universe, and the diagnostic reporter.
type checker struct {
	symbols  *symbol.Table
	reporter diag.Reporter
	universe *types.Universe
	venv     *env.Venv
	tenv     *env.Tenv
	loops    *loopStack
}

// abort is the panic payload used to unwind out of a recursive descent
// the moment the first diagnostic is reported (spec §4.10: "first
// semantic violation terminates analysis ... no recovery"). This is the
// idiomatic Go counterpart to the original C++ implementation's
// CHECK-macro-throws-an-exception design: one recovery point at Check,
// no error value threaded through every return.
type abort struct{}

// fail reports a diagnostic and unwinds to Check's recover point.
func (c *checker) fail(code diag.Code, at source.Location, msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	c.reporter.Report(diag.NewError(code, at, msg))
	panic(abort{})
}

// internalError reports an invariant violation distinguishable from an
// ordinary diagnostic (spec §7) and unwinds the same way.
func (c *checker) internalError(msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	c.reporter.Report(diag.NewInternal(msg))
	panic(abort{})
}

// Check translates root under a fresh Venv/Tenv/Universe (spec §6: the
// initial environments). It returns the root expression's type and
// true on success, or zero value and false after having reported
// exactly one diagnostic via opts.Reporter.
func Check(root ast.Expr, opts Options) (res Result, ok bool) {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	c := &checker{
		symbols:  opts.Symbols,
		reporter: opts.Reporter,
		universe: types.NewUniverse(),
		venv:     env.NewVenv(),
		tenv:     env.NewTenv(),
		loops:    newLoopStack(),
	}
	seedTenv(c.tenv, c.symbols)
	InstallBuiltins(c.venv, c.symbols, opts.Builtins)

	defer func() {
		if r := recover(); r != nil {
			if _, isAbort := r.(abort); isAbort {
				ok = false
				return
			}
			panic(r) // a genuine programming bug elsewhere; don't swallow it
		}
	}()

	c.loops.enterFun() // the implicit top-level function context (spec §8 scenario 6)
	defer c.loops.exitFun()

	ty := c.transExp(root)
	return Result{Type: ty, Universe: c.universe, Venv: c.venv, Tenv: c.tenv}, true
}
