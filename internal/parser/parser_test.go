package parser

import (
	"testing"

	"tiger/internal/ast"
	"tiger/internal/lexer"
	"tiger/internal/symbol"
)

func parse(t *testing.T, src string) (ast.Expr, bool) {
	t.Helper()
	symbols := symbol.NewTable()
	lx := lexer.New([]byte(src), symbols, nil)
	return ParseProgram(lx, symbols, nil)
}

func TestParsesArithmeticPrecedence(t *testing.T) {
	root, ok := parse(t, "1 + 2 * 3")
	if !ok {
		t.Fatal("expected successful parse")
	}
	op, isOp := root.(*ast.OpExpr)
	if !isOp || op.Op != ast.OpAdd {
		t.Fatalf("got %#v, want top-level OpAdd", root)
	}
	if _, isMul := op.Rhs.(*ast.OpExpr); !isMul {
		t.Fatalf("got %#v, want the multiplication nested on the right", op.Rhs)
	}
}

func TestParsesUnaryMinusAsDesugaredSubtraction(t *testing.T) {
	root, ok := parse(t, "-5")
	if !ok {
		t.Fatal("expected successful parse")
	}
	op, isOp := root.(*ast.OpExpr)
	if !isOp || op.Op != ast.OpSub {
		t.Fatalf("got %#v, want OpSub(0, 5)", root)
	}
	lit, isInt := op.Lhs.(*ast.IntExpr)
	if !isInt || lit.Value != 0 {
		t.Fatalf("got %#v, want left operand 0", op.Lhs)
	}
}

func TestDisambiguatesArrayLiteralFromIndexedLValue(t *testing.T) {
	root, ok := parse(t, "intArray [10] of 0")
	if !ok {
		t.Fatal("expected successful parse")
	}
	if _, isArray := root.(*ast.ArrayExpr); !isArray {
		t.Fatalf("got %#v, want ArrayExpr", root)
	}

	root, ok = parse(t, "a[3]")
	if !ok {
		t.Fatal("expected successful parse")
	}
	v, isVar := root.(*ast.VarExpr)
	if !isVar {
		t.Fatalf("got %#v, want VarExpr wrapping an IndexVar", root)
	}
	if _, isIndex := v.Var.(*ast.IndexVar); !isIndex {
		t.Fatalf("got %#v, want IndexVar", v.Var)
	}
}

func TestParsesLetWithMutuallyRecursiveFunctions(t *testing.T) {
	root, ok := parse(t, `
		let
			function even(n: int): int = if n = 0 then 1 else odd(n - 1)
			function odd(n: int): int = if n = 0 then 0 else even(n - 1)
		in
			even(4)
		end`)
	if !ok {
		t.Fatal("expected successful parse")
	}
	let, isLet := root.(*ast.LetExpr)
	if !isLet || len(let.Decs) != 1 {
		t.Fatalf("got %#v, want one FuncDecGroup", root)
	}
	group, isGroup := let.Decs[0].(*ast.FuncDecGroup)
	if !isGroup || len(group.Decls) != 2 {
		t.Fatalf("got %#v, want a two-member FuncDecGroup", let.Decs[0])
	}
}

func TestRejectsMalformedProgram(t *testing.T) {
	if _, ok := parse(t, "let var x := in x end"); ok {
		t.Fatal("expected parse failure")
	}
}
