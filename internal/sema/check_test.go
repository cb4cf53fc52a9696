package sema

import (
	"testing"

	"tiger/internal/diag"
	"tiger/internal/lexer"
	"tiger/internal/parser"
	"tiger/internal/symbol"
	"tiger/internal/types"
)

// analyze runs the full lex/parse/check pipeline the way cmd/tigerc
// does, so these tests exercise the translator the way a real caller
// would rather than by hand-building AST nodes.
func analyze(t *testing.T, src string) (Result, *diag.Bag, bool) {
	t.Helper()
	symbols := symbol.NewTable()
	bag := &diag.Bag{}
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New([]byte(src), symbols, reporter)
	root, ok := parser.ParseProgram(lx, symbols, reporter)
	if !ok {
		return Result{}, bag, false
	}
	res, ok := Check(root, Options{Symbols: symbols, Reporter: reporter})
	return res, bag, ok
}

func TestScenarioSimpleArithmetic(t *testing.T) {
	res, bag, ok := analyze(t, `let var x : int := 0 in x + 1 end`)
	if !ok {
		t.Fatalf("unexpected failure: %v", bag.Items())
	}
	if res.Type.Kind != types.Int {
		t.Errorf("got %v, want Int", res.Type.Kind)
	}
}

func TestScenarioRecursiveRecordList(t *testing.T) {
	res, bag, ok := analyze(t, `
		let
			type intlist = { hd: int, tl: intlist }
			var l : intlist := intlist { hd = 1, tl = nil }
		in
			l.hd
		end`)
	if !ok {
		t.Fatalf("unexpected failure: %v", bag.Items())
	}
	if res.Type.Kind != types.Int {
		t.Errorf("got %v, want Int", res.Type.Kind)
	}
}

func TestScenarioRecursiveFunction(t *testing.T) {
	res, bag, ok := analyze(t, `
		let
			function f(x: int): int = if x = 0 then 1 else x * f(x-1)
		in
			f(5)
		end`)
	if !ok {
		t.Fatalf("unexpected failure: %v", bag.Items())
	}
	if res.Type.Kind != types.Int {
		t.Errorf("got %v, want Int", res.Type.Kind)
	}
}

func TestScenarioArrayDeclareIndexAssign(t *testing.T) {
	res, bag, ok := analyze(t, `
		let
			type intArray = array of int
			var a := intArray [10] of 0
		in
			a[3] := 7; a[3]
		end`)
	if !ok {
		t.Fatalf("unexpected failure: %v", bag.Items())
	}
	if res.Type.Kind != types.Int {
		t.Errorf("got %v, want Int", res.Type.Kind)
	}
}

func TestScenarioMissingAnnotationOnNil(t *testing.T) {
	_, bag, ok := analyze(t, `let var x := nil in x end`)
	if ok {
		t.Fatal("expected failure")
	}
	if got := bag.Items()[0].Code; got != diag.SemaMissingAnnotation {
		t.Errorf("got %v, want SemaMissingAnnotation", got)
	}
}

func TestScenarioBreakOutsideLoop(t *testing.T) {
	_, bag, ok := analyze(t, `break`)
	if ok {
		t.Fatal("expected failure")
	}
	if got := bag.Items()[0].Code; got != diag.SemaBreakOutsideLoop {
		t.Errorf("got %v, want SemaBreakOutsideLoop", got)
	}
}

func TestScenarioDuplicateNameInTypeGroup(t *testing.T) {
	_, bag, ok := analyze(t, `
		let
			type a = int
			type a = string
		in
			0
		end`)
	if ok {
		t.Fatal("expected failure")
	}
	if got := bag.Items()[0].Code; got != diag.SemaDuplicateName {
		t.Errorf("got %v, want SemaDuplicateName", got)
	}
}

func TestScenarioCyclicTypeAlias(t *testing.T) {
	_, bag, ok := analyze(t, `
		let
			type a = b
			type b = a
			var x : a := nil
		in
			0
		end`)
	if ok {
		t.Fatal("expected failure")
	}
	if got := bag.Items()[0].Code; got != diag.SemaIncompleteOrCyclic {
		t.Errorf("got %v, want SemaIncompleteOrCyclic", got)
	}
}

func TestScenarioNilNilComparisonRejected(t *testing.T) {
	_, bag, ok := analyze(t, `nil = nil`)
	if ok {
		t.Fatal("expected failure")
	}
	if got := bag.Items()[0].Code; got != diag.SemaTypeMismatch {
		t.Errorf("got %v, want SemaTypeMismatch", got)
	}
}

func TestScenarioIfWithoutElseRequiresUnitBranch(t *testing.T) {
	_, bag, ok := analyze(t, `if 1 then 2`)
	if ok {
		t.Fatal("expected failure")
	}
	if got := bag.Items()[0].Code; got != diag.SemaTypeMismatch {
		t.Errorf("got %v, want SemaTypeMismatch", got)
	}
}

func TestScenarioEmptyLetEqualsBody(t *testing.T) {
	res, bag, ok := analyze(t, `let in 42 end`)
	if !ok {
		t.Fatalf("unexpected failure: %v", bag.Items())
	}
	if res.Type.Kind != types.Int {
		t.Errorf("got %v, want Int", res.Type.Kind)
	}
}

func TestScenarioTwoNominalRecordsFromSameShapeAreDistinct(t *testing.T) {
	_, bag, ok := analyze(t, `
		let
			type p1 = { x: int }
			type p2 = { x: int }
			var a : p1 := nil
			var b : p2 := nil
		in
			a = b
		end`)
	if ok {
		t.Fatal("expected failure")
	}
	if got := bag.Items()[0].Code; got != diag.SemaTypeMismatch {
		t.Errorf("got %v, want SemaTypeMismatch", got)
	}
}
