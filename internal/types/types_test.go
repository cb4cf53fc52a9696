package types

import (
	"testing"

	"tiger/internal/symbol"
)

func TestPrimitiveEquality(t *testing.T) {
	if !Equals(IntType(), IntType()) {
		t.Fatalf("Int should equal Int")
	}
	if Equals(IntType(), StringType()) {
		t.Fatalf("Int should not equal String")
	}
}

func TestNilNeverEqualsNil(t *testing.T) {
	if Equals(NilType(), NilType()) {
		t.Fatalf("spec requires Nil != Nil")
	}
}

func TestNominalIdentity(t *testing.T) {
	u := NewUniverse()
	r1 := u.NewRecord([]Field{{Type: IntType()}})
	r2 := u.NewRecord([]Field{{Type: IntType()}})
	if Equals(r1, r2) {
		t.Fatalf("two make_record calls with identical fields must not be equal")
	}
	if !Equals(r1, r1) {
		t.Fatalf("a record type must equal itself")
	}
}

func TestNilCompatibleWithRecordOnly(t *testing.T) {
	u := NewUniverse()
	rec := u.NewRecord([]Field{{Type: IntType()}})
	if !IsCompatible(NilType(), rec) {
		t.Fatalf("nil must be compatible with a record type")
	}
	if IsCompatible(NilType(), IntType()) {
		t.Fatalf("nil must not be compatible with int")
	}
	if IsCompatible(NilType(), StringType()) {
		t.Fatalf("nil must not be compatible with string")
	}
	arr := u.NewArray(IntType())
	if IsCompatible(NilType(), arr) {
		t.Fatalf("nil must not be compatible with an array type")
	}
}

func TestActualTyChasesNameRef(t *testing.T) {
	u := NewUniverse()
	sym := symbol.Symbol(1)
	ref := u.NewNameRef(sym)
	Resolve(ref, IntType())
	actual, ok := ActualTy(ref)
	if !ok || actual.Kind != Int {
		t.Fatalf("expected ActualTy(ref) to resolve to Int, got %+v ok=%v", actual, ok)
	}
}

func TestActualTyDetectsUnresolved(t *testing.T) {
	u := NewUniverse()
	ref := u.NewNameRef(symbol.Symbol(1))
	if _, ok := ActualTy(ref); ok {
		t.Fatalf("expected ActualTy to fail on an unresolved NameRef")
	}
}

func TestActualTyDetectsCycle(t *testing.T) {
	u := NewUniverse()
	a := u.NewNameRef(symbol.Symbol(1))
	b := u.NewNameRef(symbol.Symbol(2))
	Resolve(a, b)
	Resolve(b, a)
	if _, ok := ActualTy(a); ok {
		t.Fatalf("expected ActualTy to detect a cycle of name-only aliases")
	}
}

func TestActualTyIdempotent(t *testing.T) {
	u := NewUniverse()
	ref := u.NewNameRef(symbol.Symbol(1))
	rec := u.NewRecord(nil)
	Resolve(ref, rec)
	once, _ := ActualTy(ref)
	twice, _ := ActualTy(once)
	if once != twice {
		t.Fatalf("ActualTy should be idempotent")
	}
}
