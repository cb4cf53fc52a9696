package env

import (
	"testing"

	"tiger/internal/symbol"
	"tiger/internal/types"
)

func TestEnterRejectsRedeclarationInSameFrame(t *testing.T) {
	tenv := NewTenv()
	x := symbol.Symbol(1)
	if !tenv.Enter(x, types.IntType()) {
		t.Fatalf("first Enter should succeed")
	}
	if tenv.Enter(x, types.StringType()) {
		t.Fatalf("second Enter into the same frame should be rejected")
	}
}

func TestPushScopeShadowsWithoutError(t *testing.T) {
	tenv := NewTenv()
	x := symbol.Symbol(1)
	tenv.Enter(x, types.IntType())

	pop := tenv.PushScope()
	if !tenv.Enter(x, types.StringType()) {
		t.Fatalf("a new scope may rebind an outer name")
	}
	got, ok := tenv.Lookup(x)
	if !ok || got.Kind != types.String {
		t.Fatalf("lookup should see the inner binding")
	}
	pop()

	got, ok = tenv.Lookup(x)
	if !ok || got.Kind != types.Int {
		t.Fatalf("lookup after pop should see the outer binding again")
	}
}

func TestScopeDepthRestoredAfterPop(t *testing.T) {
	tenv := NewTenv()
	before := tenv.Depth()
	pop := tenv.PushScope()
	pop()
	if tenv.Depth() != before {
		t.Fatalf("depth %d, want %d", tenv.Depth(), before)
	}
}

func TestLookupMissing(t *testing.T) {
	venv := NewVenv()
	if _, ok := venv.Lookup(symbol.Symbol(99)); ok {
		t.Fatalf("expected lookup of an unbound symbol to fail")
	}
}
