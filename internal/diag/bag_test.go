package diag

import (
	"testing"

	"tiger/internal/source"
)

func TestBagSortOrdersByLocation(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(SemaTypeMismatch, source.Location{Line: 3, Column: 1}, "z"))
	b.Add(NewError(SemaUndefinedSymbol, source.Location{Line: 1, Column: 5}, "a"))
	b.Add(NewError(SemaUndefinedSymbol, source.Location{Line: 1, Column: 1}, "b"))
	b.Sort()
	items := b.Items()
	if items[0].Message != "b" || items[1].Message != "a" || items[2].Message != "z" {
		t.Fatalf("unexpected sort order: %+v", items)
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(0)
	if b.HasErrors() {
		t.Fatalf("empty bag should not report errors")
	}
	b.Add(New(SevWarning, UnknownCode, source.NoLocation, "warn"))
	if b.HasErrors() {
		t.Fatalf("warning-only bag should not report errors")
	}
	b.Add(NewError(SemaInternalError, source.NoLocation, "boom"))
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors after adding an error diagnostic")
	}
}

func TestBagCapDropsBeyondLimit(t *testing.T) {
	b := NewBag(2)
	if ok := b.Add(NewError(SemaUndefinedSymbol, source.NoLocation, "a")); !ok {
		t.Fatalf("expected first Add under cap to succeed")
	}
	if ok := b.Add(NewError(SemaUndefinedSymbol, source.NoLocation, "b")); !ok {
		t.Fatalf("expected second Add under cap to succeed")
	}
	if ok := b.Add(NewError(SemaUndefinedSymbol, source.NoLocation, "c")); ok {
		t.Fatalf("expected third Add to be dropped once the cap is reached")
	}
	if b.Len() != 2 {
		t.Fatalf("got %d items, want 2", b.Len())
	}
}

func TestBagZeroCapIsUnlimited(t *testing.T) {
	b := &Bag{}
	for i := 0; i < 10; i++ {
		b.Add(NewError(SemaUndefinedSymbol, source.NoLocation, "x"))
	}
	if b.Len() != 10 {
		t.Fatalf("got %d items, want 10 — a zero-value Bag must not cap", b.Len())
	}
}
