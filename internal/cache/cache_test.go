package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreHitMiss(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)

	hash := HashContent([]byte("let in 0 end"))
	if _, ok := s.Lookup(hash); ok {
		t.Fatal("expected miss before any Store call")
	}

	entry := Entry{
		ContentHash: hash,
		OK:          true,
		Type:        "Int",
		Diagnostics: []CachedDiagnostic{{Severity: 2, Code: 3002, Message: "boom", Line: 1, Column: 5}},
	}
	if err := s.Store(entry); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok := s.Lookup(hash)
	if !ok {
		t.Fatal("expected hit after Store")
	}
	if got.Type != "Int" || !got.OK || len(got.Diagnostics) != 1 {
		t.Fatalf("got %+v", got)
	}

	otherHash := HashContent([]byte("1 + 1"))
	if _, ok := s.Lookup(otherHash); ok {
		t.Fatal("expected miss for different content")
	}
}

func TestLookupIgnoresCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)
	hash := HashContent([]byte("x"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, hash+".cache"), []byte("not msgpack"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, ok := s.Lookup(hash); ok {
		t.Fatal("expected corrupt cache entry to miss, not panic or falsely hit")
	}
}
