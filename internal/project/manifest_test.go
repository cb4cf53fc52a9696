package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, manifestFileName), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadWalksUpToAncestorDirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[check]\nentry = \"main.tig\"\n")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Fatalf("got root %q, want %q", m.Root, root)
	}
}

func TestSourcesResolvesSingleEntry(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[check]\nentry = \"src/main.tig\"\n")

	m, ok, err := Load(root)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	sources, err := m.Sources()
	if err != nil {
		t.Fatalf("Sources: %v", err)
	}
	if len(sources) != 1 || sources[0] != filepath.Join(root, "src", "main.tig") {
		t.Fatalf("got %v", sources)
	}
}

func TestSourcesGlobsSourceDirSortedByName(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[check]\nsource_dir = \"src\"\n")
	srcDir := filepath.Join(root, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	for _, name := range []string{"b.tig", "a.tig", "ignore.txt"} {
		if err := os.WriteFile(filepath.Join(srcDir, name), []byte("0"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	m, ok, err := Load(root)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	sources, err := m.Sources()
	if err != nil {
		t.Fatalf("Sources: %v", err)
	}
	want := []string{filepath.Join(srcDir, "a.tig"), filepath.Join(srcDir, "b.tig")}
	if len(sources) != len(want) || sources[0] != want[0] || sources[1] != want[1] {
		t.Fatalf("got %v, want %v", sources, want)
	}
}

func TestLoadRejectsEntryAndSourceDirTogether(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[check]\nentry = \"main.tig\"\nsource_dir = \"src\"\n")

	if _, _, err := Load(root); err == nil {
		t.Fatal("expected error for mutually exclusive entry and source_dir")
	}
}

func TestLoadReturnsFalseWhenNoManifestExists(t *testing.T) {
	root := t.TempDir()
	_, ok, err := Load(root)
	if err != nil || ok {
		t.Fatalf("Load: ok=%v err=%v, want a clean miss", ok, err)
	}
}

func TestSourcesRejectsMissingConfig(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[check]\n")

	m, ok, err := Load(root)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if _, err := m.Sources(); err == nil {
		t.Fatal("expected error when neither entry nor source_dir is set")
	}
}
