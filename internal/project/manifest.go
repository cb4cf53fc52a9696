// Package project implements the optional tiger.toml project manifest
// (SPEC_FULL.md §B): a small TOML file naming either a single entry
// file or a directory of *.tig sources to check, plus an optional cap
// on how many diagnostics each checked file may accumulate.
// Decoded with github.com/BurntSushi/toml, the library the example
// corpus decodes its own surge.toml with; the walk-up-to-find-it
// search is the same idea as the corpus's surge.toml lookup, reworked
// around this analyzer's own entry/source-dir/diagnostics-cap fields.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const manifestFileName = "tiger.toml"

// sourceExt is the file extension Sources globs for when a manifest
// names a SourceDir instead of a single Entry.
const sourceExt = ".tig"

// Manifest is a loaded tiger.toml together with the directory it was
// found in, which every relative path inside it resolves against.
type Manifest struct {
	Path string
	Root string
	Config
}

// Config is the decoded [check] shape of tiger.toml.
type Config struct {
	Check CheckConfig `toml:"check"`
}

// CheckConfig configures one `tigerc check` run over this project. The
// zero value is meaningful: no entry and no source directory means
// "the caller must name files explicitly".
type CheckConfig struct {
	// Entry is the single source file analyzed when no files are named
	// explicitly on the command line. Mutually exclusive with SourceDir.
	Entry string `toml:"entry"`
	// SourceDir, when Entry is empty, is a directory checked in full:
	// every *.tig file directly in it, sorted for deterministic ordering.
	// Subdirectories are not searched.
	SourceDir string `toml:"source_dir"`
	// MaxDiagnostics caps how many diagnostics a single file's bag may
	// accumulate; 0 means unlimited. The core analyzer itself always
	// stops at the first error (spec §4.10) — this only matters for the
	// lexer/parser front end's own diagnostics and gives callers a way
	// to bound how noisy a run against many files can get.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// findRoot walks up from startDir looking for a directory containing
// tiger.toml.
func findRoot(startDir string) (root string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, manifestFileName)); err == nil {
			return dir, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", dir, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load finds and decodes the tiger.toml nearest to startDir, if any.
func Load(startDir string) (*Manifest, bool, error) {
	root, ok, err := findRoot(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	path := filepath.Join(root, manifestFileName)
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Check.Entry != "" && cfg.Check.SourceDir != "" {
		return nil, true, fmt.Errorf("%s: [check].entry and [check].source_dir are mutually exclusive", path)
	}
	return &Manifest{Path: path, Root: root, Config: cfg}, true, nil
}

// Sources resolves the manifest's [check] section to a concrete,
// sorted list of files to analyze: one path for Entry, or every *.tig
// file directly in SourceDir (subdirectories are not searched).
func (m *Manifest) Sources() ([]string, error) {
	switch {
	case m.Check.Entry != "":
		return []string{filepath.Join(m.Root, filepath.FromSlash(m.Check.Entry))}, nil
	case m.Check.SourceDir != "":
		dir := filepath.Join(m.Root, filepath.FromSlash(m.Check.SourceDir))
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read [check].source_dir: %w", m.Path, err)
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), sourceExt) {
				continue
			}
			files = append(files, filepath.Join(dir, e.Name()))
		}
		sort.Strings(files)
		if len(files) == 0 {
			return nil, fmt.Errorf("%s: [check].source_dir %q has no %s files", m.Path, m.Check.SourceDir, sourceExt)
		}
		return files, nil
	default:
		return nil, fmt.Errorf("%s: missing [check].entry or [check].source_dir", m.Path)
	}
}
