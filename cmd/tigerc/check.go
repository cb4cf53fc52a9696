package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tiger/internal/cache"
	"tiger/internal/diag"
	"tiger/internal/lexer"
	"tiger/internal/parser"
	"tiger/internal/project"
	"tiger/internal/sema"
	"tiger/internal/source"
	"tiger/internal/symbol"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]...",
	Short: "Analyze one or more Tiger source files",
	Long:  "Analyze one or more Tiger source files. With no files named, tigerc looks for a tiger.toml manifest in the current directory or an ancestor of it and checks the file(s) it names.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCheck,
}

var (
	useCache   bool
	cacheDir   string
	useBuiltin bool
)

func init() {
	checkCmd.Flags().BoolVar(&useCache, "cache", false, "skip files whose content hash is unchanged since the last run")
	checkCmd.Flags().StringVar(&cacheDir, "cache-dir", ".tigerc-cache", "directory holding cached check results")
	checkCmd.Flags().BoolVar(&useBuiltin, "builtins", true, "seed the standard library functions (print, concat, ...) before checking")
}

// fileResult is one file's outcome, collected so every file's
// diagnostics print together even though the files themselves are
// analyzed concurrently.
type fileResult struct {
	path   string
	cached bool
	bag    *diag.Bag
	ok     bool
}

// runCheck analyzes every named file concurrently via
// golang.org/x/sync/errgroup — one fresh symbol table and set of
// environments per file, since an analyzer instance is single-threaded
// and sequential by design and shares nothing across files.
//
// With no files named on the command line, it falls back to the
// nearest tiger.toml manifest (SPEC_FULL.md §B): the manifest's
// [check].entry or [check].source_dir supplies the file list, and its
// [check].max_diagnostics caps how many diagnostics each file's bag
// may accumulate.
func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics := 0
	if len(args) == 0 {
		manifest, ok, err := project.Load(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no files given and no tiger.toml found")
		}
		sources, err := manifest.Sources()
		if err != nil {
			return err
		}
		args = sources
		maxDiagnostics = manifest.Check.MaxDiagnostics
	}

	results := make([]fileResult, len(args))
	var store *cache.Store
	if useCache {
		store = cache.Open(cacheDir)
	}

	g, _ := errgroup.WithContext(cmd.Context())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			results[i] = checkOne(path, store, maxDiagnostics)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	useColor := colorEnabled(cmd)
	anyErrors := false
	for _, r := range results {
		printResult(cmd, r, useColor)
		if r.bag != nil && r.bag.HasErrors() {
			anyErrors = true
		}
	}
	if anyErrors {
		cmd.SilenceUsage = true
		return fmt.Errorf("analysis found errors")
	}
	return nil
}

func checkOne(path string, store *cache.Store, maxDiagnostics int) fileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		bag := diag.NewBag(maxDiagnostics)
		bag.Add(diag.NewError(diag.SemaInternalError, source.NoLocation, fmt.Sprintf("failed to read %s: %v", path, err)))
		return fileResult{path: path, bag: bag, ok: false}
	}

	hash := cache.HashContent(content)
	if store != nil {
		if entry, hit := store.Lookup(hash); hit {
			bag := diag.NewBag(maxDiagnostics)
			for _, d := range entry.Diagnostics {
				bag.Add(diag.Diagnostic{
					Severity: diag.Severity(d.Severity),
					Code:     diag.Code(d.Code),
					Message:  d.Message,
					At:       source.Location{Line: d.Line, Column: d.Column},
				})
			}
			return fileResult{path: path, cached: true, bag: bag, ok: entry.OK}
		}
	}

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	symbols := symbol.NewTable()

	lx := lexer.New(content, symbols, reporter)
	root, ok := parser.ParseProgram(lx, symbols, reporter)

	var resultTy string
	if ok {
		opts := sema.Options{Symbols: symbols, Reporter: reporter}
		if useBuiltin {
			opts.Builtins = sema.DefaultBuiltins(symbols, nil)
		}
		res, checkOK := sema.Check(root, opts)
		ok = checkOK
		if checkOK {
			resultTy = res.Type.Kind.String()
		}
	}
	bag.Sort()

	if store != nil {
		entry := cache.Entry{ContentHash: hash, OK: ok, Type: resultTy}
		for _, d := range bag.Items() {
			entry.Diagnostics = append(entry.Diagnostics, cache.CachedDiagnostic{
				Severity: uint8(d.Severity),
				Code:     uint16(d.Code),
				Message:  d.Message,
				Line:     d.At.Line,
				Column:   d.At.Column,
			})
		}
		_ = store.Store(entry) // a failed cache write never fails the check itself
	}

	return fileResult{path: path, bag: bag, ok: ok}
}

func printResult(cmd *cobra.Command, r fileResult, useColor bool) {
	out := cmd.OutOrStdout()
	header := r.path
	if r.cached {
		header += " (cached)"
	}
	fmt.Fprintf(out, "== %s ==\n", header)

	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	locColor := color.New(color.FgCyan)

	if r.bag == nil || r.bag.Len() == 0 {
		if r.ok {
			if useColor {
				color.New(color.FgGreen).Fprintln(out, "ok")
			} else {
				fmt.Fprintln(out, "ok")
			}
		}
		return
	}

	for _, d := range r.bag.Items() {
		sev := d.Severity.String()
		if useColor {
			if d.Severity == diag.SevError {
				sev = errColor.Sprint(sev)
			} else {
				sev = warnColor.Sprint(sev)
			}
		}
		loc := d.At.String()
		if useColor {
			loc = locColor.Sprint(loc)
		}
		fmt.Fprintf(out, "%s: %s: [%s] %s\n", loc, sev, d.Code, d.Message)
	}
}
