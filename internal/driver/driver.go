// Package driver runs lint sessions over a batch of tree artifacts.
//
// Each compilation unit gets its own session, context and sink, so units are
// independent and can be linted in parallel; results are returned in input
// order regardless of completion order to keep batch output deterministic.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"sglint/internal/diag"
	"sglint/internal/lint"
	"sglint/internal/source"
	"sglint/internal/wire"
)

// Result holds the outcome of linting one artifact.
type Result struct {
	Path  string
	Unit  string
	Diags []diag.Diagnostic
	Files *source.FileSet
	Err   error // Decode failure; Diags is empty then
}

// Options configures a batch run.
type Options struct {
	// Jobs is the maximum number of concurrently linted units; 0 means one
	// per CPU.
	Jobs int
}

// CheckPaths decodes and lints every artifact, returning one Result per path
// in input order. Per-artifact decode failures are recorded in the Result
// rather than aborting the batch; the returned error reflects only context
// cancellation.
func CheckPaths(ctx context.Context, paths []string, reg *lint.Registry, opts Options) ([]Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkOne(path, reg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkOne(path string, reg *lint.Registry) Result {
	unit, fs, defs, err := wire.Load(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	lctx := &lint.Context{Unit: unit, Defs: defs, Files: fs}
	return Result{
		Path:  path,
		Unit:  unit.Name,
		Diags: lint.Run(unit, reg, lctx),
		Files: fs,
	}
}

// HasDeny reports whether any result carries a deny-level diagnostic.
func HasDeny(results []Result) bool {
	for i := range results {
		for j := range results[i].Diags {
			if results[i].Diags[j].Severity == diag.SevDeny {
				return true
			}
		}
	}
	return false
}
