package driver

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"sglint/internal/lint"
	"sglint/internal/lint/rules"
	"sglint/internal/source"
	"sglint/internal/tree"
	"sglint/internal/wire"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

// writeArtifact dumps a one-function unit; unsafe selects whether the body is
// a user-unsafe block, which makes unsafe_usage produce a deny diagnostic.
func writeArtifact(t *testing.T, dir, name string, unsafe bool) string {
	t.Helper()

	safety := tree.BlockSafe
	if unsafe {
		safety = tree.BlockUnsafeUser
	}
	body := &tree.Expr{Kind: tree.ExprBlock, Span: span(10, 30),
		Data: tree.BlockData{Safety: safety}}
	fn := &tree.Decl{Kind: tree.DeclFunc, Span: span(0, 30), Name: "main",
		Data: tree.FuncData{Body: body}}
	unit := &tree.Unit{Name: name, Decls: []*tree.Decl{fn}}

	fs := source.NewFileSet()
	fs.AddVirtual(name+".sg", []byte("fn main() {}\n"))

	path := filepath.Join(dir, name+".sgt")
	if err := wire.Save(path, unit, fs, tree.NewDefTable()); err != nil {
		t.Fatal(err)
	}
	return path
}

func defaultRegistry(t *testing.T) *lint.Registry {
	t.Helper()
	reg, errs := lint.FromConfig(rules.All(), nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected config errors: %v", errs)
	}
	return reg
}

func TestCheckPaths_ResultsInInputOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeArtifact(t, dir, "charlie", true),
		writeArtifact(t, dir, "alpha", false),
		writeArtifact(t, dir, "bravo", true),
	}

	results, err := CheckPaths(context.Background(), paths, defaultRegistry(t), Options{Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	units := []string{results[0].Unit, results[1].Unit, results[2].Unit}
	want := []string{"charlie", "alpha", "bravo"}
	if !reflect.DeepEqual(units, want) {
		t.Errorf("result order = %v, want input order %v", units, want)
	}
}

func TestCheckPaths_IsDeterministicAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 6)
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		paths = append(paths, writeArtifact(t, dir, name, true))
	}

	collect := func(jobs int) []string {
		results, err := CheckPaths(context.Background(), paths, defaultRegistry(t), Options{Jobs: jobs})
		if err != nil {
			t.Fatal(err)
		}
		var out []string
		for _, res := range results {
			out = append(out, res.Unit)
			for _, d := range res.Diags {
				out = append(out, d.Rule+"/"+d.Category)
			}
		}
		return out
	}

	serial := collect(1)
	parallel := collect(4)
	if !reflect.DeepEqual(serial, parallel) {
		t.Errorf("parallel run diverged from serial:\nserial:   %v\nparallel: %v", serial, parallel)
	}
}

func TestCheckPaths_BrokenArtifactDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeArtifact(t, dir, "good", true)
	broken := filepath.Join(dir, "broken.sgt")
	if err := os.WriteFile(broken, []byte("not an artifact"), 0o600); err != nil {
		t.Fatal(err)
	}

	results, err := CheckPaths(context.Background(), []string{broken, good}, defaultRegistry(t), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil {
		t.Error("broken artifact should carry a decode error")
	}
	if len(results[0].Diags) != 0 {
		t.Error("broken artifact must not carry diagnostics")
	}
	if results[1].Err != nil {
		t.Errorf("good artifact failed: %v", results[1].Err)
	}
	if len(results[1].Diags) == 0 {
		t.Error("good artifact produced no diagnostics")
	}
}

func TestCheckPaths_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeArtifact(t, dir, "unit", false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := CheckPaths(ctx, []string{path}, defaultRegistry(t), Options{Jobs: 1}); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}

func TestHasDeny(t *testing.T) {
	dir := t.TempDir()
	warnOnly := writeArtifact(t, dir, "calm", false)
	denying := writeArtifact(t, dir, "angry", true)

	reg := defaultRegistry(t)

	calm, err := CheckPaths(context.Background(), []string{warnOnly}, reg, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if HasDeny(calm) {
		t.Error("safe unit reported a deny")
	}

	angry, err := CheckPaths(context.Background(), []string{warnOnly, denying}, reg, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !HasDeny(angry) {
		t.Error("unsafe unit did not report a deny")
	}
}
