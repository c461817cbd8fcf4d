package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sglint/internal/diag"
	"sglint/internal/source"
)

func fixture() ([]diag.Diagnostic, *source.FileSet) {
	fs := source.NewFileSet()
	//                              0123456789012345678
	id := fs.AddVirtual("main.sg", []byte("let x = 5;\nv.unwrap();\n"))

	ds := []diag.Diagnostic{
		diag.New("missing_type", diag.SevWarn,
			source.Span{File: id, Start: 4, End: 5},
			"Missing explicit type annotation on let binding.").WithCategory("let"),
		diag.New("panic_usage", diag.SevDeny,
			source.Span{File: id, Start: 11, End: 21},
			"Call to panic accessor `unwrap` detected.").WithCategory("unwrap").
			WithNote(source.Span{File: id, Start: 11, End: 12}, "receiver may be empty"),
	}
	return ds, fs
}

func TestShort(t *testing.T) {
	ds, fs := fixture()

	got := Short(ds, fs, PathModeAuto)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), got)
	}
	if lines[0] != "WARN missing_type main.sg:1:5 Missing explicit type annotation on let binding. [let]" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "DENY panic_usage main.sg:2:1 Call to panic accessor `unwrap` detected. [unwrap]" {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestShort_Empty(t *testing.T) {
	_, fs := fixture()
	if got := Short(nil, fs, PathModeAuto); got != "" {
		t.Errorf("Short(nil) = %q, want empty", got)
	}
}

func TestPretty_PlainOutput(t *testing.T) {
	ds, fs := fixture()

	var buf bytes.Buffer
	Pretty(&buf, ds, fs, PrettyOpts{Color: false, ShowNotes: true})
	out := buf.String()

	for _, want := range []string{
		"main.sg:1:5: WARN missing_type: Missing explicit type annotation on let binding. [let]",
		"main.sg:2:1: DENY panic_usage: Call to panic accessor `unwrap` detected. [unwrap]",
		"note: receiver may be empty",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Подчёркивание стоит под спаном: колонка 5, один символ.
	if !strings.Contains(out, "    let x = 5;\n        ^\n") {
		t.Errorf("caret misaligned:\n%s", out)
	}
}

func TestPretty_NotesHiddenByDefault(t *testing.T) {
	ds, fs := fixture()
	var buf bytes.Buffer
	Pretty(&buf, ds, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Error("notes printed without ShowNotes")
	}
}

func TestPretty_UnderlineCoversSpan(t *testing.T) {
	_, fs := fixture()
	ds := []diag.Diagnostic{
		diag.New("panic_usage", diag.SevDeny,
			source.Span{File: 0, Start: 11, End: 21}, // v.unwrap()
			"Call to panic accessor `unwrap` detected."),
	}

	var buf bytes.Buffer
	Pretty(&buf, ds, fs, PrettyOpts{})
	// Спан покрывает "v.unwrap()": 10 символов подчёркивания.
	want := "    v.unwrap();\n    ^" + strings.Repeat("~", 9) + "\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("underline wrong:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	ds, fs := fixture()

	var buf bytes.Buffer
	err := JSON(&buf, ds, fs, JSONOpts{IncludePositions: true, IncludeNotes: true})
	if err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, diagnostics = %d; want 2/2", out.Count, len(out.Diagnostics))
	}

	first := out.Diagnostics[0]
	if first.Rule != "missing_type" || first.Severity != "WARN" || first.Category != "let" {
		t.Errorf("first diagnostic = %+v", first)
	}
	if first.Location.StartLine != 1 || first.Location.StartCol != 5 {
		t.Errorf("first location = %+v", first.Location)
	}

	second := out.Diagnostics[1]
	if len(second.Notes) != 1 || second.Notes[0].Message != "receiver may be empty" {
		t.Errorf("second diagnostic notes = %+v", second.Notes)
	}
}

func TestJSON_NotesAndPositionsOptional(t *testing.T) {
	ds, fs := fixture()

	var buf bytes.Buffer
	if err := JSON(&buf, ds, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Error("positions included without IncludePositions")
	}
	if len(out.Diagnostics[1].Notes) != 0 {
		t.Error("notes included without IncludeNotes")
	}
}

func TestDisplayPath_UnknownFile(t *testing.T) {
	fs := source.NewFileSet()
	if got := displayPath(source.FileID(5), fs, PathModeAuto); got != "<unknown>" {
		t.Errorf("displayPath = %q, want %q", got, "<unknown>")
	}
}

func TestPathMode_FormatArg(t *testing.T) {
	tests := []struct {
		mode PathMode
		arg  string
	}{
		{PathModeAuto, "auto"},
		{PathModeAbsolute, "absolute"},
		{PathModeRelative, "relative"},
		{PathModeBasename, "basename"},
	}
	for _, tt := range tests {
		if got := tt.mode.formatArg(); got != tt.arg {
			t.Errorf("formatArg(%v) = %q, want %q", tt.mode, got, tt.arg)
		}
	}
}
