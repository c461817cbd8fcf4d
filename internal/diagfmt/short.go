package diagfmt

import (
	"fmt"
	"strings"

	"sglint/internal/diag"
	"sglint/internal/source"
)

// Short renders diagnostics one line per entry:
//
//	SEV rule path:line:col message [category]
//
// The output is stable for unchanged input and is the format acceptance
// fixtures diff against: position and category are both present.
func Short(diags []diag.Diagnostic, fs *source.FileSet, pathMode PathMode) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, d := range diags {
		start, _ := fs.Resolve(d.Primary)
		path := displayPath(d.Primary.File, fs, pathMode)
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Rule, path, start.Line, start.Col, d.Message)
		if d.Category != "" {
			fmt.Fprintf(&b, " [%s]", d.Category)
		}
		if i < len(diags)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func displayPath(id source.FileID, fs *source.FileSet, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	return f.FormatPath(mode.formatArg(), fs.BaseDir())
}
