package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sglint/internal/diag"
	"sglint/internal/source"
)

var (
	denyColor = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	ruleColor = color.New(color.FgCyan)
	noteColor = color.New(color.FgBlue)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой диагностики печатает:
//
//	<path>:<line>:<col>: <SEV> <rule>: <message> [category]
//	    <строка исходника>
//	    ^~~~~ по Span
//
// затем Notes с аналогичным форматом. Цвет включается опцией.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range diags {
		writeHeading(w, d, fs, opts)
		writeSourceLine(w, d.Primary, fs, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				start, _ := fs.Resolve(n.Span)
				path := displayPath(n.Span.File, fs, opts.PathMode)
				msg := fmt.Sprintf("note: %s", n.Msg)
				if opts.Color {
					msg = noteColor.Sprint(msg)
				}
				fmt.Fprintf(w, "    %s:%d:%d: %s\n", path, start.Line, start.Col, msg)
			}
		}
	}
}

func writeHeading(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	path := displayPath(d.Primary.File, fs, opts.PathMode)

	sev := d.Severity.String()
	rule := d.Rule
	if opts.Color {
		switch d.Severity {
		case diag.SevDeny:
			sev = denyColor.Sprint(sev)
		default:
			sev = warnColor.Sprint(sev)
		}
		rule = ruleColor.Sprint(rule)
	}

	msg := d.Message
	if d.Category != "" {
		msg = fmt.Sprintf("%s [%s]", msg, d.Category)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, rule, msg)
}

// writeSourceLine prints the first spanned source line with a caret
// underline. Column math is in display cells, not bytes, so wide runes and
// tabs keep the carets aligned with the code above them.
func writeSourceLine(w io.Writer, sp source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	shown := line
	if opts.Width > 0 {
		shown = runewidth.Truncate(shown, opts.Width, "…")
	}
	fmt.Fprintf(w, "    %s\n", expandTabs(shown))

	// Underline covers the span portion on its first line only.
	startByte := int(start.Col) - 1
	endByte := len(line)
	if end.Line == start.Line && int(end.Col)-1 < endByte {
		endByte = int(end.Col) - 1
	}
	if startByte > len(line) {
		startByte = len(line)
	}
	if endByte < startByte {
		endByte = startByte
	}

	pad := runewidth.StringWidth(expandTabs(line[:startByte]))
	width := runewidth.StringWidth(expandTabs(line[startByte:endByte]))
	if width < 1 {
		width = 1
	}
	if opts.Width > 0 && pad+width > opts.Width {
		if pad >= opts.Width {
			return
		}
		width = opts.Width - pad
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = warnColor.Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), underline)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
