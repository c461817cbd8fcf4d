package diag

import (
	"sort"
)

// Sink accumulates the diagnostics of one lint session.
//
// Diagnostics are stored in emission order. Flush returns them stable-sorted
// by (file, start, end, rule), so re-running a session over unchanged input
// yields an identical sequence.
//
// De-duplication policy: two diagnostics are considered the same finding when
// rule, severity, category, message and the primary byte range all coincide;
// Flush keeps the first occurrence and drops the rest. Distinct findings at
// the same span are all kept.
type Sink struct {
	items []Diagnostic
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{items: make([]Diagnostic, 0, 16)}
}

// Add appends a diagnostic in emission order.
func (s *Sink) Add(d Diagnostic) {
	s.items = append(s.items, d)
}

// AddAll appends several diagnostics in order.
func (s *Sink) AddAll(ds []Diagnostic) {
	s.items = append(s.items, ds...)
}

// Len returns the number of accumulated diagnostics before de-duplication.
func (s *Sink) Len() int {
	return len(s.items)
}

// HasDeny возвращает true, если есть хотя бы одна диагностика уровня Deny.
func (s *Sink) HasDeny() bool {
	for i := range s.items {
		if s.items[i].Severity == SevDeny {
			return true
		}
	}
	return false
}

// Merge appends all diagnostics from another sink.
func (s *Sink) Merge(other *Sink) {
	s.items = append(s.items, other.items...)
}

type dedupKey struct {
	rule     string
	severity Severity
	category string
	message  string
	file     uint32
	start    uint32
	end      uint32
}

// Flush returns the stable-sorted, de-duplicated diagnostic sequence.
// The sink itself is left untouched; calling Flush twice yields equal slices.
func (s *Sink) Flush() []Diagnostic {
	out := make([]Diagnostic, 0, len(s.items))
	seen := make(map[dedupKey]bool, len(s.items))
	for _, d := range s.items {
		key := dedupKey{
			rule:     d.Rule,
			severity: d.Severity,
			category: d.Category,
			message:  d.Message,
			file:     uint32(d.Primary.File),
			start:    d.Primary.Start,
			end:      d.Primary.End,
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i], out[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return di.Rule < dj.Rule
	})
	return out
}
