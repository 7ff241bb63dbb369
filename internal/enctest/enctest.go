// Package enctest holds shared test helpers for comparing multi-line dump
// output.
package enctest

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line-oriented diff of got against want, or "" when equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)
	res := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			res.WriteString(prefix)
			res.WriteString(ln)
			res.WriteByte('\n')
		}
	}
	return res.String()
}

// Equal fails t with a line diff when got differs from want.
func Equal(t *testing.T, want, got string) {
	t.Helper()
	if d := Diff(want, got); d != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", d)
	}
}
