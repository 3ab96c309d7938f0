package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns the character diff of two strings, cleaned up for
// reading.
func DiffString(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	multiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, multiLine)
	return dmp.DiffCleanupSemantic(diffs)
}

// Inline renders a character diff on one line, deletions as [-text-] and
// insertions as {+text+}.
func Inline(diffs []diffpatch.Diff) string {
	b := &strings.Builder{}
	for _, d := range diffs {
		txt := strings.ReplaceAll(d.Text, "\n", `\n`)
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + txt + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + txt + "+}")
		default:
			b.WriteString(txt)
		}
	}
	return b.String()
}
