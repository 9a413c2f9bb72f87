package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts the lines a diff adds and removes.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Lines compares two texts line by line and returns a unified-style listing with
// every line prefixed by ' ', '-' or '+'. It returns "" when the texts are equal.
// Listings longer than 10,000 lines are truncated with a marker.
func Lines(before, after, beforeLabel, afterLabel string) (string, Stats) {
	var stats Stats
	if before == after {
		return "", stats
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteString("\n")
				return buf.String(), stats
			}
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			written++
		}
	}

	return buf.String(), stats
}

// splitLines splits text into lines, dropping the empty element after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}
