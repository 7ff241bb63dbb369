package token

import "strings"

// FoldString word-wraps text for a folded block scalar. The text is split
// into (newline-run, content-line) chunks and each content line is folded
// independently. Because a conformant reader joins k consecutive newlines
// back into k-1, one extra newline is inserted between two folded chunks,
// except at the start of the text or next to a more-indented line.
func FoldString(s string, width int) string {
	b := &strings.Builder{}
	nextLF := strings.IndexByte(s, '\n')
	if nextLF == -1 {
		nextLF = len(s)
	}
	b.WriteString(FoldLine(s[:nextLF], width))
	prevMoreIndented := s != "" && (s[0] == '\n' || s[0] == ' ')
	pos := nextLF
	for pos < len(s) {
		run := pos
		for run < len(s) && s[run] == '\n' {
			run++
		}
		end := strings.IndexByte(s[run:], '\n')
		if end == -1 {
			end = len(s)
		} else {
			end += run
		}
		line := s[run:end]
		moreIndented := line != "" && line[0] == ' '
		b.WriteString(s[pos:run])
		if !prevMoreIndented && !moreIndented && line != "" {
			b.WriteByte('\n')
		}
		b.WriteString(FoldLine(line, width))
		prevMoreIndented = moreIndented
		pos = end
	}
	return b.String()
}

// FoldLine greedily wraps one line at space boundaries so that no emitted
// line exceeds width where a boundary permits it. Breaks happen only before
// a non-space that follows a space: never at position 0, and never leaving
// a space at the start of a continuation, which a reader would take for
// more-indented content. A line that is empty or starts with a space is
// returned unchanged.
func FoldLine(line string, width int) string {
	if line == "" || line[0] == ' ' {
		return line
	}
	var (
		b           strings.Builder
		start, curr int
	)
	for next := range breakable(line) {
		if next-start > width {
			end := next
			if curr > start {
				end = curr
			}
			b.WriteByte('\n')
			b.WriteString(line[start:end])
			start = end + 1
		}
		curr = next
	}
	b.WriteByte('\n')
	if len(line)-start > width && curr > start {
		b.WriteString(line[start:curr])
		b.WriteByte('\n')
		b.WriteString(line[curr+1:])
	} else {
		b.WriteString(line[start:])
	}
	return b.String()[1:]
}

// breakable yields the index of every space directly followed by a
// non-space, skipping overlaps the way a global ` [^ ]` regexp would.
func breakable(line string) func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for i := 0; i+1 < len(line); i++ {
			if line[i] != ' ' || line[i+1] == ' ' {
				continue
			}
			if !yield(i) {
				return
			}
			i++
		}
	}
}
