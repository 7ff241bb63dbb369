package encode

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yamldump/go-yamldump/debug"
	"github.com/yamldump/go-yamldump/schema"
	"github.com/yamldump/go-yamldump/token"
)

type scalarStyle int

const (
	stylePlain scalarStyle = iota
	styleSingle
	styleLiteral
	styleFolded
	styleDouble
)

// Older 1.1 readers resolve these as booleans, so compat mode quotes them.
var deprecatedBooleans = map[string]bool{
	"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
	"on": true, "On": true, "ON": true,
	"n": true, "N": true, "no": true, "No": true, "NO": true,
	"off": true, "Off": true, "OFF": true,
}

// writeScalar picks one of the five scalar styles for text and renders it
// into es.dump. level is the nesting depth of the scalar, iskey marks
// mapping keys, which must stay on one line.
func writeScalar(es *EncState, text string, level int, iskey bool) error {
	if text == "" {
		es.dump = "''"
		return nil
	}
	if es.compatMode && deprecatedBooleans[text] {
		es.dump = "'" + text + "'"
		return nil
	}

	indent := es.indent * max(1, level)
	// The usable width shrinks with depth down to a floor of
	// min(lineWidth, 40).
	width := -1
	if es.lineWidth != -1 {
		width = max(min(es.lineWidth, 40), es.lineWidth-indent)
	}
	singleLineOnly := iskey || (es.flowLevel > -1 && level >= es.flowLevel)

	style := chooseScalarStyle(text, singleLineOnly, es.indent, width)
	if debug.Scalars() {
		fmt.Fprintf(os.Stderr, "scalar style %d for %q (width %d)\n", style, text, width)
	}
	switch style {
	case stylePlain:
		es.dump = text
	case styleSingle:
		es.dump = "'" + strings.ReplaceAll(text, "'", "''") + "'"
	case styleLiteral:
		es.dump = "|" + blockHeader(text, es.indent) +
			dropEndingNewline(indentString(text, indent))
	case styleFolded:
		es.dump = ">" + blockHeader(text, es.indent) +
			dropEndingNewline(indentString(token.FoldString(text, width), indent))
	case styleDouble:
		esc, err := token.EscapeDouble(text)
		if err != nil {
			return err
		}
		es.dump = `"` + esc + `"`
	default:
		return fmt.Errorf("%w: impossible scalar style", errInternal)
	}
	return nil
}

// chooseScalarStyle classifies text in a single pass. Any non-printable
// character forces double-quoted style immediately. With no line breaks and
// no overlong lines the result is plain or single-quoted; otherwise a block
// style, except that an indent width above 9 cannot be written as a
// one-digit indent indicator and falls back to double-quoted.
func chooseScalarStyle(text string, singleLineOnly bool, indentPerLevel, width int) scalarStyle {
	var (
		hasLineBreak      bool
		hasFoldableLine   bool
		previousLineBreak = -1
		shouldTrackWidth  = width != -1
	)
	first, _ := utf8.DecodeRuneInString(text)
	last, _ := utf8.DecodeLastRuneInString(text)
	plain := token.IsPlainSafeFirst(first) && !token.IsWhitespace(last)

	if singleLineOnly {
		// mapping keys and deep flow context never use block styles,
		// so line-break and fold tracking is skipped
		for _, c := range text {
			if !token.IsPrintable(c) {
				return styleDouble
			}
			plain = plain && token.IsPlainSafe(c)
		}
	} else {
		i := 0
		for i < len(text) {
			c, sz := utf8.DecodeRuneInString(text[i:])
			if c == '\n' {
				hasLineBreak = true
				if shouldTrackWidth {
					hasFoldableLine = hasFoldableLine ||
						(i-previousLineBreak-1 > width &&
							text[previousLineBreak+1] != ' ')
					previousLineBreak = i
				}
			} else if !token.IsPrintable(c) {
				return styleDouble
			}
			plain = plain && token.IsPlainSafe(c)
			i += sz
		}
		hasFoldableLine = hasFoldableLine || (shouldTrackWidth &&
			len(text)-previousLineBreak-1 > width &&
			text[previousLineBreak+1] != ' ')
	}

	if !hasLineBreak && !hasFoldableLine {
		if plain && !schema.Ambiguous(text) {
			return stylePlain
		}
		return styleSingle
	}
	if indentPerLevel > 9 && needIndentIndicator(text) {
		return styleDouble
	}
	if hasFoldableLine {
		return styleFolded
	}
	return styleLiteral
}

// needIndentIndicator reports whether the first content line starts with a
// space, which a block scalar can only carry behind an explicit indent
// indicator.
func needIndentIndicator(text string) bool {
	i := 0
	for i < len(text) && text[i] == '\n' {
		i++
	}
	return i < len(text) && text[i] == ' '
}

// blockHeader renders the header of a literal or folded scalar: optional
// one-digit indent indicator, then the chomping indicator. `+` keeps the
// trailing newline run (two or more, or the text being exactly one
// newline), absence clips to one, `-` strips.
func blockHeader(text string, indentPerLevel int) string {
	indicator := ""
	if needIndentIndicator(text) {
		indicator = strconv.Itoa(indentPerLevel)
	}
	clip := strings.HasSuffix(text, "\n")
	keep := clip && (strings.HasSuffix(text, "\n\n") || text == "\n")
	chomp := "-"
	switch {
	case keep:
		chomp = "+"
	case clip:
		chomp = ""
	}
	return indicator + chomp + "\n"
}

// indentString prefixes every non-empty line of text with spaces.
func indentString(text string, spaces int) string {
	ind := strings.Repeat(" ", spaces)
	b := &strings.Builder{}
	pos := 0
	for pos < len(text) {
		next := strings.IndexByte(text[pos:], '\n')
		var line string
		if next == -1 {
			line = text[pos:]
			pos = len(text)
		} else {
			line = text[pos : pos+next+1]
			pos += next + 1
		}
		if line != "" && line != "\n" {
			b.WriteString(ind)
		}
		b.WriteString(line)
	}
	return b.String()
}

// dropEndingNewline strips exactly one trailing newline.
func dropEndingNewline(text string) string {
	return strings.TrimSuffix(text, "\n")
}
