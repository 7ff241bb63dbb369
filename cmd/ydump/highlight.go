package main

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	keyColor    = color.RGB(128, 168, 196).SprintFunc()
	tagColor    = color.RGB(74, 92, 138).SprintFunc()
	anchorColor = color.RGB(196, 96, 16).SprintFunc()
	sepColor    = color.RGB(196, 128, 128).SprintFunc()

	keyRx    = regexp.MustCompile(`^(\s*(?:- )?)([^:\s][^:]*)(:)(\s|$)`)
	anchorRx = regexp.MustCompile(`[&*]ref_[0-9]+`)
	tagRx    = regexp.MustCompile(`![^\s]+`)
)

// highlight colorizes dumped YAML line by line for terminal viewing: mapping
// keys, anchors and aliases, and tags. The structure of the text is left
// untouched.
func highlight(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if m := keyRx.FindStringSubmatchIndex(ln); m != nil {
			// groups: 1 indent, 2 key, 3 colon, 4 trailing space
			ln = ln[:m[4]] + keyColor(ln[m[4]:m[5]]) + sepColor(":") + ln[m[8]:]
		}
		ln = anchorRx.ReplaceAllStringFunc(ln, func(v string) string {
			return anchorColor(v)
		})
		ln = tagRx.ReplaceAllStringFunc(ln, func(v string) string {
			return tagColor(v)
		})
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}
