package encode

import (
	"fmt"
	"strings"
)

// wrapTag renders a resolved tag for emission: local `!name` tags keep
// their handle, `tag:yaml.org,2002:` tags collapse to the `!!` shorthand,
// anything else becomes a verbatim `!<...>` tag.
func wrapTag(tag string) string {
	switch {
	case strings.HasPrefix(tag, "!!"):
		return "!!" + tagURI(tag[2:])
	case strings.HasPrefix(tag, "!"):
		return "!" + tagURI(tag[1:])
	case strings.HasPrefix(tag, "tag:yaml.org,2002:"):
		return "!!" + tagURI(strings.TrimPrefix(tag, "tag:yaml.org,2002:"))
	default:
		return "!<" + tagURI(tag) + ">"
	}
}

// tagURI percent-encodes the bytes of a tag that fall outside the YAML
// uri-char set. `!` is always encoded so it cannot terminate the handle.
func tagURI(s string) string {
	b := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte(`-#;/?:@&=+$,_.~*'()[]`, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(b, "%%%02X", c)
		}
	}
	return b.String()
}
