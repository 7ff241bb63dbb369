package token

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// escapeSeqs maps code points with a named short escape in double-quoted
// style to the escaped form.
var escapeSeqs = map[rune]string{
	0x00:   `\0`,
	0x07:   `\a`,
	0x08:   `\b`,
	0x09:   `\t`,
	0x0a:   `\n`,
	0x0b:   `\v`,
	0x0c:   `\f`,
	0x0d:   `\r`,
	0x1b:   `\e`,
	0x22:   `\"`,
	0x5c:   `\\`,
	0x85:   `\N`,
	0xa0:   `\_`,
	0x2028: `\L`,
	0x2029: `\P`,
}

// EscapeDouble renders the body of a double-quoted scalar: printable
// characters verbatim, named escapes where one exists, hex escapes
// otherwise. Surrogate halves smuggled in as raw 3-byte sequences are
// recombined into one code point, which is always hex-escaped even when
// the combined code point is printable.
func EscapeDouble(s string) (string, error) {
	b := &strings.Builder{}
	i := 0
	for i < len(s) {
		c, sz, paired := decodeSurrogateAware(s[i:])
		i += sz
		if !paired {
			if seq, ok := escapeSeqs[c]; ok {
				b.WriteString(seq)
				continue
			}
			if IsPrintable(c) {
				b.WriteRune(c)
				continue
			}
		}
		esc, err := hexEscape(c)
		if err != nil {
			return "", err
		}
		b.WriteString(esc)
	}
	return b.String(), nil
}

// decodeSurrogateAware decodes one code point. UTF-16 surrogate pairs that
// were byte-encoded individually (CESU-8 style, which the stdlib decoder
// rejects) are combined into the code point they designate; paired reports
// that case.
func decodeSurrogateAware(s string) (c rune, sz int, paired bool) {
	c, sz = utf8.DecodeRuneInString(s)
	if c != utf8.RuneError || sz != 1 {
		return c, sz, false
	}
	hi, hiSz := decodeRawSurrogate(s)
	if hi < 0 {
		return utf8.RuneError, sz, false
	}
	lo, loSz := decodeRawSurrogate(s[hiSz:])
	if lo < 0 {
		return hi, hiSz, false
	}
	if c := utf16.DecodeRune(hi, lo); c != utf8.RuneError {
		return c, hiSz + loSz, true
	}
	return hi, hiSz, false
}

// decodeRawSurrogate reads a 3-byte UTF-8-shaped encoding of a code point
// in the surrogate range 0xD800-0xDFFF, returning -1 when s starts with
// anything else.
func decodeRawSurrogate(s string) (rune, int) {
	if len(s) < 3 {
		return -1, 0
	}
	if s[0] != 0xed || s[1]&0xc0 != 0x80 || s[2]&0xc0 != 0x80 {
		return -1, 0
	}
	c := rune(s[0]&0x0f)<<12 | rune(s[1]&0x3f)<<6 | rune(s[2]&0x3f)
	if c < 0xd800 || c > 0xdfff {
		return -1, 0
	}
	return c, 3
}

func hexEscape(c rune) (string, error) {
	switch {
	case c <= 0xff:
		return fmt.Sprintf(`\x%02X`, c), nil
	case c <= 0xffff:
		return fmt.Sprintf(`\u%04X`, c), nil
	case c >= 0:
		return fmt.Sprintf(`\U%08X`, c), nil
	default:
		return "", fmt.Errorf("%w: code point %#x exceeds escapable range", ErrInternal, c)
	}
}
