package token

// Codepoint predicates deciding which scalar styles can carry a character.
// The ranges follow the YAML 1.2 printable-character production.

// IsPrintable reports whether c may appear outside a double-quoted scalar.
func IsPrintable(c rune) bool {
	switch {
	case c >= 0x20 && c <= 0x7e:
		return true
	case c >= 0xa1 && c <= 0xd7ff:
		return c != 0x2028 && c != 0x2029
	case c >= 0xe000 && c <= 0xfffd:
		return c != 0xfeff
	case c >= 0x10000 && c <= 0x10ffff:
		return true
	}
	return false
}

// IsPlainSafe reports whether c may appear anywhere in a plain scalar.
func IsPlainSafe(c rune) bool {
	if !IsPrintable(c) || c == 0xfeff {
		return false
	}
	switch c {
	case ',', '[', ']', '{', '}', ':', '#':
		return false
	}
	return true
}

// IsPlainSafeFirst reports whether c may start a plain scalar. Indicator
// characters are only reserved in the first position.
func IsPlainSafeFirst(c rune) bool {
	if !IsPlainSafe(c) || IsWhitespace(c) {
		return false
	}
	switch c {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#',
		'&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return false
	}
	return true
}

func IsWhitespace(c rune) bool {
	return c == ' ' || c == '\t'
}
