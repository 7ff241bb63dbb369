// Package token holds the character-level building blocks of the encoder:
// codepoint classification for scalar style selection, double-quoted escape
// rendering, and width-aware line folding for folded block scalars.
package token
