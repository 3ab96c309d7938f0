// Package token provides tokenization support for TON (Text Object Notation).
//
// [Tokenize] converts source bytes into a flat sequence of [Token]s which
// always ends with exactly one [TEOF] token. Comments are dropped unless
// [TokenComments] is given, which tooling such as syntax highlighters uses.
//
// The tokenizer is single pass. GUID literals share a leading character class
// with numbers and identifiers, so they are recognized speculatively: the
// cursor is saved, the 8-4-4-4-12 shape is attempted, and the cursor is
// restored when the shape does not match.
//
// The package also holds the quoting helpers the encoder uses to produce text
// the tokenizer reads back unchanged: [Quote], [IsIdentifier] and [IsGUID].
package token
