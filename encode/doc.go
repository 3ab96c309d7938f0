// Package encode writes TON text from an [ir.Node] tree.
//
// Output is governed by [EncodeOption] values. The default is the pretty
// style with a four space indent, double quoted strings, no type hints and
// undefined object members left out. [Compact] and [Pretty] are presets
// for the two layouts.
//
// Text produced by [Encode] parses back with package parse to a tree with
// the same JSON projection, and encoding that tree again with the same
// options yields the same text.
package encode
