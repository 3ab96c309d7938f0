// Package format holds the enumerations shared by the encoder and the
// command line: the output [Format], the layout [Style] and the string
// [Quote] character.
package format
