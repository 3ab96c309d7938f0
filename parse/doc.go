// Package parse parses TON text into an [ir.Document].
//
// # Usage
//
//	doc, err := parse.Parse([]byte(`Person(1) { name: "John", age: 30 }`))
//	if err != nil {
//	    return err
//	}
//
//	// record where each node starts, for editors and diagnostics
//	pos := map[*ir.Node]*token.Pos{}
//	doc, err = parse.ParseString(text, parse.ParsePositions(pos))
//
// Commas between object members and array elements are optional. A member
// name may carry a type annotation, as in `age:number: 30`, which tags the
// value the same way the hint sigils $ % & ^ do.
//
// Parsing is all or nothing: the first error stops the parse and is
// returned as a *ParseErr carrying a 1-based line and column. Lexical
// errors also unwrap to a *token.TokenizeErr.
//
// # Related Packages
//
//   - github.com/signadot/ton-format/ton/ir - document tree
//   - github.com/signadot/ton-format/ton/encode - encode trees to text
//   - github.com/signadot/ton-format/ton/token - tokenization
package parse
