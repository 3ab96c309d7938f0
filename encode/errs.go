package encode

import "errors"

// ErrEncoding reports a value which cannot be turned into a tree. Encoding
// a tree only fails when the writer does.
var ErrEncoding = errors.New("encoding error")
