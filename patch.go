package ton

import (
	"fmt"

	"github.com/signadot/ton-format/ton/debug"
	"github.com/signadot/ton-format/ton/ir"
	"github.com/signadot/ton-format/ton/libdiff"
	"github.com/signadot/ton-format/ton/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to the JSON projection of doc and
// parses the result back. Enum, GUID and date values touched by the patch,
// or anywhere in the result, come back as plain strings.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("applying %d patch ops at %s\n", len(ops), doc.Path())
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return nil, err
	}
	return res.Root, nil
}

// PatchNode is Patch with the patch given as a TON array of operations,
// such as [{ op: "add", path: "/a", value: 1 }].
func PatchNode(doc, patch *ir.Node) (*ir.Node, error) {
	if patch.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: expected array of operations, got %s", ErrPatch, patch.Type)
	}
	d, err := patch.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return Patch(doc, d)
}

// Diff returns the JSON patch which turns from into to.
func Diff(from, to *ir.Node) ([]byte, error) {
	return libdiff.JSONPatch(libdiff.Diff(from, to))
}
