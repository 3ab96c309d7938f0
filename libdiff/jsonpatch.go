package libdiff

import (
	"encoding/json"
)

type patchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// JSONPatch renders changes as an RFC 6902 patch over the JSON projection
// of the tree they were computed from.
func JSONPatch(changes []Change) ([]byte, error) {
	ops := make([]patchOp, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		op := patchOp{Op: c.Op.String(), Path: c.Pointer()}
		if c.To != nil {
			v, err := c.To.MarshalJSON()
			if err != nil {
				return nil, err
			}
			op.Value = v
		}
		ops = append(ops, op)
	}
	return json.Marshal(ops)
}
