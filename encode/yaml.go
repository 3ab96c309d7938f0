package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/ton-format/ton/ir"
)

// EncodeYAML writes the JSON projection of node as YAML. Object members
// keep their order.
func EncodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlValue(node))
	if err != nil {
		return err
	}
	return writeString(w, string(d))
}

func yamlValue(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		ms := yaml.MapSlice{}
		if node.ClassName != "" {
			ms = append(ms, yaml.MapItem{Key: ir.ClassNameKey, Value: node.ClassName})
		}
		if node.InstanceCount != nil {
			ms = append(ms, yaml.MapItem{Key: ir.InstanceIDKey, Value: *node.InstanceCount})
		}
		for _, kv := range node.Entries() {
			if kv.Val.Type == ir.UndefinedType || node.IsMetaKey(kv.Key) {
				continue
			}
			ms = append(ms, yaml.MapItem{Key: kv.Key, Value: yamlValue(kv.Val)})
		}
		return ms
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = yamlValue(v)
		}
		return res
	default:
		return ir.ToAny(node)
	}
}
