package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/ton-format/ton/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug message to stderr. Nodes and documents are rendered
// as their JSON projection, generic maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			d, err := x.MarshalJSON()
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x.Value())
				continue
			}
			args[i] = string(d)
		case *ir.Document:
			d, err := x.MarshalJSON()
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Document] %v", x.ToAny())
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(d)
	out.Write([]byte{'\n'})
}
