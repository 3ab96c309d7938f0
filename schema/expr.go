package schema

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/ton-format/ton/ir"
)

// exprVars is the environment of an expr constraint:
//
//	value       the JSON projection of the node
//	path        the path of the node, as in messages
//	root        the JSON projection of the document root
//	whereami()  the $-rooted path of the node, such as $.users[0]
//	getpath(p)  the projection of the node at $-rooted path p, or nil
//	len(value)  and the rest of the expr builtins
//
// value and root have no static type, so expressions over them are
// checked when they run.
type exprVars struct {
	Value    any              `expr:"value"`
	Path     string           `expr:"path"`
	Root     any              `expr:"root"`
	Whereami func() string    `expr:"whereami"`
	Getpath  func(string) any `expr:"getpath"`
}

func exprEnv(node *ir.Node, path string) exprVars {
	root := node.Root()
	return exprVars{
		Value: ir.ToAny(node),
		Path:  path,
		Root:  ir.ToAny(root),
		Whereami: func() string {
			return node.Path()
		},
		Getpath: func(p string) any {
			res, err := root.GetPath(p)
			if err != nil || res == nil {
				return nil
			}
			return ir.ToAny(res)
		},
	}
}

func compileExpr(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(exprVars{}), expr.AsBool())
}

// checkExpr runs the compiled expression of s against node.
func (s *Schema) checkExpr(node *ir.Node, path string, res *Result) {
	if s.program == nil {
		return
	}
	out, err := vm.Run(s.program, exprEnv(node, path))
	if err != nil {
		res.addError(path, "Expression %s failed: %v", s.Expr, err)
		return
	}
	if ok, _ := out.(bool); !ok {
		res.addError(path, "Value %s does not satisfy %s", display(node), s.Expr)
	}
}

func display(node *ir.Node) string {
	switch node.Type {
	case ir.StringType, ir.GUIDType, ir.EnumType:
		return fmt.Sprintf("%q", node.String)
	case ir.NumberType:
		return numText(node)
	case ir.ObjectType, ir.ArrayType:
		return node.Type.Kind()
	}
	return fmt.Sprint(ir.ToAny(node))
}
