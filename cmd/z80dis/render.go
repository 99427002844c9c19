package main

import (
	"fmt"
	"strings"

	"github.com/atoorisol/jssms/ir"
)

// renderNode formats an IR node as a compact, readable expression for
// -ir output. It is a display helper only: nothing in the decode/ops/
// tables/ir packages depends on it, and it does not attempt to
// round-trip back into IR.
func renderNode(n ir.Node) string {
	switch v := n.(type) {
	case ir.Literal:
		return fmt.Sprintf("%d", v.Value)
	case ir.Identifier:
		return v.Name
	case ir.Register:
		return v.Name
	case *ir.MemberExpression:
		return fmt.Sprintf("%s[%s]", renderNode(v.Object), renderNode(v.Property))
	case *ir.BinaryExpression:
		return fmt.Sprintf("(%s %s %s)", renderNode(v.Left), v.Op, renderNode(v.Right))
	case *ir.AssignmentExpression:
		return fmt.Sprintf("%s %s %s", renderNode(v.Left), v.Op, renderNode(v.Right))
	case *ir.CallExpression:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = renderNode(a)
		}
		return fmt.Sprintf("%s(%s)", v.Callee.Name, strings.Join(args, ", "))
	case *ir.IfStatement:
		if v.Alternate == nil {
			return fmt.Sprintf("if (%s) { %s }", renderNode(v.Test), renderNode(v.Consequent))
		}
		return fmt.Sprintf("if (%s) { %s } else { %s }", renderNode(v.Test), renderNode(v.Consequent), renderNode(v.Alternate))
	case *ir.BlockStatement:
		parts := make([]string, len(v.Body))
		for i, s := range v.Body {
			parts[i] = renderNode(s)
		}
		return strings.Join(parts, "; ")
	case *ir.ExpressionStatement:
		return renderNode(v.Expression)
	case *ir.ReturnStatement:
		if v.Argument == nil {
			return "return"
		}
		return fmt.Sprintf("return %s", renderNode(v.Argument))
	default:
		return fmt.Sprintf("<unknown %T>", n)
	}
}
