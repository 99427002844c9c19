// Package ops is the opcode combinator library: a family of
// parameterized builders that each return an Emitter — a function
// that, given the concrete operand for one instruction site, produces
// the IR statements for that instruction. The opcode tables call these
// builders once, at table-construction time, to populate each slot.
package ops

import (
	"strings"

	"github.com/atoorisol/jssms/ir"
)

// Emitter is a pending emitter: invoked with the instruction's operand
// value, its absolute branch target (meaningful only for branching
// instructions), and the current instruction's own PC, it returns the
// ordered IR statements for that instruction site.
type Emitter func(value, target, currentPC int32) []ir.Node

// n is the sentinel combinator call sites pass in place of a register
// name to mean "this position is filled by the instruction's immediate
// operand", per the LD8(dst,'n','n') / LD_WRITE_MEM('n','n',src) shapes
// in the opcode table.
const n = "n"

// i is the sentinel marking an indexed-register pseudo-pair, per the
// POP('i', X) / LD8_D(dst, 'i', X) shapes.
const i = "i"

func reg(name string) ir.Register {
	return ir.NewRegister(name)
}

func lit(v int32) ir.Literal {
	return ir.NewLiteral(v)
}

func pairName(hi, lo string) string {
	return strings.ToUpper(hi + lo)
}

func getPair(hi, lo string) *ir.CallExpression {
	return ir.NewCallName("get" + pairName(hi, lo))
}

func setPair(hi, lo string, value ir.Node) *ir.ExpressionStatement {
	return ir.NewExpressionStatement(ir.NewCallName("set"+pairName(hi, lo), value))
}

func incPair(hi, lo string) *ir.ExpressionStatement {
	return ir.NewExpressionStatement(ir.NewCallName("inc" + pairName(hi, lo)))
}

func decPair(hi, lo string) *ir.ExpressionStatement {
	return ir.NewExpressionStatement(ir.NewCallName("dec" + pairName(hi, lo)))
}

func getX(family string) *ir.CallExpression {
	return ir.NewCallName("get" + family)
}

func setX(family string, value ir.Node) *ir.ExpressionStatement {
	return ir.NewExpressionStatement(ir.NewCallName("set"+family, value))
}

func readMem8(addr ir.Node) *ir.CallExpression {
	return ir.NewCallName("readMem", addr)
}

func readMem16(addr ir.Node) *ir.CallExpression {
	return ir.NewCallName("readMemWord", addr)
}

func writeMem(addr, value ir.Node) *ir.ExpressionStatement {
	return ir.NewExpressionStatement(ir.NewCallName("writeMem", addr, value))
}

func assign(op string, target, value ir.Node) *ir.ExpressionStatement {
	return ir.NewExpressionStatement(ir.NewAssignment(op, target, value))
}

func szpMember(object ir.Node) *ir.MemberExpression {
	return ir.NewMember(ir.NewIdentifier("SZP_TABLE"), object)
}

func pcIdent() ir.Identifier    { return ir.NewIdentifier("pc") }
func spIdent() ir.Identifier    { return ir.NewIdentifier("sp") }
func tstatesIdent() ir.Identifier { return ir.NewIdentifier("tstates") }

// indexedAddr builds get<X>() + Literal(disp) as a fresh subtree on
// every call. INC_X/DEC_X call it once per use; CBRot and cbBitWrite
// reuse one result for both the read and the write.
func indexedAddr(family string, disp int32) *ir.BinaryExpression {
	return ir.NewBinary("+", getX(family), lit(disp))
}
