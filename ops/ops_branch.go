package ops

import "github.com/atoorisol/jssms/ir"

// JR emits the conditional relative jump:
//
//	if (test) { pc = target; tstates -= 5 }
//
// test is supplied by the caller (e.g. a Literal(1) for the
// unconditional JR, or a flag comparison for JR NZ/Z/NC/C), since the
// condition itself does not depend on the instruction's operand.
func JR(test ir.Node) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		body := ir.NewBlock(
			assign("=", pcIdent(), lit(target)),
			assign("-=", tstatesIdent(), lit(5)),
		)
		return []ir.Node{ir.NewIf(test, body)}
	}
}

// DJNZ decrements B, wraps it to 8 bits, and branches if non-zero:
//
//	b = (b-1) & 0xFF
//	if (b != 0) { pc = target; tstates -= 5 }
func DJNZ() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		decB := assign("=", reg("b"), ir.NewBinary("&", ir.NewBinary("-", reg("b"), lit(1)), lit(0xFF)))
		body := ir.NewBlock(
			assign("=", pcIdent(), lit(target)),
			assign("-=", tstatesIdent(), lit(5)),
		)
		branch := ir.NewIf(ir.NewBinary("!=", reg("b"), lit(0)), body)
		return []ir.Node{decB, branch}
	}
}

func flagTest(op string, mask byte) *ir.BinaryExpression {
	return ir.NewBinary(op, ir.NewBinary("&", reg("f"), lit(int32(mask))), lit(0))
}

// RET covers both forms:
//
//	RET()         -> pc = readMemWord(sp); sp += 2; return
//	RET(op, mask) -> ret((f & mask) op 0)   // single call, flags decide inside
func RET(args ...any) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				assign("=", pcIdent(), readMem16(spIdent())),
				assign("+=", spIdent(), lit(2)),
				ir.NewReturn(),
			}
		}
	case 2:
		op, mask := condArgs("RET", args)
		test := flagTest(op, mask)
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{ir.NewExpressionStatement(ir.NewCallName("ret", test))}
		}
	default:
		invalidArity("RET")
		return nil
	}
}

// JP covers both forms:
//
//	JP()         imm16 -> pc = target; return
//	JP(op, mask) imm16 -> if ((f & mask) op 0) { pc = target; return }
func JP(args ...any) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				assign("=", pcIdent(), lit(target)),
				ir.NewReturn(),
			}
		}
	case 2:
		op, mask := condArgs("JP", args)
		test := flagTest(op, mask)
		return func(value, target, currentPC int32) []ir.Node {
			body := ir.NewBlock(
				assign("=", pcIdent(), lit(target)),
				ir.NewReturn(),
			)
			return []ir.Node{ir.NewIf(test, body)}
		}
	default:
		invalidArity("JP")
		return nil
	}
}

// CALL covers both forms:
//
//	CALL()         imm16 -> push1(current_pc+2); pc = target; return
//	CALL(op, mask) imm16 -> if (test) { push1(current_pc+2); tstates -= 7; pc = target; return }
func CALL(args ...any) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				ir.NewExpressionStatement(ir.NewCallName("push1", lit(currentPC+2))),
				assign("=", pcIdent(), lit(target)),
				ir.NewReturn(),
			}
		}
	case 2:
		op, mask := condArgs("CALL", args)
		test := flagTest(op, mask)
		return func(value, target, currentPC int32) []ir.Node {
			body := ir.NewBlock(
				ir.NewExpressionStatement(ir.NewCallName("push1", lit(currentPC+2))),
				assign("-=", tstatesIdent(), lit(7)),
				assign("=", pcIdent(), lit(target)),
				ir.NewReturn(),
			)
			return []ir.Node{ir.NewIf(test, body)}
		}
	default:
		invalidArity("CALL")
		return nil
	}
}

// RST emits a fixed-vector call with no operand:
//
//	push1(current_pc); pc = addr; return
func RST(addr uint16) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			ir.NewExpressionStatement(ir.NewCallName("push1", lit(currentPC))),
			assign("=", pcIdent(), lit(int32(addr))),
			ir.NewReturn(),
		}
	}
}

func condArgs(combinator string, args []any) (string, byte) {
	op, ok := args[0].(string)
	if !ok {
		invalidArity(combinator)
	}
	mask, ok := args[1].(byte)
	if !ok {
		invalidArity(combinator)
	}
	return op, mask
}
