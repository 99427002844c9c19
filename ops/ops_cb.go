package ops

import "github.com/atoorisol/jssms/ir"

// m is the sentinel marking "the memory operand at (HL)" in the CB
// rotate/shift/bit combinators below, distinguishing it from a bare
// register letter. Paired with the existing 'i' sentinel for the
// DDCB/FDCB indexed forms; register index 6 ((HL)) is special-cased
// the same way throughout the rotate/shift, BIT, RES and SET groups.
const m = "m"

// CBRot covers the eight CB rotate/shift groups (rlc, rrc, rl, rr,
// sla, sra, sll, srl) across all three addressing forms the CB and
// DDCB/FDCB tables need:
//
//	CBRot(op, r)        -> r = call(op, r)
//	CBRot(op, 'm')      -> writeMem(hl, call(op, readMem(hl)))
//	CBRot(op, 'i', X)   -> addr = get<X>()+d; writeMem(addr, call(op, readMem(addr)))
func CBRot(op string, args ...string) Emitter {
	switch len(args) {
	case 1:
		if args[0] == m {
			return func(value, target, currentPC int32) []ir.Node {
				addr := getPair("h", "l")
				return []ir.Node{writeMem(addr, ir.NewCallName(op, readMem8(addr)))}
			}
		}
		r := args[0]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{assign("=", reg(r), ir.NewCallName(op, reg(r)))}
		}
	case 2:
		if args[0] != i {
			invalidArity("CBRot", args...)
		}
		family := args[1]
		return func(value, target, currentPC int32) []ir.Node {
			addr := indexedAddr(family, value)
			return []ir.Node{writeMem(addr, ir.NewCallName(op, readMem8(addr)))}
		}
	default:
		invalidArity("CBRot", args...)
		return nil
	}
}

// CBBit tests a single bit and sets flags via the external "bit"
// callee; unlike CBRot/CBRes/CBSet it never writes its operand back,
// so the three addressing forms all collapse to a single call
// expression with a different operand subtree.
//
//	CBBit(n, r)        -> bit(n, r)
//	CBBit(n, 'm')       -> bit(n, readMem(hl))
//	CBBit(n, 'i', X)    -> bit(n, readMem(get<X>()+d))
func CBBit(bit int32, args ...string) Emitter {
	operand, ok := cbOperand(args)
	if !ok {
		invalidArity("CBBit", args...)
	}
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName("bit", lit(bit), operand(value)))}
	}
}

// CBRes and CBSet clear or set a single bit and write the result back,
// following the same three addressing forms as CBRot.
//
//	CBRes(n, r)      -> r = res(n, r)
//	CBRes(n, 'm')     -> writeMem(hl, res(n, readMem(hl)))
//	CBRes(n, 'i', X)  -> addr = get<X>()+d; writeMem(addr, res(n, readMem(addr)))
func CBRes(bit int32, args ...string) Emitter {
	return cbBitWrite("res", bit, args)
}

func CBSet(bit int32, args ...string) Emitter {
	return cbBitWrite("set", bit, args)
}

func cbBitWrite(callee string, bit int32, args []string) Emitter {
	switch len(args) {
	case 1:
		if args[0] == m {
			return func(value, target, currentPC int32) []ir.Node {
				addr := getPair("h", "l")
				return []ir.Node{writeMem(addr, ir.NewCallName(callee, lit(bit), readMem8(addr)))}
			}
		}
		r := args[0]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{assign("=", reg(r), ir.NewCallName(callee, lit(bit), reg(r)))}
		}
	case 2:
		if args[0] != i {
			invalidArity(callee, args...)
		}
		family := args[1]
		return func(value, target, currentPC int32) []ir.Node {
			addr := indexedAddr(family, value)
			return []ir.Node{writeMem(addr, ir.NewCallName(callee, lit(bit), readMem8(addr)))}
		}
	default:
		invalidArity(callee, args...)
		return nil
	}
}

// cbOperand resolves a CB-style target descriptor to a function from
// the instruction's operand value to the IR subtree reading that
// target, shared by CBBit across its three addressing forms.
func cbOperand(args []string) (func(value int32) ir.Node, bool) {
	switch len(args) {
	case 1:
		if args[0] == m {
			return func(value int32) ir.Node { return readMem8(getPair("h", "l")) }, true
		}
		r := args[0]
		return func(value int32) ir.Node { return reg(r) }, true
	case 2:
		if args[0] != i {
			return nil, false
		}
		family := args[1]
		return func(value int32) ir.Node { return readMem8(indexedAddr(family, value)) }, true
	default:
		return nil, false
	}
}
