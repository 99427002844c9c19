package ops

import "github.com/atoorisol/jssms/ir"

// LD8_D emits the indexed load "LD8_D(dst, 'i', X)":
//
//	dst = readMem(get<X>() + d)
//
// d (the displacement) is the instruction's UINT8 operand.
func LD8_D(args ...string) Emitter {
	if len(args) != 3 || args[1] != i {
		invalidArity("LD8_D", args...)
	}
	dst, family := args[0], args[2]
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("=", reg(dst), readMem8(indexedAddr(family, value)))}
	}
}

// LD_X emits the indexed store "LD_X(src, 'i', X)":
//
//	writeMem(get<X>() + d, src)
func LD_X(args ...string) Emitter {
	if len(args) != 3 || args[1] != i {
		invalidArity("LD_X", args...)
	}
	src, family := args[0], args[2]
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{writeMem(indexedAddr(family, value), reg(src))}
	}
}

// INC_X and DEC_X apply inc8/dec8 to the indexed memory operand.
func INC_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		addr := indexedAddr(family, value)
		return []ir.Node{writeMem(addr, ir.NewCallName("inc8", readMem8(indexedAddr(family, value))))}
	}
}

func DEC_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		addr := indexedAddr(family, value)
		return []ir.Node{writeMem(addr, ir.NewCallName("dec8", readMem8(indexedAddr(family, value))))}
	}
}

// aluXCombinator builds the callee-based half of the indexed-memory
// ALU family: ADD_X, ADC_X, SUB_X, SBC_X and CP_X each read (X+d) and
// call the same accumulator-mutating callee the register/HL forms
// use. Named after two of the three the combinator table spells out
// explicitly (ADD_X, CP_X); the rest follow the same shape,
// instantiating the full indexed ALU range from one parameterized
// helper. AND_X/XOR_X/OR_X are built separately (see below) since
// those ops inline their flag computation rather than delegating to a
// callee.
func aluXCombinator(name string, op aluOp) func(family string) Emitter {
	callee := aluCallee[op]
	return func(family string) Emitter {
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{ir.NewExpressionStatement(ir.NewCallName(callee, readMem8(indexedAddr(family, value))))}
		}
	}
}

var (
	ADD_X = aluXCombinator("ADD_X", aluAdd)
	ADC_X = aluXCombinator("ADC_X", aluAdc)
	SUB_X = aluXCombinator("SUB_X", aluSub)
	SBC_X = aluXCombinator("SBC_X", aluSbc)
	CP_X  = aluXCombinator("CP_X", aluCp)
)

// AND_X, XOR_X and OR_X are the indexed-memory counterparts of
// AND/XOR/OR: same inline "a op= readMem(X+d); f = ..." shape, just
// with the operand read from (X+d) instead of a register or immediate.
// There is no self-register collapse case here since the Z80 has no
// "AND (IX+d)" where the operand and the accumulator coincide.
func AND_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			assign("&=", reg("a"), readMem8(indexedAddr(family, value))),
			andFlagsStmt(),
		}
	}
}

func OR_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			assign("|=", reg("a"), readMem8(indexedAddr(family, value))),
			orFlagsStmt(),
		}
	}
}

func XOR_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			assign("^=", reg("a"), readMem8(indexedAddr(family, value))),
			orFlagsStmt(),
		}
	}
}

// LD_SET_X emits "LD IX,nn": set<X>(value).
func LD_SET_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setX(family, lit(value))}
	}
}

// LD_WRITE_MEM_X emits "LD (nn),IX": two writes, low byte then high
// byte, matching LD_WRITE_MEM's four-argument form.
func LD_WRITE_MEM_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			writeMem(lit(value), ir.NewBinary("&", getX(family), lit(0xFF))),
			writeMem(ir.NewBinary("+", lit(value), lit(1)), ir.NewBinary(">>", getX(family), lit(8))),
		}
	}
}

// LD_X_MEM emits "LD IX,(nn)": set<X>(readMemWord(value)).
func LD_X_MEM(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setX(family, readMem16(lit(value)))}
	}
}

// LD_SP_X emits "LD SP,IX": sp = get<X>().
func LD_SP_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("=", spIdent(), getX(family))}
	}
}

// ADD_X_PAIR emits "ADD IX,BC"-shaped adds against a main register
// pair, ADD_X_SELF the "ADD IX,IX" self-add, and ADD_X_SP the
// "ADD IX,SP" form — the three ADD16-style sources the index register
// can add against, none of which fit ADD16's hi/lo-pair-only shape
// since the destination is get/setX rather than get/setPair.
func ADD_X_PAIR(family, sh, sl string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setX(family, ir.NewCallName("add16", getX(family), getPair(sh, sl)))}
	}
}

func ADD_X_SELF(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setX(family, ir.NewCallName("add16", getX(family), getX(family)))}
	}
}

func ADD_X_SP(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setX(family, ir.NewCallName("add16", getX(family), spIdent()))}
	}
}

// INC_X_PAIR and DEC_X_PAIR bump the index register itself (distinct
// from INC_X/DEC_X, which operate on the indexed memory operand).
func INC_X_PAIR(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setX(family, ir.NewBinary("+", getX(family), lit(1)))}
	}
}

func DEC_X_PAIR(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setX(family, ir.NewBinary("-", getX(family), lit(1)))}
	}
}

// EX_SP_X swaps the top-of-stack word with the index register.
func EX_SP_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		low := readMem8(spIdent())
		high := readMem8(ir.NewBinary("+", spIdent(), lit(1)))
		memVal := ir.NewBinary("|", ir.NewBinary("<<", high, lit(8)), low)
		return []ir.Node{
			writeMem(spIdent(), ir.NewBinary("&", getX(family), lit(0xFF))),
			writeMem(ir.NewBinary("+", spIdent(), lit(1)), ir.NewBinary(">>", getX(family), lit(8))),
			setX(family, memVal),
		}
	}
}

// JP_X emits "JP (IX)"/"JP (IY)": the jump target is the register's
// own value, not memory at that address.
//
//	pc = get<X>(); return
func JP_X(family string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			assign("=", pcIdent(), getX(family)),
			ir.NewReturn(),
		}
	}
}

// POP covers both the main-register-pair and indexed-register forms:
//
//	POP(hi, lo)   -> set<HI LO>(readMemWord(sp)); sp += 2
//	POP('i', X)   -> set<X>(readMemWord(sp)); sp += 2
func POP(args ...string) Emitter {
	if len(args) != 2 {
		invalidArity("POP", args...)
	}
	if args[0] == i {
		family := args[1]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				setX(family, readMem16(spIdent())),
				assign("+=", spIdent(), lit(2)),
			}
		}
	}
	hi, lo := args[0], args[1]
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			setPair(hi, lo, readMem16(spIdent())),
			assign("+=", spIdent(), lit(2)),
		}
	}
}

// PUSH covers both the main-register-pair and indexed-register forms,
// pushing high byte at sp+1 and low byte at sp after sp -= 2:
//
//	PUSH(hi, lo) -> sp -= 2; writeMem(sp, get<HI LO>() & 0xFF); writeMem(sp+1, get<HI LO>() >> 8)
//	PUSH('i', X) -> sp -= 2; writeMem(sp, get<X>() & 0xFF); writeMem(sp+1, get<X>() >> 8)
func PUSH(args ...string) Emitter {
	if len(args) != 2 {
		invalidArity("PUSH", args...)
	}
	var value func() ir.Node
	if args[0] == i {
		family := args[1]
		value = func() ir.Node { return getX(family) }
	} else {
		hi, lo := args[0], args[1]
		value = func() ir.Node { return getPair(hi, lo) }
	}
	return func(v, target, currentPC int32) []ir.Node {
		return []ir.Node{
			assign("-=", spIdent(), lit(2)),
			writeMem(spIdent(), ir.NewBinary("&", value(), lit(0xFF))),
			writeMem(ir.NewBinary("+", spIdent(), lit(1)), ir.NewBinary(">>", value(), lit(8))),
		}
	}
}
