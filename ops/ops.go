package ops

import (
	"github.com/atoorisol/jssms/ir"
	"github.com/atoorisol/jssms/z80flags"
)

// NOOP emits no statements. Used for unknown CB/ED sub-opcodes, which
// Z80 lore treats as no-ops, and for the literal NOP instruction.
func NOOP() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{}
	}
}

// LD8 covers the four 8-bit load shapes documented in the combinator
// table, dispatching on argument count and on the 'n','n' sentinel:
//
//	LD8(dst)          imm8  -> dst = value
//	LD8(dst, src)     none  -> dst = src
//	LD8(dst, 'n','n') imm16 -> dst = readMem(value)
//	LD8(dst, hi, lo)  none  -> dst = readMem(get<HI LO>())
func LD8(args ...string) Emitter {
	switch len(args) {
	case 1:
		dst := args[0]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{assign("=", reg(dst), lit(value))}
		}
	case 2:
		dst, src := args[0], args[1]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{assign("=", reg(dst), reg(src))}
		}
	case 3:
		dst := args[0]
		if args[1] == n && args[2] == n {
			return func(value, target, currentPC int32) []ir.Node {
				return []ir.Node{assign("=", reg(dst), readMem8(lit(value)))}
			}
		}
		hi, lo := args[1], args[2]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{assign("=", reg(dst), readMem8(getPair(hi, lo)))}
		}
	default:
		invalidArity("LD8", args...)
		return nil
	}
}

// LD16 covers the two 16-bit load shapes:
//
//	LD16(hi, lo)          imm16 -> set<HI LO>(value)
//	LD16(hi, lo, 'n','n') imm16 -> set<HI LO>(readMemWord(value))
func LD16(args ...string) Emitter {
	switch len(args) {
	case 2:
		hi, lo := args[0], args[1]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{setPair(hi, lo, lit(value))}
		}
	case 4:
		if args[2] != n || args[3] != n {
			invalidArity("LD16", args...)
		}
		hi, lo := args[0], args[1]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{setPair(hi, lo, readMem16(lit(value)))}
		}
	default:
		invalidArity("LD16", args...)
		return nil
	}
}

// LD_WRITE_MEM covers the four memory-store shapes:
//
//	LD_WRITE_MEM(hi, lo)            imm8  -> writeMem(get<HI LO>(), value)
//	LD_WRITE_MEM(hi, lo, src)       none  -> writeMem(get<HI LO>(), src)
//	LD_WRITE_MEM('n','n', src)      imm16 -> writeMem(value, src)
//	LD_WRITE_MEM('n','n', hi, lo)   imm16 -> writeMem(value, lo); writeMem(value+1, hi)
func LD_WRITE_MEM(args ...string) Emitter {
	switch len(args) {
	case 2:
		hi, lo := args[0], args[1]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{writeMem(getPair(hi, lo), lit(value))}
		}
	case 3:
		if args[0] == n && args[1] == n {
			src := args[2]
			return func(value, target, currentPC int32) []ir.Node {
				return []ir.Node{writeMem(lit(value), reg(src))}
			}
		}
		hi, lo, src := args[0], args[1], args[2]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{writeMem(getPair(hi, lo), reg(src))}
		}
	case 4:
		if args[0] != n || args[1] != n {
			invalidArity("LD_WRITE_MEM", args...)
		}
		hi, lo := args[2], args[3]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				writeMem(lit(value), reg(lo)),
				writeMem(ir.NewBinary("+", lit(value), lit(1)), reg(hi)),
			}
		}
	default:
		invalidArity("LD_WRITE_MEM", args...)
		return nil
	}
}

// LD_SP sets the stack pointer from an imm16 operand.
func LD_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("=", spIdent(), lit(value))}
	}
}

// INC8 and DEC8 apply the external inc8/dec8 helpers (which own the
// flag side-effects) to a register in place.
func INC8(r string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("=", reg(r), ir.NewCallName("inc8", reg(r)))}
	}
}

func DEC8(r string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("=", reg(r), ir.NewCallName("dec8", reg(r)))}
	}
}

// INC_MEM and DEC_MEM are the (HL)-indirect counterparts of INC8/DEC8:
// "INC (HL)" and "DEC (HL)" are 8-bit ALU ops on a memory operand, not
// a register, and INC8/DEC8's shape has no way to express that. Both
// follow the same read/modify/write pattern used for every (HL) ALU
// opcode.
func INC_MEM(hi, lo string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		addr := getPair(hi, lo)
		return []ir.Node{writeMem(addr, ir.NewCallName("inc8", readMem8(addr)))}
	}
}

func DEC_MEM(hi, lo string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		addr := getPair(hi, lo)
		return []ir.Node{writeMem(addr, ir.NewCallName("dec8", readMem8(addr)))}
	}
}

// INC16 and DEC16 bump a register pair via the external inc<HI LO>/
// dec<HI LO> helpers (no flag effects on the Z80 for these forms).
func INC16(hi, lo string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{incPair(hi, lo)}
	}
}

func DEC16(hi, lo string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{decPair(hi, lo)}
	}
}

// ADD16 computes set<DH DL>(add16(get<DH DL>(), get<SH SL>())).
func ADD16(dh, dl, sh, sl string) Emitter {
	return add16Family(dh, dl, sh, sl, "add16")
}

// ADC16 and SBC16 follow ADD16's template with the carry-aware ED
// extended opcodes adc_a/sbc_a's 16-bit counterparts (per SPEC_FULL's
// resolution of the dropped ADC/SBC open question).
func ADC16(dh, dl, sh, sl string) Emitter {
	return add16Family(dh, dl, sh, sl, "adc16")
}

func SBC16(dh, dl, sh, sl string) Emitter {
	return add16Family(dh, dl, sh, sl, "sbc16")
}

func add16Family(dh, dl, sh, sl, callee string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setPair(dh, dl, ir.NewCallName(callee, getPair(dh, dl), getPair(sh, sl)))}
	}
}

type aluOp int

const (
	aluAdd aluOp = iota
	aluAdc
	aluSub
	aluSbc
	aluAnd
	aluXor
	aluOr
	aluCp
)

var aluCallee = map[aluOp]string{
	aluAdd: "add_a",
	aluAdc: "adc_a",
	aluSub: "sub_a",
	aluSbc: "sbc_a",
	aluCp:  "cp_a",
}

// aluCombinator builds the shared implementation behind ADD/ADC/SUB/
// SBC/CP: accumulator-targeting ALU ops whose call alone carries the
// flag side-effects, with no separate assignment statement (the
// external callee mutates 'a' and 'f' itself). Arity:
//
//	op()        imm8 -> <callee>(value)
//	op(r)       none -> <callee>(r)
//	op(hi, lo)  none -> <callee>(readMem(get<HI LO>()))
func aluCombinator(name string, op aluOp) func(args ...string) Emitter {
	callee := aluCallee[op]
	return func(args ...string) Emitter {
		switch len(args) {
		case 0:
			return func(value, target, currentPC int32) []ir.Node {
				return []ir.Node{ir.NewExpressionStatement(ir.NewCallName(callee, lit(value)))}
			}
		case 1:
			r := args[0]
			return func(value, target, currentPC int32) []ir.Node {
				return []ir.Node{ir.NewExpressionStatement(ir.NewCallName(callee, reg(r)))}
			}
		case 2:
			hi, lo := args[0], args[1]
			return func(value, target, currentPC int32) []ir.Node {
				return []ir.Node{ir.NewExpressionStatement(ir.NewCallName(callee, readMem8(getPair(hi, lo))))}
			}
		default:
			invalidArity(name, args...)
			return nil
		}
	}
}

var (
	ADD = aluCombinator("ADD", aluAdd)
	ADC = aluCombinator("ADC", aluAdc)
	SUB = aluCombinator("SUB", aluSub)
	SBC = aluCombinator("SBC", aluSbc)
	CP  = aluCombinator("CP", aluCp)
)

// AND, OR and XOR each inline the accumulator update as IR (rather
// than delegating to a callee) because the flag result is a direct
// SZP_TABLE lookup on the post-op accumulator value, with AND adding
// F_HALFCARRY. For the register form with r == 'a', AND and OR emit
// only the flag update and XOR emits literal a/f assignments. The
// two-argument form op(hi, lo) reads its operand from (get<HI LO>()).
func AND(args ...string) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				assign("&=", reg("a"), lit(value)),
				andFlagsStmt(),
			}
		}
	case 1:
		r := args[0]
		if r == "a" {
			return func(value, target, currentPC int32) []ir.Node {
				return []ir.Node{andFlagsStmt()}
			}
		}
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				assign("&=", reg("a"), reg(r)),
				andFlagsStmt(),
			}
		}
	case 2:
		hi, lo := args[0], args[1]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{assign("&=", reg("a"), readMem8(getPair(hi, lo))), andFlagsStmt()}
		}
	default:
		invalidArity("AND", args...)
		return nil
	}
}

func andFlagsStmt() *ir.ExpressionStatement {
	return assign("=", reg("f"), ir.NewBinary("|", szpMember(reg("a")), lit(int32(z80flags.HalfCarry))))
}

func OR(args ...string) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				assign("|=", reg("a"), lit(value)),
				orFlagsStmt(),
			}
		}
	case 1:
		r := args[0]
		if r == "a" {
			return func(value, target, currentPC int32) []ir.Node {
				return []ir.Node{orFlagsStmt()}
			}
		}
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				assign("|=", reg("a"), reg(r)),
				orFlagsStmt(),
			}
		}
	case 2:
		hi, lo := args[0], args[1]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{assign("|=", reg("a"), readMem8(getPair(hi, lo))), orFlagsStmt()}
		}
	default:
		invalidArity("OR", args...)
		return nil
	}
}

func orFlagsStmt() *ir.ExpressionStatement {
	return assign("=", reg("f"), szpMember(reg("a")))
}

func XOR(args ...string) Emitter {
	switch len(args) {
	case 0:
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				assign("^=", reg("a"), lit(value)),
				orFlagsStmt(),
			}
		}
	case 1:
		r := args[0]
		if r == "a" {
			zeroFlags := int32(z80flags.SZPTable[0])
			return func(value, target, currentPC int32) []ir.Node {
				return []ir.Node{
					assign("=", reg("a"), lit(0)),
					assign("=", reg("f"), lit(zeroFlags)),
				}
			}
		}
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{
				assign("^=", reg("a"), reg(r)),
				orFlagsStmt(),
			}
		}
	case 2:
		hi, lo := args[0], args[1]
		return func(value, target, currentPC int32) []ir.Node {
			return []ir.Node{assign("^=", reg("a"), readMem8(getPair(hi, lo))), orFlagsStmt()}
		}
	default:
		invalidArity("XOR", args...)
		return nil
	}
}

// EX_AF swaps AF with the shadow AF' register set.
func EX_AF() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName("exAF"))}
	}
}

// EXX swaps BC/DE/HL with their shadow register set.
func EXX() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName("exx"))}
	}
}

func RLA() Emitter { return callOnly("rla_a") }
func RRA() Emitter { return callOnly("rra_a") }
func DAA() Emitter { return callOnly("daa") }
func CPL() Emitter { return callOnly("cpl") }
func SCF() Emitter { return callOnly("scf") }
func CCF() Emitter { return callOnly("ccf") }
func DI() Emitter  { return callOnly("di") }
func EI() Emitter  { return callOnly("ei") }
func HALT() Emitter { return callOnly("halt") }

func callOnly(callee string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName(callee))}
	}
}

// OUT_N emits "OUT (n),A": ioOut(value, a).
func OUT_N() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName("ioOut", lit(value), reg("a")))}
	}
}

// IN_N emits "IN A,(n)": a = ioIn(value).
func IN_N() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("=", reg("a"), ir.NewCallName("ioIn", lit(value)))}
	}
}
