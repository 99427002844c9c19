package ops

import "github.com/atoorisol/jssms/ir"

// RLCA and RRCA rotate the accumulator circularly, distinct from the
// carry-aware RLA/RRA.
func RLCA() Emitter { return callOnly("rlca_a") }
func RRCA() Emitter { return callOnly("rrca_a") }

// EX_DE_HL and EX_SP_HL are the non-indexed register-exchange
// opcodes, siblings of EX_AF and the indexed EX_SP_X.
func EX_DE_HL() Emitter { return callOnly("exDEHL") }
func EX_SP_HL() Emitter { return callOnly("exSPHL") }

// LD_SP_HL emits "LD SP,HL": sp = getHL().
func LD_SP_HL() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("=", spIdent(), getPair("h", "l"))}
	}
}

// JP_HL emits "JP (HL)": the jump target is HL's own value, not
// memory at that address, mirroring JP_X for the index registers.
func JP_HL() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			assign("=", pcIdent(), getPair("h", "l")),
			ir.NewReturn(),
		}
	}
}

// ADD16_SP emits "ADD HL,SP": the one ADD16 source operand that isn't
// addressable as a hi/lo register-letter pair, since SP has no
// matching Register nodes.
func ADD16_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setPair("h", "l", ir.NewCallName("add16", getPair("h", "l"), spIdent()))}
	}
}

// INC_SP and DEC_SP bump the stack pointer directly; INC16/DEC16 only
// cover the hi/lo register-letter pairs, and SP has no such pair.
func INC_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("+=", spIdent(), lit(1))}
	}
}

func DEC_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("-=", spIdent(), lit(1))}
	}
}

// LD_WRITE_MEM_SP and LD_SP_MEM are the ED-prefixed "LD (nn),SP" /
// "LD SP,(nn)" forms: SP has no hi/lo register-letter pair, so it
// needs its own store/load shape instead of LD_WRITE_MEM/LD16.
func LD_WRITE_MEM_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			writeMem(lit(value), ir.NewBinary("&", spIdent(), lit(0xFF))),
			writeMem(ir.NewBinary("+", lit(value), lit(1)), ir.NewBinary(">>", spIdent(), lit(8))),
		}
	}
}

func LD_SP_MEM() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{assign("=", spIdent(), readMem16(lit(value)))}
	}
}

// ADC16_SP and SBC16_SP are ADC16/SBC16's SP-source counterpart to
// ADD16_SP.
func ADC16_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setPair("h", "l", ir.NewCallName("adc16", getPair("h", "l"), spIdent()))}
	}
}

func SBC16_SP() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{setPair("h", "l", ir.NewCallName("sbc16", getPair("h", "l"), spIdent()))}
	}
}
