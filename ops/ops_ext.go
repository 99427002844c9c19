package ops

import "github.com/atoorisol/jssms/ir"

// The ED-prefixed extended opcodes (block transfer/compare/IO, the
// I/O-port instructions, interrupt mode selection, and the I/R-register
// loads) round out a complete implementation of the instruction set.
// Each delegates its actual semantics to a single named external
// callable, the same pattern ADD/SUB/etc. use for the
// accumulator-mutating ALU ops.

// NEG negates the accumulator: neg_a(), which updates a itself.
func NEG() Emitter { return callOnly("neg_a") }

// RRD and RLD rotate a BCD digit pair between A and (HL).
func RRD() Emitter { return callOnly("rrd") }
func RLD() Emitter { return callOnly("rld") }

// IM selects interrupt mode 0, 1 or 2.
func IM(mode int32) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName("setIM", lit(mode)))}
	}
}

// RETN and RETI are return-from-interrupt variants; both restore PC
// from the stack and then manage IFF1/IFF2 in the (out-of-scope) CPU
// runtime, so the emitted IR is a single call plus the shared
// unconditional-RET shape.
func RETN() Emitter { return retnFamily("retn") }
func RETI() Emitter { return retnFamily("reti") }

func retnFamily(callee string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{
			ir.NewExpressionStatement(ir.NewCallName(callee)),
			assign("=", pcIdent(), readMem16(spIdent())),
			assign("+=", spIdent(), lit(2)),
			ir.NewReturn(),
		}
	}
}

// LD_I_A, LD_R_A, LD_A_I and LD_A_R move between A and the I/R
// registers, which this IR addresses as Identifiers since they are
// not part of the Register variant's a..l/f set.
func LD_I_A() Emitter { return ldSpecial("i", "a", true) }
func LD_R_A() Emitter { return ldSpecial("r", "a", true) }
func LD_A_I() Emitter { return ldSpecial("a", "i", false) }
func LD_A_R() Emitter { return ldSpecial("a", "r", false) }

func ldSpecial(dst, src string, dstIsSpecial bool) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		var left, right ir.Node
		if dstIsSpecial {
			left = ir.NewIdentifier(dst)
			right = reg(src)
		} else {
			left = reg(dst)
			right = ir.NewIdentifier(src)
		}
		return []ir.Node{assign("=", left, right)}
	}
}

// IN_C emits "IN r,(C)": dst = ioIn(getBC()). The flags-only "IN (C)"
// form (register index 6) is IN_C0, not this combinator.
func IN_C(dst string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		portRead := ir.NewCallName("ioIn", getPair("b", "c"))
		return []ir.Node{assign("=", reg(dst), portRead)}
	}
}

// OUT_C emits "OUT (C),r": ioOut(getBC(), src).
func OUT_C(src string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName("ioOut", getPair("b", "c"), reg(src)))}
	}
}

// IN_C0 emits the flags-only "IN (C)" form: the port is read for its
// side-effect on the flags but the value is discarded, so there is no
// destination register to assign into.
func IN_C0() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName("ioIn", getPair("b", "c")))}
	}
}

// OUT_C0 emits "OUT (C),0": ioOut(getBC(), 0).
func OUT_C0() Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName("ioOut", getPair("b", "c"), lit(0)))}
	}
}

// BlockOp covers the sixteen ED block transfer/compare/IO
// instructions (LDI/LDIR/LDD/LDDR, CPI/CPIR/CPD/CPDR, INI/INIR/IND/
// INDR, OUTI/OTIR/OUTD/OTDR). Each touches HL/DE/BC/the flags in a way
// that doesn't reduce to a handful of IR statements without a local
// temporary the IR has no way to express, so — like the ALU
// combinators — the combinator just names the external callable and
// lets the CPU runtime own the bookkeeping.
func BlockOp(name string) Emitter {
	return func(value, target, currentPC int32) []ir.Node {
		return []ir.Node{ir.NewExpressionStatement(ir.NewCallName(name))}
	}
}
