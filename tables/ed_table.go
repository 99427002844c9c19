package tables

import "github.com/atoorisol/jssms/ops"

// blockPairs names the sixteen ED block transfer/compare/IO
// opcodes, grounded on initEDOps's 0xA0-0xBB assignments; each row is
// {base-increment opcode, repeat opcode}.
type blockPair struct {
	base, repeat     int
	baseName, repeatName string
	callee, repeatCallee string
}

var blockPairs = []blockPair{
	{0xA0, 0xB0, "LDI", "LDIR", "ldi", "ldir"},
	{0xA8, 0xB8, "LDD", "LDDR", "ldd", "lddr"},
	{0xA1, 0xB1, "CPI", "CPIR", "cpi", "cpir"},
	{0xA9, 0xB9, "CPD", "CPDR", "cpd", "cpdr"},
	{0xA2, 0xB2, "INI", "INIR", "ini", "inir"},
	{0xAA, 0xBA, "IND", "INDR", "ind", "indr"},
	{0xA3, 0xB3, "OUTI", "OTIR", "outi", "otir"},
	{0xAB, 0xBB, "OUTD", "OTDR", "outd", "otdr"},
}

// ED is the 0xED-prefixed extended table: port I/O, NEG, the I/R
// register loads, interrupt mode selection, RETN/RETI, RRD/RLD, the
// sixteen block ops, and the ED-form 16-bit memory loads/stores and
// ADC/SBC HL,rr. Grounded on initEDOps's exact opcode assignments.
var ED Table

func init() {
	for i := range ED {
		ED[i] = undefined()
	}

	inOpcodes := map[int]string{0x40: "b", 0x48: "c", 0x50: "d", 0x58: "e", 0x60: "h", 0x68: "l", 0x78: "a"}
	for opcode, r := range inOpcodes {
		ED[opcode] = Opcode{Name: "IN " + r + ",(C)", Emit: ops.IN_C(r)}
	}
	ED[0x70] = Opcode{Name: "IN (C)", Emit: ops.IN_C0()}

	outOpcodes := map[int]string{0x41: "b", 0x49: "c", 0x51: "d", 0x59: "e", 0x61: "h", 0x69: "l", 0x79: "a"}
	for opcode, r := range outOpcodes {
		ED[opcode] = Opcode{Name: "OUT (C)," + r, Emit: ops.OUT_C(r)}
	}
	ED[0x71] = Opcode{Name: "OUT (C),0", Emit: ops.OUT_C0()}

	for _, opcode := range []int{0x44, 0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C} {
		ED[opcode] = Opcode{Name: "NEG", Emit: ops.NEG()}
	}

	ED[0x47] = Opcode{Name: "LD I,A", Emit: ops.LD_I_A()}
	ED[0x4F] = Opcode{Name: "LD R,A", Emit: ops.LD_R_A()}
	ED[0x57] = Opcode{Name: "LD A,I", Emit: ops.LD_A_I()}
	ED[0x5F] = Opcode{Name: "LD A,R", Emit: ops.LD_A_R()}

	imOpcodes := map[int]int32{0x46: 0, 0x66: 0, 0x6E: 0, 0x56: 1, 0x76: 1, 0x5E: 2, 0x7E: 2}
	for opcode, mode := range imOpcodes {
		ED[opcode] = Opcode{Name: imName(mode), Emit: ops.IM(mode)}
	}

	ED[0x4D] = Opcode{Name: "RETI", Emit: ops.RETI()}
	for _, opcode := range []int{0x45, 0x55, 0x5D, 0x65, 0x6D, 0x75, 0x7D} {
		ED[opcode] = Opcode{Name: "RETN", Emit: ops.RETN()}
	}

	ED[0x67] = Opcode{Name: "RRD", Emit: ops.RRD()}
	ED[0x6F] = Opcode{Name: "RLD", Emit: ops.RLD()}

	for _, bp := range blockPairs {
		ED[bp.base] = Opcode{Name: bp.baseName, Emit: ops.BlockOp(bp.callee)}
		ED[bp.repeat] = Opcode{Name: bp.repeatName, Emit: ops.BlockOp(bp.repeatCallee)}
	}

	ED[0x43] = Opcode{Name: "LD (nn),BC", Emit: ops.LD_WRITE_MEM("n", "n", "b", "c"), Operand: UINT16}
	ED[0x4B] = Opcode{Name: "LD BC,(nn)", Emit: ops.LD16("b", "c", "n", "n"), Operand: UINT16}
	ED[0x53] = Opcode{Name: "LD (nn),DE", Emit: ops.LD_WRITE_MEM("n", "n", "d", "e"), Operand: UINT16}
	ED[0x5B] = Opcode{Name: "LD DE,(nn)", Emit: ops.LD16("d", "e", "n", "n"), Operand: UINT16}
	ED[0x63] = Opcode{Name: "LD (nn),HL", Emit: ops.LD_WRITE_MEM("n", "n", "h", "l"), Operand: UINT16}
	ED[0x6B] = Opcode{Name: "LD HL,(nn)", Emit: ops.LD16("h", "l", "n", "n"), Operand: UINT16}
	ED[0x73] = Opcode{Name: "LD (nn),SP", Emit: ops.LD_WRITE_MEM_SP(), Operand: UINT16}
	ED[0x7B] = Opcode{Name: "LD SP,(nn)", Emit: ops.LD_SP_MEM(), Operand: UINT16}

	ED[0x4A] = Opcode{Name: "ADC HL,BC", Emit: ops.ADC16("h", "l", "b", "c")}
	ED[0x5A] = Opcode{Name: "ADC HL,DE", Emit: ops.ADC16("h", "l", "d", "e")}
	ED[0x6A] = Opcode{Name: "ADC HL,HL", Emit: ops.ADC16("h", "l", "h", "l")}
	ED[0x7A] = Opcode{Name: "ADC HL,SP", Emit: ops.ADC16_SP()}
	ED[0x42] = Opcode{Name: "SBC HL,BC", Emit: ops.SBC16("h", "l", "b", "c")}
	ED[0x52] = Opcode{Name: "SBC HL,DE", Emit: ops.SBC16("h", "l", "d", "e")}
	ED[0x62] = Opcode{Name: "SBC HL,HL", Emit: ops.SBC16("h", "l", "h", "l")}
	ED[0x72] = Opcode{Name: "SBC HL,SP", Emit: ops.SBC16_SP()}
}

func imName(mode int32) string {
	return "IM " + string([]byte{'0' + byte(mode)})
}
