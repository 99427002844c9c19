package tables

import "github.com/atoorisol/jssms/ops"

// GenerateIndexTable builds the DD or FD table for family ("IX" or
// "IY"): most entries are left undefined, meaning the decoder falls
// through to the main table unaffected by the index prefix (the
// prefix is a documented no-op on hardware for any opcode it doesn't
// specifically override). The populated entries mirror initDDOps/
// initFDOps exactly: the 16-bit index-register loads/adds/inc/dec,
// the indexed 8-bit loads/stores/arithmetic with their displacement
// operand, stack ops on the index register, JP/LD SP from the index
// register, and the 0xCB back-reference to the DDCB/FDCB table.
//
// Entry 0x76 is deliberately left undefined: in the source this slot
// held a confused "LD (IX+d),B" label on what is actually HALT's
// opcode byte. Leaving it unpopulated means the decoder falls through
// to the main table's real HALT, which is what the hardware does (an
// index prefix in front of HALT has no effect) — the confusion is
// preserved by omission rather than compiled into an incorrect store.
func GenerateIndexTable(family string) Table {
	var t Table
	for i := range t {
		t[i] = undefined()
	}

	t[0x21] = Opcode{Name: "LD " + family + ",nn", Emit: ops.LD_SET_X(family), Operand: UINT16}
	t[0x22] = Opcode{Name: "LD (nn)," + family, Emit: ops.LD_WRITE_MEM_X(family), Operand: UINT16}
	t[0x2A] = Opcode{Name: "LD " + family + ",(nn)", Emit: ops.LD_X_MEM(family), Operand: UINT16}
	t[0xE5] = Opcode{Name: "PUSH " + family, Emit: ops.PUSH(i, family)}
	t[0xE1] = Opcode{Name: "POP " + family, Emit: ops.POP(i, family)}
	t[0xF9] = Opcode{Name: "LD SP," + family, Emit: ops.LD_SP_X(family)}
	// "LD (IX+d),n" needs two operand bytes (displacement, then the
	// immediate) that the single-operand-per-slot OperandKind tag
	// can't express. Left as a decoder terminator: the displacement
	// byte is consumed (the immediate after it is not), and no emitter
	// runs.
	t[0x36] = Opcode{Name: "LD (" + family + "+d),n", Operand: UINT8}
	t[0x34] = Opcode{Name: "INC (" + family + "+d)", Emit: ops.INC_X(family), Operand: UINT8}
	t[0x35] = Opcode{Name: "DEC (" + family + "+d)", Emit: ops.DEC_X(family), Operand: UINT8}
	t[0xE9] = Opcode{Name: "JP (" + family + ")", Emit: ops.JP_X(family), Terminal: "jp"}
	t[0xCB] = Opcode{Name: family + "CB prefix"}
	t[0xE3] = Opcode{Name: "EX (SP)," + family, Emit: ops.EX_SP_X(family)}
	t[0x09] = Opcode{Name: "ADD " + family + ",BC", Emit: ops.ADD_X_PAIR(family, "b", "c")}
	t[0x19] = Opcode{Name: "ADD " + family + ",DE", Emit: ops.ADD_X_PAIR(family, "d", "e")}
	t[0x29] = Opcode{Name: "ADD " + family + "," + family, Emit: ops.ADD_X_SELF(family)}
	t[0x39] = Opcode{Name: "ADD " + family + ",SP", Emit: ops.ADD_X_SP(family)}
	t[0x23] = Opcode{Name: "INC " + family, Emit: ops.INC_X_PAIR(family)}
	t[0x2B] = Opcode{Name: "DEC " + family, Emit: ops.DEC_X_PAIR(family)}

	for opcode := 0x46; opcode <= 0x7E; opcode += 0x08 {
		if opcode == 0x76 {
			continue
		}
		dest := regLetters[(opcode>>3)&0x07]
		t[opcode] = Opcode{Name: "LD " + dest + ",(" + family + "+d)", Emit: ops.LD8_D(dest, i, family), Operand: UINT8}
	}
	for opcode := 0x70; opcode <= 0x77; opcode++ {
		if opcode == 0x76 {
			continue
		}
		src := regLetters[opcode&0x07]
		t[opcode] = Opcode{Name: "LD (" + family + "+d)," + src, Emit: ops.LD_X(src, i, family), Operand: UINT8}
	}

	aluXBuilders := [8]func(string) ops.Emitter{ops.ADD_X, ops.ADC_X, ops.SUB_X, ops.SBC_X, ops.AND_X, ops.XOR_X, ops.OR_X, ops.CP_X}
	for opcode := 0x86; opcode <= 0xBE; opcode += 0x08 {
		alu := (opcode >> 3) & 0x07
		name := aluDisp[alu] + "(" + family + "+d)"
		t[opcode] = Opcode{Name: name, Emit: aluXBuilders[alu](family), Operand: UINT8}
	}

	return t
}

// GenerateIndexBitTable builds the DDCB/FDCB table for family: the
// same rotate/shift/BIT/RES/SET grid as CB, but every target is the
// indexed memory operand (IX+d)/(IY+d), with the displacement read
// before the sub-opcode byte (decode package's responsibility, not
// this table's).
func GenerateIndexBitTable(family string) Table {
	var t Table
	for i := range t {
		t[i] = undefined()
	}

	for group := 0; group < 8; group++ {
		for r := 0; r < 8; r++ {
			opcode := group<<3 | r
			t[opcode] = Opcode{Name: cbGroupMnemonic[group] + " (" + family + "+d)", Emit: ops.CBRot(cbGroupOp[group], i, family)}
		}
	}
	for bit := 0; bit < 8; bit++ {
		for r := 0; r < 8; r++ {
			opcode := 0x40 + bit<<3 | r
			t[opcode] = Opcode{Name: "BIT " + bitDigit(bit) + ",(" + family + "+d)", Emit: ops.CBBit(int32(bit), i, family)}
		}
	}
	for bit := 0; bit < 8; bit++ {
		for r := 0; r < 8; r++ {
			opcode := 0x80 + bit<<3 | r
			t[opcode] = Opcode{Name: "RES " + bitDigit(bit) + ",(" + family + "+d)", Emit: ops.CBRes(int32(bit), i, family)}
		}
	}
	for bit := 0; bit < 8; bit++ {
		for r := 0; r < 8; r++ {
			opcode := 0xC0 + bit<<3 | r
			t[opcode] = Opcode{Name: "SET " + bitDigit(bit) + ",(" + family + "+d)", Emit: ops.CBSet(int32(bit), i, family)}
		}
	}

	return t
}

// i mirrors ops.i; the DD/FD/DDCB/FDCB table builders pass it as the
// sentinel marking an indexed-family argument.
const i = "i"

var (
	IX   = GenerateIndexTable("IX")
	IY   = GenerateIndexTable("IY")
	IXCB = GenerateIndexBitTable("IX")
	IYCB = GenerateIndexBitTable("IY")
)
