package tables

import (
	"fmt"

	"github.com/atoorisol/jssms/ops"
	"github.com/atoorisol/jssms/z80flags"
)

// Main is the unprefixed opcode table: a loop-plus-explicit-assignment
// build, with a handful of loops for the regular blocks (LD r,r', ALU
// r, INC/DEC r, LD r,n) followed by one explicit assignment per
// remaining opcode; disassembly names follow the "%s, %s"-with-comma
// convention throughout.
var Main Table

func init() {
	for i := range Main {
		Main[i] = undefined()
	}

	Main[0x00] = Opcode{Name: "NOP", Emit: ops.NOOP()}
	Main[0x76] = Opcode{Name: "HALT", Emit: ops.HALT(), Terminal: "halt"}

	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dest := byte((opcode >> 3) & 0x07)
		src := byte(opcode & 0x07)
		switch {
		case dest == 6:
			Main[opcode] = Opcode{
				Name: fmt.Sprintf("LD (HL), %s", regDisp[src]),
				Emit: ops.LD_WRITE_MEM("h", "l", regLetters[src]),
			}
		case src == 6:
			Main[opcode] = Opcode{
				Name: fmt.Sprintf("LD %s, (HL)", regDisp[dest]),
				Emit: ops.LD8(regLetters[dest], "h", "l"),
			}
		default:
			Main[opcode] = Opcode{
				Name: fmt.Sprintf("LD %s, %s", regDisp[dest], regDisp[src]),
				Emit: ops.LD8(regLetters[dest], regLetters[src]),
			}
		}
	}

	ldRegImm := map[int]byte{0x06: 0, 0x0E: 1, 0x16: 2, 0x1E: 3, 0x26: 4, 0x2E: 5, 0x36: 6, 0x3E: 7}
	for opcode, r := range ldRegImm {
		if r == 6 {
			Main[opcode] = Opcode{Name: "LD (HL), n", Emit: ops.LD_WRITE_MEM("h", "l"), Operand: UINT8}
			continue
		}
		Main[opcode] = Opcode{Name: fmt.Sprintf("LD %s, n", regDisp[r]), Emit: ops.LD8(regLetters[r]), Operand: UINT8}
	}

	aluBlock := func(base int, builder func(args ...string) ops.Emitter, immOpcode int, immBuilder func(args ...string) ops.Emitter, alu string) {
		for src := 0; src <= 7; src++ {
			opcode := base + src
			if src == 6 {
				Main[opcode] = Opcode{Name: fmt.Sprintf("%s (HL)", alu), Emit: builder("h", "l")}
				continue
			}
			Main[opcode] = Opcode{Name: fmt.Sprintf("%s %s", alu, regDisp[src]), Emit: builder(regLetters[src])}
		}
		Main[immOpcode] = Opcode{Name: fmt.Sprintf("%s n", alu), Emit: immBuilder(), Operand: UINT8}
	}

	aluBlock(0x80, ops.ADD, 0xC6, ops.ADD, aluDisp[0])
	aluBlock(0x88, ops.ADC, 0xCE, ops.ADC, aluDisp[1])
	aluBlock(0x90, ops.SUB, 0xD6, ops.SUB, aluDisp[2])
	aluBlock(0x98, ops.SBC, 0xDE, ops.SBC, aluDisp[3])
	aluBlock(0xA0, ops.AND, 0xE6, ops.AND, aluDisp[4])
	aluBlock(0xA8, ops.XOR, 0xEE, ops.XOR, aluDisp[5])
	aluBlock(0xB0, ops.OR, 0xF6, ops.OR, aluDisp[6])
	aluBlock(0xB8, ops.CP, 0xFE, ops.CP, aluDisp[7])

	incDecOpcodes := [8]int{0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C}
	for r, opcode := range incDecOpcodes {
		if r == 6 {
			Main[opcode] = Opcode{Name: "INC (HL)", Emit: ops.INC_MEM("h", "l")}
			continue
		}
		Main[opcode] = Opcode{Name: "INC " + regDisp[r], Emit: ops.INC8(regLetters[r])}
	}
	decOpcodes := [8]int{0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D}
	for r, opcode := range decOpcodes {
		if r == 6 {
			Main[opcode] = Opcode{Name: "DEC (HL)", Emit: ops.DEC_MEM("h", "l")}
			continue
		}
		Main[opcode] = Opcode{Name: "DEC " + regDisp[r], Emit: ops.DEC8(regLetters[r])}
	}

	Main[0x01] = Opcode{Name: "LD BC, nn", Emit: ops.LD16("b", "c"), Operand: UINT16}
	Main[0x11] = Opcode{Name: "LD DE, nn", Emit: ops.LD16("d", "e"), Operand: UINT16}
	Main[0x21] = Opcode{Name: "LD HL, nn", Emit: ops.LD16("h", "l"), Operand: UINT16}
	Main[0x31] = Opcode{Name: "LD SP, nn", Emit: ops.LD_SP(), Operand: UINT16}

	Main[0x09] = Opcode{Name: "ADD HL, BC", Emit: ops.ADD16("h", "l", "b", "c")}
	Main[0x19] = Opcode{Name: "ADD HL, DE", Emit: ops.ADD16("h", "l", "d", "e")}
	Main[0x29] = Opcode{Name: "ADD HL, HL", Emit: ops.ADD16("h", "l", "h", "l")}
	Main[0x39] = Opcode{Name: "ADD HL, SP", Emit: ops.ADD16_SP()}

	Main[0x03] = Opcode{Name: "INC BC", Emit: ops.INC16("b", "c")}
	Main[0x13] = Opcode{Name: "INC DE", Emit: ops.INC16("d", "e")}
	Main[0x23] = Opcode{Name: "INC HL", Emit: ops.INC16("h", "l")}
	Main[0x33] = Opcode{Name: "INC SP", Emit: ops.INC_SP()}
	Main[0x0B] = Opcode{Name: "DEC BC", Emit: ops.DEC16("b", "c")}
	Main[0x1B] = Opcode{Name: "DEC DE", Emit: ops.DEC16("d", "e")}
	Main[0x2B] = Opcode{Name: "DEC HL", Emit: ops.DEC16("h", "l")}
	Main[0x3B] = Opcode{Name: "DEC SP", Emit: ops.DEC_SP()}

	Main[0xC5] = Opcode{Name: "PUSH BC", Emit: ops.PUSH("b", "c")}
	Main[0xD5] = Opcode{Name: "PUSH DE", Emit: ops.PUSH("d", "e")}
	Main[0xE5] = Opcode{Name: "PUSH HL", Emit: ops.PUSH("h", "l")}
	Main[0xF5] = Opcode{Name: "PUSH AF", Emit: ops.PUSH("a", "f")}
	Main[0xC1] = Opcode{Name: "POP BC", Emit: ops.POP("b", "c")}
	Main[0xD1] = Opcode{Name: "POP DE", Emit: ops.POP("d", "e")}
	Main[0xE1] = Opcode{Name: "POP HL", Emit: ops.POP("h", "l")}
	Main[0xF1] = Opcode{Name: "POP AF", Emit: ops.POP("a", "f")}

	Main[0xC3] = Opcode{Name: "JP nn", Emit: ops.JP(), Operand: UINT16, Terminal: "jp"}
	Main[0x18] = Opcode{Name: "JR d", Emit: ops.JR(trueLiteral()), Operand: INT8}
	Main[0x10] = Opcode{Name: "DJNZ d", Emit: ops.DJNZ(), Operand: INT8}
	Main[0xCD] = Opcode{Name: "CALL nn", Emit: ops.CALL(), Operand: UINT16}
	Main[0xC9] = Opcode{Name: "RET", Emit: ops.RET(), Terminal: "ret"}
	Main[0xE9] = Opcode{Name: "JP (HL)", Emit: ops.JP_HL(), Terminal: "jp"}
	Main[0xE3] = Opcode{Name: "EX (SP), HL", Emit: ops.EX_SP_HL()}
	Main[0x08] = Opcode{Name: "EX AF, AF'", Emit: ops.EX_AF()}
	Main[0xEB] = Opcode{Name: "EX DE, HL", Emit: ops.EX_DE_HL()}
	Main[0xD9] = Opcode{Name: "EXX", Emit: ops.EXX()}
	Main[0xF9] = Opcode{Name: "LD SP, HL", Emit: ops.LD_SP_HL()}

	Main[0x22] = Opcode{Name: "LD (nn), HL", Emit: ops.LD_WRITE_MEM("n", "n", "h", "l"), Operand: UINT16}
	Main[0x2A] = Opcode{Name: "LD HL, (nn)", Emit: ops.LD16("h", "l", "n", "n"), Operand: UINT16}
	Main[0x32] = Opcode{Name: "LD (nn), A", Emit: ops.LD_WRITE_MEM("n", "n", "a"), Operand: UINT16}
	Main[0x3A] = Opcode{Name: "LD A, (nn)", Emit: ops.LD8("a", "n", "n"), Operand: UINT16}
	Main[0x02] = Opcode{Name: "LD (BC), A", Emit: ops.LD_WRITE_MEM("b", "c", "a")}
	Main[0x0A] = Opcode{Name: "LD A, (BC)", Emit: ops.LD8("a", "b", "c")}
	Main[0x12] = Opcode{Name: "LD (DE), A", Emit: ops.LD_WRITE_MEM("d", "e", "a")}
	Main[0x1A] = Opcode{Name: "LD A, (DE)", Emit: ops.LD8("a", "d", "e")}

	Main[0xD3] = Opcode{Name: "OUT (n), A", Emit: ops.OUT_N(), Operand: UINT8}
	Main[0xDB] = Opcode{Name: "IN A, (n)", Emit: ops.IN_N(), Operand: UINT8}

	Main[0x07] = Opcode{Name: "RLCA", Emit: ops.RLCA()}
	Main[0x0F] = Opcode{Name: "RRCA", Emit: ops.RRCA()}
	Main[0x17] = Opcode{Name: "RLA", Emit: ops.RLA()}
	Main[0x1F] = Opcode{Name: "RRA", Emit: ops.RRA()}

	rstTargets := map[int]uint16{0xC7: 0x00, 0xCF: 0x08, 0xD7: 0x10, 0xDF: 0x18, 0xE7: 0x20, 0xEF: 0x28, 0xF7: 0x30, 0xFF: 0x38}
	for opcode, addr := range rstTargets {
		Main[opcode] = Opcode{Name: rstName(addr), Emit: ops.RST(addr)}
	}

	type cond struct {
		op   string
		mask byte
	}
	condTests := [8]cond{
		{"==", z80flags.Zero}, {"!=", z80flags.Zero},
		{"==", z80flags.Carry}, {"!=", z80flags.Carry},
		{"==", z80flags.ParityOv}, {"!=", z80flags.ParityOv},
		{"==", z80flags.Sign}, {"!=", z80flags.Sign},
	}
	jpOpcodes := [8]int{0xC2, 0xCA, 0xD2, 0xDA, 0xE2, 0xEA, 0xF2, 0xFA}
	callOpcodes := [8]int{0xC4, 0xCC, 0xD4, 0xDC, 0xE4, 0xEC, 0xF4, 0xFC}
	retOpcodes := [8]int{0xC0, 0xC8, 0xD0, 0xD8, 0xE0, 0xE8, 0xF0, 0xF8}
	jrOpcodes := [4]int{0x20, 0x28, 0x30, 0x38}
	for idx, c := range condTests {
		Main[jpOpcodes[idx]] = Opcode{Name: fmt.Sprintf("JP %s, nn", condNames[idx]), Emit: ops.JP(c.op, c.mask), Operand: UINT16}
		Main[callOpcodes[idx]] = Opcode{Name: fmt.Sprintf("CALL %s, nn", condNames[idx]), Emit: ops.CALL(c.op, c.mask), Operand: UINT16}
		Main[retOpcodes[idx]] = Opcode{Name: fmt.Sprintf("RET %s", condNames[idx]), Emit: ops.RET(c.op, c.mask)}
	}
	for idx, opcode := range jrOpcodes {
		c := condTests[idx]
		Main[opcode] = Opcode{Name: fmt.Sprintf("JR %s, d", condNames[idx]), Emit: ops.JR(flagTestNode(c.op, c.mask)), Operand: INT8}
	}

	Main[0x27] = Opcode{Name: "DAA", Emit: ops.DAA()}
	Main[0x2F] = Opcode{Name: "CPL", Emit: ops.CPL()}
	Main[0x37] = Opcode{Name: "SCF", Emit: ops.SCF()}
	Main[0x3F] = Opcode{Name: "CCF", Emit: ops.CCF()}
	Main[0xF3] = Opcode{Name: "DI", Emit: ops.DI()}
	Main[0xFB] = Opcode{Name: "EI", Emit: ops.EI()}

	Main[0xCB] = Opcode{Name: "CB prefix"}
	Main[0xDD] = Opcode{Name: "DD prefix"}
	Main[0xFD] = Opcode{Name: "FD prefix"}
	Main[0xED] = Opcode{Name: "ED prefix"}
}

func rstName(addr uint16) string {
	return fmt.Sprintf("RST %02XH", addr)
}
