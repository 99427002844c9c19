package tables

import "github.com/atoorisol/jssms/ops"

// cbGroupOp and cbGroupMnemonic are the eight CB rotate/shift groups,
// keyed by group = (opcode>>3)&7: rlc, rrc, rl, rr, sla, sra, sll (the
// undocumented "shift left, set bit 0" form), srl.
var cbGroupOp = [8]string{"rlc", "rrc", "rl", "rr", "sla", "sra", "sll", "srl"}
var cbGroupMnemonic = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}

// CB is the 0xCB-prefixed table: eight rotate/shift groups over the
// eight register/ (HL) targets (0x00-0x3F), BIT b,target (0x40-0x7F),
// RES b,target (0x80-0xBF), SET b,target (0xC0-0xFF). Grounded on
// initCBOps plus opCBRotateShift/opCBBIT/opCBRES/opCBSET's (group,reg)
// and (bit,reg) parameterization.
var CB Table

func init() {
	for i := range CB {
		CB[i] = undefined()
	}

	for group := 0; group < 8; group++ {
		for r := 0; r < 8; r++ {
			opcode := group<<3 | r
			name := cbGroupMnemonic[group] + " " + cbTargetName(r)
			if r == 6 {
				CB[opcode] = Opcode{Name: name, Emit: ops.CBRot(cbGroupOp[group], m)}
			} else {
				CB[opcode] = Opcode{Name: name, Emit: ops.CBRot(cbGroupOp[group], regLetters[r])}
			}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for r := 0; r < 8; r++ {
			opcode := 0x40 + bit<<3 | r
			name := "BIT " + bitDigit(bit) + "," + cbTargetName(r)
			if r == 6 {
				CB[opcode] = Opcode{Name: name, Emit: ops.CBBit(int32(bit), m)}
			} else {
				CB[opcode] = Opcode{Name: name, Emit: ops.CBBit(int32(bit), regLetters[r])}
			}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for r := 0; r < 8; r++ {
			opcode := 0x80 + bit<<3 | r
			name := "RES " + bitDigit(bit) + "," + cbTargetName(r)
			if r == 6 {
				CB[opcode] = Opcode{Name: name, Emit: ops.CBRes(int32(bit), m)}
			} else {
				CB[opcode] = Opcode{Name: name, Emit: ops.CBRes(int32(bit), regLetters[r])}
			}
		}
	}

	for bit := 0; bit < 8; bit++ {
		for r := 0; r < 8; r++ {
			opcode := 0xC0 + bit<<3 | r
			name := "SET " + bitDigit(bit) + "," + cbTargetName(r)
			if r == 6 {
				CB[opcode] = Opcode{Name: name, Emit: ops.CBSet(int32(bit), m)}
			} else {
				CB[opcode] = Opcode{Name: name, Emit: ops.CBSet(int32(bit), regLetters[r])}
			}
		}
	}
}

// m is the CBRot/CBBit/CBRes/CBSet memory-operand sentinel, mirroring
// ops.m but re-declared here since the two packages keep separate
// unexported namespaces.
const m = "m"

func cbTargetName(r int) string {
	if r == 6 {
		return "(HL)"
	}
	return regLetters[r]
}

func bitDigit(bit int) string {
	return string([]byte{"01234567"[bit]})
}
