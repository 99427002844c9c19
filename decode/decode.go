// Package decode walks a linear run of Z80 machine code and turns it
// into IR. It is the top of the four-layer stack (ir, ops, tables,
// decode): it owns table selection, prefix handling and operand
// consumption, and hands each opcode's concrete operand to the pending
// emitter the tables package already built. It walks the same CB/ED/
// DD/FD prefix chain a Z80 disassembler walks to produce a printable
// mnemonic, but builds IR instead and stops at the terminators that
// end a decode block rather than disassembling straight through them.
package decode

import (
	"fmt"

	"github.com/atoorisol/jssms/ir"
	"github.com/atoorisol/jssms/tables"
)

// Instruction is one decoded opcode site: its address, disassembly
// name (for tooling) and the IR statements its emitter produced.
type Instruction struct {
	PC   uint16
	Name string
	IR   []ir.Node
}

// Termination names why a decoded block stopped.
type Termination string

const (
	TerminatedRet         Termination = "ret"
	TerminatedJP          Termination = "jp"
	TerminatedHalt        Termination = "halt"
	TerminatedUndecodable Termination = "undecodable"
)

// Result is decode_block's full output: the instructions decoded
// before the block ended, why it ended, and where. Fault is non-nil
// exactly when TerminatedBy is TerminatedUndecodable: a
// *TruncatedOperand when the bytes ran out, or an *UndecodableOpcode
// when the slot has a mnemonic but no emitter.
type Result struct {
	Instructions []Instruction
	TerminatedBy Termination
	EndPC        uint16
	Fault        error
}

// UndecodableOpcode marks a table slot with a mnemonic but no emitter
// yet wired — a non-fatal block terminator, not a panic.
type UndecodableOpcode struct {
	PC   uint16
	Name string
}

func (e *UndecodableOpcode) Error() string {
	return fmt.Sprintf("decode: undecodable opcode %q at pc=0x%04X", e.Name, e.PC)
}

// TruncatedOperand marks an operand (or prefix/sub-opcode/displacement
// byte) that would read past the end of the ROM buffer.
type TruncatedOperand struct {
	PC   uint16
	Need int
	Have int
}

func (e *TruncatedOperand) Error() string {
	return fmt.Sprintf("decode: truncated operand at pc=0x%04X: need %d bytes, have %d", e.PC, e.Need, e.Have)
}

// lookup is what resolving one instruction site's table chain
// produces: the opcode entry to run (or a signal that the sub-opcode
// was an undefined ED/CB slot, treated as a no-op), how many bytes the
// opcode+prefix+sub-opcode itself consumed, and — for the DDCB/FDCB
// indexed-bit forms — the displacement byte read ahead of the
// sub-opcode, which the emitter needs as its "value" argument instead
// of a normal trailing operand.
type lookup struct {
	entry         tables.Opcode
	consumed      uint16
	presetValue   int32
	hasPreset     bool
	undefinedNoop bool
}

func peek(rom []byte, pc uint16) (byte, bool) {
	if int(pc) >= len(rom) {
		return 0, false
	}
	return rom[pc], true
}

// resolve walks the prefix chain starting at pc and returns the
// opcode table entry that governs this instruction site: CB and ED
// each consume one sub-opcode byte; DD/FD
// select the index-register family, collapsing a run of consecutive
// DD/FD bytes down to the last one (earlier ones are wasted ticks);
// a DD/FD immediately followed by CB is the indexed-bit-op form, whose
// displacement is read before the sub-opcode rather than after it;
// an undefined DD/FD table slot falls through to Main keyed by the
// same sub-opcode byte, since the index prefix is a no-op for any
// opcode it doesn't specifically override.
func resolve(rom []byte, pc uint16) (lookup, error) {
	op, ok := peek(rom, pc)
	if !ok {
		return lookup{}, &TruncatedOperand{PC: pc, Need: 1, Have: 0}
	}

	switch op {
	case 0xCB:
		sub, ok := peek(rom, pc+1)
		if !ok {
			return lookup{}, &TruncatedOperand{PC: pc, Need: 2, Have: 1}
		}
		entry := tables.CB[sub]
		if entry.Emit == nil {
			return lookup{undefinedNoop: true, consumed: 2}, nil
		}
		return lookup{entry: entry, consumed: 2}, nil

	case 0xED:
		sub, ok := peek(rom, pc+1)
		if !ok {
			return lookup{}, &TruncatedOperand{PC: pc, Need: 2, Have: 1}
		}
		entry := tables.ED[sub]
		if entry.Emit == nil {
			return lookup{undefinedNoop: true, consumed: 2}, nil
		}
		return lookup{entry: entry, consumed: 2}, nil

	case 0xDD, 0xFD:
		indexTable, indexBitTable := tables.IX, tables.IXCB
		if op == 0xFD {
			indexTable, indexBitTable = tables.IY, tables.IYCB
		}

		offset := uint16(1)
		for {
			next, ok := peek(rom, pc+offset)
			if !ok {
				return lookup{}, &TruncatedOperand{PC: pc, Need: int(offset) + 1, Have: int(offset)}
			}
			if next != 0xDD && next != 0xFD {
				break
			}
			if next == 0xFD {
				indexTable, indexBitTable = tables.IY, tables.IYCB
			} else {
				indexTable, indexBitTable = tables.IX, tables.IXCB
			}
			offset++
		}

		sub, _ := peek(rom, pc+offset)
		if sub == 0xCB {
			dPos, subPos := pc+offset+1, pc+offset+2
			d, ok := peek(rom, dPos)
			if !ok {
				return lookup{}, &TruncatedOperand{PC: pc, Need: int(offset) + 3, Have: int(dPos - pc)}
			}
			subOp, ok := peek(rom, subPos)
			if !ok {
				return lookup{}, &TruncatedOperand{PC: pc, Need: int(offset) + 3, Have: int(subPos - pc)}
			}
			entry := indexBitTable[subOp]
			return lookup{entry: entry, consumed: offset + 3, presetValue: int32(int8(d)), hasPreset: true}, nil
		}

		entry := indexTable[sub]
		if entry.IsUndefined() {
			entry = tables.Main[sub]
		}
		return lookup{entry: entry, consumed: offset + 1}, nil

	default:
		return lookup{entry: tables.Main[op], consumed: 1}, nil
	}
}

// readOperand consumes entry.Operand's declared bytes starting at pc
// and returns (value, target, newPC). target is only meaningful for
// UINT16 (where it equals value, for JP/CALL) and INT8 (the absolute
// branch destination); callers that don't need it ignore it.
func readOperand(rom []byte, pc uint16, kind tables.OperandKind) (value, target int32, newPC uint16, err error) {
	switch kind {
	case tables.NoOperand:
		return 0, 0, pc, nil
	case tables.UINT8:
		b, ok := peek(rom, pc)
		if !ok {
			return 0, 0, pc, &TruncatedOperand{PC: pc, Need: 1, Have: 0}
		}
		return int32(b), 0, pc + 1, nil
	case tables.INT8:
		b, ok := peek(rom, pc)
		if !ok {
			return 0, 0, pc, &TruncatedOperand{PC: pc, Need: 1, Have: 0}
		}
		disp := int32(int8(b))
		after := pc + 1
		return disp, int32(after) + disp, after, nil
	case tables.UINT16:
		lo, ok1 := peek(rom, pc)
		hi, ok2 := peek(rom, pc+1)
		if !ok1 {
			return 0, 0, pc, &TruncatedOperand{PC: pc, Need: 2, Have: 0}
		}
		if !ok2 {
			return 0, 0, pc, &TruncatedOperand{PC: pc, Need: 2, Have: 1}
		}
		v := int32(uint16(lo) | uint16(hi)<<8)
		return v, v, pc + 2, nil
	default:
		return 0, 0, pc, nil
	}
}

// Block decodes bytes from rom starting at startPC into a sequence of
// (pc, mnemonic, ir) records, stopping at the first unconditional RET,
// unconditional JP, HALT or undecodable opcode. Decode errors are
// never fatal: the instructions successfully decoded before the fault
// are always returned alongside it.
func Block(rom []byte, startPC uint16) Result {
	var out Result
	pc := startPC

	for {
		instrPC := pc

		lk, err := resolve(rom, pc)
		if err != nil {
			out.TerminatedBy = TerminatedUndecodable
			out.Fault = err
			out.EndPC = instrPC
			return out
		}

		if lk.undefinedNoop {
			out.Instructions = append(out.Instructions, Instruction{PC: instrPC, Name: "NOP", IR: []ir.Node{}})
			pc = instrPC + lk.consumed
			continue
		}

		entry := lk.entry
		afterPrefix := instrPC + lk.consumed

		var value, target int32
		opPC := afterPrefix
		if lk.hasPreset {
			value = lk.presetValue
		} else {
			v, t, newPC, operr := readOperand(rom, afterPrefix, entry.Operand)
			if operr != nil {
				out.TerminatedBy = TerminatedUndecodable
				out.Fault = operr
				out.EndPC = instrPC
				return out
			}
			value, target = v, t
			opPC = newPC
		}
		pc = opPC

		if entry.Emit == nil {
			out.Instructions = append(out.Instructions, Instruction{PC: instrPC, Name: entry.Name})
			out.TerminatedBy = TerminatedUndecodable
			out.Fault = &UndecodableOpcode{PC: instrPC, Name: entry.Name}
			out.EndPC = pc
			return out
		}

		nodes := entry.Emit(value, target, int32(instrPC))
		out.Instructions = append(out.Instructions, Instruction{PC: instrPC, Name: entry.Name, IR: nodes})

		if entry.Terminal != "" {
			out.TerminatedBy = Termination(entry.Terminal)
			out.EndPC = pc
			return out
		}
	}
}
