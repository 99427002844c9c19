// Package tables holds the six fixed 256-entry opcode tables keyed by
// prefix: the unprefixed main table, CB, ED, the DD/FD index-register
// tables and their DDCB/FDCB indexed-bit-op counterparts. Tables are
// built once at package init and never mutated afterward: a
// [256]Opcode array filled by one init function per prefix, carrying
// Opcode descriptors rather than directly executable closures, since
// emission is deferred to the decode package.
package tables

import (
	"github.com/atoorisol/jssms/ir"
	"github.com/atoorisol/jssms/ops"
)

// OperandKind tags how many operand bytes follow an opcode (or
// opcode+displacement) byte and how to interpret them.
type OperandKind int

const (
	// NoOperand marks an opcode with no immediate bytes.
	NoOperand OperandKind = 0
	// UINT8 is one unsigned byte.
	UINT8 OperandKind = 1
	// INT8 is one signed byte, a PC-relative displacement.
	INT8 OperandKind = 2
	// UINT16 is two bytes, little-endian.
	UINT16 OperandKind = 3
)

// Opcode is one table slot: a disassembly name, an optional pending
// emitter, and the operand shape the decoder must consume before
// invoking it. Emit is nil for three distinct reasons the decode
// package tells apart by context: a genuinely unimplemented mnemonic
// (a real Name but no Emit, e.g. "LD (IX+d),n") is a decoder
// terminator; an undefined() slot (Name "???") in a DD/FD table means
// the index prefix has no effect on that opcode and the decoder
// re-reads it through Main; an undefined() slot in the ED table means
// the decoder treats the sub-opcode as a no-op and keeps going. Emit
// is also nil for the DD/FD table's 0xCB slot, a bare reference to the
// DDCB/FDCB table rather than an emitter.
//
// Terminal marks the handful of slots that unconditionally end a
// decoded block — "ret", "jp" or "halt" — independent of table/prefix
// so the decoder doesn't need to compare disassembly strings to tell
// RET from RET NZ.
type Opcode struct {
	Name     string
	Emit     ops.Emitter
	Operand  OperandKind
	Terminal string
}

// Table is a densely indexed 256-entry opcode table; the slice index
// is the opcode byte.
type Table [256]Opcode

// IsUndefined reports whether a table slot was never populated (as
// opposed to a populated slot with a known mnemonic but no emitter
// yet, like "LD (IX+d),n"). Only DD/FD table slots are ever compared
// against this (ED slots are checked for a nil Emit); Main, CB and
// DDCB/FDCB are fully populated.
func (o Opcode) IsUndefined() bool {
	return o.Name == "" || o.Name == "???"
}

// undefined fills an unpopulated table slot. It carries no emitter: in
// a DD/FD table the decoder re-reads the byte through Main, and in the
// ED table it treats the sub-opcode as a no-op. "???" is the
// disassembly fallback label for opcodes it doesn't recognize.
func undefined() Opcode {
	return Opcode{Name: "???"}
}

// regLetters is the canonical 3-bit register encoding (B,C,D,E,H,L,
// (HL),A) in the lowercase form the combinators expect as arguments.
// regDisp is the same encoding in the uppercase disassembly form.
// condNames, aluDisp and cbOpDisp are the matching condition/ALU/CB
// disassembly tables, including aluDisp's inconsistent trailing "A,"
// for ADD/ADC/SBC only (real Z80 syntax drops the accumulator operand
// for SUB/AND/XOR/OR/CP) — preserved rather than normalized, since it
// is disassembly text, not semantics.
var (
	regLetters = [8]string{"b", "c", "d", "e", "h", "l", "", "a"}
	regDisp    = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	condNames  = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
	aluDisp    = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}
	cbOpDisp   = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}
)

// trueLiteral is the unconditional-branch test JR passes for the
// plain "JR d" opcode, where the combinator table's test_expr
// parameter has no flag condition to check.
func trueLiteral() ir.Node {
	return ir.NewLiteral(1)
}

// flagTestNode builds "(f & mask) op 0", the test passed to the
// conditional JR combinators in this package; conditional JP/CALL/RET
// take op and mask and build the same shape inside ops.
func flagTestNode(op string, mask byte) ir.Node {
	return ir.NewBinary(op, ir.NewBinary("&", ir.NewRegister("f"), ir.NewLiteral(int32(mask))), ir.NewLiteral(0))
}
