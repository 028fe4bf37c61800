package asm

import (
	"fmt"
)

// Word layout, bit 15 most significant:
//
//	[15:13] opcode
//	[12]    operand-2-is-immediate flag
//	[11:9]  register A, or branch condition
//	[8:0]   register B (flag=0) or 9-bit immediate/offset (flag=1)
type Word uint16

// Opcode field values.
const (
	OP_MV     = uint16(0)
	OP_MVT    = uint16(1)
	OP_ADD    = uint16(2)
	OP_SUB    = uint16(3)
	OP_LD     = uint16(4)
	OP_ST     = uint16(5)
	OP_AND    = uint16(6)
	OP_BRANCH = uint16(7)
)

// Branch condition field values.
const (
	COND_NONE = uint16(0)
	COND_EQ   = uint16(1)
	COND_NE   = uint16(2)
	COND_CC   = uint16(3)
	COND_CS   = uint16(4)
)

const (
	// MAX_WORD is the largest value a .define may bind.
	MAX_WORD = 0xffff
	// MAX_IMMEDIATE is the largest 9-bit immediate operand.
	MAX_IMMEDIATE = 0x1ff
)

// opcodeMap maps mnemonics to opcode field values. The branch family shares
// a single opcode; the condition is encoded separately.
var opcodeMap = map[string]uint16{
	"mv":  OP_MV,
	"mvt": OP_MVT,
	"add": OP_ADD,
	"sub": OP_SUB,
	"ld":  OP_LD,
	"st":  OP_ST,
	"and": OP_AND,
	"b":   OP_BRANCH,
	"beq": OP_BRANCH,
	"bne": OP_BRANCH,
	"bcc": OP_BRANCH,
	"bcs": OP_BRANCH,
}

// registerMap maps register names to field values. pc is an alias for r7.
var registerMap = map[string]uint16{
	"r0": 0,
	"r1": 1,
	"r2": 2,
	"r3": 3,
	"r4": 4,
	"r5": 5,
	"r6": 6,
	"r7": 7,
	"pc": 7,
}

// condMap maps branch condition suffixes to field values.
var condMap = map[string]uint16{
	"":   COND_NONE,
	"eq": COND_EQ,
	"ne": COND_NE,
	"cc": COND_CC,
	"cs": COND_CS,
}

// Padded mnemonic forms, indexed by opcode, as rendered in output comments.
var opcodeNames = [...]string{"mv  ", "mvt ", "add ", "sub ", "ld  ", "st  ", "and"}

var registerNames = [...]string{"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7"}

// Condition suffixes indexed by field value. Values 5-7 are unused encodings.
var condNames = [...]string{"  ", "eq", "ne", "cc", "cs", "", "", ""}

// MakeWordReg builds a two-register instruction word.
func MakeWordReg(op, ra, rb uint16) Word {
	return Word(rb | (ra << 9) | (op << 13))
}

// MakeWordImm builds a register+immediate instruction word. For mvt only the
// upper byte of the immediate is representable, so the stored field is imm>>8.
func MakeWordImm(op, ra uint16, imm int) Word {
	if op == OP_MVT {
		return Word(uint16(imm>>8) | (ra << 9) | (1 << 12) | (op << 13))
	}
	return Word((uint16(imm) & MAX_IMMEDIATE) | (ra << 9) | (1 << 12) | (op << 13))
}

// MakeWordBranch builds a branch instruction word.
func MakeWordBranch(cond uint16, target int) Word {
	return Word((uint16(target) & MAX_IMMEDIATE) | (cond << 9) | (1 << 12) | (OP_BRANCH << 13))
}

// Opcode returns the opcode field.
func (w Word) Opcode() uint16 {
	return uint16(w>>13) & 0x7
}

// HasImmediate reports whether operand 2 is an immediate/offset.
func (w Word) HasImmediate() bool {
	return (w>>12)&0x1 == 1
}

// RegA returns the register A field.
func (w Word) RegA() uint16 {
	return uint16(w>>9) & 0x7
}

// Cond returns the branch condition field, which overlays register A.
func (w Word) Cond() uint16 {
	return uint16(w>>9) & 0x7
}

// RegB returns the register B field.
func (w Word) RegB() uint16 {
	return uint16(w) & 0x7
}

// Imm returns the 9-bit immediate/offset field.
func (w Word) Imm() uint16 {
	return uint16(w) & MAX_IMMEDIATE
}

// String disassembles the word back into assembly text, the inverse of the
// MakeWord* layout above. Used for the per-word comments in the output
// artifact.
func (w Word) String() (out string) {
	op := w.Opcode()

	if op == OP_BRANCH {
		out = "b" + condNames[w.Cond()] + "  "
	} else {
		out = opcodeNames[op] + " " + registerNames[w.RegA()] + ", "
	}

	switch {
	case w.HasImmediate() && op == OP_MVT:
		out += fmt.Sprintf("#0x%04x", uint32(w.Imm())<<8)
	case w.HasImmediate():
		out += fmt.Sprintf("#0x%04x", w.Imm())
	case op == OP_LD || op == OP_ST:
		out += "[" + registerNames[w.RegB()] + "]"
	default:
		out += registerNames[w.RegB()]
	}

	return
}
