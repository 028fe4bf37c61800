package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBlank(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(STATEMENT_BLANK, Classify("").Kind)
	assert.Equal(STATEMENT_BLANK, Classify("// a comment").Kind)
}

func TestClassifyDepth(t *testing.T) {
	assert := assert.New(t)

	st := Classify("DEPTH 512")
	assert.Equal(STATEMENT_DEPTH, st.Kind)
	assert.Equal("512", st.Value)

	st = Classify("DEPTH 128 // shrink the memory")
	assert.Equal(STATEMENT_DEPTH, st.Kind)
	assert.Equal("128", st.Value)
}

func TestClassifyDefine(t *testing.T) {
	assert := assert.New(t)

	st := Classify(".define LED_ADDRESS 0x10")
	assert.Equal(STATEMENT_DEFINE, st.Kind)
	assert.Equal("LED_ADDRESS", st.Name)
	assert.Equal("0x10", st.Value)

	st = Classify(".define MASK 0b1010 // binary")
	assert.Equal(STATEMENT_DEFINE, st.Kind)
	assert.Equal("0b1010", st.Value)

	st = Classify(".define SIZE $(4 * 8)")
	assert.Equal(STATEMENT_DEFINE, st.Kind)
	assert.Equal("$(4 * 8)", st.Value)
}

func TestClassifyLabel(t *testing.T) {
	assert := assert.New(t)

	st := Classify("loop:")
	assert.Equal(STATEMENT_LABEL, st.Kind)
	assert.Equal("loop", st.Label)

	st = Classify("_main$2: // entry")
	assert.Equal(STATEMENT_LABEL, st.Kind)
	assert.Equal("_main$2", st.Label)
}

func TestClassifyReg(t *testing.T) {
	assert := assert.New(t)

	st := Classify("mv r0, r1")
	assert.Equal(STATEMENT_REG, st.Kind)
	assert.Equal("mv", st.Mnemonic)
	assert.Equal("r0", st.RegA)
	assert.Equal("r1", st.RegB)
	assert.False(st.Indirect)
	assert.Empty(st.Label)

	st = Classify("top: ld r2, [r3] // load")
	assert.Equal(STATEMENT_REG, st.Kind)
	assert.Equal("top", st.Label)
	assert.Equal("ld", st.Mnemonic)
	assert.Equal("r2", st.RegA)
	assert.Equal("r3", st.RegB)
	assert.True(st.Indirect)

	// The indirection is captured for every mnemonic; the encoder rejects
	// it for all but ld and st.
	st = Classify("add r0, [r1]")
	assert.Equal(STATEMENT_REG, st.Kind)
	assert.True(st.Indirect)

	// An unbalanced bracket is not indirection.
	st = Classify("add r0, [r1")
	assert.Equal(STATEMENT_REG, st.Kind)
	assert.False(st.Indirect)

	st = Classify("ld r0, r1]")
	assert.Equal(STATEMENT_REG, st.Kind)
	assert.False(st.Indirect)

	st = Classify("st r4, [pc]")
	assert.Equal(STATEMENT_REG, st.Kind)
	assert.Equal("pc", st.RegB)
}

func TestClassifyImm(t *testing.T) {
	assert := assert.New(t)

	st := Classify("mv r0, #0x05")
	assert.Equal(STATEMENT_IMM, st.Kind)
	assert.Equal("mv", st.Mnemonic)
	assert.Equal("r0", st.RegA)
	assert.Equal("0x05", st.Operand)

	st = Classify("add r1, COUNTER")
	assert.Equal(STATEMENT_IMM, st.Kind)
	assert.Equal("COUNTER", st.Operand)

	st = Classify("start: mvt r6, #0x1f00 // upper byte")
	assert.Equal(STATEMENT_IMM, st.Kind)
	assert.Equal("start", st.Label)
	assert.Equal("mvt", st.Mnemonic)
	assert.Equal("0x1f00", st.Operand)

	st = Classify("and r2, $(MASK + 1)")
	assert.Equal(STATEMENT_IMM, st.Kind)
	assert.Equal("$(MASK + 1)", st.Operand)
}

func TestClassifyBranch(t *testing.T) {
	assert := assert.New(t)

	st := Classify("b #4")
	assert.Equal(STATEMENT_BRANCH, st.Kind)
	assert.Equal("b", st.Mnemonic)
	assert.Empty(st.Cond)
	assert.Equal("4", st.Operand)

	st = Classify("loop: beq loop")
	assert.Equal(STATEMENT_BRANCH, st.Kind)
	assert.Equal("loop", st.Label)
	assert.Equal("eq", st.Cond)
	assert.Equal("loop", st.Operand)

	for _, cond := range []string{"ne", "cc", "cs"} {
		st := Classify("b" + cond + " target")
		assert.Equal(STATEMENT_BRANCH, st.Kind, "condition %v", cond)
		assert.Equal(cond, st.Cond)
	}
}

func TestClassifyData(t *testing.T) {
	assert := assert.New(t)

	st := Classify(".word 0xffff")
	assert.Equal(STATEMENT_DATA, st.Kind)
	assert.Equal("0xffff", st.Operand)

	st = Classify("table: .word 42 // first entry")
	assert.Equal(STATEMENT_DATA, st.Kind)
	assert.Equal("table", st.Label)
	assert.Equal("42", st.Operand)
}

func TestClassifyUnknown(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(STATEMENT_UNKNOWN, Classify("mov r0, r1").Kind)
	assert.Equal(STATEMENT_UNKNOWN, Classify("mv r8, r1").Kind)
	assert.Equal(STATEMENT_UNKNOWN, Classify(".word").Kind)
	assert.Equal(STATEMENT_UNKNOWN, Classify("!!!").Kind)
}

func TestClassifyPrecedence(t *testing.T) {
	assert := assert.New(t)

	// A register second operand is shape 1, never shape 2.
	assert.Equal(STATEMENT_REG, Classify("mv r0, r1").Kind)

	// mvt has no two-register form.
	assert.Equal(STATEMENT_IMM, Classify("mvt r0, #0x100").Kind)

	// A label-only line is not a statement label prefix.
	assert.Equal(STATEMENT_LABEL, Classify("DEPTH_TWO:").Kind)
}

func TestStatementEmits(t *testing.T) {
	assert := assert.New(t)

	assert.True(Classify("mv r0, r1").Emits())
	assert.True(Classify("mv r0, #1").Emits())
	assert.True(Classify("b #0").Emits())
	assert.True(Classify(".word 1").Emits())

	assert.False(Classify("").Emits())
	assert.False(Classify("DEPTH 64").Emits())
	assert.False(Classify(".define A 1").Emits())
	assert.False(Classify("label:").Emits())
	assert.False(Classify("junk junk").Emits())
}
