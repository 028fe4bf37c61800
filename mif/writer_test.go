package mif

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/sbasm/asm"
)

func TestOutputName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("a.mif", OutputName(""))
	assert.Equal("a.mif", OutputName("a"))
	assert.Equal("rom.mif", OutputName("rom"))
	assert.Equal("rom.mif", OutputName("rom.mif"))
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)

	prog := &asm.Program{
		WidthBits:  16,
		DepthWords: 256,
		Words: []asm.MachineWord{
			{Word: asm.MakeWordImm(asm.OP_MV, 0, 0x05), IsInstr: true, LineNo: 1},
			{Word: asm.MakeWordReg(asm.OP_ADD, 1, 0), IsInstr: true, LineNo: 2},
			{Word: asm.Word(0xffff), IsInstr: false, LineNo: 3},
		},
	}

	var out strings.Builder
	require.NoError(t, Write(&out, prog))

	expected := strings.Join([]string{
		"WIDTH = 16;",
		"DEPTH = 256;",
		"ADDRESS_RADIX = HEX;",
		"DATA_RADIX = HEX;",
		"",
		"CONTENT",
		"BEGIN",
		"0\t\t: 1005;\t\t% mv   r0, #0x0005 %",
		"1\t\t: 4200;\t\t% add  r1, r0 %",
		"2\t\t: ffff;\t\t% data %",
		"END;",
		"",
	}, "\n")

	assert.Equal(expected, out.String())
}

func TestWriteAddressesInHex(t *testing.T) {
	assert := assert.New(t)

	prog := &asm.Program{WidthBits: 16, DepthWords: 32}
	for range 17 {
		prog.Words = append(prog.Words, asm.MachineWord{Word: asm.Word(0)})
	}

	var out strings.Builder
	require.NoError(t, Write(&out, prog))

	assert.Contains(out.String(), "\nf\t\t: 0000;")
	assert.Contains(out.String(), "\n10\t\t: 0000;")
}
