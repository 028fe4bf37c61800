// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// DefaultDepth is the memory depth in words when no DEPTH directive is given.
const DefaultDepth = 256

// WidthBits is the memory word width. Only 16 is supported.
const WidthBits = 16

// Assembler is a two-pass assembler for the 8-register, 16-bit educational
// CPU. Pass 1 builds the symbol table; pass 2 encodes one machine word per
// instruction or .word line against the frozen table.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the assembler actions.
	Symbols map[string]int // Map of labels and defines, built by pass 1.
	Depth   int            // Memory depth in words.
	Count   int            // Address of the most recently counted word.

	predefine map[string]string // Predefines
}

// Predefine binds a symbol ahead of pass 1, as if by a leading .define.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Assemble reads the whole input, then runs the two passes. The returned
// program is complete; on any error no program is returned at all.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	var lines []SourceLine

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		text := scanner.Text()
		lines = append(lines, SourceLine{LineNo: len(lines) + 1, Text: text})
		if asm.Verbose {
			log.Printf("%v: %v\n", len(lines), text)
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	asm.Symbols = make(map[string]int)
	asm.Depth = DefaultDepth
	asm.Count = -1

	if err = asm.findSymbols(lines); err != nil {
		return
	}

	return asm.encode(lines)
}

// resolve evaluates an immediate-or-symbol operand: a number literal, a $()
// expression, or a symbol table lookup, in that order.
func (asm *Assembler) resolve(operand string) (value int, err error) {
	if isExpr(operand) {
		return asm.evalExpr(operand)
	}

	value, err = parseNumber(operand)
	if err == nil {
		return
	}

	value, ok := asm.Symbols[operand]
	if !ok {
		err = ErrSymbolMissing(operand)
		return
	}

	err = nil
	return
}

// encodeReg encodes a two-register instruction. Bracket indirection is only
// meaningful for ld and st; anywhere else it is rejected before the mnemonic
// lookup, matching the classifier's pre-check ordering.
func (asm *Assembler) encodeReg(st Statement) (word Word, err error) {
	if st.Indirect && st.Mnemonic != "ld" && st.Mnemonic != "st" {
		err = ErrInstrUnknown
		return
	}

	op, ok := opcodeMap[st.Mnemonic]
	if !ok {
		err = ErrInstrUnknown
		return
	}
	ra, ok := registerMap[st.RegA]
	if !ok {
		err = ErrRegUnknown
		return
	}
	rb, ok := registerMap[st.RegB]
	if !ok {
		err = ErrRegUnknown
		return
	}

	word = MakeWordReg(op, ra, rb)
	return
}

// encodeImm encodes a register + immediate-or-symbol instruction. mvt can
// only load the upper byte, so its immediate must have a zero low byte and is
// stored shifted down; every other opcode takes a 9-bit immediate.
func (asm *Assembler) encodeImm(st Statement) (word Word, err error) {
	op, ok := opcodeMap[st.Mnemonic]
	if !ok {
		err = ErrInstrUnknown
		return
	}
	ra, ok := registerMap[st.RegA]
	if !ok {
		err = ErrRegUnknown
		return
	}

	imm, err := asm.resolve(st.Operand)
	if err != nil {
		return
	}

	if op == OP_MVT {
		if imm&0xff != 0 {
			err = ErrImmNotUpper
			return
		}
	} else if imm > MAX_IMMEDIATE {
		err = ErrImmTooLarge
		return
	}

	word = MakeWordImm(op, ra, imm)
	return
}

// encodeBranch encodes a branch instruction. The target must land inside the
// configured memory.
func (asm *Assembler) encodeBranch(st Statement) (word Word, err error) {
	cond, ok := condMap[st.Cond]
	if !ok {
		err = ErrInstrUnknown
		return
	}

	target, err := asm.resolve(st.Operand)
	if err != nil {
		return
	}

	if target >= asm.Depth {
		err = ErrBranchTooLarge
		return
	}

	word = MakeWordBranch(cond, target)
	return
}

// encodeData encodes a .word directive. Only number literals and $()
// expressions are data; symbols are not. The value must fit in one word.
func (asm *Assembler) encodeData(st Statement) (word Word, err error) {
	var value int
	if isExpr(st.Operand) {
		value, err = asm.evalExpr(st.Operand)
	} else {
		value, err = parseNumber(st.Operand)
	}
	if err != nil || value > MAX_WORD {
		err = ErrBadData
		return
	}

	word = Word(value)
	return
}

// encode is pass 2: re-traverse the lines with a fresh address counter,
// dispatching every word-emitting statement to its shape encoder. The symbol
// table is read-only here. The first error aborts the pass.
func (asm *Assembler) encode(lines []SourceLine) (prog *Program, err error) {
	prog = &Program{
		WidthBits:  WidthBits,
		DepthWords: asm.Depth,
	}

	asm.Count = -1
	for _, src := range lines {
		st := Classify(strings.TrimSpace(src.Text))
		if !st.Emits() {
			continue
		}

		var word Word
		switch st.Kind {
		case STATEMENT_REG:
			word, err = asm.encodeReg(st)
		case STATEMENT_IMM:
			word, err = asm.encodeImm(st)
		case STATEMENT_BRANCH:
			word, err = asm.encodeBranch(st)
		case STATEMENT_DATA:
			word, err = asm.encodeData(st)
		}
		if err != nil {
			prog = nil
			err = ErrLine{LineNo: src.LineNo, Line: src.Text, Err: err}
			return
		}

		asm.Count++
		mw := MachineWord{
			Word:    word,
			IsInstr: st.Kind != STATEMENT_DATA,
			LineNo:  src.LineNo,
		}
		prog.Words = append(prog.Words, mw)
		if asm.Verbose {
			log.Printf("%x: %04x (line %d)\n", asm.Count, uint16(mw.Word), mw.LineNo)
		}
	}

	if len(prog.Words) > prog.DepthWords {
		prog = nil
		err = ErrDepthExceeded
		return
	}

	return
}
