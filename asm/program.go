package asm

import (
	"iter"
)

// SourceLine is one line of input text. Lines are loaded once, before the
// first pass, and never mutated.
type SourceLine struct {
	LineNo int // 1-based
	Text   string
}

// MachineWord is one encoded memory word. The instruction tag decides whether
// the output comment is a disassembly or the generic data marker.
type MachineWord struct {
	Word    Word
	IsInstr bool
	LineNo  int // source line that produced the word
}

// Program is the ordered word list produced by a successful translation.
// The slice index of a word is its memory address.
type Program struct {
	WidthBits  int
	DepthWords int
	Words      []MachineWord
}

// Entries iterates the program words keyed by memory address.
func (prog *Program) Entries() iter.Seq2[int, MachineWord] {
	return func(yield func(addr int, mw MachineWord) bool) {
		for addr, mw := range prog.Words {
			if !yield(addr, mw) {
				return
			}
		}
	}
}
