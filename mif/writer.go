// Package mif serializes an assembled program into the textual memory
// initialization file format consumed by memory simulation and synthesis
// tooling.
package mif

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/sbasm/asm"
	"github.com/ezrec/sbasm/internal"
)

// DefaultName is the output artifact name when none is given.
const DefaultName = "a.mif"

// Extension is the artifact suffix, appended to output names that lack it.
const Extension = ".mif"

// dataMarker is the comment for words that are raw data, not instructions.
const dataMarker = "data"

// OutputName normalizes an output file name, appending the artifact suffix
// if absent. An empty name becomes the default.
func OutputName(name string) string {
	if name == "" {
		name = DefaultName
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return name
}

// header yields the fixed artifact preamble: word width, memory depth, the
// radix declarations, and the content block opener.
func header(prog *asm.Program) iter.Seq[string] {
	return internal.IterSeqOf(
		fmt.Sprintf("WIDTH = %d;", prog.WidthBits),
		fmt.Sprintf("DEPTH = %d;", prog.DepthWords),
		"ADDRESS_RADIX = HEX;",
		"DATA_RADIX = HEX;",
		"",
		"CONTENT",
		"BEGIN",
	)
}

// content yields one line per word: address and value in hex, then a comment
// holding either the disassembly of the word or the data marker.
func content(prog *asm.Program) iter.Seq[string] {
	digits := prog.WidthBits / 4

	return func(yield func(string) bool) {
		for addr, mw := range prog.Entries() {
			comment := dataMarker
			if mw.IsInstr {
				comment = mw.Word.String()
			}
			line := fmt.Sprintf("%x\t\t: %0*x;\t\t%% %s %%", addr, digits, uint16(mw.Word), comment)
			if !yield(line) {
				return
			}
		}
	}
}

// Write serializes the program to the writer.
func Write(w io.Writer, prog *asm.Program) error {
	footer := internal.IterSeqOf("END;")

	for line := range internal.IterSeqConcat(header(prog), content(prog), footer) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
