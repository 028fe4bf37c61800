// Package asm implements the two-pass assembler for the 8-register, 16-bit
// educational CPU.
//
// The CPU has eight 16-bit registers r0-r7, with pc as an alias for r7, and
// a seven-instruction set (mv, mvt, add, sub, ld, st, and) plus a branch
// family (b, beq, bne, bcc, bcs). Each source line assembles to exactly one
// 16-bit machine word.
//
// Pass 1 walks the source once to bind every label and .define to a value,
// so that labels may be used before they are defined. Pass 2 walks the source
// again, encoding each instruction or .word line against the frozen symbol
// table. The assembler supports compile-time $() constant expressions in
// operands, evaluated with the symbol table in scope.
package asm
