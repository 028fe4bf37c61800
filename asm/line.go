package asm

import (
	"regexp"
)

// StatementKind tags the classification of one source line.
type StatementKind int

const (
	STATEMENT_BLANK  = StatementKind(iota) // blank line or comment
	STATEMENT_DEPTH                        // DEPTH directive
	STATEMENT_DEFINE                       // .define directive
	STATEMENT_LABEL                        // label-only line
	STATEMENT_REG                          // instruction, two register operands
	STATEMENT_IMM                          // instruction, register + immediate-or-symbol
	STATEMENT_BRANCH                       // branch instruction
	STATEMENT_DATA                         // .word directive
	STATEMENT_UNKNOWN
)

// Statement is the classification of a single trimmed source line, with the
// fields captured by the matching grammar rule.
type Statement struct {
	Kind     StatementKind
	Label    string // optional leading label definition
	Mnemonic string
	Cond     string // branch condition suffix ("", "eq", "ne", "cc", "cs")
	RegA     string
	RegB     string
	Indirect bool   // second operand used [rY] syntax
	Operand  string // immediate, symbol, or $() expression text
	Name     string // .define name
	Value    string // .define or DEPTH value text
}

// Grammar fragments shared by the statement patterns.
const (
	identPat   = `[a-zA-Z_$][a-zA-Z_$0-9]*`
	labelPat   = `(` + identPat + `):`
	operandPat = `(\$\([^)]*\)|[a-zA-Z_$0-9]+)`
	trailPat   = `\s*(//.*)?$`
)

var (
	commentRe = regexp.MustCompile(`^//`)
	depthRe   = regexp.MustCompile(`^DEPTH\s+(\d+)` + trailPat)
	defineRe  = regexp.MustCompile(`^\.define\s+(` + identPat + `)\s+` + operandPat + trailPat)
	labelRe   = regexp.MustCompile(`^` + labelPat + trailPat)
	regRe     = regexp.MustCompile(`^(` + labelPat + `)?\s*(mv|add|sub|ld|st|and)\s+(r[0-7]|pc),\s*(\[?)(r[0-7]|pc)(\]?)` + trailPat)
	immRe     = regexp.MustCompile(`^(` + labelPat + `)?\s*(mv|mvt|add|sub|and)\s+(r[0-7]|pc),\s*#?` + operandPat + trailPat)
	branchRe  = regexp.MustCompile(`^(` + labelPat + `)?\s*(b(eq|ne|cc|cs)?)\s+#?` + operandPat + trailPat)
	dataRe    = regexp.MustCompile(`^(` + labelPat + `)?\s*\.word\s+` + operandPat + trailPat)
)

// Classify maps one trimmed source line to its tagged statement. The grammar
// rules are tried in a fixed precedence order; the first match wins. The
// register-operand rule accepts bracket-indirect second operands for every
// mnemonic and records the indirection, so that the encoder can reject it for
// all but ld and st.
func Classify(line string) (st Statement) {
	if line == "" || commentRe.MatchString(line) {
		st.Kind = STATEMENT_BLANK
		return
	}

	if m := depthRe.FindStringSubmatch(line); m != nil {
		st.Kind = STATEMENT_DEPTH
		st.Value = m[1]
		return
	}

	if m := defineRe.FindStringSubmatch(line); m != nil {
		st.Kind = STATEMENT_DEFINE
		st.Name = m[1]
		st.Value = m[2]
		return
	}

	if m := labelRe.FindStringSubmatch(line); m != nil {
		st.Kind = STATEMENT_LABEL
		st.Label = m[1]
		return
	}

	if m := regRe.FindStringSubmatch(line); m != nil {
		st.Kind = STATEMENT_REG
		st.Label = m[2]
		st.Mnemonic = m[3]
		st.RegA = m[4]
		// Only a balanced [rY] is indirection; a stray bracket is
		// decoration, and the operand stays a plain register.
		st.Indirect = m[5] == "[" && m[7] == "]"
		st.RegB = m[6]
		return
	}

	if m := immRe.FindStringSubmatch(line); m != nil {
		st.Kind = STATEMENT_IMM
		st.Label = m[2]
		st.Mnemonic = m[3]
		st.RegA = m[4]
		st.Operand = m[5]
		return
	}

	if m := branchRe.FindStringSubmatch(line); m != nil {
		st.Kind = STATEMENT_BRANCH
		st.Label = m[2]
		st.Mnemonic = m[3]
		st.Cond = m[4]
		st.Operand = m[5]
		return
	}

	if m := dataRe.FindStringSubmatch(line); m != nil {
		st.Kind = STATEMENT_DATA
		st.Label = m[2]
		st.Operand = m[3]
		return
	}

	st.Kind = STATEMENT_UNKNOWN
	return
}

// Emits reports whether the statement produces one machine word.
func (st Statement) Emits() bool {
	switch st.Kind {
	case STATEMENT_REG, STATEMENT_IMM, STATEMENT_BRANCH, STATEMENT_DATA:
		return true
	}
	return false
}
