package asm

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// ReservedDepth is the one name that can never be bound: the output artifact
// declares the memory depth under it.
const ReservedDepth = "DEPTH"

// bind adds one symbol to the table, enforcing the reserved-name and
// uniqueness rules. Defines and labels share the one namespace.
func (asm *Assembler) bind(name string, value int) error {
	if name == ReservedDepth {
		return ErrDepthReserved
	}
	if _, ok := asm.Symbols[name]; ok {
		return ErrRedefined
	}
	asm.Symbols[name] = value
	return nil
}

// parseNumber parses a decimal, 0b or 0x integer literal.
func parseNumber(text string) (value int, err error) {
	v64, err := strconv.ParseInt(text, 0, 64)
	if err != nil || v64 < 0 {
		err = ErrBadData
		return
	}
	value = int(v64)
	return
}

// findSymbols is pass 1: a single forward traversal that assigns an address
// to every label and a value to every define, so that pass 2 can resolve
// forward references. The address counter starts at -1 and increments once
// per word-emitting line, so a label binds to the address of the next word.
// No values are encoded here.
func (asm *Assembler) findSymbols(lines []SourceLine) error {
	for _, name := range slices.Sorted(maps.Keys(asm.predefine)) {
		value, err := parseNumber(asm.predefine[name])
		if err == nil && value > MAX_WORD {
			err = ErrDefineTooLarge
		}
		if err == nil {
			err = asm.bind(name, value)
		}
		if err != nil {
			return ErrPredefine{Name: name, Err: err}
		}
	}

	count := -1
	for _, src := range lines {
		st := Classify(strings.TrimSpace(src.Text))

		fail := func(err error) error {
			return ErrLine{LineNo: src.LineNo, Line: src.Text, Err: err}
		}

		switch st.Kind {
		case STATEMENT_BLANK:

		case STATEMENT_DEPTH:
			depth, err := strconv.Atoi(st.Value)
			if err != nil || depth%2 != 0 {
				return fail(ErrDepthNotEven)
			}
			asm.Depth = depth

		case STATEMENT_DEFINE:
			if st.Name == ReservedDepth {
				return fail(ErrDepthReserved)
			}
			if _, ok := asm.Symbols[st.Name]; ok {
				return fail(ErrRedefined)
			}
			var value int
			var err error
			if isExpr(st.Value) {
				value, err = asm.evalExpr(st.Value)
			} else {
				value, err = parseNumber(st.Value)
			}
			if err != nil {
				return fail(err)
			}
			if value > MAX_WORD {
				return fail(ErrDefineTooLarge)
			}
			asm.Symbols[st.Name] = value

		case STATEMENT_LABEL:
			if err := asm.bind(st.Label, count+1); err != nil {
				return fail(err)
			}

		case STATEMENT_UNKNOWN:
			return fail(ErrLineUnknown)

		default:
			if st.Label != "" {
				if err := asm.bind(st.Label, count+1); err != nil {
					return fail(err)
				}
			}
			count++
			asm.Count = count
		}
	}

	return nil
}
