package asm

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// isExpr reports whether an operand is a compile-time $() expression.
func isExpr(operand string) bool {
	return strings.HasPrefix(operand, "$(") && strings.HasSuffix(operand, ")")
}

// evalExpr does a compile-time $(...) evaluation. Every symbol bound so far is
// visible to the expression as an integer variable.
func (asm *Assembler) evalExpr(operand string) (value int, err error) {
	expr := operand[2 : len(operand)-1]

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	env := starlark.StringDict{}
	for name, v := range asm.Symbols {
		env[name] = starlark.MakeInt(v)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, env)
	if err != nil {
		err = ErrExpression(expr)
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	rcInt, ok := rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	rc64, ok := rcInt.Int64()
	if !ok || rc64 < 0 {
		err = ErrExpression(expr)
		return
	}

	value = int(rc64)
	return
}
