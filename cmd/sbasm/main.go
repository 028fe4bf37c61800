// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/sbasm/asm"
	"github.com/ezrec/sbasm/mif"
)

// defineFlag collects repeated -D name=value predefines.
type defineFlag []string

func (df *defineFlag) String() string {
	return strings.Join(*df, ",")
}

func (df *defineFlag) Set(value string) error {
	*df = append(*df, value)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %v [-v] [-D name=value] <input file> [output file, default %v]\n",
		os.Args[0], mif.DefaultName)
	flag.PrintDefaults()
}

func main() {
	var verbose bool
	var defines defineFlag

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Var(&defines, "D", "Predefine a symbol, as name=value")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(1)
	}

	input := flag.Arg(0)
	output := mif.OutputName(flag.Arg(1))

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	for _, define := range defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok {
			log.Fatalf("%v: -D %v: expected name=value", os.Args[0], define)
		}
		assembler.Predefine(name, value)
	}

	prog, err := assembler.Assemble(inf)
	if err != nil {
		fmt.Fprintln(os.Stderr, asm.Report(err, assembler.Depth, assembler.Count))
		os.Exit(1)
	}

	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
	defer ouf.Close()

	if err := mif.Write(ouf, prog); err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
