// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/ezrec/hp16c/calc"
	"github.com/ezrec/hp16c/display"
	"github.com/ezrec/hp16c/program"
	"github.com/ezrec/hp16c/word"
)

func newParser(c *calc.Calculator, verbose bool) (parser *program.Parser) {
	parser = &program.Parser{Verbose: verbose}
	for key, value := range c.Defines() {
		parser.Predefine(key, value)
	}

	return
}

// interact runs one parse-and-evaluate pass per input line, showing the
// display after each. Evaluation errors are held on the display, as on the
// original device; parse errors are reported and the line is discarded.
func interact(c *calc.Calculator, input *os.File, verbose bool) {
	scanner := bufio.NewScanner(input)

	for scanner.Scan() {
		parser := newParser(c, verbose)
		prog, err := parser.Parse(strings.NewReader(scanner.Text()))
		if err != nil {
			fmt.Println(err)
			continue
		}

		_ = prog.Run(c)
		fmt.Println(c.Display())
	}
}

func main() {
	var run string
	var interactive bool
	var bits uint
	var baseName string
	var modeName string
	var levels bool
	var verbose bool

	flag.StringVar(&run, "c", "", ".keys program file to run")
	flag.BoolVar(&interactive, "i", false, "Evaluate stdin line by line")
	flag.UintVar(&bits, "w", uint(env.Int("HP16C_WORDSIZE", 16)), "Word size in bits (4..64)")
	flag.StringVar(&baseName, "b", env.Str("HP16C_BASE", "hex"), "Display base (bin, oct, dec, hex)")
	flag.StringVar(&modeName, "m", env.Str("HP16C_MODE", "twos"), "Signed representation (unsigned, ones, twos, signmag)")
	flag.BoolVar(&levels, "l", false, "Show all four stack levels")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	base, ok := display.BaseOf(baseName)
	if !ok {
		log.Fatalf("%v: unknown base '%v'", os.Args[0], baseName)
	}

	mode, ok := word.ModeOf(modeName)
	if !ok {
		log.Fatalf("%v: unknown representation '%v'", os.Args[0], modeName)
	}

	c, err := calc.New(calc.Config{WordSize: bits, Mode: mode, Base: base})
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	c.Verbose = verbose

	if interactive {
		interact(c, os.Stdin, verbose)
		return
	}

	name := "stdin"
	input := os.Stdin
	if len(run) != 0 {
		inf, err := os.Open(run)
		if err != nil {
			log.Fatalf("%v: %v", run, err)
		}
		defer inf.Close()
		name = run
		input = inf
	}

	prog, err := newParser(c, verbose).Parse(input)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	err = prog.Run(c)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if levels {
		names := [...]string{"x", "y", "z", "t"}
		for n, text := range c.Levels() {
			fmt.Printf("%v: %v\n", names[n], text)
		}
	} else {
		fmt.Println(c.Display())
	}
}
