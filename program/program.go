// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/hp16c/alu"
	"github.com/ezrec/hp16c/calc"
	"github.com/ezrec/hp16c/display"
	"github.com/ezrec/hp16c/word"
)

// StepKind selects which field of a Step applies.
type StepKind int

//go:generate go tool stringer -linecomment -type=StepKind
const (
	STEP_LITERAL = StepKind(0) // literal
	STEP_OP      = StepKind(1) // op
	STEP_BASE    = StepKind(2) // base
	STEP_MODE    = StepKind(3) // mode
)

// Step is a single keystroke of a parsed program.
type Step struct {
	LineNo int // Source line the step came from.

	Kind    StepKind
	Literal string       // STEP_LITERAL: value text, committed in the active base.
	Op      alu.Op       // STEP_OP
	Base    display.Base // STEP_BASE
	Mode    word.Mode    // STEP_MODE
}

func (s Step) String() (text string) {
	switch s.Kind {
	case STEP_LITERAL:
		text = s.Literal
	case STEP_OP:
		text = s.Op.String()
	case STEP_BASE:
		text = s.Base.String()
	case STEP_MODE:
		text = s.Mode.String()
	}

	return
}

// Program is a parsed keystroke program.
type Program struct {
	Steps []Step
}

// Run feeds every step into the calculator, stopping at the first failure.
func (prog *Program) Run(c *calc.Calculator) (err error) {
	for _, step := range prog.Steps {
		switch step.Kind {
		case STEP_LITERAL:
			err = c.Literal(step.Literal)
		case STEP_OP:
			err = c.Do(step.Op)
		case STEP_BASE:
			err = c.SetBase(step.Base)
		case STEP_MODE:
			err = c.SetMode(step.Mode)
		}
		if err != nil {
			err = &ErrRuntime{LineNo: step.LineNo, Err: err}
			return
		}
	}

	return
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Parser is a single pass parser for keystroke program text.
type Parser struct {
	Verbose bool   // If set, verbosely logs the parser actions.
	Steps   []Step // List of parsed steps.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (p *Parser) Predefine(equ string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{equ: value}
	} else {
		p.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (p *Parser) valueOf(text string) (value int64, err error) {
	value, err = strconv.ParseInt(text, 0, 64)
	if err != nil {
		err = ErrParseNumber(text)
	}

	return
}

// parenEval does parse-time $(...) evaluations
func (p *Parser) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.Equate {
		var v64 int64
		v64, err = p.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be operation
			// names or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine substitutes expressions and equates, and handles .equ.
func (p *Parser) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	p.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := p.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := p.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		p.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, item := range words {
		equate, ok := p.Equate[item]
		if ok {
			words[n] = equate
		}
	}

	return
}

// parseWords evaluates the words in a line of program text.
func (p *Parser) parseWords(words []string, lineno int) (err error) {
	for len(words) > 0 {
		item := words[0]
		words = words[1:]

		step := Step{LineNo: lineno}

		switch {
		case stepOf(item, &step):
			// keyword step
		default:
			kind, ok := alu.KindOf(item)
			if !ok {
				step.Kind = STEP_LITERAL
				step.Literal = item
				break
			}

			step.Kind = STEP_OP
			step.Op = alu.Op{Kind: kind}
			if !kind.TakesArg() {
				break
			}

			// A numeric word after the operation is its argument.
			var arg int64
			if len(words) > 0 {
				arg, err = p.valueOf(words[0])
			}
			switch {
			case len(words) > 0 && err == nil:
				step.Op.Arg = int(arg)
				words = words[1:]
			case kind.ArgOptional():
				step.Op.Arg = 1
				err = nil
			default:
				if err == nil {
					err = ErrArgMissing
				}
				return
			}
		}

		if p.Verbose {
			log.Printf("program: %v: %v", lineno, step)
		}
		p.Steps = append(p.Steps, step)
	}

	return
}

// stepOf recognizes base and representation keywords.
func stepOf(item string, step *Step) (ok bool) {
	base, ok := display.BaseOf(item)
	if ok {
		step.Kind = STEP_BASE
		step.Base = base
		return
	}

	mode, ok := word.ModeOf(item)
	if ok {
		step.Kind = STEP_MODE
		step.Mode = mode
		return
	}

	return
}

// Parse parses an input stream into a Program containing keystroke steps.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	p.Steps = p.Steps[:0]
	p.Equate = maps.Clone(sysEquate)
	for attr, val := range p.predefine {
		p.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = p.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = p.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Steps: append([]Step{}, p.Steps...),
	}

	return
}
