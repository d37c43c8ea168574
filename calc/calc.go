// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package calc assembles the word context, register stack, evaluator flags,
// and digit entry into one calculator session.
//
// The session consumes discrete input tokens: digit characters, operations,
// and base/mode/word-size changes. Each call runs to completion before the
// next is accepted; there is no concurrency inside the engine. A failed
// operation leaves the previous state intact and is held as an ErrorState
// until the next accepted input.
package calc

import (
	"iter"
	"log"

	"github.com/ezrec/hp16c/alu"
	"github.com/ezrec/hp16c/display"
	"github.com/ezrec/hp16c/internal"
	"github.com/ezrec/hp16c/stack"
	"github.com/ezrec/hp16c/word"
)

// Config is the initial state of a calculator session.
type Config struct {
	WordSize uint         // Word size in bits, 4..64.
	Mode     word.Mode    // Signed representation.
	Base     display.Base // Display base.
}

// ErrorState is a classified failure held for the presentation layer.
type ErrorState struct {
	Code ErrorCode
	Err  error
}

// Display renders the error the way the original device did.
func (es *ErrorState) Display() string {
	return f("ERROR %v: %v", es.Code, es.Err)
}

// Calculator is a single engine session.
type Calculator struct {
	Verbose bool // Set to enable verbose logging.

	Context word.Context
	Stack   stack.Stack
	Flags   alu.Flags
	Entry   display.Entry
	Base    display.Base

	failure *ErrorState
}

// New creates a calculator session from a validated configuration.
func New(config Config) (c *Calculator, err error) {
	ctx, err := word.NewContext(config.WordSize, config.Mode)
	if err != nil {
		return
	}
	if !config.Base.Valid() {
		err = display.ErrBase(config.Base)
		return
	}

	c = &Calculator{
		Context: ctx,
		Base:    config.Base,
	}

	return
}

// Defines returns an iterator over all of the engine defines.
func (c *Calculator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		word.Defines(),
		stack.Defines(),
		alu.Defines(),
	)
}

// fail classifies and holds an error, then returns it.
func (c *Calculator) fail(err error) error {
	if err == nil {
		return nil
	}

	c.failure = &ErrorState{Code: Classify(err), Err: err}
	if c.Verbose {
		log.Printf("calc: %v", c.failure.Display())
	}

	return err
}

// accept clears any held error. Called at the start of every input.
func (c *Calculator) accept() {
	c.failure = nil
}

// Failure returns the held error state, or nil.
func (c *Calculator) Failure() *ErrorState {
	return c.failure
}

// commitEntry pushes any pending digit entry onto the stack.
func (c *Calculator) commitEntry() (err error) {
	if !c.Entry.Pending() {
		return
	}

	value, err := display.Commit(c.Entry.Text, c.Base, &c.Context)
	if err != nil {
		return
	}

	c.Entry.Clear()
	c.Stack.Push(value)
	if c.Verbose {
		log.Printf("calc: entry %#x", value)
	}

	return
}

// Digit feeds one typed digit into the pending entry.
func (c *Calculator) Digit(digit rune) (err error) {
	c.accept()

	err = c.Entry.Digit(digit, c.Base)
	return c.fail(err)
}

// Backspace removes the most recent pending digit.
func (c *Calculator) Backspace() {
	c.accept()
	c.Entry.Backspace()
}

// Literal commits a full literal, as read from a keystroke program.
func (c *Calculator) Literal(text string) (err error) {
	c.accept()

	value, err := display.Commit(text, c.Base, &c.Context)
	if err != nil {
		return c.fail(err)
	}

	c.Stack.Push(value)
	return
}

// Enter terminates digit entry and duplicates X.
func (c *Calculator) Enter() (err error) {
	return c.Do(alu.Op{Kind: alu.OP_ENTER})
}

// Do commits any pending entry and evaluates an operation.
func (c *Calculator) Do(op alu.Op) (err error) {
	c.accept()

	err = c.commitEntry()
	if err != nil {
		return c.fail(err)
	}

	if c.Verbose {
		log.Printf("calc: %v", op)
	}

	err = alu.Eval(op, &c.Stack, &c.Context, &c.Flags)
	return c.fail(err)
}

// SetBase changes the display base. The pending entry commits first, so the
// typed value reinterprets rather than being lost.
func (c *Calculator) SetBase(base display.Base) (err error) {
	c.accept()

	if !base.Valid() {
		return c.fail(display.ErrBase(base))
	}

	err = c.commitEntry()
	if err != nil {
		return c.fail(err)
	}

	c.Base = base
	if c.Verbose {
		log.Printf("calc: base %v", base)
	}

	return
}

// SetMode changes the signed representation. Registers keep their bit
// patterns and are re-masked immediately.
func (c *Calculator) SetMode(mode word.Mode) (err error) {
	c.accept()

	if !mode.Valid() {
		return c.fail(word.ErrMode(mode))
	}

	err = c.commitEntry()
	if err != nil {
		return c.fail(err)
	}

	c.Context.Mode = mode
	c.Stack.Remask(&c.Context)
	if c.Verbose {
		log.Printf("calc: mode %v", mode)
	}

	return
}

// SetWordSize changes the word size and re-masks every register eagerly.
func (c *Calculator) SetWordSize(bits uint) (err error) {
	c.accept()

	err = c.commitEntry()
	if err != nil {
		return c.fail(err)
	}

	err = c.Context.SetBits(bits)
	if err != nil {
		return c.fail(err)
	}

	c.Stack.Remask(&c.Context)
	if c.Verbose {
		log.Printf("calc: word size %v", bits)
	}

	return
}

// Display renders the X register, or the digits being typed, or the held
// error.
func (c *Calculator) Display() string {
	if c.failure != nil {
		return c.failure.Display()
	}
	if c.Entry.Pending() {
		return c.Entry.Text
	}

	return display.Format(c.Stack.Peek(stack.REG_X), &c.Context, c.Base)
}

// Levels renders all four stack levels for an auxiliary stack display,
// X first.
func (c *Calculator) Levels() (levels [stack.REG_LEVELS]string) {
	for n := range levels {
		levels[n] = display.Format(c.Stack.Peek(n), &c.Context, c.Base)
	}

	return
}

// Reset clears the stack, memory, flags, pending entry, and any held error.
func (c *Calculator) Reset() {
	if c.Verbose {
		log.Printf("calc: reset")
	}

	c.accept()
	c.Stack.Clear()
	c.Stack.ClearMem()
	c.Flags.Clear()
	c.Entry.Clear()
}
