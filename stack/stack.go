// Package stack implements the four-level RPN register stack and the
// addressable memory registers of the calculator.
//
// The stack is a fixed ring of four registers (X, Y, Z, T). Pushing discards
// T; popping replicates T downward. There is no underflow: every operation on
// the ring is total.
package stack

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/hp16c/word"
)

// Register level indexes into Stack.Reg.
const (
	REG_X = 0 // Top of the stack, the display register.
	REG_Y = 1
	REG_Z = 2
	REG_T = 3

	REG_LEVELS = 4

	MEM_COUNT = 16 // Memory registers 0..F.
)

var _stack_defines = map[string]string{
	"MEM_COUNT": fmt.Sprintf("%v", MEM_COUNT),
}

// Defines for the register stack.
func Defines() iter.Seq2[string, string] {
	return maps.All(_stack_defines)
}

// Stack is the four-level register ring plus the memory register bank.
// All slots hold raw bit patterns already masked to the active word size.
type Stack struct {
	Reg [REG_LEVELS]uint64 // X, Y, Z, T.
	Mem [MEM_COUNT]uint64  // Memory registers.
}

// Push lifts the stack and writes a new X. T is discarded.
func (st *Stack) Push(value uint64) {
	st.Reg[REG_T] = st.Reg[REG_Z]
	st.Reg[REG_Z] = st.Reg[REG_Y]
	st.Reg[REG_Y] = st.Reg[REG_X]
	st.Reg[REG_X] = value
}

// Pop removes and returns X. T replicates into the vacated slot.
func (st *Stack) Pop() (value uint64) {
	value = st.Reg[REG_X]
	st.Reg[REG_X] = st.Reg[REG_Y]
	st.Reg[REG_Y] = st.Reg[REG_Z]
	st.Reg[REG_Z] = st.Reg[REG_T]
	return
}

// Peek reads a stack level without mutation. Levels outside X..T read as X.
func (st *Stack) Peek(level int) (value uint64) {
	if level < REG_X || level > REG_T {
		level = REG_X
	}

	return st.Reg[level]
}

// SwapXY exchanges X and Y.
func (st *Stack) SwapXY() {
	st.Reg[REG_X], st.Reg[REG_Y] = st.Reg[REG_Y], st.Reg[REG_X]
}

// RollDown rotates the stack toward X: X→T, Y→X, Z→Y, T→Z.
func (st *Stack) RollDown() {
	x := st.Reg[REG_X]
	st.Reg[REG_X] = st.Reg[REG_Y]
	st.Reg[REG_Y] = st.Reg[REG_Z]
	st.Reg[REG_Z] = st.Reg[REG_T]
	st.Reg[REG_T] = x
}

// RollUp rotates the stack away from X: T→X, X→Y, Y→Z, Z→T.
func (st *Stack) RollUp() {
	t := st.Reg[REG_T]
	st.Reg[REG_T] = st.Reg[REG_Z]
	st.Reg[REG_Z] = st.Reg[REG_Y]
	st.Reg[REG_Y] = st.Reg[REG_X]
	st.Reg[REG_X] = t
}

// ClearX zeroes the X register only.
func (st *Stack) ClearX() {
	st.Reg[REG_X] = 0
}

// Clear zeroes all four stack levels. Memory registers are untouched.
func (st *Stack) Clear() {
	clear(st.Reg[:])
}

// Store writes a value to a memory register.
func (st *Stack) Store(index int, value uint64) (err error) {
	if index < 0 || index >= MEM_COUNT {
		err = ErrRegister(index)
		return
	}

	st.Mem[index] = value
	return
}

// Recall reads a memory register.
func (st *Stack) Recall(index int) (value uint64, err error) {
	if index < 0 || index >= MEM_COUNT {
		err = ErrRegister(index)
		return
	}

	value = st.Mem[index]
	return
}

// ClearMem zeroes all memory registers.
func (st *Stack) ClearMem() {
	clear(st.Mem[:])
}

// Remask truncates every stack level and memory register to the word size of
// the context. Called eagerly whenever the word size or mode changes so that
// no register transiently holds an out-of-range pattern.
func (st *Stack) Remask(ctx *word.Context) {
	for n := range st.Reg {
		st.Reg[n] = ctx.Mask(st.Reg[n])
	}
	for n := range st.Mem {
		st.Mem[n] = ctx.Mask(st.Mem[n])
	}
}
