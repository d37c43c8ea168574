package alu

import (
	"fmt"
	"iter"
	"maps"
)

// OpKind is the operation selector.
type OpKind int

//go:generate go tool stringer -linecomment -type=OpKind
const (
	OP_ADD = OpKind(0) // +
	OP_SUB = OpKind(1) // -
	OP_MUL = OpKind(2) // *
	OP_DIV = OpKind(3) // /
	OP_RMD = OpKind(4) // rmd

	OP_AND = OpKind(5) // and
	OP_OR  = OpKind(6) // or
	OP_XOR = OpKind(7) // xor
	OP_NOT = OpKind(8) // not

	OP_CHS = OpKind(9)  // chs
	OP_ABS = OpKind(10) // abs

	OP_SL  = OpKind(11) // sl
	OP_SR  = OpKind(12) // sr
	OP_ASR = OpKind(13) // asr
	OP_RL  = OpKind(14) // rl
	OP_RR  = OpKind(15) // rr
	OP_RLC = OpKind(16) // rlc
	OP_RRC = OpKind(17) // rrc
	OP_LJ  = OpKind(18) // lj

	OP_MASKL = OpKind(19) // maskl
	OP_MASKR = OpKind(20) // maskr

	OP_SB   = OpKind(21) // sb
	OP_CB   = OpKind(22) // cb
	OP_BTST = OpKind(23) // b?
	OP_CNTB = OpKind(24) // #b

	OP_DBL_MUL = OpKind(25) // dbl*
	OP_DBL_DIV = OpKind(26) // dbl/
	OP_DBL_RMD = OpKind(27) // dblr

	OP_ENTER = OpKind(28) // enter
	OP_SWAP  = OpKind(29) // x<>y
	OP_RDN   = OpKind(30) // rdn
	OP_RUP   = OpKind(31) // rup
	OP_CLX   = OpKind(32) // clx
	OP_CLSTK = OpKind(33) // clstk

	OP_STO   = OpKind(34) // sto
	OP_RCL   = OpKind(35) // rcl
	OP_CLREG = OpKind(36) // clreg

	OP_WSIZE = OpKind(37) // wsize

	OP_SF   = OpKind(38) // sf
	OP_CF   = OpKind(39) // cf
	OP_FTST = OpKind(40) // f?

	OP_KINDS = 41
)

// HP-16C flag numbers recognized by the sf/cf/f? operations.
const (
	FLAG_CARRY    = 4 // Carry flag.
	FLAG_OVERFLOW = 5 // Out-of-range (overflow) flag.
)

var _alu_defines = map[string]string{
	"FLAG_CARRY":    fmt.Sprintf("%v", FLAG_CARRY),
	"FLAG_OVERFLOW": fmt.Sprintf("%v", FLAG_OVERFLOW),
}

// Defines for the evaluator.
func Defines() iter.Seq2[string, string] {
	return maps.All(_alu_defines)
}

// Op is a single operation: a kind plus its argument, if the kind takes one.
// The argument is a shift count, bit index, mask width, memory register
// index, or flag number.
type Op struct {
	Kind OpKind
	Arg  int
}

func (op Op) String() (text string) {
	text = op.Kind.String()
	if op.Kind.TakesArg() {
		text = fmt.Sprintf("%v %v", text, op.Arg)
	}

	return
}

// TakesArg returns true if the kind carries an argument.
func (kind OpKind) TakesArg() bool {
	switch kind {
	case OP_SL, OP_SR, OP_ASR, OP_RL, OP_RR,
		OP_MASKL, OP_MASKR,
		OP_SB, OP_CB, OP_BTST,
		OP_STO, OP_RCL,
		OP_SF, OP_CF, OP_FTST:
		return true
	}

	return false
}

// ArgOptional returns true if the argument may be omitted, defaulting to a
// single bit of shift or rotate.
func (kind OpKind) ArgOptional() bool {
	switch kind {
	case OP_SL, OP_SR, OP_ASR, OP_RL, OP_RR:
		return true
	}

	return false
}

// KindOf looks up an operation kind by its mnemonic.
func KindOf(name string) (kind OpKind, ok bool) {
	for k := OpKind(0); k < OP_KINDS; k++ {
		if k.String() == name {
			return k, true
		}
	}

	return
}
