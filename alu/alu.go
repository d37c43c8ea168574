package alu

import (
	"math/big"
	"math/bits"

	"github.com/ezrec/hp16c/stack"
	"github.com/ezrec/hp16c/word"
)

// Flags are the carry and overflow flags of the engine. They are explicit
// evaluator state, owned by the caller, never ambient globals.
type Flags struct {
	Carry    bool // Set by an unsigned wraparound or a bit shifted out.
	Overflow bool // Set when a true result exceeds the signed range.
}

// Clear resets both flags.
func (fl *Flags) Clear() {
	fl.Carry = false
	fl.Overflow = false
}

// signedBig returns the interpreted value of a raw pattern in unbounded
// precision.
func signedBig(ctx *word.Context, value uint64) (signed *big.Int) {
	if ctx.Mode == word.MODE_UNSIGNED {
		return new(big.Int).SetUint64(ctx.Mask(value))
	}

	return big.NewInt(ctx.Interpret(value))
}

// wrap reduces a true result to the raw bit pattern of the word. Negative
// results take their two's-complement pattern, which is then read back under
// the active mode, exactly as the fixed-width hardware register would.
func wrap(ctx *word.Context, t *big.Int) (value uint64) {
	modulus := new(big.Int).Lsh(big.NewInt(1), ctx.Bits)

	return new(big.Int).Mod(t, modulus).Uint64()
}

// outOfRange reports whether a true result exceeds the representable range
// of the mode.
func outOfRange(ctx *word.Context, t *big.Int) bool {
	var lo, hi big.Int
	if ctx.Mode == word.MODE_UNSIGNED {
		hi.SetUint64(ctx.MaxUnsigned())
	} else {
		lo.SetInt64(ctx.MinSigned())
		hi.SetInt64(ctx.MaxSigned())
	}

	return t.Cmp(&lo) < 0 || t.Cmp(&hi) > 0
}

// arith computes a binary arithmetic result from the raw Y and X patterns.
func arith(kind OpKind, y, x uint64, ctx *word.Context) (result uint64, carry, overflow bool) {
	ys := signedBig(ctx, y)
	xs := signedBig(ctx, x)
	t := new(big.Int)

	switch kind {
	case OP_ADD:
		t.Add(ys, xs)
		sum, c := bits.Add64(ctx.Mask(y), ctx.Mask(x), 0)
		carry = c != 0 || sum&^ctx.MaskBits() != 0
	case OP_SUB:
		t.Sub(ys, xs)
		carry = ctx.Mask(y) < ctx.Mask(x) // borrow
	case OP_MUL:
		t.Mul(ys, xs)
		hi, lo := bits.Mul64(ctx.Mask(y), ctx.Mask(x))
		carry = hi != 0 || lo&^ctx.MaskBits() != 0
	case OP_DIV:
		r := new(big.Int)
		t.QuoRem(ys, xs, r) // truncates toward zero
		carry = r.Sign() != 0
	case OP_RMD:
		t.Rem(ys, xs)
	}

	overflow = outOfRange(ctx, t)
	result = wrap(ctx, t)
	return
}

// Eval executes a single operation against the stack under the word context.
// On error nothing is mutated: the stack, memory, flags, and context are
// exactly as before, so the operands remain available for correction.
// Overflow is never an error; the wrapped result is pushed and the flag set.
func Eval(op Op, st *stack.Stack, ctx *word.Context, fl *Flags) (err error) {
	x := ctx.Mask(st.Peek(stack.REG_X))

	switch op.Kind {
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_RMD:
		if (op.Kind == OP_DIV || op.Kind == OP_RMD) && x == 0 {
			err = ErrDivideByZero
			return
		}
		y := ctx.Mask(st.Peek(stack.REG_Y))
		result, carry, overflow := arith(op.Kind, y, x, ctx)
		st.Pop()
		st.Pop()
		st.Push(result)
		fl.Carry = carry
		fl.Overflow = overflow

	case OP_AND, OP_OR, OP_XOR:
		// Pure bit-pattern operations, representation-agnostic.
		y := ctx.Mask(st.Peek(stack.REG_Y))
		var result uint64
		switch op.Kind {
		case OP_AND:
			result = y & x
		case OP_OR:
			result = y | x
		case OP_XOR:
			result = y ^ x
		}
		st.Pop()
		st.Pop()
		st.Push(result)

	case OP_NOT:
		st.Reg[stack.REG_X] = ctx.Mask(^x)

	case OP_CHS:
		negated := new(big.Int).Neg(signedBig(ctx, x))
		fl.Overflow = outOfRange(ctx, negated)
		st.Reg[stack.REG_X] = ctx.Negate(x)

	case OP_ABS:
		if ctx.Mode == word.MODE_UNSIGNED {
			return
		}
		signed := ctx.Interpret(x)
		fl.Overflow = ctx.Mode == word.MODE_TWOS && signed == ctx.MinSigned()
		if signed < 0 {
			st.Reg[stack.REG_X] = ctx.Negate(x)
		} else {
			// Normalizes the negative-zero patterns.
			st.Reg[stack.REG_X] = ctx.FromSigned(signed)
		}

	case OP_SL, OP_SR, OP_ASR, OP_RL, OP_RR:
		if op.Arg < 0 {
			err = ErrBit(op.Arg)
			return
		}
		// The register is a fixed ring of bits; counts reduce
		// modulo the word size.
		n := uint(op.Arg) % ctx.Bits
		if n == 0 {
			return
		}
		switch op.Kind {
		case OP_SL:
			fl.Carry = (x>>(ctx.Bits-n))&1 != 0
			x = ctx.Mask(x << n)
		case OP_SR:
			fl.Carry = (x>>(n-1))&1 != 0
			x >>= n
		case OP_ASR:
			fl.Carry = (x>>(n-1))&1 != 0
			negative := x&ctx.SignBit() != 0
			x >>= n
			if negative {
				x |= ctx.Mask(^(ctx.MaskBits() >> n))
			}
		case OP_RL:
			x = ctx.Mask(x<<n) | (x >> (ctx.Bits - n))
			fl.Carry = x&1 != 0
		case OP_RR:
			x = (x >> n) | ctx.Mask(x<<(ctx.Bits-n))
			fl.Carry = x&ctx.SignBit() != 0
		}
		st.Reg[stack.REG_X] = x

	case OP_RLC:
		carry := x&ctx.SignBit() != 0
		x = ctx.Mask(x << 1)
		if fl.Carry {
			x |= 1
		}
		fl.Carry = carry
		st.Reg[stack.REG_X] = x

	case OP_RRC:
		carry := x&1 != 0
		x >>= 1
		if fl.Carry {
			x |= ctx.SignBit()
		}
		fl.Carry = carry
		st.Reg[stack.REG_X] = x

	case OP_LJ:
		fl.Carry = false
		if x == 0 {
			return
		}
		for x&ctx.SignBit() == 0 {
			x <<= 1
		}
		st.Reg[stack.REG_X] = ctx.Mask(x)

	case OP_MASKL, OP_MASKR:
		if op.Arg < 0 || uint(op.Arg) > ctx.Bits {
			err = ErrBit(op.Arg)
			return
		}
		if op.Kind == OP_MASKL {
			st.Reg[stack.REG_X] = x & ctx.Mask(^(ctx.MaskBits() >> uint(op.Arg)))
		} else {
			st.Reg[stack.REG_X] = x & (ctx.MaskBits() >> (ctx.Bits - uint(op.Arg)))
		}

	case OP_SB, OP_CB, OP_BTST:
		if op.Arg < 0 || uint(op.Arg) >= ctx.Bits {
			err = ErrBit(op.Arg)
			return
		}
		bit := uint64(1) << uint(op.Arg)
		switch op.Kind {
		case OP_SB:
			st.Reg[stack.REG_X] = x | bit
		case OP_CB:
			st.Reg[stack.REG_X] = x &^ bit
		case OP_BTST:
			fl.Carry = x&bit != 0
		}

	case OP_CNTB:
		st.Reg[stack.REG_X] = uint64(bits.OnesCount64(x))

	case OP_DBL_MUL:
		y := st.Peek(stack.REG_Y)
		product := new(big.Int).Mul(signedBig(ctx, y), signedBig(ctx, x))
		low := wrap(ctx, product)
		high := wrap(ctx, new(big.Int).Rsh(product, ctx.Bits))
		st.Pop()
		st.Pop()
		st.Push(high)
		st.Push(low)

	case OP_DBL_DIV, OP_DBL_RMD:
		if x == 0 {
			err = ErrDivideByZero
			return
		}
		low := ctx.Mask(st.Peek(stack.REG_Y))
		high := signedBig(ctx, st.Peek(stack.REG_Z))
		dividend := new(big.Int).Lsh(high, ctx.Bits)
		dividend.Or(dividend, new(big.Int).SetUint64(low))
		quotient := new(big.Int)
		remainder := new(big.Int)
		quotient.QuoRem(dividend, signedBig(ctx, x), remainder)
		st.Pop()
		st.Pop()
		st.Pop()
		if op.Kind == OP_DBL_DIV {
			fl.Carry = remainder.Sign() != 0
			fl.Overflow = outOfRange(ctx, quotient)
			st.Push(wrap(ctx, remainder))
			st.Push(wrap(ctx, quotient))
		} else {
			st.Push(wrap(ctx, remainder))
		}

	case OP_ENTER:
		st.Push(x)

	case OP_SWAP:
		st.SwapXY()

	case OP_RDN:
		st.RollDown()

	case OP_RUP:
		st.RollUp()

	case OP_CLX:
		st.ClearX()

	case OP_CLSTK:
		st.Clear()

	case OP_STO:
		err = st.Store(op.Arg, x)

	case OP_RCL:
		var value uint64
		value, err = st.Recall(op.Arg)
		if err == nil {
			st.Push(value)
		}

	case OP_CLREG:
		st.ClearMem()

	case OP_WSIZE:
		if x < word.WORD_BITS_MIN || x > word.WORD_BITS_MAX {
			err = word.ErrWordSize(x)
			return
		}
		st.Pop()
		_ = ctx.SetBits(uint(x))
		st.Remask(ctx)

	case OP_SF, OP_CF, OP_FTST:
		var flag *bool
		switch op.Arg {
		case FLAG_CARRY:
			flag = &fl.Carry
		case FLAG_OVERFLOW:
			flag = &fl.Overflow
		default:
			err = ErrFlag(op.Arg)
			return
		}
		switch op.Kind {
		case OP_SF:
			*flag = true
		case OP_CF:
			*flag = false
		case OP_FTST:
			var set uint64
			if *flag {
				set = 1
			}
			st.Push(set)
		}

	default:
		err = ErrOpInvalid
	}

	return
}
