// Package word implements the fixed-width word context for the calculator.
//
// Every register value in the engine is a raw bit pattern stored in a uint64.
// The Context decides how many of those bits are live and how the pattern is
// read back as a signed number. All masking and sign reinterpretation is
// centralized here; no other package reimplements it.
package word

import (
	"fmt"
	"iter"
	"maps"
)

// Mode is the signed-number representation of the active word.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_UNSIGNED = Mode(0) // unsigned
	MODE_ONES     = Mode(1) // ones
	MODE_TWOS     = Mode(2) // twos
	MODE_SIGNMAG  = Mode(3) // signmag
)

// Valid returns true if the mode is a known representation.
func (m Mode) Valid() bool {
	return m >= MODE_UNSIGNED && m <= MODE_SIGNMAG
}

// ModeOf looks up a mode by its mnemonic.
func ModeOf(name string) (mode Mode, ok bool) {
	for m := MODE_UNSIGNED; m <= MODE_SIGNMAG; m++ {
		if m.String() == name {
			return m, true
		}
	}

	return
}

const (
	WORD_BITS_MIN = 4  // Smallest supported word size.
	WORD_BITS_MAX = 64 // Largest supported word size.
)

var _word_defines = map[string]string{
	"WORD_BITS_MIN": fmt.Sprintf("%v", WORD_BITS_MIN),
	"WORD_BITS_MAX": fmt.Sprintf("%v", WORD_BITS_MAX),
}

// Defines for the word context.
func Defines() iter.Seq2[string, string] {
	return maps.All(_word_defines)
}

// Context holds the active word size and representation mode.
type Context struct {
	Bits uint // Word size in bits, WORD_BITS_MIN..WORD_BITS_MAX.
	Mode Mode // Signed representation of the word.
}

// NewContext creates a context, validating the requested size and mode.
func NewContext(bits uint, mode Mode) (ctx Context, err error) {
	if bits < WORD_BITS_MIN || bits > WORD_BITS_MAX {
		err = ErrWordSize(bits)
		return
	}
	if !mode.Valid() {
		err = ErrMode(mode)
		return
	}

	ctx = Context{Bits: bits, Mode: mode}
	return
}

// SetBits changes the word size, validating the requested size.
// Callers are responsible for re-masking any registers they hold.
func (ctx *Context) SetBits(bits uint) (err error) {
	if bits < WORD_BITS_MIN || bits > WORD_BITS_MAX {
		err = ErrWordSize(bits)
		return
	}

	ctx.Bits = bits
	return
}

// MaskBits returns the mask of live bits for the current word size.
func (ctx *Context) MaskBits() uint64 {
	return ^uint64(0) >> (64 - ctx.Bits)
}

// Mask truncates a raw value to the current word size.
// Idempotent: Mask(Mask(v)) == Mask(v).
func (ctx *Context) Mask(raw uint64) uint64 {
	return raw & ctx.MaskBits()
}

// SignBit returns the bit pattern of the sign bit at the current word size.
func (ctx *Context) SignBit() uint64 {
	return uint64(1) << (ctx.Bits - 1)
}

// MaxUnsigned returns the largest raw value the word can hold.
func (ctx *Context) MaxUnsigned() uint64 {
	return ctx.MaskBits()
}

// MaxSigned returns the largest signed value representable in the mode.
// In unsigned mode the true upper bound is MaxUnsigned; the value here is
// clamped at a 64-bit word.
func (ctx *Context) MaxSigned() (max int64) {
	switch ctx.Mode {
	case MODE_UNSIGNED:
		if ctx.Bits == 64 {
			max = int64(ctx.MaskBits() >> 1) // clamped
		} else {
			max = int64(ctx.MaskBits())
		}
	case MODE_TWOS, MODE_ONES, MODE_SIGNMAG:
		max = int64(ctx.SignBit() - 1)
	}

	return
}

// MinSigned returns the smallest signed value representable in the mode.
func (ctx *Context) MinSigned() (min int64) {
	switch ctx.Mode {
	case MODE_UNSIGNED:
		min = 0
	case MODE_TWOS:
		min = -int64(ctx.SignBit()-1) - 1
	case MODE_ONES, MODE_SIGNMAG:
		min = -int64(ctx.SignBit() - 1)
	}

	return
}

// Interpret reads a raw bit pattern back as a signed value under the mode.
// The ones'-complement all-ones pattern is negative zero and reads as 0.
// In unsigned mode the pattern is returned unchanged; at a 64-bit word the
// caller should use the raw value instead.
func (ctx *Context) Interpret(value uint64) (signed int64) {
	value = ctx.Mask(value)

	switch ctx.Mode {
	case MODE_UNSIGNED:
		signed = int64(value)
	case MODE_TWOS:
		if value&ctx.SignBit() != 0 {
			// Sign-extend the pattern to the full 64 bits.
			signed = int64(value | ^ctx.MaskBits())
		} else {
			signed = int64(value)
		}
	case MODE_ONES:
		if value&ctx.SignBit() != 0 {
			signed = -int64(^value & ctx.MaskBits())
		} else {
			signed = int64(value)
		}
	case MODE_SIGNMAG:
		magnitude := value & (ctx.MaskBits() >> 1)
		if value&ctx.SignBit() != 0 {
			signed = -int64(magnitude)
		} else {
			signed = int64(magnitude)
		}
	}

	return
}

// FromSigned encodes a signed value as a raw bit pattern under the mode.
// Values outside the representable range wrap silently.
func (ctx *Context) FromSigned(signed int64) (value uint64) {
	if signed >= 0 {
		return ctx.Mask(uint64(signed))
	}

	return ctx.Negate(ctx.Mask(uint64(-signed)))
}

// Negate returns the bit pattern of the negated value under the mode.
// Unsigned words negate as two's complement, matching the wraparound of
// fixed-width subtraction.
func (ctx *Context) Negate(value uint64) (negated uint64) {
	switch ctx.Mode {
	case MODE_UNSIGNED, MODE_TWOS:
		negated = ctx.Mask(-value)
	case MODE_ONES:
		negated = ctx.Mask(^value)
	case MODE_SIGNMAG:
		negated = ctx.Mask(value ^ ctx.SignBit())
	}

	return
}
