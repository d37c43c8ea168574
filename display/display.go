// Package display renders register values as base-specific display strings
// and parses typed digit entry back into raw bit patterns.
//
// Non-decimal bases render the raw bit pattern zero-padded to the fixed digit
// count of the active word size. Decimal renders through the signed
// interpretation of the word context, so a two's-complement word with the
// sign bit set shows a leading minus.
package display

import (
	"fmt"
	"strconv"

	"github.com/ezrec/hp16c/word"
)

// Base is the numeric display base.
type Base int

//go:generate go tool stringer -linecomment -type=Base
const (
	BASE_BIN = Base(0) // bin
	BASE_OCT = Base(1) // oct
	BASE_DEC = Base(2) // dec
	BASE_HEX = Base(3) // hex
)

// Valid returns true if the base is a known display base.
func (b Base) Valid() bool {
	return b >= BASE_BIN && b <= BASE_HEX
}

// Radix returns the numeric radix of the base.
func (b Base) Radix() (radix int) {
	switch b {
	case BASE_BIN:
		radix = 2
	case BASE_OCT:
		radix = 8
	case BASE_DEC:
		radix = 10
	case BASE_HEX:
		radix = 16
	}

	return
}

// BaseOf looks up a base by its mnemonic.
func BaseOf(name string) (base Base, ok bool) {
	for b := BASE_BIN; b <= BASE_HEX; b++ {
		if b.String() == name {
			return b, true
		}
	}

	return
}

// Digits returns the fixed display width of the base at the given word size.
// Decimal has no fixed width.
func (b Base) Digits(bits uint) (digits int) {
	switch b {
	case BASE_BIN:
		digits = int(bits)
	case BASE_OCT:
		digits = int(bits+2) / 3
	case BASE_HEX:
		digits = int(bits+3) / 4
	}

	return
}

// Format renders a raw value as the canonical display string for the base.
// Hexadecimal uses uppercase A-F. The sign-magnitude and ones'-complement
// negative-zero patterns render as 0 in decimal.
func Format(value uint64, ctx *word.Context, base Base) (text string) {
	value = ctx.Mask(value)

	switch base {
	case BASE_BIN:
		text = fmt.Sprintf("%0*b", base.Digits(ctx.Bits), value)
	case BASE_OCT:
		text = fmt.Sprintf("%0*o", base.Digits(ctx.Bits), value)
	case BASE_HEX:
		text = fmt.Sprintf("%0*X", base.Digits(ctx.Bits), value)
	case BASE_DEC:
		if ctx.Mode == word.MODE_UNSIGNED {
			text = strconv.FormatUint(value, 10)
		} else {
			text = strconv.FormatInt(ctx.Interpret(value), 10)
		}
	}

	return
}

// digitValue decodes a single digit character. Hex letters are accepted in
// either case.
func digitValue(digit rune) (value int, ok bool) {
	switch {
	case digit >= '0' && digit <= '9':
		value = int(digit - '0')
		ok = true
	case digit >= 'A' && digit <= 'F':
		value = int(digit-'A') + 10
		ok = true
	case digit >= 'a' && digit <= 'f':
		value = int(digit-'a') + 10
		ok = true
	}

	return
}

// DigitValid returns true if the digit character is valid in the base.
func DigitValid(digit rune, base Base) bool {
	value, ok := digitValue(digit)

	return ok && value < base.Radix()
}
