package display

import (
	"math/big"
	"strings"

	"github.com/ezrec/hp16c/word"
)

// Entry is the transient digit entry not yet committed to the X register.
// Digits accumulate as typed; the entry is cleared on commit or when an
// operator is dispatched.
type Entry struct {
	Text string
}

// Pending returns true if any digits have been typed.
func (e *Entry) Pending() bool {
	return len(e.Text) != 0
}

// Digit appends a digit character. A digit invalid in the base is rejected
// without mutating the pending entry. Hex digits normalize to uppercase.
func (e *Entry) Digit(digit rune, base Base) (err error) {
	if !DigitValid(digit, base) {
		err = ErrDigit{Digit: digit, Base: base}
		return
	}

	e.Text += strings.ToUpper(string(digit))
	return
}

// Backspace removes the most recent digit.
func (e *Entry) Backspace() {
	if len(e.Text) > 0 {
		e.Text = e.Text[:len(e.Text)-1]
	}
}

// Clear discards the pending entry.
func (e *Entry) Clear() {
	e.Text = ""
}

// Commit converts a fully typed literal into a raw bit pattern, masked to
// the word context. A literal beyond the representable range masks silently.
// A leading '-' is honored in decimal only, encoding through the negation
// rule of the active mode.
func Commit(text string, base Base, ctx *word.Context) (value uint64, err error) {
	if len(text) == 0 {
		return
	}

	negative := false
	if base == BASE_DEC && strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
		if len(text) == 0 {
			// A lone sign carries no digits.
			err = ErrDigit{Digit: '-', Base: base}
			return
		}
	}

	for _, digit := range text {
		if !DigitValid(digit, base) {
			err = ErrDigit{Digit: digit, Base: base}
			return
		}
	}

	// Accumulate in unbounded precision so oversized literals wrap
	// instead of failing.
	magnitude, ok := new(big.Int).SetString(text, base.Radix())
	if !ok {
		err = ErrDigit{Digit: rune(text[0]), Base: base}
		return
	}

	modulus := new(big.Int).Lsh(big.NewInt(1), ctx.Bits)
	value = magnitude.Mod(magnitude, modulus).Uint64()

	if negative {
		value = ctx.Negate(value)
	}

	return
}
