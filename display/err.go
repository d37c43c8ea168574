package display

import (
	"github.com/ezrec/hp16c/translate"
)

var f = translate.From

// ErrDigit reports a digit that is not valid in the active base.
type ErrDigit struct {
	Digit rune
	Base  Base
}

func (err ErrDigit) Error() string {
	return f("digit '%c' invalid for base %v", err.Digit, err.Base)
}

func (err ErrDigit) Is(target error) (ok bool) {
	_, ok = target.(ErrDigit)
	return
}

// ErrBase reports an unknown display base.
type ErrBase Base

func (err ErrBase) Error() string {
	return f("display base %v unknown", int(err))
}

func (err ErrBase) Is(target error) (ok bool) {
	_, ok = target.(ErrBase)
	return
}
