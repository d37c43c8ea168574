package alu

import (
	"errors"

	"github.com/ezrec/hp16c/translate"
)

var f = translate.From

var (
	ErrDivideByZero = errors.New(f("divide by zero"))
	ErrOpInvalid    = errors.New(f("operation invalid"))
)

// ErrBit reports a bit index or width argument outside the active word.
type ErrBit int

func (err ErrBit) Error() string {
	return f("bit %v outside the word", int(err))
}

func (err ErrBit) Is(target error) (ok bool) {
	_, ok = target.(ErrBit)
	return
}

// ErrFlag reports a flag number the engine does not keep.
type ErrFlag int

func (err ErrFlag) Error() string {
	return f("flag %v unknown", int(err))
}

func (err ErrFlag) Is(target error) (ok bool) {
	_, ok = target.(ErrFlag)
	return
}
