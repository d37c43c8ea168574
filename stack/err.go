package stack

import (
	"github.com/ezrec/hp16c/translate"
)

var f = translate.From

// ErrRegister reports a memory register index outside 0..MEM_COUNT-1.
type ErrRegister int

func (err ErrRegister) Error() string {
	return f("memory register %v invalid", int(err))
}

func (err ErrRegister) Is(target error) (ok bool) {
	_, ok = target.(ErrRegister)
	return
}
