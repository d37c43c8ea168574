package word

import (
	"github.com/ezrec/hp16c/translate"
)

var f = translate.From

// ErrWordSize reports a requested word size outside the supported range.
type ErrWordSize uint

func (err ErrWordSize) Error() string {
	return f("word size %v out of range", uint(err))
}

func (err ErrWordSize) Is(target error) (ok bool) {
	_, ok = target.(ErrWordSize)
	return
}

// ErrMode reports an unknown representation mode.
type ErrMode Mode

func (err ErrMode) Error() string {
	return f("representation mode %v unknown", int(err))
}
