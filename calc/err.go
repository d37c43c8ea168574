package calc

import (
	"errors"

	"github.com/ezrec/hp16c/alu"
	"github.com/ezrec/hp16c/display"
	"github.com/ezrec/hp16c/stack"
	"github.com/ezrec/hp16c/translate"
	"github.com/ezrec/hp16c/word"
)

var f = translate.From

// ErrorCode is the closed set of display error codes, following the code
// numbering of the original device.
type ErrorCode int

//go:generate go tool stringer -linecomment -type=ErrorCode
const (
	E_NONE     = ErrorCode(0) // E000
	E_STACK    = ErrorCode(1) // E101
	E_OPERAND  = ErrorCode(2) // E102
	E_DIVZERO  = ErrorCode(3) // E103
	E_WORDSIZE = ErrorCode(4) // E104
	E_REGISTER = ErrorCode(5) // E105
	E_DIGIT    = ErrorCode(6) // E106
)

// Classify maps an engine error to its display code. E_STACK is reserved:
// the fixed four-level ring cannot underflow. Unrecognized errors classify
// as E_OPERAND.
func Classify(err error) (code ErrorCode) {
	switch {
	case err == nil:
		code = E_NONE
	case errors.Is(err, alu.ErrDivideByZero):
		code = E_DIVZERO
	case errors.Is(err, word.ErrWordSize(0)):
		code = E_WORDSIZE
	case errors.Is(err, stack.ErrRegister(0)):
		code = E_REGISTER
	case errors.Is(err, display.ErrDigit{}):
		code = E_DIGIT
	default:
		code = E_OPERAND
	}

	return
}
