package program

import (
	"errors"

	"github.com/ezrec/hp16c/translate"
)

var f = translate.From

var (
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrArgMissing      = errors.New(f("argument missing"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) (ok bool) {
	_, ok = target.(ErrParseNumber)
	return
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err ErrRuntime) Unwrap() error {
	return err.Err
}
