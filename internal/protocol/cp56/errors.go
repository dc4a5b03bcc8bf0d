package cp56

import "errors"

var (
	ErrShortBuffer      = errors.New("cp56: short buffer")
	ErrLiteralMismatch  = errors.New("cp56: literal mismatch")
	ErrUnknownDirective = errors.New("cp56: unknown directive")
	ErrMissingNumber    = errors.New("cp56: missing number")
	ErrTruncatedFormat  = errors.New("cp56: format ends inside directive")
)
