package crypto

import "errors"

// Failure classes returned (wrapped) by this package. Callers match them
// with errors.Is.
var (
	ErrDecode         = errors.New("decode error")
	ErrInvalidLength  = errors.New("invalid length")
	ErrParse          = errors.New("parse error")
	ErrInvalidPadding = errors.New("invalid padding")
)
