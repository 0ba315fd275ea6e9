package word64

import (
	"github.com/zeebo/errs"
)

// Error classes returned by this package. Match them with the Has method:
//
//	if word64.ErrFormat.Has(err) { ...
var (
	// ErrFormat is the class of errors caused by malformed hex input.
	ErrFormat = errs.Class("word64: invalid format")

	// ErrLength is the class of errors caused by input of the wrong size.
	ErrLength = errs.Class("word64: invalid length")

	// ErrUnrepresentable is the class of errors caused by bit patterns that
	// can not be exposed in the requested form.
	ErrUnrepresentable = errs.Class("word64: unrepresentable")
)
