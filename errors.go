package pescados

import "errors"

var (
	// ErrInvalid is returned (wrapped) when an input fails validation.
	ErrInvalid = errors.New("invalid input")
	// ErrNotFound is returned (wrapped) when a product or transaction reference matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous is returned (wrapped) when a reference matches more than one item.
	ErrAmbiguous = errors.New("ambiguous reference")
)
