package document

import "errors"

var (
	ErrNotFound        = errors.New("document not found")
	ErrInvalidDocument = errors.New("invalid document")
	ErrNegativeTotal   = errors.New("grand total is negative")
)
