package taxengine

import "errors"

// Engine errors
var (
	ErrCantonNotFound  = errors.New("canton not found")
	ErrInvalidProfile  = errors.New("invalid company profile")
	ErrEmptyRateTable  = errors.New("rate table is empty")
	ErrDuplicateCanton = errors.New("duplicate canton code in rate table")
)
