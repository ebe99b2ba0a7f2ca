package main

import "errors"

// Sentinel errors. Check with errors.Is:
// errors.Is(err, ErrEmptyCatalog)
var (
	ErrEmptyCatalog    = errors.New("quantumdice: empty option catalog")
	ErrInvalidConfig   = errors.New("quantumdice: invalid engine config")
	ErrDuplicateOption = errors.New("quantumdice: duplicate option id")
	ErrReservedID      = errors.New("quantumdice: reserved session id")
	ErrUnknownSession  = errors.New("quantumdice: unknown session id")
)
