package domain

import "errors"

var (
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrUnknownSourceKind    = errors.New("unknown transaction source")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrHashNotSupported     = errors.New("tx hash can only be attached to usdc orders")
)
