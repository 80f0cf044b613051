package abono

import "errors"

var (
	ErrNotFound       = errors.New("abono not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrCompraNotFound = errors.New("compra does not exist")
)
