package compra

import "errors"

var (
	ErrNotFound        = errors.New("compra not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrClienteNotFound = errors.New("cliente does not exist")
)
