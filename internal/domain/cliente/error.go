package cliente

import "errors"

var (
	ErrNotFound     = errors.New("cliente not found")
	ErrInvalidInput = errors.New("invalid input")
)
