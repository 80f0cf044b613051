package abono

import (
	"fmt"
	"unicode/utf8"

	"cobros/internal/domain/compra"
)

const MaxDescriptionLen = 255

type Validator interface {
	Validate(a Abono) error
}

type FieldValidator struct{}

func NewValidator() *FieldValidator {
	return &FieldValidator{}
}

func (v *FieldValidator) Validate(a Abono) error {
	if a.CompraID <= 0 {
		return fmt.Errorf("compra_id is required")
	}
	if a.ClienteID <= 0 {
		return fmt.Errorf("cliente_id is required")
	}
	if !a.Amount.IsPositive() {
		return fmt.Errorf("monto_abono must be greater than zero")
	}
	if a.Amount.GreaterThan(compra.MaxAmount) {
		return fmt.Errorf("monto_abono must not exceed %s", compra.MaxAmount)
	}
	if a.PaymentDate.IsZero() {
		return fmt.Errorf("fecha_abono is required")
	}
	if utf8.RuneCountInString(a.Description) > MaxDescriptionLen {
		return fmt.Errorf("description must be at most %d characters", MaxDescriptionLen)
	}
	return nil
}
