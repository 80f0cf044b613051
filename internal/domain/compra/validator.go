package compra

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const MaxLabelLen = 100

// MaxAmount keeps totals inside NUMERIC(12,2).
var MaxAmount = decimal.RequireFromString("9999999999.99")

type Validator interface {
	Validate(c Compra) error
}

type FieldValidator struct{}

func NewValidator() *FieldValidator {
	return &FieldValidator{}
}

func (v *FieldValidator) Validate(c Compra) error {
	if c.ClienteID <= 0 {
		return fmt.Errorf("cliente_id is required")
	}

	label := strings.TrimSpace(c.Label)
	if label == "" {
		return fmt.Errorf("nombre_compra is required")
	}
	if utf8.RuneCountInString(label) > MaxLabelLen {
		return fmt.Errorf("nombre_compra must be at most %d characters", MaxLabelLen)
	}

	if c.TotalAmount.IsNegative() {
		return fmt.Errorf("monto_total must not be negative")
	}
	if c.TotalAmount.GreaterThan(MaxAmount) {
		return fmt.Errorf("monto_total must not exceed %s", MaxAmount)
	}

	if c.PurchaseDate.IsZero() {
		return fmt.Errorf("fecha_compra is required")
	}

	return nil
}
