package client

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateClientInput(in ClientInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("el nombre es obligatorio")
	}
	return nil
}

func validateClientPatch(p ClientPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return invalid("el nombre es obligatorio")
	}
	return nil
}

func validateAmount(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid("%s no puede ser negativo", field)
	}
	return nil
}

// validateDate accepts "" and anything the normalizer can read.
func validateDate(field, v string) error {
	if v != "" && coerceDate(v) == "" {
		return invalid("%s: fecha no reconocida %q", field, v)
	}
	return nil
}

// validatePurchaseInput checks a purchase draft against the loaded clients.
func validatePurchaseInput(in PurchaseInput, clients *Store[Client]) error {
	if _, ok := clients.Get(in.ClientID); in.ClientID <= 0 || !ok {
		return invalid("Seleccione un cliente válido")
	}
	if strings.TrimSpace(in.Label) == "" {
		return invalid("el nombre de la compra es obligatorio")
	}
	if err := validateAmount("monto_total", in.TotalAmount); err != nil {
		return err
	}
	return validateDate("fecha_compra", in.PurchaseDate)
}

func validatePurchasePatch(p PurchasePatch, clients *Store[Client]) error {
	if p.ClientID != nil {
		if _, ok := clients.Get(*p.ClientID); !ok {
			return invalid("Seleccione un cliente válido")
		}
	}
	if p.Label != nil && strings.TrimSpace(*p.Label) == "" {
		return invalid("el nombre de la compra es obligatorio")
	}
	if p.TotalAmount != nil {
		if err := validateAmount("monto_total", *p.TotalAmount); err != nil {
			return err
		}
	}
	if p.PurchaseDate != nil {
		return validateDate("fecha_compra", *p.PurchaseDate)
	}
	return nil
}

// validatePaymentInput checks a payment draft and fills ClientID from the
// referenced purchase when it was left empty.
func validatePaymentInput(in *PaymentInput, purchases *Store[Purchase]) error {
	purchase, ok := purchases.Get(in.PurchaseID)
	if in.PurchaseID <= 0 || !ok {
		return invalid("Seleccione una compra válida")
	}
	if in.ClientID == 0 {
		in.ClientID = purchase.ClientID
	}
	if in.Amount.IsZero() {
		return invalid("monto_abono debe ser mayor que cero")
	}
	if err := validateAmount("monto_abono", in.Amount); err != nil {
		return err
	}
	return validateDate("fecha_abono", in.PaymentDate)
}

func validatePaymentPatch(p *PaymentPatch, purchases *Store[Purchase]) error {
	if p.PurchaseID != nil {
		purchase, ok := purchases.Get(*p.PurchaseID)
		if !ok {
			return invalid("Seleccione una compra válida")
		}
		if p.ClientID == nil {
			cid := purchase.ClientID
			p.ClientID = &cid
		}
	}
	if p.Amount != nil {
		if err := validateAmount("monto_abono", *p.Amount); err != nil {
			return err
		}
	}
	if p.PaymentDate != nil {
		return validateDate("fecha_abono", *p.PaymentDate)
	}
	return nil
}
