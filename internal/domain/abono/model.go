package abono

import (
	"time"

	"github.com/shopspring/decimal"

	"cobros/internal/domain/compra"
)

// Abono is one installment paid against a compra.
type Abono struct {
	ID          int
	ClienteID   int
	CompraID    int
	Amount      decimal.Decimal
	PaymentDate time.Time
	Description string
}

// Detailed is an abono together with the compra it pays, when that still exists.
type Detailed struct {
	Abono
	Compra *compra.Compra
}

type Patch struct {
	ClienteID   *int
	CompraID    *int
	Amount      *decimal.Decimal
	PaymentDate *time.Time
	Description *string
}

func (p Patch) Apply(a Abono) Abono {
	if p.ClienteID != nil {
		a.ClienteID = *p.ClienteID
	}
	if p.CompraID != nil {
		a.CompraID = *p.CompraID
	}
	if p.Amount != nil {
		a.Amount = *p.Amount
	}
	if p.PaymentDate != nil {
		a.PaymentDate = *p.PaymentDate
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	return a
}
