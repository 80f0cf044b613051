package compra

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra is a purchase made on credit by a cliente.
// Paid is nil for legacy rows that never recorded it.
type Compra struct {
	ID           int
	ClienteID    int
	Label        string
	TotalAmount  decimal.Decimal
	PurchaseDate time.Time
	Paid         *bool
}

type Patch struct {
	ClienteID    *int
	Label        *string
	TotalAmount  *decimal.Decimal
	PurchaseDate *time.Time
	Paid         *bool
}

func (p Patch) Apply(c Compra) Compra {
	if p.ClienteID != nil {
		c.ClienteID = *p.ClienteID
	}
	if p.Label != nil {
		c.Label = *p.Label
	}
	if p.TotalAmount != nil {
		c.TotalAmount = *p.TotalAmount
	}
	if p.PurchaseDate != nil {
		c.PurchaseDate = *p.PurchaseDate
	}
	if p.Paid != nil {
		paid := *p.Paid
		c.Paid = &paid
	}
	return c
}
