// Package money holds the request type for monetary amounts.
package money

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
)

// Amount decodes a JSON number straight into a decimal, without passing
// through float64. It documents and validates as a plain number.
type Amount struct {
	decimal.Decimal
}

func (Amount) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{Type: huma.TypeNumber}
}
