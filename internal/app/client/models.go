package client

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// UnknownLabel is shown when a foreign key does not resolve.
const UnknownLabel = "Desconocido"

// Raw is a record exactly as decoded from the API.
type Raw map[string]any

// Client - canonical client record
type Client struct {
	ID        int    `json:"id"`
	Name      string `json:"nombre"`
	Phone     string `json:"telefono"`
	CreatedAt string `json:"creado_en"`
}

// Purchase - canonical purchase ("compra") record
type Purchase struct {
	ID           int             `json:"id"`
	ClientID     int             `json:"cliente_id"`
	Label        string          `json:"nombre_compra"`
	TotalAmount  decimal.Decimal `json:"monto_total"`
	PurchaseDate string          `json:"fecha_compra"`
	Paid         bool            `json:"pagado"`
}

// Payment - canonical installment payment ("abono") record
type Payment struct {
	ID          int             `json:"id"`
	ClientID    int             `json:"cliente_id"`
	PurchaseID  int             `json:"compra_id"`
	Amount      decimal.Decimal `json:"monto_abono"`
	PaymentDate string          `json:"fecha_abono"`
	Description string          `json:"description"`
}

// JoinedPurchase is a purchase with its client's display name.
type JoinedPurchase struct {
	Purchase
	ClientName string `json:"cliente_name"`
}

// JoinedPayment is a payment with its client's name and purchase label.
type JoinedPayment struct {
	Payment
	ClientName    string `json:"cliente_name"`
	PurchaseLabel string `json:"nombre_compra"`
}

// ClientRef returns the id of the owning client.
func (p Purchase) ClientRef() int { return p.ClientID }

// ClientRef returns the id of the owning client.
func (p Payment) ClientRef() int { return p.ClientID }

func clientID(c Client) int     { return c.ID }
func purchaseID(p Purchase) int { return p.ID }
func paymentID(p Payment) int   { return p.ID }

// ClientInput is the payload for creating a client.
type ClientInput struct {
	Name  string `json:"nombre"`
	Phone string `json:"telefono"`
}

// ClientPatch is a partial client update; nil fields are left unchanged.
type ClientPatch struct {
	Name  *string `json:"nombre,omitempty"`
	Phone *string `json:"telefono,omitempty"`
}

// PurchaseInput is the payload for creating a purchase.
type PurchaseInput struct {
	ClientID     int             `json:"cliente_id"`
	Label        string          `json:"nombre_compra"`
	TotalAmount  decimal.Decimal `json:"monto_total"`
	PurchaseDate string          `json:"fecha_compra"`
	Paid         bool            `json:"pagado"`
}

// PurchasePatch is a partial purchase update.
type PurchasePatch struct {
	ClientID     *int             `json:"cliente_id,omitempty"`
	Label        *string          `json:"nombre_compra,omitempty"`
	TotalAmount  *decimal.Decimal `json:"monto_total,omitempty"`
	PurchaseDate *string          `json:"fecha_compra,omitempty"`
	Paid         *bool            `json:"pagado,omitempty"`
}

// PaymentInput is the payload for creating a payment. ClientID may be left
// zero, in which case it is taken from the referenced purchase.
type PaymentInput struct {
	ClientID    int             `json:"cliente_id,omitempty"`
	PurchaseID  int             `json:"compra_id"`
	Amount      decimal.Decimal `json:"monto_abono"`
	PaymentDate string          `json:"fecha_abono"`
	Description string          `json:"description,omitempty"`
}

// PaymentPatch is a partial payment update.
type PaymentPatch struct {
	ClientID    *int             `json:"cliente_id,omitempty"`
	PurchaseID  *int             `json:"compra_id,omitempty"`
	Amount      *decimal.Decimal `json:"monto_abono,omitempty"`
	PaymentDate *string          `json:"fecha_abono,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// The API expects amounts as JSON numbers, decimal.Decimal marshals to strings.

func number(d decimal.Decimal) json.Number { return json.Number(d.String()) }

func numberPtr(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := number(*d)
	return &n
}

func (in PurchaseInput) MarshalJSON() ([]byte, error) {
	type alias PurchaseInput
	return json.Marshal(struct {
		alias
		TotalAmount json.Number `json:"monto_total"`
	}{alias(in), number(in.TotalAmount)})
}

func (p PurchasePatch) MarshalJSON() ([]byte, error) {
	type alias PurchasePatch
	return json.Marshal(struct {
		alias
		TotalAmount *json.Number `json:"monto_total,omitempty"`
	}{alias(p), numberPtr(p.TotalAmount)})
}

func (in PaymentInput) MarshalJSON() ([]byte, error) {
	type alias PaymentInput
	return json.Marshal(struct {
		alias
		Amount json.Number `json:"monto_abono"`
	}{alias(in), number(in.Amount)})
}

func (p PaymentPatch) MarshalJSON() ([]byte, error) {
	type alias PaymentPatch
	return json.Marshal(struct {
		alias
		Amount *json.Number `json:"monto_abono,omitempty"`
	}{alias(p), numberPtr(p.Amount)})
}
