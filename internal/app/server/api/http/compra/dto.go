package compra

import (
	"cobros/internal/app/server/api/http/money"
	"cobros/internal/domain/compra"
)

type idInput struct {
	ID int `path:"id" minimum:"1" example:"1" doc:"Compra ID"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	ClienteID    int          `json:"cliente_id" minimum:"1" doc:"Cliente que realiza la compra"`
	Label        string       `json:"nombre_compra" minLength:"1" maxLength:"100" doc:"Descripción de la compra"`
	TotalAmount  money.Amount `json:"monto_total" minimum:"0" doc:"Monto total"`
	PurchaseDate string       `json:"fecha_compra,omitempty" doc:"Fecha de compra, YYYY-MM-DD o ISO 8601. Hoy si se omite"`
	Paid         *bool        `json:"pagado,omitempty"`
}

type updateInput struct {
	ID   int `path:"id" minimum:"1" example:"1" doc:"Compra ID"`
	Body updateRequest
}

type updateRequest struct {
	ClienteID    *int          `json:"cliente_id,omitempty" minimum:"1"`
	Label        *string       `json:"nombre_compra,omitempty" maxLength:"100"`
	TotalAmount  *money.Amount `json:"monto_total,omitempty" minimum:"0"`
	PurchaseDate *string       `json:"fecha_compra,omitempty"`
	Paid         *bool         `json:"pagado,omitempty"`
}

type output struct {
	Body response
}

type dataOutput struct {
	Body dataResponse
}

type dataResponse struct {
	Data response `json:"data"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Data []response `json:"data"`
}

// response keeps the legacy wire shape: amounts are strings and pagado may be null.
type response struct {
	ID           int    `json:"id"`
	ClienteID    int    `json:"cliente_id"`
	Label        string `json:"nombre_compra"`
	TotalAmount  string `json:"monto_total"`
	PurchaseDate string `json:"fecha_compra"`
	Paid         *bool  `json:"pagado"`
}

func toResponse(c compra.Compra) response {
	return response{
		ID:           c.ID,
		ClienteID:    c.ClienteID,
		Label:        c.Label,
		TotalAmount:  c.TotalAmount.StringFixed(2),
		PurchaseDate: c.PurchaseDate.Format(compra.DateLayout),
		Paid:         c.Paid,
	}
}
