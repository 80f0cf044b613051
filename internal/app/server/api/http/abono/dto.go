package abono

import (
	"cobros/internal/app/server/api/http/money"
	"cobros/internal/domain/abono"
	"cobros/internal/domain/compra"
)

type idInput struct {
	ID int `path:"id" minimum:"1" example:"1" doc:"Abono ID"`
}

type createInput struct {
	Body createRequest
}

// createRequest accepts cliente_id for compatibility; the stored value is
// always taken from the compra.
type createRequest struct {
	ClienteID   int          `json:"cliente_id,omitempty" doc:"Ignorado, se toma de la compra"`
	CompraID    int          `json:"compra_id" minimum:"1" doc:"Compra que se abona"`
	Amount      money.Amount `json:"monto_abono" exclusiveMinimum:"0" doc:"Monto del abono"`
	PaymentDate string       `json:"fecha_abono,omitempty" doc:"Fecha del abono, YYYY-MM-DD o ISO 8601. Hoy si se omite"`
	Description string       `json:"description,omitempty" maxLength:"255"`
}

type updateInput struct {
	ID   int `path:"id" minimum:"1" example:"1" doc:"Abono ID"`
	Body updateRequest
}

type updateRequest struct {
	ClienteID   *int          `json:"cliente_id,omitempty"`
	CompraID    *int          `json:"compra_id,omitempty" minimum:"1"`
	Amount      *money.Amount `json:"monto_abono,omitempty" exclusiveMinimum:"0"`
	PaymentDate *string       `json:"fecha_abono,omitempty"`
	Description *string       `json:"description,omitempty" maxLength:"255"`
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

// response.CompraID is the embedded compra in list responses and a bare id otherwise.
type response struct {
	ID          int    `json:"id"`
	ClienteID   int    `json:"cliente_id"`
	CompraID    any    `json:"compra_id"`
	Amount      string `json:"monto_abono"`
	PaymentDate string `json:"fecha_abono"`
	Description string `json:"description"`
}

type compraRef struct {
	ID           int    `json:"id"`
	ClienteID    int    `json:"cliente_id"`
	Label        string `json:"nombre_compra"`
	TotalAmount  string `json:"monto_total"`
	PurchaseDate string `json:"fecha_compra"`
	Paid         *bool  `json:"pagado"`
}

func toResponse(a abono.Abono) response {
	return response{
		ID:          a.ID,
		ClienteID:   a.ClienteID,
		CompraID:    a.CompraID,
		Amount:      a.Amount.StringFixed(2),
		PaymentDate: a.PaymentDate.Format(compra.DateLayout),
		Description: a.Description,
	}
}

func toDetailedResponse(d abono.Detailed) response {
	r := toResponse(d.Abono)
	if c := d.Compra; c != nil {
		r.CompraID = compraRef{
			ID:           c.ID,
			ClienteID:    c.ClienteID,
			Label:        c.Label,
			TotalAmount:  c.TotalAmount.StringFixed(2),
			PurchaseDate: c.PurchaseDate.Format(compra.DateLayout),
			Paid:         c.Paid,
		}
	}
	return r
}
