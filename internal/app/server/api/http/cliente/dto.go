package cliente

import (
	"time"

	"cobros/internal/domain/cliente"
)

type idInput struct {
	ID int `path:"id" minimum:"1" example:"1" doc:"Cliente ID"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name  string `json:"nombre" minLength:"1" maxLength:"100" doc:"Nombre del cliente"`
	Phone string `json:"telefono,omitempty" maxLength:"20" doc:"Teléfono"`
}

type updateInput struct {
	ID   int `path:"id" minimum:"1" example:"1" doc:"Cliente ID"`
	Body updateRequest
}

// updateRequest is partial: absent fields keep their value.
type updateRequest struct {
	Name  *string `json:"nombre,omitempty" maxLength:"100"`
	Phone *string `json:"telefono,omitempty" maxLength:"20"`
}

type output struct {
	Body response
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Data []response `json:"data"`
}

type response struct {
	ID        int    `json:"id"`
	Name      string `json:"nombre"`
	Phone     string `json:"telefono"`
	CreatedAt string `json:"creado_en"`
}

func toResponse(c cliente.Cliente) response {
	return response{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
