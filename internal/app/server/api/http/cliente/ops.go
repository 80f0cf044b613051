package cliente

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "clientes-list",
		Method:      http.MethodGet,
		Path:        "/api/clients",
		Summary:     "List clientes",
		Tags:        []string{"clientes"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "clientes-create",
		Method:        http.MethodPost,
		Path:          "/api/client",
		Summary:       "Create a cliente",
		Tags:          []string{"clientes"},
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "clientes-update",
		Method:      http.MethodPut,
		Path:        "/api/update/client/{id}",
		Summary:     "Update a cliente",
		Description: "Only the fields present in the body are changed.",
		Tags:        []string{"clientes"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "clientes-delete",
		Method:        http.MethodDelete,
		Path:          "/api/delete/client/{id}",
		Summary:       "Delete a cliente",
		Description:   "Compras of the deleted cliente are kept.",
		Tags:          []string{"clientes"},
		DefaultStatus: http.StatusNoContent,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}
