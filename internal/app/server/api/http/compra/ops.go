package compra

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "compras-list",
		Method:      http.MethodGet,
		Path:        "/api/compras",
		Summary:     "List compras",
		Tags:        []string{"compras"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "compras-create",
		Method:        http.MethodPost,
		Path:          "/api/compras",
		Summary:       "Create a compra",
		Description:   "The cliente must exist.",
		Tags:          []string{"compras"},
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "compras-update",
		Method:      http.MethodPut,
		Path:        "/api/update/compra/{id}",
		Summary:     "Update a compra",
		Description: "Only the fields present in the body are changed.",
		Tags:        []string{"compras"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "compras-delete",
		Method:        http.MethodDelete,
		Path:          "/api/delete/compra/{id}",
		Summary:       "Delete a compra and its abonos",
		Tags:          []string{"compras"},
		DefaultStatus: http.StatusNoContent,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}
