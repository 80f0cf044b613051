package abono

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "abonos-list",
		Method:      http.MethodGet,
		Path:        "/api/abonos",
		Summary:     "List abonos",
		Description: "compra_id holds the full compra when it still exists.",
		Tags:        []string{"abonos"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "abonos-create",
		Method:        http.MethodPost,
		Path:          "/api/abonos",
		Summary:       "Register an abono",
		Tags:          []string{"abonos"},
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "abonos-update",
		Method:      http.MethodPut,
		Path:        "/api/update/abono/{id}",
		Summary:     "Update an abono",
		Tags:        []string{"abonos"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "abonos-delete",
		Method:        http.MethodDelete,
		Path:          "/api/delete/abono/{id}",
		Summary:       "Delete an abono",
		Tags:          []string{"abonos"},
		DefaultStatus: http.StatusNoContent,
		Security:      bearer,
		Middlewares:   h.middleware,
	}
}
