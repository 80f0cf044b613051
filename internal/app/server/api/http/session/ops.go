package session

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-login",
		Method:      http.MethodPost,
		Path:        "/api/login",
		Summary:     "Log in as the administrator",
		Description: "Returns a bearer token for the CRUD endpoints.",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-logout",
		Method:      http.MethodPost,
		Path:        "/api/logout",
		Summary:     "Revoke the current token",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) checkAuthOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-check",
		Method:      http.MethodGet,
		Path:        "/api/check-auth",
		Summary:     "Check whether the token is still valid",
		Tags:        []string{"session"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
