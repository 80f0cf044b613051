package session

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cobros/internal/app/server/api/http/middleware/auth"
	"cobros/internal/domain/session"
)

type Handler struct {
	service    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.checkAuthOp(), h.checkAuth)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	token, err := h.service.Login(ctx, input.Body.UserName, input.Body.Password)
	switch {
	case errors.Is(err, session.ErrDisabled):
		return nil, huma.Error400BadRequest("La autenticación no está habilitada")
	case errors.Is(err, session.ErrInvalidCredentials):
		return nil, huma.Error401Unauthorized("Credenciales inválidas")
	case err != nil:
		h.log.Error("login failed", "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &loginOutput{
		Body: loginResponse{Message: "Inicio de sesión exitoso", Token: token},
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *tokenInput) (*messageOutput, error) {
	if token, ok := auth.BearerToken(input.Authorization); ok && h.service.Enabled() {
		if err := h.service.Logout(ctx, token); err != nil {
			h.log.Error("logout failed", "error", err)
			return nil, huma.Error500InternalServerError("internal error")
		}
	}

	return &messageOutput{
		Body: messageResponse{Message: "Sesión cerrada"},
	}, nil
}

func (h *Handler) checkAuth(ctx context.Context, input *tokenInput) (*checkOutput, error) {
	if !h.service.Enabled() {
		return &checkOutput{Body: checkResponse{Authenticated: true}}, nil
	}

	token, ok := auth.BearerToken(input.Authorization)
	if !ok {
		return nil, huma.Error401Unauthorized("No autorizado")
	}

	claims, err := h.service.Validate(ctx, token)
	switch {
	case errors.Is(err, session.ErrInvalidToken):
		return nil, huma.Error401Unauthorized("No autorizado")
	case err != nil:
		h.log.Error("check auth failed", "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &checkOutput{
		Body: checkResponse{Authenticated: true, User: claims.Subject},
	}, nil
}
