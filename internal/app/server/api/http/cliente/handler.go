package cliente

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/cliente"
)

type Handler struct {
	service    cliente.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service cliente.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	clientes, err := h.service.List(ctx)
	if err != nil {
		return nil, h.httpError(err)
	}

	data := make([]response, 0, len(clientes))
	for _, c := range clientes {
		data = append(data, toResponse(c))
	}
	return &listOutput{Body: listResponse{Data: data}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	c, err := h.service.Create(ctx, input.Body.Name, input.Body.Phone)
	if err != nil {
		return nil, h.httpError(err)
	}
	return &output{Body: toResponse(c)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	c, err := h.service.Update(ctx, input.ID, cliente.Patch{
		Name:  input.Body.Name,
		Phone: input.Body.Phone,
	})
	if err != nil {
		return nil, h.httpError(err)
	}
	return &output{Body: toResponse(c)}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.httpError(err)
	}
	return nil, nil
}

func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, cliente.ErrNotFound):
		return huma.Error404NotFound("Cliente no encontrado")
	case errors.Is(err, cliente.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		h.log.Error("cliente request failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
