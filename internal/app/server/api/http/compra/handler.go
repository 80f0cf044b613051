package compra

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/compra"
)

type Handler struct {
	service    compra.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	now        func() time.Time
}

func NewHandler(service compra.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
		now:        time.Now,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	compras, err := h.service.List(ctx)
	if err != nil {
		return nil, h.httpError(err)
	}

	data := make([]response, 0, len(compras))
	for _, c := range compras {
		data = append(data, toResponse(c))
	}
	return &listOutput{Body: listResponse{Data: data}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*dataOutput, error) {
	date, err := compra.ParseDate(input.Body.PurchaseDate, h.now())
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Fecha de compra inválida")
	}

	c, err := h.service.Create(ctx, compra.Compra{
		ClienteID:    input.Body.ClienteID,
		Label:        input.Body.Label,
		TotalAmount:  input.Body.TotalAmount.Decimal,
		PurchaseDate: date,
		Paid:         input.Body.Paid,
	})
	if err != nil {
		return nil, h.httpError(err)
	}
	return &dataOutput{Body: dataResponse{Data: toResponse(c)}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	patch := compra.Patch{
		ClienteID: input.Body.ClienteID,
		Label:     input.Body.Label,
		Paid:      input.Body.Paid,
	}
	if input.Body.TotalAmount != nil {
		amount := input.Body.TotalAmount.Decimal
		patch.TotalAmount = &amount
	}
	if input.Body.PurchaseDate != nil {
		date, err := compra.ParseDate(*input.Body.PurchaseDate, h.now())
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Fecha de compra inválida")
		}
		patch.PurchaseDate = &date
	}

	c, err := h.service.Update(ctx, input.ID, patch)
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
	case errors.Is(err, compra.ErrNotFound):
		return huma.Error404NotFound("Compra no encontrada")
	case errors.Is(err, compra.ErrClienteNotFound):
		return huma.Error422UnprocessableEntity("Seleccione un cliente válido")
	case errors.Is(err, compra.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		h.log.Error("compra request failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
