package abono

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/abono"
	"cobros/internal/domain/compra"
)

type Handler struct {
	service    abono.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	now        func() time.Time
}

func NewHandler(service abono.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
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
	abonos, err := h.service.List(ctx)
	if err != nil {
		return nil, h.httpError(err)
	}

	data := make([]response, 0, len(abonos))
	for _, a := range abonos {
		data = append(data, toDetailedResponse(a))
	}
	return &listOutput{Body: listResponse{Data: data}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*dataOutput, error) {
	date, err := compra.ParseDate(input.Body.PaymentDate, h.now())
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Fecha de abono inválida")
	}

	a, err := h.service.Create(ctx, abono.Abono{
		CompraID:    input.Body.CompraID,
		Amount:      input.Body.Amount.Decimal,
		PaymentDate: date,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, h.httpError(err)
	}
	return &dataOutput{Body: dataResponse{Data: toResponse(a)}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	// cliente_id follows the compra, so a client supplied value is dropped
	patch := abono.Patch{
		CompraID:    input.Body.CompraID,
		Description: input.Body.Description,
	}
	if input.Body.Amount != nil {
		amount := input.Body.Amount.Decimal
		patch.Amount = &amount
	}
	if input.Body.PaymentDate != nil {
		date, err := compra.ParseDate(*input.Body.PaymentDate, h.now())
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Fecha de abono inválida")
		}
		patch.PaymentDate = &date
	}

	a, err := h.service.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, h.httpError(err)
	}
	return &output{Body: toResponse(a)}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.httpError(err)
	}
	return nil, nil
}

func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, abono.ErrNotFound):
		return huma.Error404NotFound("Abono no encontrado")
	case errors.Is(err, abono.ErrCompraNotFound):
		return huma.Error422UnprocessableEntity("Seleccione una compra válida")
	case errors.Is(err, abono.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		h.log.Error("abono request failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
