package abono

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/abono"
	"cobros/internal/domain/compra"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]abono.Detailed, error) {
	args := m.Called(ctx)
	return args.Get(0).([]abono.Detailed), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id int) (abono.Abono, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(abono.Abono), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, a abono.Abono) (abono.Abono, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(abono.Abono), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, patch abono.Patch) (abono.Abono, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(abono.Abono), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var day = time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*MockService, humatest.TestAPI) {
	t.Helper()
	svc := new(MockService)
	_, api := humatest.New(t)
	NewHandler(svc, slog.Default(), nil).SetupRoutes(api)
	return svc, api
}

func TestHandler_List_EmbedsCompra(t *testing.T) {
	svc, api := setup(t)
	svc.On("List", mock.Anything).Return([]abono.Detailed{
		{
			Abono:  abono.Abono{ID: 11, ClienteID: 2, CompraID: 7, Amount: decimal.NewFromInt(100), PaymentDate: day},
			Compra: &compra.Compra{ID: 7, ClienteID: 2, Label: "Sala", TotalAmount: decimal.NewFromInt(900), PurchaseDate: day},
		},
		{
			Abono: abono.Abono{ID: 12, ClienteID: 3, CompraID: 8, Amount: decimal.RequireFromString("12.5"), PaymentDate: day},
		},
	}, nil)

	resp := api.Get("/api/abonos")

	assert.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `"compra_id":{"id":7,"cliente_id":2,"nombre_compra":"Sala","monto_total":"900.00","fecha_compra":"2024-02-10","pagado":null}`)
	assert.Contains(t, body, `"compra_id":8,"monto_abono":"12.50","fecha_abono":"2024-02-10"`)
}

func TestHandler_Create_IgnoresClienteID(t *testing.T) {
	svc, api := setup(t)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(a abono.Abono) bool {
		return a.ClienteID == 0 && a.CompraID == 7 && a.Amount.Equal(decimal.NewFromInt(100)) && a.PaymentDate.Equal(day)
	})).Return(abono.Abono{ID: 11, ClienteID: 2, CompraID: 7, Amount: decimal.NewFromInt(100), PaymentDate: day}, nil)

	resp := api.Post("/api/abonos", map[string]any{
		"cliente_id":  5,
		"compra_id":   7,
		"monto_abono": 100,
		"fecha_abono": "2024-02-10",
	})

	assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"data":{"id":11,"cliente_id":2,"compra_id":7`)
}

func TestHandler_Create_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		body  map[string]any
		setup func(*MockService)
	}{
		{
			name:  "zero amount",
			body:  map[string]any{"compra_id": 7, "monto_abono": 0},
			setup: func(*MockService) {},
		},
		{
			name:  "missing compra",
			body:  map[string]any{"monto_abono": 10},
			setup: func(*MockService) {},
		},
		{
			name: "unknown compra",
			body: map[string]any{"compra_id": 70, "monto_abono": 10},
			setup: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).Return(abono.Abono{}, abono.ErrCompraNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api := setup(t)
			tt.setup(svc)

			resp := api.Post("/api/abonos", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body.String())
		})
	}
}

func TestHandler_Update(t *testing.T) {
	svc, api := setup(t)
	svc.On("Update", mock.Anything, 11, mock.MatchedBy(func(p abono.Patch) bool {
		return p.ClienteID == nil && p.CompraID != nil && *p.CompraID == 5 && p.Amount == nil
	})).Return(abono.Abono{ID: 11, ClienteID: 1, CompraID: 5, Amount: decimal.NewFromInt(100), PaymentDate: day}, nil)
	svc.On("Update", mock.Anything, 12, mock.Anything).Return(abono.Abono{}, abono.ErrNotFound)

	resp := api.Put("/api/update/abono/11", map[string]any{"compra_id": 5, "cliente_id": 9})
	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = api.Put("/api/update/abono/12", map[string]any{"description": "x"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_Delete(t *testing.T) {
	svc, api := setup(t)
	svc.On("Delete", mock.Anything, 11).Return(nil)

	assert.Equal(t, http.StatusNoContent, api.Delete("/api/delete/abono/11").Code)
}

func TestHandler_Update_AmountKeepsAllDigits(t *testing.T) {
	svc, api := setup(t)
	exact := decimal.RequireFromString("0.1000000000000000055")
	svc.On("Update", mock.Anything, 11, mock.MatchedBy(func(p abono.Patch) bool {
		return p.Amount != nil && p.Amount.Equal(exact)
	})).Return(abono.Abono{ID: 11, ClienteID: 2, CompraID: 7, Amount: exact, PaymentDate: day}, nil)

	resp := api.Put("/api/update/abono/11", strings.NewReader(`{"monto_abono":0.1000000000000000055}`))

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	svc.AssertExpectations(t)
}
