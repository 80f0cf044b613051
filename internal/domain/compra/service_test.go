package compra

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/cliente"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Compra, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Compra), args.Error(1)
}

func (m *MockRepository) Find(ctx context.Context, id int) (Compra, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Compra), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, c Compra) (Compra, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(Compra), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, c Compra) (Compra, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(Compra), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockClienteFinder struct {
	mock.Mock
}

func (m *MockClienteFinder) Find(ctx context.Context, id int) (cliente.Cliente, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(cliente.Cliente), args.Error(1)
}

var day = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

func TestService_Create(t *testing.T) {
	repo := new(MockRepository)
	clientes := new(MockClienteFinder)
	service := NewService(repo, clientes, NewValidator(), slog.Default())

	in := Compra{ClienteID: 1, Label: " Televisor ", TotalAmount: decimal.RequireFromString("150.50"), PurchaseDate: day}

	clientes.On("Find", mock.Anything, 1).Return(cliente.Cliente{ID: 1, Name: "Ana"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c Compra) bool {
		return c.Label == "Televisor" && c.Paid == nil
	})).Return(Compra{ID: 5, ClienteID: 1, Label: "Televisor"}, nil)

	created, err := service.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)

	repo.AssertExpectations(t)
	clientes.AssertExpectations(t)
}

func TestService_Create_UnknownCliente(t *testing.T) {
	repo := new(MockRepository)
	clientes := new(MockClienteFinder)
	service := NewService(repo, clientes, NewValidator(), slog.Default())

	clientes.On("Find", mock.Anything, 9).Return(cliente.Cliente{}, cliente.ErrNotFound)

	_, err := service.Create(context.Background(), Compra{ClienteID: 9, Label: "x", PurchaseDate: day})
	assert.ErrorIs(t, err, ErrClienteNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input Compra
	}{
		{"no cliente", Compra{Label: "x", PurchaseDate: day}},
		{"no label", Compra{ClienteID: 1, Label: "  ", PurchaseDate: day}},
		{"negative", Compra{ClienteID: 1, Label: "x", TotalAmount: decimal.NewFromInt(-5), PurchaseDate: day}},
		{"too large", Compra{ClienteID: 1, Label: "x", TotalAmount: decimal.RequireFromString("10000000000"), PurchaseDate: day}},
		{"no date", Compra{ClienteID: 1, Label: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(new(MockRepository), new(MockClienteFinder), NewValidator(), slog.Default())
			_, err := service.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Update(t *testing.T) {
	paid := true
	current := Compra{ID: 5, ClienteID: 3, Label: "Sala", TotalAmount: decimal.NewFromInt(900), PurchaseDate: day}

	t.Run("dangling cliente is kept when not changed", func(t *testing.T) {
		repo := new(MockRepository)
		clientes := new(MockClienteFinder)
		service := NewService(repo, clientes, NewValidator(), slog.Default())

		repo.On("Find", mock.Anything, 5).Return(current, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(c Compra) bool {
			return c.Paid != nil && *c.Paid && c.ClienteID == 3
		})).Return(current, nil)

		_, err := service.Update(context.Background(), 5, Patch{Paid: &paid})
		require.NoError(t, err)
		clientes.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	})

	t.Run("changed cliente must exist", func(t *testing.T) {
		repo := new(MockRepository)
		clientes := new(MockClienteFinder)
		service := NewService(repo, clientes, NewValidator(), slog.Default())

		other := 4
		repo.On("Find", mock.Anything, 5).Return(current, nil)
		clientes.On("Find", mock.Anything, 4).Return(cliente.Cliente{}, cliente.ErrNotFound)

		_, err := service.Update(context.Background(), 5, Patch{ClienteID: &other})
		assert.ErrorIs(t, err, ErrClienteNotFound)
	})
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 3, 9, 22, 15, 0, 0, time.UTC)

	tests := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"2024-02-01", day, false},
		{"2024-02-01T18:30:00.000Z", day, false},
		{"", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), false},
		{"01/02/2024", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
		})
	}
}
