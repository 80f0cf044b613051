package cliente

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Cliente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Cliente), args.Error(1)
}

func (m *MockRepository) Find(ctx context.Context, id int) (Cliente, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Cliente), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, c Cliente) (Cliente, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(Cliente), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, c Cliente) (Cliente, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(Cliente), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo Repository) *Service {
	s := NewService(repo, NewValidator(), slog.Default())
	s.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c Cliente) bool {
		return c.Name == "Ana" && c.Phone == "5555-1111" && !c.CreatedAt.IsZero()
	})).Return(Cliente{ID: 1, Name: "Ana", Phone: "5555-1111"}, nil)

	created, err := service.Create(context.Background(), "  Ana ", "5555-1111")
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		cname string
		phone string
	}{
		{"empty name", "   ", ""},
		{"letters in phone", "Ana", "tel 555"},
		{"long phone", "Ana", "123456789012345678901"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			_, err := service.Create(context.Background(), tt.cname, tt.phone)
			assert.ErrorIs(t, err, ErrInvalidInput)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update_Partial(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	current := Cliente{ID: 1, Name: "Ana", Phone: "5555-1111"}
	mockRepo.On("Find", mock.Anything, 1).Return(current, nil)
	mockRepo.On("Update", mock.Anything, Cliente{ID: 1, Name: "Ana", Phone: "5555-2222"}).
		Return(Cliente{ID: 1, Name: "Ana", Phone: "5555-2222"}, nil)

	phone := "5555-2222"
	updated, err := service.Update(context.Background(), 1, Patch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "5555-2222", updated.Phone)
	assert.Equal(t, "Ana", updated.Name)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Find", mock.Anything, 9).Return(Cliente{}, ErrNotFound)

	_, err := service.Update(context.Background(), 9, Patch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Delete", mock.Anything, 1).Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, 2).Return(errors.New("database error")).Once()

	assert.NoError(t, service.Delete(context.Background(), 1))
	assert.Error(t, service.Delete(context.Background(), 2))

	mockRepo.AssertExpectations(t)
}
