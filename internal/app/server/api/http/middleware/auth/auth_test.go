package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/session"
)

type MockSession struct {
	mock.Mock
}

func (m *MockSession) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockSession) Login(ctx context.Context, userName, password string) (string, error) {
	args := m.Called(ctx, userName, password)
	return args.String(0), args.Error(1)
}

func (m *MockSession) Validate(ctx context.Context, token string) (session.Claims, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(session.Claims), args.Error(1)
}

func (m *MockSession) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type whoami struct {
	Body struct {
		User string `json:"user"`
	}
}

func setup(t *testing.T, svc session.Servicer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)

	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/api/whoami",
		Middlewares: huma.Middlewares{New(svc, slog.Default()).Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*whoami, error) {
		out := &whoami{}
		out.Body.User, _ = GetSubject(ctx)
		return out, nil
	})
	return api
}

func TestMiddleware(t *testing.T) {
	svc := new(MockSession)
	svc.On("Enabled").Return(true)
	svc.On("Validate", mock.Anything, "good").
		Return(session.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"}}, nil)
	svc.On("Validate", mock.Anything, "bad").Return(session.Claims{}, session.ErrInvalidToken)

	api := setup(t, svc)

	resp := api.Get("/api/whoami", "Authorization: Bearer good")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"user":"admin"`)

	resp = api.Get("/api/whoami", "Authorization: Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "No autorizado")

	assert.Equal(t, http.StatusUnauthorized, api.Get("/api/whoami").Code)
	assert.Equal(t, http.StatusUnauthorized, api.Get("/api/whoami", "Authorization: Basic Zm9vOmJhcg==").Code)
}

func TestMiddleware_Disabled(t *testing.T) {
	svc := new(MockSession)
	svc.On("Enabled").Return(false)

	api := setup(t, svc)

	assert.Equal(t, http.StatusOK, api.Get("/api/whoami").Code)
	svc.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		token, ok := BearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}

