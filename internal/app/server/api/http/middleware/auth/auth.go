package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cobros/internal/domain/session"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const claimsKey contextKey = "claims"

// BearerToken extracts the token from an "Authorization: Bearer ..." header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// Middleware rejects requests without a valid token. It lets everything
// through when the session service has authentication disabled.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !a.session.Enabled() {
			next(ctx)
			return
		}

		token, ok := BearerToken(ctx.Header("Authorization"))
		if !ok {
			a.log.Debug("missing bearer token", "path", ctx.URL().Path)
			a.unauthorized(ctx)
			return
		}

		claims, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			a.log.Warn("token rejected", "path", ctx.URL().Path, "error", err)
			a.unauthorized(ctx)
			return
		}

		next(huma.WithContext(ctx, WithClaims(ctx.Context(), claims)))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetHeader("Content-Type", "application/problem+json")
	ctx.SetStatus(http.StatusUnauthorized)

	err := json.NewEncoder(ctx.BodyWriter()).Encode(huma.ErrorModel{
		Title:  http.StatusText(http.StatusUnauthorized),
		Status: http.StatusUnauthorized,
		Detail: "No autorizado",
	})
	if err != nil {
		a.log.Error("encode unauthorized response", "error", err)
	}
}

func WithClaims(ctx context.Context, claims session.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetSubject returns the authenticated user name, if the request carried a token.
func GetSubject(ctx context.Context) (string, bool) {
	claims, ok := ctx.Value(claimsKey).(session.Claims)
	if !ok {
		return "", false
	}
	return claims.Subject, true
}
