package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

const issuer = "cobros"

type Servicer interface {
	Enabled() bool
	Login(ctx context.Context, userName, password string) (string, error)
	Validate(ctx context.Context, token string) (Claims, error)
	Logout(ctx context.Context, token string) error
}

type Claims struct {
	jwt.RegisteredClaims
}

// Options describe the single admin account and how its tokens are signed.
type Options struct {
	AdminUser    string
	PasswordHash string
	Secret       string
	TokenTTL     time.Duration
}

type Service struct {
	repo Repository
	opts Options
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, opts Options, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		opts: opts,
		log:  log.With("component", "session_service"),
		now:  time.Now,
	}
}

// Enabled reports whether an admin password is configured.
func (s *Service) Enabled() bool {
	return s.opts.PasswordHash != ""
}

func (s *Service) Login(_ context.Context, userName, password string) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}

	if userName != s.opts.AdminUser {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.opts.PasswordHash), []byte(password)); err != nil {
		s.log.Warn("failed login", "user", userName)
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userName,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("login", "user", userName)
	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	revoked, err := s.repo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return Claims{}, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return Claims{}, fmt.Errorf("%w: revoked", ErrInvalidToken)
	}

	return claims, nil
}

// Logout revokes the token. Logging out with an already invalid token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return nil
		}
		return err
	}

	return s.repo.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}
