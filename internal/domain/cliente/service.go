package cliente

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Cliente, error)
	Find(ctx context.Context, id int) (Cliente, error)
	Create(ctx context.Context, name, phone string) (Cliente, error)
	Update(ctx context.Context, id int, patch Patch) (Cliente, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
	now       func() time.Time
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "cliente_service"),
		now:       time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Cliente, error) {
	return s.repo.List(ctx)
}

func (s *Service) Find(ctx context.Context, id int) (Cliente, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) Create(ctx context.Context, name, phone string) (Cliente, error) {
	c := Cliente{
		Name:      strings.TrimSpace(name),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: s.now().UTC(),
	}
	if err := s.validator.Validate(c); err != nil {
		s.log.Debug("validation failed", "error", err)
		return Cliente{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return Cliente{}, fmt.Errorf("create cliente: %w", err)
	}

	s.log.Info("cliente created", "id", created.ID)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (Cliente, error) {
	current, err := s.repo.Find(ctx, id)
	if err != nil {
		return Cliente{}, err
	}

	updated := patch.Apply(current)
	updated.Name = strings.TrimSpace(updated.Name)
	updated.Phone = strings.TrimSpace(updated.Phone)
	if err := s.validator.Validate(updated); err != nil {
		return Cliente{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.repo.Update(ctx, updated)
}

// Delete removes the cliente only; its compras keep the dangling reference.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("cliente deleted", "id", id)
	return nil
}
