package compra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"cobros/internal/domain/cliente"
)

type Servicer interface {
	List(ctx context.Context) ([]Compra, error)
	Find(ctx context.Context, id int) (Compra, error)
	Create(ctx context.Context, c Compra) (Compra, error)
	Update(ctx context.Context, id int, patch Patch) (Compra, error)
	Delete(ctx context.Context, id int) error
}

// ClienteFinder resolves the cliente a compra points at.
type ClienteFinder interface {
	Find(ctx context.Context, id int) (cliente.Cliente, error)
}

type Service struct {
	repo      Repository
	clientes  ClienteFinder
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, clientes ClienteFinder, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		clientes:  clientes,
		validator: validator,
		log:       log.With("component", "compra_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Compra, error) {
	return s.repo.List(ctx)
}

func (s *Service) Find(ctx context.Context, id int) (Compra, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) Create(ctx context.Context, c Compra) (Compra, error) {
	c.Label = strings.TrimSpace(c.Label)
	if err := s.check(ctx, c); err != nil {
		return Compra{}, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return Compra{}, fmt.Errorf("create compra: %w", err)
	}

	s.log.Info("compra created", "id", created.ID, "cliente_id", created.ClienteID)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (Compra, error) {
	current, err := s.repo.Find(ctx, id)
	if err != nil {
		return Compra{}, err
	}

	updated := patch.Apply(current)
	updated.Label = strings.TrimSpace(updated.Label)

	// legacy rows may point at a deleted cliente; only a changed reference is checked
	if patch.ClienteID != nil && *patch.ClienteID != current.ClienteID {
		if err := s.check(ctx, updated); err != nil {
			return Compra{}, err
		}
	} else if err := s.validator.Validate(updated); err != nil {
		return Compra{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.repo.Update(ctx, updated)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("compra deleted", "id", id)
	return nil
}

func (s *Service) check(ctx context.Context, c Compra) error {
	if err := s.validator.Validate(c); err != nil {
		s.log.Debug("validation failed", "error", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.clientes.Find(ctx, c.ClienteID); err != nil {
		if errors.Is(err, cliente.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrClienteNotFound, c.ClienteID)
		}
		return fmt.Errorf("find cliente: %w", err)
	}

	return nil
}
