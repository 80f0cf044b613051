package abono

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"cobros/internal/domain/compra"
)

type Servicer interface {
	List(ctx context.Context) ([]Detailed, error)
	Find(ctx context.Context, id int) (Abono, error)
	Create(ctx context.Context, a Abono) (Abono, error)
	Update(ctx context.Context, id int, patch Patch) (Abono, error)
	Delete(ctx context.Context, id int) error
}

type CompraFinder interface {
	List(ctx context.Context) ([]compra.Compra, error)
	Find(ctx context.Context, id int) (compra.Compra, error)
}

type Service struct {
	repo      Repository
	compras   CompraFinder
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, compras CompraFinder, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		compras:   compras,
		validator: validator,
		log:       log.With("component", "abono_service"),
	}
}

// List returns every abono with the compra it belongs to attached.
func (s *Service) List(ctx context.Context) ([]Detailed, error) {
	abonos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	compras, err := s.compras.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	byID := make(map[int]*compra.Compra, len(compras))
	for i := range compras {
		byID[compras[i].ID] = &compras[i]
	}

	out := make([]Detailed, len(abonos))
	for i, a := range abonos {
		out[i] = Detailed{Abono: a, Compra: byID[a.CompraID]}
	}
	return out, nil
}

func (s *Service) Find(ctx context.Context, id int) (Abono, error) {
	return s.repo.Find(ctx, id)
}

// Create stores an abono. cliente_id always follows the compra.
func (s *Service) Create(ctx context.Context, a Abono) (Abono, error) {
	a.Description = strings.TrimSpace(a.Description)
	if err := s.resolveCompra(ctx, &a); err != nil {
		return Abono{}, err
	}
	if err := s.validator.Validate(a); err != nil {
		s.log.Debug("validation failed", "error", err)
		return Abono{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return Abono{}, fmt.Errorf("create abono: %w", err)
	}

	s.log.Info("abono created", "id", created.ID, "compra_id", created.CompraID)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (Abono, error) {
	current, err := s.repo.Find(ctx, id)
	if err != nil {
		return Abono{}, err
	}

	updated := patch.Apply(current)
	updated.Description = strings.TrimSpace(updated.Description)

	if patch.CompraID != nil && *patch.CompraID != current.CompraID {
		if err := s.resolveCompra(ctx, &updated); err != nil {
			return Abono{}, err
		}
	}
	if err := s.validator.Validate(updated); err != nil {
		return Abono{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.repo.Update(ctx, updated)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("abono deleted", "id", id)
	return nil
}

// resolveCompra checks that the compra exists and copies its cliente onto the abono.
func (s *Service) resolveCompra(ctx context.Context, a *Abono) error {
	if a.CompraID <= 0 {
		return fmt.Errorf("%w: compra_id is required", ErrInvalidInput)
	}

	c, err := s.compras.Find(ctx, a.CompraID)
	if err != nil {
		if errors.Is(err, compra.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrCompraNotFound, a.CompraID)
		}
		return fmt.Errorf("find compra: %w", err)
	}

	a.ClienteID = c.ClienteID
	return nil
}
