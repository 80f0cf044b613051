package cliente

import "context"

// Repository returns ErrNotFound for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]Cliente, error)
	Find(ctx context.Context, id int) (Cliente, error)
	Create(ctx context.Context, c Cliente) (Cliente, error)
	Update(ctx context.Context, c Cliente) (Cliente, error)
	Delete(ctx context.Context, id int) error
}
