package abono

import "context"

type Repository interface {
	List(ctx context.Context) ([]Abono, error)
	Find(ctx context.Context, id int) (Abono, error)
	Create(ctx context.Context, a Abono) (Abono, error)
	Update(ctx context.Context, a Abono) (Abono, error)
	Delete(ctx context.Context, id int) error
}
