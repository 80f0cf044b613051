package compra

import "context"

type Repository interface {
	List(ctx context.Context) ([]Compra, error)
	Find(ctx context.Context, id int) (Compra, error)
	Create(ctx context.Context, c Compra) (Compra, error)
	Update(ctx context.Context, c Compra) (Compra, error)
	// Delete also removes the compra's abonos.
	Delete(ctx context.Context, id int) error
}
