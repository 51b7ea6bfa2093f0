package personnel

import "context"

type Repository interface {
	Create(ctx context.Context, o *Officer) error
	GetByID(ctx context.Context, id int) (*Officer, error)
	List(ctx context.Context) ([]*Officer, error)
	Update(ctx context.Context, o *Officer) error
}
