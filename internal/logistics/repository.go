package logistics

import "context"

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id int) (*Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*Request, error)
	ListPending(ctx context.Context) ([]*Request, error)
	Decide(ctx context.Context, id int, status, deciderID, note string) error
}
