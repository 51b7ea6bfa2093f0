package logistics

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrRequestNotPending = errors.New("request is not pending")
	ErrInvalidKind       = errors.New("invalid request kind")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

var validKinds = map[string]bool{
	KindEquipment:     true,
	KindReimbursement: true,
	KindPurchase:      true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, requesterID, kind string, amount int, justification string) (*Request, error) {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	if !validKinds[kind] {
		return nil, ErrInvalidKind
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	justification = strings.TrimSpace(justification)
	if justification == "" {
		return nil, errors.New("justification is required")
	}

	req := &Request{
		RequesterID:   requesterID,
		Kind:          kind,
		Amount:        amount,
		Justification: justification,
		Status:        StatusPending,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (s *Service) MyRequests(ctx context.Context, requesterID string) ([]*Request, error) {
	return s.repo.ListByRequester(ctx, requesterID)
}

func (s *Service) PendingRequests(ctx context.Context) ([]*Request, error) {
	return s.repo.ListPending(ctx)
}

func (s *Service) Decide(ctx context.Context, id int, deciderID, note string, approve bool) (*Request, error) {
	status := StatusRejected
	if approve {
		status = StatusApproved
	}

	if err := s.repo.Decide(ctx, id, status, deciderID, note); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}
