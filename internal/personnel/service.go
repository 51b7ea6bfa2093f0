package personnel

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrOfficerNotFound = errors.New("officer not found")
	ErrInvalidStatus   = errors.New("invalid roster status")
)

var validStatuses = map[string]bool{
	StatusActive:    true,
	StatusSuspended: true,
	StatusRetired:   true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddOfficer(ctx context.Context, userID *string, name, badge, rank, division string) (*Officer, error) {
	name = strings.TrimSpace(name)
	badge = strings.TrimSpace(badge)
	if name == "" || badge == "" {
		return nil, errors.New("name and badge are required")
	}

	o := &Officer{
		UserID:   userID,
		Name:     name,
		Badge:    badge,
		Rank:     strings.TrimSpace(rank),
		Division: strings.TrimSpace(division),
		Status:   StatusActive,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) GetOfficer(ctx context.Context, id int) (*Officer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListRoster(ctx context.Context) ([]*Officer, error) {
	return s.repo.List(ctx)
}

// UpdateOfficer applies the non-empty fields of the patch.
func (s *Service) UpdateOfficer(ctx context.Context, id int, patch OfficerPatch) (*Officer, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		o.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Badge != nil {
		o.Badge = strings.TrimSpace(*patch.Badge)
	}
	if patch.Rank != nil {
		o.Rank = strings.TrimSpace(*patch.Rank)
	}
	if patch.Division != nil {
		o.Division = strings.TrimSpace(*patch.Division)
	}
	if patch.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*patch.Status))
		if !validStatuses[status] {
			return nil, ErrInvalidStatus
		}
		o.Status = status
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// OfficerPatch carries optional roster updates; nil means unchanged.
type OfficerPatch struct {
	Name     *string `json:"name"`
	Badge    *string `json:"badge"`
	Rank     *string `json:"rank"`
	Division *string `json:"division"`
	Status   *string `json:"status"`
}
