package cases

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrCaseNotFound      = errors.New("case not found")
	ErrInvalidStatus     = errors.New("invalid case status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotCaseOwner      = errors.New("case belongs to another officer")
	ErrWarrantNotPending = errors.New("warrant is not pending")
)

// allowedTransitions maps a case status to the statuses it may move to.
// The chain is linear: an open case must go through an investigation
// before it can be closed or archived.
var allowedTransitions = map[string][]string{
	StatusOpen:          {StatusInvestigating},
	StatusInvestigating: {StatusClosed, StatusArchived},
	StatusClosed:        {StatusArchived},
	StatusArchived:      {},
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Cases
// --------------------------------------------------

func (s *Service) CreateCase(ctx context.Context, officerID, title, description, suspectName string) (*Case, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	c := &Case{
		Title:       title,
		Description: strings.TrimSpace(description),
		SuspectName: strings.TrimSpace(suspectName),
		Status:      StatusOpen,
		OfficerID:   officerID,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) GetCase(ctx context.Context, id int) (*Case, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListCases(ctx context.Context, officerID string, all bool) ([]*Case, error) {
	if all {
		return s.repo.List(ctx)
	}
	return s.repo.ListByOfficer(ctx, officerID)
}

// ChangeStatus moves a case along the allowed transition graph. Only
// the owning officer may change status; supervisors bypass the check.
func (s *Service) ChangeStatus(ctx context.Context, id int, officerID string, isSupervisor bool, next string) (*Case, error) {
	next = strings.ToUpper(strings.TrimSpace(next))

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isSupervisor && c.OfficerID != officerID {
		return nil, ErrNotCaseOwner
	}

	targets, ok := allowedTransitions[c.Status]
	if !ok {
		return nil, ErrInvalidStatus
	}

	allowed := false
	for _, t := range targets {
		if t == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	c.Status = next
	return c, nil
}

// --------------------------------------------------
// Evidence
// --------------------------------------------------

func (s *Service) AttachEvidence(ctx context.Context, caseID int, uploadedBy, filename, url string) (*Evidence, error) {
	if _, err := s.repo.GetByID(ctx, caseID); err != nil {
		return nil, err
	}

	e := &Evidence{
		CaseID:     caseID,
		Filename:   filename,
		URL:        url,
		UploadedBy: uploadedBy,
	}

	if err := s.repo.AddEvidence(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) ListEvidence(ctx context.Context, caseID int) ([]*Evidence, error) {
	return s.repo.ListEvidence(ctx, caseID)
}

// --------------------------------------------------
// Warrants
// --------------------------------------------------

func (s *Service) RequestWarrant(ctx context.Context, caseID int, requestedBy, suspectName, reason string) (*Warrant, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errors.New("reason is required")
	}

	c, err := s.repo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if suspectName == "" {
		suspectName = c.SuspectName
	}

	w := &Warrant{
		CaseID:      caseID,
		SuspectName: suspectName,
		Reason:      reason,
		Status:      WarrantPending,
		RequestedBy: requestedBy,
	}

	if err := s.repo.CreateWarrant(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *Service) PendingWarrants(ctx context.Context) ([]*Warrant, error) {
	return s.repo.ListPendingWarrants(ctx)
}

func (s *Service) DecideWarrant(ctx context.Context, id int, deciderID, note string, approve bool) (*Warrant, error) {
	status := WarrantRejected
	if approve {
		status = WarrantApproved
	}

	if err := s.repo.DecideWarrant(ctx, id, status, deciderID, note); err != nil {
		return nil, err
	}

	return s.repo.GetWarrant(ctx, id)
}

func (s *Service) ExpireStaleWarrants(ctx context.Context, olderThanHours int) (int, error) {
	return s.repo.ExpireStaleWarrants(ctx, olderThanHours)
}
