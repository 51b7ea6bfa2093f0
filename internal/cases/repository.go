package cases

import "context"

// Repository defines all database operations for cases and warrants.
type Repository interface {

	// -------------------------------
	// Cases
	// -------------------------------

	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id int) (*Case, error)
	ListByOfficer(ctx context.Context, officerID string) ([]*Case, error)
	List(ctx context.Context) ([]*Case, error)
	UpdateStatus(ctx context.Context, id int, status string) error

	// -------------------------------
	// Evidence
	// -------------------------------

	AddEvidence(ctx context.Context, e *Evidence) error
	ListEvidence(ctx context.Context, caseID int) ([]*Evidence, error)

	// -------------------------------
	// Warrants
	// -------------------------------

	CreateWarrant(ctx context.Context, w *Warrant) error
	GetWarrant(ctx context.Context, id int) (*Warrant, error)
	ListPendingWarrants(ctx context.Context) ([]*Warrant, error)
	DecideWarrant(ctx context.Context, id int, status, deciderID, note string) error

	// Expire PENDING warrants created before the cutoff; returns how
	// many rows changed.
	ExpireStaleWarrants(ctx context.Context, olderThanHours int) (int, error)
}
