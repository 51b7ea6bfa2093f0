package cases

import "time"

// Case statuses. Transitions are linear: OPEN → INVESTIGATING →
// CLOSED | ARCHIVED; closed cases can still be archived.
const (
	StatusOpen          = "OPEN"
	StatusInvestigating = "INVESTIGATING"
	StatusClosed        = "CLOSED"
	StatusArchived      = "ARCHIVED"
)

// Warrant statuses.
const (
	WarrantPending  = "PENDING"
	WarrantApproved = "APPROVED"
	WarrantRejected = "REJECTED"
	WarrantExpired  = "EXPIRED"
)

type Case struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SuspectName string    `json:"suspect_name"`
	Status      string    `json:"status"`
	OfficerID   string    `json:"officer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Evidence struct {
	ID         int       `json:"id"`
	CaseID     int       `json:"case_id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type Warrant struct {
	ID           int        `json:"id"`
	CaseID       int        `json:"case_id"`
	SuspectName  string     `json:"suspect_name"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	RequestedBy  string     `json:"requested_by"`
	DecidedBy    *string    `json:"decided_by,omitempty"`
	DecisionNote *string    `json:"decision_note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
}
