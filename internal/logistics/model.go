package logistics

import "time"

// Request kinds.
const (
	KindEquipment     = "EQUIPMENT"
	KindReimbursement = "REIMBURSEMENT"
	KindPurchase      = "PURCHASE"
)

// Request statuses.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Request struct {
	ID            int        `json:"id"`
	RequesterID   string     `json:"requester_id"`
	Kind          string     `json:"kind"`
	Amount        int        `json:"amount"`
	Justification string     `json:"justification"`
	Status        string     `json:"status"`
	DecidedBy     *string    `json:"decided_by,omitempty"`
	DecisionNote  *string    `json:"decision_note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
}
