package personnel

import "time"

// Roster statuses.
const (
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
	StatusRetired   = "RETIRED"
)

type Officer struct {
	ID        int       `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	Name      string    `json:"name"`
	Badge     string    `json:"badge"`
	Rank      string    `json:"rank"`
	Division  string    `json:"division"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
