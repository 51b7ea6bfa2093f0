package academy

import "time"

// Enrollment statuses.
const (
	EnrollmentEnrolled = "ENROLLED"
	EnrollmentPassed   = "PASSED"
	EnrollmentFailed   = "FAILED"
)

type Training struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	InstructorID string    `json:"instructor_id"`
	Mandatory    bool      `json:"mandatory"`
	CreatedAt    time.Time `json:"created_at"`
}

type Enrollment struct {
	ID          int        `json:"id"`
	TrainingID  int        `json:"training_id"`
	OfficerID   string     `json:"officer_id"`
	Status      string     `json:"status"`
	Score       *int       `json:"score,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
