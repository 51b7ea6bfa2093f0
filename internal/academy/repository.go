package academy

import "context"

type Repository interface {
	CreateTraining(ctx context.Context, t *Training) error
	GetTraining(ctx context.Context, id int) (*Training, error)
	ListTrainings(ctx context.Context) ([]*Training, error)

	CreateEnrollment(ctx context.Context, e *Enrollment) error
	GetEnrollment(ctx context.Context, id int) (*Enrollment, error)
	ListEnrollments(ctx context.Context, trainingID int) ([]*Enrollment, error)
	CompleteEnrollment(ctx context.Context, id int, status string, score int) error
}
