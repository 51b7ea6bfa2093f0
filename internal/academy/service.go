package academy

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrTrainingNotFound   = errors.New("training not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("officer is already enrolled")
	ErrAlreadyCompleted   = errors.New("enrollment is already completed")
	ErrNotInstructor      = errors.New("only the instructor can grade this training")
	ErrInvalidScore       = errors.New("score must be between 0 and 100")
)

const passingScore = 60

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateTraining(ctx context.Context, instructorID, title, description string, mandatory bool) (*Training, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	t := &Training{
		Title:        title,
		Description:  strings.TrimSpace(description),
		InstructorID: instructorID,
		Mandatory:    mandatory,
	}

	if err := s.repo.CreateTraining(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) ListTrainings(ctx context.Context) ([]*Training, error) {
	return s.repo.ListTrainings(ctx)
}

func (s *Service) Enroll(ctx context.Context, trainingID int, officerID string) (*Enrollment, error) {
	if _, err := s.repo.GetTraining(ctx, trainingID); err != nil {
		return nil, err
	}

	e := &Enrollment{
		TrainingID: trainingID,
		OfficerID:  officerID,
		Status:     EnrollmentEnrolled,
	}

	if err := s.repo.CreateEnrollment(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Enrollments(ctx context.Context, trainingID int) ([]*Enrollment, error) {
	return s.repo.ListEnrollments(ctx, trainingID)
}

// Complete grades an enrollment. The grader must be the training's
// instructor; scores at or above the passing mark record PASSED.
func (s *Service) Complete(ctx context.Context, enrollmentID int, graderID string, score int) (*Enrollment, error) {
	if score < 0 || score > 100 {
		return nil, ErrInvalidScore
	}

	e, err := s.repo.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	t, err := s.repo.GetTraining(ctx, e.TrainingID)
	if err != nil {
		return nil, err
	}
	if t.InstructorID != graderID {
		return nil, ErrNotInstructor
	}

	status := EnrollmentFailed
	if score >= passingScore {
		status = EnrollmentPassed
	}

	if err := s.repo.CompleteEnrollment(ctx, enrollmentID, status, score); err != nil {
		return nil, err
	}

	return s.repo.GetEnrollment(ctx, enrollmentID)
}
