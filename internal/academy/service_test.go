package academy

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockRepository struct {
	trainings   map[int]*Training
	enrollments map[int]*Enrollment
	nextTrain   int
	nextEnroll  int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		trainings:   make(map[int]*Training),
		enrollments: make(map[int]*Enrollment),
		nextTrain:   1,
		nextEnroll:  1,
	}
}

func (m *mockRepository) CreateTraining(ctx context.Context, t *Training) error {
	t.ID = m.nextTrain
	m.nextTrain++
	t.CreatedAt = time.Now()
	stored := *t
	m.trainings[t.ID] = &stored
	return nil
}

func (m *mockRepository) GetTraining(ctx context.Context, id int) (*Training, error) {
	t, ok := m.trainings[id]
	if !ok {
		return nil, ErrTrainingNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *mockRepository) ListTrainings(ctx context.Context) ([]*Training, error) {
	var result []*Training
	for _, t := range m.trainings {
		result = append(result, t)
	}
	return result, nil
}

func (m *mockRepository) CreateEnrollment(ctx context.Context, e *Enrollment) error {
	for _, existing := range m.enrollments {
		if existing.TrainingID == e.TrainingID && existing.OfficerID == e.OfficerID {
			return ErrAlreadyEnrolled
		}
	}
	e.ID = m.nextEnroll
	m.nextEnroll++
	e.CreatedAt = time.Now()
	stored := *e
	m.enrollments[e.ID] = &stored
	return nil
}

func (m *mockRepository) GetEnrollment(ctx context.Context, id int) (*Enrollment, error) {
	e, ok := m.enrollments[id]
	if !ok {
		return nil, ErrEnrollmentNotFound
	}
	copied := *e
	return &copied, nil
}

func (m *mockRepository) ListEnrollments(ctx context.Context, trainingID int) ([]*Enrollment, error) {
	var result []*Enrollment
	for _, e := range m.enrollments {
		if e.TrainingID == trainingID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockRepository) CompleteEnrollment(ctx context.Context, id int, status string, score int) error {
	e, ok := m.enrollments[id]
	if !ok {
		return ErrEnrollmentNotFound
	}
	if e.Status != EnrollmentEnrolled {
		return ErrAlreadyCompleted
	}
	now := time.Now()
	e.Status = status
	e.Score = &score
	e.CompletedAt = &now
	return nil
}

func TestEnrollOncePerTraining(t *testing.T) {
	service := NewService(newMockRepository())

	tr, _ := service.CreateTraining(context.Background(), "instructor-1", "Lőkiképzés", "", true)

	if _, err := service.Enroll(context.Background(), tr.ID, "officer-1"); err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if _, err := service.Enroll(context.Background(), tr.ID, "officer-1"); !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestEnrollUnknownTraining(t *testing.T) {
	service := NewService(newMockRepository())

	if _, err := service.Enroll(context.Background(), 99, "officer-1"); !errors.Is(err, ErrTrainingNotFound) {
		t.Fatalf("expected ErrTrainingNotFound, got %v", err)
	}
}

func TestCompletePassFailBoundary(t *testing.T) {
	tests := []struct {
		score      int
		wantStatus string
	}{
		{score: 60, wantStatus: EnrollmentPassed},
		{score: 59, wantStatus: EnrollmentFailed},
		{score: 100, wantStatus: EnrollmentPassed},
		{score: 0, wantStatus: EnrollmentFailed},
	}

	for _, tt := range tests {
		service := NewService(newMockRepository())

		tr, _ := service.CreateTraining(context.Background(), "instructor-1", "Lőkiképzés", "", true)
		e, _ := service.Enroll(context.Background(), tr.ID, "officer-1")

		done, err := service.Complete(context.Background(), e.ID, "instructor-1", tt.score)
		if err != nil {
			t.Fatalf("Complete(%d): %v", tt.score, err)
		}
		if done.Status != tt.wantStatus {
			t.Errorf("score %d: expected %s, got %s", tt.score, tt.wantStatus, done.Status)
		}
		if done.Score == nil || *done.Score != tt.score {
			t.Errorf("score %d: score not recorded", tt.score)
		}
	}
}

func TestCompleteOnlyByInstructor(t *testing.T) {
	service := NewService(newMockRepository())

	tr, _ := service.CreateTraining(context.Background(), "instructor-1", "Lőkiképzés", "", false)
	e, _ := service.Enroll(context.Background(), tr.ID, "officer-1")

	if _, err := service.Complete(context.Background(), e.ID, "officer-2", 80); !errors.Is(err, ErrNotInstructor) {
		t.Fatalf("expected ErrNotInstructor, got %v", err)
	}
}

func TestCompleteOnlyOnce(t *testing.T) {
	service := NewService(newMockRepository())

	tr, _ := service.CreateTraining(context.Background(), "instructor-1", "Lőkiképzés", "", false)
	e, _ := service.Enroll(context.Background(), tr.ID, "officer-1")

	if _, err := service.Complete(context.Background(), e.ID, "instructor-1", 80); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, err := service.Complete(context.Background(), e.ID, "instructor-1", 40); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
	}
}

func TestCompleteScoreRange(t *testing.T) {
	service := NewService(newMockRepository())

	if _, err := service.Complete(context.Background(), 1, "instructor-1", 101); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
	if _, err := service.Complete(context.Background(), 1, "instructor-1", -1); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
}
