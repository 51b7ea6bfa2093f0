package academy

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Trainings
// --------------------------------------------------

func (r *PostgresRepository) CreateTraining(ctx context.Context, t *Training) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO trainings (title, description, instructor_id, mandatory)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		t.Title,
		t.Description,
		t.InstructorID,
		t.Mandatory,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *PostgresRepository) GetTraining(ctx context.Context, id int) (*Training, error) {
	var t Training

	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, instructor_id, mandatory, created_at
		FROM trainings
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.Description, &t.InstructorID, &t.Mandatory, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainingNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (r *PostgresRepository) ListTrainings(ctx context.Context) ([]*Training, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, instructor_id, mandatory, created_at
		FROM trainings
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Training
	for rows.Next() {
		var t Training
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.InstructorID, &t.Mandatory, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &t)
	}

	return result, rows.Err()
}

// --------------------------------------------------
// Enrollments
// --------------------------------------------------

func (r *PostgresRepository) CreateEnrollment(ctx context.Context, e *Enrollment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO enrollments (training_id, officer_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`,
		e.TrainingID,
		e.OfficerID,
		e.Status,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrAlreadyEnrolled
	}
	return err
}

func (r *PostgresRepository) GetEnrollment(ctx context.Context, id int) (*Enrollment, error) {
	var e Enrollment

	err := r.db.QueryRow(ctx, `
		SELECT id, training_id, officer_id, status, score, created_at, completed_at
		FROM enrollments
		WHERE id = $1
	`, id).Scan(&e.ID, &e.TrainingID, &e.OfficerID, &e.Status, &e.Score, &e.CreatedAt, &e.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (r *PostgresRepository) ListEnrollments(ctx context.Context, trainingID int) ([]*Enrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, training_id, officer_id, status, score, created_at, completed_at
		FROM enrollments
		WHERE training_id = $1
		ORDER BY created_at ASC
	`, trainingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Enrollment
	for rows.Next() {
		var e Enrollment
		if err := rows.Scan(&e.ID, &e.TrainingID, &e.OfficerID, &e.Status, &e.Score, &e.CreatedAt, &e.CompletedAt); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) CompleteEnrollment(ctx context.Context, id int, status string, score int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE enrollments
		SET status = $1, score = $2, completed_at = now()
		WHERE id = $3 AND status = 'ENROLLED'
	`, status, score, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyCompleted
	}
	return nil
}
