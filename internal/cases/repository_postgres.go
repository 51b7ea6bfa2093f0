package cases

import (
	"context"
	"errors"
	"time"

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
// Cases
// --------------------------------------------------

func (r *PostgresRepository) Create(ctx context.Context, c *Case) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO cases (title, description, suspect_name, status, officer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`,
		c.Title,
		c.Description,
		c.SuspectName,
		c.Status,
		c.OfficerID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Case, error) {
	var c Case

	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, suspect_name, status, officer_id, created_at, updated_at
		FROM cases
		WHERE id = $1
	`, id).Scan(
		&c.ID, &c.Title, &c.Description, &c.SuspectName,
		&c.Status, &c.OfficerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("case not found")
		}
		return nil, err
	}

	return &c, nil
}

func (r *PostgresRepository) ListByOfficer(ctx context.Context, officerID string) ([]*Case, error) {
	return r.scanCases(ctx, `
		SELECT id, title, description, suspect_name, status, officer_id, created_at, updated_at
		FROM cases
		WHERE officer_id = $1
		ORDER BY created_at DESC
	`, officerID)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Case, error) {
	return r.scanCases(ctx, `
		SELECT id, title, description, suspect_name, status, officer_id, created_at, updated_at
		FROM cases
		ORDER BY created_at DESC
	`)
}

func (r *PostgresRepository) scanCases(ctx context.Context, query string, args ...interface{}) ([]*Case, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Case
	for rows.Next() {
		var c Case
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.SuspectName,
			&c.Status, &c.OfficerID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE cases
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, status, id)
	return err
}

// --------------------------------------------------
// Evidence
// --------------------------------------------------

func (r *PostgresRepository) AddEvidence(ctx context.Context, e *Evidence) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO case_evidence (case_id, filename, url, uploaded_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		e.CaseID,
		e.Filename,
		e.URL,
		e.UploadedBy,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *PostgresRepository) ListEvidence(ctx context.Context, caseID int) ([]*Evidence, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, case_id, filename, url, uploaded_by, created_at
		FROM case_evidence
		WHERE case_id = $1
		ORDER BY created_at DESC
	`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Evidence
	for rows.Next() {
		var e Evidence
		if err := rows.Scan(&e.ID, &e.CaseID, &e.Filename, &e.URL, &e.UploadedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}

	return result, rows.Err()
}

// --------------------------------------------------
// Warrants
// --------------------------------------------------

func (r *PostgresRepository) CreateWarrant(ctx context.Context, w *Warrant) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO warrants (case_id, suspect_name, reason, status, requested_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		w.CaseID,
		w.SuspectName,
		w.Reason,
		w.Status,
		w.RequestedBy,
	).Scan(&w.ID, &w.CreatedAt)
}

func (r *PostgresRepository) GetWarrant(ctx context.Context, id int) (*Warrant, error) {
	var w Warrant

	err := r.db.QueryRow(ctx, `
		SELECT id, case_id, suspect_name, reason, status, requested_by,
		       decided_by, decision_note, created_at, decided_at
		FROM warrants
		WHERE id = $1
	`, id).Scan(
		&w.ID, &w.CaseID, &w.SuspectName, &w.Reason, &w.Status,
		&w.RequestedBy, &w.DecidedBy, &w.DecisionNote, &w.CreatedAt, &w.DecidedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("warrant not found")
		}
		return nil, err
	}

	return &w, nil
}

func (r *PostgresRepository) ListPendingWarrants(ctx context.Context) ([]*Warrant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, case_id, suspect_name, reason, status, requested_by,
		       decided_by, decision_note, created_at, decided_at
		FROM warrants
		WHERE status = 'PENDING'
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Warrant
	for rows.Next() {
		var w Warrant
		if err := rows.Scan(
			&w.ID, &w.CaseID, &w.SuspectName, &w.Reason, &w.Status,
			&w.RequestedBy, &w.DecidedBy, &w.DecisionNote, &w.CreatedAt, &w.DecidedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &w)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) DecideWarrant(ctx context.Context, id int, status, deciderID, note string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE warrants
		SET status = $1, decided_by = $2, decision_note = $3, decided_at = now()
		WHERE id = $4 AND status = 'PENDING'
	`, status, deciderID, note, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("warrant is not pending")
	}
	return nil
}

func (r *PostgresRepository) ExpireStaleWarrants(ctx context.Context, olderThanHours int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(olderThanHours) * time.Hour)

	tag, err := r.db.Exec(ctx, `
		UPDATE warrants
		SET status = 'EXPIRED', decided_at = now()
		WHERE status = 'PENDING' AND created_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}
