package logistics

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, req *Request) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO requests (requester_id, kind, amount, justification, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		req.RequesterID,
		req.Kind,
		req.Amount,
		req.Justification,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Request, error) {
	var req Request

	err := r.db.QueryRow(ctx, `
		SELECT id, requester_id, kind, amount, justification, status,
		       decided_by, decision_note, created_at, decided_at
		FROM requests
		WHERE id = $1
	`, id).Scan(
		&req.ID, &req.RequesterID, &req.Kind, &req.Amount, &req.Justification,
		&req.Status, &req.DecidedBy, &req.DecisionNote, &req.CreatedAt, &req.DecidedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

func (r *PostgresRepository) ListByRequester(ctx context.Context, requesterID string) ([]*Request, error) {
	return r.scanRequests(ctx, `
		SELECT id, requester_id, kind, amount, justification, status,
		       decided_by, decision_note, created_at, decided_at
		FROM requests
		WHERE requester_id = $1
		ORDER BY created_at DESC
	`, requesterID)
}

func (r *PostgresRepository) ListPending(ctx context.Context) ([]*Request, error) {
	return r.scanRequests(ctx, `
		SELECT id, requester_id, kind, amount, justification, status,
		       decided_by, decision_note, created_at, decided_at
		FROM requests
		WHERE status = 'PENDING'
		ORDER BY created_at ASC
	`)
}

func (r *PostgresRepository) scanRequests(ctx context.Context, query string, args ...interface{}) ([]*Request, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(
			&req.ID, &req.RequesterID, &req.Kind, &req.Amount, &req.Justification,
			&req.Status, &req.DecidedBy, &req.DecisionNote, &req.CreatedAt, &req.DecidedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &req)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) Decide(ctx context.Context, id int, status, deciderID, note string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests
		SET status = $1, decided_by = $2, decision_note = $3, decided_at = now()
		WHERE id = $4 AND status = 'PENDING'
	`, status, deciderID, note, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotPending
	}
	return nil
}
