package personnel

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

func (r *PostgresRepository) Create(ctx context.Context, o *Officer) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO personnel (user_id, name, badge, rank, division, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`,
		o.UserID,
		o.Name,
		o.Badge,
		o.Rank,
		o.Division,
		o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Officer, error) {
	var o Officer

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, badge, rank, division, status, created_at, updated_at
		FROM personnel
		WHERE id = $1
	`, id).Scan(
		&o.ID, &o.UserID, &o.Name, &o.Badge, &o.Rank,
		&o.Division, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfficerNotFound
		}
		return nil, err
	}

	return &o, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Officer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, badge, rank, division, status, created_at, updated_at
		FROM personnel
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Officer
	for rows.Next() {
		var o Officer
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Name, &o.Badge, &o.Rank,
			&o.Division, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &o)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, o *Officer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE personnel
		SET name = $1, badge = $2, rank = $3, division = $4, status = $5, updated_at = now()
		WHERE id = $6
	`,
		o.Name,
		o.Badge,
		o.Rank,
		o.Division,
		o.Status,
		o.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOfficerNotFound
	}
	return nil
}
