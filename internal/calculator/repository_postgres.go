package calculator

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists per-user calculator state as jsonb rows keyed by
// (user_id, key).
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, userID, key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRow(ctx, `
		SELECT value
		FROM calculator_store
		WHERE user_id = $1 AND key = $2
	`, userID, key).Scan(&value)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, userID, key string, value []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO calculator_store (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = $3, updated_at = now()
	`, userID, key, value)

	return err
}

func (s *PostgresStore) Remove(ctx context.Context, userID, key string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM calculator_store
		WHERE user_id = $1 AND key = $2
	`, userID, key)

	return err
}
