package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			badge VARCHAR(50) NOT NULL DEFAULT '',
			role VARCHAR(50) NOT NULL DEFAULT 'OFFICER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// CALCULATOR STORE (per-user history/favorites/templates)
	// -------------------------------
	calculatorStoreSQL := `
		CREATE TABLE IF NOT EXISTS calculator_store (
			user_id UUID NOT NULL REFERENCES users(id),
			key VARCHAR(50) NOT NULL,
			value JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, key)
		)
	`
	if _, err := db.Exec(ctx, calculatorStoreSQL); err != nil {
		return err
	}

	// -------------------------------
	// CASES + EVIDENCE + WARRANTS
	// -------------------------------
	casesSQL := `
		CREATE TABLE IF NOT EXISTS cases (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			suspect_name VARCHAR(255) NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'OPEN',
			officer_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS case_evidence (
			id SERIAL PRIMARY KEY,
			case_id INT NOT NULL REFERENCES cases(id),
			filename VARCHAR(255) NOT NULL,
			url VARCHAR(500) NOT NULL,
			uploaded_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS warrants (
			id SERIAL PRIMARY KEY,
			case_id INT NOT NULL REFERENCES cases(id),
			suspect_name VARCHAR(255) NOT NULL,
			reason TEXT NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			requested_by UUID NOT NULL REFERENCES users(id),
			decided_by UUID NULL,
			decision_note TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			decided_at TIMESTAMP NULL
		)
	`
	if _, err := db.Exec(ctx, casesSQL); err != nil {
		return err
	}

	// -------------------------------
	// PERSONNEL ROSTER
	// -------------------------------
	personnelSQL := `
		CREATE TABLE IF NOT EXISTS personnel (
			id SERIAL PRIMARY KEY,
			user_id UUID NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			badge VARCHAR(50) NOT NULL,
			rank VARCHAR(100) NOT NULL,
			division VARCHAR(100) NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'ACTIVE',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, personnelSQL); err != nil {
		return err
	}

	// -------------------------------
	// LOGISTICS / FINANCE REQUESTS
	// -------------------------------
	requestsSQL := `
		CREATE TABLE IF NOT EXISTS requests (
			id SERIAL PRIMARY KEY,
			requester_id UUID NOT NULL REFERENCES users(id),
			kind VARCHAR(50) NOT NULL,
			amount INT NOT NULL,
			justification TEXT NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			decided_by UUID NULL,
			decision_note TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			decided_at TIMESTAMP NULL
		)
	`
	if _, err := db.Exec(ctx, requestsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ACADEMY
	// -------------------------------
	academySQL := `
		CREATE TABLE IF NOT EXISTS trainings (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			instructor_id UUID NOT NULL REFERENCES users(id),
			mandatory BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS enrollments (
			id SERIAL PRIMARY KEY,
			training_id INT NOT NULL REFERENCES trainings(id),
			officer_id UUID NOT NULL REFERENCES users(id),
			status VARCHAR(50) NOT NULL DEFAULT 'ENROLLED',
			score INT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			completed_at TIMESTAMP NULL,
			UNIQUE (training_id, officer_id)
		)
	`
	if _, err := db.Exec(ctx, academySQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
