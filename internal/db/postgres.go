package db

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// poolConfig validates the DSN and applies the pool sizing used by
// the classification workload.
func poolConfig(dsn string) (*pgxpool.Config, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	return config, nil
}

func ConnectPostgres() *pgxpool.Pool {
	config, err := poolConfig(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}

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
			role VARCHAR(50) NOT NULL DEFAULT 'OPERATOR',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	addRoleColumnSQL := `
		ALTER TABLE users
		ADD COLUMN IF NOT EXISTS role VARCHAR(50) NOT NULL DEFAULT 'OPERATOR'
	`
	if _, err := db.Exec(ctx, addRoleColumnSQL); err != nil {
		log.Println("Note: role column may already exist")
	}

	// -------------------------------
	// CLASSIFICATIONS
	// -------------------------------
	classificationsSQL := `
		CREATE TABLE IF NOT EXISTS classifications (
			id SERIAL PRIMARY KEY,
			user_id UUID NULL,
			image_url VARCHAR(500) NOT NULL,
			image_key VARCHAR(500) NOT NULL,
			predicted_class VARCHAR(100) NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, classificationsSQL); err != nil {
		return err
	}

	classificationIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_classifications_created_at
		ON classifications (created_at);

		CREATE INDEX IF NOT EXISTS idx_classifications_predicted_class
		ON classifications (predicted_class)
	`
	if _, err := db.Exec(ctx, classificationIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// WEBHOOKS
	// -------------------------------
	webhooksSQL := `
		CREATE TABLE IF NOT EXISTS webhooks (
			id UUID PRIMARY KEY,
			url VARCHAR(500) NOT NULL,
			events TEXT[] NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, webhooksSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
