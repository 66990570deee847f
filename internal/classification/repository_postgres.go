package classification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, record *Record) error {
	payload, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	query := `
		INSERT INTO classifications
			(user_id, image_url, image_key, predicted_class, confidence, result)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		record.UserID, record.ImageURL, record.ImageKey,
		record.PredictedClass, record.Confidence, payload,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*Record, error) {
	query := `
		SELECT id, user_id, image_url, image_key, predicted_class, confidence, result, created_at
		FROM classifications
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)

	record, err := scanRecord(row)
	if err != nil {
		return nil, errors.New("classification not found")
	}
	return record, nil
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, user_id, image_url, image_key, predicted_class, confidence, result, created_at
		FROM classifications
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// InRange returns classifications from the trailing window of days,
// oldest first.
func (r *PostgresRepository) InRange(ctx context.Context, days int) ([]Record, error) {
	query := `
		SELECT id, user_id, image_url, image_key, predicted_class, confidence, result, created_at
		FROM classifications
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 day')
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) Statistics(ctx context.Context) (Statistics, error) {
	stats := Statistics{ClassCounts: make(map[string]int)}

	query := `
		SELECT predicted_class, COUNT(*), MAX(created_at)
		FROM classifications
		GROUP BY predicted_class
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	var lastUpdated *time.Time
	for rows.Next() {
		var class string
		var count int
		var latest time.Time
		if err := rows.Scan(&class, &count, &latest); err != nil {
			return stats, err
		}
		stats.ClassCounts[class] = count
		stats.TotalClassifications += count
		if lastUpdated == nil || latest.After(*lastUpdated) {
			t := latest
			lastUpdated = &t
		}
	}
	stats.LastUpdated = lastUpdated
	return stats, rows.Err()
}

// DeleteOlderThan removes expired rows and returns their image keys so
// the caller can purge object storage.
func (r *PostgresRepository) DeleteOlderThan(ctx context.Context, days int) ([]string, error) {
	query := `
		DELETE FROM classifications
		WHERE created_at < NOW() - ($1 * INTERVAL '1 day')
		RETURNING image_key
	`
	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	record := &Record{}
	var payload []byte

	if err := row.Scan(
		&record.ID, &record.UserID, &record.ImageURL, &record.ImageKey,
		&record.PredictedClass, &record.Confidence, &payload, &record.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(payload, &record.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	return record, nil
}
