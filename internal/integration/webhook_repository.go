package integration

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WebhookRepository defines the webhook registry contract.
type WebhookRepository interface {
	Save(ctx context.Context, webhook *Webhook) error
	ListActive(ctx context.Context) ([]Webhook, error)
	Deactivate(ctx context.Context, id string) error
}

type PostgresWebhookRepository struct {
	db *pgxpool.Pool
}

func NewPostgresWebhookRepository(db *pgxpool.Pool) *PostgresWebhookRepository {
	return &PostgresWebhookRepository{db: db}
}

func (r *PostgresWebhookRepository) Save(ctx context.Context, webhook *Webhook) error {
	if webhook.ID == "" {
		webhook.ID = uuid.New().String()
	}
	if webhook.CreatedAt.IsZero() {
		webhook.CreatedAt = time.Now()
	}
	webhook.Active = true

	query := `
		INSERT INTO webhooks (id, url, events, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		webhook.ID, webhook.URL, webhook.Events, webhook.Active, webhook.CreatedAt,
	)
	return err
}

func (r *PostgresWebhookRepository) ListActive(ctx context.Context) ([]Webhook, error) {
	query := `
		SELECT id, url, events, active, created_at
		FROM webhooks
		WHERE active = TRUE
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var webhooks []Webhook
	for rows.Next() {
		var w Webhook
		if err := rows.Scan(&w.ID, &w.URL, &w.Events, &w.Active, &w.CreatedAt); err != nil {
			return nil, err
		}
		webhooks = append(webhooks, w)
	}
	return webhooks, rows.Err()
}

func (r *PostgresWebhookRepository) Deactivate(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE webhooks SET active = FALSE WHERE id = $1`, id)
	return err
}

// InMemoryWebhookRepository backs tests.
type InMemoryWebhookRepository struct {
	webhooks []Webhook
}

func NewInMemoryWebhookRepository() *InMemoryWebhookRepository {
	return &InMemoryWebhookRepository{}
}

func (r *InMemoryWebhookRepository) Save(ctx context.Context, webhook *Webhook) error {
	if webhook.ID == "" {
		webhook.ID = uuid.New().String()
	}
	if webhook.CreatedAt.IsZero() {
		webhook.CreatedAt = time.Now()
	}
	webhook.Active = true
	r.webhooks = append(r.webhooks, *webhook)
	return nil
}

func (r *InMemoryWebhookRepository) ListActive(ctx context.Context) ([]Webhook, error) {
	var active []Webhook
	for _, w := range r.webhooks {
		if w.Active {
			active = append(active, w)
		}
	}
	return active, nil
}

func (r *InMemoryWebhookRepository) Deactivate(ctx context.Context, id string) error {
	for i := range r.webhooks {
		if r.webhooks[i].ID == id {
			r.webhooks[i].Active = false
		}
	}
	return nil
}
