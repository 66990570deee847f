package classification

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, record *Record) error
	FindByID(ctx context.Context, id int64) (*Record, error)
	Recent(ctx context.Context, limit int) ([]Record, error)
	Statistics(ctx context.Context) (Statistics, error)
	DeleteOlderThan(ctx context.Context, days int) ([]string, error)
}
