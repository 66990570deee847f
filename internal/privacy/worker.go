package privacy

import (
	"context"
	"log"
	"time"
)

// Store deletes expired classifications and reports their image keys.
type Store interface {
	DeleteOlderThan(ctx context.Context, days int) ([]string, error)
}

// ObjectDeleter removes uploaded images from object storage.
type ObjectDeleter interface {
	Delete(ctx context.Context, key string) error
}

// RetentionWorker enforces the data retention window: database rows
// past the cutoff are deleted and their stored images purged.
type RetentionWorker struct {
	store         Store
	objects       ObjectDeleter
	retentionDays int
	interval      time.Duration
}

func NewRetentionWorker(store Store, objects ObjectDeleter, retentionDays int) *RetentionWorker {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &RetentionWorker{
		store:         store,
		objects:       objects,
		retentionDays: retentionDays,
		interval:      time.Hour,
	}
}

// Start runs the worker loop in a goroutine until ctx is cancelled.
func StartWorker(ctx context.Context, worker *RetentionWorker) {
	go func() {
		log.Println("Retention worker started")
		worker.run(ctx)
	}()
}

func (w *RetentionWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.Sweep(ctx); err != nil {
			log.Printf("RETENTION_FAILED err=%v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sweep performs one retention pass. Object storage failures are
// logged and skipped so one bad key cannot block row cleanup.
func (w *RetentionWorker) Sweep(ctx context.Context) error {
	keys, err := w.store.DeleteOlderThan(ctx, w.retentionDays)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	purged := 0
	for _, key := range keys {
		if w.objects == nil {
			continue
		}
		if err := w.objects.Delete(ctx, key); err != nil {
			log.Printf("RETENTION_OBJECT_FAILED key=%s err=%v", key, err)
			continue
		}
		purged++
	}

	log.Printf("RETENTION_DONE rows=%d objects=%d", len(keys), purged)
	return nil
}

// RetentionDays exposes the configured window.
func (w *RetentionWorker) RetentionDays() int {
	return w.retentionDays
}
