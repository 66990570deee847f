package privacy

import (
	"context"
	"errors"
	"testing"
)

type fakeStore struct {
	keys []string
	err  error
	days int
}

func (s *fakeStore) DeleteOlderThan(ctx context.Context, days int) ([]string, error) {
	s.days = days
	return s.keys, s.err
}

type fakeDeleter struct {
	deleted []string
	failOn  string
}

func (d *fakeDeleter) Delete(ctx context.Context, key string) error {
	if key == d.failOn {
		return errors.New("object missing")
	}
	d.deleted = append(d.deleted, key)
	return nil
}

func TestSweepPurgesExpiredObjects(t *testing.T) {
	store := &fakeStore{keys: []string{"classifications/a.png", "classifications/b.png"}}
	deleter := &fakeDeleter{}
	worker := NewRetentionWorker(store, deleter, 14)

	if err := worker.Sweep(context.Background()); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if store.days != 14 {
		t.Errorf("expected the configured window, got %d", store.days)
	}
	if len(deleter.deleted) != 2 {
		t.Errorf("expected 2 objects purged, got %d", len(deleter.deleted))
	}
}

func TestSweepContinuesPastObjectFailures(t *testing.T) {
	store := &fakeStore{keys: []string{"bad.png", "good.png"}}
	deleter := &fakeDeleter{failOn: "bad.png"}
	worker := NewRetentionWorker(store, deleter, 30)

	if err := worker.Sweep(context.Background()); err != nil {
		t.Fatalf("object failures must not fail the sweep: %v", err)
	}
	if len(deleter.deleted) != 1 || deleter.deleted[0] != "good.png" {
		t.Errorf("expected the remaining key to be purged, got %v", deleter.deleted)
	}
}

func TestSweepPropagatesStoreErrors(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	worker := NewRetentionWorker(store, &fakeDeleter{}, 30)

	if err := worker.Sweep(context.Background()); err == nil {
		t.Error("expected the store error to surface")
	}
}

func TestRetentionDaysDefault(t *testing.T) {
	worker := NewRetentionWorker(&fakeStore{}, nil, 0)
	if worker.RetentionDays() != 30 {
		t.Errorf("expected default 30 days, got %d", worker.RetentionDays())
	}
}
