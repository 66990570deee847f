package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotifierDeliversToSubscribedWebhooks(t *testing.T) {
	received := make(chan eventPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload eventPayload
		json.Unmarshal(body, &payload)
		received <- payload
	}))
	defer server.Close()

	repo := NewInMemoryWebhookRepository()
	repo.Save(context.Background(), &Webhook{
		URL:    server.URL,
		Events: []string{"classification.completed"},
	})

	notifier := NewNotifier(repo)
	notifier.Notify(context.Background(), "classification.completed", map[string]string{"fruit": "Apple"})

	select {
	case payload := <-received:
		if payload.Event != "classification.completed" {
			t.Errorf("unexpected event %s", payload.Event)
		}
	default:
		t.Fatal("webhook was not delivered")
	}
}

func TestNotifierSkipsUnsubscribedEvents(t *testing.T) {
	hit := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	repo := NewInMemoryWebhookRepository()
	repo.Save(context.Background(), &Webhook{
		URL:    server.URL,
		Events: []string{"quality.alert"},
	})

	notifier := NewNotifier(repo)
	notifier.Notify(context.Background(), "classification.completed", nil)

	if hit {
		t.Error("unsubscribed webhook should not receive the event")
	}
}

func TestNotifierSurvivesUnreachableListener(t *testing.T) {
	repo := NewInMemoryWebhookRepository()
	repo.Save(context.Background(), &Webhook{
		URL:    "http://127.0.0.1:1/unreachable",
		Events: []string{"classification.completed"},
	})

	// Must not panic or return an error surface; delivery failures are
	// logged only.
	notifier := NewNotifier(repo)
	notifier.Notify(context.Background(), "classification.completed", nil)
}
