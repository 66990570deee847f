package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Notifier delivers event payloads to registered webhooks.
type Notifier struct {
	repo   WebhookRepository
	client *http.Client
}

func NewNotifier(repo WebhookRepository) *Notifier {
	return &Notifier{
		repo:   repo,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type eventPayload struct {
	Event     string      `json:"event"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// Notify posts the event to every active webhook subscribed to it.
// Delivery failures are logged, not returned: callers must not fail a
// classification because a downstream listener is unreachable.
func (n *Notifier) Notify(ctx context.Context, eventType string, data interface{}) {
	webhooks, err := n.repo.ListActive(ctx)
	if err != nil {
		log.Printf("webhook list failed: %v", err)
		return
	}

	payload, err := json.Marshal(eventPayload{
		Event:     eventType,
		Timestamp: time.Now(),
		Data:      data,
	})
	if err != nil {
		log.Printf("webhook payload marshal failed: %v", err)
		return
	}

	for _, webhook := range webhooks {
		if !subscribed(webhook, eventType) {
			continue
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhook.URL, bytes.NewReader(payload))
		if err != nil {
			log.Printf("webhook %s request failed: %v", webhook.ID, err)
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			log.Printf("webhook %s delivery failed: %v", webhook.ID, err)
			continue
		}
		resp.Body.Close()
	}
}

func subscribed(webhook Webhook, eventType string) bool {
	for _, event := range webhook.Events {
		if event == eventType {
			return true
		}
	}
	return false
}
