package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"giftshop/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/order-events-push"
	localPushTimeout    = 30 * time.Second
	maxErrorBodySnippet = 512
)

// pushEnvelope mirrors the body Pub/Sub sends to push subscriptions, so the
// worker handles local and broker deliveries the same way.
type pushEnvelope struct {
	Message      pushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type pushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher pushes events straight to the worker when no broker runs.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushEnvelope{
		Message: pushedMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  attributes,
			MessageID:   event.EventID,
			PublishTime: p.now().UTC().Format(time.RFC3339Nano),
		},
		Subscription: localSubscription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push %s to %s", event.Type, p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySnippet))

		return errors.Errorf("worker returned non-success status: %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	p.logger.DebugContext(ctx, "Order event pushed to local worker",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
