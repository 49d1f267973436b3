package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"giftshop/config"
	"giftshop/internal/domain/constants"
	"giftshop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gocloudpubsub "gocloud.dev/pubsub"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.OrderEventPlaced,
		OrderID:     "0b6f3c1e-8d0e-4a55-9a39-6f6b1f7d2a10",
		UserID:      "5d1c43d4-2f3b-4b44-8a58-5b8c0f9e7e21",
		Status:      "pending",
		TotalAmount: "26.00",
		OccurredAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received pushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.OrderEventPlaced, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishOrderEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status: 500")
}

func TestGoCloudPublisher_PublishOrderEvent(t *testing.T) {
	ctx := context.Background()
	const topicURL = "mem://order-events-test"

	publisher, err := NewGoCloudPublisher(ctx, topicURL, newDiscardLogger())
	require.NoError(t, err)
	defer publisher.Close()

	subscription, err := gocloudpubsub.OpenSubscription(ctx, topicURL)
	require.NoError(t, err)
	defer subscription.Shutdown(ctx)

	require.NoError(t, publisher.PublishOrderEvent(ctx, testEvent()))

	receiveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	msg, err := subscription.Receive(receiveCtx)
	require.NoError(t, err)
	msg.Ack()

	assert.Equal(t, "evt-1", msg.Metadata["event_id"])
	assert.Equal(t, "req-1", msg.Metadata["request_id"])

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, testEvent().OrderID, decoded.OrderID)
}

func TestNewPublisher(t *testing.T) {
	logger := newDiscardLogger()

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "unconfigured falls back to no-op"},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID is required"},
		{name: "gocloud without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoCloud}, wantErr: "topic URL is required"},
		{name: "gocloud in memory", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoCloud, TopicURL: "mem://provider-test"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			assert.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
			assert.NoError(t, publisher.Close())
		})
	}
}
