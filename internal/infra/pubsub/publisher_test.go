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

	"courier/config"
	"courier/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.OrderEvent{
		RequestID:  "req-1",
		Type:       service.OrderEventStatusChanged,
		OrderID:    "order-1",
		Barcode:    "BC-1",
		Status:     "delivered",
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "order-1", received.Message.Attributes["order_id"])
	assert.Equal(t, service.OrderEventStatusChanged, received.Message.Attributes["event_type"])
	assert.Equal(t, "delivered", received.Message.Attributes["status"])
	assert.NotContains(t, received.Message.Attributes, "driver_id")
	assert.Equal(t, localSubscription, received.Subscription)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "BC-1", decoded.Barcode)
	assert.Equal(t, "delivered", decoded.Status)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "answered 502")
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "pubsub.localEndpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google"}, wantErr: "pubsub.projectId is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "pubsub.topicId is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: `unknown pubsub provider "kafka"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: logger,
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			if tt.cfg == nil {
				assert.NoError(t, publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: "noop"}))
			}
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	_, _, err := encodeEvent(nil)
	assert.Error(t, err)

	payload, attrs, err := encodeEvent(&service.OrderEvent{
		Type:     service.OrderEventDriverAssigned,
		OrderID:  "order-2",
		Status:   "in_transit",
		DriverID: "driver-7",
	})
	require.NoError(t, err)
	assert.Equal(t, "driver-7", attrs["driver_id"])
	assert.NotContains(t, attrs, "request_id")
	assert.Contains(t, string(payload), `"driver_id":"driver-7"`)
}
