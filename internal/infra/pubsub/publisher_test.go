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

	"kampuskart/config"
	"kampuskart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.DomainEvent{
		RequestID:   "req-1",
		Type:        service.EventShopDeleted,
		AggregateID: "shop-1",
		Attributes:  map[string]string{"owner_id": "user-1"},
		OccurredAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "shop.deleted", received.Message.Attributes["event_type"])
	assert.Equal(t, "shop-1", received.Message.Attributes["aggregate_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, service.EventShopDeleted, decoded.Type)
	assert.Equal(t, "user-1", decoded.Attributes["owner_id"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.Publish(context.Background(), &service.DomainEvent{Type: service.EventUserDeleted})
	assert.ErrorContains(t, err, "502")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured"},
		{name: "noop", pubsub: &config.PubSubConfig{Provider: config.PubSubProviderNoop}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: config.PubSubProviderLocal, LocalEndpoint: "http://localhost:9/events"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: config.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: config.PubSubProviderGoogle}, wantErr: "project ID"},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
