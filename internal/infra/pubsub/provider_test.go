package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.Default(),
	}
}

func TestNewEventPublisher_Noop(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}, {Provider: ProviderNoop}} {
		publisher, err := NewEventPublisher(newParams(t, cfg))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishReviewEvent(context.Background(), &service.ReviewSubmittedEvent{ReviewID: "r1"}))
	}
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newParams(t, tt.cfg))
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_PublishReviewEvent(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: server.URL}))
	require.NoError(t, err)

	event := &service.ReviewSubmittedEvent{
		RequestID:   "req-1",
		ReviewID:    "r1",
		StoreID:     "s1",
		Rating:      4,
		Comment:     "Great broth",
		SubmittedAt: "2026-01-02T03:04:05Z",
	}
	require.NoError(t, publisher.PublishReviewEvent(context.Background(), event))

	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "r1", received.Message.MessageID)
	assert.Equal(t, "s1", received.Message.Attributes["store_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ReviewSubmittedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_ConsumerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.PublishReviewEvent(context.Background(), &service.ReviewSubmittedEvent{ReviewID: "r1"})
	assert.Error(t, err)
}
