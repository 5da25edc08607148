package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, env, provider string) (*PushHandler, *mockUsecase.MockReviewSinkUsecase) {
	t.Helper()

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: provider},
		Worker: &config.WorkerConfig{},
	}
	cfg.Env.Env = env

	sink := mockUsecase.NewMockReviewSinkUsecase(t)
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default(), Sink: sink})

	return h, sink
}

func pushBody(t *testing.T, event *service.ReviewSubmittedEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/test/subscriptions/review-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func testEvent() *service.ReviewSubmittedEvent {
	return &service.ReviewSubmittedEvent{
		RequestID:   "req-from-event",
		ReviewID:    "0b6f2b1e-3a64-4c8b-9a55-0e5f8c1d2a10",
		StoreID:     "store-1",
		Rating:      5,
		Comment:     "Lovely",
		SubmittedAt: "2026-03-01T12:00:00Z",
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		sinkErr    error
		duplicate  bool
		wantStatus int
	}{
		{name: "accepted", wantStatus: http.StatusOK},
		{name: "redelivered", duplicate: true, wantStatus: http.StatusOK},
		{name: "malformed event is acknowledged", sinkErr: domainerrors.ErrValidationFailed.WithDetails("bad"), wantStatus: http.StatusOK},
		{name: "sink failure is retried", sinkErr: errors.New("boom"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sink := newTestPushHandler(t, "develop", "google")
			sink.EXPECT().
				ReceiveReview(mock.Anything, mock.MatchedBy(func(e *service.ReviewSubmittedEvent) bool {
					return e.StoreID == "store-1" && e.Rating == 5
				})).
				Return(tt.duplicate, tt.sinkErr).
				Once()

			rec := doPush(h, pushBody(t, testEvent(), nil), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RequestIDPriority(t *testing.T) {
	h, sink := newTestPushHandler(t, "develop", "local")
	sink.EXPECT().
		ReceiveReview(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-attributes"
		}), mock.Anything).
		Return(false, nil).
		Once()

	rec := doPush(h, pushBody(t, testEvent(), map[string]string{"request_id": "req-from-attributes"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadPayload(t *testing.T) {
	h, _ := newTestPushHandler(t, "develop", "local")

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPush(h, tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushTokens(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		validateErr   error
		wantStatus    int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "not a bearer token",
			authorization: "Basic abc",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "invalid token",
			authorization: "Bearer bad",
			validateErr:   errors.New("invalid signature"),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "wrong issuer",
			authorization: "Bearer token",
			payload:       &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "unverified email",
			authorization: "Bearer token",
			payload:       &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "valid token",
			authorization: "Bearer token",
			payload:       &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sink := newTestPushHandler(t, "production", "google")
			require.True(t, h.verifyPushAuth)

			var gotAudience string
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience

				return tt.payload, tt.validateErr
			}
			if tt.wantStatus == http.StatusOK {
				sink.EXPECT().ReceiveReview(mock.Anything, mock.Anything).Return(false, nil).Once()
			}

			rec := doPush(h, pushBody(t, testEvent(), nil), tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.payload != nil {
				assert.Equal(t, "http://example.com/push", gotAudience)
			}
		})
	}
}

func TestNewPushHandler_VerificationScope(t *testing.T) {
	tests := []struct {
		env      string
		provider string
		want     bool
	}{
		{env: "production", provider: "google", want: true},
		{env: "develop", provider: "google", want: false},
		{env: "production", provider: "local", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.provider, func(t *testing.T) {
			h, _ := newTestPushHandler(t, tt.env, tt.provider)
			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}
