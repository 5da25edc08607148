package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReviewSink(window int) *reviewSinkService {
	cfg := &config.Config{
		Review: &config.ReviewConfig{MinRating: 1, MaxRating: 5},
		Worker: &config.WorkerConfig{DedupWindow: window},
	}

	return NewReviewSinkService(ReviewSinkServiceParams{Config: cfg, Logger: slog.Default()}).(*reviewSinkService)
}

func validReviewEvent() *service.ReviewSubmittedEvent {
	return &service.ReviewSubmittedEvent{
		ReviewID:    uuid.NewString(),
		StoreID:     "store-1",
		Rating:      4,
		Comment:     "Great noodles",
		SubmittedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

func TestReviewSink_ReceiveReview(t *testing.T) {
	sink := newTestReviewSink(8)
	event := validReviewEvent()

	duplicate, err := sink.ReceiveReview(context.Background(), event)
	require.NoError(t, err)
	assert.False(t, duplicate)

	duplicate, err = sink.ReceiveReview(context.Background(), event)
	require.NoError(t, err)
	assert.True(t, duplicate)
}

func TestReviewSink_RejectsMalformedEvents(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *service.ReviewSubmittedEvent)
	}{
		{name: "review id not a uuid", mutate: func(e *service.ReviewSubmittedEvent) { e.ReviewID = "r-1" }},
		{name: "missing store", mutate: func(e *service.ReviewSubmittedEvent) { e.StoreID = " " }},
		{name: "rating too low", mutate: func(e *service.ReviewSubmittedEvent) { e.Rating = 0 }},
		{name: "rating too high", mutate: func(e *service.ReviewSubmittedEvent) { e.Rating = 6 }},
		{name: "bad timestamp", mutate: func(e *service.ReviewSubmittedEvent) { e.SubmittedAt = "yesterday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := newTestReviewSink(8)
			event := validReviewEvent()
			tt.mutate(event)

			duplicate, err := sink.ReceiveReview(context.Background(), event)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.False(t, duplicate)
		})
	}
}

func TestReviewSink_ForgetsOldestBeyondWindow(t *testing.T) {
	sink := newTestReviewSink(2)
	ctx := context.Background()

	first, second, third := validReviewEvent(), validReviewEvent(), validReviewEvent()
	for _, e := range []*service.ReviewSubmittedEvent{first, second, third} {
		duplicate, err := sink.ReceiveReview(ctx, e)
		require.NoError(t, err)
		require.False(t, duplicate)
	}

	duplicate, err := sink.ReceiveReview(ctx, third)
	require.NoError(t, err)
	assert.True(t, duplicate)

	// first was pushed out of the window by third
	duplicate, err = sink.ReceiveReview(ctx, first)
	require.NoError(t, err)
	assert.False(t, duplicate)
}
