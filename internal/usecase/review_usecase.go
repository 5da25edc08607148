package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// SubmitReviewInput represents the input for submitting a store review
type SubmitReviewInput struct {
	StoreID string `json:"store_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewUsecase accepts store reviews and hands them to downstream consumers
type ReviewUsecase interface {
	SubmitReview(ctx context.Context, input *SubmitReviewInput) (*entity.Review, error)
}

// ReviewSinkUsecase consumes review events delivered by the message queue.
// Events are checked and logged; nothing is stored.
type ReviewSinkUsecase interface {
	// ReceiveReview accepts one delivery. duplicate reports a redelivered event.
	// Malformed events fail with ErrValidationFailed and must not be redelivered.
	ReceiveReview(ctx context.Context, event *service.ReviewSubmittedEvent) (duplicate bool, err error)
}
