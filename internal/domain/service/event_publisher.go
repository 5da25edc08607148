package service

import (
	"context"
)

// ReviewSubmittedEvent is published when a user submits a store review.
type ReviewSubmittedEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	ReviewID    string `json:"review_id"`
	StoreID     string `json:"store_id"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	SubmittedAt string `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewEvent hands a submitted review to downstream consumers
	PublishReviewEvent(ctx context.Context, event *ReviewSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
