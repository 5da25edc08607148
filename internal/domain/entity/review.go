package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating and comment a user submitted for a store.
type Review struct {
	ID          uuid.UUID `json:"id"`           // Receipt identifier.
	StoreID     string    `json:"store_id"`     // The reviewed store.
	Rating      int       `json:"rating"`       // Star rating.
	Comment     string    `json:"comment"`      // Free-form comment.
	SubmittedAt time.Time `json:"submitted_at"` // When the review was accepted.
}
