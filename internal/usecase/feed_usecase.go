package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceLocationReport is what the client device knows about its location when
// a feed screen opens.
type DeviceLocationReport struct {
	PermissionGranted bool               `json:"permission_granted"`
	Position          *entity.Coordinate `json:"position,omitempty"` // nil when the device could not acquire a fix
}

// OpenFeedInput represents the input for opening a feed session
type OpenFeedInput struct {
	Location DeviceLocationReport `json:"location"`
	Prefetch bool                 `json:"prefetch"` // request the first page immediately
}

// FeedSnapshot is the state of one feed session at a point in time
type FeedSnapshot struct {
	ID    uuid.UUID        `json:"id"`
	State entity.FeedState `json:"state"`
}

// FeedUsecase manages feed sessions, one per screen activation
type FeedUsecase interface {
	OpenFeed(ctx context.Context, input *OpenFeedInput) (*FeedSnapshot, error)

	// RequestNextPage reports accepted=false when the request was a no-op
	// because a fetch is in flight or the feed has ended.
	RequestNextPage(ctx context.Context, id uuid.UUID) (snapshot *FeedSnapshot, accepted bool, err error)

	GetFeed(ctx context.Context, id uuid.UUID) (*FeedSnapshot, error)

	// Subscribe streams every state transition of the feed until cancel is called
	// or the session is closed.
	Subscribe(ctx context.Context, id uuid.UUID) (updates <-chan entity.FeedState, cancel func(), err error)

	CloseFeed(ctx context.Context, id uuid.UUID) error
}
