package entity

// ErrorKind classifies the last failure observed by a feed or list loader.
type ErrorKind string

const (
	ErrorKindNone             ErrorKind = ""
	ErrorKindPermissionDenied ErrorKind = "PERMISSION_DENIED"
	ErrorKindUnauthenticated  ErrorKind = "UNAUTHENTICATED"
	ErrorKindNetwork          ErrorKind = "NETWORK_ERROR"
	ErrorKindServer           ErrorKind = "SERVER_ERROR"
)

// FeedStatus is the state machine position of a feed.
type FeedStatus string

const (
	FeedStatusIdle     FeedStatus = "idle"
	FeedStatusFetching FeedStatus = "fetching"
	FeedStatusEnded    FeedStatus = "ended"
)

// InitialPageCursor is the first page requested by every feed.
const InitialPageCursor = 1

// FeedState is the observable state of one recommendation feed.
//
// Accumulated is append-only in arrival order and is never deduplicated by
// StoreID. PageCursor only advances on a successful non-terminal page, and
// EndReached never flips back to false.
type FeedState struct {
	Accumulated []StoreRecord `json:"accumulated"`
	PageCursor  int           `json:"page_cursor"`
	Loading     bool          `json:"loading"`
	EndReached  bool          `json:"end_reached"`
	LastError   ErrorKind     `json:"last_error,omitempty"`
}

// NewFeedState returns the state of a freshly opened feed.
func NewFeedState() FeedState {
	return FeedState{
		Accumulated: []StoreRecord{},
		PageCursor:  InitialPageCursor,
	}
}

// Status derives the state machine position from the flags.
func (s FeedState) Status() FeedStatus {
	switch {
	case s.EndReached:
		return FeedStatusEnded
	case s.Loading:
		return FeedStatusFetching
	default:
		return FeedStatusIdle
	}
}

// RequiresLogin reports whether the feed stopped because the session token is unusable.
func (s FeedState) RequiresLogin() bool {
	return s.LastError == ErrorKindUnauthenticated
}

// Clone returns a copy that does not share the accumulated slice.
func (s FeedState) Clone() FeedState {
	out := s
	out.Accumulated = make([]StoreRecord, len(s.Accumulated))
	copy(out.Accumulated, s.Accumulated)

	return out
}
