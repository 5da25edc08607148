package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// PaginationController drives one recommendation feed through
// Idle -> Fetching -> {Idle, Ended}. At most one fetch is in flight at any
// time and the Ended state is absorbing.
type PaginationController struct {
	locator     service.LocationResolver
	credentials service.CredentialAccessor
	fetcher     service.ListingFetcher
	logger      *slog.Logger

	mu    sync.Mutex
	state entity.FeedState

	// Only touched by the goroutine holding the in-flight slot.
	coord   entity.Coordinate
	located bool

	// seq numbers transitions under mu; delivery of seq n waits for n-1.
	seq       uint64
	deliverMu sync.Mutex
	delivered *sync.Cond
	lastSent  uint64

	observersMu    sync.Mutex
	observers      map[int]func(entity.FeedState)
	nextObserverID int
}

// PaginationControllerParams holds the collaborators of a feed.
type PaginationControllerParams struct {
	Locator     service.LocationResolver
	Credentials service.CredentialAccessor
	Fetcher     service.ListingFetcher
	Logger      *slog.Logger
}

// NewPaginationController creates a controller with a fresh feed state.
func NewPaginationController(params PaginationControllerParams) *PaginationController {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &PaginationController{
		locator:     params.Locator,
		credentials: params.Credentials,
		fetcher:     params.Fetcher,
		logger:      logger,
		state:       entity.NewFeedState(),
		observers:   make(map[int]func(entity.FeedState)),
	}
	c.delivered = sync.NewCond(&c.deliverMu)

	return c
}

func (c *PaginationController) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// State returns a snapshot of the feed state.
func (c *PaginationController) State() entity.FeedState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Clone()
}

// RequestNextPage fetches the page at the current cursor and merges it into
// the feed. It returns false without doing anything when a fetch is already in
// flight or the feed has ended. Failures never escape: they are recorded in
// the state's LastError and the same page is retried by the next call.
func (c *PaginationController) RequestNextPage(ctx context.Context) bool {
	cursor, ok := c.beginFetch()
	if !ok {
		c.log(ctx).Debug("Next page request ignored", slog.String("status", string(c.State().Status())))

		return false
	}

	coord := c.resolveLocation(ctx)

	token, err := c.credentials.GetToken(ctx)
	if err != nil {
		c.log(ctx).Warn("Session token unavailable", slog.Any("error", err))
		c.finish(func(s *entity.FeedState) {
			s.LastError = entity.ErrorKindUnauthenticated
		})

		return true
	}

	page, err := c.fetcher.FetchPage(ctx, token, cursor, coord)
	switch {
	case err != nil:
		kind := domainerrors.KindOf(err)
		c.log(ctx).Warn("Failed to fetch recommendation page",
			slog.Int("page", cursor),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		c.finish(func(s *entity.FeedState) {
			s.LastError = kind
		})

	case page.NoMore:
		c.log(ctx).Debug("Recommendation feed ended", slog.Int("page", cursor))
		c.finish(func(s *entity.FeedState) {
			s.EndReached = true
			s.LastError = entity.ErrorKindNone
		})

	default:
		c.log(ctx).Debug("Recommendation page merged",
			slog.Int("page", cursor),
			slog.Int("stores", len(page.Stores)),
		)
		c.finish(func(s *entity.FeedState) {
			s.Accumulated = append(s.Accumulated, page.Stores...)
			s.PageCursor++
			s.LastError = entity.ErrorKindNone
		})
	}

	return true
}

// beginFetch claims the in-flight slot and returns the cursor to fetch.
func (c *PaginationController) beginFetch() (int, bool) {
	c.mu.Lock()
	if c.state.Loading || c.state.EndReached {
		c.mu.Unlock()

		return 0, false
	}
	c.state.Loading = true
	cursor := c.state.PageCursor
	seq, snapshot := c.transitionLocked()
	c.mu.Unlock()

	c.notify(seq, snapshot)

	return cursor, true
}

// finish applies the outcome of the in-flight fetch and releases the slot.
func (c *PaginationController) finish(apply func(s *entity.FeedState)) {
	c.mu.Lock()
	apply(&c.state)
	c.state.Loading = false
	seq, snapshot := c.transitionLocked()
	c.mu.Unlock()

	c.notify(seq, snapshot)
}

// transitionLocked numbers the transition just applied. c.mu must be held.
func (c *PaginationController) transitionLocked() (uint64, entity.FeedState) {
	c.seq++

	return c.seq, c.state.Clone()
}

// resolveLocation asks the resolver once per feed and caches the answer,
// including the default coordinate.
func (c *PaginationController) resolveLocation(ctx context.Context) entity.Coordinate {
	if c.located {
		return c.coord
	}

	coord, err := c.locator.Resolve(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPermissionDenied) {
			c.log(ctx).Warn("Location permission denied, using default coordinate")
		} else {
			c.log(ctx).Warn("Location resolution failed, using default coordinate", slog.Any("error", err))
		}
		coord = entity.DefaultCoordinate
	}

	c.coord = coord
	c.located = true

	return coord
}

// OnChange registers fn to be called with a snapshot after every state
// transition. The returned function unregisters it.
func (c *PaginationController) OnChange(fn func(entity.FeedState)) func() {
	c.observersMu.Lock()
	id := c.nextObserverID
	c.nextObserverID++
	c.observers[id] = fn
	c.observersMu.Unlock()

	return func() {
		c.observersMu.Lock()
		delete(c.observers, id)
		c.observersMu.Unlock()
	}
}

// Subscribe returns a channel receiving state snapshots after every
// transition. When the consumer falls behind, the oldest pending snapshot is
// dropped so the newest state is always delivered. cancel closes the channel.
func (c *PaginationController) Subscribe(buffer int) (<-chan entity.FeedState, func()) {
	if buffer < 1 {
		buffer = 1
	}

	updates := make(chan entity.FeedState, buffer)

	var (
		mu     sync.Mutex
		closed bool
	)

	unregister := c.OnChange(func(s entity.FeedState) {
		mu.Lock()
		defer mu.Unlock()

		if closed {
			return
		}

		for {
			select {
			case updates <- s:
				return
			default:
			}

			select {
			case <-updates:
			default:
			}
		}
	})

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			unregister()

			mu.Lock()
			closed = true
			close(updates)
			mu.Unlock()
		})
	}

	return updates, cancel
}

// notify hands the snapshot of transition seq to every observer once all
// earlier transitions have been delivered, so observers see states in the
// order they were applied. Observers must not call RequestNextPage.
func (c *PaginationController) notify(seq uint64, snapshot entity.FeedState) {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	for c.lastSent != seq-1 {
		c.delivered.Wait()
	}

	c.observersMu.Lock()
	observers := make([]func(entity.FeedState), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.observersMu.Unlock()

	for _, fn := range observers {
		fn(snapshot.Clone())
	}

	c.lastSent = seq
	c.delivered.Broadcast()
}
