package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMaxFeedSessions = 1000
	defaultFeedSessionTTL  = 30 * time.Minute
	defaultObserverBuffer  = 8
)

// feedSession is one screen activation. It is discarded, never persisted.
type feedSession struct {
	controller *PaginationController
	lastSeen   time.Time
	cancels    map[int]func()
	nextSubID  int
}

type feedService struct {
	locators       service.LocationResolverFactory
	credentials    service.CredentialAccessor
	fetcher        service.ListingFetcher
	maxSessions    int
	ttl            time.Duration
	observerBuffer int
	logger         *slog.Logger
	now            func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*feedSession

	stop chan struct{}
	done chan struct{}
}

// FeedServiceParams holds dependencies for FeedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	Lc          fx.Lifecycle
	Locators    service.LocationResolverFactory
	Credentials service.CredentialAccessor
	Fetcher     service.ListingFetcher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewFeedService creates the feed session registry and registers its janitor
// with the application lifecycle.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	srv := newFeedService(params)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go srv.runJanitor()

			return nil
		},
		OnStop: srv.shutdown,
	})

	return srv
}

func newFeedService(params FeedServiceParams) *feedService {
	maxSessions, ttl, buffer := defaultMaxFeedSessions, defaultFeedSessionTTL, defaultObserverBuffer
	if feedCfg := params.Config.Feed; feedCfg != nil {
		if feedCfg.MaxSessions > 0 {
			maxSessions = feedCfg.MaxSessions
		}
		if feedCfg.SessionTTL > 0 {
			ttl = feedCfg.SessionTTL
		}
		if feedCfg.ObserverBuffer > 0 {
			buffer = feedCfg.ObserverBuffer
		}
	}

	return &feedService{
		locators:       params.Locators,
		credentials:    params.Credentials,
		fetcher:        params.Fetcher,
		maxSessions:    maxSessions,
		ttl:            ttl,
		observerBuffer: buffer,
		logger:         params.Logger,
		now:            time.Now,
		sessions:       make(map[uuid.UUID]*feedSession),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}
}

func (s *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// OpenFeed creates a feed session for a screen activation
func (s *feedService) OpenFeed(ctx context.Context, input *usecase.OpenFeedInput) (*usecase.FeedSnapshot, error) {
	controller := NewPaginationController(PaginationControllerParams{
		Locator:     s.locators.ForDevice(input.Location.PermissionGranted, input.Location.Position),
		Credentials: s.credentials,
		Fetcher:     s.fetcher,
		Logger:      s.logger,
	})

	id := uuid.New()

	s.mu.Lock()
	if len(s.sessions) >= s.maxSessions {
		s.evictExpiredLocked()
	}
	if len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		s.log(ctx).Warn("Feed session limit reached", slog.Int("max_sessions", s.maxSessions))

		return nil, domainerrors.ErrFeedLimitReached
	}
	s.sessions[id] = &feedSession{
		controller: controller,
		lastSeen:   s.now(),
		cancels:    make(map[int]func()),
	}
	s.mu.Unlock()

	s.log(ctx).Info("Feed session opened",
		slog.String("feed_id", id.String()),
		slog.Bool("permission_granted", input.Location.PermissionGranted),
		slog.Bool("has_position", input.Location.Position != nil),
	)

	if input.Prefetch {
		controller.RequestNextPage(context.WithoutCancel(ctx))
	}

	return &usecase.FeedSnapshot{ID: id, State: controller.State()}, nil
}

// RequestNextPage advances the feed by one page
func (s *feedService) RequestNextPage(ctx context.Context, id uuid.UUID) (*usecase.FeedSnapshot, bool, error) {
	controller, err := s.touch(id)
	if err != nil {
		return nil, false, err
	}

	// An in-flight fetch runs to completion even if the caller goes away.
	accepted := controller.RequestNextPage(context.WithoutCancel(ctx))

	return &usecase.FeedSnapshot{ID: id, State: controller.State()}, accepted, nil
}

// GetFeed returns the current state of a feed session
func (s *feedService) GetFeed(ctx context.Context, id uuid.UUID) (*usecase.FeedSnapshot, error) {
	controller, err := s.touch(id)
	if err != nil {
		return nil, err
	}

	return &usecase.FeedSnapshot{ID: id, State: controller.State()}, nil
}

// Subscribe streams state transitions of a feed session
func (s *feedService) Subscribe(ctx context.Context, id uuid.UUID) (<-chan entity.FeedState, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, nil, domainerrors.ErrFeedNotFound
	}
	session.lastSeen = s.now()

	updates, cancelSub := session.controller.Subscribe(s.observerBuffer)

	subID := session.nextSubID
	session.nextSubID++
	session.cancels[subID] = cancelSub

	cancel := func() {
		s.mu.Lock()
		delete(session.cancels, subID)
		s.mu.Unlock()

		cancelSub()
	}

	return updates, cancel, nil
}

// CloseFeed discards a feed session
func (s *feedService) CloseFeed(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
		session.closeSubscriptions()
	}
	s.mu.Unlock()

	if !ok {
		return domainerrors.ErrFeedNotFound
	}

	s.log(ctx).Info("Feed session closed", slog.String("feed_id", id.String()))

	return nil
}

func (s *feedService) touch(id uuid.UUID) (*PaginationController, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domainerrors.ErrFeedNotFound
	}
	session.lastSeen = s.now()

	return session.controller, nil
}

// evictExpiredLocked drops sessions idle for longer than the TTL. s.mu must be held.
func (s *feedService) evictExpiredLocked() int {
	cutoff := s.now().Add(-s.ttl)
	evicted := 0

	for id, session := range s.sessions {
		if session.lastSeen.After(cutoff) {
			continue
		}
		delete(s.sessions, id)
		session.closeSubscriptions()
		evicted++
	}

	return evicted
}

func (s *feedService) runJanitor() {
	defer close(s.done)

	interval := s.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			evicted := s.evictExpiredLocked()
			remaining := len(s.sessions)
			s.mu.Unlock()

			if evicted > 0 {
				s.logger.Debug("Evicted idle feed sessions", slog.Int("evicted", evicted), slog.Int("remaining", remaining))
			}
		}
	}
}

func (s *feedService) shutdown(ctx context.Context) error {
	close(s.stop)

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	s.mu.Lock()
	for id, session := range s.sessions {
		delete(s.sessions, id)
		session.closeSubscriptions()
	}
	s.mu.Unlock()

	return nil
}

// closeSubscriptions closes every subscription of the session. The registry
// lock must be held.
func (fs *feedSession) closeSubscriptions() {
	for id, cancel := range fs.cancels {
		delete(fs.cancels, id)
		cancel()
	}
}
