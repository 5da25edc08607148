package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// FetchFunc performs the single remote call behind a ListLoader.
type FetchFunc[T any] func(ctx context.Context, token string) ([]T, error)

// ListLoader owns a non-paginated collection that every Load fully replaces.
// A failed load clears the collection instead of leaving stale items behind.
type ListLoader[T any] struct {
	name        string
	credentials service.CredentialAccessor
	fetch       FetchFunc[T]
	logger      *slog.Logger

	mu        sync.RWMutex
	items     []T
	lastError entity.ErrorKind
}

// NewListLoader creates a loader; name is only used in logs.
func NewListLoader[T any](name string, credentials service.CredentialAccessor, fetch FetchFunc[T], logger *slog.Logger) *ListLoader[T] {
	if logger == nil {
		logger = slog.Default()
	}

	return &ListLoader[T]{
		name:        name,
		credentials: credentials,
		fetch:       fetch,
		logger:      logger,
		items:       []T{},
	}
}

// Load makes one attempt to refresh the collection and returns its new
// contents together with the failure kind of this attempt.
func (l *ListLoader[T]) Load(ctx context.Context) ([]T, entity.ErrorKind) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, l.logger).With(slog.String("list", l.name))

	token, err := l.credentials.GetToken(ctx)
	if err != nil {
		logger.Warn("Session token unavailable, clearing list", slog.Any("error", err))

		return l.replace(nil, entity.ErrorKindUnauthenticated)
	}

	items, err := l.fetch(ctx, token)
	if err != nil {
		kind := domainerrors.KindOf(err)
		logger.Warn("Failed to load list, clearing it", slog.String("kind", string(kind)), slog.Any("error", err))

		return l.replace(nil, kind)
	}

	logger.Debug("List loaded", slog.Int("items", len(items)))

	return l.replace(items, entity.ErrorKindNone)
}

// Items returns a copy of the current collection.
func (l *ListLoader[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, len(l.items))
	copy(out, l.items)

	return out
}

// LastError returns the failure kind of the most recent load.
func (l *ListLoader[T]) LastError() entity.ErrorKind {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.lastError
}

func (l *ListLoader[T]) replace(items []T, kind entity.ErrorKind) ([]T, entity.ErrorKind) {
	next := make([]T, len(items))
	copy(next, items)

	l.mu.Lock()
	l.items = next
	l.lastError = kind
	l.mu.Unlock()

	out := make([]T, len(next))
	copy(out, next)

	return out, kind
}
