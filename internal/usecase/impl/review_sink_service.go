package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultDedupWindow = 1024

type reviewSinkService struct {
	minRating int
	maxRating int
	logger    *slog.Logger

	mu     sync.Mutex
	seen   map[string]struct{}
	order  []string
	next   int
	window int
}

// ReviewSinkServiceParams holds dependencies for ReviewSinkService, injected by Fx.
type ReviewSinkServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewReviewSinkService creates the consumer side of review events
func NewReviewSinkService(params ReviewSinkServiceParams) usecase.ReviewSinkUsecase {
	minRating, maxRating, window := 1, 5, defaultDedupWindow
	if reviewCfg := params.Config.Review; reviewCfg != nil {
		if reviewCfg.MinRating > 0 {
			minRating = reviewCfg.MinRating
		}
		if reviewCfg.MaxRating > 0 {
			maxRating = reviewCfg.MaxRating
		}
	}
	if workerCfg := params.Config.Worker; workerCfg != nil && workerCfg.DedupWindow > 0 {
		window = workerCfg.DedupWindow
	}

	return &reviewSinkService{
		minRating: minRating,
		maxRating: maxRating,
		logger:    params.Logger,
		seen:      make(map[string]struct{}, window),
		order:     make([]string, window),
		window:    window,
	}
}

// ReceiveReview checks and logs a delivered review
func (s *reviewSinkService) ReceiveReview(ctx context.Context, event *service.ReviewSubmittedEvent) (bool, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if err := s.check(event); err != nil {
		logger.Warn("Dropping malformed review event", slog.String("review_id", event.ReviewID), slog.Any("error", err))

		return false, err
	}

	if !s.remember(event.ReviewID) {
		logger.Debug("Review event redelivered", slog.String("review_id", event.ReviewID))

		return true, nil
	}

	logger.Info("Review received",
		slog.String("review_id", event.ReviewID),
		slog.String("store_id", event.StoreID),
		slog.Int("rating", event.Rating),
		slog.Int("comment_length", len([]rune(event.Comment))),
		slog.String("submitted_at", event.SubmittedAt),
	)

	return false, nil
}

func (s *reviewSinkService) check(event *service.ReviewSubmittedEvent) error {
	if _, err := uuid.Parse(event.ReviewID); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("review_id must be a UUID")
	}
	if strings.TrimSpace(event.StoreID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("store_id is required")
	}
	if event.Rating < s.minRating || event.Rating > s.maxRating {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("rating must be between %d and %d", s.minRating, s.maxRating),
		)
	}
	if _, err := time.Parse(time.RFC3339, event.SubmittedAt); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("submitted_at must be RFC3339")
	}

	return nil
}

// remember records id in a fixed-size ring and reports whether it was new.
func (s *reviewSinkService) remember(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[id]; ok {
		return false
	}

	if evicted := s.order[s.next]; evicted != "" {
		delete(s.seen, evicted)
	}
	s.order[s.next] = id
	s.next = (s.next + 1) % s.window
	s.seen[id] = struct{}{}

	return true
}
