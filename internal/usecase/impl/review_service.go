package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type reviewService struct {
	publisher        service.EventPublisher
	minRating        int
	maxRating        int
	maxCommentLength int
	logger           *slog.Logger
	now              func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	minRating, maxRating, maxComment := 1, 5, 1000
	if reviewCfg := params.Config.Review; reviewCfg != nil {
		if reviewCfg.MinRating > 0 {
			minRating = reviewCfg.MinRating
		}
		if reviewCfg.MaxRating > 0 {
			maxRating = reviewCfg.MaxRating
		}
		if reviewCfg.MaxCommentLength > 0 {
			maxComment = reviewCfg.MaxCommentLength
		}
	}

	return &reviewService{
		publisher:        params.Publisher,
		minRating:        minRating,
		maxRating:        maxRating,
		maxCommentLength: maxComment,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// SubmitReview validates a review and publishes it. Reviews are not stored here.
func (s *reviewService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if err := s.validate(input); err != nil {
		logger.Debug("Review rejected", slog.String("store_id", input.StoreID), slog.Any("error", err))

		return nil, err
	}

	review := &entity.Review{
		ID:          uuid.New(),
		StoreID:     strings.TrimSpace(input.StoreID),
		Rating:      input.Rating,
		Comment:     strings.TrimSpace(input.Comment),
		SubmittedAt: s.now().UTC(),
	}

	event := &service.ReviewSubmittedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		ReviewID:    review.ID.String(),
		StoreID:     review.StoreID,
		Rating:      review.Rating,
		Comment:     review.Comment,
		SubmittedAt: review.SubmittedAt.Format(time.RFC3339),
	}

	if err := s.publisher.PublishReviewEvent(ctx, event); err != nil {
		logger.Error("Failed to publish review", slog.String("review_id", event.ReviewID), slog.Any("error", err))

		return nil, domainerrors.ErrReviewPublishFailed
	}

	logger.Info("Review submitted", slog.String("review_id", event.ReviewID), slog.String("store_id", review.StoreID))

	return review, nil
}

func (s *reviewService) validate(input *usecase.SubmitReviewInput) error {
	if strings.TrimSpace(input.StoreID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("store id is required")
	}

	if input.Rating < s.minRating || input.Rating > s.maxRating {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("rating must be between %d and %d", s.minRating, s.maxRating),
		)
	}

	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return domainerrors.ErrValidationFailed.WithDetails("comment is required")
	}
	if utf8.RuneCountInString(comment) > s.maxCommentLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("comment must be at most %d characters", s.maxCommentLength),
		)
	}

	return nil
}
