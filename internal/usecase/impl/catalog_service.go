package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// catalogService builds a fresh pair of loaders for every screen load, so one
// caller's failure or token never leaks into another caller's lists.
type catalogService struct {
	credentials   service.CredentialAccessor
	fetchBanners  FetchFunc[entity.Banner]
	fetchCategory FetchFunc[entity.Category]
	store         service.KeyValueStore
	keywordKey    string
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Credentials    service.CredentialAccessor
	BannerSource   service.BannerSource
	CategorySource service.CategorySource
	Store          service.KeyValueStore
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCatalogService creates the banner and category use case
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	keywordKey := "@keyword"
	if params.Config.Storage != nil && params.Config.Storage.KeywordKey != "" {
		keywordKey = params.Config.Storage.KeywordKey
	}

	return &catalogService{
		credentials:   params.Credentials,
		fetchBanners:  params.BannerSource.FetchBanners,
		fetchCategory: params.CategorySource.FetchCategories,
		store:         params.Store,
		keywordKey:    keywordKey,
		logger:        params.Logger,
	}
}

// LoadBanners refreshes the banner carousel
func (s *catalogService) LoadBanners(ctx context.Context) *usecase.BannerList {
	banners, kind := NewListLoader("banners", s.credentials, s.fetchBanners, s.logger).Load(ctx)

	return &usecase.BannerList{
		Banners:   banners,
		LastError: kind,
	}
}

// LoadCategories refreshes the category list
func (s *catalogService) LoadCategories(ctx context.Context) *usecase.CategoryList {
	categories, kind := NewListLoader("categories", s.credentials, s.fetchCategory, s.logger).Load(ctx)

	return &usecase.CategoryList{
		Categories: categories,
		LastError:  kind,
	}
}

// SelectCategory stores the chosen label for the caller's session so the
// search screen can pick it up
func (s *catalogService) SelectCategory(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return domainerrors.ErrValidationFailed.WithDetails("category label is required")
	}

	token, err := s.credentials.GetToken(ctx)
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, keywordKeyFor(s.keywordKey, token), []byte(label)); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to store search keyword", slog.Any("error", err))

		return errors.Wrap(err, "failed to store search keyword")
	}

	return nil
}

// keywordKeyFor scopes the keyword key to one session, e.g. "@keyword:3f2a...".
// Only a digest of the token ends up in the store.
func keywordKeyFor(base, token string) string {
	sum := sha256.Sum256([]byte(token))

	return base + ":" + hex.EncodeToString(sum[:8])
}
