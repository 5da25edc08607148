package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// BannerList is the banner collection after a load attempt
type BannerList struct {
	Banners   []entity.Banner  `json:"banners"`
	LastError entity.ErrorKind `json:"last_error,omitempty"`
}

// CategoryList is the category collection after a load attempt
type CategoryList struct {
	Categories []entity.Category `json:"categories"`
	LastError  entity.ErrorKind  `json:"last_error,omitempty"`
}

// CatalogUsecase loads the non-paginated lists shown above the feed
type CatalogUsecase interface {
	LoadBanners(ctx context.Context) *BannerList
	LoadCategories(ctx context.Context) *CategoryList

	// SelectCategory remembers the category label as the keyword for the search screen
	SelectCategory(ctx context.Context, label string) error
}
