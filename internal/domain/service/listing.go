package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Page is one page of the recommendation listing.
// A page with NoMore set is the end-of-data sentinel and carries no stores;
// an empty Stores slice without NoMore is a legitimately empty page.
type Page struct {
	Stores []entity.StoreRecord
	NoMore bool
}

// NoMorePages is the sentinel page returned when the listing has no further results.
var NoMorePages = Page{NoMore: true}

// ListingFetcher performs one page request against the recommendation endpoint.
type ListingFetcher interface {
	// FetchPage requests the 1-based page for the coordinate. Transport failures
	// are reported as ErrNetwork, endpoint failures as ErrServer and rejected
	// tokens as ErrUnauthenticated.
	FetchPage(ctx context.Context, token string, page int, coord entity.Coordinate) (Page, error)
}

// BannerSource loads the banner carousel.
type BannerSource interface {
	FetchBanners(ctx context.Context, token string) ([]entity.Banner, error)
}

// CategorySource loads the category list.
type CategorySource interface {
	FetchCategories(ctx context.Context, token string) ([]entity.Category, error)
}
