// Package storefront is the HTTP client for the remote storefront API.
package storefront

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

const maxErrorBodyBytes = 512

// envelope is the response body shared by all listing endpoints.
// A null or missing data field means there is nothing (more) to return.
type envelope[T any] struct {
	Data *[]T `json:"data"`
}

// Client implements ListingFetcher, BannerSource and CategorySource
type Client struct {
	httpClient     *http.Client
	baseURL        string
	recommendPath  string
	bannersPath    string
	categoriesPath string
	logger         *slog.Logger
}

// ClientParams holds dependencies for the storefront client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a client for the configured upstream
func NewClient(params ClientParams) *Client {
	return NewClientWithHTTP(params.Config.Upstream, &http.Client{Timeout: params.Config.Upstream.Timeout}, params.Logger)
}

// NewClientWithHTTP creates a client using httpClient for transport
func NewClientWithHTTP(cfg *config.UpstreamConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient.Timeout == 0 {
		httpClient.Timeout = 10 * time.Second
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		recommendPath:  pathOrDefault(cfg.RecommendPath, "/stores/recommend"),
		bannersPath:    pathOrDefault(cfg.BannersPath, "/banners"),
		categoriesPath: pathOrDefault(cfg.CategoriesPath, "/categories"),
		logger:         logger,
	}
}

func pathOrDefault(path, fallback string) string {
	if path == "" {
		return fallback
	}

	return path
}

// FetchPage requests one page of recommended stores around coord
func (c *Client) FetchPage(ctx context.Context, token string, page int, coord entity.Coordinate) (service.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))

	stores, err := get[entity.StoreRecord](ctx, c, c.recommendPath, query, token)
	if err != nil {
		return service.Page{}, err
	}
	if stores == nil {
		return service.NoMorePages, nil
	}

	return service.Page{Stores: *stores}, nil
}

// FetchBanners loads the banner carousel; null data is an empty carousel
func (c *Client) FetchBanners(ctx context.Context, token string) ([]entity.Banner, error) {
	banners, err := get[entity.Banner](ctx, c, c.bannersPath, nil, token)
	if err != nil {
		return nil, err
	}
	if banners == nil {
		return []entity.Banner{}, nil
	}

	return *banners, nil
}

// FetchCategories loads the category list; null data is an empty list
func (c *Client) FetchCategories(ctx context.Context, token string) ([]entity.Category, error) {
	categories, err := get[entity.Category](ctx, c, c.categoriesPath, nil, token)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []entity.Category{}, nil
	}

	return *categories, nil
}

// get performs an authenticated GET and decodes the data envelope. A nil
// result means the endpoint answered with null data.
func get[T any](ctx context.Context, c *Client, path string, query url.Values, token string) (*[]T, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domainerrors.ErrServer.WithDetails("failed to create request: " + err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Storefront request failed", slog.String("path", path), slog.Any("error", err))

		return nil, domainerrors.ErrNetwork.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	logger.Debug("Storefront request completed",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(started)),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, domainerrors.ErrUnauthenticated.WithDetails("storefront rejected the session token")
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, domainerrors.ErrServer.WithDetails("unexpected status " + strconv.Itoa(resp.StatusCode) + ": " + strings.TrimSpace(string(body)))
	}

	var body envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domainerrors.ErrServer.WithDetails("failed to decode response: " + err.Error())
	}

	return body.Data, nil
}
