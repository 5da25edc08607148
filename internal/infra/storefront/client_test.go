package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClientWithHTTP(&config.UpstreamConfig{BaseURL: server.URL}, &http.Client{Timeout: time.Second}, nil)
}

func TestClient_FetchPage_SendsQueryAndToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stores/recommend", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25.033", r.URL.Query().Get("lat"))
		assert.Equal(t, "121.5654", r.URL.Query().Get("lon"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"store_id":"s1","name":"Pho 24","rating_value":4.5,"average_price":80000,"distance":120.5,"image_ref":"pho.jpg","is_favorite":true}]}`))
	})

	page, err := client.FetchPage(context.Background(), "tok", 2, entity.Coordinate{Latitude: 25.033, Longitude: 121.5654})
	require.NoError(t, err)
	assert.False(t, page.NoMore)
	require.Len(t, page.Stores, 1)
	assert.Equal(t, entity.StoreRecord{
		StoreID:      "s1",
		Name:         "Pho 24",
		RatingValue:  4.5,
		AveragePrice: 80000,
		Distance:     120.5,
		ImageRef:     "pho.jpg",
		IsFavorite:   true,
	}, page.Stores[0])
}

func TestClient_FetchPage_Envelope(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantNoMore bool
	}{
		{name: "null data ends the feed", body: `{"data":null}`, wantNoMore: true},
		{name: "missing data ends the feed", body: `{}`, wantNoMore: true},
		{name: "empty array is an empty page", body: `{"data":[]}`, wantNoMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			page, err := client.FetchPage(context.Background(), "tok", 1, entity.DefaultCoordinate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNoMore, page.NoMore)
			assert.Empty(t, page.Stores)
		})
	}
}

func TestClient_FetchPage_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind entity.ErrorKind
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantKind: entity.ErrorKindUnauthenticated},
		{name: "forbidden", status: http.StatusForbidden, wantKind: entity.ErrorKindUnauthenticated},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantKind: entity.ErrorKindServer},
		{name: "undecodable body", status: http.StatusOK, body: "<html>", wantKind: entity.ErrorKindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.FetchPage(context.Background(), "tok", 1, entity.DefaultCoordinate)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
		})
	}
}

func TestClient_FetchPage_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClientWithHTTP(&config.UpstreamConfig{BaseURL: baseURL}, &http.Client{Timeout: time.Second}, nil)

	_, err := client.FetchPage(context.Background(), "tok", 1, entity.DefaultCoordinate)
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
}

func TestClient_FetchBanners(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/banners", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"store_id":"s1","img":"b1.png"},{"store_id":"s2","img":"b2.png"}]}`))
	})

	banners, err := client.FetchBanners(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, []entity.Banner{{StoreID: "s1", ImageRef: "b1.png"}, {StoreID: "s2", ImageRef: "b2.png"}}, banners)
}

func TestClient_FetchCategories_NullIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":null}`))
	})

	categories, err := client.FetchCategories(context.Background(), "tok")
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestClient_FetchCategories_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	categories, err := client.FetchCategories(context.Background(), "tok")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.Nil(t, categories)
}
