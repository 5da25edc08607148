package stub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFixture = `
stores:
  - store_id: "a"
    name: "Alpha"
    rating_value: 4.5
    average_price: 100
    latitude: 10.7769
    longitude: 106.7009
  - store_id: "b"
    name: "Bravo"
    latitude: 10.7800
    longitude: 106.7009
  - store_id: "c"
    name: "Charlie"
    latitude: 10.8000
    longitude: 106.7009
banners:
  - store_id: "a"
    img: "a.png"
categories:
  - concern_id: 7
    short_label: "Tea"
    label: "Milk tea"
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newTestStub(t *testing.T) (*httptest.Server, *config.Config) {
	t.Helper()

	fixture, err := LoadFixture(writeFixture(t, testFixture))
	require.NoError(t, err)

	cfg := &config.Config{
		Upstream: &config.UpstreamConfig{},
		Stub:     &config.StubConfig{PageSize: 2, SigningKey: "test-key"},
	}
	cfg.ApplyDefaults()

	server := httptest.NewServer(NewEcho(cfg, fixture, slog.Default()))
	t.Cleanup(server.Close)

	cfg.Upstream.BaseURL = server.URL

	return server, cfg
}

func issueToken(t *testing.T, baseURL string) string {
	t.Helper()

	resp, err := http.Post(baseURL+"/auth/token", "application/json", strings.NewReader(`{"user":"tester"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)

	return body.Token
}

func TestLoadFixture(t *testing.T) {
	fixture, err := LoadFixture(writeFixture(t, testFixture))
	require.NoError(t, err)

	require.Len(t, fixture.Stores, 3)
	assert.Equal(t, "Alpha", fixture.Stores[0].Name)
	assert.Equal(t, 4.5, fixture.Stores[0].RatingValue)
	assert.Equal(t, []entity.Banner{{StoreID: "a", ImageRef: "a.png"}}, fixture.BannerList())
	assert.Equal(t, []entity.Category{{ConcernID: 7, ShortLabel: "Tea", Label: "Milk tea"}}, fixture.CategoryList())
}

func TestLoadFixture_InvalidPosition(t *testing.T) {
	_, err := LoadFixture(writeFixture(t, "stores:\n  - store_id: \"x\"\n    latitude: 95\n    longitude: 0\n"))
	assert.Error(t, err)
}

func TestFixture_PageDistances(t *testing.T) {
	fixture, err := LoadFixture(writeFixture(t, testFixture))
	require.NoError(t, err)

	origin := entity.Coordinate{Latitude: 10.7769, Longitude: 106.7009}

	first := fixture.Page(1, 2, origin)
	require.Len(t, first, 2)
	assert.InDelta(t, 0, first[0].Distance, 0.001)
	// 0.0031 degrees of latitude is roughly 345 meters.
	assert.InDelta(t, 345, first[1].Distance, 5)

	unknown := fixture.Page(1, 2, entity.DefaultCoordinate)
	assert.Zero(t, unknown[1].Distance)

	assert.Len(t, fixture.Page(2, 2, origin), 1)
	assert.Nil(t, fixture.Page(3, 2, origin))
	assert.Nil(t, fixture.Page(0, 2, origin))
}

func TestStub_RequiresToken(t *testing.T) {
	server, _ := newTestStub(t)

	resp, err := http.Get(server.URL + "/stores/recommend?page=1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/banners", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+NewTokenIssuer("other-key").mustIssue(t, "x"))

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStub_ServesClientContract(t *testing.T) {
	server, cfg := newTestStub(t)
	token := issueToken(t, server.URL)
	ctx := context.Background()
	origin := entity.Coordinate{Latitude: 10.7769, Longitude: 106.7009}

	client := storefront.NewClientWithHTTP(cfg.Upstream, &http.Client{Timeout: time.Second}, nil)

	first, err := client.FetchPage(ctx, token, 1, origin)
	require.NoError(t, err)
	assert.False(t, first.NoMore)
	require.Len(t, first.Stores, 2)
	assert.Equal(t, "a", first.Stores[0].StoreID)

	second, err := client.FetchPage(ctx, token, 2, origin)
	require.NoError(t, err)
	require.Len(t, second.Stores, 1)
	assert.Equal(t, "c", second.Stores[0].StoreID)

	third, err := client.FetchPage(ctx, token, 3, origin)
	require.NoError(t, err)
	assert.True(t, third.NoMore)

	banners, err := client.FetchBanners(ctx, token)
	require.NoError(t, err)
	assert.Len(t, banners, 1)

	categories, err := client.FetchCategories(ctx, token)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	_, err = client.FetchPage(ctx, "not-a-token", 1, origin)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestTokenIssuer_Expiry(t *testing.T) {
	issuer := NewTokenIssuer("k")
	token := issuer.mustIssue(t, "tester")

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "tester", subject)

	issuer.now = func() time.Time { return time.Now().Add(tokenTTL + time.Hour) }
	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func (i *TokenIssuer) mustIssue(t *testing.T, subject string) string {
	t.Helper()

	token, err := i.Issue(subject)
	require.NoError(t, err)

	return token
}
