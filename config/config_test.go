package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
env:
  serviceName: storefront-test
http:
  port: 8081
upstream:
  baseURL: http://localhost:8090
feed:
  sessionTTL: 5m
`

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestNew_AppliesDefaults(t *testing.T) {
	writeConfig(t, minimalConfig)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "storefront-test", cfg.Env.ServiceName)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)

	assert.Equal(t, "http://localhost:8090", cfg.Upstream.BaseURL)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Upstream.Timeout)
	assert.Equal(t, defaultRecommendPath, cfg.Upstream.RecommendPath)
	assert.Equal(t, defaultBannersPath, cfg.Upstream.BannersPath)
	assert.Equal(t, defaultCategoriesPath, cfg.Upstream.CategoriesPath)

	assert.Equal(t, defaultBucketURL, cfg.Storage.BucketURL)
	assert.Equal(t, defaultAccountKey, cfg.Storage.AccountKey)
	assert.Equal(t, defaultKeywordKey, cfg.Storage.KeywordKey)

	assert.Equal(t, 5*time.Minute, cfg.Feed.SessionTTL)
	assert.Equal(t, defaultMaxSessions, cfg.Feed.MaxSessions)
	assert.Equal(t, defaultObserverBuffer, cfg.Feed.ObserverBuffer)

	assert.Equal(t, defaultMinRating, cfg.Review.MinRating)
	assert.Equal(t, defaultMaxRating, cfg.Review.MaxRating)
	assert.Equal(t, defaultPubSubProvider, cfg.PubSub.Provider)
	assert.Equal(t, defaultStubPageSize, cfg.Stub.PageSize)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.Equal(t, defaultDedupWindow, cfg.Worker.DedupWindow)
	assert.Equal(t, defaultQRSize, cfg.Share.QRSize)
	assert.Equal(t, defaultErrorCorrection, cfg.Share.ErrorCorrectionLevel)

	require.NotNil(t, cfg.Location)
	assert.False(t, cfg.Location.PermissionGranted)
}

func TestNew_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, minimalConfig)
	t.Setenv("UPSTREAM_BASEURL", "http://upstream.internal:9000")
	t.Setenv("FEED_SESSIONTTL", "90s")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "http://upstream.internal:9000", cfg.Upstream.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.Feed.SessionTTL)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing upstream url",
			content: "http:\n  port: 8080\n",
		},
		{
			name:    "unknown pubsub provider",
			content: "upstream:\n  baseURL: http://localhost:8090\npubsub:\n  provider: kafka\n",
		},
		{
			name:    "unknown error correction level",
			content: "upstream:\n  baseURL: http://localhost:8090\nshare:\n  errorCorrectionLevel: X\n",
		},
		{
			name:    "latitude out of range",
			content: "upstream:\n  baseURL: http://localhost:8090\nlocation:\n  latitude: 120\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.content)

			_, err := New()
			assert.Error(t, err)
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()
	assert.Error(t, err)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Upstream: &UpstreamConfig{Timeout: 3 * time.Second, BannersPath: "/v2/banners"},
		Stub:     &StubConfig{PageSize: 4},
		PubSub:   &PubSubConfig{Provider: "local"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "/v2/banners", cfg.Upstream.BannersPath)
	assert.Equal(t, defaultRecommendPath, cfg.Upstream.RecommendPath)
	assert.Equal(t, 4, cfg.Stub.PageSize)
	assert.Equal(t, "local", cfg.PubSub.Provider)
}
