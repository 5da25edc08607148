package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultUpstreamTimeout    = 10 * time.Second
	defaultRecommendPath      = "/stores/recommend"
	defaultBannersPath        = "/banners"
	defaultCategoriesPath     = "/categories"
	defaultBucketURL          = "mem://"
	defaultAccountKey         = "@account"
	defaultKeywordKey         = "@keyword"
	defaultMaxSessions        = 1000
	defaultSessionTTL         = 30 * time.Minute
	defaultObserverBuffer     = 8
	defaultMinRating          = 1
	defaultMaxRating          = 5
	defaultMaxCommentLength   = 1000
	defaultStubPageSize       = 10
	defaultPubSubProvider     = "noop"
	defaultWorkerPort         = 8091
	defaultDedupWindow        = 1024
	defaultShareBaseURL       = "https://storefront.local"
	defaultQRSize             = 256
	defaultErrorCorrection    = "M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Upstream is the remote storefront API that owns store listings
	Upstream *UpstreamConfig `json:"upstream" yaml:"upstream" validate:"required"`

	// Storage is the device key-value store holding the session token and search keyword
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Location is the platform location used by the CLI
	Location *LocationConfig `json:"location" yaml:"location"`

	Feed *FeedConfig `json:"feed" yaml:"feed"`

	Review *ReviewConfig `json:"review" yaml:"review"`

	// PubSub configuration for review event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Stub configuration for the local upstream stub server
	Stub *StubConfig `json:"stub" yaml:"stub"`

	// Worker configuration for the review push consumer
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Share configuration for store share codes
	Share *ShareConfig `json:"share" yaml:"share"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// UpstreamConfig defines how the listing endpoints are reached
type UpstreamConfig struct {
	BaseURL        string        `json:"baseURL" yaml:"baseURL" validate:"required,url"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	RecommendPath  string        `json:"recommendPath" yaml:"recommendPath"`
	BannersPath    string        `json:"bannersPath" yaml:"bannersPath"`
	CategoriesPath string        `json:"categoriesPath" yaml:"categoriesPath"`
}

// StorageConfig defines the device key-value store
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. "file:///var/lib/storefront" or "mem://"
	BucketURL  string `json:"bucketURL" yaml:"bucketURL"`
	AccountKey string `json:"accountKey" yaml:"accountKey"`
	KeywordKey string `json:"keywordKey" yaml:"keywordKey"`
}

// LocationConfig describes a fixed platform location
type LocationConfig struct {
	PermissionGranted bool    `json:"permissionGranted" yaml:"permissionGranted"`
	Latitude          float64 `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude         float64 `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
}

// FeedConfig defines limits for feed sessions
type FeedConfig struct {
	MaxSessions    int           `json:"maxSessions" yaml:"maxSessions"`
	SessionTTL     time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	ObserverBuffer int           `json:"observerBuffer" yaml:"observerBuffer"`
}

// ReviewConfig defines review submission rules
type ReviewConfig struct {
	MinRating        int `json:"minRating" yaml:"minRating"`
	MaxRating        int `json:"maxRating" yaml:"maxRating"`
	MaxCommentLength int `json:"maxCommentLength" yaml:"maxCommentLength"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type; empty means noop
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=noop local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// StubConfig defines the upstream stub server
type StubConfig struct {
	Port        int    `json:"port" yaml:"port"`
	FixturePath string `json:"fixturePath" yaml:"fixturePath"`
	PageSize    int    `json:"pageSize" yaml:"pageSize"`
	SigningKey  string `json:"signingKey" yaml:"signingKey"`
}

// WorkerConfig defines the review push consumer
type WorkerConfig struct {
	Port int `json:"port" yaml:"port" validate:"gte=0,lte=65535"`

	// PushAudience is the audience expected in Pub/Sub push tokens; empty means the request URL
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// DedupWindow is how many recent review IDs are remembered to drop redeliveries
	DedupWindow int `json:"dedupWindow" yaml:"dedupWindow"`
}

// ShareConfig defines the QR codes that link to a store page
type ShareConfig struct {
	BaseURL              string `json:"baseURL" yaml:"baseURL" validate:"omitempty,url"`
	QRSize               int    `json:"qrSize" yaml:"qrSize" validate:"gte=0,lte=2048"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel" validate:"omitempty,oneof=L M Q H"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML, e.g. UPSTREAM_BASEURL -> upstream.baseURL
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so that consumers never see nil sections.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Upstream == nil {
		c.Upstream = &UpstreamConfig{}
	}
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = defaultUpstreamTimeout
	}
	c.Upstream.RecommendPath = withDefault(c.Upstream.RecommendPath, defaultRecommendPath)
	c.Upstream.BannersPath = withDefault(c.Upstream.BannersPath, defaultBannersPath)
	c.Upstream.CategoriesPath = withDefault(c.Upstream.CategoriesPath, defaultCategoriesPath)

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	c.Storage.BucketURL = withDefault(c.Storage.BucketURL, defaultBucketURL)
	c.Storage.AccountKey = withDefault(c.Storage.AccountKey, defaultAccountKey)
	c.Storage.KeywordKey = withDefault(c.Storage.KeywordKey, defaultKeywordKey)

	if c.Location == nil {
		c.Location = &LocationConfig{}
	}

	if c.Feed == nil {
		c.Feed = &FeedConfig{}
	}
	if c.Feed.MaxSessions <= 0 {
		c.Feed.MaxSessions = defaultMaxSessions
	}
	if c.Feed.SessionTTL <= 0 {
		c.Feed.SessionTTL = defaultSessionTTL
	}
	if c.Feed.ObserverBuffer <= 0 {
		c.Feed.ObserverBuffer = defaultObserverBuffer
	}

	if c.Review == nil {
		c.Review = &ReviewConfig{}
	}
	if c.Review.MinRating <= 0 {
		c.Review.MinRating = defaultMinRating
	}
	if c.Review.MaxRating <= 0 {
		c.Review.MaxRating = defaultMaxRating
	}
	if c.Review.MaxCommentLength <= 0 {
		c.Review.MaxCommentLength = defaultMaxCommentLength
	}

	if c.PubSub == nil {
		c.PubSub = &PubSubConfig{}
	}
	c.PubSub.Provider = withDefault(c.PubSub.Provider, defaultPubSubProvider)

	if c.Stub == nil {
		c.Stub = &StubConfig{}
	}
	if c.Stub.PageSize <= 0 {
		c.Stub.PageSize = defaultStubPageSize
	}

	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port <= 0 {
		c.Worker.Port = defaultWorkerPort
	}
	if c.Worker.DedupWindow <= 0 {
		c.Worker.DedupWindow = defaultDedupWindow
	}

	if c.Share == nil {
		c.Share = &ShareConfig{}
	}
	c.Share.BaseURL = withDefault(c.Share.BaseURL, defaultShareBaseURL)
	if c.Share.QRSize <= 0 {
		c.Share.QRSize = defaultQRSize
	}
	c.Share.ErrorCorrectionLevel = withDefault(c.Share.ErrorCorrectionLevel, defaultErrorCorrection)
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
