// Package qrcode renders the share codes that open a store page.
package qrcode

import (
	"net/url"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const (
	storePathPrefix = "/stores/"
	maxStoreIDLen   = 128
)

type shareCodeService struct {
	baseURL *url.URL
	size    int
	level   qrcode.RecoveryLevel
}

// ServiceParams holds dependencies for the share code service, injected by Fx.
type ServiceParams struct {
	fx.In

	Config *config.Config
}

// NewShareCodeService creates the service from the share section of the config
func NewShareCodeService(params ServiceParams) (service.ShareCodeService, error) {
	cfg := params.Config.Share
	if cfg == nil {
		cfg = &config.ShareConfig{}
	}

	return New(cfg.BaseURL, cfg.QRSize, cfg.ErrorCorrectionLevel)
}

// New creates a share code service linking to pages under baseURL
func New(baseURL string, size int, errorCorrectionLevel string) (service.ShareCodeService, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("invalid share base URL %q", baseURL)
	}

	if size <= 0 {
		size = 256
	}

	return &shareCodeService{
		baseURL: base,
		size:    size,
		level:   recoveryLevel(errorCorrectionLevel),
	}, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// StoreQR encodes the store page link as a PNG
func (s *shareCodeService) StoreQR(storeID string) ([]byte, error) {
	if err := checkStoreID(storeID); err != nil {
		return nil, err
	}

	code, err := qrcode.New(s.storeLink(storeID), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

// ParseStoreQR extracts the store ID from a scanned link
func (s *shareCodeService) ParseStoreQR(payload string) (string, error) {
	link, err := url.Parse(strings.TrimSpace(payload))
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("share code is not a link")
	}

	if link.Scheme != s.baseURL.Scheme || link.Host != s.baseURL.Host {
		return "", domainerrors.ErrValidationFailed.WithDetails("share code points to another site")
	}

	escaped, found := strings.CutPrefix(link.EscapedPath(), s.baseURL.EscapedPath()+storePathPrefix)
	if !found || escaped == "" || strings.Contains(escaped, "/") {
		return "", domainerrors.ErrValidationFailed.WithDetails("share code is not a store link")
	}

	storeID, err := url.PathUnescape(escaped)
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("share code is not a store link")
	}

	if err := checkStoreID(storeID); err != nil {
		return "", err
	}

	return storeID, nil
}

func (s *shareCodeService) storeLink(storeID string) string {
	return s.baseURL.String() + storePathPrefix + url.PathEscape(storeID)
}

func checkStoreID(storeID string) error {
	if strings.TrimSpace(storeID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("store id is required")
	}
	if len(storeID) > maxStoreIDLen {
		return domainerrors.ErrValidationFailed.WithDetails("store id is too long")
	}

	return nil
}
