package qrcode

import (
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *shareCodeService {
	t.Helper()

	svc, err := New("https://shop.example.com/app/", 128, "M")
	require.NoError(t, err)

	return svc.(*shareCodeService)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		level   string
		wantErr bool
	}{
		{name: "Low error correction", baseURL: "https://shop.example.com", level: "L"},
		{name: "Highest error correction", baseURL: "https://shop.example.com", level: "H"},
		{name: "Default error correction", baseURL: "https://shop.example.com", level: "invalid"},
		{name: "Relative base URL", baseURL: "/stores", wantErr: true},
		{name: "Empty base URL", baseURL: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := New(tt.baseURL, 256, tt.level)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestShareCodeService_StoreQR(t *testing.T) {
	svc := newTestService(t)

	png, err := svc.StoreQR("store-42")
	require.NoError(t, err)
	require.Greater(t, len(png), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestShareCodeService_StoreQR_InvalidStoreID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.StoreQR(" ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.StoreQR(strings.Repeat("x", maxStoreIDLen+1))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestShareCodeService_LinkRoundTrip(t *testing.T) {
	svc := newTestService(t)

	for _, storeID := range []string{"store-42", "tea & coffee", "a/b"} {
		t.Run(storeID, func(t *testing.T) {
			link := svc.storeLink(storeID)
			assert.True(t, strings.HasPrefix(link, "https://shop.example.com/app/stores/"))

			parsed, err := svc.ParseStoreQR(link)
			require.NoError(t, err)
			assert.Equal(t, storeID, parsed)
		})
	}
}

func TestShareCodeService_ParseStoreQR_Invalid(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "not a link", payload: "::::"},
		{name: "other host", payload: "https://evil.example.com/app/stores/store-42"},
		{name: "other scheme", payload: "http://shop.example.com/app/stores/store-42"},
		{name: "not a store page", payload: "https://shop.example.com/app/banners/1"},
		{name: "missing store id", payload: "https://shop.example.com/app/stores/"},
		{name: "nested path", payload: "https://shop.example.com/app/stores/store-42/reviews"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseStoreQR(tt.payload)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
