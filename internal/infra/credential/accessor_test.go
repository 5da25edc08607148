package credential

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	return signed
}

func newTestStoreAccessor(t *testing.T) (*StoreAccessor, *mockService.MockKeyValueStore) {
	store := mockService.NewMockKeyValueStore(t)
	cfg := &config.Config{Storage: &config.StorageConfig{AccountKey: "@account"}}

	return NewStoreAccessor(StoreAccessorParams{Store: store, Config: cfg, Logger: slog.Default()}), store
}

func TestStoreAccessor_GetToken(t *testing.T) {
	valid := signedToken(t)

	tests := []struct {
		name      string
		stored    []byte
		storeErr  error
		wantToken string
	}{
		{name: "valid session", stored: []byte(`{"token":"` + valid + `"}`), wantToken: valid},
		{name: "no stored session", storeErr: service.ErrKeyNotFound},
		{name: "store failure", storeErr: errors.New("disk unavailable")},
		{name: "malformed json", stored: []byte(`{"token":`)},
		{name: "empty token", stored: []byte(`{"token":""}`)},
		{name: "token is not a jwt", stored: []byte(`{"token":"not-a-jwt"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessor, store := newTestStoreAccessor(t)
			store.EXPECT().Get(mock.Anything, "@account").Return(tt.stored, tt.storeErr)

			token, err := accessor.GetToken(context.Background())
			if tt.wantToken == "" {
				assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
				assert.Empty(t, token)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestStoreAccessor_SaveToken(t *testing.T) {
	accessor, store := newTestStoreAccessor(t)
	token := signedToken(t)

	store.EXPECT().
		Set(mock.Anything, "@account", []byte(`{"token":"`+token+`"}`)).
		Return(nil)

	require.NoError(t, accessor.SaveToken(context.Background(), token))
}

func TestStoreAccessor_SaveToken_RejectsMalformed(t *testing.T) {
	accessor, _ := newTestStoreAccessor(t)

	err := accessor.SaveToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestContextAccessor_GetToken(t *testing.T) {
	accessor := NewContextAccessor()
	token := signedToken(t)

	got, err := accessor.GetToken(deliverycontext.WithSessionToken(context.Background(), token))
	require.NoError(t, err)
	assert.Equal(t, token, got)

	_, err = accessor.GetToken(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = accessor.GetToken(deliverycontext.WithSessionToken(context.Background(), "x.y"))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
