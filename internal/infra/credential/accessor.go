// Package credential reads the session token used to call the storefront API.
package credential

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

// Account is the persisted session stored under the account key.
type Account struct {
	Token string `json:"token"`
}

var parser = jwt.NewParser()

// checkToken rejects empty tokens and tokens that are not well-formed JWTs.
// Signatures are not verified here: the storefront API owns token validity.
func checkToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domainerrors.ErrUnauthenticated.WithDetails("token is empty")
	}

	if _, _, err := parser.ParseUnverified(token, jwt.MapClaims{}); err != nil {
		return "", domainerrors.ErrUnauthenticated.WithDetails("token is malformed")
	}

	return token, nil
}

// StoreAccessor reads the session token from the device key-value store
type StoreAccessor struct {
	store  service.KeyValueStore
	key    string
	logger *slog.Logger
}

// StoreAccessorParams holds dependencies for StoreAccessor, injected by Fx.
type StoreAccessorParams struct {
	fx.In

	Store  service.KeyValueStore
	Config *config.Config
	Logger *slog.Logger
}

// NewStoreAccessor creates an accessor over the account key of the device store
func NewStoreAccessor(params StoreAccessorParams) *StoreAccessor {
	key := "@account"
	if params.Config.Storage != nil && params.Config.Storage.AccountKey != "" {
		key = params.Config.Storage.AccountKey
	}

	return &StoreAccessor{
		store:  params.Store,
		key:    key,
		logger: params.Logger,
	}
}

// GetToken returns the stored session token
func (a *StoreAccessor) GetToken(ctx context.Context) (string, error) {
	raw, err := a.store.Get(ctx, a.key)
	if err != nil {
		if !errors.Is(err, service.ErrKeyNotFound) {
			a.logger.Warn("Failed to read stored session", slog.Any("error", err))
		}

		return "", domainerrors.ErrUnauthenticated
	}

	var account Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return "", domainerrors.ErrUnauthenticated.WithDetails("stored session is malformed")
	}

	return checkToken(account.Token)
}

// SaveToken persists token as the current session
func (a *StoreAccessor) SaveToken(ctx context.Context, token string) error {
	token, err := checkToken(token)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(Account{Token: token})
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	return a.store.Set(ctx, a.key, raw)
}

// ContextAccessor reads the bearer token attached to the request context
type ContextAccessor struct{}

// NewContextAccessor creates an accessor for request-scoped tokens
func NewContextAccessor() *ContextAccessor {
	return &ContextAccessor{}
}

// GetToken returns the token of the current request
func (ContextAccessor) GetToken(ctx context.Context) (string, error) {
	token, ok := deliverycontext.GetSessionToken(ctx)
	if !ok {
		return "", domainerrors.ErrUnauthenticated
	}

	return checkToken(token)
}
