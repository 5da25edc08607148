package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	credentials *mockService.MockCredentialAccessor
	banners     *mockService.MockBannerSource
	categories  *mockService.MockCategorySource
	store       *mockService.MockKeyValueStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	credentials := mockService.NewMockCredentialAccessor(t)
	banners := mockService.NewMockBannerSource(t)
	categories := mockService.NewMockCategorySource(t)
	store := mockService.NewMockKeyValueStore(t)

	cfg := &config.Config{Storage: &config.StorageConfig{KeywordKey: "@keyword"}}

	service := NewCatalogService(CatalogServiceParams{
		Credentials:    credentials,
		BannerSource:   banners,
		CategorySource: categories,
		Store:          store,
		Config:         cfg,
		Logger:         slog.Default(),
	})

	return catalogServiceFixtures{
		service:     service,
		credentials: credentials,
		banners:     banners,
		categories:  categories,
		store:       store,
	}
}

func TestCatalogService_LoadBanners(t *testing.T) {
	fx := createTestCatalogService(t)
	banners := []entity.Banner{{StoreID: "s1", ImageRef: "b1.png"}}

	fx.credentials.EXPECT().GetToken(mock.Anything).Return("tok", nil)
	fx.banners.EXPECT().FetchBanners(mock.Anything, "tok").Return(banners, nil)

	result := fx.service.LoadBanners(context.Background())
	assert.Equal(t, banners, result.Banners)
	assert.Equal(t, entity.ErrorKindNone, result.LastError)
}

func TestCatalogService_LoadCategories_Unauthenticated(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.credentials.EXPECT().GetToken(mock.Anything).Return("", domainerrors.ErrUnauthenticated)

	result := fx.service.LoadCategories(context.Background())
	assert.Empty(t, result.Categories)
	assert.Equal(t, entity.ErrorKindUnauthenticated, result.LastError)
}

func TestCatalogService_LoadersAreIndependent(t *testing.T) {
	fx := createTestCatalogService(t)
	categories := []entity.Category{{ConcernID: 1, ShortLabel: "Pho", Label: "Noodle soup"}}

	fx.credentials.EXPECT().GetToken(mock.Anything).Return("tok", nil)
	fx.banners.EXPECT().FetchBanners(mock.Anything, "tok").Return(nil, domainerrors.ErrServer)
	fx.categories.EXPECT().FetchCategories(mock.Anything, "tok").Return(categories, nil)

	banners := fx.service.LoadBanners(context.Background())
	loaded := fx.service.LoadCategories(context.Background())

	assert.Empty(t, banners.Banners)
	assert.Equal(t, entity.ErrorKindServer, banners.LastError)
	assert.Equal(t, categories, loaded.Categories)
	assert.Equal(t, entity.ErrorKindNone, loaded.LastError)
}

func TestCatalogService_CallersDoNotShareLists(t *testing.T) {
	fx := createTestCatalogService(t)
	banners := []entity.Banner{{StoreID: "s1", ImageRef: "b1.png"}}

	fx.credentials.EXPECT().GetToken(mock.Anything).RunAndReturn(func(ctx context.Context) (string, error) {
		if token, ok := deliverycontext.GetSessionToken(ctx); ok {
			return token, nil
		}

		return "", domainerrors.ErrUnauthenticated
	})

	anonymousDone := make(chan struct{})
	fx.banners.EXPECT().FetchBanners(mock.Anything, "alice").
		RunAndReturn(func(context.Context, string) ([]entity.Banner, error) {
			<-anonymousDone

			return banners, nil
		}).Once()

	aliceResult := make(chan *usecase.BannerList, 1)
	go func() {
		aliceResult <- fx.service.LoadBanners(deliverycontext.WithSessionToken(context.Background(), "alice"))
	}()

	anonymous := fx.service.LoadBanners(context.Background())
	close(anonymousDone)

	assert.Empty(t, anonymous.Banners)
	assert.Equal(t, entity.ErrorKindUnauthenticated, anonymous.LastError)

	select {
	case alice := <-aliceResult:
		assert.Equal(t, banners, alice.Banners)
		assert.Equal(t, entity.ErrorKindNone, alice.LastError)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for banners")
	}
}

func TestCatalogService_SelectCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.credentials.EXPECT().GetToken(mock.Anything).Return("tok", nil)
	fx.store.EXPECT().Set(mock.Anything, keywordKeyFor("@keyword", "tok"), []byte("Noodle soup")).Return(nil)

	require.NoError(t, fx.service.SelectCategory(context.Background(), "  Noodle soup "))
}

func TestCatalogService_SelectCategory_ScopedToSession(t *testing.T) {
	fx := createTestCatalogService(t)

	var keys []string
	fx.credentials.EXPECT().GetToken(mock.Anything).Return("alice", nil).Once()
	fx.credentials.EXPECT().GetToken(mock.Anything).Return("bob", nil).Once()
	fx.store.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, key string, _ []byte) error {
			keys = append(keys, key)

			return nil
		}).Times(2)

	require.NoError(t, fx.service.SelectCategory(context.Background(), "Tea"))
	require.NoError(t, fx.service.SelectCategory(context.Background(), "Pho"))

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
	for _, key := range keys {
		assert.True(t, strings.HasPrefix(key, "@keyword:"), key)
		assert.NotContains(t, key, "alice")
		assert.NotContains(t, key, "bob")
	}
}

func TestCatalogService_SelectCategory_Unauthenticated(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.credentials.EXPECT().GetToken(mock.Anything).Return("", domainerrors.ErrUnauthenticated)

	err := fx.service.SelectCategory(context.Background(), "Tea")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCatalogService_SelectCategory_EmptyLabel(t *testing.T) {
	fx := createTestCatalogService(t)

	err := fx.service.SelectCategory(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_SelectCategory_StoreFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.credentials.EXPECT().GetToken(mock.Anything).Return("tok", nil)
	fx.store.EXPECT().Set(mock.Anything, keywordKeyFor("@keyword", "tok"), []byte("Tea")).Return(errors.New("disk full"))

	err := fx.service.SelectCategory(context.Background(), "Tea")
	assert.Error(t, err)
}
