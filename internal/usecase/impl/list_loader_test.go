package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListLoader_Load(t *testing.T) {
	banners := []entity.Banner{{StoreID: "s1", ImageRef: "b1.png"}, {StoreID: "s2", ImageRef: "b2.png"}}

	credentials := mockService.NewMockCredentialAccessor(t)
	source := mockService.NewMockBannerSource(t)
	loader := NewListLoader("banners", credentials, source.FetchBanners, nil)

	credentials.EXPECT().GetToken(mock.Anything).Return("tok", nil)
	source.EXPECT().FetchBanners(mock.Anything, "tok").Return(banners, nil).Once()

	items, kind := loader.Load(context.Background())
	assert.Equal(t, banners, items)
	assert.Equal(t, entity.ErrorKindNone, kind)
	assert.Equal(t, banners, loader.Items())
	assert.Equal(t, entity.ErrorKindNone, loader.LastError())
}

func TestListLoader_LoadReplacesPreviousItems(t *testing.T) {
	credentials := mockService.NewMockCredentialAccessor(t)
	source := mockService.NewMockCategorySource(t)
	loader := NewListLoader("categories", credentials, source.FetchCategories, nil)

	first := []entity.Category{{ConcernID: 1, ShortLabel: "Pho", Label: "Noodle soup"}, {ConcernID: 2, ShortLabel: "Tea", Label: "Milk tea"}}
	second := []entity.Category{{ConcernID: 3, ShortLabel: "BBQ", Label: "Barbecue"}}

	credentials.EXPECT().GetToken(mock.Anything).Return("tok", nil)
	source.EXPECT().FetchCategories(mock.Anything, "tok").Return(first, nil).Once()
	source.EXPECT().FetchCategories(mock.Anything, "tok").Return(second, nil).Once()

	loader.Load(context.Background())
	loader.Load(context.Background())

	assert.Equal(t, second, loader.Items())
}

func TestListLoader_FailureClearsItems(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(credentials *mockService.MockCredentialAccessor, source *mockService.MockBannerSource)
		wantKind entity.ErrorKind
	}{
		{
			name: "missing token",
			setup: func(credentials *mockService.MockCredentialAccessor, source *mockService.MockBannerSource) {
				credentials.EXPECT().GetToken(mock.Anything).Return("", domainerrors.ErrUnauthenticated).Once()
			},
			wantKind: entity.ErrorKindUnauthenticated,
		},
		{
			name: "remote failure",
			setup: func(credentials *mockService.MockCredentialAccessor, source *mockService.MockBannerSource) {
				credentials.EXPECT().GetToken(mock.Anything).Return("tok", nil).Once()
				source.EXPECT().FetchBanners(mock.Anything, "tok").Return(nil, domainerrors.ErrNetwork).Once()
			},
			wantKind: entity.ErrorKindNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credentials := mockService.NewMockCredentialAccessor(t)
			source := mockService.NewMockBannerSource(t)
			loader := NewListLoader("banners", credentials, source.FetchBanners, nil)

			credentials.EXPECT().GetToken(mock.Anything).Return("tok", nil).Once()
			source.EXPECT().FetchBanners(mock.Anything, "tok").Return([]entity.Banner{{StoreID: "stale"}}, nil).Once()
			loader.Load(context.Background())
			assert.Len(t, loader.Items(), 1)

			tt.setup(credentials, source)

			items, kind := loader.Load(context.Background())
			assert.NotNil(t, items)
			assert.Empty(t, items)
			assert.Equal(t, tt.wantKind, kind)
			assert.Empty(t, loader.Items())
			assert.Equal(t, tt.wantKind, loader.LastError())
		})
	}
}

func TestListLoader_ItemsIsCopy(t *testing.T) {
	credentials := mockService.NewMockCredentialAccessor(t)
	source := mockService.NewMockBannerSource(t)
	loader := NewListLoader("banners", credentials, source.FetchBanners, nil)

	credentials.EXPECT().GetToken(mock.Anything).Return("tok", nil)
	source.EXPECT().FetchBanners(mock.Anything, "tok").Return([]entity.Banner{{StoreID: "s1"}}, nil).Once()
	loader.Load(context.Background())

	items := loader.Items()
	items[0].StoreID = "mutated"

	assert.Equal(t, "s1", loader.Items()[0].StoreID)
}
