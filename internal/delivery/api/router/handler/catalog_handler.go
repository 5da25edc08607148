package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the banner carousel and the category list
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// BannersResponse is the banner carousel; a failed load yields an empty list
type BannersResponse struct {
	Banners       []entity.Banner  `json:"banners"`
	LastError     entity.ErrorKind `json:"last_error,omitempty"`
	RequiresLogin bool             `json:"requires_login"`
}

// CategoriesResponse is the category list; a failed load yields an empty list
type CategoriesResponse struct {
	Categories    []entity.Category `json:"categories"`
	LastError     entity.ErrorKind  `json:"last_error,omitempty"`
	RequiresLogin bool              `json:"requires_login"`
}

// SelectCategoryRequest carries the label chosen on the home screen
type SelectCategoryRequest struct {
	Label string `json:"label" validate:"required"`
}

// GetBanners loads the banner carousel
func (h *CatalogHandler) GetBanners(c echo.Context) error {
	list := h.catalogUC.LoadBanners(c.Request().Context())

	banners := list.Banners
	if banners == nil {
		banners = []entity.Banner{}
	}

	return response.Success(c, http.StatusOK, &BannersResponse{
		Banners:       banners,
		LastError:     list.LastError,
		RequiresLogin: list.LastError == entity.ErrorKindUnauthenticated,
	})
}

// GetCategories loads the category list
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	list := h.catalogUC.LoadCategories(c.Request().Context())

	categories := list.Categories
	if categories == nil {
		categories = []entity.Category{}
	}

	return response.Success(c, http.StatusOK, &CategoriesResponse{
		Categories:    categories,
		LastError:     list.LastError,
		RequiresLogin: list.LastError == entity.ErrorKindUnauthenticated,
	})
}

// SelectCategory remembers the chosen category as the search keyword
func (h *CatalogHandler) SelectCategory(c echo.Context) error {
	var req SelectCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category selection", nil)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Category label is required", validator.Describe(err))
	}

	if err := h.catalogUC.SelectCategory(c.Request().Context(), req.Label); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
