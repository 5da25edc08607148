// Package router wires the API handlers to their routes.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FeedHandler       *handler.FeedHandler
	CatalogHandler    *handler.CatalogHandler
	ReviewHandler     *handler.ReviewHandler
	ShareHandler      *handler.ShareHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	feedHandler       *handler.FeedHandler
	catalogHandler    *handler.CatalogHandler
	reviewHandler     *handler.ReviewHandler
	shareHandler      *handler.ShareHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		feedHandler:       params.FeedHandler,
		catalogHandler:    params.CatalogHandler,
		reviewHandler:     params.ReviewHandler,
		shareHandler:      params.ShareHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Attach)

	apiV1.GET("/banners", r.catalogHandler.GetBanners)
	apiV1.GET("/categories", r.catalogHandler.GetCategories)
	apiV1.POST("/categories/select", r.catalogHandler.SelectCategory)

	feedsGroup := apiV1.Group("/feeds")
	{
		feedsGroup.POST("", r.feedHandler.OpenFeed)
		feedsGroup.GET("/:id", r.feedHandler.GetFeed)
		feedsGroup.POST("/:id/next", r.feedHandler.NextPage)
		feedsGroup.GET("/:id/events", r.feedHandler.StreamFeed)
		feedsGroup.DELETE("/:id", r.feedHandler.CloseFeed)
	}

	storesGroup := apiV1.Group("/stores/:id")
	{
		storesGroup.POST("/reviews", r.reviewHandler.SubmitReview)
		storesGroup.GET("/qrcode", r.shareHandler.StoreQR)
	}

	apiV1.POST("/share/resolve", r.shareHandler.ResolveShareCode)
}
