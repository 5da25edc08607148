package stub

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const subjectKey = "subject"

// listResponse mirrors the upstream envelope; a nil Data encodes as null
type listResponse struct {
	Data any `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// TokenRequest asks for a development token
type TokenRequest struct {
	User string `json:"user"`
}

// TokenResponse carries an issued development token
type TokenResponse struct {
	Token string `json:"token"`
}

type stubServer struct {
	cfg    *config.StubConfig
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the stub server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
}

// handlers serves the listing contract from a fixture
type handlers struct {
	fixture  *Fixture
	pageSize int
	tokens   *TokenIssuer
}

// NewEcho builds the stub routes over fixture
func NewEcho(cfg *config.Config, fixture *Fixture, logger *slog.Logger) *echo.Echo {
	h := &handlers{
		fixture:  fixture,
		pageSize: cfg.Stub.PageSize,
		tokens:   NewTokenIssuer(cfg.Stub.SigningKey),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.POST("/auth/token", h.issueToken)

	authed := e.Group("", h.requireToken)
	authed.GET(cfg.Upstream.RecommendPath, h.recommend)
	authed.GET(cfg.Upstream.BannersPath, h.banners)
	authed.GET(cfg.Upstream.CategoriesPath, h.categories)

	return e
}

// NewServer loads the fixture and creates the stub delivery
func NewServer(params ServerParams) (delivery.Delivery, error) {
	fixture, err := LoadFixture(params.Cfg.Stub.FixturePath)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Loaded stub fixture",
		slog.String("path", params.Cfg.Stub.FixturePath),
		slog.Int("stores", len(fixture.Stores)),
		slog.Int("page_size", params.Cfg.Stub.PageSize),
	)

	srv := &stubServer{
		cfg:    params.Cfg.Stub,
		logger: params.Logger,
		server: NewEcho(params.Cfg, fixture, params.Logger),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *stubServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Port))
	s.logger.Info("Starting upstream stub server", slog.String("host_port", hostPort))

	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *stubServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down upstream stub server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

func (h *handlers) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "missing bearer token"})
		}

		subject, err := h.tokens.Verify(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "invalid or expired token"})
		}
		c.Set(subjectKey, subject)

		return next(c)
	}
}

func (h *handlers) issueToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.User) == "" {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "user is required"})
	}

	token, err := h.tokens.Issue(strings.TrimSpace(req.User))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (h *handlers) recommend(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "page must be a positive integer"})
		}
		page = parsed
	}

	origin, ok := parseOrigin(c.QueryParam("lat"), c.QueryParam("lon"))
	if !ok {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "lat and lon must be valid coordinates"})
	}

	stores := h.fixture.Page(page, h.pageSize, origin)
	if stores == nil {
		return c.JSON(http.StatusOK, listResponse{Data: nil})
	}

	return c.JSON(http.StatusOK, listResponse{Data: stores})
}

func (h *handlers) banners(c echo.Context) error {
	return c.JSON(http.StatusOK, listResponse{Data: h.fixture.BannerList()})
}

func (h *handlers) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, listResponse{Data: h.fixture.CategoryList()})
}

func parseOrigin(rawLat, rawLon string) (entity.Coordinate, bool) {
	if rawLat == "" && rawLon == "" {
		return entity.DefaultCoordinate, true
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return entity.Coordinate{}, false
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return entity.Coordinate{}, false
	}

	origin := entity.Coordinate{Latitude: lat, Longitude: lon}

	return origin, origin.Valid()
}
