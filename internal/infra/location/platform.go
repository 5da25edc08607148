package location

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// ErrPositionUnavailable is returned when the platform has no position fix.
var ErrPositionUnavailable = errors.New("position unavailable")

// DevicePlatform replays what a client device reported about itself: whether
// the user granted location access and, if it has one, the current fix.
type DevicePlatform struct {
	PermissionGranted bool
	Position          *entity.Coordinate
}

// RequestPermission returns the reported permission state
func (p DevicePlatform) RequestPermission(context.Context) (bool, error) {
	return p.PermissionGranted, nil
}

// CurrentPosition returns the reported fix
func (p DevicePlatform) CurrentPosition(context.Context) (entity.Coordinate, error) {
	if p.Position == nil {
		return entity.DefaultCoordinate, ErrPositionUnavailable
	}

	return *p.Position, nil
}

// NewStaticPlatform builds a platform from the location section of the config.
// A missing section behaves like a denied permission.
func NewStaticPlatform(cfg *config.LocationConfig) DevicePlatform {
	if cfg == nil {
		return DevicePlatform{}
	}

	position := entity.Coordinate{Latitude: cfg.Latitude, Longitude: cfg.Longitude}

	return DevicePlatform{
		PermissionGranted: cfg.PermissionGranted,
		Position:          &position,
	}
}

// resolverFactory builds one resolver per reporting device
type resolverFactory struct {
	logger *slog.Logger
}

// FactoryParams holds dependencies for the resolver factory, injected by Fx.
type FactoryParams struct {
	fx.In

	Logger *slog.Logger
}

// NewResolverFactory creates the factory used by feed sessions
func NewResolverFactory(params FactoryParams) service.LocationResolverFactory {
	return &resolverFactory{logger: params.Logger}
}

// ForDevice returns a resolver answering from the device report
func (f *resolverFactory) ForDevice(permissionGranted bool, position *entity.Coordinate) service.LocationResolver {
	platform := DevicePlatform{PermissionGranted: permissionGranted, Position: position}

	return NewResolver(platform, platform, f.logger)
}
