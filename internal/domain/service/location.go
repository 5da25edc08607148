// Package service defines the interfaces of the collaborators the use cases depend on.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// LocationResolver resolves the device coordinate for a feed session.
type LocationResolver interface {
	// Resolve makes a single resolution attempt. It always returns a usable
	// coordinate: entity.DefaultCoordinate when the position is unknown.
	// A denied permission is reported as domain errors.ErrPermissionDenied
	// alongside the default coordinate; acquisition failures are swallowed.
	Resolve(ctx context.Context) (entity.Coordinate, error)
}

// PermissionProvider is the platform permission prompt for location access.
type PermissionProvider interface {
	RequestPermission(ctx context.Context) (granted bool, err error)
}

// PositionProvider is the platform position service.
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (entity.Coordinate, error)
}

// LocationResolverFactory builds the resolver for a device that reported its
// permission state and, when it has a fix, its position.
type LocationResolverFactory interface {
	ForDevice(permissionGranted bool, position *entity.Coordinate) LocationResolver
}
