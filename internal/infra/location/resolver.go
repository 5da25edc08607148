// Package location resolves device coordinates for feed sessions.
package location

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// resolver asks the platform for permission and then for a position.
// It never fails the caller: every path yields a usable coordinate.
type resolver struct {
	permissions service.PermissionProvider
	positions   service.PositionProvider
	logger      *slog.Logger
}

// NewResolver creates a LocationResolver over the given platform providers
func NewResolver(permissions service.PermissionProvider, positions service.PositionProvider, logger *slog.Logger) service.LocationResolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &resolver{
		permissions: permissions,
		positions:   positions,
		logger:      logger,
	}
}

// Resolve returns the device coordinate, or the default coordinate with
// ErrPermissionDenied when access was refused.
func (r *resolver) Resolve(ctx context.Context) (entity.Coordinate, error) {
	granted, err := r.permissions.RequestPermission(ctx)
	if err != nil {
		r.logger.Warn("Location permission request failed", slog.Any("error", err))

		return entity.DefaultCoordinate, domainerrors.ErrPermissionDenied
	}
	if !granted {
		return entity.DefaultCoordinate, domainerrors.ErrPermissionDenied
	}

	coord, err := r.positions.CurrentPosition(ctx)
	if err != nil {
		r.logger.Debug("Position unavailable, using default coordinate", slog.Any("error", err))

		return entity.DefaultCoordinate, nil
	}

	if !coord.Valid() {
		r.logger.Debug("Position out of range, using default coordinate",
			slog.Float64("latitude", coord.Latitude),
			slog.Float64("longitude", coord.Longitude),
		)

		return entity.DefaultCoordinate, nil
	}

	return coord, nil
}
