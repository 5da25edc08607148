// Package entity contains the core business objects of the project.
package entity

import "github.com/paulmach/orb"

// Coordinate is a device position. The zero value (0,0) means the position is
// unknown or the location permission was denied.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultCoordinate is used whenever the device position cannot be resolved.
var DefaultCoordinate = Coordinate{}

// IsDefault reports whether c is the unknown/denied coordinate.
func (c Coordinate) IsDefault() bool {
	return c == DefaultCoordinate
}

// Point converts the coordinate to an orb.Point, which is (lon, lat) ordered.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinateFromPoint converts an orb.Point back to a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// worldBound covers every valid WGS84 position.
var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// Valid reports whether the coordinate lies on the globe.
func (c Coordinate) Valid() bool {
	return worldBound.Contains(c.Point())
}
