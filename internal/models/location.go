package models

import (
	"fmt"
	"math"
)

// GeoPosition is a WGS 84 coordinate in degrees.
type GeoPosition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p GeoPosition) Validate() error {
	if !finite(p.Latitude) || !finite(p.Longitude) {
		return fmt.Errorf("coordinates must be finite numbers")
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", p.Longitude)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
