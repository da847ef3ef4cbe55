// Package geo resolves the device position once per session.
package geo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"streetart-capture/internal/logger"
	"streetart-capture/internal/models"
)

var ErrUnavailable = errors.New("geolocation unavailable")

// Locator performs a one-shot position lookup.
type Locator interface {
	Locate(ctx context.Context) (models.GeoPosition, error)
}

// Sink receives the outcome of the lookup.
type Sink interface {
	SetLocation(pos models.GeoPosition) error
	LocationFailed(err error)
}

// StaticLocator reports a fixed position, typically configured for a kiosk.
type StaticLocator struct {
	Position models.GeoPosition
}

func (l StaticLocator) Locate(ctx context.Context) (models.GeoPosition, error) {
	if err := ctx.Err(); err != nil {
		return models.GeoPosition{}, err
	}
	return l.Position, nil
}

// ParseStatic builds a StaticLocator from decimal degree strings.
func ParseStatic(lat, lon string) (StaticLocator, error) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return StaticLocator{}, fmt.Errorf("invalid latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return StaticLocator{}, fmt.Errorf("invalid longitude: %w", err)
	}
	pos := models.GeoPosition{Latitude: latitude, Longitude: longitude}
	if err := pos.Validate(); err != nil {
		return StaticLocator{}, err
	}
	return StaticLocator{Position: pos}, nil
}

// Request looks the position up once and hands the result to sink. A nil
// locator counts as unsupported. Errors are logged and never retried.
func Request(ctx context.Context, locator Locator, sink Sink) {
	log := logger.Component("geo")

	if locator == nil {
		log.Warn().Msg("geolocation not supported")
		sink.LocationFailed(ErrUnavailable)
		return
	}

	pos, err := locator.Locate(ctx)
	if err == nil {
		err = pos.Validate()
	}
	if err != nil {
		log.Error().Err(err).Msg("error getting location")
		sink.LocationFailed(fmt.Errorf("%w: %v", ErrUnavailable, err))
		return
	}

	if err := sink.SetLocation(pos); err != nil {
		log.Warn().Err(err).Msg("location rejected")
		return
	}
	log.Info().Float64("latitude", pos.Latitude).Float64("longitude", pos.Longitude).Msg("location detected")
}
