// Package geocoder defines the interface used to resolve a free-form
// location into coordinates.
package geocoder

import (
	"context"
)

// Place is a geocoded location.
type Place struct {
	// FormattedAddress is the provider's canonical rendering of the address.
	FormattedAddress string `json:"formattedAddress"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

// Geocoder resolves addresses. Implementations return an error with the
// serrors.ErrBadRequest kind when the address can not be resolved, and
// serrors.ErrExternalService when the provider itself fails.
//
//go:generate mockgen -package mockgeocoder -source=interface.go -destination=mock/mockgeocoder.go *
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Place, error)
}
