package service

import (
	"context"
	"errors"

	"github.com/paulmach/orb"
)

// ErrLocationNotResolvable is returned when the geocoding service does
// not answer with an OK status for the given address text.
var ErrLocationNotResolvable = errors.New("location could not be geocoded")

// Geocoder resolves free-text addresses to geographic points.
type Geocoder interface {
	// Geocode resolves address text to a point (lon/lat order). Returns
	// ErrLocationNotResolvable when the upstream status is not OK.
	Geocode(ctx context.Context, address string) (orb.Point, error)
}
