package services

import (
	"context"
	"fmt"

	"github.com/bradfitz/latlong"
	"googlemaps.github.io/maps"
)

// Geocoder resolves a postal address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat float64, lng float64, err error)
}

// GeoService geocodes addresses through the Google Maps Geocoding API.
type GeoService struct {
	client *maps.Client
}

func NewGeoService(apiKey string) (*GeoService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps client: %w", err)
	}
	return &GeoService{client: client}, nil
}

func (g *GeoService) Geocode(ctx context.Context, address string) (float64, float64, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", address)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// ZoneFor returns the IANA zone at the coordinates, or fallback when they
// are missing or fall outside every zone.
func ZoneFor(lat, lng *float64, fallback string) string {
	if lat != nil && lng != nil {
		if zone := latlong.LookupZoneName(*lat, *lng); zone != "" {
			return zone
		}
	}
	return fallback
}
