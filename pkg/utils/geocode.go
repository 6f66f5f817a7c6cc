package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	mem "limetrip/pkg/memcache"
)

const geocodeEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

type LatLng struct {
	Lat float64
	Lng float64
}

// Geocoder resolves a free-text address, restricted to a country, into
// coordinates. A nil result with a nil error means no match was found.
type Geocoder interface {
	Geocode(ctx context.Context, address, countryCode string) (*LatLng, error)
}

type GoogleGeocoder struct {
	apiKey     string
	httpClient *http.Client
	cache      *mem.PlaceCache
}

func NewGoogleGeocoder(apiKey string, cache *mem.PlaceCache) Geocoder {
	return &GoogleGeocoder{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: cache,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	ErrorMessage string `json:"error_message"`
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address, countryCode string) (*LatLng, error) {
	cacheKey := address + "|" + countryCode
	if g.cache != nil {
		if lat, lng, ok := g.cache.Get(cacheKey); ok {
			return &LatLng{Lat: lat, Lng: lng}, nil
		}
	}

	params := url.Values{}
	params.Set("address", address)
	if countryCode != "" {
		params.Set("components", "country:"+countryCode)
	}
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, geocodeEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Service: "geocoding", StatusCode: http.StatusInternalServerError, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Service: "geocoding", StatusCode: resp.StatusCode, Detail: resp.Status}
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &UpstreamError{Service: "geocoding", StatusCode: http.StatusInternalServerError, Detail: err.Error()}
	}

	switch decoded.Status {
	case "OK":
		if len(decoded.Results) == 0 {
			return nil, nil
		}
		loc := decoded.Results[0].Geometry.Location
		if g.cache != nil {
			g.cache.Set(cacheKey, loc.Lat, loc.Lng, time.Hour)
		}
		return &LatLng{Lat: loc.Lat, Lng: loc.Lng}, nil
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, &UpstreamError{
			Service:    "geocoding",
			StatusCode: http.StatusInternalServerError,
			Detail:     fmt.Sprintf("%s: %s", decoded.Status, decoded.ErrorMessage),
		}
	}
}
