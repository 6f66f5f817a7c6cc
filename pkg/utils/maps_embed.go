package utils

import (
	"fmt"
	"net/url"
)

const embedZoom = 14

// MapsConfig holds the credentials for geocoding and map embeds. EmbedAPIKey
// is optional; without it the maps.google.com fallback formats are used.
type MapsConfig struct {
	GeocodeAPIKey string
	EmbedAPIKey   string
}

func (m MapsConfig) CoordinateEmbedURL(lat, lng float64) string {
	if m.EmbedAPIKey != "" {
		return fmt.Sprintf(
			"https://www.google.com/maps/embed/v1/view?key=%s&center=%f,%f&zoom=%d",
			url.QueryEscape(m.EmbedAPIKey), lat, lng, embedZoom,
		)
	}
	return fmt.Sprintf("https://maps.google.com/maps?q=%f,%f&z=%d&output=embed", lat, lng, embedZoom)
}

func (m MapsConfig) QueryEmbedURL(query string) string {
	if m.EmbedAPIKey != "" {
		return fmt.Sprintf(
			"https://www.google.com/maps/embed/v1/place?key=%s&q=%s",
			url.QueryEscape(m.EmbedAPIKey), url.QueryEscape(query),
		)
	}
	return fmt.Sprintf("https://maps.google.com/maps?q=%s&output=embed", url.QueryEscape(query))
}
