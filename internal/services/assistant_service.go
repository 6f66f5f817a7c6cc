package services

import (
	"context"
	"log"
	"regexp"
	"strings"

	"limetrip/internal/models/response_models"
	"limetrip/pkg/utils"
)

const (
	tourismMarker    = "tourism:"
	noCompletionText = "No response generated."
)

var (
	mapWordPattern = regexp.MustCompile(`\bmap\b`)

	// Tried in priority order against the text after the last colon.
	placePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)map of (.+)`),
		regexp.MustCompile(`(?i)map for (.+)`),
		regexp.MustCompile(`(?i)where is (.+)`),
		regexp.MustCompile(`(?i)location of (.+)`),
		regexp.MustCompile(`(?i)directions to (.+)`),
		regexp.MustCompile(`(?i)show me (.+?) on the map`),
	}
)

type AssistantServiceInterface interface {
	Ask(ctx context.Context, prompt string, countryHint string) (*response_models.AskResponse, error)
}

type AssistantService struct {
	completion utils.CompletionClient
	geocoder   utils.Geocoder
	maps       utils.MapsConfig
}

func NewAssistantService(completion utils.CompletionClient, geocoder utils.Geocoder, maps utils.MapsConfig) AssistantServiceInterface {
	return &AssistantService{
		completion: completion,
		geocoder:   geocoder,
		maps:       maps,
	}
}

func (s *AssistantService) Ask(ctx context.Context, prompt string, countryHint string) (*response_models.AskResponse, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return nil, utils.ErrInvalidInput
	}

	if IsMapPrompt(trimmed) {
		return s.resolveMap(ctx, trimmed, countryHint), nil
	}

	text, err := s.completion.Complete(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if text == "" {
		text = noCompletionText
	}

	return &response_models.AskResponse{
		ResponseType: response_models.AskResponseText,
		Text:         text,
	}, nil
}

// IsMapPrompt reports whether a prompt is a tourism map request. Only prompts
// carrying the tourism marker qualify; among those, any of the map triggers
// is sufficient.
func IsMapPrompt(prompt string) bool {
	lower := strings.ToLower(prompt)
	if !strings.Contains(lower, tourismMarker) {
		return false
	}
	if mapWordPattern.MatchString(lower) {
		return true
	}
	if strings.Contains(lower, "where is") ||
		strings.Contains(lower, "location of") ||
		strings.Contains(lower, "directions to") {
		return true
	}
	if idx := strings.Index(lower, "show me"); idx >= 0 {
		return strings.Contains(lower[idx+len("show me"):], "map")
	}
	return false
}

// ExtractPlace pulls the place name out of a map prompt. It works on the
// text after the last colon and falls back to the whole trimmed prompt.
func ExtractPlace(prompt string) string {
	segment := strings.TrimSpace(prompt)
	if idx := strings.LastIndex(prompt, ":"); idx >= 0 {
		segment = prompt[idx+1:]
	}

	for _, pattern := range placePatterns {
		match := pattern.FindStringSubmatch(segment)
		if match == nil {
			continue
		}
		place := match[1]
		if cut := strings.IndexAny(place, "?.!,"); cut >= 0 {
			place = place[:cut]
		}
		return strings.TrimSpace(place)
	}

	return strings.TrimSpace(segment)
}

// DisambiguatePlace appends the country hint when the place does not already
// mention it.
func DisambiguatePlace(place, countryHint string) string {
	hint := strings.TrimSpace(countryHint)
	if hint == "" {
		return place
	}
	if strings.Contains(strings.ToLower(place), strings.ToLower(hint)) {
		return place
	}
	return place + ", " + hint
}

func (s *AssistantService) resolveMap(ctx context.Context, prompt, countryHint string) *response_models.AskResponse {
	place := DisambiguatePlace(ExtractPlace(prompt), countryHint)
	countryCode := CountryCodeFor(countryHint)

	var coords *utils.LatLng
	if s.maps.GeocodeAPIKey != "" && countryCode != "" {
		resolved, err := s.geocoder.Geocode(ctx, place, countryCode)
		if err != nil {
			// Downgrade to the query embed, never fail a map request.
			log.Printf("Geocoding failed for %q: %v", place, err)
		} else {
			coords = resolved
		}
	}

	var embedURL string
	if coords != nil {
		embedURL = s.maps.CoordinateEmbedURL(coords.Lat, coords.Lng)
	} else {
		embedURL = s.maps.QueryEmbedURL(place)
	}

	return &response_models.AskResponse{
		ResponseType: response_models.AskResponseMap,
		Title:        place,
		EmbedURL:     embedURL,
		Text:         "Here is the map of " + place + ".",
	}
}
