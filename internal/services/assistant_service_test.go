package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"limetrip/pkg/utils"
)

type mockCompletionClient struct {
	text      string
	err       error
	called    bool
	gotPrompt string
}

func (m *mockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.called = true
	m.gotPrompt = prompt
	return m.text, m.err
}

type mockGeocoder struct {
	result     *utils.LatLng
	err        error
	called     bool
	gotAddress string
	gotCountry string
}

func (m *mockGeocoder) Geocode(ctx context.Context, address, countryCode string) (*utils.LatLng, error) {
	m.called = true
	m.gotAddress = address
	m.gotCountry = countryCode
	return m.result, m.err
}

func newTestAssistantService(completion *mockCompletionClient, geocoder *mockGeocoder, maps utils.MapsConfig) AssistantServiceInterface {
	return NewAssistantService(completion, geocoder, maps)
}

func TestIsMapPrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   bool
	}{
		{"tourism with map word", "tourism: map of Bathsheba", true},
		{"tourism with where is", "Tourism: where is Oistins", true},
		{"tourism with location of", "tourism: location of Harrison's Cave", true},
		{"tourism with directions to", "tourism: directions to Bridgetown", true},
		{"tourism with show me then map", "tourism: show me Bathsheba on the map", true},
		{"tourism without trigger", "tourism: best food in Barbados", false},
		{"map word without tourism marker", "map of Bathsheba please", false},
		{"where is without tourism marker", "where is Oistins", false},
		{"mapped is not the map word", "tourism: I mapped my trip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMapPrompt(tt.prompt); got != tt.want {
				t.Errorf("IsMapPrompt(%q) = %v, want %v", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestExtractPlace(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"map of with question mark", "tourism: map of Bathsheba?", "Bathsheba"},
		{"map for", "tourism: map for Oistins", "Oistins"},
		{"where is", "tourism: where is Harrison's Cave", "Harrison's Cave"},
		{"location of comma truncated", "tourism: location of Bridgetown, the capital", "Bridgetown"},
		{"directions to", "tourism: directions to Speightstown!", "Speightstown"},
		{"show me on the map", "tourism: show me Bathsheba on the map", "Bathsheba"},
		{"no pattern falls back to segment", "tourism: Crane Beach", "Crane Beach"},
		{"no colon falls back to whole prompt", "Crane Beach", "Crane Beach"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlace(tt.prompt); got != tt.want {
				t.Errorf("ExtractPlace(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestDisambiguatePlace(t *testing.T) {
	if got := DisambiguatePlace("Bathsheba", "Barbados"); got != "Bathsheba, Barbados" {
		t.Errorf("DisambiguatePlace = %q, want %q", got, "Bathsheba, Barbados")
	}
	if got := DisambiguatePlace("Bathsheba, barbados", "Barbados"); got != "Bathsheba, barbados" {
		t.Errorf("hint already present: got %q", got)
	}
	if got := DisambiguatePlace("Bathsheba", ""); got != "Bathsheba" {
		t.Errorf("empty hint: got %q", got)
	}
}

func TestAsk_MapWithCoordinates(t *testing.T) {
	geocoder := &mockGeocoder{result: &utils.LatLng{Lat: 13.2, Lng: -59.52}}
	completion := &mockCompletionClient{}
	svc := newTestAssistantService(completion, geocoder, utils.MapsConfig{GeocodeAPIKey: "geo-key"})

	resp, err := svc.Ask(context.Background(), "tourism: map of Bathsheba?", "Barbados")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if resp.ResponseType != "map" {
		t.Fatalf("ResponseType = %q, want map", resp.ResponseType)
	}
	if !geocoder.called {
		t.Error("geocoder was not called")
	}
	if geocoder.gotAddress != "Bathsheba, Barbados" {
		t.Errorf("geocoded address = %q, want %q", geocoder.gotAddress, "Bathsheba, Barbados")
	}
	if geocoder.gotCountry != "BB" {
		t.Errorf("country restriction = %q, want BB", geocoder.gotCountry)
	}
	if !strings.Contains(resp.EmbedURL, "13.2") || !strings.Contains(resp.EmbedURL, "output=embed") {
		t.Errorf("EmbedURL = %q, want coordinate embed", resp.EmbedURL)
	}
	if completion.called {
		t.Error("completion client should not be called for map prompts")
	}
}

func TestAsk_GeocodeFailureFallsBackToQueryEmbed(t *testing.T) {
	geocoder := &mockGeocoder{err: errors.New("boom")}
	svc := newTestAssistantService(&mockCompletionClient{}, geocoder, utils.MapsConfig{GeocodeAPIKey: "geo-key"})

	resp, err := svc.Ask(context.Background(), "tourism: map of Bathsheba", "Barbados")
	if err != nil {
		t.Fatalf("geocode failure must not fail the request, got %v", err)
	}
	if resp.ResponseType != "map" {
		t.Fatalf("ResponseType = %q, want map", resp.ResponseType)
	}
	if !strings.Contains(resp.EmbedURL, "Bathsheba") {
		t.Errorf("EmbedURL = %q, want query-based fallback", resp.EmbedURL)
	}
}

func TestAsk_UnknownCountrySkipsGeocoding(t *testing.T) {
	geocoder := &mockGeocoder{result: &utils.LatLng{Lat: 1, Lng: 2}}
	svc := newTestAssistantService(&mockCompletionClient{}, geocoder, utils.MapsConfig{GeocodeAPIKey: "geo-key"})

	resp, err := svc.Ask(context.Background(), "tourism: map of Reykjavik", "Iceland")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if geocoder.called {
		t.Error("geocoder must be skipped without a country code")
	}
	if resp.ResponseType != "map" {
		t.Errorf("ResponseType = %q, want map", resp.ResponseType)
	}
}

func TestAsk_TextCompletion(t *testing.T) {
	completion := &mockCompletionClient{text: "Try the flying fish."}
	svc := newTestAssistantService(completion, &mockGeocoder{}, utils.MapsConfig{})

	resp, err := svc.Ask(context.Background(), "  tourism: best food on the island  ", "Barbados")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if resp.ResponseType != "text" {
		t.Fatalf("ResponseType = %q, want text", resp.ResponseType)
	}
	if resp.Text != "Try the flying fish." {
		t.Errorf("Text = %q", resp.Text)
	}
	if completion.gotPrompt != "tourism: best food on the island" {
		t.Errorf("prompt not trimmed before submission: %q", completion.gotPrompt)
	}
}

func TestAsk_EmptyCompletionUsesPlaceholder(t *testing.T) {
	svc := newTestAssistantService(&mockCompletionClient{text: ""}, &mockGeocoder{}, utils.MapsConfig{})

	resp, err := svc.Ask(context.Background(), "what should I pack", "")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if resp.Text != noCompletionText {
		t.Errorf("Text = %q, want placeholder", resp.Text)
	}
}

func TestAsk_CompletionErrorSurfaced(t *testing.T) {
	upstream := &utils.UpstreamError{Service: "gemini", StatusCode: 429, Detail: "quota"}
	svc := newTestAssistantService(&mockCompletionClient{err: upstream}, &mockGeocoder{}, utils.MapsConfig{})

	_, err := svc.Ask(context.Background(), "plan my week", "")
	var got *utils.UpstreamError
	if !errors.As(err, &got) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if got.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want 429", got.StatusCode)
	}
}

func TestAsk_EmptyPrompt(t *testing.T) {
	svc := newTestAssistantService(&mockCompletionClient{}, &mockGeocoder{}, utils.MapsConfig{})

	if _, err := svc.Ask(context.Background(), "   ", ""); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
