package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"routescout/internal/models/domain_models"
)

func TestOpenTripMapSilentWithoutKey(t *testing.T) {
	provider := &OpenTripMapProvider{HTTP: http.DefaultClient, BaseURL: "http://127.0.0.1:0"}

	if got := provider.FetchNearby(context.Background(), testSample(), domain_models.TripContext{}, 10); len(got) != 0 {
		t.Fatalf("keyless adapter returned %d candidates, want silence", len(got))
	}
}

func TestOpenTripMapFetchNearby(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/0.1/en/places/radius" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("apikey") != "otm-test-key" {
			t.Errorf("apikey = %q", r.URL.Query().Get("apikey"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[
			{"geometry":{"coordinates":[105.85,21.03]},
			 "properties":{"name":"One Pillar Pagoda","kinds":"temples,religion","rate":7}},
			{"geometry":{"coordinates":[105.84,21.04]},
			 "properties":{"name":"","kinds":"museums","rate":3}}
		]}`))
	}))
	defer server.Close()

	provider := &OpenTripMapProvider{
		HTTP:    server.Client(),
		APIKey:  "otm-test-key",
		BaseURL: server.URL,
		RadiusM: 5000,
	}

	got := provider.FetchNearby(context.Background(), testSample(), domain_models.TripContext{}, 10)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1 (nameless feature skipped)", len(got))
	}
	c := got[0]
	if c.Name != "One Pillar Pagoda" || c.Category != domain_models.CategoryCulture {
		t.Fatalf("candidate = %q %s", c.Name, c.Category)
	}
	if c.Coordinate.Latitude != 21.03 || c.Coordinate.Longitude != 105.85 {
		t.Fatalf("GeoJSON order mishandled: candidate at %v,%v", c.Coordinate.Latitude, c.Coordinate.Longitude)
	}
	if c.Rating != 5 {
		t.Fatalf("rating = %v, want top rate 7 rescaled to 5", c.Rating)
	}
	if c.SubType != "temples" {
		t.Fatalf("sub type = %q, want the primary kind", c.SubType)
	}
}
