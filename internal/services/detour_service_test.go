package services

import (
	"context"
	"errors"
	"testing"

	"routescout/internal/models/domain_models"
	"routescout/pkg/memcache"
)

// fakeRouting counts calls and answers with a fixed duration per leg count.
type fakeRouting struct {
	calls            int
	fail             bool
	durationByCoords map[int]float64 // len(coords) -> duration seconds
}

func (f *fakeRouting) Route(ctx context.Context, coords []domain_models.Coordinate, mode domain_models.TransportMode) (memcache.RouteSummary, error) {
	f.calls++
	if f.fail {
		return memcache.RouteSummary{}, errors.New("routing down")
	}
	return memcache.RouteSummary{DurationSeconds: f.durationByCoords[len(coords)]}, nil
}

func (f *fakeRouting) RouteGeometry(ctx context.Context, coords []domain_models.Coordinate, mode domain_models.TransportMode) ([]domain_models.Coordinate, memcache.RouteSummary, error) {
	if f.fail {
		return nil, memcache.RouteSummary{}, errors.New("routing down")
	}
	return coords, memcache.RouteSummary{}, nil
}

func testRoute() []domain_models.Coordinate {
	route := make([]domain_models.Coordinate, 20)
	for i := range route {
		route[i] = domain_models.Coordinate{Latitude: float64(i) * 0.1, Longitude: 0}
	}
	return route
}

func TestEstimateDetourNearRouteSkipsRouting(t *testing.T) {
	routing := &fakeRouting{}
	detour := NewDetourService(routing)

	// ~0.5 km east of the first vertex.
	poi := domain_models.Coordinate{Latitude: 0, Longitude: 0.0045}
	minutes := detour.EstimateDetour(context.Background(), testRoute(), poi, domain_models.TransportDriving)

	if routing.calls != 0 {
		t.Fatalf("routing called %d times for a near-route POI, want 0", routing.calls)
	}
	if minutes < 0.9 || minutes > 1.1 {
		t.Fatalf("near-route estimate = %v minutes, want ~1 (2 min/km * 0.5 km)", minutes)
	}
}

func TestEstimateDetourUsesRoutingDifference(t *testing.T) {
	routing := &fakeRouting{durationByCoords: map[int]float64{
		3: 1800, // nearest -> poi -> lookahead
		2: 900,  // nearest -> lookahead
	}}
	detour := NewDetourService(routing)

	// ~2.2 km east of a mid-route vertex.
	poi := domain_models.Coordinate{Latitude: 1.0, Longitude: 0.02}
	minutes := detour.EstimateDetour(context.Background(), testRoute(), poi, domain_models.TransportDriving)

	if routing.calls != 2 {
		t.Fatalf("routing called %d times, want 2", routing.calls)
	}
	if minutes != 15 {
		t.Fatalf("detour = %v minutes, want 15", minutes)
	}
}

func TestEstimateDetourFloorsAtZero(t *testing.T) {
	routing := &fakeRouting{durationByCoords: map[int]float64{
		3: 600,
		2: 900, // direct leg slower than the detour leg
	}}
	detour := NewDetourService(routing)

	poi := domain_models.Coordinate{Latitude: 1.0, Longitude: 0.02}
	minutes := detour.EstimateDetour(context.Background(), testRoute(), poi, domain_models.TransportDriving)
	if minutes != 0 {
		t.Fatalf("detour = %v minutes, want 0 floor", minutes)
	}
}

func TestEstimateDetourFallsBackOnRoutingFailure(t *testing.T) {
	routing := &fakeRouting{fail: true}
	detour := NewDetourService(routing)

	// ~2.22 km from the route; the fallback is 2 min/km.
	poi := domain_models.Coordinate{Latitude: 1.0, Longitude: 0.02}
	minutes := detour.EstimateDetour(context.Background(), testRoute(), poi, domain_models.TransportDriving)

	if minutes < 0 {
		t.Fatalf("detour = %v, must never be negative", minutes)
	}
	if minutes < 4.2 || minutes > 4.7 {
		t.Fatalf("fallback estimate = %v minutes, want ~4.45 (2 min/km * 2.22 km)", minutes)
	}
}

func TestWorthTheDetourThresholds(t *testing.T) {
	detour := NewDetourService(&fakeRouting{fail: true})

	plain := domain_models.POICandidate{Name: "Roadside Stop", Category: domain_models.CategoryOther}
	highRated := domain_models.POICandidate{Name: "Famous Falls", Category: domain_models.CategoryNature, Rating: 4.8}
	matching := domain_models.POICandidate{Name: "City Museum", Category: domain_models.CategoryCulture}

	cases := []struct {
		name      string
		minutes   float64
		candidate domain_models.POICandidate
		interests []string
		want      bool
	}{
		{"short detour always worth it", 8, plain, nil, true},
		{"long detour rejected", 25, highRated, []string{"culture"}, false},
		{"high rating extends threshold", 18, highRated, nil, true},
		{"plain poi rejected at 18", 18, plain, nil, false},
		{"interest match extends threshold", 13, matching, []string{"culture"}, true},
		{"no interest match rejected at 13", 13, plain, []string{"culture"}, false},
	}

	for _, tc := range cases {
		if got := detour.WorthTheDetour(tc.minutes, tc.candidate, tc.interests); got != tc.want {
			t.Fatalf("%s: WorthTheDetour(%v) = %v, want %v", tc.name, tc.minutes, got, tc.want)
		}
	}
}
