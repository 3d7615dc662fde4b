package services

import (
	"context"
	"errors"
	"testing"

	"routescout/internal/models/domain_models"
	"routescout/internal/providers"
	"routescout/pkg/utils"
)

type fakeGeocoding struct {
	coords map[string]domain_models.Coordinate
}

func (f *fakeGeocoding) Geocode(ctx context.Context, name string) (domain_models.Coordinate, string, error) {
	coord, ok := f.coords[name]
	if !ok {
		return domain_models.Coordinate{}, "", utils.ErrGeocodingFailed
	}
	return coord, name, nil
}

func newTestDiscovery(adapters []providers.ProviderAdapter, geocoding GeocodingServiceInterface, routing RoutingServiceInterface) DiscoveryServiceInterface {
	return NewDiscoveryService(
		NewSamplerService(),
		NewAggregatorService([][]providers.ProviderAdapter{adapters}, nil),
		NewDedupeService(),
		NewDetourService(routing),
		NewRankerService(),
		NewPlannerService(nil),
		geocoding,
		routing,
		nil,
		nil,
	)
}

func TestDiscoverPOIsEndToEnd(t *testing.T) {
	adapter := &fakeAdapter{name: "osm", source: domain_models.SourceOverpass, perCall: 4}
	svc := newTestDiscovery([]providers.ProviderAdapter{adapter}, &fakeGeocoding{}, &fakeRouting{})

	tripCtx := domain_models.TripContext{
		TravelType:   domain_models.TravelTypeRoadTrip,
		Transport:    domain_models.TransportWalking,
		DurationDays: 2,
		Route:        straightRoute(8, 0.5),
	}

	result, err := svc.DiscoverPOIs(context.Background(), tripCtx, 10)
	if err != nil {
		t.Fatalf("DiscoverPOIs: %v", err)
	}
	if len(result.Candidates) == 0 {
		t.Fatal("pipeline yielded no candidates")
	}
	if len(result.Candidates) > 10 {
		t.Fatalf("result exceeds target: %d", len(result.Candidates))
	}
	for i := 1; i < len(result.Candidates); i++ {
		if result.Candidates[i].RelevanceScore > result.Candidates[i-1].RelevanceScore {
			t.Fatalf("candidates not sorted by score at %d", i)
		}
	}
	if len(result.Strategy.PriorityCategories) == 0 {
		t.Fatal("result carries no strategy")
	}
	if len(result.Route) != 8 {
		t.Fatalf("result route has %d vertices, want the provided 8", len(result.Route))
	}
}

func TestDiscoverPOIsResolvesNamedStops(t *testing.T) {
	adapter := &fakeAdapter{name: "osm", source: domain_models.SourceOverpass, perCall: 2}
	geocoding := &fakeGeocoding{coords: map[string]domain_models.Coordinate{
		"Hanoi":     {Latitude: 21.03, Longitude: 105.85},
		"Ninh Binh": {Latitude: 20.25, Longitude: 105.97},
	}}
	svc := newTestDiscovery([]providers.ProviderAdapter{adapter}, geocoding, &fakeRouting{})

	result, err := svc.DiscoverPOIs(context.Background(), domain_models.TripContext{
		Origin:       "Hanoi",
		Destination:  "Ninh Binh",
		TravelType:   domain_models.TravelTypeCultural,
		Transport:    domain_models.TransportWalking,
		DurationDays: 1,
	}, 20)
	if err != nil {
		t.Fatalf("DiscoverPOIs: %v", err)
	}
	if len(result.Route) < 2 {
		t.Fatalf("resolved route has %d vertices", len(result.Route))
	}
	if len(result.Candidates) == 0 {
		t.Fatal("no candidates from resolved route")
	}
}

func TestDiscoverPOIsStraightLegsWhenRoutingDown(t *testing.T) {
	adapter := &fakeAdapter{name: "osm", source: domain_models.SourceOverpass, perCall: 2}
	geocoding := &fakeGeocoding{coords: map[string]domain_models.Coordinate{
		"A": {Latitude: 10, Longitude: 106},
		"B": {Latitude: 10.5, Longitude: 106.5},
	}}
	svc := newTestDiscovery([]providers.ProviderAdapter{adapter}, geocoding, &fakeRouting{fail: true})

	result, err := svc.DiscoverPOIs(context.Background(), domain_models.TripContext{
		Origin:      "A",
		Destination: "B",
		Transport:   domain_models.TransportWalking,
	}, 20)
	if err != nil {
		t.Fatalf("routing outage should not fail discovery: %v", err)
	}
	if len(result.Route) != 2 {
		t.Fatalf("fallback route has %d vertices, want the 2 geocoded stops", len(result.Route))
	}
}

func TestDiscoverPOIsNoPOIsFound(t *testing.T) {
	adapter := &fakeAdapter{name: "osm", source: domain_models.SourceOverpass, failOpen: true}
	svc := newTestDiscovery([]providers.ProviderAdapter{adapter}, &fakeGeocoding{}, &fakeRouting{})

	result, err := svc.DiscoverPOIs(context.Background(), domain_models.TripContext{
		Transport: domain_models.TransportWalking,
		Route:     straightRoute(4, 0.5),
	}, 10)
	if !errors.Is(err, utils.ErrNoPOIsFound) {
		t.Fatalf("err = %v, want ErrNoPOIsFound", err)
	}
	if result.Candidates == nil || len(result.Candidates) != 0 {
		t.Fatalf("empty pipeline should still return an empty candidate set, got %#v", result.Candidates)
	}
	if len(result.Route) != 4 {
		t.Fatal("result should keep the resolved route even when nothing was found")
	}
}

func TestDiscoverPOIsRejectsUnderspecifiedTrip(t *testing.T) {
	svc := newTestDiscovery(nil, &fakeGeocoding{}, &fakeRouting{})

	_, err := svc.DiscoverPOIs(context.Background(), domain_models.TripContext{Origin: "Hanoi"}, 10)
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestDiscoverPOIsCostsDetoursWhenDriving(t *testing.T) {
	adapter := &fakeAdapter{name: "osm", source: domain_models.SourceOverpass, perCall: 2}
	routing := &fakeRouting{durationByCoords: map[int]float64{2: 900, 3: 900}}
	svc := newTestDiscovery([]providers.ProviderAdapter{adapter}, &fakeGeocoding{}, routing)

	result, err := svc.DiscoverPOIs(context.Background(), domain_models.TripContext{
		TravelType: domain_models.TravelTypeRoadTrip,
		Transport:  domain_models.TransportDriving,
		Route:      straightRoute(4, 0.5),
	}, 10)
	if err != nil {
		t.Fatalf("DiscoverPOIs: %v", err)
	}
	for _, c := range result.Candidates {
		if c.DetourMinutes == nil {
			t.Fatalf("candidate %q missing detour annotation under driving transport", c.Name)
		}
	}
}
