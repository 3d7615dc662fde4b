package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"routescout/internal/models/domain_models"
	"routescout/pkg/memcache"
	"routescout/pkg/utils"
)

// RoutingServiceInterface is the routing collaborator. The detour estimator
// calls Route twice per estimate; the discovery pipeline uses RouteGeometry
// once when a trip arrives with place names only.
type RoutingServiceInterface interface {
	Route(ctx context.Context, coords []domain_models.Coordinate, mode domain_models.TransportMode) (memcache.RouteSummary, error)
	RouteGeometry(ctx context.Context, coords []domain_models.Coordinate, mode domain_models.TransportMode) ([]domain_models.Coordinate, memcache.RouteSummary, error)
}

type MapboxRoutingClient struct {
	HTTP        *http.Client
	AccessToken string
	BaseURL     string
	Cache       memcache.RouteCache
	DefaultTTL  time.Duration
}

func NewMapboxRoutingClient(cache memcache.RouteCache) *MapboxRoutingClient {
	return &MapboxRoutingClient{
		HTTP:        &http.Client{Timeout: 10 * time.Second},
		AccessToken: os.Getenv("MAPBOX_ACCESS_TOKEN"),
		BaseURL:     "https://api.mapbox.com",
		Cache:       cache,
		DefaultTTL:  7 * 24 * time.Hour,
	}
}

func profileFor(mode domain_models.TransportMode) string {
	switch mode {
	case domain_models.TransportCycling:
		return "cycling"
	case domain_models.TransportWalking:
		return "walking"
	default:
		// Mapbox has no transit profile; driving is the closest approximation.
		return "driving"
	}
}

func coordPath(coords []domain_models.Coordinate) string {
	parts := make([]string, 0, len(coords))
	for _, c := range coords {
		parts = append(parts, fmt.Sprintf("%f,%f", c.Longitude, c.Latitude))
	}
	return strings.Join(parts, ";")
}

func (c *MapboxRoutingClient) Route(ctx context.Context, coords []domain_models.Coordinate, mode domain_models.TransportMode) (memcache.RouteSummary, error) {
	if len(coords) < 2 {
		return memcache.RouteSummary{}, fmt.Errorf("%w: need at least two coordinates", utils.ErrInvalidInput)
	}

	profile := profileFor(mode)
	cacheKey := profile + "|" + coordPath(coords)
	if c.Cache != nil {
		if v, ok := c.Cache.Get(cacheKey); ok {
			return v, nil
		}
	}

	_, summary, err := c.fetch(ctx, coords, profile, false)
	if err != nil {
		return memcache.RouteSummary{}, err
	}

	if c.Cache != nil {
		c.Cache.Set(cacheKey, summary, c.DefaultTTL)
	}
	return summary, nil
}

func (c *MapboxRoutingClient) RouteGeometry(ctx context.Context, coords []domain_models.Coordinate, mode domain_models.TransportMode) ([]domain_models.Coordinate, memcache.RouteSummary, error) {
	if len(coords) < 2 {
		return nil, memcache.RouteSummary{}, fmt.Errorf("%w: need at least two coordinates", utils.ErrInvalidInput)
	}
	return c.fetch(ctx, coords, profileFor(mode), true)
}

func (c *MapboxRoutingClient) fetch(ctx context.Context, coords []domain_models.Coordinate, profile string, withGeometry bool) ([]domain_models.Coordinate, memcache.RouteSummary, error) {
	if c.AccessToken == "" {
		return nil, memcache.RouteSummary{}, fmt.Errorf("%w: MAPBOX_ACCESS_TOKEN is empty", utils.ErrRoutingService)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, memcache.RouteSummary{}, fmt.Errorf("%w: bad base url: %v", utils.ErrRoutingService, err)
	}
	u.Path = fmt.Sprintf("/directions/v5/mapbox/%s/%s", profile, coordPath(coords))

	q := url.Values{}
	q.Set("access_token", c.AccessToken)
	q.Set("geometries", "geojson")
	if withGeometry {
		q.Set("overview", "full")
	} else {
		q.Set("overview", "false")
	}
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, memcache.RouteSummary{}, fmt.Errorf("%w: %v", utils.ErrRoutingService, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, memcache.RouteSummary{}, fmt.Errorf("%w: status %s", utils.ErrRoutingService, resp.Status)
	}

	var payload struct {
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, memcache.RouteSummary{}, fmt.Errorf("%w: decode: %v", utils.ErrMalformedResponse, err)
	}
	if len(payload.Routes) == 0 {
		return nil, memcache.RouteSummary{}, fmt.Errorf("%w: no routes in response", utils.ErrRoutingService)
	}

	route := payload.Routes[0]
	summary := memcache.RouteSummary{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}

	var geometry []domain_models.Coordinate
	if withGeometry {
		geometry = make([]domain_models.Coordinate, 0, len(route.Geometry.Coordinates))
		for _, pair := range route.Geometry.Coordinates {
			if len(pair) < 2 {
				continue
			}
			geometry = append(geometry, domain_models.Coordinate{Latitude: pair[1], Longitude: pair[0]})
		}
	}

	return geometry, summary, nil
}
