package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"routescout/internal/models/domain_models"
	"routescout/pkg/utils"
)

// GeocodingServiceInterface resolves a place name to coordinates. Used when a
// trip context arrives with names only.
type GeocodingServiceInterface interface {
	Geocode(ctx context.Context, name string) (domain_models.Coordinate, string, error)
}

type MapboxGeocodingClient struct {
	HTTP        *http.Client
	AccessToken string
	BaseURL     string
}

func NewMapboxGeocodingClient() *MapboxGeocodingClient {
	return &MapboxGeocodingClient{
		HTTP:        &http.Client{Timeout: 10 * time.Second},
		AccessToken: os.Getenv("MAPBOX_ACCESS_TOKEN"),
		BaseURL:     "https://api.mapbox.com",
	}
}

func (c *MapboxGeocodingClient) Geocode(ctx context.Context, name string) (domain_models.Coordinate, string, error) {
	if name == "" {
		return domain_models.Coordinate{}, "", fmt.Errorf("%w: empty place name", utils.ErrInvalidInput)
	}
	if c.AccessToken == "" {
		return domain_models.Coordinate{}, "", fmt.Errorf("%w: MAPBOX_ACCESS_TOKEN is empty", utils.ErrGeocodingFailed)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return domain_models.Coordinate{}, "", fmt.Errorf("%w: bad base url: %v", utils.ErrGeocodingFailed, err)
	}
	u.Path = fmt.Sprintf("/geocoding/v5/mapbox.places/%s.json", url.PathEscape(name))

	q := url.Values{}
	q.Set("access_token", c.AccessToken)
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain_models.Coordinate{}, "", fmt.Errorf("%w: %v", utils.ErrGeocodingFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return domain_models.Coordinate{}, "", fmt.Errorf("%w: status %s", utils.ErrGeocodingFailed, resp.Status)
	}

	var payload struct {
		Features []struct {
			Center    []float64 `json:"center"`
			PlaceName string    `json:"place_name"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain_models.Coordinate{}, "", fmt.Errorf("%w: decode: %v", utils.ErrMalformedResponse, err)
	}
	if len(payload.Features) == 0 || len(payload.Features[0].Center) < 2 {
		return domain_models.Coordinate{}, "", fmt.Errorf("%w: no match for %q", utils.ErrGeocodingFailed, name)
	}

	feature := payload.Features[0]
	coord := domain_models.Coordinate{
		Latitude:  feature.Center[1],
		Longitude: feature.Center[0],
	}
	return coord, feature.PlaceName, nil
}
