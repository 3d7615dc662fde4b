package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"routescout/internal/models/domain_models"
)

// OverpassProvider queries OpenStreetMap through the Overpass API. Free,
// keyless, community data.
type OverpassProvider struct {
	HTTP    *http.Client
	BaseURL string
	RadiusM int
}

func NewOverpassProvider() *OverpassProvider {
	return &OverpassProvider{
		HTTP:    &http.Client{Timeout: 8 * time.Second},
		BaseURL: "https://overpass-api.de/api/interpreter",
		RadiusM: 5000,
	}
}

func (p *OverpassProvider) Name() string { return "overpass" }

func (p *OverpassProvider) Source() domain_models.POISource { return domain_models.SourceOverpass }

func (p *OverpassProvider) FetchNearby(ctx context.Context, sample domain_models.RouteSample, tripCtx domain_models.TripContext, limit int) []domain_models.POICandidate {
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(`[out:json][timeout:8];
(
  node(around:%d,%f,%f)["tourism"]["name"];
  node(around:%d,%f,%f)["historic"]["name"];
  node(around:%d,%f,%f)["amenity"~"restaurant|cafe|fast_food"]["name"];
  node(around:%d,%f,%f)["natural"~"peak|waterfall|beach"]["name"];
);
out body %d;`,
		p.RadiusM, sample.Latitude, sample.Longitude,
		p.RadiusM, sample.Latitude, sample.Longitude,
		p.RadiusM, sample.Latitude, sample.Longitude,
		p.RadiusM, sample.Latitude, sample.Longitude,
		limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL, strings.NewReader(url.Values{"data": {query}}.Encode()))
	if err != nil {
		log.Printf("Warning: overpass request build failed: %v", err)
		return []domain_models.POICandidate{}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		log.Printf("Warning: overpass call failed: %v", err)
		return []domain_models.POICandidate{}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		log.Printf("Warning: overpass bad status: %s", resp.Status)
		return []domain_models.POICandidate{}
	}

	var payload struct {
		Elements []struct {
			Lat  float64           `json:"lat"`
			Lon  float64           `json:"lon"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Warning: overpass decode failed: %v", err)
		return []domain_models.POICandidate{}
	}

	candidates := make([]domain_models.POICandidate, 0, len(payload.Elements))
	for _, element := range payload.Elements {
		name := element.Tags["name"]
		if name == "" {
			continue
		}

		rawTag := firstNonEmpty(element.Tags["tourism"], element.Tags["historic"], element.Tags["amenity"], element.Tags["natural"])
		source := p.Source()
		candidates = append(candidates, domain_models.POICandidate{
			ID:             uuid.New().String(),
			Name:           name,
			Category:       CategorizeTag(rawTag),
			SubType:        rawTag,
			Coordinate:     domain_models.Coordinate{Latitude: element.Lat, Longitude: element.Lon},
			Description:    element.Tags["description"],
			Source:         source,
			RelevanceScore: source.BaseScore(),
		})
		if len(candidates) >= limit {
			break
		}
	}

	return candidates
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
