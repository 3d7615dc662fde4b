package providers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"routescout/internal/models/domain_models"
)

// OpenTripMapProvider queries the OpenTripMap places API. Free tier, key
// required; without a key the adapter stays silent.
type OpenTripMapProvider struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	RadiusM int
}

func NewOpenTripMapProvider() *OpenTripMapProvider {
	return &OpenTripMapProvider{
		HTTP:    &http.Client{Timeout: 8 * time.Second},
		APIKey:  os.Getenv("OPENTRIPMAP_API_KEY"),
		BaseURL: "https://api.opentripmap.com",
		RadiusM: 5000,
	}
}

func (p *OpenTripMapProvider) Name() string { return "opentripmap" }

func (p *OpenTripMapProvider) Source() domain_models.POISource {
	return domain_models.SourceOpenTripMap
}

func (p *OpenTripMapProvider) FetchNearby(ctx context.Context, sample domain_models.RouteSample, tripCtx domain_models.TripContext, limit int) []domain_models.POICandidate {
	if p.APIKey == "" {
		return []domain_models.POICandidate{}
	}
	if limit <= 0 {
		limit = 10
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		log.Printf("Warning: opentripmap bad base url: %v", err)
		return []domain_models.POICandidate{}
	}
	u.Path = "/0.1/en/places/radius"

	q := url.Values{}
	q.Set("radius", strconv.Itoa(p.RadiusM))
	q.Set("lat", strconv.FormatFloat(sample.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(sample.Longitude, 'f', -1, 64))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("rate", "2") // skip unverified places
	q.Set("apikey", p.APIKey)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := p.HTTP.Do(req)
	if err != nil {
		log.Printf("Warning: opentripmap call failed: %v", err)
		return []domain_models.POICandidate{}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		log.Printf("Warning: opentripmap bad status: %s", resp.Status)
		return []domain_models.POICandidate{}
	}

	var payload struct {
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties struct {
				Name  string  `json:"name"`
				Kinds string  `json:"kinds"`
				Rate  float64 `json:"rate"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Warning: opentripmap decode failed: %v", err)
		return []domain_models.POICandidate{}
	}

	candidates := make([]domain_models.POICandidate, 0, len(payload.Features))
	for _, feature := range payload.Features {
		if feature.Properties.Name == "" || len(feature.Geometry.Coordinates) < 2 {
			continue
		}

		kinds := feature.Properties.Kinds
		primaryKind := kinds
		if idx := strings.Index(kinds, ","); idx > 0 {
			primaryKind = kinds[:idx]
		}

		source := p.Source()
		candidates = append(candidates, domain_models.POICandidate{
			ID:       uuid.New().String(),
			Name:     feature.Properties.Name,
			Category: CategorizeTag(kinds),
			SubType:  primaryKind,
			Coordinate: domain_models.Coordinate{
				Latitude:  feature.Geometry.Coordinates[1],
				Longitude: feature.Geometry.Coordinates[0],
			},
			Rating:         feature.Properties.Rate / 7 * 5, // OpenTripMap rates 0-7
			Source:         source,
			RelevanceScore: source.BaseScore(),
		})
		if len(candidates) >= limit {
			break
		}
	}

	return candidates
}
