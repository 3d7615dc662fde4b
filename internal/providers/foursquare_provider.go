package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"routescout/internal/models/domain_models"
)

// FoursquareProvider queries the Foursquare Places API, the paid commercial
// tier. An absent key disables the adapter without error.
type FoursquareProvider struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	RadiusM int
}

func NewFoursquareProvider() *FoursquareProvider {
	return &FoursquareProvider{
		HTTP:    &http.Client{Timeout: 8 * time.Second},
		APIKey:  os.Getenv("FOURSQUARE_API_KEY"),
		BaseURL: "https://api.foursquare.com",
		RadiusM: 5000,
	}
}

func (p *FoursquareProvider) Name() string { return "foursquare" }

func (p *FoursquareProvider) Source() domain_models.POISource {
	return domain_models.SourceFoursquare
}

func (p *FoursquareProvider) FetchNearby(ctx context.Context, sample domain_models.RouteSample, tripCtx domain_models.TripContext, limit int) []domain_models.POICandidate {
	if p.APIKey == "" {
		return []domain_models.POICandidate{}
	}
	if limit <= 0 {
		limit = 10
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		log.Printf("Warning: foursquare bad base url: %v", err)
		return []domain_models.POICandidate{}
	}
	u.Path = "/v3/places/search"

	q := url.Values{}
	q.Set("ll", fmt.Sprintf("%f,%f", sample.Latitude, sample.Longitude))
	q.Set("radius", strconv.Itoa(p.RadiusM))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("fields", "name,categories,geocodes,rating,description")
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	req.Header.Set("Authorization", p.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		log.Printf("Warning: foursquare call failed: %v", err)
		return []domain_models.POICandidate{}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		log.Printf("Warning: foursquare bad status: %s", resp.Status)
		return []domain_models.POICandidate{}
	}

	var payload struct {
		Results []struct {
			Name       string `json:"name"`
			Categories []struct {
				Name string `json:"name"`
			} `json:"categories"`
			Geocodes struct {
				Main struct {
					Latitude  float64 `json:"latitude"`
					Longitude float64 `json:"longitude"`
				} `json:"main"`
			} `json:"geocodes"`
			Rating      float64 `json:"rating"` // Foursquare rates 0-10
			Description string  `json:"description"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Warning: foursquare decode failed: %v", err)
		return []domain_models.POICandidate{}
	}

	candidates := make([]domain_models.POICandidate, 0, len(payload.Results))
	for _, result := range payload.Results {
		if result.Name == "" {
			continue
		}

		rawCategory := ""
		if len(result.Categories) > 0 {
			rawCategory = result.Categories[0].Name
		}

		source := p.Source()
		candidates = append(candidates, domain_models.POICandidate{
			ID:       uuid.New().String(),
			Name:     result.Name,
			Category: CategorizeTag(rawCategory),
			SubType:  rawCategory,
			Coordinate: domain_models.Coordinate{
				Latitude:  result.Geocodes.Main.Latitude,
				Longitude: result.Geocodes.Main.Longitude,
			},
			Rating:         result.Rating / 2,
			Description:    result.Description,
			Source:         source,
			RelevanceScore: source.BaseScore(),
		})
	}

	return candidates
}
