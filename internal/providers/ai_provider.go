package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"routescout/internal/models/domain_models"
	"routescout/pkg/utils"
)

// AIProvider is the generation tier of last resort. It asks the completion
// collaborator to synthesize plausible places near a sample point. Failures
// of any kind produce an empty result.
type AIProvider struct {
	completion utils.CompletionClientInterface
}

func NewAIProvider(completion utils.CompletionClientInterface) *AIProvider {
	return &AIProvider{completion: completion}
}

func (p *AIProvider) Name() string { return "ai" }

func (p *AIProvider) Source() domain_models.POISource { return domain_models.SourceAI }

func (p *AIProvider) FetchNearby(ctx context.Context, sample domain_models.RouteSample, tripCtx domain_models.TripContext, limit int) []domain_models.POICandidate {
	if p.completion == nil {
		return []domain_models.POICandidate{}
	}
	if limit <= 0 {
		limit = 5
	}
	if limit > 8 {
		limit = 8
	}

	prompt := fmt.Sprintf(`List up to %d real, well-known points of interest within roughly 10 km of latitude %.4f, longitude %.4f.
The traveler is on a %s trip (%s budget)%s.
Return a JSON array only, each element:
{"name":"...","category":"attraction|accommodation|restaurant|activity|viewpoint|nature|culture|shopping|other","lat":0.0,"lng":0.0,"description":"one sentence","visit_duration_minutes":60,"best_time_of_day":"morning|afternoon|evening"}
Use only places you are confident exist. Return [] if unsure.`,
		limit, sample.Latitude, sample.Longitude,
		tripCtx.TravelType, tripCtx.Budget, interestsClause(tripCtx.Interests))

	raw, err := p.completion.CompleteJSON(ctx, prompt)
	if err != nil {
		log.Printf("Warning: ai poi generation failed: %v", err)
		return []domain_models.POICandidate{}
	}

	return ParseGeneratedPOIs(raw, limit)
}

func interestsClause(interests []string) string {
	if len(interests) == 0 {
		return ""
	}
	return ", interested in " + strings.Join(interests, ", ")
}

type generatedPOI struct {
	Name                 string  `json:"name"`
	Category             string  `json:"category"`
	Lat                  float64 `json:"lat"`
	Lng                  float64 `json:"lng"`
	Description          string  `json:"description"`
	VisitDurationMinutes int     `json:"visit_duration_minutes"`
	BestTimeOfDay        string  `json:"best_time_of_day"`
}

// ParseGeneratedPOIs converts a model completion into candidates tagged with
// the AI source tier. Shared with the gap filler, whose completions use the
// same shape. Malformed input yields an empty slice.
func ParseGeneratedPOIs(raw string, limit int) []domain_models.POICandidate {
	var generated []generatedPOI
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &generated); err != nil {
		log.Printf("Warning: ai poi payload unparseable: %v", err)
		return []domain_models.POICandidate{}
	}

	source := domain_models.SourceAI
	candidates := make([]domain_models.POICandidate, 0, len(generated))
	for _, g := range generated {
		if g.Name == "" {
			continue
		}
		candidates = append(candidates, domain_models.POICandidate{
			ID:                   uuid.New().String(),
			Name:                 g.Name,
			Category:             CategorizeTag(g.Category),
			SubType:              g.Category,
			Coordinate:           domain_models.Coordinate{Latitude: g.Lat, Longitude: g.Lng},
			Description:          g.Description,
			Source:               source,
			RelevanceScore:       source.BaseScore(),
			VisitDurationMinutes: g.VisitDurationMinutes,
			BestTimeOfDay:        g.BestTimeOfDay,
		})
		if limit > 0 && len(candidates) >= limit {
			break
		}
	}
	return candidates
}
