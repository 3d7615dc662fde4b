package response_models

import (
	"routescout/internal/models/domain_models"
)

type POI struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	SubType              string   `json:"sub_type,omitempty"`
	Latitude             float64  `json:"latitude"`
	Longitude            float64  `json:"longitude"`
	Rating               float64  `json:"rating,omitempty"`
	Description          string   `json:"description,omitempty"`
	Source               string   `json:"source"`
	RelevanceScore       float64  `json:"relevance_score"`
	DetourMinutes        *float64 `json:"detour_minutes,omitempty"`
	VisitDurationMinutes int      `json:"visit_duration_minutes,omitempty"`
	BestTimeOfDay        string   `json:"best_time_of_day,omitempty"`
}

type DiscoveryResponse struct {
	POIs     []POI                        `json:"pois"`
	Strategy domain_models.SearchStrategy `json:"strategy"`
	Gaps     []domain_models.CoverageGap  `json:"gaps,omitempty"`
}

func FromDiscoveryResult(result domain_models.DiscoveryResult) DiscoveryResponse {
	pois := make([]POI, 0, len(result.Candidates))
	for _, candidate := range result.Candidates {
		pois = append(pois, POI{
			ID:                   candidate.ID,
			Name:                 candidate.Name,
			Category:             string(candidate.Category),
			SubType:              candidate.SubType,
			Latitude:             candidate.Coordinate.Latitude,
			Longitude:            candidate.Coordinate.Longitude,
			Rating:               candidate.Rating,
			Description:          candidate.Description,
			Source:               string(candidate.Source),
			RelevanceScore:       candidate.RelevanceScore,
			DetourMinutes:        candidate.DetourMinutes,
			VisitDurationMinutes: candidate.VisitDurationMinutes,
			BestTimeOfDay:        candidate.BestTimeOfDay,
		})
	}

	return DiscoveryResponse{
		POIs:     pois,
		Strategy: result.Strategy,
		Gaps:     result.Gaps,
	}
}
