package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"routescout/internal/models/domain_models"
	"routescout/internal/providers"
	"routescout/pkg/utils"
)

const (
	relevanceSampleSize  = 30
	relevanceBoost       = 10.0
	gapFillScoreBonus    = 10.0
	maxSynthesizedPerGap = 3
)

// PlannerServiceInterface groups the three LLM-backed operations of the
// pipeline. Each one degrades to a deterministic result when the completion
// collaborator fails: a static strategy table, an unfiltered pass-through,
// or an empty gap list. None of them ever returns an error.
type PlannerServiceInterface interface {
	GenerateStrategy(ctx context.Context, tripCtx domain_models.TripContext) domain_models.SearchStrategy
	ValidateRelevance(ctx context.Context, candidates []domain_models.POICandidate, tripCtx domain_models.TripContext) []domain_models.POICandidate
	IdentifyGaps(ctx context.Context, candidates []domain_models.POICandidate, tripCtx domain_models.TripContext) []domain_models.CoverageGap
	FillGaps(ctx context.Context, gaps []domain_models.CoverageGap, tripCtx domain_models.TripContext) []domain_models.POICandidate
}

type PlannerService struct {
	completion utils.CompletionClientInterface
}

func NewPlannerService(completion utils.CompletionClientInterface) PlannerServiceInterface {
	return &PlannerService{completion: completion}
}

// fallbackStrategies is the deterministic per-travel-type strategy table used
// whenever the model is unavailable or returns garbage.
var fallbackStrategies = map[domain_models.TravelType]domain_models.SearchStrategy{
	domain_models.TravelTypeRoadTrip: {
		PriorityCategories: []domain_models.POICategory{domain_models.CategoryViewpoint, domain_models.CategoryRestaurant, domain_models.CategoryAccommodation},
		AccommodationType:  "motel",
		MealsPerDay:        3,
		MealTypes:          []string{"diner", "local cuisine"},
		ActivitiesPerDay:   2,
		ActivityTypes:      []string{"scenic stop", "short walk"},
		CriticalGaps:       []string{"overnight stop every 600 km", "fuel and rest stops"},
	},
	domain_models.TravelTypeCultural: {
		PriorityCategories: []domain_models.POICategory{domain_models.CategoryCulture, domain_models.CategoryAttraction, domain_models.CategoryRestaurant},
		AccommodationType:  "boutique hotel",
		MealsPerDay:        3,
		MealTypes:          []string{"local cuisine"},
		ActivitiesPerDay:   3,
		ActivityTypes:      []string{"museum visit", "guided tour"},
		CriticalGaps:       []string{"museum or heritage site per day"},
	},
	domain_models.TravelTypeNature: {
		PriorityCategories: []domain_models.POICategory{domain_models.CategoryNature, domain_models.CategoryViewpoint, domain_models.CategoryActivity},
		AccommodationType:  "lodge",
		MealsPerDay:        3,
		MealTypes:          []string{"picnic", "local cuisine"},
		ActivitiesPerDay:   2,
		ActivityTypes:      []string{"hike", "wildlife watching"},
		CriticalGaps:       []string{"trailhead access", "daylight-dependent stops"},
	},
	domain_models.TravelTypeFamily: {
		PriorityCategories: []domain_models.POICategory{domain_models.CategoryActivity, domain_models.CategoryAttraction, domain_models.CategoryRestaurant},
		AccommodationType:  "family hotel",
		MealsPerDay:        3,
		MealTypes:          []string{"family friendly"},
		ActivitiesPerDay:   2,
		ActivityTypes:      []string{"playground", "interactive museum"},
		CriticalGaps:       []string{"rest stop every 2 hours"},
	},
	domain_models.TravelTypeLuxury: {
		PriorityCategories: []domain_models.POICategory{domain_models.CategoryAccommodation, domain_models.CategoryRestaurant, domain_models.CategoryCulture},
		AccommodationType:  "five-star hotel",
		MealsPerDay:        3,
		MealTypes:          []string{"fine dining"},
		ActivitiesPerDay:   2,
		ActivityTypes:      []string{"spa", "private tour"},
		CriticalGaps:       []string{"fine dining reservation per evening"},
	},
}

// defaultStrategy covers travel types without a dedicated fallback row.
var defaultStrategy = domain_models.SearchStrategy{
	PriorityCategories: []domain_models.POICategory{domain_models.CategoryAttraction, domain_models.CategoryRestaurant, domain_models.CategoryAccommodation},
	AccommodationType:  "hotel",
	MealsPerDay:        3,
	MealTypes:          []string{"local cuisine"},
	ActivitiesPerDay:   2,
	ActivityTypes:      []string{"sightseeing"},
}

func (p *PlannerService) fallbackStrategy(tripCtx domain_models.TripContext) domain_models.SearchStrategy {
	strategy, ok := fallbackStrategies[tripCtx.TravelType]
	if !ok {
		strategy = defaultStrategy
	}
	if tripCtx.DurationDays > 1 {
		strategy.NightsToBook = tripCtx.DurationDays - 1
	}
	return strategy
}

func (p *PlannerService) GenerateStrategy(ctx context.Context, tripCtx domain_models.TripContext) domain_models.SearchStrategy {
	if p.completion == nil {
		return p.fallbackStrategy(tripCtx)
	}

	prompt := fmt.Sprintf(`Plan a POI search strategy for a %d-day %s trip from %s to %s (%s budget, traveling by %s)%s.
Return JSON only:
{"priority_categories":["attraction","accommodation","restaurant","activity","viewpoint","nature","culture","shopping"],
"accommodation_type":"...","nights_to_book":0,"meals_per_day":3,"meal_types":["..."],
"activities_per_day":2,"activity_types":["..."],"critical_gaps":["..."]}
priority_categories must use only the listed enum values, most important first.`,
		tripCtx.DurationDays, tripCtx.TravelType, tripCtx.Origin, tripCtx.Destination,
		tripCtx.Budget, tripCtx.Transport, interestsSuffix(tripCtx.Interests))

	raw, err := p.completion.CompleteJSON(ctx, prompt)
	if err != nil {
		log.Printf("Warning: strategy generation failed, using static table: %v", err)
		return p.fallbackStrategy(tripCtx)
	}

	var strategy domain_models.SearchStrategy
	if err := json.Unmarshal([]byte(raw), &strategy); err != nil {
		log.Printf("Warning: strategy payload unparseable, using static table: %v", err)
		return p.fallbackStrategy(tripCtx)
	}
	if len(strategy.PriorityCategories) == 0 {
		return p.fallbackStrategy(tripCtx)
	}
	return strategy
}

// ValidateRelevance asks the model which of a bounded sample of candidates
// fit the trip and boosts the ones it confirms. On any failure the input is
// returned unchanged; validation never filters.
func (p *PlannerService) ValidateRelevance(ctx context.Context, candidates []domain_models.POICandidate, tripCtx domain_models.TripContext) []domain_models.POICandidate {
	if p.completion == nil || len(candidates) == 0 {
		return candidates
	}

	sampleSize := len(candidates)
	if sampleSize > relevanceSampleSize {
		sampleSize = relevanceSampleSize
	}

	var listing strings.Builder
	for i := 0; i < sampleSize; i++ {
		fmt.Fprintf(&listing, "%d. %s (%s)\n", i, candidates[i].Name, candidates[i].Category)
	}

	prompt := fmt.Sprintf(`A traveler is on a %d-day %s trip%s. Which of these places fit the trip?
%s
Return JSON only: an array of the fitting index numbers, e.g. [0,2,5]. Return [] if none fit.`,
		tripCtx.DurationDays, tripCtx.TravelType, interestsSuffix(tripCtx.Interests), listing.String())

	raw, err := p.completion.CompleteJSON(ctx, prompt)
	if err != nil {
		log.Printf("Warning: relevance validation failed, passing candidates through: %v", err)
		return candidates
	}

	var relevant []int
	if err := json.Unmarshal([]byte(raw), &relevant); err != nil {
		log.Printf("Warning: relevance payload unparseable, passing candidates through: %v", err)
		return candidates
	}

	for _, idx := range relevant {
		if idx >= 0 && idx < sampleSize {
			candidates[idx].AddScore(relevanceBoost)
		}
	}
	return candidates
}

func (p *PlannerService) IdentifyGaps(ctx context.Context, candidates []domain_models.POICandidate, tripCtx domain_models.TripContext) []domain_models.CoverageGap {
	if p.completion == nil {
		return []domain_models.CoverageGap{}
	}

	counts := make(map[domain_models.POICategory]int)
	for _, c := range candidates {
		counts[c.Category]++
	}
	countsJSON, _ := json.Marshal(counts)

	prompt := fmt.Sprintf(`A %d-day %s trip from %s to %s has these POI category counts: %s.
Which coverage gaps remain? Return JSON only, an array of:
{"type":"accommodation|meal|activity|viewpoint|rest-stop","location":"...","reason":"...","priority":"critical|high|medium|low","suggestions":["..."]}
Return [] when coverage is adequate.`,
		tripCtx.DurationDays, tripCtx.TravelType, tripCtx.Origin, tripCtx.Destination, countsJSON)

	raw, err := p.completion.CompleteJSON(ctx, prompt)
	if err != nil {
		log.Printf("Warning: gap analysis failed: %v", err)
		return []domain_models.CoverageGap{}
	}

	var gaps []domain_models.CoverageGap
	if err := json.Unmarshal([]byte(raw), &gaps); err != nil {
		log.Printf("Warning: gap payload unparseable: %v", err)
		return []domain_models.CoverageGap{}
	}
	return gaps
}

// FillGaps synthesizes 2-3 concrete candidates per gap, tagged with the AI
// source tier and a distinct boosted score so gap fills sort above generic
// generated content.
func (p *PlannerService) FillGaps(ctx context.Context, gaps []domain_models.CoverageGap, tripCtx domain_models.TripContext) []domain_models.POICandidate {
	if p.completion == nil || len(gaps) == 0 {
		return []domain_models.POICandidate{}
	}

	var filled []domain_models.POICandidate
	for _, gap := range gaps {
		prompt := fmt.Sprintf(`A %s trip from %s to %s is missing %s coverage near %s (%s).
Suggest 2-3 real places that close this gap. Return a JSON array only, each element:
{"name":"...","category":"attraction|accommodation|restaurant|activity|viewpoint|nature|culture|shopping|other","lat":0.0,"lng":0.0,"description":"one sentence","visit_duration_minutes":60,"best_time_of_day":"morning|afternoon|evening"}`,
			tripCtx.TravelType, tripCtx.Origin, tripCtx.Destination, gap.Type, gap.Location, gap.Reason)

		raw, err := p.completion.CompleteJSON(ctx, prompt)
		if err != nil {
			log.Printf("Warning: gap fill failed for %s gap at %s: %v", gap.Type, gap.Location, err)
			continue
		}

		candidates := providers.ParseGeneratedPOIs(raw, maxSynthesizedPerGap)
		for i := range candidates {
			candidates[i].AddScore(gapFillScoreBonus)
		}
		filled = append(filled, candidates...)
	}

	if filled == nil {
		filled = []domain_models.POICandidate{}
	}
	return filled
}

func interestsSuffix(interests []string) string {
	if len(interests) == 0 {
		return ""
	}
	return " with interests: " + strings.Join(interests, ", ")
}
