package services

import (
	"context"
	"errors"
	"testing"

	"routescout/internal/models/domain_models"
)

// fakeCompletion returns one canned response, or an error when set.
type fakeCompletion struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeCompletion) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeCompletion) Close() error { return nil }

func TestGenerateStrategyFallsBackWithoutCompletion(t *testing.T) {
	planner := NewPlannerService(nil)
	tripCtx := domain_models.TripContext{
		TravelType:   domain_models.TravelTypeRoadTrip,
		DurationDays: 3,
	}

	strategy := planner.GenerateStrategy(context.Background(), tripCtx)
	if len(strategy.PriorityCategories) == 0 {
		t.Fatal("fallback strategy carries no priority categories")
	}
	if strategy.PriorityCategories[0] != domain_models.CategoryViewpoint {
		t.Fatalf("road-trip fallback leads with %s, want %s", strategy.PriorityCategories[0], domain_models.CategoryViewpoint)
	}
	if strategy.NightsToBook != 2 {
		t.Fatalf("NightsToBook = %d for a 3-day trip, want 2", strategy.NightsToBook)
	}
}

func TestGenerateStrategyFallsBackOnCompletionError(t *testing.T) {
	planner := NewPlannerService(&fakeCompletion{err: errors.New("quota exceeded")})
	tripCtx := domain_models.TripContext{TravelType: domain_models.TravelTypeCultural, DurationDays: 1}

	strategy := planner.GenerateStrategy(context.Background(), tripCtx)
	if strategy.AccommodationType != "boutique hotel" {
		t.Fatalf("AccommodationType = %q, want cultural fallback row", strategy.AccommodationType)
	}
}

func TestGenerateStrategyParsesModelResponse(t *testing.T) {
	planner := NewPlannerService(&fakeCompletion{response: `{
		"priority_categories": ["nature", "viewpoint"],
		"accommodation_type": "cabin",
		"nights_to_book": 1,
		"meals_per_day": 2,
		"meal_types": ["picnic"],
		"activities_per_day": 2,
		"activity_types": ["hike"],
		"critical_gaps": ["water refill points"]
	}`})

	strategy := planner.GenerateStrategy(context.Background(), domain_models.TripContext{
		TravelType:   domain_models.TravelTypeNature,
		DurationDays: 2,
	})
	if strategy.AccommodationType != "cabin" {
		t.Fatalf("AccommodationType = %q, want model value", strategy.AccommodationType)
	}
	if len(strategy.PriorityCategories) != 2 || strategy.PriorityCategories[0] != domain_models.CategoryNature {
		t.Fatalf("PriorityCategories = %v, want parsed order", strategy.PriorityCategories)
	}
	if len(strategy.CriticalGaps) != 1 {
		t.Fatalf("CriticalGaps = %v, want one entry", strategy.CriticalGaps)
	}
}

func TestValidateRelevanceBoostsConfirmed(t *testing.T) {
	planner := NewPlannerService(&fakeCompletion{response: `[0]`})
	candidates := []domain_models.POICandidate{
		{Name: "Fits", Category: domain_models.CategoryCulture, RelevanceScore: 60},
		{Name: "Ignored", Category: domain_models.CategoryOther, RelevanceScore: 60},
	}

	got := planner.ValidateRelevance(context.Background(), candidates, domain_models.TripContext{
		TravelType:   domain_models.TravelTypeCultural,
		DurationDays: 1,
	})
	if len(got) != 2 {
		t.Fatalf("validation filtered candidates: %d remain", len(got))
	}
	if got[0].RelevanceScore != 70 {
		t.Fatalf("confirmed candidate score = %v, want 70", got[0].RelevanceScore)
	}
	if got[1].RelevanceScore != 60 {
		t.Fatalf("unconfirmed candidate score = %v, want unchanged 60", got[1].RelevanceScore)
	}
}

func TestValidateRelevancePassesThroughOnFailure(t *testing.T) {
	planner := NewPlannerService(&fakeCompletion{err: errors.New("timeout")})
	candidates := []domain_models.POICandidate{
		{Name: "A", RelevanceScore: 42},
		{Name: "B", RelevanceScore: 17},
	}

	got := planner.ValidateRelevance(context.Background(), candidates, domain_models.TripContext{})
	if len(got) != 2 || got[0].RelevanceScore != 42 || got[1].RelevanceScore != 17 {
		t.Fatalf("pass-through altered candidates: %#v", got)
	}
}

func TestValidateRelevanceIgnoresOutOfRangeIndexes(t *testing.T) {
	planner := NewPlannerService(&fakeCompletion{response: `[-1, 0, 99]`})
	candidates := []domain_models.POICandidate{{Name: "Only", RelevanceScore: 50}}

	got := planner.ValidateRelevance(context.Background(), candidates, domain_models.TripContext{})
	if got[0].RelevanceScore != 60 {
		t.Fatalf("score = %v, want 60 from the single valid index", got[0].RelevanceScore)
	}
}

func TestIdentifyGapsEmptyOnFailure(t *testing.T) {
	planner := NewPlannerService(&fakeCompletion{response: "not json at all {{{"})

	gaps := planner.IdentifyGaps(context.Background(), nil, domain_models.TripContext{})
	if gaps == nil || len(gaps) != 0 {
		t.Fatalf("gap analysis failure should yield an empty non-nil slice, got %#v", gaps)
	}
}

func TestIdentifyGapsParsesModelResponse(t *testing.T) {
	planner := NewPlannerService(&fakeCompletion{response: `[
		{"type":"accommodation","location":"midpoint","reason":"no overnight option","priority":"critical","suggestions":["motel"]}
	]`})

	gaps := planner.IdentifyGaps(context.Background(), []domain_models.POICandidate{
		{Category: domain_models.CategoryAttraction},
	}, domain_models.TripContext{TravelType: domain_models.TravelTypeRoadTrip, DurationDays: 2})
	if len(gaps) != 1 {
		t.Fatalf("parsed %d gaps, want 1", len(gaps))
	}
	if gaps[0].Type != domain_models.GapAccommodation || gaps[0].Priority != domain_models.GapPriorityCritical {
		t.Fatalf("gap parsed as %+v", gaps[0])
	}
}

func TestFillGapsSynthesizesBoostedCandidates(t *testing.T) {
	planner := NewPlannerService(&fakeCompletion{response: `[
		{"name":"Roadside Motel","category":"accommodation","lat":10.5,"lng":106.2,"description":"Simple overnight stop.","visit_duration_minutes":0,"best_time_of_day":"evening"},
		{"name":"Riverside Diner","category":"restaurant","lat":10.6,"lng":106.3,"description":"Open late.","visit_duration_minutes":45,"best_time_of_day":"evening"}
	]`})
	gaps := []domain_models.CoverageGap{{
		Type:     domain_models.GapAccommodation,
		Location: "halfway",
		Reason:   "no overnight option",
		Priority: domain_models.GapPriorityCritical,
	}}

	filled := planner.FillGaps(context.Background(), gaps, domain_models.TripContext{TravelType: domain_models.TravelTypeRoadTrip})
	if len(filled) != 2 {
		t.Fatalf("synthesized %d candidates, want 2", len(filled))
	}
	for _, c := range filled {
		if c.Source != domain_models.SourceAI {
			t.Fatalf("%q tagged %s, want %s", c.Name, c.Source, domain_models.SourceAI)
		}
		if c.RelevanceScore != domain_models.SourceAI.BaseScore()+gapFillScoreBonus {
			t.Fatalf("%q score = %v, want base plus gap bonus", c.Name, c.RelevanceScore)
		}
	}
	if filled[0].Category != domain_models.CategoryAccommodation {
		t.Fatalf("first fill categorized as %s", filled[0].Category)
	}
}

func TestFillGapsEmptyWithoutGapsOrCompletion(t *testing.T) {
	planner := NewPlannerService(nil)
	if got := planner.FillGaps(context.Background(), []domain_models.CoverageGap{{Type: domain_models.GapMeal}}, domain_models.TripContext{}); len(got) != 0 {
		t.Fatalf("nil completion produced %d candidates", len(got))
	}

	planner = NewPlannerService(&fakeCompletion{response: "[]"})
	if got := planner.FillGaps(context.Background(), nil, domain_models.TripContext{}); len(got) != 0 {
		t.Fatalf("no gaps produced %d candidates", len(got))
	}
}
