package domain_models

// SearchStrategy is produced once per trip context (by the AI planner or its
// static fallback) and read-only afterwards. It informs tier selection in the
// aggregator and the gap filler.
type SearchStrategy struct {
	PriorityCategories []POICategory `json:"priority_categories"`
	AccommodationType  string        `json:"accommodation_type"`
	NightsToBook       int           `json:"nights_to_book"`
	MealsPerDay        int           `json:"meals_per_day"`
	MealTypes          []string      `json:"meal_types"`
	ActivitiesPerDay   int           `json:"activities_per_day"`
	ActivityTypes      []string      `json:"activity_types"`
	CriticalGaps       []string      `json:"critical_gaps"`
}

type GapType string

const (
	GapAccommodation GapType = "accommodation"
	GapMeal          GapType = "meal"
	GapActivity      GapType = "activity"
	GapViewpoint     GapType = "viewpoint"
	GapRestStop      GapType = "rest-stop"
)

type GapPriority string

const (
	GapPriorityCritical GapPriority = "critical"
	GapPriorityHigh     GapPriority = "high"
	GapPriorityMedium   GapPriority = "medium"
	GapPriorityLow      GapPriority = "low"
)

// CoverageGap is a category or time-slot the ranked candidate set does not
// cover adequately. Produced after ranking, consumed by the gap filler.
type CoverageGap struct {
	Type        GapType     `json:"type"`
	Location    string      `json:"location"`
	Reason      string      `json:"reason"`
	Priority    GapPriority `json:"priority"`
	Suggestions []string    `json:"suggestions,omitempty"`
}
