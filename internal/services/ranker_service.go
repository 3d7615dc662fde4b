package services

import (
	"sort"
	"strings"

	"routescout/internal/models/domain_models"
)

// Ranker boost weights. All boosts are additive and non-negative; the ranker
// reorders, it never drops candidates.
const (
	ratingBoostWeight  = 10.0
	affinityBoost      = 15.0
	interestMatchBoost = 5.0
)

// travelTypeAffinity maps a travel type to the categories it favors.
var travelTypeAffinity = map[domain_models.TravelType][]domain_models.POICategory{
	domain_models.TravelTypeRoadTrip:    {domain_models.CategoryViewpoint, domain_models.CategoryAttraction},
	domain_models.TravelTypeCityBreak:   {domain_models.CategoryCulture, domain_models.CategoryRestaurant, domain_models.CategoryShopping},
	domain_models.TravelTypeAdventure:   {domain_models.CategoryActivity, domain_models.CategoryNature},
	domain_models.TravelTypeCultural:    {domain_models.CategoryCulture, domain_models.CategoryAttraction},
	domain_models.TravelTypeNature:      {domain_models.CategoryNature, domain_models.CategoryViewpoint},
	domain_models.TravelTypeBeach:       {domain_models.CategoryNature, domain_models.CategoryActivity},
	domain_models.TravelTypeFamily:      {domain_models.CategoryAttraction, domain_models.CategoryActivity},
	domain_models.TravelTypeRomantic:    {domain_models.CategoryRestaurant, domain_models.CategoryViewpoint},
	domain_models.TravelTypeBusiness:    {domain_models.CategoryRestaurant, domain_models.CategoryAccommodation},
	domain_models.TravelTypeBackpacking: {domain_models.CategoryNature, domain_models.CategoryActivity, domain_models.CategoryViewpoint},
	domain_models.TravelTypeLuxury:      {domain_models.CategoryAccommodation, domain_models.CategoryRestaurant},
}

type RankerServiceInterface interface {
	Rank(candidates []domain_models.POICandidate, tripCtx domain_models.TripContext) []domain_models.POICandidate
}

type RankerService struct{}

func NewRankerService() RankerServiceInterface {
	return &RankerService{}
}

// Rank applies additive boosts on top of each candidate's source-tier base
// score and returns the set sorted by descending score, clamped to [0,100].
func (r *RankerService) Rank(candidates []domain_models.POICandidate, tripCtx domain_models.TripContext) []domain_models.POICandidate {
	ranked := make([]domain_models.POICandidate, len(candidates))
	copy(ranked, candidates)

	affinities := travelTypeAffinity[tripCtx.TravelType]

	for i := range ranked {
		if ranked[i].Rating > 0 {
			ranked[i].AddScore(ranked[i].Rating / 5 * ratingBoostWeight)
		}

		for _, category := range affinities {
			if ranked[i].Category == category {
				ranked[i].AddScore(affinityBoost)
				break
			}
		}

		text := strings.ToLower(ranked[i].Name + " " + ranked[i].Description)
		for _, interest := range tripCtx.Interests {
			interest = strings.ToLower(strings.TrimSpace(interest))
			if interest != "" && strings.Contains(text, interest) {
				ranked[i].AddScore(interestMatchBoost)
			}
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked
}
