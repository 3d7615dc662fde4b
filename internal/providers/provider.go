package providers

import (
	"context"
	"strings"

	"routescout/internal/models/domain_models"
)

// ProviderAdapter is one external POI source. Implementations normalize their
// payload to POICandidate and never let an error escape the boundary: missing
// credentials, transport failures and malformed payloads all become an empty
// slice plus a logged warning.
type ProviderAdapter interface {
	Name() string
	Source() domain_models.POISource
	FetchNearby(ctx context.Context, sample domain_models.RouteSample, tripCtx domain_models.TripContext, limit int) []domain_models.POICandidate
}

// categoryTable drives raw-tag classification. Matching is substring-based on
// normalized lower-case text; first hit wins.
var categoryTable = []struct {
	substr   string
	category domain_models.POICategory
}{
	{"hotel", domain_models.CategoryAccommodation},
	{"hostel", domain_models.CategoryAccommodation},
	{"guest_house", domain_models.CategoryAccommodation},
	{"guesthouse", domain_models.CategoryAccommodation},
	{"motel", domain_models.CategoryAccommodation},
	{"camp", domain_models.CategoryAccommodation},
	{"apartment", domain_models.CategoryAccommodation},
	{"accomodation", domain_models.CategoryAccommodation},
	{"accommodation", domain_models.CategoryAccommodation},
	{"restaurant", domain_models.CategoryRestaurant},
	{"cafe", domain_models.CategoryRestaurant},
	{"coffee", domain_models.CategoryRestaurant},
	{"fast_food", domain_models.CategoryRestaurant},
	{"food", domain_models.CategoryRestaurant},
	{"bar", domain_models.CategoryRestaurant},
	{"pub", domain_models.CategoryRestaurant},
	{"viewpoint", domain_models.CategoryViewpoint},
	{"view_point", domain_models.CategoryViewpoint},
	{"observation", domain_models.CategoryViewpoint},
	{"museum", domain_models.CategoryCulture},
	{"gallery", domain_models.CategoryCulture},
	{"theatre", domain_models.CategoryCulture},
	{"theater", domain_models.CategoryCulture},
	{"historic", domain_models.CategoryCulture},
	{"monument", domain_models.CategoryCulture},
	{"memorial", domain_models.CategoryCulture},
	{"castle", domain_models.CategoryCulture},
	{"church", domain_models.CategoryCulture},
	{"temple", domain_models.CategoryCulture},
	{"cultur", domain_models.CategoryCulture},
	{"heritage", domain_models.CategoryCulture},
	{"park", domain_models.CategoryNature},
	{"nature", domain_models.CategoryNature},
	{"natural", domain_models.CategoryNature},
	{"beach", domain_models.CategoryNature},
	{"waterfall", domain_models.CategoryNature},
	{"lake", domain_models.CategoryNature},
	{"forest", domain_models.CategoryNature},
	{"garden", domain_models.CategoryNature},
	{"hiking", domain_models.CategoryActivity},
	{"climbing", domain_models.CategoryActivity},
	{"sport", domain_models.CategoryActivity},
	{"amusement", domain_models.CategoryActivity},
	{"theme_park", domain_models.CategoryActivity},
	{"zoo", domain_models.CategoryActivity},
	{"aquarium", domain_models.CategoryActivity},
	{"activit", domain_models.CategoryActivity},
	{"mall", domain_models.CategoryShopping},
	{"shop", domain_models.CategoryShopping},
	{"market", domain_models.CategoryShopping},
	{"attraction", domain_models.CategoryAttraction},
	{"tourism", domain_models.CategoryAttraction},
	{"sight", domain_models.CategoryAttraction},
	{"landmark", domain_models.CategoryAttraction},
}

// CategorizeTag maps a raw provider tag onto the category enum. The mapping is
// total: blank input classifies as attraction, anything unmatched as other.
func CategorizeTag(raw string) domain_models.POICategory {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return domain_models.CategoryAttraction
	}
	for _, row := range categoryTable {
		if strings.Contains(normalized, row.substr) {
			return row.category
		}
	}
	return domain_models.CategoryOther
}
