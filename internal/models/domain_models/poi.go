package domain_models

type POICategory string

const (
	CategoryAttraction    POICategory = "attraction"
	CategoryAccommodation POICategory = "accommodation"
	CategoryRestaurant    POICategory = "restaurant"
	CategoryActivity      POICategory = "activity"
	CategoryViewpoint     POICategory = "viewpoint"
	CategoryNature        POICategory = "nature"
	CategoryCulture       POICategory = "culture"
	CategoryShopping      POICategory = "shopping"
	CategoryOther         POICategory = "other"
)

// POISource identifies the tier a candidate came from. It drives the
// trust-weighted base score and is kept on the record for debugging.
type POISource string

const (
	SourceCache       POISource = "cache"
	SourceOverpass    POISource = "overpass"
	SourceOpenTripMap POISource = "opentripmap"
	SourceFoursquare  POISource = "foursquare"
	SourceAI          POISource = "ai"
)

// BaseScore returns the trust-tier starting score for candidates of this
// source. Cached rows beat commercial providers, which beat free community
// data, which beats generated content.
func (s POISource) BaseScore() float64 {
	switch s {
	case SourceCache:
		return 85
	case SourceFoursquare:
		return 75
	case SourceOverpass, SourceOpenTripMap:
		return 65
	case SourceAI:
		return 55
	default:
		return 50
	}
}

type POICandidate struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    POICategory `json:"category"`
	SubType     string      `json:"sub_type,omitempty"`
	Coordinate  Coordinate  `json:"coordinate"`
	Rating      float64     `json:"rating,omitempty"` // 0 means unrated, otherwise 0-5
	Description string      `json:"description,omitempty"`
	Source      POISource   `json:"source"`

	RelevanceScore       float64  `json:"relevance_score"`
	DetourMinutes        *float64 `json:"detour_minutes,omitempty"`
	VisitDurationMinutes int      `json:"visit_duration_minutes,omitempty"`
	BestTimeOfDay        string   `json:"best_time_of_day,omitempty"`
}

// AddScore applies an additive boost keeping RelevanceScore inside [0,100].
func (p *POICandidate) AddScore(delta float64) {
	p.RelevanceScore += delta
	if p.RelevanceScore > 100 {
		p.RelevanceScore = 100
	}
	if p.RelevanceScore < 0 {
		p.RelevanceScore = 0
	}
}

// SetDetour records a detour estimate, flooring negative values at zero.
func (p *POICandidate) SetDetour(minutes float64) {
	if minutes < 0 {
		minutes = 0
	}
	p.DetourMinutes = &minutes
}
