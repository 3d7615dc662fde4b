package domain_models

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type TravelType string

const (
	TravelTypeRoadTrip    TravelType = "road-trip"
	TravelTypeCityBreak   TravelType = "city-break"
	TravelTypeAdventure   TravelType = "adventure"
	TravelTypeCultural    TravelType = "cultural"
	TravelTypeNature      TravelType = "nature"
	TravelTypeBeach       TravelType = "beach"
	TravelTypeFamily      TravelType = "family"
	TravelTypeRomantic    TravelType = "romantic"
	TravelTypeBusiness    TravelType = "business"
	TravelTypeBackpacking TravelType = "backpacking"
	TravelTypeLuxury      TravelType = "luxury"
)

type BudgetTier string

const (
	BudgetLow    BudgetTier = "budget"
	BudgetMedium BudgetTier = "mid-range"
	BudgetHigh   BudgetTier = "luxury"
)

type TransportMode string

const (
	TransportDriving TransportMode = "driving"
	TransportCycling TransportMode = "cycling"
	TransportWalking TransportMode = "walking"
	TransportTransit TransportMode = "transit"
)

// TripContext is the immutable input of a discovery request. It is created
// once per request and never mutated by the pipeline.
type TripContext struct {
	Origin       string
	Destination  string
	Waypoints    []string
	Route        []Coordinate
	TravelType   TravelType
	Budget       BudgetTier
	DurationDays int
	Transport    TransportMode
	Interests    []string
}

// RouteSample is a query point along the route, recomputed per request.
type RouteSample struct {
	Coordinate
	Index int // vertex index into TripContext.Route
}
