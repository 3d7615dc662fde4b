package request_models

import (
	"routescout/internal/models/domain_models"
)

type DiscoverPOIsRequest struct {
	Origin       string                     `json:"origin"`
	Destination  string                     `json:"destination"`
	Waypoints    []string                   `json:"waypoints"`
	Route        []domain_models.Coordinate `json:"route"`
	TravelType   string                     `json:"travel_type"`
	Budget       string                     `json:"budget"`
	DurationDays int                        `json:"duration_days"`
	Transport    string                     `json:"transport"`
	Interests    []string                   `json:"interests"`
	Limit        int                        `json:"limit"`
}

func (r DiscoverPOIsRequest) ToTripContext() domain_models.TripContext {
	travelType := domain_models.TravelType(r.TravelType)
	if travelType == "" {
		travelType = domain_models.TravelTypeRoadTrip
	}

	budget := domain_models.BudgetTier(r.Budget)
	if budget == "" {
		budget = domain_models.BudgetMedium
	}

	transport := domain_models.TransportMode(r.Transport)
	if transport == "" {
		transport = domain_models.TransportDriving
	}

	durationDays := r.DurationDays
	if durationDays < 1 {
		durationDays = 1
	}

	return domain_models.TripContext{
		Origin:       r.Origin,
		Destination:  r.Destination,
		Waypoints:    r.Waypoints,
		Route:        r.Route,
		TravelType:   travelType,
		Budget:       budget,
		DurationDays: durationDays,
		Transport:    transport,
		Interests:    r.Interests,
	}
}
