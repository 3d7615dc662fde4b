package services

import (
	"context"
	"log"
	"strings"

	"routescout/internal/models/domain_models"
	"routescout/pkg/utils"
)

// DetourConfig carries the worth-the-detour policy. The minute and rating
// thresholds are empirical tuning constants; quality and interest matches buy
// longer acceptable detours and that ordering must be preserved.
type DetourConfig struct {
	NearRouteKm          float64 // below this, skip the routing call entirely
	MinutesPerKm         float64 // proportional estimate for near/fallback cases
	LookaheadVertices    int
	AlwaysWorthMinutes   float64
	HighRatedMinutes     float64
	HighRatedThreshold   float64
	InterestMatchMinutes float64
}

func DefaultDetourConfig() DetourConfig {
	return DetourConfig{
		NearRouteKm:          1.0,
		MinutesPerKm:         2.0,
		LookaheadVertices:    5,
		AlwaysWorthMinutes:   10,
		HighRatedMinutes:     20,
		HighRatedThreshold:   4.5,
		InterestMatchMinutes: 15,
	}
}

type DetourServiceInterface interface {
	EstimateDetour(ctx context.Context, route []domain_models.Coordinate, poi domain_models.Coordinate, mode domain_models.TransportMode) float64
	WorthTheDetour(detourMinutes float64, candidate domain_models.POICandidate, interests []string) bool
}

type DetourService struct {
	routing RoutingServiceInterface
	config  DetourConfig
}

func NewDetourService(routing RoutingServiceInterface) DetourServiceInterface {
	return &DetourService{
		routing: routing,
		config:  DefaultDetourConfig(),
	}
}

// EstimateDetour prices inserting the POI into the route, in minutes, never
// negative. The route cost is the difference between "nearest vertex -> POI ->
// look-ahead vertex" and the direct "nearest vertex -> look-ahead vertex" leg.
// POIs within NearRouteKm of the route, and any routing failure, use the
// proportional distance estimate instead.
func (d *DetourService) EstimateDetour(ctx context.Context, route []domain_models.Coordinate, poi domain_models.Coordinate, mode domain_models.TransportMode) float64 {
	if len(route) == 0 {
		return 0
	}

	nearestIdx := 0
	nearestKm := utils.HaversineKm(route[0], poi)
	for i := 1; i < len(route); i++ {
		if km := utils.HaversineKm(route[i], poi); km < nearestKm {
			nearestKm = km
			nearestIdx = i
		}
	}

	proportional := nearestKm * d.config.MinutesPerKm

	if nearestKm < d.config.NearRouteKm {
		return proportional
	}

	lookaheadIdx := nearestIdx + d.config.LookaheadVertices
	if lookaheadIdx >= len(route) {
		lookaheadIdx = len(route) - 1
	}
	if lookaheadIdx == nearestIdx {
		return proportional
	}

	nearest := route[nearestIdx]
	lookahead := route[lookaheadIdx]

	withDetour, err := d.routing.Route(ctx, []domain_models.Coordinate{nearest, poi, lookahead}, mode)
	if err != nil {
		log.Printf("Detour estimate falling back to distance heuristic: %v", err)
		return proportional
	}
	direct, err := d.routing.Route(ctx, []domain_models.Coordinate{nearest, lookahead}, mode)
	if err != nil {
		log.Printf("Detour estimate falling back to distance heuristic: %v", err)
		return proportional
	}

	minutes := (withDetour.DurationSeconds - direct.DurationSeconds) / 60
	if minutes < 0 {
		minutes = 0
	}
	return minutes
}

// WorthTheDetour decides whether a candidate justifies its detour cost. Short
// detours are always worth it; high ratings and interest matches extend the
// acceptable cost.
func (d *DetourService) WorthTheDetour(detourMinutes float64, candidate domain_models.POICandidate, interests []string) bool {
	if detourMinutes < d.config.AlwaysWorthMinutes {
		return true
	}
	if detourMinutes < d.config.HighRatedMinutes && candidate.Rating >= d.config.HighRatedThreshold {
		return true
	}
	if detourMinutes < d.config.InterestMatchMinutes && matchesAnyInterest(candidate, interests) {
		return true
	}
	return false
}

func matchesAnyInterest(candidate domain_models.POICandidate, interests []string) bool {
	haystack := strings.ToLower(string(candidate.Category) + " " + candidate.SubType)
	for _, interest := range interests {
		interest = strings.ToLower(strings.TrimSpace(interest))
		if interest == "" {
			continue
		}
		if strings.Contains(haystack, interest) || strings.Contains(interest, string(candidate.Category)) {
			return true
		}
	}
	return false
}
