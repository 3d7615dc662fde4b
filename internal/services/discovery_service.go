package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"routescout/internal/models/db_models"
	"routescout/internal/models/domain_models"
	"routescout/internal/repositories"
	"routescout/pkg/utils"
)

const (
	defaultSampleIntervalKm = 25.0
	defaultTargetCount      = 40
)

type DiscoveryServiceInterface interface {
	DiscoverPOIs(ctx context.Context, tripCtx domain_models.TripContext, target int) (domain_models.DiscoveryResult, error)
}

// DiscoveryService runs the full pipeline: Strategizing, Gathering,
// Deduplicating, Costing, Ranking, GapAnalysis, GapFilling. Every stage may
// no-op when its inputs are empty or its collaborator is down; the pipeline
// itself has no failure state past input resolution.
type DiscoveryService struct {
	sampler    SamplerServiceInterface
	aggregator AggregatorServiceInterface
	dedupe     DedupeServiceInterface
	detour     DetourServiceInterface
	ranker     RankerServiceInterface
	planner    PlannerServiceInterface
	geocoding  GeocodingServiceInterface
	routing    RoutingServiceInterface
	cacheRepo  repositories.POICacheRepository
	embedder   utils.EmbeddingClientInterface
}

func NewDiscoveryService(
	sampler SamplerServiceInterface,
	aggregator AggregatorServiceInterface,
	dedupe DedupeServiceInterface,
	detour DetourServiceInterface,
	ranker RankerServiceInterface,
	planner PlannerServiceInterface,
	geocoding GeocodingServiceInterface,
	routing RoutingServiceInterface,
	cacheRepo repositories.POICacheRepository,
	embedder utils.EmbeddingClientInterface,
) DiscoveryServiceInterface {
	return &DiscoveryService{
		sampler:    sampler,
		aggregator: aggregator,
		dedupe:     dedupe,
		detour:     detour,
		ranker:     ranker,
		planner:    planner,
		geocoding:  geocoding,
		routing:    routing,
		cacheRepo:  cacheRepo,
		embedder:   embedder,
	}
}

func (s *DiscoveryService) DiscoverPOIs(ctx context.Context, tripCtx domain_models.TripContext, target int) (domain_models.DiscoveryResult, error) {
	if target <= 0 {
		target = defaultTargetCount
	}

	route, err := s.resolveRoute(ctx, tripCtx)
	if err != nil {
		return domain_models.DiscoveryResult{}, err
	}
	tripCtx.Route = route

	strategy := s.planner.GenerateStrategy(ctx, tripCtx)

	samples := s.sampler.SampleRoute(route, defaultSampleIntervalKm)
	candidates := s.aggregator.Discover(ctx, tripCtx, samples, target)
	candidates = s.dedupe.Dedupe(candidates)

	if s.shouldCostDetours(tripCtx) {
		candidates = s.costDetours(ctx, candidates, tripCtx)
	}

	candidates = s.ranker.Rank(candidates, tripCtx)
	candidates = s.planner.ValidateRelevance(ctx, candidates, tripCtx)
	sortByScore(candidates)

	gaps := s.planner.IdentifyGaps(ctx, candidates, tripCtx)
	if len(gaps) > 0 {
		filled := s.planner.FillGaps(ctx, gaps, tripCtx)
		if len(filled) > 0 {
			candidates = s.dedupe.Dedupe(append(candidates, filled...))
			sortByScore(candidates)
		}
	}

	if len(candidates) > target {
		candidates = candidates[:target]
	}

	s.persistCandidates(ctx, candidates)

	result := domain_models.DiscoveryResult{
		Candidates: candidates,
		Strategy:   strategy,
		Gaps:       gaps,
		Route:      route,
	}
	if len(candidates) == 0 {
		return result, utils.ErrNoPOIsFound
	}
	return result, nil
}

// resolveRoute fills in route geometry when the trip arrived with place names
// only: geocode each named stop, then ask the routing collaborator for the
// full geometry between them.
func (s *DiscoveryService) resolveRoute(ctx context.Context, tripCtx domain_models.TripContext) ([]domain_models.Coordinate, error) {
	if len(tripCtx.Route) >= 2 {
		return tripCtx.Route, nil
	}

	names := make([]string, 0, len(tripCtx.Waypoints)+2)
	if tripCtx.Origin != "" {
		names = append(names, tripCtx.Origin)
	}
	names = append(names, tripCtx.Waypoints...)
	if tripCtx.Destination != "" {
		names = append(names, tripCtx.Destination)
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("%w: need a route or at least two named stops", utils.ErrInvalidInput)
	}

	stops := make([]domain_models.Coordinate, 0, len(names))
	for _, name := range names {
		coord, _, err := s.geocoding.Geocode(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", name, err)
		}
		stops = append(stops, coord)
	}

	geometry, _, err := s.routing.RouteGeometry(ctx, stops, tripCtx.Transport)
	if err != nil {
		// Without a routable geometry the straight legs between stops still
		// give the sampler something to work with.
		log.Printf("Route geometry unavailable, sampling straight legs: %v", err)
		return stops, nil
	}
	if len(geometry) < 2 {
		return stops, nil
	}
	return geometry, nil
}

// shouldCostDetours limits the two-routing-calls-per-candidate expense to
// modes where a detour is a meaningful concept.
func (s *DiscoveryService) shouldCostDetours(tripCtx domain_models.TripContext) bool {
	return tripCtx.Transport == domain_models.TransportDriving || tripCtx.Transport == domain_models.TransportCycling
}

// costDetours annotates every candidate with its detour price and, as a
// separate composable step, drops the ones not worth the detour.
func (s *DiscoveryService) costDetours(ctx context.Context, candidates []domain_models.POICandidate, tripCtx domain_models.TripContext) []domain_models.POICandidate {
	kept := make([]domain_models.POICandidate, 0, len(candidates))
	for _, candidate := range candidates {
		minutes := s.detour.EstimateDetour(ctx, tripCtx.Route, candidate.Coordinate, tripCtx.Transport)
		candidate.SetDetour(minutes)
		if s.detour.WorthTheDetour(minutes, candidate, tripCtx.Interests) {
			kept = append(kept, candidate)
		}
	}
	return kept
}

// persistCandidates writes non-generated candidates back to the store so
// later requests hit the cheapest tier first. Best effort only.
func (s *DiscoveryService) persistCandidates(ctx context.Context, candidates []domain_models.POICandidate) {
	if s.cacheRepo == nil {
		return
	}

	rows := make([]db_models.CachedPOI, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Source == domain_models.SourceAI || candidate.Source == domain_models.SourceCache {
			continue
		}

		row := db_models.CachedPOI{
			LocationKey: utils.NormalizeLocationKey(candidate.Coordinate),
			Name:        candidate.Name,
			Category:    string(candidate.Category),
			SubType:     candidate.SubType,
			Latitude:    candidate.Coordinate.Latitude,
			Longitude:   candidate.Coordinate.Longitude,
			Rating:      candidate.Rating,
			Description: candidate.Description,
		}
		if s.embedder != nil {
			text := strings.TrimSpace(candidate.Name + " " + string(candidate.Category) + " " + candidate.Description)
			if vector, err := s.embedder.GetEmbedding(ctx, text); err == nil {
				row.Embedding = vector
			}
		}
		rows = append(rows, row)
	}

	if err := s.cacheRepo.UpsertMany(ctx, rows); err != nil {
		log.Printf("Warning: poi cache write-back failed: %v", err)
	}
}

func sortByScore(candidates []domain_models.POICandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RelevanceScore > candidates[j].RelevanceScore
	})
}
