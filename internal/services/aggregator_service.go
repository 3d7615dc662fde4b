package services

import (
	"context"
	"log"
	"sync"
	"time"

	"routescout/internal/models/domain_models"
	"routescout/internal/providers"
)

type AggregatorConfig struct {
	TargetCount    int           // escalate tiers while below this
	AIFloor        int           // only invoke the AI tier below this
	PerCallTimeout time.Duration // independent timeout per provider call
	PerSampleLimit int
}

func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		TargetCount:    40,
		AIFloor:        5,
		PerCallTimeout: 8 * time.Second,
		PerSampleLimit: 10,
	}
}

type AggregatorServiceInterface interface {
	Discover(ctx context.Context, tripCtx domain_models.TripContext, samples []domain_models.RouteSample, target int) []domain_models.POICandidate
}

// AggregatorService runs the tiered fallback cascade. Tiers are ordered by
// cost and reliability; within a tier every adapter/sample pair fans out
// concurrently with its own timeout, and tiers are strictly sequential so an
// expensive tier is never called before a cheap one under-delivers.
type AggregatorService struct {
	tiers  [][]providers.ProviderAdapter
	aiTier []providers.ProviderAdapter
	config AggregatorConfig
}

func NewAggregatorService(tiers [][]providers.ProviderAdapter, aiTier []providers.ProviderAdapter) AggregatorServiceInterface {
	return &AggregatorService{
		tiers:  tiers,
		aiTier: aiTier,
		config: DefaultAggregatorConfig(),
	}
}

// Discover returns whatever the cascade produced, possibly nothing. An empty
// result is not an error; callers decide what "no POIs found" means.
func (a *AggregatorService) Discover(ctx context.Context, tripCtx domain_models.TripContext, samples []domain_models.RouteSample, target int) []domain_models.POICandidate {
	if target <= 0 {
		target = a.config.TargetCount
	}
	if len(samples) == 0 {
		return []domain_models.POICandidate{}
	}

	var collected []domain_models.POICandidate

	for i, tier := range a.tiers {
		if len(collected) >= target {
			break
		}
		results := a.fanOut(ctx, tier, tripCtx, samples)
		collected = append(collected, results...)
		log.Printf("Aggregator tier %d contributed %d candidates (total %d)", i+1, len(results), len(collected))
	}

	// Generation is expensive; it only runs when everything else left the
	// result set nearly empty.
	if len(collected) < a.config.AIFloor && len(a.aiTier) > 0 {
		results := a.fanOut(ctx, a.aiTier, tripCtx, samples)
		collected = append(collected, results...)
		log.Printf("Aggregator AI tier contributed %d candidates (total %d)", len(results), len(collected))
	}

	if collected == nil {
		collected = []domain_models.POICandidate{}
	}
	return collected
}

// fanOut queries every adapter for every sample concurrently and merges the
// results under a mutex. A slow or failing call degrades only its own
// contribution to empty.
func (a *AggregatorService) fanOut(ctx context.Context, tier []providers.ProviderAdapter, tripCtx domain_models.TripContext, samples []domain_models.RouteSample) []domain_models.POICandidate {
	var (
		mu      sync.Mutex
		results []domain_models.POICandidate
		wg      sync.WaitGroup
	)

	for _, adapter := range tier {
		for _, sample := range samples {
			wg.Add(1)
			go func(adapter providers.ProviderAdapter, sample domain_models.RouteSample) {
				defer wg.Done()

				callCtx, cancel := context.WithTimeout(ctx, a.config.PerCallTimeout)
				defer cancel()

				found := adapter.FetchNearby(callCtx, sample, tripCtx, a.config.PerSampleLimit)
				if len(found) == 0 {
					return
				}

				mu.Lock()
				results = append(results, found...)
				mu.Unlock()
			}(adapter, sample)
		}
	}

	wg.Wait()
	return results
}
