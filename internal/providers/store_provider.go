package providers

import (
	"context"
	"log"
	"strings"

	"routescout/internal/models/db_models"
	"routescout/internal/models/domain_models"
	"routescout/internal/repositories"
	"routescout/pkg/utils"
)

// StoreProvider is the highest-trust tier: candidates previously discovered
// and persisted. Lookup is by normalized location bucket, widened with an
// interest-vector similarity search when an embedder is configured.
type StoreProvider struct {
	repo     repositories.POICacheRepository
	embedder utils.EmbeddingClientInterface
}

func NewStoreProvider(repo repositories.POICacheRepository, embedder utils.EmbeddingClientInterface) *StoreProvider {
	return &StoreProvider{repo: repo, embedder: embedder}
}

func (p *StoreProvider) Name() string { return "store" }

func (p *StoreProvider) Source() domain_models.POISource { return domain_models.SourceCache }

func (p *StoreProvider) FetchNearby(ctx context.Context, sample domain_models.RouteSample, tripCtx domain_models.TripContext, limit int) []domain_models.POICandidate {
	if p.repo == nil {
		return []domain_models.POICandidate{}
	}

	keys := locationKeysAround(sample.Coordinate)
	rows, err := p.repo.ListByLocationKeys(ctx, keys, limit)
	if err != nil {
		log.Printf("Warning: poi cache lookup failed: %v", err)
		rows = nil
	}

	candidates := make([]domain_models.POICandidate, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		candidates = append(candidates, cachedToCandidate(row))
		seen[row.ID.String()] = true
	}

	if p.embedder != nil && len(tripCtx.Interests) > 0 && len(candidates) < limit {
		vector, err := p.embedder.GetEmbedding(ctx, strings.Join(tripCtx.Interests, " "))
		if err != nil {
			log.Printf("Warning: interest embedding failed: %v", err)
			return candidates
		}
		similar, err := p.repo.SearchByVector(ctx, vector, limit-len(candidates))
		if err != nil {
			log.Printf("Warning: poi cache vector search failed: %v", err)
			return candidates
		}
		for _, row := range similar {
			if seen[row.ID.String()] {
				continue
			}
			candidates = append(candidates, cachedToCandidate(row))
		}
	}

	return candidates
}

// locationKeysAround returns the sample's bucket plus its eight neighbors so
// POIs just across a grid boundary are still found.
func locationKeysAround(c domain_models.Coordinate) []string {
	keys := make([]string, 0, 9)
	for dLat := -1; dLat <= 1; dLat++ {
		for dLng := -1; dLng <= 1; dLng++ {
			shifted := domain_models.Coordinate{
				Latitude:  c.Latitude + float64(dLat)*0.01,
				Longitude: c.Longitude + float64(dLng)*0.01,
			}
			keys = append(keys, utils.NormalizeLocationKey(shifted))
		}
	}
	return keys
}

func cachedToCandidate(row db_models.CachedPOI) domain_models.POICandidate {
	source := domain_models.SourceCache
	return domain_models.POICandidate{
		ID:             row.ID.String(),
		Name:           row.Name,
		Category:       CategorizeTag(row.Category),
		SubType:        row.SubType,
		Coordinate:     domain_models.Coordinate{Latitude: row.Latitude, Longitude: row.Longitude},
		Rating:         row.Rating,
		Description:    row.Description,
		Source:         source,
		RelevanceScore: source.BaseScore(),
	}
}
