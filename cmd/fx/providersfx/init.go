package providersfx

import (
	"go.uber.org/fx"

	"routescout/internal/providers"
	"routescout/internal/repositories"
	"routescout/internal/services"
	"routescout/pkg/utils"
)

var Module = fx.Provide(
	providers.NewOverpassProvider,
	providers.NewOpenTripMapProvider,
	providers.NewFoursquareProvider,
	provideStoreProvider,
	provideAIProvider,
	provideAggregator,
)

func provideStoreProvider(repo repositories.POICacheRepository, embedder utils.EmbeddingClientInterface) *providers.StoreProvider {
	return providers.NewStoreProvider(repo, embedder)
}

func provideAIProvider(completion utils.CompletionClientInterface) *providers.AIProvider {
	return providers.NewAIProvider(completion)
}

func provideAggregator(
	store *providers.StoreProvider,
	overpass *providers.OverpassProvider,
	openTripMap *providers.OpenTripMapProvider,
	foursquare *providers.FoursquareProvider,
	ai *providers.AIProvider,
) services.AggregatorServiceInterface {
	tiers := [][]providers.ProviderAdapter{
		{store},
		{overpass, openTripMap},
		{foursquare},
	}
	return services.NewAggregatorService(tiers, []providers.ProviderAdapter{ai})
}
