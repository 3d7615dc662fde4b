package discoveryfx

import (
	"go.uber.org/fx"

	"routescout/internal/api/controllers"
	"routescout/internal/repositories"
	"routescout/internal/services"
	"routescout/pkg/utils"
)

var Module = fx.Provide(
	services.NewSamplerService,
	services.NewDedupeService,
	services.NewRankerService,
	provideDetourService,
	provideDiscoveryService,
	controllers.NewDiscoveryController,
)

func provideDetourService(routing services.RoutingServiceInterface) services.DetourServiceInterface {
	return services.NewDetourService(routing)
}

func provideDiscoveryService(
	sampler services.SamplerServiceInterface,
	aggregator services.AggregatorServiceInterface,
	dedupe services.DedupeServiceInterface,
	detour services.DetourServiceInterface,
	ranker services.RankerServiceInterface,
	planner services.PlannerServiceInterface,
	geocoding services.GeocodingServiceInterface,
	routing services.RoutingServiceInterface,
	cacheRepo repositories.POICacheRepository,
	embedder utils.EmbeddingClientInterface,
) services.DiscoveryServiceInterface {
	return services.NewDiscoveryService(
		sampler, aggregator, dedupe, detour, ranker, planner,
		geocoding, routing, cacheRepo, embedder,
	)
}
