package routingfx

import (
	"go.uber.org/fx"

	"routescout/internal/services"
	"routescout/pkg/memcache"
)

var Module = fx.Provide(
	memcache.NewInMemoryRouteCache,
	provideRoutingService,
	provideGeocodingService,
)

func provideRoutingService(cache memcache.RouteCache) services.RoutingServiceInterface {
	return services.NewMapboxRoutingClient(cache)
}

func provideGeocodingService() services.GeocodingServiceInterface {
	return services.NewMapboxGeocodingClient()
}
