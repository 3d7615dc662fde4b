package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"routescout/internal/infra"
	"routescout/internal/repositories"
)

var Module = fx.Provide(
	provideDatabase,
	provideCacheRepo,
)

func provideDatabase(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitPostgresql()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}

func provideCacheRepo(db *gorm.DB) repositories.POICacheRepository {
	return repositories.NewPOICacheRepository(db)
}
