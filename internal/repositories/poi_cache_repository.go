package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"routescout/internal/models/db_models"
)

type POICacheRepository interface {
	ListByLocationKeys(ctx context.Context, keys []string, limit int) ([]db_models.CachedPOI, error)
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.CachedPOI, error)
	UpsertMany(ctx context.Context, pois []db_models.CachedPOI) error
}

type poiCacheRepository struct {
	db *gorm.DB
}

func NewPOICacheRepository(db *gorm.DB) POICacheRepository {
	return &poiCacheRepository{db: db}
}

func (r *poiCacheRepository) ListByLocationKeys(ctx context.Context, keys []string, limit int) ([]db_models.CachedPOI, error) {
	if len(keys) == 0 {
		return []db_models.CachedPOI{}, nil
	}
	if limit <= 0 {
		limit = 50
	}

	var results []db_models.CachedPOI
	err := r.db.WithContext(ctx).
		Where("location_key IN ?", keys).
		Order("rating DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *poiCacheRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.CachedPOI, error) {
	if limit <= 0 {
		limit = 15
	}

	var results []db_models.CachedPOI
	query := `
        SELECT * FROM cached_pois
        WHERE deleted_at IS NULL
          AND (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `
	if err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *poiCacheRepository) UpsertMany(ctx context.Context, pois []db_models.CachedPOI) error {
	if len(pois) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_key"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "description", "tags", "updated_at"}),
		}).
		Create(&pois).Error
}
