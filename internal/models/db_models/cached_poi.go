package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// CachedPOI is a previously discovered candidate persisted for reuse. Rows are
// keyed by the normalized location bucket they were found in and carry an
// interest embedding for similarity retrieval.
type CachedPOI struct {
	BaseModel
	LocationKey string `gorm:"index;uniqueIndex:idx_cached_pois_location_name;not null"`
	Name        string `gorm:"uniqueIndex:idx_cached_pois_location_name;not null"`
	Category    string
	SubType     string
	Latitude    float64
	Longitude   float64
	Rating      float64
	Description string
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
}

func (CachedPOI) TableName() string {
	return "cached_pois"
}
