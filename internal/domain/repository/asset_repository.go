package repository

import (
	"context"

	"telco-enable-ai-api/internal/domain/entity"
)

// AssetRepository stores the history of generated assets.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.GeneratedAsset) error
	GetByID(ctx context.Context, id string) (*entity.GeneratedAsset, error)
	// List returns assets most recent first; industry filters when non-empty.
	List(ctx context.Context, industry string, pagination Pagination) ([]*entity.GeneratedAsset, int64, error)
}
