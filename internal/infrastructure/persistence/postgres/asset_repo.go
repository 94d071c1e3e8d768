package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"telco-enable-ai-api/internal/domain/entity"
	"telco-enable-ai-api/internal/domain/repository"
	apperrors "telco-enable-ai-api/pkg/errors"
)

// assetRecord is the persistence model for generated-asset history.
// Artifact references can be large data URIs, hence the text column.
type assetRecord struct {
	ID          string    `gorm:"primaryKey;size:64"`
	Title       string    `gorm:"size:255;not null"`
	Kind        string    `gorm:"size:32;not null"`
	Industry    string    `gorm:"size:64;index"`
	ArtifactRef string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	StyleUsed   string    `gorm:"size:255"`
	GeneratedAt time.Time `gorm:"index"`
	CreatedAt   time.Time
}

func (assetRecord) TableName() string { return "generated_assets" }

func toRecord(a *entity.GeneratedAsset) *assetRecord {
	return &assetRecord{
		ID:          a.ID,
		Title:       a.Title,
		Kind:        string(a.Kind),
		Industry:    a.Industry,
		ArtifactRef: a.ArtifactRef,
		Description: a.Description,
		StyleUsed:   a.StyleUsed,
		GeneratedAt: a.GeneratedAt,
	}
}

func toEntity(r *assetRecord) *entity.GeneratedAsset {
	return &entity.GeneratedAsset{
		ID:          r.ID,
		Title:       r.Title,
		Kind:        entity.AssetKind(r.Kind),
		Industry:    r.Industry,
		ArtifactRef: r.ArtifactRef,
		Description: r.Description,
		StyleUsed:   r.StyleUsed,
		GeneratedAt: r.GeneratedAt,
	}
}

// AssetRepository is the PostgreSQL implementation of asset history.
type AssetRepository struct {
	client *Client
}

// NewAssetRepository creates an asset repository.
func NewAssetRepository(client *Client) repository.AssetRepository {
	return &AssetRepository{client: client}
}

// Create appends one asset to history.
func (r *AssetRepository) Create(ctx context.Context, asset *entity.GeneratedAsset) error {
	ctx, span := tracer.Start(ctx, "postgres.AssetRepository.Create")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Create(toRecord(asset)).Error; err != nil {
		span.RecordError(err)
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create asset record")
	}
	return nil
}

// GetByID fetches one asset.
func (r *AssetRepository) GetByID(ctx context.Context, id string) (*entity.GeneratedAsset, error) {
	ctx, span := tracer.Start(ctx, "postgres.AssetRepository.GetByID")
	defer span.End()

	var record assetRecord
	if err := r.client.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrAssetNotFound
		}
		span.RecordError(err)
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get asset record")
	}
	return toEntity(&record), nil
}

// List returns assets newest first, optionally filtered by industry.
func (r *AssetRepository) List(ctx context.Context, industry string, p repository.Pagination) ([]*entity.GeneratedAsset, int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.AssetRepository.List")
	defer span.End()

	db := r.client.db.WithContext(ctx).Model(&assetRecord{})
	if industry != "" {
		db = db.Where("industry = ?", industry)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, 0, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to count asset records")
	}

	var records []*assetRecord
	if err := db.Order("generated_at DESC").
		Offset(p.Offset()).
		Limit(p.Limit()).
		Find(&records).Error; err != nil {
		span.RecordError(err)
		return nil, 0, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list asset records")
	}

	assets := make([]*entity.GeneratedAsset, len(records))
	for i, rec := range records {
		assets[i] = toEntity(rec)
	}
	return assets, total, nil
}
